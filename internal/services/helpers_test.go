package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/mossline/gardenlog/internal/database"
)

func testDB(t *testing.T) *gorm.DB {
	db, err := database.Connect(":memory:")
	assert.NoError(t, err)
	assert.NoError(t, database.Migrate(db))
	return db
}
