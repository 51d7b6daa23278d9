package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/mossline/gardenlog/internal/models"
	"github.com/mossline/gardenlog/internal/repository"
	"github.com/mossline/gardenlog/internal/storage"
)

func setupPlantingTest(t *testing.T) (*repository.PlantingRepository, *PlantingService) {
	gateway := storage.NewGateway(testDB(t))
	plantingRepo := repository.NewPlantingRepository(gateway)
	return plantingRepo, NewPlantingService(plantingRepo)
}

func TestPlantingService_CreatePlanting(t *testing.T) {
	_, plantingService := setupPlantingTest(t)

	planting, err := plantingService.CreatePlanting("t1", models.NewDate(2024, time.April, 1), "bed 3", 6, "started indoors")
	assert.NoError(t, err)
	assert.NotEmpty(t, planting.ID)
	assert.Equal(t, "t1", planting.PlantTypeID)
	assert.Equal(t, "bed 3", planting.Location)
	assert.Equal(t, 6, planting.QuantityPlanted)
	assert.False(t, planting.Archived)
}

func TestPlantingService_CreateRequiresTypeAndDate(t *testing.T) {
	plantingRepo, plantingService := setupPlantingTest(t)

	_, err := plantingService.CreatePlanting("", models.NewDate(2024, time.April, 1), "", 0, "")
	assert.Equal(t, ErrInvalidPlanting, err)

	_, err = plantingService.CreatePlanting("t1", models.Date{}, "", 0, "")
	assert.Equal(t, ErrInvalidPlanting, err)

	assert.Equal(t, 0, plantingRepo.Count())
}

func TestPlantingService_CreateAcceptsDanglingTypeReference(t *testing.T) {
	// the reference is weak by design; nothing checks the catalogue
	_, plantingService := setupPlantingTest(t)

	planting, err := plantingService.CreatePlanting("never-existed", models.NewDate(2024, time.April, 1), "", 0, "")
	assert.NoError(t, err)
	assert.NotNil(t, planting)
}

func TestPlantingService_ToggleArchived(t *testing.T) {
	_, plantingService := setupPlantingTest(t)

	created, _ := plantingService.CreatePlanting("t1", models.NewDate(2024, time.April, 1), "", 0, "")

	toggled, err := plantingService.ToggleArchived(created.ID)
	assert.NoError(t, err)
	assert.True(t, toggled.Archived)

	toggled, err = plantingService.ToggleArchived(created.ID)
	assert.NoError(t, err)
	assert.False(t, toggled.Archived)
}

func TestPlantingService_ToggleArchivedMissing(t *testing.T) {
	_, plantingService := setupPlantingTest(t)

	_, err := plantingService.ToggleArchived("nope")
	assert.Equal(t, ErrPlantingNotFound, err)
}

func TestPlantingService_DeletePlanting(t *testing.T) {
	_, plantingService := setupPlantingTest(t)

	created, _ := plantingService.CreatePlanting("t1", models.NewDate(2024, time.April, 1), "", 0, "")
	assert.NoError(t, plantingService.DeletePlanting(created.ID))
	assert.Nil(t, plantingService.GetPlanting(created.ID))

	assert.Equal(t, ErrPlantingNotFound, plantingService.DeletePlanting(created.ID))
}

func TestPlantingService_ListNewestFirst(t *testing.T) {
	_, plantingService := setupPlantingTest(t)

	first, _ := plantingService.CreatePlanting("t1", models.NewDate(2024, time.April, 1), "", 0, "")
	second, _ := plantingService.CreatePlanting("t1", models.NewDate(2024, time.April, 2), "", 0, "")

	all := plantingService.ListPlantings()
	assert.Equal(t, second.ID, all[0].ID)
	assert.Equal(t, first.ID, all[1].ID)
}
