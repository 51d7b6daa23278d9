package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mossline/gardenlog/internal/models"
	"github.com/mossline/gardenlog/internal/repository"
	"github.com/mossline/gardenlog/internal/storage"
)

func setupCatalogueTest(t *testing.T) (*repository.CatalogueRepository, *CatalogueService) {
	gateway := storage.NewGateway(testDB(t))
	catalogueRepo := repository.NewCatalogueRepository(gateway)
	return catalogueRepo, NewCatalogueService(catalogueRepo)
}

func TestCatalogueService_CreatePlantType(t *testing.T) {
	_, catalogueService := setupCatalogueTest(t)

	plantType, err := catalogueService.CreatePlantType("Tomato", 6, 14, 80, 45, models.UnitKg)
	assert.NoError(t, err)
	assert.NotEmpty(t, plantType.ID)
	assert.Equal(t, "Tomato", plantType.Name)
	assert.Equal(t, models.UnitKg, plantType.DefaultUnit)
}

func TestCatalogueService_CreateEmptyNameRejected(t *testing.T) {
	catalogueRepo, catalogueService := setupCatalogueTest(t)

	_, err := catalogueService.CreatePlantType("", 6, 14, 80, 45, models.UnitKg)
	assert.Equal(t, ErrInvalidPlantType, err)
	assert.Equal(t, 0, catalogueRepo.Count())
}

func TestCatalogueService_CreateDefaultsUnitToKg(t *testing.T) {
	_, catalogueService := setupCatalogueTest(t)

	plantType, err := catalogueService.CreatePlantType("Pea", 7, 14, 60, 21, "")
	assert.NoError(t, err)
	assert.Equal(t, models.UnitKg, plantType.DefaultUnit)
}

func TestCatalogueService_UpdatePlantType(t *testing.T) {
	_, catalogueService := setupCatalogueTest(t)

	created, _ := catalogueService.CreatePlantType("Tomato", 6, 14, 80, 45, models.UnitKg)

	updated, err := catalogueService.UpdatePlantType(created.ID, "Cherry Tomato", 5, 12, 70, 50, models.UnitCount)
	assert.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Cherry Tomato", updated.Name)
	assert.Equal(t, models.UnitCount, updated.DefaultUnit)

	fetched := catalogueService.GetPlantType(created.ID)
	assert.Equal(t, "Cherry Tomato", fetched.Name)
}

func TestCatalogueService_UpdateMissing(t *testing.T) {
	_, catalogueService := setupCatalogueTest(t)

	_, err := catalogueService.UpdatePlantType("nope", "X", 1, 2, 3, 4, models.UnitKg)
	assert.Equal(t, ErrPlantTypeNotFound, err)
}

func TestCatalogueService_DeletePlantType(t *testing.T) {
	_, catalogueService := setupCatalogueTest(t)

	created, _ := catalogueService.CreatePlantType("Radish", 3, 7, 28, 10, models.UnitCount)
	assert.NoError(t, catalogueService.DeletePlantType(created.ID))
	assert.Nil(t, catalogueService.GetPlantType(created.ID))

	assert.Equal(t, ErrPlantTypeNotFound, catalogueService.DeletePlantType(created.ID))
}

func TestCatalogueService_SeedDefaults(t *testing.T) {
	_, catalogueService := setupCatalogueTest(t)

	added := catalogueService.SeedDefaults()
	assert.Greater(t, added, 0)
	assert.Len(t, catalogueService.ListPlantTypes(), added)

	for _, plantType := range catalogueService.ListPlantTypes() {
		assert.NotEmpty(t, plantType.ID)
		assert.NotEmpty(t, plantType.Name)
		assert.True(t, plantType.DefaultUnit.Valid())
		assert.GreaterOrEqual(t, plantType.MaturityDays, 1)
		assert.GreaterOrEqual(t, plantType.HarvestWindowDays, 1)
	}

	// seeding a non-empty catalogue is a no-op
	assert.Equal(t, 0, catalogueService.SeedDefaults())
	assert.Len(t, catalogueService.ListPlantTypes(), added)
}
