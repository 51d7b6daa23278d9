package services

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/mossline/gardenlog/internal/models"
	"github.com/mossline/gardenlog/internal/repository"
	"github.com/mossline/gardenlog/internal/storage"
)

func setupBackupTest(t *testing.T) (*repository.CatalogueRepository, *repository.PlantingRepository, *repository.HarvestRepository, *BackupService) {
	gateway := storage.NewGateway(testDB(t))
	catalogueRepo := repository.NewCatalogueRepository(gateway)
	plantingRepo := repository.NewPlantingRepository(gateway)
	harvestRepo := repository.NewHarvestRepository(gateway)
	return catalogueRepo, plantingRepo, harvestRepo, NewBackupService(catalogueRepo, plantingRepo, harvestRepo)
}

func seedCollections(catalogueRepo *repository.CatalogueRepository, plantingRepo *repository.PlantingRepository, harvestRepo *repository.HarvestRepository) {
	catalogueRepo.Create(&models.PlantType{ID: "t1", Name: "Tomato", GerminationMinDays: 6, GerminationMaxDays: 14, MaturityDays: 80, HarvestWindowDays: 45, DefaultUnit: models.UnitKg})
	plantingRepo.Create(&models.Planting{ID: "p1", PlantTypeID: "t1", PlantedAt: models.NewDate(2024, time.April, 1), Location: "bed 2", QuantityPlanted: 4, Notes: "from seed"})
	plantingRepo.Create(&models.Planting{ID: "p2", PlantTypeID: "t1", PlantedAt: models.NewDate(2024, time.April, 15), Archived: true})
	harvestRepo.Create(&models.Harvest{ID: "h1", PlantingID: "p1", Date: models.NewDate(2024, time.July, 1), Amount: 1.2, Unit: models.UnitKg, Notes: "first ripe"})
}

func TestBackupService_ExportImportRoundTrip(t *testing.T) {
	catalogueRepo, plantingRepo, harvestRepo, backupService := setupBackupTest(t)
	seedCollections(catalogueRepo, plantingRepo, harvestRepo)

	wantTypes := catalogueRepo.FindAll()
	wantPlantings := plantingRepo.FindAll()
	wantHarvests := harvestRepo.FindAll()

	export := backupService.Export()
	assert.False(t, export.ExportedAt.IsZero())

	data, err := json.Marshal(export)
	assert.NoError(t, err)

	assert.NoError(t, backupService.Import(data))

	assert.Equal(t, wantTypes, catalogueRepo.FindAll())
	assert.Equal(t, wantPlantings, plantingRepo.FindAll())
	assert.Equal(t, wantHarvests, harvestRepo.FindAll())
}

func TestBackupService_ImportReplacesExistingData(t *testing.T) {
	catalogueRepo, plantingRepo, harvestRepo, backupService := setupBackupTest(t)
	seedCollections(catalogueRepo, plantingRepo, harvestRepo)

	payload := `{
		"plantTypes": [{"id":"x1","name":"Kale","maturityDays":60,"harvestWindowDays":30,"defaultUnit":"kg"}],
		"plantings": [],
		"harvests": []
	}`
	assert.NoError(t, backupService.Import([]byte(payload)))

	assert.Equal(t, 1, catalogueRepo.Count())
	assert.Equal(t, "Kale", catalogueRepo.FindByID("x1").Name)
	assert.Equal(t, 0, plantingRepo.Count())
	assert.Equal(t, 0, harvestRepo.Count())
}

func TestBackupService_ImportMissingKeyRejectedAndUnchanged(t *testing.T) {
	catalogueRepo, plantingRepo, harvestRepo, backupService := setupBackupTest(t)
	seedCollections(catalogueRepo, plantingRepo, harvestRepo)

	payload := `{"plantTypes": [], "plantings": []}` // no harvests key
	err := backupService.Import([]byte(payload))
	assert.Equal(t, ErrInvalidBackup, err)

	assert.Equal(t, 1, catalogueRepo.Count())
	assert.Equal(t, 2, plantingRepo.Count())
	assert.Equal(t, 1, harvestRepo.Count())
}

func TestBackupService_ImportMalformedJSONRejected(t *testing.T) {
	_, _, _, backupService := setupBackupTest(t)

	assert.Equal(t, ErrInvalidBackup, backupService.Import([]byte("{not json")))
	assert.Equal(t, ErrInvalidBackup, backupService.Import([]byte(`"just a string"`)))
}

func TestBackupService_ImportIgnoresExtraKeys(t *testing.T) {
	_, plantingRepo, _, backupService := setupBackupTest(t)

	payload := `{
		"plantTypes": [],
		"plantings": [{"id":"p9","plantTypeId":"t9","plantedAt":"2024-06-01"}],
		"harvests": [],
		"exportedAt": "2024-06-02T10:00:00Z",
		"someFutureField": true
	}`
	assert.NoError(t, backupService.Import([]byte(payload)))
	assert.NotNil(t, plantingRepo.FindByID("p9"))
}

func TestBackupService_ImportKeepsEntryOrder(t *testing.T) {
	_, _, harvestRepo, backupService := setupBackupTest(t)

	payload := `{
		"plantTypes": [],
		"plantings": [],
		"harvests": [
			{"id":"h1","plantingId":"p1","date":"2024-03-05","amount":2,"unit":"kg"},
			{"id":"h2","plantingId":"p1","date":"2024-03-20","amount":3,"unit":"kg"}
		]
	}`
	assert.NoError(t, backupService.Import([]byte(payload)))

	all := harvestRepo.FindAll()
	assert.Equal(t, "h1", all[0].ID)
	assert.Equal(t, "h2", all[1].ID)
}
