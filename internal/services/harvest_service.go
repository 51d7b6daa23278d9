package services

import (
	"errors"

	"github.com/mossline/gardenlog/internal/models"
	"github.com/mossline/gardenlog/internal/repository"
)

var (
	ErrHarvestNotFound = errors.New("harvest not found")
	ErrInvalidHarvest  = errors.New("invalid harvest")
)

type HarvestService struct {
	harvestRepo   *repository.HarvestRepository
	plantingRepo  *repository.PlantingRepository
	catalogueRepo *repository.CatalogueRepository
}

func NewHarvestService(
	harvestRepo *repository.HarvestRepository,
	plantingRepo *repository.PlantingRepository,
	catalogueRepo *repository.CatalogueRepository,
) *HarvestService {
	return &HarvestService{
		harvestRepo:   harvestRepo,
		plantingRepo:  plantingRepo,
		catalogueRepo: catalogueRepo,
	}
}

// LogHarvest records a yield event against a planting. The amount must
// be positive; the unit defaults to the plant type's default when the
// caller leaves it empty, falling back to kg when that reference
// dangles. A rejected entry changes nothing.
func (s *HarvestService) LogHarvest(plantingID string, date models.Date, amount float64, unit models.Unit, notes string) (*models.Harvest, error) {
	if amount <= 0 || date.IsZero() {
		return nil, ErrInvalidHarvest
	}

	planting := s.plantingRepo.FindByID(plantingID)
	if planting == nil {
		return nil, ErrPlantingNotFound
	}

	if unit == "" {
		unit = s.defaultUnitFor(planting)
	}
	if !unit.Valid() {
		return nil, ErrInvalidHarvest
	}

	harvest := &models.Harvest{
		ID:         models.NewID(),
		PlantingID: plantingID,
		Date:       date,
		Amount:     amount,
		Unit:       unit,
		Notes:      notes,
	}
	s.harvestRepo.Create(harvest)

	return harvest, nil
}

func (s *HarvestService) DeleteHarvest(id string) error {
	if !s.harvestRepo.Delete(id) {
		return ErrHarvestNotFound
	}
	return nil
}

func (s *HarvestService) GetHarvest(id string) *models.Harvest {
	return s.harvestRepo.FindByID(id)
}

func (s *HarvestService) ListHarvests() []models.Harvest {
	return s.harvestRepo.FindAll()
}

func (s *HarvestService) ListHarvestsForPlanting(plantingID string) []models.Harvest {
	return s.harvestRepo.FindByPlantingID(plantingID)
}

func (s *HarvestService) defaultUnitFor(planting *models.Planting) models.Unit {
	if plantType := s.catalogueRepo.FindByID(planting.PlantTypeID); plantType != nil && plantType.DefaultUnit.Valid() {
		return plantType.DefaultUnit
	}
	return models.UnitKg
}
