package services

import (
	"errors"

	"github.com/mossline/gardenlog/internal/models"
	"github.com/mossline/gardenlog/internal/repository"
)

var (
	ErrPlantingNotFound = errors.New("planting not found")
	ErrInvalidPlanting  = errors.New("invalid planting")
)

type PlantingService struct {
	plantingRepo *repository.PlantingRepository
}

func NewPlantingService(plantingRepo *repository.PlantingRepository) *PlantingService {
	return &PlantingService{plantingRepo: plantingRepo}
}

// CreatePlanting requires a plant-type reference and a planted date;
// anything else is accepted as supplied. A rejected submission changes
// nothing.
func (s *PlantingService) CreatePlanting(plantTypeID string, plantedAt models.Date, location string, quantityPlanted int, notes string) (*models.Planting, error) {
	if plantTypeID == "" || plantedAt.IsZero() {
		return nil, ErrInvalidPlanting
	}

	planting := &models.Planting{
		ID:              models.NewID(),
		PlantTypeID:     plantTypeID,
		PlantedAt:       plantedAt,
		Location:        location,
		QuantityPlanted: quantityPlanted,
		Notes:           notes,
	}
	s.plantingRepo.Create(planting)

	return planting, nil
}

// ToggleArchived flips the archived flag. Archived plantings stay in
// every listing and every report; the flag only de-emphasizes them.
func (s *PlantingService) ToggleArchived(id string) (*models.Planting, error) {
	planting := s.plantingRepo.FindByID(id)
	if planting == nil {
		return nil, ErrPlantingNotFound
	}

	planting.Archived = !planting.Archived
	if !s.plantingRepo.Update(planting) {
		return nil, ErrPlantingNotFound
	}

	return planting, nil
}

// DeletePlanting removes the planting only; its harvests stay in the
// ledger and dangle.
func (s *PlantingService) DeletePlanting(id string) error {
	if !s.plantingRepo.Delete(id) {
		return ErrPlantingNotFound
	}
	return nil
}

func (s *PlantingService) GetPlanting(id string) *models.Planting {
	return s.plantingRepo.FindByID(id)
}

func (s *PlantingService) ListPlantings() []models.Planting {
	return s.plantingRepo.FindAll()
}
