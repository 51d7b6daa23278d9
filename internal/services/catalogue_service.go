package services

import (
	"errors"

	"github.com/mossline/gardenlog/internal/models"
	"github.com/mossline/gardenlog/internal/repository"
)

var (
	ErrPlantTypeNotFound = errors.New("plant type not found")
	ErrInvalidPlantType  = errors.New("invalid plant type")
)

type CatalogueService struct {
	catalogueRepo *repository.CatalogueRepository
}

func NewCatalogueService(catalogueRepo *repository.CatalogueRepository) *CatalogueService {
	return &CatalogueService{catalogueRepo: catalogueRepo}
}

func (s *CatalogueService) CreatePlantType(name string, germMinDays, germMaxDays, maturityDays, harvestWindowDays int, defaultUnit models.Unit) (*models.PlantType, error) {
	if name == "" {
		return nil, ErrInvalidPlantType
	}
	if defaultUnit == "" {
		defaultUnit = models.UnitKg
	}
	if !defaultUnit.Valid() {
		return nil, ErrInvalidPlantType
	}

	plantType := &models.PlantType{
		ID:                 models.NewID(),
		Name:               name,
		GerminationMinDays: germMinDays,
		GerminationMaxDays: germMaxDays,
		MaturityDays:       maturityDays,
		HarvestWindowDays:  harvestWindowDays,
		DefaultUnit:        defaultUnit,
	}
	s.catalogueRepo.Create(plantType)

	return plantType, nil
}

func (s *CatalogueService) UpdatePlantType(id, name string, germMinDays, germMaxDays, maturityDays, harvestWindowDays int, defaultUnit models.Unit) (*models.PlantType, error) {
	existing := s.catalogueRepo.FindByID(id)
	if existing == nil {
		return nil, ErrPlantTypeNotFound
	}
	if name == "" || !defaultUnit.Valid() {
		return nil, ErrInvalidPlantType
	}

	existing.Name = name
	existing.GerminationMinDays = germMinDays
	existing.GerminationMaxDays = germMaxDays
	existing.MaturityDays = maturityDays
	existing.HarvestWindowDays = harvestWindowDays
	existing.DefaultUnit = defaultUnit

	if !s.catalogueRepo.Update(existing) {
		return nil, ErrPlantTypeNotFound
	}

	return existing, nil
}

// DeletePlantType removes the catalogue entry only. Plantings keep
// their reference and resolve to "Unknown" from here on.
func (s *CatalogueService) DeletePlantType(id string) error {
	if !s.catalogueRepo.Delete(id) {
		return ErrPlantTypeNotFound
	}
	return nil
}

func (s *CatalogueService) GetPlantType(id string) *models.PlantType {
	return s.catalogueRepo.FindByID(id)
}

func (s *CatalogueService) ListPlantTypes() []models.PlantType {
	return s.catalogueRepo.FindAll()
}

// SeedDefaults loads the starter catalogue into an empty store and
// returns how many entries it added. A non-empty catalogue is left
// untouched.
func (s *CatalogueService) SeedDefaults() int {
	if s.catalogueRepo.Count() > 0 {
		return 0
	}
	for _, seed := range defaultPlantTypes() {
		plantType := seed
		plantType.ID = models.NewID()
		s.catalogueRepo.Create(&plantType)
	}
	return len(defaultPlantTypes())
}

func defaultPlantTypes() []models.PlantType {
	return []models.PlantType{
		{Name: "Tomato", GerminationMinDays: 6, GerminationMaxDays: 14, MaturityDays: 80, HarvestWindowDays: 45, DefaultUnit: models.UnitKg},
		{Name: "Carrot", GerminationMinDays: 10, GerminationMaxDays: 21, MaturityDays: 75, HarvestWindowDays: 30, DefaultUnit: models.UnitCount},
		{Name: "Lettuce", GerminationMinDays: 2, GerminationMaxDays: 10, MaturityDays: 55, HarvestWindowDays: 21, DefaultUnit: models.UnitCount},
		{Name: "Zucchini", GerminationMinDays: 5, GerminationMaxDays: 10, MaturityDays: 50, HarvestWindowDays: 40, DefaultUnit: models.UnitKg},
		{Name: "Bush Bean", GerminationMinDays: 6, GerminationMaxDays: 12, MaturityDays: 55, HarvestWindowDays: 21, DefaultUnit: models.UnitKg},
		{Name: "Potato", GerminationMinDays: 14, GerminationMaxDays: 28, MaturityDays: 100, HarvestWindowDays: 21, DefaultUnit: models.UnitKg},
		{Name: "Radish", GerminationMinDays: 3, GerminationMaxDays: 7, MaturityDays: 28, HarvestWindowDays: 10, DefaultUnit: models.UnitCount},
		{Name: "Pumpkin", GerminationMinDays: 7, GerminationMaxDays: 14, MaturityDays: 110, HarvestWindowDays: 30, DefaultUnit: models.UnitCount},
	}
}
