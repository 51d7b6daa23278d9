package services

import (
	"github.com/mossline/gardenlog/internal/models"
	"github.com/mossline/gardenlog/internal/repository"
)

// PhaseSnapshot is a deterministic progress estimate for one planting
// on one day. The three percentages are computed independently from the
// same elapsed time, each clamped to [0,100]; they are deliberately not
// a sequential state machine, so bars can overlap near phase
// boundaries.
type PhaseSnapshot struct {
	ElapsedDays      float64     `json:"elapsedDays"`
	GerminationPct   float64     `json:"germinationPct"`
	GrowthPct        float64     `json:"growthPct"`
	HarvestPct       float64     `json:"harvestPct"`
	GerminationStart models.Date `json:"germinationStart"`
	GerminationEnd   models.Date `json:"germinationEnd"`
	FirstHarvest     models.Date `json:"firstHarvest"`
	LastHarvest      models.Date `json:"lastHarvest"`
	Done             bool        `json:"done"`
}

type PhaseService struct {
	plantingRepo  *repository.PlantingRepository
	catalogueRepo *repository.CatalogueRepository
}

func NewPhaseService(plantingRepo *repository.PlantingRepository, catalogueRepo *repository.CatalogueRepository) *PhaseService {
	return &PhaseService{plantingRepo: plantingRepo, catalogueRepo: catalogueRepo}
}

// EstimateForPlanting resolves the planting and its plant type, then
// runs the pure estimator. A nil snapshot with a nil error means the
// plant-type reference dangles and no estimate is available.
func (s *PhaseService) EstimateForPlanting(plantingID string, today models.Date) (*PhaseSnapshot, error) {
	planting := s.plantingRepo.FindByID(plantingID)
	if planting == nil {
		return nil, ErrPlantingNotFound
	}
	plantType := s.catalogueRepo.FindByID(planting.PlantTypeID)
	return EstimatePhase(planting, plantType, today), nil
}

// EstimatePhase is a pure function of its three inputs. It returns nil
// when the plant type is missing; callers re-invoke it whenever the
// planting, the catalogue, or "today" changes.
func EstimatePhase(planting *models.Planting, plantType *models.PlantType, today models.Date) *PhaseSnapshot {
	if plantType == nil {
		return nil
	}

	elapsed := float64(models.DaysBetween(planting.PlantedAt, today))
	if elapsed < 0 {
		// future planting dates clamp to zero progress
		elapsed = 0
	}

	germinationLen := (float64(plantType.GerminationMinDays) + float64(plantType.GerminationMaxDays)) / 2
	growthLen := float64(plantType.MaturityDays) - germinationLen
	if growthLen < 1 {
		growthLen = 1
	}
	harvestLen := float64(plantType.HarvestWindowDays)
	if harvestLen < 1 {
		harvestLen = 1
	}
	total := germinationLen + growthLen + harvestLen

	germinationPct := 100.0
	if germinationLen > 0 {
		germinationPct = clampPct(elapsed / germinationLen * 100)
	}

	return &PhaseSnapshot{
		ElapsedDays:      elapsed,
		GerminationPct:   germinationPct,
		GrowthPct:        clampPct((elapsed - germinationLen) / growthLen * 100),
		HarvestPct:       clampPct((elapsed - germinationLen - growthLen) / harvestLen * 100),
		GerminationStart: planting.PlantedAt.AddDays(plantType.GerminationMinDays),
		GerminationEnd:   planting.PlantedAt.AddDays(plantType.GerminationMaxDays),
		FirstHarvest:     planting.PlantedAt.AddDays(plantType.MaturityDays),
		LastHarvest:      planting.PlantedAt.AddDays(plantType.MaturityDays + plantType.HarvestWindowDays),
		Done:             elapsed > total,
	}
}

func clampPct(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
