package services

import (
	"sort"

	"github.com/mossline/gardenlog/internal/models"
	"github.com/mossline/gardenlog/internal/repository"
)

// UnknownPlantTypeName labels totals whose planting references a
// deleted catalogue entry.
const UnknownPlantTypeName = "Unknown"

type MonthlyTotal struct {
	Month string  `json:"month"`
	Total float64 `json:"total"`
}

type PlantTypeTotal struct {
	Name  string  `json:"name"`
	Total float64 `json:"total"`
}

type Summary struct {
	PlantTypes      int     `json:"plantTypes"`
	Plantings       int     `json:"plantings"`
	ActivePlantings int     `json:"activePlantings"`
	Harvests        int     `json:"harvests"`
	TotalKg         float64 `json:"totalKg"`
	TotalCount      float64 `json:"totalCount"`
}

// ReportService recomputes grouped harvest totals on demand from
// current collection state. Totals are always partitioned by unit
// first; kg and count are never summed together.
type ReportService struct {
	harvestRepo   *repository.HarvestRepository
	plantingRepo  *repository.PlantingRepository
	catalogueRepo *repository.CatalogueRepository
}

func NewReportService(
	harvestRepo *repository.HarvestRepository,
	plantingRepo *repository.PlantingRepository,
	catalogueRepo *repository.CatalogueRepository,
) *ReportService {
	return &ReportService{
		harvestRepo:   harvestRepo,
		plantingRepo:  plantingRepo,
		catalogueRepo: catalogueRepo,
	}
}

func (s *ReportService) MonthlyTotalsForUnit(unit models.Unit) []MonthlyTotal {
	return MonthlyTotals(filterByUnit(s.harvestRepo.FindAll(), unit))
}

func (s *ReportService) TotalsByPlantTypeForUnit(unit models.Unit) []PlantTypeTotal {
	return TotalsByPlantType(
		filterByUnit(s.harvestRepo.FindAll(), unit),
		s.plantingRepo.FindAll(),
		s.catalogueRepo.FindAll(),
	)
}

func (s *ReportService) Summarize() Summary {
	summary := Summary{
		PlantTypes: s.catalogueRepo.Count(),
		Harvests:   s.harvestRepo.Count(),
	}
	for _, p := range s.plantingRepo.FindAll() {
		summary.Plantings++
		if !p.Archived {
			summary.ActivePlantings++
		}
	}
	for _, h := range s.harvestRepo.FindAll() {
		switch h.Unit {
		case models.UnitKg:
			summary.TotalKg += h.Amount
		case models.UnitCount:
			summary.TotalCount += h.Amount
		}
	}
	return summary
}

// MonthlyTotals sums amounts per YYYY-MM key, ascending. Callers pass a
// single-unit subset; totals across units are not meaningful.
func MonthlyTotals(harvests []models.Harvest) []MonthlyTotal {
	totals := make(map[string]float64)
	for _, h := range harvests {
		totals[h.Date.MonthKey()] += h.Amount
	}

	months := make([]string, 0, len(totals))
	for month := range totals {
		months = append(months, month)
	}
	sort.Strings(months)

	out := make([]MonthlyTotal, len(months))
	for i, month := range months {
		out[i] = MonthlyTotal{Month: month, Total: totals[month]}
	}
	return out
}

// TotalsByPlantType sums amounts grouped by resolved plant-type name,
// descending by total with first-seen order on ties. Harvests whose
// planting is gone are skipped; plantings whose type is gone count
// under "Unknown".
func TotalsByPlantType(harvests []models.Harvest, plantings []models.Planting, plantTypes []models.PlantType) []PlantTypeTotal {
	plantingByID := make(map[string]models.Planting, len(plantings))
	for _, p := range plantings {
		plantingByID[p.ID] = p
	}
	typeByID := make(map[string]models.PlantType, len(plantTypes))
	for _, pt := range plantTypes {
		typeByID[pt.ID] = pt
	}

	totals := make(map[string]float64)
	var order []string
	for _, h := range harvests {
		planting, ok := plantingByID[h.PlantingID]
		if !ok {
			continue
		}
		name := UnknownPlantTypeName
		if plantType, ok := typeByID[planting.PlantTypeID]; ok {
			name = plantType.Name
		}
		if _, seen := totals[name]; !seen {
			order = append(order, name)
		}
		totals[name] += h.Amount
	}

	out := make([]PlantTypeTotal, len(order))
	for i, name := range order {
		out[i] = PlantTypeTotal{Name: name, Total: totals[name]}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Total > out[j].Total
	})
	return out
}

func filterByUnit(harvests []models.Harvest, unit models.Unit) []models.Harvest {
	out := make([]models.Harvest, 0, len(harvests))
	for _, h := range harvests {
		if h.Unit == unit {
			out = append(out, h)
		}
	}
	return out
}
