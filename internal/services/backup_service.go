package services

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/mossline/gardenlog/internal/models"
	"github.com/mossline/gardenlog/internal/repository"
)

var ErrInvalidBackup = errors.New("invalid backup payload")

// Backup is the export payload: the three collections plus the export
// timestamp. Import ignores exportedAt and any extra keys.
type Backup struct {
	PlantTypes []models.PlantType `json:"plantTypes"`
	Plantings  []models.Planting  `json:"plantings"`
	Harvests   []models.Harvest   `json:"harvests"`
	ExportedAt time.Time          `json:"exportedAt"`
}

type BackupService struct {
	catalogueRepo *repository.CatalogueRepository
	plantingRepo  *repository.PlantingRepository
	harvestRepo   *repository.HarvestRepository
}

func NewBackupService(
	catalogueRepo *repository.CatalogueRepository,
	plantingRepo *repository.PlantingRepository,
	harvestRepo *repository.HarvestRepository,
) *BackupService {
	return &BackupService{
		catalogueRepo: catalogueRepo,
		plantingRepo:  plantingRepo,
		harvestRepo:   harvestRepo,
	}
}

// Export snapshots the three live collections. The payload needs no
// validation on the way out; it is produced from state that is already
// valid.
func (s *BackupService) Export() *Backup {
	return &Backup{
		PlantTypes: s.catalogueRepo.FindAll(),
		Plantings:  s.plantingRepo.FindAll(),
		Harvests:   s.harvestRepo.FindAll(),
		ExportedAt: time.Now(),
	}
}

// Import validates the payload and replaces all three collections, or
// rejects it and changes nothing. Acceptance requires only that the
// three collection keys are present; entries are taken as-is with no
// referential-integrity check.
func (s *BackupService) Import(data []byte) error {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(data, &probe); err != nil {
		return ErrInvalidBackup
	}
	for _, key := range []string{"plantTypes", "plantings", "harvests"} {
		if _, ok := probe[key]; !ok {
			return ErrInvalidBackup
		}
	}

	var backup Backup
	if err := json.Unmarshal(data, &backup); err != nil {
		return ErrInvalidBackup
	}

	s.catalogueRepo.Replace(backup.PlantTypes)
	s.plantingRepo.Replace(backup.Plantings)
	s.harvestRepo.Replace(backup.Harvests)

	return nil
}
