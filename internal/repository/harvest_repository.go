package repository

import (
	"sync"

	"github.com/mossline/gardenlog/internal/models"
	"github.com/mossline/gardenlog/internal/storage"
)

const harvestsKey = "harvests"

// HarvestRepository holds the harvest ledger in memory, newest first.
// Entries are immutable once created; only create and delete mutate.
type HarvestRepository struct {
	gateway *storage.Gateway

	mu       sync.RWMutex
	harvests []models.Harvest
}

func NewHarvestRepository(gateway *storage.Gateway) *HarvestRepository {
	r := &HarvestRepository{
		gateway:  gateway,
		harvests: []models.Harvest{},
	}
	gateway.Load(harvestsKey, &r.harvests)
	return r
}

func (r *HarvestRepository) Create(harvest *models.Harvest) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.harvests = append([]models.Harvest{*harvest}, r.harvests...)
	r.persist()
}

func (r *HarvestRepository) FindByID(id string) *models.Harvest {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.harvests {
		if r.harvests[i].ID == id {
			harvest := r.harvests[i]
			return &harvest
		}
	}
	return nil
}

func (r *HarvestRepository) Delete(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.harvests {
		if r.harvests[i].ID == id {
			r.harvests = append(r.harvests[:i], r.harvests[i+1:]...)
			r.persist()
			return true
		}
	}
	return false
}

func (r *HarvestRepository) FindAll() []models.Harvest {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Harvest, len(r.harvests))
	copy(out, r.harvests)
	return out
}

// FindByPlantingID returns the ledger entries for one planting, newest
// first, including entries whose planting has since been deleted only
// when that planting id is asked for explicitly.
func (r *HarvestRepository) FindByPlantingID(plantingID string) []models.Harvest {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []models.Harvest
	for _, h := range r.harvests {
		if h.PlantingID == plantingID {
			out = append(out, h)
		}
	}
	return out
}

func (r *HarvestRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.harvests)
}

func (r *HarvestRepository) Replace(harvests []models.Harvest) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.harvests = make([]models.Harvest, len(harvests))
	copy(r.harvests, harvests)
	r.persist()
}

func (r *HarvestRepository) persist() {
	r.gateway.SaveAsync(harvestsKey, r.harvests)
}
