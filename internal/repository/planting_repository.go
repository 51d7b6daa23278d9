package repository

import (
	"sync"

	"github.com/mossline/gardenlog/internal/models"
	"github.com/mossline/gardenlog/internal/storage"
)

const plantingsKey = "plantings"

// PlantingRepository holds planting records in memory, newest first,
// persisting the whole collection after every mutation.
type PlantingRepository struct {
	gateway *storage.Gateway

	mu        sync.RWMutex
	plantings []models.Planting
}

func NewPlantingRepository(gateway *storage.Gateway) *PlantingRepository {
	r := &PlantingRepository{
		gateway:   gateway,
		plantings: []models.Planting{},
	}
	gateway.Load(plantingsKey, &r.plantings)
	return r
}

// Create prepends so FindAll yields newest first.
func (r *PlantingRepository) Create(planting *models.Planting) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.plantings = append([]models.Planting{*planting}, r.plantings...)
	r.persist()
}

func (r *PlantingRepository) FindByID(id string) *models.Planting {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.plantings {
		if r.plantings[i].ID == id {
			planting := r.plantings[i]
			return &planting
		}
	}
	return nil
}

func (r *PlantingRepository) Update(planting *models.Planting) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.plantings {
		if r.plantings[i].ID == planting.ID {
			r.plantings[i] = *planting
			r.persist()
			return true
		}
	}
	return false
}

// Delete removes the planting by id. Its harvests are not cascaded;
// they dangle and aggregation skips them.
func (r *PlantingRepository) Delete(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.plantings {
		if r.plantings[i].ID == id {
			r.plantings = append(r.plantings[:i], r.plantings[i+1:]...)
			r.persist()
			return true
		}
	}
	return false
}

func (r *PlantingRepository) FindAll() []models.Planting {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Planting, len(r.plantings))
	copy(out, r.plantings)
	return out
}

func (r *PlantingRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.plantings)
}

func (r *PlantingRepository) Replace(plantings []models.Planting) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.plantings = make([]models.Planting, len(plantings))
	copy(r.plantings, plantings)
	r.persist()
}

func (r *PlantingRepository) persist() {
	r.gateway.SaveAsync(plantingsKey, r.plantings)
}
