package repository

import (
	"sync"

	"github.com/mossline/gardenlog/internal/models"
	"github.com/mossline/gardenlog/internal/storage"
)

const plantTypesKey = "plantTypes"

// CatalogueRepository holds the plant-type catalogue in memory and
// persists the whole collection through the gateway after every
// mutation. Iteration order is insertion order.
type CatalogueRepository struct {
	gateway *storage.Gateway

	mu         sync.RWMutex
	plantTypes []models.PlantType
}

func NewCatalogueRepository(gateway *storage.Gateway) *CatalogueRepository {
	r := &CatalogueRepository{
		gateway:    gateway,
		plantTypes: []models.PlantType{},
	}
	gateway.Load(plantTypesKey, &r.plantTypes)
	return r
}

func (r *CatalogueRepository) Create(plantType *models.PlantType) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.plantTypes = append(r.plantTypes, *plantType)
	r.persist()
}

func (r *CatalogueRepository) FindByID(id string) *models.PlantType {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.plantTypes {
		if r.plantTypes[i].ID == id {
			plantType := r.plantTypes[i]
			return &plantType
		}
	}
	return nil
}

func (r *CatalogueRepository) Update(plantType *models.PlantType) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.plantTypes {
		if r.plantTypes[i].ID == plantType.ID {
			r.plantTypes[i] = *plantType
			r.persist()
			return true
		}
	}
	return false
}

// Delete removes the plant type by id. Plantings referencing it are
// left alone; their lookups resolve to nil from now on.
func (r *CatalogueRepository) Delete(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.plantTypes {
		if r.plantTypes[i].ID == id {
			r.plantTypes = append(r.plantTypes[:i], r.plantTypes[i+1:]...)
			r.persist()
			return true
		}
	}
	return false
}

func (r *CatalogueRepository) FindAll() []models.PlantType {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.PlantType, len(r.plantTypes))
	copy(out, r.plantTypes)
	return out
}

func (r *CatalogueRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.plantTypes)
}

// Replace swaps in a whole new collection, used by backup import.
func (r *CatalogueRepository) Replace(plantTypes []models.PlantType) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.plantTypes = make([]models.PlantType, len(plantTypes))
	copy(r.plantTypes, plantTypes)
	r.persist()
}

// persist serializes under the lock; the write itself is fire-and-forget.
func (r *CatalogueRepository) persist() {
	r.gateway.SaveAsync(plantTypesKey, r.plantTypes)
}
