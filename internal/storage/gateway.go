package storage

import (
	"encoding/json"
	"errors"
	"log"
	"sync"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Blob is one persisted collection, stored whole as a JSON document
// under a fixed key.
type Blob struct {
	Key       string `gorm:"primaryKey"`
	Value     []byte `gorm:"not null"`
	UpdatedAt time.Time
}

// Gateway is the key-value persistence boundary. Collections cross it
// as opaque JSON; failures are logged and swallowed here so callers
// never observe them.
type Gateway struct {
	db *gorm.DB
	wg sync.WaitGroup
}

func NewGateway(db *gorm.DB) *Gateway {
	return &Gateway{db: db}
}

// Save overwrites the blob stored under key. Idempotent upsert.
func (g *Gateway) Save(key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return g.put(key, data)
}

// SaveAsync serializes value now and writes it in the background.
// Mutation paths call this and move on; a failed write is logged, not
// surfaced, and overlapping writes resolve last-write-wins.
func (g *Gateway) SaveAsync(key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		log.Printf("storage: marshal %q: %v", key, err)
		return
	}
	g.wg.Add(1)
	go func() {
		defer g.wg.Done()
		if err := g.put(key, data); err != nil {
			log.Printf("storage: async save %q: %v", key, err)
		}
	}()
}

// Wait blocks until every scheduled async write has landed. Short-lived
// CLI paths call this before exiting; the server never does.
func (g *Gateway) Wait() {
	g.wg.Wait()
}

// Load unmarshals the blob stored under key into dest. A missing key,
// an uninitialized store, or a corrupt blob all leave dest unchanged,
// so callers preload dest with their fallback value.
func (g *Gateway) Load(key string, dest any) {
	var blob Blob
	err := g.db.Where("key = ?", key).First(&blob).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("storage: load %q: %v", key, err)
		}
		return
	}
	if err := json.Unmarshal(blob.Value, dest); err != nil {
		log.Printf("storage: unmarshal %q: %v", key, err)
	}
}

func (g *Gateway) put(key string, data []byte) error {
	blob := Blob{Key: key, Value: data, UpdatedAt: time.Now()}
	return g.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&blob).Error
}
