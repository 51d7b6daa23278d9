package models

// Harvest records one yield-collection event against a planting.
// PlantingID is a weak reference, same as Planting.PlantTypeID.
// Harvests are never mutated after creation.
type Harvest struct {
	ID         string  `json:"id"`
	PlantingID string  `json:"plantingId"`
	Date       Date    `json:"date"`
	Amount     float64 `json:"amount"`
	Unit       Unit    `json:"unit"`
	Notes      string  `json:"notes"`
}
