package models

// Planting records a single sowing or transplanting event. PlantTypeID
// is a weak reference: deleting the catalogue entry leaves the planting
// in place and lookups must treat the missing type as unknown.
type Planting struct {
	ID              string `json:"id"`
	PlantTypeID     string `json:"plantTypeId"`
	PlantedAt       Date   `json:"plantedAt"`
	Location        string `json:"location"`
	QuantityPlanted int    `json:"quantityPlanted"`
	Notes           string `json:"notes"`
	Archived        bool   `json:"archived"`
}
