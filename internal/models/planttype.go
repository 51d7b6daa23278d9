package models

import "github.com/google/uuid"

// Unit is the measurement unit a harvest amount is recorded in.
type Unit string

const (
	UnitKg    Unit = "kg"
	UnitCount Unit = "count"
)

func (u Unit) Valid() bool {
	return u == UnitKg || u == UnitCount
}

// PlantType is a catalogue entry: a named plant with the timing
// parameters the phase estimator runs on. Timing values are taken as
// supplied; horticultural sanity is not enforced.
type PlantType struct {
	ID                 string `json:"id"`
	Name               string `json:"name"`
	GerminationMinDays int    `json:"germinationMinDays"`
	GerminationMaxDays int    `json:"germinationMaxDays"`
	MaturityDays       int    `json:"maturityDays"`
	HarvestWindowDays  int    `json:"harvestWindowDays"`
	DefaultUnit        Unit   `json:"defaultUnit"`
}

// NewID returns a fresh entity id. IDs are immutable once assigned.
func NewID() string {
	return uuid.NewString()
}
