package request

import (
	"parking-system/internal/domain/parking"
	"parking-system/internal/pkg/patch"
)

// Registration and type are validated by the entry use case, registration first.
type EntryRequest struct {
	Registration string `json:"registration" binding:"required"`
	Type         string `json:"type"`
}

// ParkingType returns the empty type for a missing or blank name.
func (r *EntryRequest) ParkingType() parking.ParkingType {
	return parking.NormalizeParkingType(r.Type)
}

type ExitRequest struct {
	Registration string `json:"registration" binding:"required"`
}

// InitializePoolRequest falls back to the configured pool size for omitted counts.
type InitializePoolRequest struct {
	Cars  *int `json:"cars" binding:"omitempty,min=0"`
	Bikes *int `json:"bikes" binding:"omitempty,min=0"`
}

func (r *InitializePoolRequest) Sizes(defaultCars, defaultBikes int) (cars, bikes int) {
	return patch.Coalesce(r.Cars, defaultCars), patch.Coalesce(r.Bikes, defaultBikes)
}
