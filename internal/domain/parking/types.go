package parking

import (
	"errors"
	"strings"
)

var ErrUnsupportedParkingType = errors.New("unsupported parking type")

type ParkingType string

const (
	TypeCar  ParkingType = "CAR"
	TypeBike ParkingType = "BIKE"
)

// AllTypes lists the closed set of parking types in pool numbering order.
var AllTypes = []ParkingType{TypeCar, TypeBike}

func (t ParkingType) String() string {
	return string(t)
}

func (t ParkingType) IsValid() bool {
	switch t {
	case TypeCar, TypeBike:
		return true
	default:
		return false
	}
}

// NormalizeParkingType trims and upper-cases the name without validating it.
// A blank name becomes the empty type.
func NormalizeParkingType(s string) ParkingType {
	return ParkingType(strings.ToUpper(strings.TrimSpace(s)))
}
