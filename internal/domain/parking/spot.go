package parking

import "errors"

var ErrInvalidSpotID = errors.New("parking spot id must be positive")

type Spot struct {
	id          int32
	parkingType ParkingType
	available   bool
}

func NewSpot(id int32, t ParkingType) (*Spot, error) {
	if id <= 0 {
		return nil, ErrInvalidSpotID
	}
	if !t.IsValid() {
		return nil, ErrUnsupportedParkingType
	}
	return &Spot{
		id:          id,
		parkingType: t,
		available:   true,
	}, nil
}

func ReconstructSpot(id int32, t ParkingType, available bool) *Spot {
	return &Spot{
		id:          id,
		parkingType: t,
		available:   available,
	}
}

func (s *Spot) Occupy()  { s.available = false }
func (s *Spot) Release() { s.available = true }

func (s *Spot) ID() int32         { return s.id }
func (s *Spot) Type() ParkingType { return s.parkingType }
func (s *Spot) IsAvailable() bool { return s.available }
