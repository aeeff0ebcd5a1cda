package parking

import (
	"errors"
	"math"
	"time"

	"parking-system/internal/pkg/clock"
	"parking-system/internal/pkg/errs"
)

var (
	ErrInvalidStay     = errors.New("invalid stay")
	ErrOutBeforeIn     = errors.New("out-time is before in-time")
	ErrInvalidDuration = errors.New("invalid stay duration")
)

const (
	// GracePeriod is the free part of every stay.
	GracePeriod = 30 * time.Minute

	CarRatePerHour  = 1.0
	BikeRatePerHour = 0.5

	// DiscountMultiplier applies to discount-eligible stays after the hourly rounding.
	DiscountMultiplier = 0.95

	notSet = "not set"
)

type FareCalculator interface {
	ValidateStay(t *Ticket) error
	CalculateFare(t *Ticket, discountEligible bool) (float64, error)
}

type DefaultFareCalculator struct {
	clock clock.Clock
}

func NewDefaultFareCalculator(c clock.Clock) *DefaultFareCalculator {
	return &DefaultFareCalculator{clock: c}
}

// ValidateStay reports the first failing timing rule: both times present,
// entry not in the future, exit not before entry.
func (fc *DefaultFareCalculator) ValidateStay(t *Ticket) error {
	if t == nil {
		return errs.MarkWithMessage(ErrInvalidStay, "ticket is not set")
	}

	if t.inTime.IsZero() || t.outTime == nil {
		return errs.MarkWithMessage(ErrInvalidStay,
			"in-time or out-time is not set. In-time: %s, Out-time: %s",
			formatTime(&t.inTime), formatTime(t.outTime))
	}

	if t.inTime.After(fc.clock.Now()) {
		return errs.MarkWithMessage(ErrInvalidStay,
			"in-time is in the future: %s", t.inTime.Format(time.RFC3339))
	}

	if t.inTime.After(*t.outTime) {
		return errs.MarkWithMessage(ErrOutBeforeIn,
			"out-time is before in-time. In-time: %s, Out-time: %s",
			t.inTime.Format(time.RFC3339), t.outTime.Format(time.RFC3339))
	}

	return nil
}

func (fc *DefaultFareCalculator) CalculateFare(t *Ticket, discountEligible bool) (float64, error) {
	if err := fc.ValidateStay(t); err != nil {
		return 0, err
	}

	minutes := int64(t.outTime.Sub(t.inTime) / time.Minute)
	if minutes <= 0 {
		return 0, errs.MarkWithMessage(ErrInvalidDuration,
			"exit time must be after entry time, stay lasted %s", t.outTime.Sub(t.inTime))
	}

	rate, err := RatePerHour(t.Type())
	if err != nil {
		return 0, err
	}

	billableMinutes := max(0, minutes-int64(GracePeriod/time.Minute))
	billableHours := math.Ceil(float64(billableMinutes) / 60.0)

	fare := billableHours * rate
	if discountEligible {
		fare *= DiscountMultiplier
	}
	return fare, nil
}

func RatePerHour(t ParkingType) (float64, error) {
	switch t {
	case TypeCar:
		return CarRatePerHour, nil
	case TypeBike:
		return BikeRatePerHour, nil
	default:
		return 0, errs.MarkWithMessage(ErrUnsupportedParkingType, "unknown parking type %q", string(t))
	}
}

func formatTime(t *time.Time) string {
	if t == nil || t.IsZero() {
		return notSet
	}
	return t.Format(time.RFC3339)
}
