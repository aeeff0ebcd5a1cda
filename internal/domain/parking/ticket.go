package parking

import (
	"errors"
	"time"

	"parking-system/internal/pkg/errs"
)

var (
	ErrSpotRequired         = errors.New("ticket requires a parking spot")
	ErrEntryTimeRequired    = errors.New("ticket requires an entry time")
	ErrTicketAlreadyClosed  = errors.New("ticket is already closed")
	ErrExitBeforeEntry      = errors.New("exit time must be after entry time")
	ErrNegativeFare         = errors.New("fare cannot be negative")
	ErrTicketIDAlreadyGiven = errors.New("ticket id is already assigned")
)

// Ticket records one stay of a vehicle in a spot. It is open until an exit
// time is stamped, and closed tickets are never reopened.
type Ticket struct {
	id               int64
	spot             *Spot
	vehicleRegNumber string
	inTime           time.Time
	outTime          *time.Time
	price            float64
}

func NewTicket(reg Registration, spot *Spot, inTime time.Time) (*Ticket, error) {
	if spot == nil {
		return nil, ErrSpotRequired
	}
	if inTime.IsZero() {
		return nil, ErrEntryTimeRequired
	}
	return &Ticket{
		spot:             spot,
		vehicleRegNumber: reg.Value(),
		inTime:           inTime,
	}, nil
}

func ReconstructTicket(
	id int64,
	spot *Spot,
	vehicleRegNumber string,
	inTime time.Time,
	outTime *time.Time,
	price float64,
) *Ticket {
	return &Ticket{
		id:               id,
		spot:             spot,
		vehicleRegNumber: vehicleRegNumber,
		inTime:           inTime,
		outTime:          outTime,
		price:            price,
	}
}

// AssignID records the identity handed out by the ticket store.
func (t *Ticket) AssignID(id int64) error {
	if t.id != 0 {
		return ErrTicketIDAlreadyGiven
	}
	t.id = id
	return nil
}

// StampExit closes the stay at the given time.
func (t *Ticket) StampExit(at time.Time) error {
	if t.outTime != nil {
		return errs.MarkWithMessage(ErrTicketAlreadyClosed, "ticket %d was closed at %s",
			t.id, t.outTime.Format(time.RFC3339))
	}
	if at.Before(t.inTime) {
		return errs.MarkWithMessage(ErrExitBeforeEntry,
			"exit time must be after entry time for ticket %d", t.id)
	}
	out := at
	t.outTime = &out
	return nil
}

func (t *Ticket) ApplyFare(price float64) error {
	if price < 0 {
		return ErrNegativeFare
	}
	t.price = price
	return nil
}

func (t *Ticket) IsOpen() bool {
	return t.outTime == nil
}

func (t *Ticket) HasEntryTime() bool {
	return !t.inTime.IsZero()
}

// Type is the parking type of the referenced spot, empty when the spot is unknown.
func (t *Ticket) Type() ParkingType {
	if t.spot == nil {
		return ""
	}
	return t.spot.Type()
}

// DurationHours is the stay length in fractional hours; open tickets measure up to now.
func (t *Ticket) DurationHours(now time.Time) float64 {
	end := now
	if t.outTime != nil {
		end = *t.outTime
	}
	if t.inTime.IsZero() || end.Before(t.inTime) {
		return 0
	}
	return end.Sub(t.inTime).Hours()
}

func (t *Ticket) ID() int64                { return t.id }
func (t *Ticket) Spot() *Spot              { return t.spot }
func (t *Ticket) VehicleRegNumber() string { return t.vehicleRegNumber }
func (t *Ticket) InTime() time.Time        { return t.inTime }
func (t *Ticket) OutTime() *time.Time      { return t.outTime }
func (t *Ticket) Price() float64           { return t.price }
