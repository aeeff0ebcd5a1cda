package queries

import (
	"context"
	"strings"
	"time"

	"parking-system/internal/domain/parking"
	"parking-system/internal/pkg/clock"
	"parking-system/internal/pkg/errs"
	"parking-system/internal/usecase/shared"
)

type TicketView struct {
	ID            int64
	SpotID        int32
	Type          parking.ParkingType
	Registration  string
	InTime        time.Time
	OutTime       *time.Time
	Price         float64
	Open          bool
	DurationHours float64
	Visits        int
}

type QRRenderer interface {
	PNG(t *parking.Ticket) ([]byte, error)
}

type TicketQueries interface {
	// LatestTicket returns the vehicle's most recent ticket with its visit count
	LatestTicket(ctx context.Context, reg string) (*TicketView, error)
	// TicketQR renders the vehicle's most recent ticket as a PNG QR code
	TicketQR(ctx context.Context, reg string) ([]byte, error)
}

type ticketQueriesImpl struct {
	tickets shared.TicketStore
	qr      QRRenderer
	clock   clock.Clock
}

func NewTicketQueries(tickets shared.TicketStore, qr QRRenderer, clock clock.Clock) TicketQueries {
	return &ticketQueriesImpl{
		tickets: tickets,
		qr:      qr,
		clock:   clock,
	}
}

func (q *ticketQueriesImpl) LatestTicket(ctx context.Context, reg string) (*TicketView, error) {
	ticket, err := q.find(ctx, reg)
	if err != nil {
		return nil, err
	}

	visits, err := q.tickets.CountByVehicle(ctx, ticket.VehicleRegNumber())
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "failed to count visits"), errs.ErrDatabase)
	}

	view := ToTicketView(ticket, q.clock.Now())
	view.Visits = visits
	return view, nil
}

func (q *ticketQueriesImpl) TicketQR(ctx context.Context, reg string) ([]byte, error) {
	ticket, err := q.find(ctx, reg)
	if err != nil {
		return nil, err
	}

	png, err := q.qr.PNG(ticket)
	if err != nil {
		return nil, errs.Wrapf(err, "failed to render QR code for ticket %d", ticket.ID())
	}
	return png, nil
}

func (q *ticketQueriesImpl) find(ctx context.Context, reg string) (*parking.Ticket, error) {
	reg = strings.TrimSpace(reg)
	ticket, err := q.tickets.FindByVehicle(ctx, reg)
	if err != nil {
		return nil, errs.Mark(errs.Wrapf(err, "failed to find ticket for vehicle %s", reg), errs.ErrDatabase)
	}
	if ticket == nil {
		return nil, errs.MarkWithMessage(errs.ErrTicketNotFound,
			"no ticket found for vehicle registration number: %s", reg)
	}
	return ticket, nil
}

func ToTicketView(t *parking.Ticket, now time.Time) *TicketView {
	view := &TicketView{
		ID:            t.ID(),
		Type:          t.Type(),
		Registration:  t.VehicleRegNumber(),
		InTime:        t.InTime(),
		OutTime:       t.OutTime(),
		Price:         t.Price(),
		Open:          t.IsOpen(),
		DurationHours: t.DurationHours(now),
	}
	if t.Spot() != nil {
		view.SpotID = t.Spot().ID()
	}
	return view
}
