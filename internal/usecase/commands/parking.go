package commands

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"parking-system/internal/domain/parking"
	"parking-system/internal/pkg/clock"
	"parking-system/internal/pkg/errs"
	"parking-system/internal/usecase/queries"
	"parking-system/internal/usecase/shared"
)

const (
	opEntry = "entry"
	opExit  = "exit"
)

type ParkingCommands interface {
	// ProcessEntry allocates the next free spot of the type and opens a ticket
	ProcessEntry(ctx context.Context, reg string, t parking.ParkingType) (*parking.Ticket, error)
	// ProcessExit closes the vehicle's latest ticket, charges it and frees the spot
	ProcessExit(ctx context.Context, reg string) (*parking.Ticket, error)
}

type parkingCommandsImpl struct {
	spots    shared.SpotStore
	tickets  shared.TicketStore
	fares    parking.FareCalculator
	discount DiscountPolicy
	gate     *shared.OperationGate
	events   shared.EventPublisher
	metrics  shared.MetricsRecorder
	clock    clock.Clock
}

func NewParkingCommands(
	spots shared.SpotStore,
	tickets shared.TicketStore,
	fares parking.FareCalculator,
	discount DiscountPolicy,
	gate *shared.OperationGate,
	events shared.EventPublisher,
	metrics shared.MetricsRecorder,
	clock clock.Clock,
) ParkingCommands {
	return &parkingCommandsImpl{
		spots:    spots,
		tickets:  tickets,
		fares:    fares,
		discount: discount,
		gate:     gate,
		events:   events,
		metrics:  metrics,
		clock:    clock,
	}
}

func (p *parkingCommandsImpl) ProcessEntry(ctx context.Context, reg string, t parking.ParkingType) (*parking.Ticket, error) {
	var ticket *parking.Ticket
	err := p.gate.Do(func() error {
		var err error
		ticket, err = p.processEntry(ctx, reg, t)
		return err
	})
	if err != nil {
		p.metrics.OperationFailed(opEntry, failureReason(err))
		slog.Warn("vehicle entry failed",
			"vehicle", strings.TrimSpace(reg),
			"type", t.String(),
			"error", err.Error())
		return nil, err
	}

	p.metrics.TicketOpened(ticket.Type())
	p.publish(ctx, shared.TicketOpened, ticket)
	slog.Info("vehicle entered",
		"ticket_id", ticket.ID(),
		"vehicle", ticket.VehicleRegNumber(),
		"spot_id", ticket.Spot().ID(),
		"type", ticket.Type().String())
	return ticket, nil
}

// Saving the ticket and occupying the spot are separate writes. A failed
// occupy leaves the saved ticket in place.
func (p *parkingCommandsImpl) processEntry(ctx context.Context, reg string, t parking.ParkingType) (*parking.Ticket, error) {
	registration, err := parking.NewRegistration(reg)
	if err != nil {
		return nil, err
	}

	spot, err := p.nextAvailableSpot(ctx, t)
	if err != nil {
		return nil, err
	}
	if spot == nil {
		return nil, errs.MarkWithMessage(errs.ErrNoAvailableSpot, "no available %s parking spot", t)
	}

	ticket, err := parking.NewTicket(registration, spot, p.clock.Now())
	if err != nil {
		return nil, err
	}

	saved, err := p.tickets.Save(ctx, ticket)
	if err != nil {
		return nil, errs.Mark(errs.Wrapf(err, "failed to save ticket for vehicle %s", registration), errs.ErrDatabase)
	}
	if !saved {
		return nil, errs.MarkWithMessage(errs.ErrTicketSaveFailed,
			"unable to save ticket for vehicle %s at spot %d", registration, spot.ID())
	}

	updated, err := p.spots.SetAvailability(ctx, spot.ID(), false)
	if err != nil {
		return nil, errs.Mark(errs.Wrapf(err, "failed to occupy spot %d", spot.ID()), errs.ErrDatabase)
	}
	if !updated {
		return nil, errs.MarkWithMessage(errs.ErrSpotUpdateFailed,
			"unable to update parking spot availability for spot %d", spot.ID())
	}
	spot.Occupy()

	return ticket, nil
}

func (p *parkingCommandsImpl) nextAvailableSpot(ctx context.Context, t parking.ParkingType) (*parking.Spot, error) {
	return queries.NextAvailableSpot(ctx, p.spots, t)
}

func (p *parkingCommandsImpl) ProcessExit(ctx context.Context, reg string) (*parking.Ticket, error) {
	var (
		ticket     *parking.Ticket
		discounted bool
	)
	err := p.gate.Do(func() error {
		var err error
		ticket, discounted, err = p.processExit(ctx, reg)
		return err
	})
	if err != nil {
		p.metrics.OperationFailed(opExit, failureReason(err))
		slog.Warn("vehicle exit failed",
			"vehicle", strings.TrimSpace(reg),
			"error", err.Error())
		return nil, err
	}

	p.metrics.TicketClosed(ticket.Type(), ticket.Price(), discounted)
	p.publish(ctx, shared.TicketClosed, ticket)
	slog.Info("vehicle exited",
		"ticket_id", ticket.ID(),
		"vehicle", ticket.VehicleRegNumber(),
		"spot_id", ticket.Spot().ID(),
		"fare", ticket.Price(),
		"discounted", discounted)
	return ticket, nil
}

func (p *parkingCommandsImpl) processExit(ctx context.Context, reg string) (*parking.Ticket, bool, error) {
	reg = strings.TrimSpace(reg)
	if reg == "" {
		return nil, false, errs.MarkWithMessage(parking.ErrInvalidRegistration,
			"vehicle registration number cannot be empty")
	}

	ticket, err := p.tickets.FindByVehicle(ctx, reg)
	if err != nil {
		return nil, false, errs.Mark(errs.Wrapf(err, "failed to find ticket for vehicle %s", reg), errs.ErrDatabase)
	}
	if ticket == nil {
		return nil, false, errs.MarkWithMessage(errs.ErrTicketNotFound,
			"no ticket found for vehicle registration number: %s", reg)
	}
	if !ticket.HasEntryTime() {
		return nil, false, errs.MarkWithMessage(errs.ErrMissingEntryTime,
			"entry time is not set for ticket %d", ticket.ID())
	}

	// a clock behind the stored entry time still yields a one-minute stay
	now := p.clock.Now()
	exitTime := now
	if now.Before(ticket.InTime()) {
		exitTime = ticket.InTime().Add(time.Minute)
	}
	if err := ticket.StampExit(exitTime); err != nil {
		return nil, false, err
	}

	discounted, err := p.discount.Eligible(ctx, ticket)
	if err != nil {
		return nil, false, err
	}

	fare, err := p.fares.CalculateFare(ticket, discounted)
	if err != nil {
		return nil, false, errs.Mark(errs.Wrapf(err, "fare calculation failed for ticket %d", ticket.ID()),
			errs.ErrFareCalculationFailed)
	}
	if err := ticket.ApplyFare(fare); err != nil {
		return nil, false, errs.Mark(errs.Wrapf(err, "fare calculation failed for ticket %d", ticket.ID()),
			errs.ErrFareCalculationFailed)
	}

	updated, err := p.tickets.Update(ctx, ticket)
	if err != nil {
		return nil, false, errs.Mark(errs.Wrapf(err, "failed to update ticket %d", ticket.ID()), errs.ErrDatabase)
	}
	if !updated {
		return nil, false, errs.MarkWithMessage(errs.ErrTicketUpdateFailed,
			"unable to update ticket %d", ticket.ID())
	}

	spotID := ticket.Spot().ID()
	released, err := p.spots.SetAvailability(ctx, spotID, true)
	if err != nil {
		return nil, false, errs.Mark(errs.Wrapf(err, "failed to release spot %d", spotID), errs.ErrDatabase)
	}
	if !released {
		return nil, false, errs.MarkWithMessage(errs.ErrSpotUpdateFailed,
			"unable to update parking spot availability for spot %d", spotID)
	}
	ticket.Spot().Release()

	return ticket, discounted, nil
}

// publish is best effort; a broker outage never fails a parking operation.
func (p *parkingCommandsImpl) publish(ctx context.Context, typ shared.TicketEventType, t *parking.Ticket) {
	ev := shared.NewTicketEvent(typ, t, p.clock.Now())
	if err := p.events.Publish(ctx, ev); err != nil {
		slog.Warn("failed to publish ticket event",
			"type", string(typ),
			"ticket_id", t.ID(),
			"error", err.Error())
	}
}

func failureReason(err error) string {
	switch {
	case errs.Is(err, errs.ErrFareCalculationFailed):
		return "fare_calculation"
	case errs.Is(err, parking.ErrInvalidRegistration),
		errs.Is(err, errs.ErrParkingTypeRequired),
		errs.Is(err, parking.ErrUnsupportedParkingType):
		return "invalid_input"
	case errs.Is(err, errs.ErrNoAvailableSpot):
		return "no_available_spot"
	case errs.Is(err, errs.ErrTicketNotFound):
		return "ticket_not_found"
	case errs.Is(err, parking.ErrTicketAlreadyClosed):
		return "ticket_closed"
	case errs.Is(err, errs.ErrTicketSaveFailed),
		errs.Is(err, errs.ErrTicketUpdateFailed),
		errs.Is(err, errs.ErrSpotUpdateFailed):
		return "store_rejected"
	case errs.Is(err, errs.ErrDatabase):
		return "database"
	default:
		return "other"
	}
}
