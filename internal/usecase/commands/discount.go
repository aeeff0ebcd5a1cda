package commands

import (
	"context"

	"parking-system/internal/domain/parking"
	"parking-system/internal/pkg/errs"
	"parking-system/internal/usecase/shared"
)

// DiscountPolicy decides whether a closing ticket earns the reduced fare.
type DiscountPolicy interface {
	Eligible(ctx context.Context, t *parking.Ticket) (bool, error)
}

type NoDiscount struct{}

func (NoDiscount) Eligible(context.Context, *parking.Ticket) (bool, error) {
	return false, nil
}

// RecurringVehiclePolicy rewards vehicles that have parked before.
type RecurringVehiclePolicy struct {
	tickets shared.TicketStore
}

func NewRecurringVehiclePolicy(tickets shared.TicketStore) *RecurringVehiclePolicy {
	return &RecurringVehiclePolicy{tickets: tickets}
}

// Eligible counts every ticket of the vehicle, the closing one included.
func (p *RecurringVehiclePolicy) Eligible(ctx context.Context, t *parking.Ticket) (bool, error) {
	count, err := p.tickets.CountByVehicle(ctx, t.VehicleRegNumber())
	if err != nil {
		return false, errs.Mark(errs.Wrap(err, "failed to count previous visits"), errs.ErrDatabase)
	}
	return count > 1, nil
}

func NewDiscountPolicy(loyaltyEnabled bool, tickets shared.TicketStore) DiscountPolicy {
	if loyaltyEnabled {
		return NewRecurringVehiclePolicy(tickets)
	}
	return NoDiscount{}
}
