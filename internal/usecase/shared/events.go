package shared

import (
	"context"
	"time"

	"parking-system/internal/domain/parking"
)

type TicketEventType string

const (
	TicketOpened TicketEventType = "ticket.opened"
	TicketClosed TicketEventType = "ticket.closed"
)

type TicketEvent struct {
	Type         TicketEventType     `json:"type"`
	TicketID     int64               `json:"ticket_id"`
	SpotID       int32               `json:"spot_id"`
	ParkingType  parking.ParkingType `json:"parking_type"`
	Registration string              `json:"registration"`
	InTime       time.Time           `json:"in_time"`
	OutTime      *time.Time          `json:"out_time,omitempty"`
	Price        float64             `json:"price"`
	OccurredAt   time.Time           `json:"occurred_at"`
}

func NewTicketEvent(typ TicketEventType, t *parking.Ticket, at time.Time) TicketEvent {
	ev := TicketEvent{
		Type:         typ,
		TicketID:     t.ID(),
		ParkingType:  t.Type(),
		Registration: t.VehicleRegNumber(),
		InTime:       t.InTime(),
		OutTime:      t.OutTime(),
		Price:        t.Price(),
		OccurredAt:   at,
	}
	if t.Spot() != nil {
		ev.SpotID = t.Spot().ID()
	}
	return ev
}

type EventPublisher interface {
	Publish(ctx context.Context, ev TicketEvent) error
}

type MetricsRecorder interface {
	TicketOpened(t parking.ParkingType)
	TicketClosed(t parking.ParkingType, fare float64, discounted bool)
	OperationFailed(operation, reason string)
}
