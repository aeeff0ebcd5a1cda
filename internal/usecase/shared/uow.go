package shared

import (
	"context"

	"parking-system/internal/domain/parking"
)

type UnitOfWork interface {
	// Within runs fn in a read-committed transaction, retrying serialization failures
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Spots() SpotStore
	Tickets() TicketStore
}

// SpotStore persists parking spots. Lookups return (nil, nil) when nothing matches.
type SpotStore interface {
	FindNextAvailable(ctx context.Context, t parking.ParkingType) (*parking.Spot, error)
	GetByID(ctx context.Context, id int32) (*parking.Spot, error)
	// SetAvailability reports false when no spot with that id exists
	SetAvailability(ctx context.Context, id int32, available bool) (bool, error)
	Insert(ctx context.Context, spot *parking.Spot) error
	DeleteAll(ctx context.Context) error
	ListAll(ctx context.Context) ([]*parking.Spot, error)
}

// TicketStore persists tickets. FindByVehicle returns the most recent ticket.
type TicketStore interface {
	// Save assigns the store id to the ticket; false means nothing was written
	Save(ctx context.Context, t *parking.Ticket) (bool, error)
	FindByVehicle(ctx context.Context, reg string) (*parking.Ticket, error)
	// Update writes price and exit time; false means nothing was written
	Update(ctx context.Context, t *parking.Ticket) (bool, error)
	DeleteAll(ctx context.Context) error
	CountByVehicle(ctx context.Context, reg string) (int, error)
}
