package ticketqr

import (
	"encoding/json"
	"errors"
	"time"

	"parking-system/internal/domain/parking"

	"github.com/skip2/go-qrcode"
)

var ErrNoTicket = errors.New("ticket is required for a QR code")

const defaultSize = 256

// Payload is what the gate scanner reads back from the code.
type Payload struct {
	TicketID     int64     `json:"ticket_id"`
	Registration string    `json:"registration"`
	SpotID       int32     `json:"spot_id"`
	Type         string    `json:"type"`
	InTime       time.Time `json:"in_time"`
}

type Generator struct {
	size int
}

func NewGenerator(size int) *Generator {
	if size <= 0 {
		size = defaultSize
	}
	return &Generator{size: size}
}

// PNG renders the ticket payload as a QR code image.
func (g *Generator) PNG(t *parking.Ticket) ([]byte, error) {
	if t == nil {
		return nil, ErrNoTicket
	}

	payload := Payload{
		TicketID:     t.ID(),
		Registration: t.VehicleRegNumber(),
		Type:         t.Type().String(),
		InTime:       t.InTime(),
	}
	if t.Spot() != nil {
		payload.SpotID = t.Spot().ID()
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return qrcode.Encode(string(data), qrcode.Medium, g.size)
}
