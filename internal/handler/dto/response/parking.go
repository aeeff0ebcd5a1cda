package response

import (
	"log/slog"
	"time"

	"parking-system/internal/domain/parking"
	"parking-system/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type TicketResponse struct {
	ID            int64               `json:"id"`
	SpotID        int32               `json:"spotId"`
	Type          parking.ParkingType `json:"type" swaggertype:"string" enums:"CAR,BIKE"`
	Registration  string              `json:"registration"`
	InTime        time.Time           `json:"inTime"`
	OutTime       *time.Time          `json:"outTime,omitempty"`
	Price         float64             `json:"price"`
	Open          bool                `json:"open"`
	DurationHours float64             `json:"durationHours"`
	Visits        int                 `json:"visits,omitempty"`
}

type SpotResponse struct {
	ID        int32               `json:"id"`
	Type      parking.ParkingType `json:"type" swaggertype:"string" enums:"CAR,BIKE"`
	Available bool                `json:"available"`
}

type OccupancyResponse struct {
	Type      parking.ParkingType `json:"type" swaggertype:"string" enums:"CAR,BIKE"`
	Total     int                 `json:"total"`
	Available int                 `json:"available"`
}

type SpotListResponse struct {
	Spots     []SpotResponse      `json:"spots"`
	Occupancy []OccupancyResponse `json:"occupancy"`
}

type PoolResponse struct {
	Spots []SpotResponse `json:"spots"`
}

func FromTicketView(v *queries.TicketView) *TicketResponse {
	var res TicketResponse
	if err := copier.Copy(&res, v); err != nil {
		slog.Error("failed to map ticket view", "ticket_id", v.ID, "error", err.Error())
		return &TicketResponse{ID: v.ID}
	}
	return &res
}

func FromOccupancyViews(views []queries.OccupancyView) []OccupancyResponse {
	res := make([]OccupancyResponse, 0, len(views))
	if err := copier.Copy(&res, &views); err != nil {
		slog.Error("failed to map occupancy views", "error", err.Error())
		return []OccupancyResponse{}
	}
	return res
}

func FromSpot(s *parking.Spot) SpotResponse {
	return SpotResponse{
		ID:        s.ID(),
		Type:      s.Type(),
		Available: s.IsAvailable(),
	}
}

func FromSpots(spots []*parking.Spot) []SpotResponse {
	res := make([]SpotResponse, 0, len(spots))
	for _, s := range spots {
		res = append(res, FromSpot(s))
	}
	return res
}
