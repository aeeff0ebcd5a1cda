package api

import (
	"net/http"

	"parking-system/internal/domain/parking"
	resdto "parking-system/internal/handler/dto/response"
	"parking-system/internal/handler/httperr"
	"parking-system/internal/pkg/errs"
	"parking-system/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type SpotHandler struct {
	q queries.SpotQueries
}

func NewSpotHandler(q queries.SpotQueries) *SpotHandler {
	return &SpotHandler{q: q}
}

// @Summary List spots
// @Description List every parking spot with per-type occupancy
// @Tags spots
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.SpotListResponse
// @Failure 401 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /spots [get]
func (h *SpotHandler) List(c *gin.Context) {
	spots, err := h.q.ListSpots(c.Request.Context())
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	occupancy, err := h.q.Occupancy(c.Request.Context())
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.SpotListResponse{
		Spots:     resdto.FromSpots(spots),
		Occupancy: resdto.FromOccupancyViews(occupancy),
	})
}

// @Summary Next available spot
// @Description Show the spot the next vehicle of this type would get
// @Tags spots
// @Produce json
// @Security BearerAuth
// @Param type query string true "Parking type" Enums(CAR, BIKE)
// @Success 200 {object} resdto.SpotResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /spots/next [get]
func (h *SpotHandler) Next(c *gin.Context) {
	parkingType := parking.NormalizeParkingType(c.Query("type"))
	spot, err := h.q.NextAvailableSpot(c.Request.Context(), parkingType)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	if spot == nil {
		err := errs.MarkWithMessage(errs.ErrNoAvailableSpot, "no available %s parking spot", parkingType)
		httperr.AbortWithError(c, http.StatusNotFound, err, err.Error(), nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromSpot(spot))
}
