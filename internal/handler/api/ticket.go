package api

import (
	"net/http"

	resdto "parking-system/internal/handler/dto/response"
	"parking-system/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type TicketHandler struct {
	q queries.TicketQueries
}

func NewTicketHandler(q queries.TicketQueries) *TicketHandler {
	return &TicketHandler{q: q}
}

// @Summary Latest ticket of a vehicle
// @Description Get the vehicle's most recent ticket and how many times it has parked
// @Tags tickets
// @Produce json
// @Security BearerAuth
// @Param registration path string true "Vehicle registration number"
// @Success 200 {object} resdto.TicketResponse
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /vehicles/{registration}/ticket [get]
func (h *TicketHandler) Latest(c *gin.Context) {
	view, err := h.q.LatestTicket(c.Request.Context(), c.Param("registration"))
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromTicketView(view))
}

// @Summary Ticket QR code
// @Description Render the vehicle's most recent ticket as a PNG QR code
// @Tags tickets
// @Produce png
// @Security BearerAuth
// @Param registration path string true "Vehicle registration number"
// @Success 200 {file} binary
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /vehicles/{registration}/ticket/qr [get]
func (h *TicketHandler) QR(c *gin.Context) {
	png, err := h.q.TicketQR(c.Request.Context(), c.Param("registration"))
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}
