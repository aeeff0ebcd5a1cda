package api

import (
	"net/http"

	reqdto "parking-system/internal/handler/dto/request"
	resdto "parking-system/internal/handler/dto/response"
	"parking-system/internal/handler/httperr"
	"parking-system/internal/usecase/commands"
	"parking-system/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ParkingHandler struct {
	cmds commands.ParkingCommands
}

func NewParkingHandler(cmds commands.ParkingCommands) *ParkingHandler {
	return &ParkingHandler{cmds: cmds}
}

// @Summary Vehicle entry
// @Description Allocate the lowest free spot of the requested type and open a ticket
// @Tags parking
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.EntryRequest true "Entry request"
// @Success 201 {object} resdto.TicketResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /parking/entries [post]
func (h *ParkingHandler) Entry(c *gin.Context) {
	var req reqdto.EntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	ticket, err := h.cmds.ProcessEntry(c.Request.Context(), req.Registration, req.ParkingType())
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromTicketView(queries.ToTicketView(ticket, ticket.InTime())))
}

// @Summary Vehicle exit
// @Description Close the vehicle's latest ticket, charge the fare and free the spot
// @Tags parking
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ExitRequest true "Exit request"
// @Success 200 {object} resdto.TicketResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /parking/exits [post]
func (h *ParkingHandler) Exit(c *gin.Context) {
	var req reqdto.ExitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	ticket, err := h.cmds.ProcessExit(c.Request.Context(), req.Registration)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromTicketView(queries.ToTicketView(ticket, ticket.InTime())))
}
