package api

import (
	"errors"
	"io"
	"net/http"

	reqdto "parking-system/internal/handler/dto/request"
	resdto "parking-system/internal/handler/dto/response"
	"parking-system/internal/handler/httperr"
	"parking-system/internal/pkg/config"
	"parking-system/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type PoolHandler struct {
	cmds commands.PoolCommands
	cfg  config.ParkingConfig
}

func NewPoolHandler(cmds commands.PoolCommands, cfg config.Config) *PoolHandler {
	return &PoolHandler{
		cmds: cmds,
		cfg:  cfg.Parking,
	}
}

// @Summary Initialize the spot pool
// @Description Create CAR spots 1..cars and BIKE spots after them. Omitted counts use the configured size.
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.InitializePoolRequest false "Pool size"
// @Success 201 {object} resdto.PoolResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /admin/pool [post]
func (h *PoolHandler) Initialize(c *gin.Context) {
	var req reqdto.InitializePoolRequest
	// an empty body means "use the configured size"
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	cars, bikes := req.Sizes(h.cfg.CarSpots, h.cfg.BikeSpots)
	spots, err := h.cmds.Initialize(c.Request.Context(), cars, bikes)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.PoolResponse{Spots: resdto.FromSpots(spots)})
}

// @Summary Reset the spot pool
// @Description Delete every ticket and every spot
// @Tags admin
// @Security BearerAuth
// @Success 204 "No Content"
// @Failure 500 {object} httperr.Response
// @Router /admin/pool [delete]
func (h *PoolHandler) Reset(c *gin.Context) {
	if err := h.cmds.Reset(c.Request.Context()); err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
