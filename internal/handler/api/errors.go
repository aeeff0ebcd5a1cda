package api

import (
	"net/http"

	"parking-system/internal/domain/parking"
	"parking-system/internal/handler/httperr"
	"parking-system/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// abortWithUsecaseError maps parking use-case failures onto HTTP statuses.
// Client errors expose the use-case message; everything else is a 500.
func abortWithUsecaseError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, parking.ErrInvalidRegistration),
		errs.Is(err, errs.ErrParkingTypeRequired),
		errs.Is(err, parking.ErrUnsupportedParkingType),
		errs.Is(err, errs.ErrInvalidPoolSize):
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
	case errs.Is(err, errs.ErrTicketNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, err.Error(), nil)
	case errs.Is(err, errs.ErrNoAvailableSpot),
		errs.Is(err, parking.ErrTicketAlreadyClosed),
		errs.Is(err, errs.ErrPoolNotEmpty):
		httperr.AbortWithError(c, http.StatusConflict, err, err.Error(), nil)
	case errs.Is(err, errs.ErrFareCalculationFailed),
		errs.Is(err, errs.ErrMissingEntryTime),
		errs.Is(err, parking.ErrExitBeforeEntry):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, err.Error(), nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
