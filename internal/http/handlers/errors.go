package handlers

import (
	"database/sql"
	"errors"
	"net/http"

	"busticket/internal/domain"
	"busticket/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

// ErrorResponse standardizes error payloads.
type ErrorResponse struct {
	Error   string  `json:"error"`
	Code    string  `json:"code,omitempty"`
	SeatIDs []int64 `json:"seat_ids,omitempty"`
}

func respondKind(c *gin.Context, status int, err error) {
	c.JSON(status, gin.H{
		"error":      err.Error(),
		"code":       string(domain.ErrKind(err)),
		"seat_ids":   domain.OffendingSeats(err),
		"request_id": middleware.GetRequestID(c),
	})
}

// RespondDomainError maps domain errors to HTTP responses. Booking-engine
// conflict kinds come back as 409 so clients can distinguish a lost seat
// race from a malformed request.
func RespondDomainError(c *gin.Context, err error) {
	switch domain.ErrKind(err) {
	case domain.KindRouteNotFound:
		respondKind(c, http.StatusNotFound, err)
		return
	case domain.KindPassengerSeatMismatch,
		domain.KindInvalidSeatID,
		domain.KindSeatRouteMismatch,
		domain.KindInvalidPassenger,
		domain.KindInvalidFare:
		respondKind(c, http.StatusBadRequest, err)
		return
	case domain.KindSeatAlreadyBooked,
		domain.KindSeatNoLongerAvailable,
		domain.KindNotCancellable:
		respondKind(c, http.StatusConflict, err)
		return
	}

	switch {
	case domain.IsNotFound(err) || errors.Is(err, sql.ErrNoRows):
		RespondError(c, http.StatusNotFound, err.Error(), nil)
	case domain.IsValidation(err):
		RespondError(c, http.StatusBadRequest, err.Error(), nil)
	default:
		RespondError(c, http.StatusInternalServerError, "unexpected error", err)
	}
}
