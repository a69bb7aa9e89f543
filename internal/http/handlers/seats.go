package handlers

import (
	"net/http"
	"strconv"

	"busticket/internal/repositories"

	"github.com/gin-gonic/gin"
)

// GetSeats lists a bus's seats. ?bus_id is required; ?available=true
// filters to free seats only.
func GetSeats(c *gin.Context) {
	busID, err := strconv.ParseInt(c.Query("bus_id"), 10, 64)
	if err != nil || busID <= 0 {
		RespondError(c, http.StatusBadRequest, "bus_id query parameter required", err)
		return
	}
	onlyAvailable := c.Query("available") == "true"

	repo := repositories.SeatRepo{}
	seats, err := repo.ListByBus(busID, onlyAvailable)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "seat listing failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": seats, "count": len(seats)})
}
