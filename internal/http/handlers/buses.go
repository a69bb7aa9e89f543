package handlers

import (
	"net/http"

	"busticket/internal/domain/models"
	"busticket/internal/repositories"

	"github.com/gin-gonic/gin"
)

type busRequest struct {
	OperatorID int64   `json:"operator_id" binding:"required,gt=0"`
	BusNumber  string  `json:"bus_number" binding:"required"`
	BusType    string  `json:"bus_type" binding:"required,oneof=AC Non-AC Sleeper Seater"`
	TotalSeats int     `json:"total_seats" binding:"required,gt=0"`
	Rating     float64 `json:"rating"`
}

func GetBuses(c *gin.Context) {
	repo := repositories.BusRepo{}
	buses, err := repo.List()
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "bus listing failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": buses, "count": len(buses)})
}

func GetBusByID(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}
	repo := repositories.BusRepo{}
	bus, err := repo.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": bus})
}

// CreateBus also provisions the bus's seat inventory (1..total_seats).
func CreateBus(c *gin.Context) {
	var req busRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	repo := repositories.BusRepo{}
	id, err := repo.Create(models.Bus{
		OperatorID: req.OperatorID,
		BusNumber:  req.BusNumber,
		BusType:    req.BusType,
		TotalSeats: req.TotalSeats,
		Rating:     req.Rating,
	})
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "bus creation failed", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// UpdateBus leaves total_seats alone; seat inventory is fixed at creation.
func UpdateBus(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}
	var req busRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	repo := repositories.BusRepo{}
	err := repo.Update(id, models.Bus{
		OperatorID: req.OperatorID,
		BusNumber:  req.BusNumber,
		BusType:    req.BusType,
		Rating:     req.Rating,
	})
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "bus update failed", err)
		return
	}
	c.Status(http.StatusNoContent)
}

func DeleteBus(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}
	repo := repositories.BusRepo{}
	if err := repo.Delete(id); err != nil {
		RespondError(c, http.StatusInternalServerError, "bus deletion failed", err)
		return
	}
	c.Status(http.StatusNoContent)
}
