package handlers

import (
	"net/http"
	"strconv"
	"time"

	"busticket/internal/domain/models"
	"busticket/internal/repositories"
	"busticket/internal/utils"

	"github.com/gin-gonic/gin"
)

type routeRequest struct {
	SourceID      int64     `json:"source_id" binding:"required,gt=0"`
	DestinationID int64     `json:"destination_id" binding:"required,gt=0"`
	BusID         int64     `json:"bus_id" binding:"required,gt=0"`
	DepartureTime time.Time `json:"departure_time" binding:"required"`
	ArrivalTime   time.Time `json:"arrival_time" binding:"required"`
	Fare          any       `json:"fare" binding:"required"`
}

func GetRoutes(c *gin.Context) {
	repo := repositories.RouteRepo{}
	routes, err := repo.List(repositories.RouteFilter{})
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "route listing failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": routes, "count": len(routes)})
}

// SearchRoutes filters by ?source, ?destination and ?date (YYYY-MM-DD).
func SearchRoutes(c *gin.Context) {
	var f repositories.RouteFilter
	if s := c.Query("source"); s != "" {
		id, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "invalid source id", err)
			return
		}
		f.SourceID = id
	}
	if d := c.Query("destination"); d != "" {
		id, err := strconv.ParseInt(d, 10, 64)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "invalid destination id", err)
			return
		}
		f.DestinationID = id
	}
	if d := c.Query("date"); d != "" {
		date, err := time.Parse("2006-01-02", d)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "invalid date format, use YYYY-MM-DD", err)
			return
		}
		f.Date = date
	}

	repo := repositories.RouteRepo{}
	routes, err := repo.List(f)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "route search failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": routes, "count": len(routes)})
}

func GetRouteByID(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}
	repo := repositories.RouteRepo{}
	route, err := repo.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": route})
}

func CreateRoute(c *gin.Context) {
	var req routeRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	fare, err := utils.ParseMoney(req.Fare)
	if err != nil || fare <= 0 {
		RespondError(c, http.StatusBadRequest, "fare must be a positive amount", err)
		return
	}

	repo := repositories.RouteRepo{}
	id, err := repo.Create(models.Route{
		SourceID:      req.SourceID,
		DestinationID: req.DestinationID,
		BusID:         req.BusID,
		DepartureTime: req.DepartureTime,
		ArrivalTime:   req.ArrivalTime,
		FareCents:     fare,
	})
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "route creation failed", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

func UpdateRoute(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}
	var req routeRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	fare, err := utils.ParseMoney(req.Fare)
	if err != nil || fare <= 0 {
		RespondError(c, http.StatusBadRequest, "fare must be a positive amount", err)
		return
	}

	repo := repositories.RouteRepo{}
	err = repo.Update(id, models.Route{
		SourceID:      req.SourceID,
		DestinationID: req.DestinationID,
		BusID:         req.BusID,
		DepartureTime: req.DepartureTime,
		ArrivalTime:   req.ArrivalTime,
		FareCents:     fare,
	})
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "route update failed", err)
		return
	}
	c.Status(http.StatusNoContent)
}

func DeleteRoute(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}
	repo := repositories.RouteRepo{}
	if err := repo.Delete(id); err != nil {
		RespondError(c, http.StatusInternalServerError, "route deletion failed", err)
		return
	}
	c.Status(http.StatusNoContent)
}
