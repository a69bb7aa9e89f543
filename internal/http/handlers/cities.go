package handlers

import (
	"net/http"

	"busticket/internal/repositories"

	"github.com/gin-gonic/gin"
)

type cityRequest struct {
	Name string `json:"name" binding:"required"`
}

func GetCities(c *gin.Context) {
	repo := repositories.CityRepo{}
	cities, err := repo.List()
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "city listing failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": cities, "count": len(cities)})
}

func GetCityByID(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}
	repo := repositories.CityRepo{}
	city, err := repo.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": city})
}

func CreateCity(c *gin.Context) {
	var req cityRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	repo := repositories.CityRepo{}
	id, err := repo.Create(req.Name)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "city creation failed", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

func UpdateCity(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}
	var req cityRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	repo := repositories.CityRepo{}
	if err := repo.Update(id, req.Name); err != nil {
		RespondError(c, http.StatusInternalServerError, "city update failed", err)
		return
	}
	c.Status(http.StatusNoContent)
}

func DeleteCity(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}
	repo := repositories.CityRepo{}
	if err := repo.Delete(id); err != nil {
		RespondError(c, http.StatusInternalServerError, "city deletion failed", err)
		return
	}
	c.Status(http.StatusNoContent)
}
