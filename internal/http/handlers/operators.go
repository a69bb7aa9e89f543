package handlers

import (
	"net/http"

	"busticket/internal/domain/models"
	"busticket/internal/repositories"

	"github.com/gin-gonic/gin"
)

type operatorRequest struct {
	Name         string `json:"name" binding:"required"`
	ContactEmail string `json:"contact_email" binding:"required,email"`
	Phone        string `json:"phone"`
}

func GetOperators(c *gin.Context) {
	repo := repositories.OperatorRepo{}
	operators, err := repo.List()
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "operator listing failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": operators, "count": len(operators)})
}

func GetOperatorByID(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}
	repo := repositories.OperatorRepo{}
	op, err := repo.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": op})
}

func CreateOperator(c *gin.Context) {
	var req operatorRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	repo := repositories.OperatorRepo{}
	id, err := repo.Create(models.Operator{
		Name:         req.Name,
		ContactEmail: req.ContactEmail,
		Phone:        req.Phone,
	})
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "operator creation failed", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

func UpdateOperator(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}
	var req operatorRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	repo := repositories.OperatorRepo{}
	err := repo.Update(id, models.Operator{
		Name:         req.Name,
		ContactEmail: req.ContactEmail,
		Phone:        req.Phone,
	})
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "operator update failed", err)
		return
	}
	c.Status(http.StatusNoContent)
}

func DeleteOperator(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}
	repo := repositories.OperatorRepo{}
	if err := repo.Delete(id); err != nil {
		RespondError(c, http.StatusInternalServerError, "operator deletion failed", err)
		return
	}
	c.Status(http.StatusNoContent)
}
