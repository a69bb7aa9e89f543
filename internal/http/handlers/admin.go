package handlers

import (
	"net/http"

	"busticket/internal/http/middleware"
	"busticket/internal/services"

	"github.com/gin-gonic/gin"
)

// POST /api/admin/reconcile runs one seat-repair pass and reports how many
// flags were corrected in each direction.
func RunReconcile(c *gin.Context) {
	if middleware.GetUserRole(c) != "admin" {
		RespondError(c, http.StatusForbidden, "admin role required", nil)
		return
	}

	svc := services.ReconcileService{RequestID: middleware.GetRequestID(c)}
	result, err := svc.Run(c.Request.Context())
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "reconciliation failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": result})
}
