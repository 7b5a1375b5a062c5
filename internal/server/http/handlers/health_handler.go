package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/userservice/internal/server/http/dto"
)

// HealthHandler serves GET /health.
type HealthHandler struct {
	facade HealthFacade
}

// NewHealthHandler constructs HealthHandler.
func NewHealthHandler(facade HealthFacade) *HealthHandler {
	return &HealthHandler{facade: facade}
}

// Check reports UP when the database answers, DOWN with 503 otherwise.
func (h *HealthHandler) Check(c *gin.Context) {
	if err := h.facade.CheckDatabase(c.Request.Context()); err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusServiceUnavailable, dto.HealthResponse{Status: "DOWN"})
		return
	}
	c.JSON(http.StatusOK, dto.HealthResponse{Status: "UP"})
}
