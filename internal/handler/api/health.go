package api

import (
	"net/http"
	"time"

	"resqcart/internal/pkg/clock"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	clock clock.Clock
}

func NewHealthHandler(clk clock.Clock) *HealthHandler {
	return &HealthHandler{clock: clk}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (h *HealthHandler) Check(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"message":   "ResQCart API is running",
		"timestamp": h.clock.Now().UTC().Format(time.RFC3339),
	})
}
