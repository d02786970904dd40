package handlers

import (
	"net/http"
	"time"

	"github.com/bvqadmin/montos-api/internal/models"
	"github.com/gin-gonic/gin"
)

// HealthHandler serves the liveness probe and the informational index routes.
type HealthHandler struct {
	startedAt time.Time
}

// NewHealthHandler creates a new HealthHandler anchored at process start.
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{startedAt: time.Now()}
}

// Health handles GET /api/health
// @Summary Liveness probe
// @Tags system
// @Produce json
// @Success 200 {object} models.APIResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, models.APIResponse{
		Success: true,
		Message: "API MontoColoCadoPC funcionando correctamente",
		Data: models.HealthResponse{
			Timestamp: time.Now().UTC().Format(time.RFC3339),
			Uptime:    time.Since(h.startedAt).Seconds(),
		},
	})
}

// Index handles GET /api, listing the available endpoints.
func (h *HealthHandler) Index(c *gin.Context) {
	c.JSON(http.StatusOK, models.APIResponse{
		Success: true,
		Message: "Bienvenido al API de MontoColoCadoPC",
		Data: gin.H{
			"version": "1.0.0",
			"endpoints": gin.H{
				"health": "GET /api/health",
				"montos": gin.H{
					"getAll":   "GET /api/montos",
					"getByRMV": "GET /api/montos/:rmv",
					"create":   "POST /api/montos",
					"update":   "PUT /api/montos/:rmv",
					"delete":   "DELETE /api/montos/:rmv",
					"stats":    "GET /api/montos/stats",
				},
			},
			"documentation": "/swagger/index.html",
		},
	})
}

// Root handles GET /, the service banner.
func (h *HealthHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, models.APIResponse{
		Success: true,
		Message: "API MontoColoCadoPC - Servidor funcionando",
		Data: gin.H{
			"version":   "1.0.0",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"endpoints": gin.H{
				"api":    "/api",
				"health": "/api/health",
				"montos": "/api/montos",
			},
		},
	})
}
