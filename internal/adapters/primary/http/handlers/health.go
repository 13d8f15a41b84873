package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"titanguard/internal/adapters/primary/http/dto"
	"titanguard/internal/core/services"
)

// Health reports whether the service can serve predictions. Running without
// metadata is degraded but still healthy; anything short of a loaded model
// is not.
func (h *Handler) Health(c *gin.Context) {
	info := h.manager.Info()

	resp := dto.HealthResponse{
		ModelState:   string(info.State),
		ModelVersion: info.ModelVersion,
	}

	if info.State != services.StateReady {
		resp.Status = "unhealthy"
		c.JSON(http.StatusServiceUnavailable, resp)
		return
	}

	resp.Status = "ok"
	if !info.MetadataLoaded {
		resp.Status = "degraded"
	}
	c.JSON(http.StatusOK, resp)
}
