package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"titanguard/internal/adapters/primary/http/dto"
	"titanguard/internal/core/domain"
	"titanguard/internal/core/services"
)

func (h *Handler) GetMetrics(c *gin.Context) {
	metadata, err := h.manager.Metrics()
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToMetricsResponse(metadata))
}

func (h *Handler) GetModelInfo(c *gin.Context) {
	info := h.manager.Info()
	if info.State != services.StateReady {
		mapDomainError(c, domain.ErrModelNotReady)
		return
	}

	c.JSON(http.StatusOK, dto.ToModelInfoResponse(info))
}
