package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"titanguard/internal/adapters/primary/http/dto"
	"titanguard/internal/core/domain"
	"titanguard/internal/metrics"
)

func (h *Handler) PredictAPI(c *gin.Context) {
	var req dto.PredictRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		metrics.RecordPredictionFailure("validation")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Status:  "error",
			Message: "invalid request body: " + err.Error(),
		})
		return
	}

	if err := req.Missing(); err != nil {
		metrics.RecordPredictionFailure("validation")
		mapDomainError(c, err)
		return
	}

	prediction, err := h.manager.Predict(c.Request.Context(), req.ToFeatures())
	if err != nil {
		metrics.RecordPredictionFailure(predictFailureReason(err))
		var verr *domain.ValidationError
		if !errors.As(err, &verr) {
			log.WithError(err).Error("prediction failed")
		}
		mapDomainError(c, err)
		return
	}

	resp := dto.ToPredictResponse(prediction)
	metrics.RecordPrediction(resp.Survived)

	c.JSON(http.StatusOK, resp)
}
