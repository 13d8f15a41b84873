package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"titanguard/internal/adapters/primary/http/dto"
	"titanguard/internal/core/domain"
)

func mapDomainError(c *gin.Context, err error) {
	var verr *domain.ValidationError

	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Status:  "error",
			Message: verr.Error(),
			Fields:  dto.ToFieldErrorDTOs(verr),
		})

	case errors.Is(err, domain.ErrMetadataUnavailable):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{
			Status:  "error",
			Message: "Model metadata not found",
		})

	case errors.Is(err, domain.ErrModelNotReady):
		c.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{
			Status:  "error",
			Message: "Model is not ready to serve",
		})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Status:  "error",
			Message: "internal server error",
		})
	}
}

// predictFailureReason buckets a prediction error for the failure counter.
func predictFailureReason(err error) string {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		return "validation"
	case errors.Is(err, domain.ErrModelNotReady):
		return "not_ready"
	default:
		return "inference"
	}
}
