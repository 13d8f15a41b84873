package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"titanguard/internal/adapters/primary/http/dto"
	"titanguard/internal/core/domain"
	"titanguard/internal/metrics"
)

func (h *Handler) Index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{
		"form": dto.PredictForm{},
	})
}

// PredictForm handles the HTML form submission. Failures render inline on
// the same page rather than as an error status: the passenger corrects the
// field and resubmits.
func (h *Handler) PredictForm(c *gin.Context) {
	var form dto.PredictForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusOK, "index.html", gin.H{
			"form":  form,
			"error": "Invalid input: " + err.Error(),
		})
		return
	}

	features, err := form.ToFeatures()
	if err != nil {
		metrics.RecordPredictionFailure("validation")
		log.WithError(err).Warn("form prediction rejected")
		c.HTML(http.StatusOK, "index.html", gin.H{
			"form":  form,
			"error": err.Error(),
		})
		return
	}

	prediction, err := h.manager.Predict(c.Request.Context(), features)
	if err != nil {
		metrics.RecordPredictionFailure(predictFailureReason(err))
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			log.WithError(err).Warn("form prediction rejected")
		} else {
			log.WithError(err).Error("form prediction failed")
		}
		c.HTML(http.StatusOK, "index.html", gin.H{
			"form":  form,
			"error": err.Error(),
		})
		return
	}

	resp := dto.ToPredictResponse(prediction)
	metrics.RecordPrediction(resp.Survived)

	c.HTML(http.StatusOK, "index.html", gin.H{
		"form":       form,
		"prediction": formatPrediction(resp),
	})
}

func formatPrediction(p dto.PredictResponse) string {
	marker := "🔴"
	if p.Survived {
		marker = "🟢"
	}
	return fmt.Sprintf("%s %s (%.1f%% confidence)", marker, p.ClassName, p.Confidence*100)
}

// MetricsPage renders the evaluation dashboard. When metadata is missing the
// page explains instead of failing, matching the inline-error style of the
// prediction form.
func (h *Handler) MetricsPage(c *gin.Context) {
	metadata, err := h.manager.Metrics()
	if err != nil {
		c.HTML(http.StatusOK, "metrics.html", gin.H{
			"error": "Model metadata not found. Please retrain the model.",
		})
		return
	}

	c.HTML(http.StatusOK, "metrics.html", gin.H{
		"accuracy":             fmt.Sprintf("%.2f%%", metadata.Accuracy*100),
		"precision":            fmt.Sprintf("%.2f%%", metadata.Precision*100),
		"recall":               fmt.Sprintf("%.2f%%", metadata.Recall*100),
		"f1Score":              fmt.Sprintf("%.2f%%", metadata.F1Score*100),
		"confusionMatrix":      metadata.ConfusionMatrix,
		"classNames":           metadata.ClassNames,
		"classificationReport": metadata.ClassificationReport,
		"modelVersion":         metadata.ModelVersion,
		"trainedAt":            metadata.TrainedAt.Format("2006-01-02"),
	})
}
