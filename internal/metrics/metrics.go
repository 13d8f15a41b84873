// Package metrics exposes Prometheus instrumentation for the prediction
// service: HTTP traffic, prediction outcomes, and the model lifecycle.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"method", "endpoint"},
	)

	PredictionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "predictions_total",
			Help: "Total number of successful predictions by outcome",
		},
		[]string{"outcome"}, // "survived", "did_not_survive"
	)

	PredictionFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "prediction_failures_total",
			Help: "Total number of rejected or failed prediction requests",
		},
		[]string{"reason"}, // "validation", "not_ready", "inference"
	)

	ModelState = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "model_state",
			Help: "Model lifecycle state (0=uninitialized, 1=loading, 2=ready, 3=failed)",
		},
	)

	ModelInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "model_info",
			Help: "Loaded model version and algorithm",
		},
		[]string{"model_version", "algorithm"},
	)
)

// RecordHTTPRequest records one completed HTTP request.
func RecordHTTPRequest(method, endpoint, statusCode string, duration time.Duration) {
	HTTPRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	HTTPRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// RecordPrediction records a served prediction by outcome.
func RecordPrediction(survived bool) {
	outcome := "did_not_survive"
	if survived {
		outcome = "survived"
	}
	PredictionsTotal.WithLabelValues(outcome).Inc()
}

// RecordPredictionFailure records a prediction request that did not produce
// a result.
func RecordPredictionFailure(reason string) {
	PredictionFailures.WithLabelValues(reason).Inc()
}

// SetModelState publishes the manager lifecycle state as a numeric gauge.
func SetModelState(state string) {
	switch state {
	case "uninitialized":
		ModelState.Set(0)
	case "loading":
		ModelState.Set(1)
	case "ready":
		ModelState.Set(2)
	case "failed":
		ModelState.Set(3)
	}
}

// SetModelInfo publishes the loaded model identity.
func SetModelInfo(version, algorithm string) {
	ModelInfo.WithLabelValues(version, algorithm).Set(1)
}
