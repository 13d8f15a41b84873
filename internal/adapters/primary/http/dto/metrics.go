package dto

import (
	"time"

	"titanguard/internal/core/domain"
	"titanguard/internal/core/services"
)

type MetricsResponse struct {
	Status               string    `json:"status"`
	Accuracy             float64   `json:"accuracy"`
	Precision            float64   `json:"precision"`
	Recall               float64   `json:"recall"`
	F1Score              float64   `json:"f1_score"`
	ConfusionMatrix      [2][2]int `json:"confusion_matrix"`
	ClassificationReport string    `json:"classification_report"`
	ModelVersion         string    `json:"model_version,omitempty"`
	TrainedAt            time.Time `json:"trained_at"`
}

func ToMetricsResponse(m *domain.ModelMetadata) MetricsResponse {
	return MetricsResponse{
		Status:               "success",
		Accuracy:             m.Accuracy,
		Precision:            m.Precision,
		Recall:               m.Recall,
		F1Score:              m.F1Score,
		ConfusionMatrix:      m.ConfusionMatrix,
		ClassificationReport: m.ClassificationReport,
		ModelVersion:         m.ModelVersion,
		TrainedAt:            m.TrainedAt,
	}
}

type ModelInfoResponse struct {
	Status         string   `json:"status"`
	ModelVersion   string   `json:"model_version"`
	Algorithm      string   `json:"algorithm"`
	State          string   `json:"state"`
	FeatureNames   []string `json:"feature_names"`
	TargetName     string   `json:"target_name"`
	Classes        []int    `json:"classes"`
	ClassNames     []string `json:"class_names"`
	MetadataLoaded bool     `json:"metadata_loaded"`
}

func ToModelInfoResponse(info services.ModelInfo) ModelInfoResponse {
	return ModelInfoResponse{
		Status:         "success",
		ModelVersion:   info.ModelVersion,
		Algorithm:      info.Algorithm,
		State:          string(info.State),
		FeatureNames:   info.FeatureNames,
		TargetName:     info.TargetName,
		Classes:        info.Classes,
		ClassNames:     info.ClassNames,
		MetadataLoaded: info.MetadataLoaded,
	}
}

type HealthResponse struct {
	Status       string `json:"status"`
	ModelState   string `json:"model_state"`
	ModelVersion string `json:"model_version,omitempty"`
}

type FieldErrorDTO struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

type ErrorResponse struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Fields  []FieldErrorDTO `json:"fields,omitempty"`
}

func ToFieldErrorDTOs(verr *domain.ValidationError) []FieldErrorDTO {
	out := make([]FieldErrorDTO, 0, len(verr.Fields))
	for _, f := range verr.Fields {
		out = append(out, FieldErrorDTO{Field: f.Field, Reason: f.Reason})
	}
	return out
}
