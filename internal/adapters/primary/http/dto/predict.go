package dto

import (
	"strconv"
	"strings"

	"titanguard/internal/core/domain"
)

// PredictForm carries the raw HTML form fields. Values stay strings so a
// rejected submission can be re-rendered exactly as the passenger typed it.
type PredictForm struct {
	Pclass   string `form:"pclass"`
	Sex      string `form:"sex"`
	Age      string `form:"age"`
	Fare     string `form:"fare"`
	Embarked string `form:"embarked"`
}

// ToFeatures converts the form fields, collecting a per-field error for
// every value that is missing or not numeric.
func (f PredictForm) ToFeatures() (domain.PassengerFeatures, error) {
	var (
		features domain.PassengerFeatures
		fields   []domain.FieldError
	)

	features.Pclass = parseIntField(f.Pclass, "pclass", "Pclass", &fields)
	features.Sex = parseIntField(f.Sex, "sex", "Sex", &fields)
	features.Age = parseFloatField(f.Age, "age", "Age", &fields)
	features.Fare = parseFloatField(f.Fare, "fare", "Fare", &fields)
	features.Embarked = parseIntField(f.Embarked, "embarked", "Embarked", &fields)

	if len(fields) > 0 {
		return features, &domain.ValidationError{Fields: fields}
	}
	return features, nil
}

func parseIntField(raw, field, label string, fields *[]domain.FieldError) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		*fields = append(*fields, domain.NewFieldError(field, raw, "%s is required", label))
		return 0
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		*fields = append(*fields, domain.NewFieldError(field, raw, "%s must be a whole number. Got: %s", label, raw))
		return 0
	}
	return v
}

func parseFloatField(raw, field, label string, fields *[]domain.FieldError) float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		*fields = append(*fields, domain.NewFieldError(field, raw, "%s is required", label))
		return 0
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		*fields = append(*fields, domain.NewFieldError(field, raw, "%s must be a number. Got: %s", label, raw))
		return 0
	}
	return v
}

// PredictRequest is the JSON prediction request. Fields are pointers so a
// missing key is distinguishable from a legitimate zero (sex=0 is male,
// embarked=0 is Southampton).
type PredictRequest struct {
	Pclass   *int     `json:"pclass"`
	Sex      *int     `json:"sex"`
	Age      *float64 `json:"age"`
	Fare     *float64 `json:"fare"`
	Embarked *int     `json:"embarked"`
}

// Missing returns a validation error naming every absent field, or nil.
func (r PredictRequest) Missing() error {
	var fields []domain.FieldError
	if r.Pclass == nil {
		fields = append(fields, domain.NewFieldError("pclass", nil, "Pclass is required"))
	}
	if r.Sex == nil {
		fields = append(fields, domain.NewFieldError("sex", nil, "Sex is required"))
	}
	if r.Age == nil {
		fields = append(fields, domain.NewFieldError("age", nil, "Age is required"))
	}
	if r.Fare == nil {
		fields = append(fields, domain.NewFieldError("fare", nil, "Fare is required"))
	}
	if r.Embarked == nil {
		fields = append(fields, domain.NewFieldError("embarked", nil, "Embarked is required"))
	}
	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// ToFeatures dereferences the request. Callers must check Missing first.
func (r PredictRequest) ToFeatures() domain.PassengerFeatures {
	return domain.PassengerFeatures{
		Pclass:   *r.Pclass,
		Sex:      *r.Sex,
		Age:      *r.Age,
		Fare:     *r.Fare,
		Embarked: *r.Embarked,
	}
}

type PredictResponse struct {
	Status                 string  `json:"status"`
	Prediction             int     `json:"prediction"`
	Survived               bool    `json:"survived"`
	ClassName              string  `json:"class_name"`
	Confidence             float64 `json:"confidence"`
	ProbabilitySurvived    float64 `json:"probability_survived"`
	ProbabilityNotSurvived float64 `json:"probability_not_survived"`
	ModelVersion           string  `json:"model_version"`
}

func ToPredictResponse(p *domain.Prediction) PredictResponse {
	return PredictResponse{
		Status:                 "success",
		Prediction:             p.Label,
		Survived:               p.Survived(),
		ClassName:              p.ClassName,
		Confidence:             p.Confidence,
		ProbabilitySurvived:    p.Probabilities[1],
		ProbabilityNotSurvived: p.Probabilities[0],
		ModelVersion:           p.ModelVersion,
	}
}
