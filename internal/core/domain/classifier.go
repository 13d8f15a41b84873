package domain

import (
	"fmt"
	"math"
)

// ============================================================================
// Algorithms
// ============================================================================

// AlgorithmLogisticRegression is the only classifier algorithm the serving
// side currently understands. Artifacts tagged with anything else are
// rejected at load time.
const AlgorithmLogisticRegression = "logistic_regression"

// SupportedAlgorithms lists the classifier algorithms the artifact codec can
// reconstruct.
var SupportedAlgorithms = map[string]bool{
	AlgorithmLogisticRegression: true,
}

// Classifier is a fitted binary classifier. Classify takes an already-scaled
// feature vector and returns the predicted label together with the
// probability of each class, index-aligned with the labels {0, 1}.
type Classifier interface {
	Classify(scaled []float64) (label int, probs [2]float64, err error)
}

// ============================================================================
// Standard Scaler
// ============================================================================

// StandardScaler holds the per-feature mean and scale fitted at training
// time. Transform applies those stored parameters; nothing is ever re-fit on
// the serving side.
type StandardScaler struct {
	Mean  []float64 `json:"mean"`
	Scale []float64 `json:"scale"`
}

// Check verifies the scaler matches the feature contract dimensions and that
// every parameter is usable.
func (s *StandardScaler) Check() error {
	if len(s.Mean) != FeatureCount || len(s.Scale) != FeatureCount {
		return fmt.Errorf("scaler fitted for %d/%d features, serving contract has %d",
			len(s.Mean), len(s.Scale), FeatureCount)
	}
	for i, v := range s.Mean {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("scaler mean[%d] is not finite", i)
		}
	}
	for i, v := range s.Scale {
		if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
			return fmt.Errorf("scaler scale[%d] must be a positive finite number", i)
		}
	}
	return nil
}

// Transform standardizes vec using the stored mean and scale.
func (s *StandardScaler) Transform(vec []float64) ([]float64, error) {
	if len(vec) != len(s.Mean) {
		return nil, fmt.Errorf("vector has %d features, scaler expects %d", len(vec), len(s.Mean))
	}
	out := make([]float64, len(vec))
	for i, v := range vec {
		out[i] = (v - s.Mean[i]) / s.Scale[i]
	}
	return out, nil
}

// ============================================================================
// Logistic Regression
// ============================================================================

// LogisticRegression is a fitted binary logistic regression classifier.
// Probabilities come from the sigmoid of the linear score; the label is 1
// when the positive-class probability reaches 0.5.
type LogisticRegression struct {
	Coefficients []float64 `json:"coefficients"`
	Intercept    float64   `json:"intercept"`
}

// Check verifies the fitted parameters against the feature contract.
func (lr *LogisticRegression) Check() error {
	if len(lr.Coefficients) != FeatureCount {
		return fmt.Errorf("classifier fitted for %d features, serving contract has %d",
			len(lr.Coefficients), FeatureCount)
	}
	for i, c := range lr.Coefficients {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return fmt.Errorf("classifier coefficient[%d] is not finite", i)
		}
	}
	if math.IsNaN(lr.Intercept) || math.IsInf(lr.Intercept, 0) {
		return fmt.Errorf("classifier intercept is not finite")
	}
	return nil
}

// Classify implements Classifier.
func (lr *LogisticRegression) Classify(scaled []float64) (int, [2]float64, error) {
	if len(scaled) != len(lr.Coefficients) {
		return 0, [2]float64{}, fmt.Errorf("vector has %d features, classifier expects %d",
			len(scaled), len(lr.Coefficients))
	}
	score := lr.Intercept
	for i, c := range lr.Coefficients {
		score += c * scaled[i]
	}
	pSurvived := sigmoid(score)
	probs := [2]float64{1 - pSurvived, pSurvived}
	label := 0
	if pSurvived >= 0.5 {
		label = 1
	}
	return label, probs, nil
}

func sigmoid(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}
