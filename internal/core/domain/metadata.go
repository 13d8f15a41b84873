package domain

import (
	"fmt"
	"time"
)

// ============================================================================
// Model Metadata
// ============================================================================

// DefaultClassNames label the two outcome classes when no metadata is
// available to name them.
var DefaultClassNames = [2]string{"Did Not Survive", "Survived"}

// ModelMetadata is the evaluation record written by the training pipeline
// next to the artifact bundle. It is loaded once, checked, and read-only
// thereafter; the serving side never recomputes any of it.
type ModelMetadata struct {
	ModelVersion         string    `json:"model_version"`
	FeatureNames         []string  `json:"feature_names" validate:"required,len=5"`
	TargetName           string    `json:"target_name" validate:"required"`
	Classes              []int     `json:"classes" validate:"required,len=2"`
	ClassNames           []string  `json:"class_names" validate:"required,len=2"`
	Accuracy             float64   `json:"accuracy" validate:"min=0,max=1"`
	Precision            float64   `json:"precision" validate:"min=0,max=1"`
	Recall               float64   `json:"recall" validate:"min=0,max=1"`
	F1Score              float64   `json:"f1_score" validate:"min=0,max=1"`
	ConfusionMatrix      [2][2]int `json:"confusion_matrix"`
	ClassificationReport string    `json:"classification_report" validate:"required"`
	TrainedAt            time.Time `json:"trained_at"`
}

// Check enforces the invariants struct tags cannot express: the recorded
// feature order must match the serving contract, the classes must be the
// binary labels in ascending order, and the confusion matrix must hold
// non-negative counts for at least one evaluation row.
func (m *ModelMetadata) Check() error {
	if !SameFeatureOrder(m.FeatureNames) {
		return fmt.Errorf("metadata feature order %v does not match serving contract %v",
			m.FeatureNames, FeatureNames())
	}
	if len(m.Classes) != 2 || m.Classes[0] != 0 || m.Classes[1] != 1 {
		return fmt.Errorf("metadata classes %v, want [0 1]", m.Classes)
	}
	total := 0
	for i := range m.ConfusionMatrix {
		for j, cell := range m.ConfusionMatrix[i] {
			if cell < 0 {
				return fmt.Errorf("confusion matrix cell [%d][%d] is negative", i, j)
			}
			total += cell
		}
	}
	if total == 0 {
		return fmt.Errorf("confusion matrix is empty")
	}
	return nil
}

// ClassNameFor maps a predicted label to its human-readable class name.
func (m *ModelMetadata) ClassNameFor(label int) (string, error) {
	if label < 0 || label >= len(m.ClassNames) {
		return "", fmt.Errorf("label %d outside class names %v", label, m.ClassNames)
	}
	return m.ClassNames[label], nil
}

// Clone returns a deep copy so callers can never mutate the loaded record.
func (m *ModelMetadata) Clone() *ModelMetadata {
	out := *m
	out.FeatureNames = append([]string(nil), m.FeatureNames...)
	out.Classes = append([]int(nil), m.Classes...)
	out.ClassNames = append([]string(nil), m.ClassNames...)
	return &out
}
