package domain

// ============================================================================
// Prediction
// ============================================================================

// Prediction is the outcome of one inference call. It is built fresh per
// request and never retained by the serving side.
type Prediction struct {
	Label         int
	ClassName     string
	Confidence    float64
	Probabilities [2]float64
	ModelVersion  string
}

// Survived reports whether the predicted label is the positive class.
func (p *Prediction) Survived() bool {
	return p.Label == 1
}
