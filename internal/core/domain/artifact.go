package domain

// ============================================================================
// Model Artifact
// ============================================================================

// ModelArtifact is the deserialized training bundle: a fitted classifier and
// the scaler it was trained behind. It is immutable once loaded; picking up a
// new artifact requires a process restart.
type ModelArtifact struct {
	ModelVersion string
	Algorithm    string
	Classifier   Classifier
	Scaler       *StandardScaler
}
