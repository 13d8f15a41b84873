package services

import (
	"context"
	"fmt"
	"math"
	"sync"

	log "github.com/sirupsen/logrus"

	"titanguard/internal/core/domain"
	ports "titanguard/internal/core/ports/output"
)

// ManagerState tracks the model lifecycle. Transitions are one-way:
// uninitialized -> loading -> ready | failed. A failed load is terminal;
// the process is expected to exit rather than retry.
type ManagerState string

const (
	StateUninitialized ManagerState = "uninitialized"
	StateLoading       ManagerState = "loading"
	StateReady         ManagerState = "ready"
	StateFailed        ManagerState = "failed"
)

// ModelInfo is a read-only snapshot of what the manager is serving.
type ModelInfo struct {
	State          ManagerState
	ModelVersion   string
	Algorithm      string
	FeatureNames   []string
	TargetName     string
	Classes        []int
	ClassNames     []string
	MetadataLoaded bool
}

// Manager owns the loaded model and answers predictions against it. Load is
// memoized: the store is consulted exactly once no matter how many callers
// race, and every later call observes the first outcome. All other methods
// are safe for concurrent use once Load has returned.
type Manager struct {
	store ports.ArtifactStore

	mu       sync.RWMutex
	state    ManagerState
	artifact *domain.ModelArtifact
	metadata *domain.ModelMetadata
	loadErr  error
}

func NewManager(store ports.ArtifactStore) *Manager {
	return &Manager{
		store: store,
		state: StateUninitialized,
	}
}

// Load pulls the artifact bundle through the store and makes the manager
// ready. An artifact failure is terminal and returned to every caller. A
// metadata failure only degrades the metrics surface: predictions still work
// with built-in class names.
func (m *Manager) Load(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	switch m.state {
	case StateReady:
		return nil
	case StateFailed:
		return m.loadErr
	}

	m.state = StateLoading

	artifact, err := m.store.LoadArtifact(ctx)
	if err != nil {
		m.state = StateFailed
		m.loadErr = err
		log.WithError(err).Error("model artifact load failed")
		return err
	}
	if err := checkArtifact(artifact); err != nil {
		err = fmt.Errorf("%w: %v", domain.ErrModelLoad, err)
		m.state = StateFailed
		m.loadErr = err
		log.WithError(err).Error("model artifact rejected")
		return err
	}

	metadata, err := m.store.LoadMetadata(ctx)
	if err != nil {
		log.WithError(err).Warn("model metadata unavailable, metrics routes degraded")
		metadata = nil
	} else if metadata.ModelVersion != "" && metadata.ModelVersion != artifact.ModelVersion {
		log.WithFields(log.Fields{
			"artifact_version": artifact.ModelVersion,
			"metadata_version": metadata.ModelVersion,
		}).Warn("metadata version mismatch, metrics routes degraded")
		metadata = nil
	}

	m.artifact = artifact
	m.metadata = metadata
	m.state = StateReady

	log.WithFields(log.Fields{
		"model_version":   artifact.ModelVersion,
		"algorithm":       artifact.Algorithm,
		"metadata_loaded": metadata != nil,
	}).Info("model loaded")

	return nil
}

func checkArtifact(a *domain.ModelArtifact) error {
	if a == nil {
		return fmt.Errorf("artifact is nil")
	}
	if !domain.SupportedAlgorithms[a.Algorithm] {
		return fmt.Errorf("unsupported algorithm %q", a.Algorithm)
	}
	if a.Classifier == nil {
		return fmt.Errorf("artifact has no classifier")
	}
	if a.Scaler == nil {
		return fmt.Errorf("artifact has no scaler")
	}
	if err := a.Scaler.Check(); err != nil {
		return fmt.Errorf("scaler: %v", err)
	}
	return nil
}

// State returns the current lifecycle state.
func (m *Manager) State() ManagerState {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state
}

// Validate checks every passenger field against the model's input contract
// and reports all failures at once.
func (m *Manager) Validate(f domain.PassengerFeatures) error {
	var fields []domain.FieldError

	if f.Pclass < 1 || f.Pclass > 3 {
		fields = append(fields, domain.NewFieldError("pclass", f.Pclass, "Pclass must be 1, 2, or 3. Got: %v", f.Pclass))
	}
	if f.Sex != domain.SexMale && f.Sex != domain.SexFemale {
		fields = append(fields, domain.NewFieldError("sex", f.Sex, "Sex must be 0 (male) or 1 (female). Got: %v", f.Sex))
	}
	if math.IsNaN(f.Age) || math.IsInf(f.Age, 0) || f.Age < 0 || f.Age > 120 {
		fields = append(fields, domain.NewFieldError("age", f.Age, "Age must be between 0 and 120. Got: %v", f.Age))
	}
	if math.IsNaN(f.Fare) || math.IsInf(f.Fare, 0) || f.Fare < 0 {
		fields = append(fields, domain.NewFieldError("fare", f.Fare, "Fare must be non-negative. Got: %v", f.Fare))
	}
	if f.Embarked < domain.EmbarkedSouthampton || f.Embarked > domain.EmbarkedQueenstown {
		fields = append(fields, domain.NewFieldError("embarked", f.Embarked, "Embarked must be 0 (S), 1 (C), or 2 (Q). Got: %v", f.Embarked))
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// Predict validates the passenger, scales the feature vector, and runs the
// classifier. Class names come from metadata when present and fall back to
// the built-in labels otherwise.
func (m *Manager) Predict(ctx context.Context, f domain.PassengerFeatures) (*domain.Prediction, error) {
	m.mu.RLock()
	state := m.state
	artifact := m.artifact
	metadata := m.metadata
	m.mu.RUnlock()

	if state != StateReady {
		return nil, domain.ErrModelNotReady
	}

	if err := m.Validate(f); err != nil {
		return nil, err
	}

	scaled, err := artifact.Scaler.Transform(f.Vector())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInference, err)
	}

	label, probs, err := artifact.Classifier.Classify(scaled)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInference, err)
	}

	className := domain.DefaultClassNames[label]
	if metadata != nil {
		if name, err := metadata.ClassNameFor(label); err == nil {
			className = name
		}
	}

	return &domain.Prediction{
		Label:         label,
		ClassName:     className,
		Confidence:    probs[label],
		Probabilities: probs,
		ModelVersion:  artifact.ModelVersion,
	}, nil
}

// Metrics returns a copy of the evaluation metadata. Callers can mutate the
// copy freely; the manager's own metadata never changes after load.
func (m *Manager) Metrics() (*domain.ModelMetadata, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.state != StateReady {
		return nil, domain.ErrModelNotReady
	}
	if m.metadata == nil {
		return nil, domain.ErrMetadataUnavailable
	}
	return m.metadata.Clone(), nil
}

// Info describes the loaded model for the info and health surfaces.
func (m *Manager) Info() ModelInfo {
	m.mu.RLock()
	defer m.mu.RUnlock()

	info := ModelInfo{
		State:          m.state,
		FeatureNames:   domain.FeatureNames(),
		MetadataLoaded: m.metadata != nil,
	}
	if m.artifact != nil {
		info.ModelVersion = m.artifact.ModelVersion
		info.Algorithm = m.artifact.Algorithm
	}
	if m.metadata != nil {
		info.TargetName = m.metadata.TargetName
		info.Classes = append([]int(nil), m.metadata.Classes...)
		info.ClassNames = append([]string(nil), m.metadata.ClassNames...)
	} else {
		info.TargetName = "Survived"
		info.Classes = []int{0, 1}
		info.ClassNames = []string{domain.DefaultClassNames[0], domain.DefaultClassNames[1]}
	}
	return info
}
