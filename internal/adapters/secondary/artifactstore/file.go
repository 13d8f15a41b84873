// Package artifactstore loads serialized model bundles from local JSON
// files. The artifact file carries the trained parameters; the metadata file
// carries the holdout evaluation shown on the metrics surfaces.
package artifactstore

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"titanguard/internal/core/domain"
	"titanguard/internal/validation"
)

type FileStore struct {
	modelPath    string
	metadataPath string
}

func NewFileStore(modelPath, metadataPath string) *FileStore {
	return &FileStore{
		modelPath:    modelPath,
		metadataPath: metadataPath,
	}
}

// artifactFile mirrors the on-disk layout written by the training pipeline.
type artifactFile struct {
	ModelVersion string   `json:"model_version"`
	Algorithm    string   `json:"algorithm"`
	FeatureNames []string `json:"feature_names"`
	Scaler       struct {
		Mean  []float64 `json:"mean"`
		Scale []float64 `json:"scale"`
	} `json:"scaler"`
	Coefficients []float64 `json:"coefficients"`
	Intercept    float64   `json:"intercept"`
}

func (s *FileStore) LoadArtifact(ctx context.Context) (*domain.ModelArtifact, error) {
	payload, err := os.ReadFile(s.modelPath)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", domain.ErrModelLoad, s.modelPath, err)
	}

	var file artifactFile
	if err := json.Unmarshal(payload, &file); err != nil {
		return nil, fmt.Errorf("%w: parse %s: %v", domain.ErrModelLoad, s.modelPath, err)
	}

	if !domain.SupportedAlgorithms[file.Algorithm] {
		return nil, fmt.Errorf("%w: unsupported algorithm %q", domain.ErrModelLoad, file.Algorithm)
	}
	if len(file.FeatureNames) > 0 && !domain.SameFeatureOrder(file.FeatureNames) {
		return nil, fmt.Errorf("%w: feature order %v does not match %v", domain.ErrModelLoad, file.FeatureNames, domain.FeatureNames())
	}

	scaler := &domain.StandardScaler{
		Mean:  file.Scaler.Mean,
		Scale: file.Scaler.Scale,
	}
	if err := scaler.Check(); err != nil {
		return nil, fmt.Errorf("%w: scaler: %v", domain.ErrModelLoad, err)
	}

	classifier := &domain.LogisticRegression{
		Coefficients: file.Coefficients,
		Intercept:    file.Intercept,
	}
	if err := classifier.Check(); err != nil {
		return nil, fmt.Errorf("%w: classifier: %v", domain.ErrModelLoad, err)
	}

	return &domain.ModelArtifact{
		ModelVersion: file.ModelVersion,
		Algorithm:    file.Algorithm,
		Classifier:   classifier,
		Scaler:       scaler,
	}, nil
}

func (s *FileStore) LoadMetadata(ctx context.Context) (*domain.ModelMetadata, error) {
	payload, err := os.ReadFile(s.metadataPath)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", domain.ErrMetadataUnavailable, s.metadataPath, err)
	}

	var metadata domain.ModelMetadata
	if err := json.Unmarshal(payload, &metadata); err != nil {
		return nil, fmt.Errorf("%w: parse %s: %v", domain.ErrMetadataUnavailable, s.metadataPath, err)
	}

	if err := validation.ValidateStruct(&metadata); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMetadataUnavailable, err)
	}
	if err := metadata.Check(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMetadataUnavailable, err)
	}

	return &metadata, nil
}
