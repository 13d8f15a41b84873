package ports

import (
	"context"

	"titanguard/internal/core/domain"
)

// ArtifactStore loads the serialized model bundle from wherever it is kept.
// LoadArtifact failures wrap domain.ErrModelLoad; LoadMetadata failures wrap
// domain.ErrMetadataUnavailable so callers can degrade instead of aborting.
type ArtifactStore interface {
	LoadArtifact(ctx context.Context) (*domain.ModelArtifact, error)
	LoadMetadata(ctx context.Context) (*domain.ModelMetadata, error)
}
