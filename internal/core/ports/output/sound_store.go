package ports

import (
	"context"

	"github.com/google/uuid"

	"ml-classroom-service/internal/core/domain"
)

// SoundStore persists raw audio for sound projects.
type SoundStore interface {
	Put(ctx context.Context, sound *domain.Sound, data []byte) error
	Get(ctx context.Context, projectID, id uuid.UUID) (*domain.Sound, []byte, error)
	Delete(ctx context.Context, projectID, id uuid.UUID) error
}
