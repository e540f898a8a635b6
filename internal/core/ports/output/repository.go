package ports

import (
	"context"

	"github.com/google/uuid"

	"ml-classroom-service/internal/core/domain"
)

type ProjectRepository interface {
	// GetByID returns the project only if it belongs to the given owner.
	GetByID(ctx context.Context, owner domain.Owner, id uuid.UUID) (*domain.Project, error)
	// GetByIDUnscoped is used by Scratch, which only carries a scratch key.
	GetByIDUnscoped(ctx context.Context, id uuid.UUID) (*domain.Project, error)
}

type TrainingRepository interface {
	Create(ctx context.Context, item *domain.TrainingItem) error
	List(ctx context.Context, filter domain.TrainingListFilter) ([]*domain.TrainingItem, int, error)
	ListAll(ctx context.Context, projectID uuid.UUID) ([]*domain.TrainingItem, error)
}

type ScratchKeyRepository interface {
	Create(ctx context.Context, key *domain.ScratchKey) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ScratchKey, error)
	ListByProject(ctx context.Context, owner domain.Owner, projectID uuid.UUID) ([]*domain.ScratchKey, error)
}

type CredentialsRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Credentials, error)
	List(ctx context.Context) ([]*domain.Credentials, error)
}

type KnownErrorRepository interface {
	Record(ctx context.Context, knownErr *domain.KnownError) error
	Exists(ctx context.Context, errType domain.KnownErrorType, objectID string) (bool, error)
}

// TableCount is one row of a database smoke test.
type TableCount struct {
	Table string
	Rows  int64
}

type DatabaseInspector interface {
	Smoke(ctx context.Context) ([]TableCount, error)
}
