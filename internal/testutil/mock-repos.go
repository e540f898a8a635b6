package testutil

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"ml-classroom-service/internal/core/domain"
	"ml-classroom-service/internal/core/ports/output"
)

// MockProjectRepo is a mock of ProjectRepository.
type MockProjectRepo struct {
	mock.Mock
}

func (m *MockProjectRepo) GetByID(ctx context.Context, owner domain.Owner, id uuid.UUID) (*domain.Project, error) {
	args := m.Called(ctx, owner, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Project), args.Error(1)
}

func (m *MockProjectRepo) GetByIDUnscoped(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Project), args.Error(1)
}

// MockTrainingRepo is a mock of TrainingRepository.
type MockTrainingRepo struct {
	mock.Mock
}

func (m *MockTrainingRepo) Create(ctx context.Context, item *domain.TrainingItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockTrainingRepo) List(ctx context.Context, filter domain.TrainingListFilter) ([]*domain.TrainingItem, int, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]*domain.TrainingItem), args.Int(1), args.Error(2)
}

func (m *MockTrainingRepo) ListAll(ctx context.Context, projectID uuid.UUID) ([]*domain.TrainingItem, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.TrainingItem), args.Error(1)
}

// MockScratchKeyRepo is a mock of ScratchKeyRepository.
type MockScratchKeyRepo struct {
	mock.Mock
}

func (m *MockScratchKeyRepo) Create(ctx context.Context, key *domain.ScratchKey) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockScratchKeyRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.ScratchKey, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ScratchKey), args.Error(1)
}

func (m *MockScratchKeyRepo) ListByProject(ctx context.Context, owner domain.Owner, projectID uuid.UUID) ([]*domain.ScratchKey, error) {
	args := m.Called(ctx, owner, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.ScratchKey), args.Error(1)
}

// MockCredentialsRepo is a mock of CredentialsRepository.
type MockCredentialsRepo struct {
	mock.Mock
}

func (m *MockCredentialsRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Credentials, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Credentials), args.Error(1)
}

func (m *MockCredentialsRepo) List(ctx context.Context) ([]*domain.Credentials, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Credentials), args.Error(1)
}

// MockKnownErrorRepo is a mock of KnownErrorRepository.
type MockKnownErrorRepo struct {
	mock.Mock
}

func (m *MockKnownErrorRepo) Record(ctx context.Context, knownErr *domain.KnownError) error {
	args := m.Called(ctx, knownErr)
	return args.Error(0)
}

func (m *MockKnownErrorRepo) Exists(ctx context.Context, errType domain.KnownErrorType, objectID string) (bool, error) {
	args := m.Called(ctx, errType, objectID)
	return args.Bool(0), args.Error(1)
}

// MockDatabaseInspector is a mock of DatabaseInspector.
type MockDatabaseInspector struct {
	mock.Mock
}

func (m *MockDatabaseInspector) Smoke(ctx context.Context) ([]ports.TableCount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ports.TableCount), args.Error(1)
}
