package testutil

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"ml-classroom-service/internal/core/domain"
	"ml-classroom-service/internal/core/ports/output"
)

// MockSoundStore is a mock of SoundStore.
type MockSoundStore struct {
	mock.Mock
}

func (m *MockSoundStore) Put(ctx context.Context, sound *domain.Sound, data []byte) error {
	args := m.Called(ctx, sound, data)
	return args.Error(0)
}

func (m *MockSoundStore) Get(ctx context.Context, projectID, id uuid.UUID) (*domain.Sound, []byte, error) {
	args := m.Called(ctx, projectID, id)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*domain.Sound), args.Get(1).([]byte), args.Error(2)
}

func (m *MockSoundStore) Delete(ctx context.Context, projectID, id uuid.UUID) error {
	args := m.Called(ctx, projectID, id)
	return args.Error(0)
}

// MockMLServiceClient is a mock of MLServiceClient.
type MockMLServiceClient struct {
	mock.Mock
}

func (m *MockMLServiceClient) Probe(ctx context.Context, creds *domain.Credentials) (*ports.ProbeResult, error) {
	args := m.Called(ctx, creds)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ports.ProbeResult), args.Error(1)
}

func (m *MockMLServiceClient) Classify(ctx context.Context, creds *domain.Credentials, classifierID, data string) ([]domain.Classification, error) {
	args := m.Called(ctx, creds, classifierID, data)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Classification), args.Error(1)
}

func (m *MockMLServiceClient) IsAvailable() bool {
	args := m.Called()
	return args.Bool(0)
}
