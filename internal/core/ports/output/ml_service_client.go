package ports

import (
	"context"

	"ml-classroom-service/internal/core/domain"
)

// ProbeResult is the raw outcome of a credentials probe.
type ProbeResult struct {
	StatusCode int
}

// MLServiceClient defines the contract for calls to the external ML
// training service.
type MLServiceClient interface {
	// Probe verifies that the service accepts the given credentials.
	Probe(ctx context.Context, creds *domain.Credentials) (*ProbeResult, error)

	// Classify runs data through a trained classifier.
	Classify(ctx context.Context, creds *domain.Credentials, classifierID, data string) ([]domain.Classification, error)

	// IsAvailable checks if the ML service integration is enabled.
	IsAvailable() bool
}
