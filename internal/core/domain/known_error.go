package domain

import (
	"time"

	"github.com/google/uuid"
)

type KnownErrorType string

const (
	KnownErrorBadScratchKey  KnownErrorType = "BAD_SCRATCHKEY"
	KnownErrorBadCredentials KnownErrorType = "BAD_CREDENTIALS"
)

// KnownError records an object that is known to be broken so that requests
// touching it can be rejected early.
type KnownError struct {
	ID          uuid.UUID
	Type        KnownErrorType
	ServiceType ServiceType
	ObjectID    string
	CreatedAt   time.Time
}
