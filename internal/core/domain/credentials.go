package domain

import (
	"time"

	"github.com/google/uuid"
)

type ServiceType string

const (
	ServiceTypeConversation ServiceType = "conv"
	ServiceTypeVisualRecog  ServiceType = "visrec"
	ServiceTypeSounds       ServiceType = "sounds"
	ServiceTypeNumbers      ServiceType = "num"
)

// Credentials reference an account on an external ML training service.
type Credentials struct {
	ID          uuid.UUID
	ClassID     string
	ServiceType ServiceType
	URL         string
	Username    string
	Password    string
	Notes       string
}

// CredentialsCheckResult is the outcome of probing one set of credentials.
type CredentialsCheckResult struct {
	CredentialsID uuid.UUID
	ClassID       string
	ServiceType   ServiceType
	URL           string
	OK            bool
	StatusCode    int
	Error         string
	Latency       time.Duration
}
