package domain

import (
	"time"

	"github.com/google/uuid"
)

// ScratchKey grants a Scratch project access to a project's classifier
// without the student's login.
type ScratchKey struct {
	ID            uuid.UUID
	ProjectID     uuid.UUID
	ClassID       string
	UserID        string
	ClassifierID  string
	CredentialsID *uuid.UUID
	UpdatedAt     time.Time
}

// HasClassifier reports whether a trained classifier backs this key.
func (k *ScratchKey) HasClassifier() bool {
	return k.ClassifierID != "" && k.CredentialsID != nil
}

// Classification is one label/confidence pair returned to Scratch.
type Classification struct {
	ClassName  string `json:"class_name"`
	Confidence int    `json:"confidence"`
	Random     bool   `json:"random,omitempty"`
}
