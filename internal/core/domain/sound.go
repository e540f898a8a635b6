package domain

import "github.com/google/uuid"

// Sound is a stored audio clip used as sound-project training data.
type Sound struct {
	ID          uuid.UUID
	ProjectID   uuid.UUID
	Label       string
	ContentType string
	Size        int64
}
