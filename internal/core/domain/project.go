package domain

import (
	"time"

	"github.com/google/uuid"
)

type ProjectType string

const (
	ProjectTypeText    ProjectType = "text"
	ProjectTypeNumbers ProjectType = "numbers"
	ProjectTypeImages  ProjectType = "images"
	ProjectTypeSounds  ProjectType = "sounds"
)

func (t ProjectType) IsValid() bool {
	switch t {
	case ProjectTypeText, ProjectTypeNumbers, ProjectTypeImages, ProjectTypeSounds:
		return true
	}
	return false
}

// Project is owned by a student within a class (tenant).
type Project struct {
	ID        uuid.UUID
	ClassID   string
	UserID    string
	Name      string
	Type      ProjectType
	Language  string
	Labels    []string
	CreatedAt time.Time
}

// HasLabel reports whether label is one of the project's labels.
func (p *Project) HasLabel(label string) bool {
	for _, l := range p.Labels {
		if l == label {
			return true
		}
	}
	return false
}

// Owner identifies the class and student a request is acting for.
type Owner struct {
	ClassID string
	UserID  string
}

func (o Owner) Validate() error {
	if o.ClassID == "" {
		return ErrMissingTenant
	}
	if o.UserID == "" {
		return ErrMissingStudent
	}
	return nil
}
