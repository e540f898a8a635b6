package services

import (
	"context"
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"ml-classroom-service/internal/core/domain"
	"ml-classroom-service/internal/core/ports/output"
)

type SoundService struct {
	projects ports.ProjectRepository
	training ports.TrainingRepository
	store    ports.SoundStore
	maxBytes int64
}

func NewSoundService(projects ports.ProjectRepository, training ports.TrainingRepository, store ports.SoundStore, maxBytes int64) *SoundService {
	return &SoundService{projects: projects, training: training, store: store, maxBytes: maxBytes}
}

// MaxBytes is the largest sound accepted by Upload.
func (s *SoundService) MaxBytes() int64 {
	return s.maxBytes
}

// Upload stores audio for a sound project and records it as a training item.
func (s *SoundService) Upload(ctx context.Context, owner domain.Owner, projectID uuid.UUID, label, contentType string, data []byte) (*domain.Sound, error) {
	if err := owner.Validate(); err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, domain.ErrEmptyPayload
	}
	if int64(len(data)) > s.maxBytes {
		return nil, fmt.Errorf("%w: sound is %s, limit is %s", domain.ErrPayloadTooLarge,
			humanize.Bytes(uint64(len(data))), humanize.Bytes(uint64(s.maxBytes)))
	}

	project, err := s.projects.GetByID(ctx, owner, projectID)
	if err != nil {
		return nil, err
	}
	if project.Type != domain.ProjectTypeSounds {
		return nil, domain.ErrProjectTypeNotSupported
	}
	if !project.HasLabel(label) {
		return nil, domain.ErrInvalidLabel
	}

	if contentType == "" {
		contentType = "application/octet-stream"
	}
	sound := &domain.Sound{
		ID:          uuid.New(),
		ProjectID:   project.ID,
		Label:       label,
		ContentType: contentType,
		Size:        int64(len(data)),
	}

	if err := s.store.Put(ctx, sound, data); err != nil {
		return nil, err
	}

	item := &domain.TrainingItem{
		ID:        uuid.New(),
		ProjectID: project.ID,
		Label:     label,
		Data:      sound.ID.String(),
		CreatedAt: time.Now(),
	}
	if err := s.training.Create(ctx, item); err != nil {
		if delErr := s.store.Delete(ctx, project.ID, sound.ID); delErr != nil {
			log.WithError(delErr).WithField("sound_id", sound.ID).Warn("failed to remove orphaned sound")
		}
		return nil, err
	}

	return sound, nil
}

// Download returns a stored sound after checking project ownership.
func (s *SoundService) Download(ctx context.Context, owner domain.Owner, projectID, soundID uuid.UUID) (*domain.Sound, []byte, error) {
	if err := owner.Validate(); err != nil {
		return nil, nil, err
	}

	project, err := s.projects.GetByID(ctx, owner, projectID)
	if err != nil {
		return nil, nil, err
	}

	return s.store.Get(ctx, project.ID, soundID)
}
