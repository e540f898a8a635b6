package services

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"ml-classroom-service/internal/core/domain"
	"ml-classroom-service/internal/core/ports/output"
	"ml-classroom-service/internal/pkg/urlchecker"
)

type TrainingService struct {
	projects ports.ProjectRepository
	training ports.TrainingRepository
}

func NewTrainingService(projects ports.ProjectRepository, training ports.TrainingRepository) *TrainingService {
	return &TrainingService{projects: projects, training: training}
}

// AddItem validates data against the project type and stores it under label.
// Sound items are added through SoundService.Upload instead.
func (s *TrainingService) AddItem(ctx context.Context, owner domain.Owner, projectID uuid.UUID, label, data string, numbers []float64) (*domain.TrainingItem, error) {
	if err := owner.Validate(); err != nil {
		return nil, err
	}

	project, err := s.projects.GetByID(ctx, owner, projectID)
	if err != nil {
		return nil, err
	}
	if !project.HasLabel(label) {
		return nil, domain.ErrInvalidLabel
	}

	item := &domain.TrainingItem{
		ID:        uuid.New(),
		ProjectID: project.ID,
		Label:     label,
		CreatedAt: time.Now(),
	}

	switch project.Type {
	case domain.ProjectTypeText:
		text := strings.TrimSpace(data)
		if text == "" {
			return nil, fmt.Errorf("%w: text is empty", domain.ErrInvalidTrainingData)
		}
		if utf8.RuneCountInString(text) > domain.MaxTextLength {
			return nil, domain.ErrTextTooLong
		}
		item.Data = text
	case domain.ProjectTypeImages:
		canonical, err := urlchecker.Check(data)
		if err != nil {
			return nil, err
		}
		item.Data = canonical
	case domain.ProjectTypeNumbers:
		if len(numbers) == 0 {
			return nil, fmt.Errorf("%w: numbers are required", domain.ErrInvalidTrainingData)
		}
		item.Numbers = numbers
	default:
		return nil, domain.ErrProjectTypeNotSupported
	}

	if err := s.training.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// List returns one page of training items. Limit and offset are clamped and
// the page reports the values actually used.
func (s *TrainingService) List(ctx context.Context, owner domain.Owner, filter domain.TrainingListFilter) (*domain.TrainingPage, error) {
	if err := owner.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.projects.GetByID(ctx, owner, filter.ProjectID); err != nil {
		return nil, err
	}

	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Limit > 100 {
		filter.Limit = 100
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	items, total, err := s.training.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return &domain.TrainingPage{
		Items:  items,
		Total:  total,
		Limit:  filter.Limit,
		Offset: filter.Offset,
	}, nil
}
