package services

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"fmt"
	"sort"
	"strings"
	"text/template"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"ml-classroom-service/internal/core/domain"
	"ml-classroom-service/internal/core/ports/output"
	"ml-classroom-service/internal/pkg/random"
)

//go:embed templates/scratch-extension.js.tmpl
var templateFS embed.FS

var extensionTemplate = template.Must(template.ParseFS(templateFS, "templates/scratch-extension.js.tmpl"))

type extensionData struct {
	ExtensionID string
	ProjectName string
	DataName    string
	Labels      []string
	ClassifyURL string
	Sounds      bool
}

type ScratchService struct {
	projects    ports.ProjectRepository
	keys        ports.ScratchKeyRepository
	knownErrors ports.KnownErrorRepository
	credentials ports.CredentialsRepository
	mlClient    ports.MLServiceClient
	random      *random.Generator
	publicURL   string
}

func NewScratchService(
	projects ports.ProjectRepository,
	keys ports.ScratchKeyRepository,
	knownErrors ports.KnownErrorRepository,
	credentials ports.CredentialsRepository,
	mlClient ports.MLServiceClient,
	rnd *random.Generator,
	publicURL string,
) *ScratchService {
	if rnd == nil {
		rnd = random.NewGenerator(nil)
	}
	return &ScratchService{
		projects:    projects,
		keys:        keys,
		knownErrors: knownErrors,
		credentials: credentials,
		mlClient:    mlClient,
		random:      rnd,
		publicURL:   strings.TrimRight(publicURL, "/"),
	}
}

// ListKeys returns the project's scratch keys, creating one when the project
// has none yet.
func (s *ScratchService) ListKeys(ctx context.Context, owner domain.Owner, projectID uuid.UUID) ([]*domain.ScratchKey, error) {
	if err := owner.Validate(); err != nil {
		return nil, err
	}

	project, err := s.projects.GetByID(ctx, owner, projectID)
	if err != nil {
		return nil, err
	}

	keys, err := s.keys.ListByProject(ctx, owner, project.ID)
	if err != nil {
		return nil, err
	}
	if len(keys) > 0 {
		return keys, nil
	}

	key := &domain.ScratchKey{
		ID:        uuid.New(),
		ProjectID: project.ID,
		ClassID:   owner.ClassID,
		UserID:    owner.UserID,
		UpdatedAt: time.Now(),
	}
	if err := s.keys.Create(ctx, key); err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"class_id":   owner.ClassID,
		"project_id": project.ID,
	}).Info("created scratch key")

	return []*domain.ScratchKey{key}, nil
}

func (s *ScratchService) resolve(ctx context.Context, rawKey string) (*domain.ScratchKey, *domain.Project, error) {
	id, err := uuid.Parse(rawKey)
	if err != nil {
		return nil, nil, domain.ErrScratchKeyNotFound
	}

	known, err := s.knownErrors.Exists(ctx, domain.KnownErrorBadScratchKey, id.String())
	if err != nil {
		return nil, nil, err
	}
	if known {
		return nil, nil, domain.ErrScratchKeyNotFound
	}

	key, err := s.keys.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	project, err := s.projects.GetByIDUnscoped(ctx, key.ProjectID)
	if err != nil {
		if errors.Is(err, domain.ErrProjectNotFound) {
			s.recordBadKey(ctx, key.ID)
			return nil, nil, domain.ErrScratchKeyNotFound
		}
		return nil, nil, err
	}
	return key, project, nil
}

// recordBadKey remembers keys whose project has gone, so later requests are
// rejected without touching the projects table.
func (s *ScratchService) recordBadKey(ctx context.Context, id uuid.UUID) {
	err := s.knownErrors.Record(ctx, &domain.KnownError{
		ID:        uuid.New(),
		Type:      domain.KnownErrorBadScratchKey,
		ObjectID:  id.String(),
		CreatedAt: time.Now(),
	})
	if err != nil {
		log.WithError(err).WithField("scratch_key", id).Warn("failed to record bad scratch key")
	}
}

// Extension renders the Scratch extension script for the key's project.
func (s *ScratchService) Extension(ctx context.Context, rawKey string) ([]byte, error) {
	key, project, err := s.resolve(ctx, rawKey)
	if err != nil {
		return nil, err
	}

	data := extensionData{
		ExtensionID: strings.ReplaceAll(key.ID.String(), "-", ""),
		ProjectName: project.Name,
		DataName:    dataName(project.Type),
		Labels:      project.Labels,
		ClassifyURL: fmt.Sprintf("%s/api/scratch/%s/classify", s.publicURL, key.ID),
		Sounds:      project.Type == domain.ProjectTypeSounds,
	}

	var buf bytes.Buffer
	if err := extensionTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("render scratch extension: %w", err)
	}
	return buf.Bytes(), nil
}

func dataName(t domain.ProjectType) string {
	switch t {
	case domain.ProjectTypeImages:
		return "image"
	case domain.ProjectTypeNumbers:
		return "numbers"
	case domain.ProjectTypeSounds:
		return "sound"
	default:
		return "text"
	}
}

// Classify returns label confidences for data. Projects without a trained
// classifier get random confidences that still sum to 100.
func (s *ScratchService) Classify(ctx context.Context, rawKey, data string) ([]domain.Classification, error) {
	if strings.TrimSpace(data) == "" {
		return nil, domain.ErrMissingClassifyData
	}

	key, project, err := s.resolve(ctx, rawKey)
	if err != nil {
		return nil, err
	}

	if !key.HasClassifier() {
		return s.randomClassify(project)
	}

	if s.mlClient == nil || !s.mlClient.IsAvailable() {
		return nil, domain.ErrClassifierUnavailable
	}

	creds, err := s.credentials.GetByID(ctx, *key.CredentialsID)
	if err != nil {
		return nil, err
	}

	results, err := s.mlClient.Classify(ctx, creds, key.ClassifierID, data)
	if err != nil {
		return nil, err
	}
	sortClassifications(results)
	return results, nil
}

func (s *ScratchService) randomClassify(project *domain.Project) ([]domain.Classification, error) {
	if len(project.Labels) == 0 {
		return nil, domain.ErrNoLabels
	}

	confidences, err := s.random.Ints(len(project.Labels))
	if err != nil {
		return nil, err
	}

	results := make([]domain.Classification, len(project.Labels))
	for i, label := range project.Labels {
		results[i] = domain.Classification{
			ClassName:  label,
			Confidence: confidences[i],
			Random:     true,
		}
	}
	sortClassifications(results)
	return results, nil
}

func sortClassifications(results []domain.Classification) {
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Confidence > results[j].Confidence
	})
}
