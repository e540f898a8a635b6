package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"ml-classroom-service/internal/core/domain"
	"ml-classroom-service/internal/core/ports/output"
	"ml-classroom-service/internal/pkg/urlchecker"
)

// CheckOptions bound how hard a credentials check hits the ML service.
type CheckOptions struct {
	Concurrency int
	// Rate is the number of probes per second; zero means unlimited.
	Rate float64
}

type CredentialsService struct {
	repo        ports.CredentialsRepository
	knownErrors ports.KnownErrorRepository
	client      ports.MLServiceClient
	opts        CheckOptions
}

func NewCredentialsService(repo ports.CredentialsRepository, knownErrors ports.KnownErrorRepository, client ports.MLServiceClient, opts CheckOptions) *CredentialsService {
	if opts.Concurrency <= 0 {
		opts.Concurrency = 1
	}
	return &CredentialsService{repo: repo, knownErrors: knownErrors, client: client, opts: opts}
}

// CheckAll probes every stored set of credentials and records the ones the
// service rejects. Results keep the repository order.
func (s *CredentialsService) CheckAll(ctx context.Context) ([]domain.CredentialsCheckResult, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list credentials: %w", err)
	}

	limiter := rate.NewLimiter(rate.Inf, 1)
	if s.opts.Rate > 0 {
		limiter = rate.NewLimiter(rate.Limit(s.opts.Rate), 1)
	}

	results := make([]domain.CredentialsCheckResult, len(all))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.opts.Concurrency)

	for i, creds := range all {
		g.Go(func() error {
			if err := limiter.Wait(gctx); err != nil {
				return err
			}
			results[i] = s.check(gctx, creds)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	failed := 0
	for _, r := range results {
		if !r.OK {
			failed++
		}
	}
	log.WithFields(log.Fields{
		"checked": len(results),
		"failed":  failed,
	}).Info("credentials check finished")

	return results, nil
}

func (s *CredentialsService) check(ctx context.Context, creds *domain.Credentials) domain.CredentialsCheckResult {
	result := domain.CredentialsCheckResult{
		CredentialsID: creds.ID,
		ClassID:       creds.ClassID,
		ServiceType:   creds.ServiceType,
		URL:           creds.URL,
	}

	canonical, err := urlchecker.Check(creds.URL)
	if err != nil {
		result.Error = err.Error()
		s.recordBad(ctx, creds)
		return result
	}
	result.URL = canonical

	start := time.Now()
	probe, err := s.client.Probe(ctx, creds)
	result.Latency = time.Since(start)
	if err != nil {
		result.Error = err.Error()
		if errors.Is(err, domain.ErrCredentialsRejected) {
			s.recordBad(ctx, creds)
		}
		return result
	}

	result.StatusCode = probe.StatusCode
	result.OK = probe.StatusCode >= 200 && probe.StatusCode < 300
	if !result.OK {
		result.Error = fmt.Sprintf("unexpected status %d", probe.StatusCode)
	}
	return result
}

func (s *CredentialsService) recordBad(ctx context.Context, creds *domain.Credentials) {
	err := s.knownErrors.Record(ctx, &domain.KnownError{
		ID:          uuid.New(),
		Type:        domain.KnownErrorBadCredentials,
		ServiceType: creds.ServiceType,
		ObjectID:    creds.ID.String(),
		CreatedAt:   time.Now(),
	})
	if err != nil {
		log.WithError(err).WithField("credentials_id", creds.ID).Warn("failed to record bad credentials")
	}
}
