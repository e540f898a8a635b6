package services

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"

	"ml-classroom-service/internal/core/domain"
)

// CredentialsChecker is satisfied by CredentialsService.
type CredentialsChecker interface {
	CheckAll(ctx context.Context) ([]domain.CredentialsCheckResult, error)
}

// CredentialsCheckScheduler runs a credentials check on a cron schedule.
type CredentialsCheckScheduler struct {
	cron    *cron.Cron
	checker CredentialsChecker
	ctx     context.Context
	cancel  context.CancelFunc
}

// NewCredentialsCheckScheduler parses a standard 5-field cron expression
// (descriptors such as "@daily" and "@every 1h" are accepted too).
func NewCredentialsCheckScheduler(schedule string, checker CredentialsChecker) (*CredentialsCheckScheduler, error) {
	parser := cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)

	ctx, cancel := context.WithCancel(context.Background())
	s := &CredentialsCheckScheduler{
		cron:    cron.New(cron.WithParser(parser)),
		checker: checker,
		ctx:     ctx,
		cancel:  cancel,
	}

	if _, err := s.cron.AddFunc(schedule, s.run); err != nil {
		cancel()
		return nil, fmt.Errorf("parse credentials check schedule %q: %w", schedule, err)
	}
	return s, nil
}

func (s *CredentialsCheckScheduler) run() {
	if _, err := s.checker.CheckAll(s.ctx); err != nil {
		log.WithError(err).Error("scheduled credentials check failed")
	}
}

func (s *CredentialsCheckScheduler) Start() {
	s.cron.Start()
}

// Stop cancels any running check and waits for it to return or ctx to end.
func (s *CredentialsCheckScheduler) Stop(ctx context.Context) {
	s.cancel()
	done := s.cron.Stop()
	select {
	case <-done.Done():
	case <-ctx.Done():
	}
}
