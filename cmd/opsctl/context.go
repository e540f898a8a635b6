package main

import (
	"context"
	"fmt"
	"sync"

	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"

	"ml-classroom-service/internal/adapters/secondary/mlservice"
	"ml-classroom-service/internal/adapters/secondary/postgres"
	"ml-classroom-service/internal/config"
	"ml-classroom-service/internal/core/ports/output"
	"ml-classroom-service/internal/core/services"
)

// commandContext lazily builds the config and the dependencies a command
// needs. The factories are replaced in tests.
type commandContext struct {
	configOnce sync.Once
	config     *config.Config
	configErr  error

	poolOnce sync.Once
	pool     *pgxpool.Pool
	poolErr  error

	newChecker   func(ctx context.Context, opts services.CheckOptions) (services.CredentialsChecker, error)
	newInspector func(ctx context.Context) (ports.DatabaseInspector, error)
}

func newCommandContext() *commandContext {
	c := &commandContext{}
	c.newChecker = c.defaultChecker
	c.newInspector = c.defaultInspector
	return c
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		c.config, c.configErr = config.Load()
	})
	return c.config, c.configErr
}

func (c *commandContext) initLogger() {
	cfg, err := c.ensureConfig()
	if err != nil {
		return
	}
	if level, err := log.ParseLevel(cfg.Logger.Level); err == nil {
		log.SetLevel(level)
	}
	if cfg.Logger.Format == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	}
}

func (c *commandContext) ensurePool(ctx context.Context) (*pgxpool.Pool, error) {
	c.poolOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.poolErr = fmt.Errorf("load config: %w", err)
			return
		}
		c.pool, c.poolErr = postgres.NewPool(ctx, cfg.Database)
	})
	return c.pool, c.poolErr
}

func (c *commandContext) close() {
	if c.pool != nil {
		c.pool.Close()
	}
}

func (c *commandContext) defaultChecker(ctx context.Context, opts services.CheckOptions) (services.CredentialsChecker, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	pool, err := c.ensurePool(ctx)
	if err != nil {
		return nil, err
	}

	if opts.Concurrency <= 0 {
		opts.Concurrency = cfg.Credentials.CheckConcurrency
	}
	if opts.Rate < 0 {
		opts.Rate = cfg.Credentials.CheckRate
	}

	return services.NewCredentialsService(
		postgres.NewCredentialsRepository(pool),
		postgres.NewKnownErrorRepository(pool),
		mlservice.NewClient(&cfg.MLService),
		opts,
	), nil
}

func (c *commandContext) defaultInspector(ctx context.Context) (ports.DatabaseInspector, error) {
	pool, err := c.ensurePool(ctx)
	if err != nil {
		return nil, err
	}
	return postgres.NewDatabaseInspector(pool), nil
}
