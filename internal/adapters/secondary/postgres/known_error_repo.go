package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"ml-classroom-service/internal/core/domain"
	"ml-classroom-service/internal/core/ports/output"
)

type knownErrorRepo struct {
	pool *pgxpool.Pool
}

func NewKnownErrorRepository(pool *pgxpool.Pool) ports.KnownErrorRepository {
	return &knownErrorRepo{pool: pool}
}

// Record is idempotent: recording the same object twice is not an error.
func (r *knownErrorRepo) Record(ctx context.Context, knownErr *domain.KnownError) error {
	query := `
		INSERT INTO knownsyserrors (id, type, servicetype, objid, createdat)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.pool.Exec(ctx, query,
		knownErr.ID, string(knownErr.Type), string(knownErr.ServiceType),
		knownErr.ObjectID, knownErr.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil
		}
		return fmt.Errorf("record known error: %w", err)
	}
	return nil
}

func (r *knownErrorRepo) Exists(ctx context.Context, errType domain.KnownErrorType, objectID string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM knownsyserrors WHERE type = $1 AND objid = $2)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, string(errType), objectID).Scan(&exists); err != nil {
		return false, fmt.Errorf("check known error: %w", err)
	}
	return exists, nil
}
