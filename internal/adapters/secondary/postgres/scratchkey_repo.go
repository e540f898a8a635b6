package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"ml-classroom-service/internal/core/domain"
	"ml-classroom-service/internal/core/ports/output"
)

type scratchKeyRepo struct {
	pool *pgxpool.Pool
}

func NewScratchKeyRepository(pool *pgxpool.Pool) ports.ScratchKeyRepository {
	return &scratchKeyRepo{pool: pool}
}

func (r *scratchKeyRepo) Create(ctx context.Context, key *domain.ScratchKey) error {
	query := `
		INSERT INTO scratchkeys (id, projectid, classid, userid, classifierid, credentialsid, updated)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.pool.Exec(ctx, query,
		key.ID, key.ProjectID, key.ClassID, key.UserID,
		key.ClassifierID, key.CredentialsID, key.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("create scratch key: %w", err)
	}
	return nil
}

func (r *scratchKeyRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.ScratchKey, error) {
	query := `
		SELECT id, projectid, classid, userid, COALESCE(classifierid, ''), credentialsid, updated
		FROM scratchkeys
		WHERE id = $1
	`
	key := &domain.ScratchKey{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&key.ID, &key.ProjectID, &key.ClassID, &key.UserID,
		&key.ClassifierID, &key.CredentialsID, &key.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrScratchKeyNotFound
		}
		return nil, fmt.Errorf("get scratch key: %w", err)
	}
	return key, nil
}

func (r *scratchKeyRepo) ListByProject(ctx context.Context, owner domain.Owner, projectID uuid.UUID) ([]*domain.ScratchKey, error) {
	query := `
		SELECT id, projectid, classid, userid, COALESCE(classifierid, ''), credentialsid, updated
		FROM scratchkeys
		WHERE projectid = $1 AND classid = $2 AND userid = $3
		ORDER BY updated DESC
	`
	rows, err := r.pool.Query(ctx, query, projectID, owner.ClassID, owner.UserID)
	if err != nil {
		return nil, fmt.Errorf("list scratch keys: %w", err)
	}
	defer rows.Close()

	keys := []*domain.ScratchKey{}
	for rows.Next() {
		key := &domain.ScratchKey{}
		if err := rows.Scan(
			&key.ID, &key.ProjectID, &key.ClassID, &key.UserID,
			&key.ClassifierID, &key.CredentialsID, &key.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan scratch key row: %w", err)
		}
		keys = append(keys, key)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate scratch key rows: %w", err)
	}
	return keys, nil
}
