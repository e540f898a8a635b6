package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"ml-classroom-service/internal/core/domain"
	"ml-classroom-service/internal/core/ports/output"
)

type trainingRepo struct {
	pool *pgxpool.Pool
}

func NewTrainingRepository(pool *pgxpool.Pool) ports.TrainingRepository {
	return &trainingRepo{pool: pool}
}

func (r *trainingRepo) Create(ctx context.Context, item *domain.TrainingItem) error {
	numbersJSON, err := item.NumbersJSON()
	if err != nil {
		return fmt.Errorf("marshal numbers: %w", err)
	}

	query := `
		INSERT INTO trainingitems (id, projectid, label, data, numbers, createdat)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err = r.pool.Exec(ctx, query,
		item.ID, item.ProjectID, item.Label, item.Data, numbersJSON, item.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrTrainingItemConflict
		}
		return fmt.Errorf("create training item: %w", err)
	}
	return nil
}

func (r *trainingRepo) List(ctx context.Context, filter domain.TrainingListFilter) ([]*domain.TrainingItem, int, error) {
	where := "projectid = $1"
	args := []interface{}{filter.ProjectID}
	if filter.Label != "" {
		where += " AND label = $2"
		args = append(args, filter.Label)
	}

	var total int
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM trainingitems WHERE %s", where)
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count training items: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT id, projectid, label, data, numbers, createdat
		FROM trainingitems
		WHERE %s
		ORDER BY createdat DESC
		LIMIT $%d OFFSET $%d
	`, where, len(args)+1, len(args)+2)
	args = append(args, filter.Limit, filter.Offset)

	items, err := r.query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *trainingRepo) ListAll(ctx context.Context, projectID uuid.UUID) ([]*domain.TrainingItem, error) {
	query := `
		SELECT id, projectid, label, data, numbers, createdat
		FROM trainingitems
		WHERE projectid = $1
		ORDER BY createdat
	`
	return r.query(ctx, query, projectID)
}

func (r *trainingRepo) query(ctx context.Context, query string, args ...interface{}) ([]*domain.TrainingItem, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list training items: %w", err)
	}
	defer rows.Close()

	items := []*domain.TrainingItem{}
	for rows.Next() {
		item := &domain.TrainingItem{}
		var numbersJSON []byte
		if err := rows.Scan(&item.ID, &item.ProjectID, &item.Label, &item.Data, &numbersJSON, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan training item row: %w", err)
		}
		if len(numbersJSON) > 0 {
			if err := json.Unmarshal(numbersJSON, &item.Numbers); err != nil {
				return nil, fmt.Errorf("unmarshal numbers: %w", err)
			}
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate training item rows: %w", err)
	}
	return items, nil
}
