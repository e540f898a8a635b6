package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"ml-classroom-service/internal/core/domain"
	"ml-classroom-service/internal/core/ports/output"
)

type projectRepo struct {
	pool *pgxpool.Pool
}

func NewProjectRepository(pool *pgxpool.Pool) ports.ProjectRepository {
	return &projectRepo{pool: pool}
}

const projectColumns = `id, classid, userid, name, type, language, labels, createdat`

func (r *projectRepo) GetByID(ctx context.Context, owner domain.Owner, id uuid.UUID) (*domain.Project, error) {
	query := `SELECT ` + projectColumns + `
		FROM projects
		WHERE id = $1 AND classid = $2 AND userid = $3
	`
	p, err := scanProject(r.pool.QueryRow(ctx, query, id, owner.ClassID, owner.UserID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProjectNotFound
		}
		return nil, fmt.Errorf("get project by id: %w", err)
	}
	return p, nil
}

func (r *projectRepo) GetByIDUnscoped(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE id = $1`
	p, err := scanProject(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProjectNotFound
		}
		return nil, fmt.Errorf("get project: %w", err)
	}
	return p, nil
}

func scanProject(row pgx.Row) (*domain.Project, error) {
	p := &domain.Project{}
	var labelsJSON []byte

	err := row.Scan(
		&p.ID, &p.ClassID, &p.UserID, &p.Name, &p.Type,
		&p.Language, &labelsJSON, &p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	p.Labels = []string{}
	if len(labelsJSON) > 0 {
		if err := json.Unmarshal(labelsJSON, &p.Labels); err != nil {
			return nil, fmt.Errorf("unmarshal labels: %w", err)
		}
	}
	return p, nil
}
