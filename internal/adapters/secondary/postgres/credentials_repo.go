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

type credentialsRepo struct {
	pool *pgxpool.Pool
}

func NewCredentialsRepository(pool *pgxpool.Pool) ports.CredentialsRepository {
	return &credentialsRepo{pool: pool}
}

const credentialsColumns = `id, classid, servicetype, url, username, password, COALESCE(notes, '')`

func (r *credentialsRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Credentials, error) {
	query := `SELECT ` + credentialsColumns + ` FROM bluemixcredentials WHERE id = $1`

	c := &domain.Credentials{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.ClassID, &c.ServiceType, &c.URL, &c.Username, &c.Password, &c.Notes,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCredentialsNotFound
		}
		return nil, fmt.Errorf("get credentials: %w", err)
	}
	return c, nil
}

func (r *credentialsRepo) List(ctx context.Context) ([]*domain.Credentials, error) {
	query := `SELECT ` + credentialsColumns + ` FROM bluemixcredentials ORDER BY classid, servicetype`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list credentials: %w", err)
	}
	defer rows.Close()

	all := []*domain.Credentials{}
	for rows.Next() {
		c := &domain.Credentials{}
		if err := rows.Scan(&c.ID, &c.ClassID, &c.ServiceType, &c.URL, &c.Username, &c.Password, &c.Notes); err != nil {
			return nil, fmt.Errorf("scan credentials row: %w", err)
		}
		all = append(all, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate credentials rows: %w", err)
	}
	return all, nil
}
