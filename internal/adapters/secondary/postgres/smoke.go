package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"ml-classroom-service/internal/core/ports/output"
)

// smokeTables are counted by Smoke. Names are constants, never user input.
var smokeTables = []string{
	"projects",
	"trainingitems",
	"scratchkeys",
	"bluemixcredentials",
	"knownsyserrors",
}

type inspector struct {
	pool *pgxpool.Pool
}

func NewDatabaseInspector(pool *pgxpool.Pool) ports.DatabaseInspector {
	return &inspector{pool: pool}
}

// Smoke checks the connection and counts the rows in every known table.
func (i *inspector) Smoke(ctx context.Context) ([]ports.TableCount, error) {
	var one int
	if err := i.pool.QueryRow(ctx, "SELECT 1").Scan(&one); err != nil {
		return nil, fmt.Errorf("select 1: %w", err)
	}

	counts := make([]ports.TableCount, 0, len(smokeTables))
	for _, table := range smokeTables {
		var rows int64
		if err := i.pool.QueryRow(ctx, "SELECT COUNT(*) FROM "+table).Scan(&rows); err != nil {
			return nil, fmt.Errorf("count %s: %w", table, err)
		}
		counts = append(counts, ports.TableCount{Table: table, Rows: rows})
	}
	return counts, nil
}
