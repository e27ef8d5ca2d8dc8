package ledger_repo

import (
	"context"
	"fmt"

	"challengecart/internal/fulfillment"
	"challengecart/pkg/postgres"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

// PgOutcomeLedger is the append-only integration-outcome store. Rows are never
// updated or deleted; the latest row per (order, step) carries the marker.
type PgOutcomeLedger struct {
	pg *postgres.Postgres
	repo
}

func NewPgOutcomeLedger(pg *postgres.Postgres) *PgOutcomeLedger {
	return &PgOutcomeLedger{
		pg:   pg,
		repo: repo{db: pg.Pool, builder: pg.Builder},
	}
}

type repo struct {
	db      postgres.Executor
	builder squirrel.StatementBuilderType
}

const latestOutcomesSQL = `
	SELECT DISTINCT ON (step) order_id, step, status, detail, created_at
	FROM integration_outcomes
	WHERE order_id = $1
	ORDER BY step, created_at DESC`

func (r *repo) Outcomes(ctx context.Context, orderID uuid.UUID) (map[string]fulfillment.Outcome, error) {
	rows, err := r.db.Query(ctx, latestOutcomesSQL, orderID)
	if err != nil {
		return nil, fmt.Errorf("query integration outcomes: %w", err)
	}
	defer rows.Close()

	outcomes := make(map[string]fulfillment.Outcome)
	for rows.Next() {
		var o fulfillment.Outcome
		var rawStatus string
		if err := rows.Scan(&o.OrderID, &o.Step, &rawStatus, &o.Detail, &o.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan outcome row: %w", err)
		}
		o.Status = fulfillment.OutcomeStatus(rawStatus)
		outcomes[o.Step] = o
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate outcome rows: %w", err)
	}
	return outcomes, nil
}

func (r *repo) Record(ctx context.Context, o fulfillment.Outcome) error {
	query, args, err := r.builder.Insert("integration_outcomes").
		Columns("order_id", "step", "status", "detail", "created_at").
		Values(o.OrderID, o.Step, string(o.Status), o.Detail, o.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build outcome insert: %w", err)
	}

	if _, err = r.db.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("record integration outcome: %w", err)
	}
	return nil
}
