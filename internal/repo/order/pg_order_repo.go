package order_repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"challengecart/internal/domain/order"
	"challengecart/pkg/postgres"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var orderColumns = []string{
	"id", "order_number",
	"email", "first_name", "last_name", "address_1", "city", "state", "postcode", "country",
	"purchase_price", "total_price", "currency", "discount_code",
	"purchase_type", "is_in_app_purchase",
	"program_id", "platform_slug", "account_size", "tier_id", "add_ons",
	"status", "transaction_id", "metadata",
	"created_at", "updated_at",
}

// PgOrderRepo is the order storage backed by Postgres.
type PgOrderRepo struct {
	pg *postgres.Postgres
	repo
}

func NewPgOrderRepo(pg *postgres.Postgres) *PgOrderRepo {
	return &PgOrderRepo{
		pg:   pg,
		repo: repo{db: pg.Pool, builder: pg.Builder},
	}
}

type repo struct {
	db      postgres.Executor
	builder squirrel.StatementBuilderType
}

func (r *repo) GetByOrderNumber(ctx context.Context, orderNumber string) (order.Order, error) {
	query, args, err := r.builder.Select(orderColumns...).
		From("orders").
		Where(squirrel.Eq{"order_number": orderNumber}).
		ToSql()
	if err != nil {
		return order.Order{}, fmt.Errorf("build order query: %w", err)
	}

	o, err := parseOrderRow(r.db.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return order.Order{}, order.ErrNotFound
	}
	if err != nil {
		return order.Order{}, fmt.Errorf("get order %s: %w", orderNumber, err)
	}
	return o, nil
}

func (r *repo) UpdateStatus(ctx context.Context, id uuid.UUID, status order.Status, transactionID string) error {
	query, args, err := r.builder.Update("orders").
		Set("status", string(status)).
		Set("transaction_id", transactionID).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build status update: %w", err)
	}

	if _, err = r.db.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("update order status: %w", err)
	}
	return nil
}

func (r *repo) HealMetadataPrice(ctx context.Context, id uuid.UUID, c order.PriceCorrection) error {
	patch, err := json.Marshal(map[string]any{
		order.MetaTotalPrice:   c.Corrected,
		order.MetaPriceFixedAt: c.FixedAt.Format(time.RFC3339),
		order.MetaPriceFixedBy: c.FixedBy,
	})
	if err != nil {
		return fmt.Errorf("marshal price patch: %w", err)
	}

	query, args, err := r.builder.Update("orders").
		Set("metadata", squirrel.Expr("COALESCE(metadata, '{}'::jsonb) || ?::jsonb", string(patch))).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build metadata patch: %w", err)
	}

	if _, err = r.db.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("heal metadata price: %w", err)
	}
	return nil
}

// Attribution queries run over the metadata bag directly. Written as raw SQL:
// squirrel's '?' placeholder rewriting collides with the jsonb '?' operator
// family, so these statements stay out of the builder.
const lastAttributedAtSQL = `
	SELECT created_at FROM orders
	WHERE email = $1
	  AND id <> $2
	  AND status = 'completed'
	  AND COALESCE(metadata->>'affiliateId', '') <> ''
	ORDER BY created_at DESC
	LIMIT 1`

const firstAffiliateSQL = `
	SELECT metadata->>'affiliateId' FROM orders
	WHERE email = $1
	  AND COALESCE(metadata->>'affiliateId', '') <> ''
	ORDER BY created_at ASC
	LIMIT 1`

// LastAttributedAt excludes the order being processed: by the time a dispatch
// step runs, the webhook has already committed that order as completed, so
// without the exclusion it would count as its own prior attribution.
func (r *repo) LastAttributedAt(ctx context.Context, email string, excludeOrderID uuid.UUID) (*time.Time, error) {
	var at time.Time
	err := r.db.QueryRow(ctx, lastAttributedAtSQL, email, excludeOrderID).Scan(&at)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query last attribution: %w", err)
	}
	return &at, nil
}

func (r *repo) FirstAffiliate(ctx context.Context, email string) (*string, error) {
	var affiliate string
	err := r.db.QueryRow(ctx, firstAffiliateSQL, email).Scan(&affiliate)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query first affiliate: %w", err)
	}
	return &affiliate, nil
}
