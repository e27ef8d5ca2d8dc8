package mapping_repo

import (
	"context"
	"errors"
	"fmt"

	"challengecart/internal/domain/mapping"
	"challengecart/pkg/postgres"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var mappingColumns = []string{
	"id", "program_id", "tier_id", "platform_slug", "account_size_key",
	"product_id", "variation_id",
	"reset_fee_product_id", "reset_fee_funded_product_id", "reset_fee_funded_variation_id",
	"activation_product_id",
}

// PgMappingRepo reads the product-mapping configuration tables. The tables
// are operator-maintained and change rarely; every lookup goes straight to
// Postgres.
type PgMappingRepo struct {
	pg *postgres.Postgres
	repo
}

func NewPgMappingRepo(pg *postgres.Postgres) *PgMappingRepo {
	return &PgMappingRepo{
		pg:   pg,
		repo: repo{db: pg.Pool, builder: pg.Builder},
	}
}

type repo struct {
	db      postgres.Executor
	builder squirrel.StatementBuilderType
}

func (r *repo) GetMapping(ctx context.Context, programID, tierID uuid.UUID, platformSlug string) (*mapping.ProductMapping, error) {
	query, args, err := r.builder.Select(mappingColumns...).
		From("product_mappings").
		Where(squirrel.Eq{
			"program_id":    programID,
			"tier_id":       tierID,
			"platform_slug": platformSlug,
		}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build mapping query: %w", err)
	}

	m, err := scanMapping(r.db.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get product mapping: %w", err)
	}
	return &m, nil
}

func (r *repo) ListTiers(ctx context.Context, programID uuid.UUID) ([]mapping.Tier, error) {
	query, args, err := r.builder.Select("id", "label").
		From("program_tiers").
		Where(squirrel.Eq{"program_id": programID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build tiers query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query program tiers: %w", err)
	}
	defer rows.Close()

	var tiers []mapping.Tier
	for rows.Next() {
		var t mapping.Tier
		if err := rows.Scan(&t.ID, &t.Label); err != nil {
			return nil, fmt.Errorf("scan tier row: %w", err)
		}
		tiers = append(tiers, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tier rows: %w", err)
	}
	return tiers, nil
}

func (r *repo) ListLegacyByPlatform(ctx context.Context, platformSlug string) ([]mapping.ProductMapping, error) {
	query, args, err := r.builder.Select(mappingColumns...).
		From("product_mappings").
		Where(squirrel.Eq{"platform_slug": platformSlug}).
		Where("tier_id IS NULL").
		Where("account_size_key <> ''").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build legacy mappings query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query legacy mappings: %w", err)
	}
	defer rows.Close()

	var mappings []mapping.ProductMapping
	for rows.Next() {
		m, err := scanMapping(rows)
		if err != nil {
			return nil, fmt.Errorf("scan legacy mapping row: %w", err)
		}
		mappings = append(mappings, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate legacy mapping rows: %w", err)
	}
	return mappings, nil
}

func (r *repo) AddOnKey(ctx context.Context, addOnID uuid.UUID) (string, error) {
	query, args, err := r.builder.Select("key").
		From("add_ons").
		Where(squirrel.Eq{"id": addOnID}).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("build add-on query: %w", err)
	}

	var key string
	err = r.db.QueryRow(ctx, query, args...).Scan(&key)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", mapping.ErrAddOnNotFound
	}
	if err != nil {
		return "", fmt.Errorf("get add-on key: %w", err)
	}
	return key, nil
}

func scanMapping(row pgx.Row) (mapping.ProductMapping, error) {
	var m mapping.ProductMapping
	var accountSizeKey *string

	err := row.Scan(
		&m.ID, &m.ProgramID, &m.TierID, &m.PlatformSlug, &accountSizeKey,
		&m.ProductID, &m.VariationID,
		&m.ResetFeeProductID, &m.ResetFeeFundedProductID, &m.ResetFeeFundedVariationID,
		&m.ActivationProductID,
	)
	if err != nil {
		return mapping.ProductMapping{}, err
	}
	if accountSizeKey != nil {
		m.AccountSizeKey = *accountSizeKey
	}
	return m, nil
}
