package coupon_repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"challengecart/internal/domain/coupon"
	"challengecart/pkg/postgres"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var couponColumns = []string{
	"id", "code", "status",
	"restriction_type", "program_ids", "affiliate_id",
	"discount_type", "discount_value", "size_overrides",
	"auto_apply", "auto_apply_priority", "prevent_manual_entry", "auto_apply_message",
	"total_usage_limit", "usage_per_user",
	"valid_from", "valid_to",
}

// PgCouponRepo reads coupon configuration and the redemption ledger.
type PgCouponRepo struct {
	pg *postgres.Postgres
	repo
}

func NewPgCouponRepo(pg *postgres.Postgres) *PgCouponRepo {
	return &PgCouponRepo{
		pg:   pg,
		repo: repo{db: pg.Pool, builder: pg.Builder},
	}
}

type repo struct {
	db      postgres.Executor
	builder squirrel.StatementBuilderType
}

func (r *repo) FindAutoApply(ctx context.Context, now time.Time) ([]coupon.Coupon, error) {
	query, args, err := r.builder.Select(couponColumns...).
		From("coupons").
		Where(squirrel.Eq{"auto_apply": true, "status": string(coupon.StatusActive)}).
		Where(squirrel.LtOrEq{"valid_from": now}).
		Where(squirrel.Or{
			squirrel.Eq{"valid_to": nil},
			squirrel.GtOrEq{"valid_to": now},
		}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build auto-apply query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query auto-apply coupons: %w", err)
	}
	defer rows.Close()

	var coupons []coupon.Coupon
	for rows.Next() {
		c, err := scanCoupon(rows)
		if err != nil {
			return nil, fmt.Errorf("scan coupon row: %w", err)
		}
		coupons = append(coupons, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate coupon rows: %w", err)
	}
	return coupons, nil
}

func (r *repo) GetByCode(ctx context.Context, code string) (coupon.Coupon, error) {
	query, args, err := r.builder.Select(couponColumns...).
		From("coupons").
		Where(squirrel.Eq{"code": strings.ToUpper(code)}).
		ToSql()
	if err != nil {
		return coupon.Coupon{}, fmt.Errorf("build coupon query: %w", err)
	}

	c, err := scanCoupon(r.db.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return coupon.Coupon{}, coupon.ErrNotFound
	}
	if err != nil {
		return coupon.Coupon{}, fmt.Errorf("get coupon by code: %w", err)
	}
	return c, nil
}

func (r *repo) CountTotal(ctx context.Context, couponID uuid.UUID) (int, error) {
	query, args, err := r.builder.Select("COUNT(*)").
		From("coupon_usages").
		Where(squirrel.Eq{"coupon_id": couponID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build usage count query: %w", err)
	}

	var count int
	if err := r.db.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count coupon usage: %w", err)
	}
	return count, nil
}

func (r *repo) CountByCustomer(ctx context.Context, couponID uuid.UUID, email string) (int, error) {
	query, args, err := r.builder.Select("COUNT(*)").
		From("coupon_usages").
		Where(squirrel.Eq{"coupon_id": couponID, "customer_email": email}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build per-user count query: %w", err)
	}

	var count int
	if err := r.db.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count coupon usage by customer: %w", err)
	}
	return count, nil
}

func scanCoupon(row pgx.Row) (coupon.Coupon, error) {
	var c coupon.Coupon
	var rawStatus, rawRestriction, rawDiscountType string
	var programIDs, sizeOverrides []byte
	var message *string

	err := row.Scan(
		&c.ID, &c.Code, &rawStatus,
		&rawRestriction, &programIDs, &c.AffiliateID,
		&rawDiscountType, &c.DiscountValue, &sizeOverrides,
		&c.AutoApply, &c.AutoApplyPriority, &c.PreventManualEntry, &message,
		&c.TotalUsageLimit, &c.UsagePerUser,
		&c.ValidFrom, &c.ValidTo,
	)
	if err != nil {
		return coupon.Coupon{}, err
	}

	c.Status = coupon.Status(rawStatus)
	c.RestrictionType = coupon.RestrictionType(rawRestriction)
	c.DiscountType = coupon.DiscountType(rawDiscountType)
	if message != nil {
		c.AutoApplyMessage = *message
	}
	if len(programIDs) > 0 {
		if err := json.Unmarshal(programIDs, &c.ProgramIDs); err != nil {
			return coupon.Coupon{}, fmt.Errorf("decode program_ids for %s: %w", c.Code, err)
		}
	}
	if len(sizeOverrides) > 0 {
		if err := json.Unmarshal(sizeOverrides, &c.SizeOverrides); err != nil {
			return coupon.Coupon{}, fmt.Errorf("decode size_overrides for %s: %w", c.Code, err)
		}
	}
	return c, nil
}
