//go:build integration
// +build integration

package order_repo_test

import (
	"context"
	"testing"
	"time"

	"challengecart/internal/domain/order"
	order_repo "challengecart/internal/repo/order"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pendingID = uuid.MustParse("11111111-1111-1111-1111-111111111111")

func TestGetByOrderNumber_Integration(t *testing.T) {
	ctx := context.Background()
	applyFixture(t)
	repo := order_repo.NewPgOrderRepo(pool)

	t.Run("reads the full row back", func(t *testing.T) {
		o, err := repo.GetByOrderNumber(ctx, "#20001")

		require.NoError(t, err)
		assert.Equal(t, pendingID, o.ID)
		assert.Equal(t, order.StatusPending, o.Status)
		assert.Equal(t, 499.0, o.PurchasePrice)

		metaTotal, ok := o.Metadata.Float64(order.MetaTotalPrice)
		require.True(t, ok)
		assert.Equal(t, 399.0, metaTotal)
	})

	t.Run("unknown order number", func(t *testing.T) {
		_, err := repo.GetByOrderNumber(ctx, "#0")

		assert.ErrorIs(t, err, order.ErrNotFound)
	})
}

func TestUpdateStatus_Integration(t *testing.T) {
	ctx := context.Background()
	applyFixture(t)
	repo := order_repo.NewPgOrderRepo(pool)

	require.NoError(t, repo.UpdateStatus(ctx, pendingID, order.StatusCompleted, "tx_9"))

	o, err := repo.GetByOrderNumber(ctx, "#20001")
	require.NoError(t, err)
	assert.Equal(t, order.StatusCompleted, o.Status)
	assert.Equal(t, "tx_9", o.TransactionID)
}

func TestHealMetadataPrice_Integration(t *testing.T) {
	ctx := context.Background()
	applyFixture(t)
	repo := order_repo.NewPgOrderRepo(pool)

	fixedAt := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, repo.HealMetadataPrice(ctx, pendingID, order.PriceCorrection{
		Previous:  399,
		Corrected: 499,
		FixedAt:   fixedAt,
		FixedBy:   "payment-webhook",
	}))

	o, err := repo.GetByOrderNumber(ctx, "#20001")
	require.NoError(t, err)

	metaTotal, ok := o.Metadata.Float64(order.MetaTotalPrice)
	require.True(t, ok)
	assert.Equal(t, 499.0, metaTotal)

	fixedBy, _ := o.Metadata.String(order.MetaPriceFixedBy)
	assert.Equal(t, "payment-webhook", fixedBy)

	// The untouched keys survive the merge.
	affiliate, ok := o.AffiliateID()
	require.True(t, ok)
	assert.Equal(t, "aff-1", affiliate)
}

func TestAttribution_Integration(t *testing.T) {
	ctx := context.Background()
	applyFixture(t)
	repo := order_repo.NewPgOrderRepo(pool)

	t.Run("last attributed completed order", func(t *testing.T) {
		at, err := repo.LastAttributedAt(ctx, "jo@example.com", uuid.New())

		require.NoError(t, err)
		require.NotNil(t, at)
		assert.Equal(t, time.Date(2025, 11, 20, 9, 0, 0, 0, time.UTC), at.UTC())
	})

	t.Run("order being dispatched does not count as its own attribution", func(t *testing.T) {
		// Once its status is committed, the order would match the history
		// query itself; the exclusion keeps the window measured from the
		// genuinely previous attributed order.
		require.NoError(t, repo.UpdateStatus(ctx, pendingID, order.StatusCompleted, "tx_9"))

		at, err := repo.LastAttributedAt(ctx, "jo@example.com", pendingID)

		require.NoError(t, err)
		require.NotNil(t, at)
		assert.Equal(t, time.Date(2025, 11, 20, 9, 0, 0, 0, time.UTC), at.UTC())
	})

	t.Run("first affiliate", func(t *testing.T) {
		affiliate, err := repo.FirstAffiliate(ctx, "jo@example.com")

		require.NoError(t, err)
		require.NotNil(t, affiliate)
		assert.Equal(t, "aff-1", *affiliate)
	})

	t.Run("unattributed customer", func(t *testing.T) {
		at, err := repo.LastAttributedAt(ctx, "nobody@example.com", uuid.New())

		require.NoError(t, err)
		assert.Nil(t, at)
	})
}
