package mapping_repo

import (
	"context"
	"testing"

	"challengecart/internal/domain/mapping"
	"challengecart/pkg/pointers"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mockRepo(t *testing.T) (*repo, pgxmock.PgxPoolIface) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	return &repo{db: mock, builder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)}, mock
}

func TestGetMapping(t *testing.T) {
	ctx := context.Background()

	t.Run("should scan a mapping row", func(t *testing.T) {
		r, mock := mockRepo(t)
		id, programID, tierID := uuid.New(), uuid.New(), uuid.New()

		rows := mock.NewRows(mappingColumns).
			AddRow(
				id, programID, pointers.Ptr(tierID), "mt5", nil,
				int64(1001), int64(2001),
				int64(4001), int64(4002), int64(4003),
				int64(5001),
			)

		mock.ExpectQuery(`SELECT .+ FROM product_mappings WHERE`).
			WithArgs(platformArgs(programID, tierID, "mt5")...).
			WillReturnRows(rows)

		m, err := r.GetMapping(ctx, programID, tierID, "mt5")

		require.NoError(t, err)
		require.NotNil(t, m)
		assert.Equal(t, int64(1001), m.ProductID)
		assert.Equal(t, int64(2001), m.VariationID)
		assert.Equal(t, int64(4002), m.ResetFeeFundedProductID)
	})

	t.Run("should return nil when no row matches", func(t *testing.T) {
		r, mock := mockRepo(t)
		programID, tierID := uuid.New(), uuid.New()

		mock.ExpectQuery(`SELECT .+ FROM product_mappings WHERE`).
			WithArgs(platformArgs(programID, tierID, "mt5")...).
			WillReturnRows(mock.NewRows(mappingColumns))

		m, err := r.GetMapping(ctx, programID, tierID, "mt5")

		require.NoError(t, err)
		assert.Nil(t, m)
	})
}

// platformArgs mirrors squirrel.Eq's alphabetical placeholder ordering.
func platformArgs(programID, tierID uuid.UUID, slug string) []any {
	return []any{slug, programID, tierID}
}

func TestAddOnKey(t *testing.T) {
	ctx := context.Background()

	t.Run("should return the add-on key", func(t *testing.T) {
		r, mock := mockRepo(t)
		id := uuid.New()

		mock.ExpectQuery(`SELECT key FROM add_ons WHERE id = \$1`).
			WithArgs(id).
			WillReturnRows(mock.NewRows([]string{"key"}).AddRow("double-leverage"))

		key, err := r.AddOnKey(ctx, id)

		require.NoError(t, err)
		assert.Equal(t, "double-leverage", key)
	})

	t.Run("should map missing add-ons to ErrAddOnNotFound", func(t *testing.T) {
		r, mock := mockRepo(t)
		id := uuid.New()

		mock.ExpectQuery(`SELECT key FROM add_ons WHERE id = \$1`).
			WithArgs(id).
			WillReturnRows(mock.NewRows([]string{"key"}))

		_, err := r.AddOnKey(ctx, id)

		assert.ErrorIs(t, err, mapping.ErrAddOnNotFound)
	})
}
