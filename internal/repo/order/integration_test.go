//go:build integration
// +build integration

package order_repo_test

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"testing"

	"challengecart/internal/testinfra"
	"challengecart/pkg/postgres"

	"github.com/stretchr/testify/require"
)

//go:embed testdata/orders_fixture.sql
var ordersFixture string

var (
	container *testinfra.PostgresContainer
	pool      *postgres.Postgres
)

func TestMain(m *testing.M) {
	ctx := context.Background()

	pg, err := testinfra.NewPostgres(ctx)
	if err != nil {
		panic(fmt.Sprintf("start postgres container: %v", err))
	}
	container = pg
	pool = pg.Pool

	code := m.Run()

	container.Cleanup(ctx)
	os.Exit(code)
}

func applyFixture(t *testing.T) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, container.Truncate(ctx))
	_, err := pool.Pool.Exec(ctx, ordersFixture)
	require.NoError(t, err)
}
