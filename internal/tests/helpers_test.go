package tests

import (
	"context"
	"testing"
	"time"

	"syncpos/internal/service"
	"syncpos/internal/storage"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func newTestKV(t *testing.T) (*storage.KVStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return storage.NewKVStore(client), mr
}

// newTestCart builds a cart service over miniredis with the seed catalog
// installed.
func newTestCart(t *testing.T) (*service.CartService, *storage.KVStore) {
	t.Helper()
	kv, _ := newTestKV(t)
	ctx := context.Background()
	require.NoError(t, kv.ReplaceMenu(ctx, service.DefaultMenu()))
	return service.NewCartService(ctx, kv, kv, service.DefaultTaxPolicy()), kv
}

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func fixedTime(t *testing.T) time.Time {
	t.Helper()
	at, err := time.Parse(time.RFC3339, "2025-03-14T12:30:00Z")
	require.NoError(t, err)
	return at
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	require.True(t, dec(t, want).Equal(got), "expected %s, got %s", want, got.String())
}
