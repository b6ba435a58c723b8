package cart

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewRedisStore(rdb, time.Hour), mr
}

func TestRedisStoreRoundTrip(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	in := Cart{Items: []Item{{ProductID: "p1", Name: "Tee", Price: 19.99, Quantity: 2, Stock: stockPtr(5)}}}
	require.NoError(t, store.Save(ctx, "k1", in))

	out, err := store.Load(ctx, "k1")
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	require.Equal(t, in.Items[0], out.Items[0])
}

func TestRedisStoreMissingKeyIsEmptyCart(t *testing.T) {
	store, _ := newTestStore(t)

	out, err := store.Load(context.Background(), "nope")
	require.NoError(t, err)
	require.Empty(t, out.Items)
}

func TestRedisStoreDelete(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "k1", Cart{Items: []Item{{ProductID: "p1", Quantity: 1}}}))
	require.NoError(t, store.Delete(ctx, "k1"))
	require.False(t, mr.Exists("cm:cart:k1"))
}

func TestRedisStoreAppliesTTL(t *testing.T) {
	store, mr := newTestStore(t)

	require.NoError(t, store.Save(context.Background(), "k1", Cart{}))
	require.Greater(t, mr.TTL("cm:cart:k1"), time.Duration(0))
}
