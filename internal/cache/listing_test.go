package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func newTestListing(t *testing.T, ttl time.Duration) (*Listing, *miniredis.Miniredis) {
	t.Helper()
	srv := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewListing(rdb, ttl, nil), srv
}

func TestListing_RoundTrip(t *testing.T) {
	listing, _ := newTestListing(t, time.Minute)
	ctx := context.Background()

	_, ok := listing.Get(ctx, "/invoices")
	assert.False(t, ok, "cold cache must miss")

	listing.Set(ctx, "/invoices", []byte(`{"invoices":[]}`))

	b, ok := listing.Get(ctx, "/invoices")
	assert.True(t, ok)
	assert.Equal(t, []byte(`{"invoices":[]}`), b)
}

func TestListing_TTLExpiry(t *testing.T) {
	listing, srv := newTestListing(t, time.Minute)
	ctx := context.Background()

	listing.Set(ctx, "/invoices", []byte("payload"))
	srv.FastForward(2 * time.Minute)

	_, ok := listing.Get(ctx, "/invoices")
	assert.False(t, ok, "payload must expire with the TTL")
}

func TestListing_InvalidateDropsAllPagesUnderPath(t *testing.T) {
	listing, _ := newTestListing(t, time.Minute)
	ctx := context.Background()

	listing.Set(ctx, "/invoices?page=1", []byte("p1"))
	listing.Set(ctx, "/invoices?page=2&q=acme", []byte("p2"))
	listing.Set(ctx, "/customers", []byte("other"))

	listing.Invalidate(ctx, "/invoices")

	_, ok := listing.Get(ctx, "/invoices?page=1")
	assert.False(t, ok)
	_, ok = listing.Get(ctx, "/invoices?page=2&q=acme")
	assert.False(t, ok)

	b, ok := listing.Get(ctx, "/customers")
	assert.True(t, ok, "invalidation must not touch other paths")
	assert.Equal(t, []byte("other"), b)
}

func TestListing_InvalidateEmptyIsNoop(t *testing.T) {
	listing, _ := newTestListing(t, time.Minute)

	// nothing cached yet; must not error or panic
	listing.Invalidate(context.Background(), "/invoices")
}

func TestListing_FireAndForgetOnDeadRedis(t *testing.T) {
	srv := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	listing := NewListing(rdb, time.Minute, nil)
	srv.Close()

	ctx := context.Background()

	// all three swallow the transport error; callers never see it
	listing.Set(ctx, "/invoices", []byte("payload"))
	listing.Invalidate(ctx, "/invoices")
	_, ok := listing.Get(ctx, "/invoices")
	assert.False(t, ok)
}
