package services

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/paintcompare/backend/internal/store"
	"github.com/redis/go-redis/v9"
)

func newTestAnalytics(t *testing.T) (*AnalyticsService, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewAnalyticsService(store.NewSeeded(), rdb), mr
}

func TestDashboardKPIsPopulatesCache(t *testing.T) {
	svc, mr := newTestAnalytics(t)
	ctx := context.Background()

	kpis := svc.DashboardKPIs(ctx)
	if kpis.TotalProducts != 5 {
		t.Fatalf("totalProducts = %d, want 5", kpis.TotalProducts)
	}
	if !mr.Exists(CacheKeyKPIs) {
		t.Fatal("expected KPIs to be cached after first computation")
	}
	if mr.TTL(CacheKeyKPIs) != CacheTTL {
		t.Fatalf("cache TTL = %v, want %v", mr.TTL(CacheKeyKPIs), CacheTTL)
	}
}

func TestProductComparisonsPopulatesCache(t *testing.T) {
	svc, mr := newTestAnalytics(t)
	ctx := context.Background()

	views := svc.ProductComparisons(ctx)
	if len(views) != 5 {
		t.Fatalf("expected 5 views, got %d", len(views))
	}
	if !mr.Exists(CacheKeyComparisons) {
		t.Fatal("expected comparisons to be cached after first computation")
	}
}

func TestCachedPayloadServedUntilInvalidated(t *testing.T) {
	svc, mr := newTestAnalytics(t)
	ctx := context.Background()

	before := svc.DashboardKPIs(ctx)
	if before.TotalProducts != 5 {
		t.Fatalf("totalProducts = %d, want 5", before.TotalProducts)
	}

	// Mutate the store behind the cache: reads must keep serving the cached
	// payload until a mutation invalidates it.
	svc.Store.DeleteProduct("prod1")

	stale := svc.DashboardKPIs(ctx)
	if stale.TotalProducts != 5 {
		t.Fatalf("expected the cached count 5, got %d", stale.TotalProducts)
	}

	svc.InvalidateCache(ctx)
	if mr.Exists(CacheKeyKPIs) || mr.Exists(CacheKeyComparisons) {
		t.Fatal("expected both cache keys deleted")
	}

	fresh := svc.DashboardKPIs(ctx)
	if fresh.TotalProducts != 4 {
		t.Fatalf("expected a fresh count 4 after invalidation, got %d", fresh.TotalProducts)
	}
}

func TestCorruptCacheFallsThrough(t *testing.T) {
	svc, mr := newTestAnalytics(t)
	ctx := context.Background()

	if err := mr.Set(CacheKeyKPIs, "{not json"); err != nil {
		t.Fatalf("failed to seed corrupt cache: %v", err)
	}

	kpis := svc.DashboardKPIs(ctx)
	if kpis.TotalProducts != 5 {
		t.Fatalf("expected a fresh computation despite corrupt cache, got %d", kpis.TotalProducts)
	}
}

func TestRedisDownStillComputes(t *testing.T) {
	svc, mr := newTestAnalytics(t)
	mr.Close()

	kpis := svc.DashboardKPIs(context.Background())
	if kpis.TotalProducts != 5 {
		t.Fatalf("expected computation to survive a dead cache, got %d", kpis.TotalProducts)
	}
}
