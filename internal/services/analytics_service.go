/**
 * @description
 * Service layer for derived analytics.
 * Orchestrates the competitiveness calculator and KPI aggregator over store
 * snapshots, caching the computed JSON payloads in Redis.
 *
 * @dependencies
 * - backend/internal/analytics
 * - backend/internal/store
 * - github.com/redis/go-redis/v9
 *
 * @notes
 * - Cache-aside: reads prefer Redis, fall through to a fresh computation on
 *   miss or error. Every store mutation must call InvalidateCache.
 * - Competitor-price rows with unresolved competitors are excluded from the
 *   computation; the count is logged so the inconsistency stays visible.
 */

package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/paintcompare/backend/internal/analytics"
	"github.com/paintcompare/backend/internal/logger"
	"github.com/paintcompare/backend/internal/models"
	"github.com/paintcompare/backend/internal/store"
	"github.com/redis/go-redis/v9"
)

const (
	CacheKeyComparisons = "analytics:comparisons"
	CacheKeyKPIs        = "analytics:kpis"
	CacheTTL            = 5 * time.Minute
)

// AnalyticsService computes and caches the derived dashboard data
type AnalyticsService struct {
	Store *store.MemStore
	Redis *redis.Client
}

// NewAnalyticsService creates a new AnalyticsService
func NewAnalyticsService(st *store.MemStore, rdb *redis.Client) *AnalyticsService {
	return &AnalyticsService{
		Store: st,
		Redis: rdb,
	}
}

// ProductComparisons returns the per-product competitiveness views,
// preferring Cache -> fresh computation
func (s *AnalyticsService) ProductComparisons(ctx context.Context) []models.ProductWithCompetitorPrices {
	if val, err := s.Redis.Get(ctx, CacheKeyComparisons).Result(); err == nil {
		var views []models.ProductWithCompetitorPrices
		if err := json.Unmarshal([]byte(val), &views); err == nil {
			return views
		}
		// If unmarshal fails, fall through to a fresh computation
	}

	views, dropped := analytics.CompareCatalog(s.Store.Products(), s.Store.CompetitorPrices(""), s.Store.Competitors())
	if dropped > 0 {
		logger.Error("AnalyticsService: excluded %d competitor price row(s) referencing missing competitors", dropped)
	}

	s.cache(ctx, CacheKeyComparisons, views)
	return views
}

// DashboardKPIs returns the catalog-wide KPI record,
// preferring Cache -> fresh computation
func (s *AnalyticsService) DashboardKPIs(ctx context.Context) models.DashboardKPIs {
	if val, err := s.Redis.Get(ctx, CacheKeyKPIs).Result(); err == nil {
		var kpis models.DashboardKPIs
		if err := json.Unmarshal([]byte(val), &kpis); err == nil {
			return kpis
		}
	}

	competitors := s.Store.Competitors()
	prices := s.Store.CompetitorPrices("")
	views, dropped := analytics.CompareCatalog(s.Store.Products(), prices, competitors)
	if dropped > 0 {
		logger.Error("AnalyticsService: excluded %d competitor price row(s) referencing missing competitors", dropped)
	}
	kpis := analytics.ComputeDashboardKPIs(views, competitors, prices)

	s.cache(ctx, CacheKeyKPIs, kpis)
	return kpis
}

// InvalidateCache drops both cached payloads. Called after every mutation.
func (s *AnalyticsService) InvalidateCache(ctx context.Context) {
	if err := s.Redis.Del(ctx, CacheKeyComparisons, CacheKeyKPIs).Err(); err != nil {
		logger.Error("AnalyticsService: failed to invalidate cache: %v", err)
	}
}

func (s *AnalyticsService) cache(ctx context.Context, key string, payload interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		logger.Error("AnalyticsService: failed to marshal %s for cache: %v", key, err)
		return
	}
	if err := s.Redis.Set(ctx, key, data, CacheTTL).Err(); err != nil {
		logger.Error("AnalyticsService: failed to set %s cache: %v", key, err)
	}
}
