package storage

import (
	"context"
	"encoding/json"
	"time"

	"github.com/example/logitrack/internal/models"
)

const trackingCacheTTL = 24 * time.Hour

// Tracking lookups are the hot public path, so orders are cached by tracking
// ID. All cache operations are best effort: a cache failure never fails the
// request.

func trackingKey(trackingID string) string {
	return "tracking:" + trackingID
}

func (s *Store) cacheOrderByTracking(ctx context.Context, order *models.Order) {
	if s.cache == nil {
		return
	}
	data, err := json.Marshal(order)
	if err != nil {
		return
	}
	_ = s.cache.Set(ctx, trackingKey(order.TrackingID), data, trackingCacheTTL).Err()
}

func (s *Store) cachedOrderByTracking(ctx context.Context, trackingID string) *models.Order {
	if s.cache == nil {
		return nil
	}
	data, err := s.cache.Get(ctx, trackingKey(trackingID)).Bytes()
	if err != nil {
		// redis.Nil and transport errors alike fall back to the database.
		return nil
	}

	var order models.Order
	if err := json.Unmarshal(data, &order); err != nil {
		return nil
	}
	return &order
}

func (s *Store) invalidateTracking(ctx context.Context, trackingID string) {
	if s.cache == nil || trackingID == "" {
		return
	}
	_ = s.cache.Del(ctx, trackingKey(trackingID)).Err()
}
