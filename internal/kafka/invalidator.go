package kafka

import (
	"context"
	"fmt"

	"kitchen-service/internal/cache"
	"kitchen-service/internal/events"

	"go.uber.org/zap"
)

// CacheInvalidator drops cached read models affected by a domain event.
// It is driven by the Kafka consumer, or directly by the in-memory
// publisher when Kafka is disabled.
type CacheInvalidator struct {
	cache  cache.Cache
	logger *zap.Logger
}

func NewCacheInvalidator(c cache.Cache, logger *zap.Logger) *CacheInvalidator {
	return &CacheInvalidator{cache: c, logger: logger}
}

// Invalidate maps an event type to the cache keys it makes stale.
func (inv *CacheInvalidator) Invalidate(ctx context.Context, eventType string) error {
	var patterns []string
	switch eventType {
	case events.TypeOrderCreated, events.TypeOrderUpdated, events.TypeOrderDeleted,
		events.TypeOrderStatusChanged, events.TypeFinishedGoodsStockChanged:
		patterns = []string{cache.DashboardPrefix + "*"}
	case events.TypeInventoryStockChanged, events.TypeLowStockDetected:
		patterns = []string{cache.DashboardPrefix + "*", cache.LowStockKey}
	default:
		return fmt.Errorf("unknown event type: %s", eventType)
	}

	for _, pattern := range patterns {
		if err := inv.cache.DeleteByPattern(ctx, pattern); err != nil {
			inv.logger.Warn("Failed to delete cache by pattern", zap.String("pattern", pattern), zap.Error(err))
		}
	}
	inv.logger.Debug("Cache invalidation completed",
		zap.String("event_type", eventType),
		zap.Strings("patterns", patterns),
	)
	return nil
}

// Subscriber adapts Invalidate to events.Subscriber.
func (inv *CacheInvalidator) Subscriber() events.Subscriber {
	return func(ctx context.Context, eventType string, _ interface{}) {
		if err := inv.Invalidate(ctx, eventType); err != nil {
			inv.logger.Warn("Cache invalidation skipped", zap.String("event_type", eventType), zap.Error(err))
		}
	}
}
