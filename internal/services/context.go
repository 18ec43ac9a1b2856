package services

import (
	"context"
	"time"

	"kitchen-service/internal/domain"
	"kitchen-service/internal/events"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type actorKey struct{}

// SystemActor is recorded when no authenticated user is attached to the context.
const SystemActor = "system"

// WithActor attaches the acting username to ctx.
func WithActor(ctx context.Context, actor string) context.Context {
	return context.WithValue(ctx, actorKey{}, actor)
}

// ActorFromContext returns the acting username or SystemActor.
func ActorFromContext(ctx context.Context) string {
	if actor, ok := ctx.Value(actorKey{}).(string); ok && actor != "" {
		return actor
	}
	return SystemActor
}

// Clock returns the current time. Tests replace it to pin timestamps.
type Clock func() time.Time

func utcNow() time.Time {
	return time.Now().UTC()
}

// publish is best-effort: a failed publish is logged and never fails the write.
func publish(ctx context.Context, bus events.EventPublisher, logger *zap.Logger, event interface{}) {
	if bus == nil {
		return
	}
	if err := bus.Publish(ctx, event); err != nil {
		logger.Warn("Failed to publish event",
			zap.String("event_type", events.EventType(event)),
			zap.Error(err),
		)
	}
}

// publishStockChange emits InventoryStockChanged and, when the item ends at or
// below its threshold, LowStockDetected.
func publishStockChange(ctx context.Context, bus events.EventPublisher, logger *zap.Logger, item *domain.InventoryItem, delta decimal.Decimal, reason string, orderID *uuid.UUID) {
	publish(ctx, bus, logger, events.InventoryStockChangedEvent{
		ItemID:     item.ID,
		Name:       item.Name,
		Delta:      delta,
		NewStock:   item.CurrentStock,
		Reason:     reason,
		OrderID:    orderID,
		Actor:      item.UpdatedBy,
		OccurredAt: item.LastUpdated,
	})
	if item.IsLowStock() {
		logger.Info("Low stock detected",
			zap.String("item_id", item.ID.String()),
			zap.String("name", item.Name),
			zap.String("current_stock", item.CurrentStock.String()),
			zap.String("threshold", item.ThresholdValue.String()),
		)
		publish(ctx, bus, logger, events.LowStockDetectedEvent{
			ItemID:         item.ID,
			Name:           item.Name,
			CurrentStock:   item.CurrentStock,
			ThresholdValue: item.ThresholdValue,
			Unit:           string(item.Unit),
			OccurredAt:     item.LastUpdated,
		})
	}
}
