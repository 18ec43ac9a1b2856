package kafka

import (
	"context"
	"testing"
	"time"

	"kitchen-service/internal/cache"
	"kitchen-service/internal/events"

	"github.com/IBM/sarama"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func seededCache(t *testing.T) cache.Cache {
	c := cache.NewInMemoryCache(zap.NewNop())
	ctx := context.Background()
	require.NoError(t, c.Set(ctx, cache.DashboardPrefix+"stats:daily", []byte("{}"), time.Minute))
	require.NoError(t, c.Set(ctx, cache.LowStockKey, []byte("[]"), time.Minute))
	return c
}

func TestCacheInvalidator_OrderEventKeepsLowStock(t *testing.T) {
	c := seededCache(t)
	inv := NewCacheInvalidator(c, zap.NewNop())

	require.NoError(t, inv.Invalidate(context.Background(), events.TypeOrderStatusChanged))

	ok, _ := c.Exists(context.Background(), cache.DashboardPrefix+"stats:daily")
	assert.False(t, ok)
	ok, _ = c.Exists(context.Background(), cache.LowStockKey)
	assert.True(t, ok)
}

func TestCacheInvalidator_StockEventDropsLowStock(t *testing.T) {
	c := seededCache(t)
	inv := NewCacheInvalidator(c, zap.NewNop())

	require.NoError(t, inv.Invalidate(context.Background(), events.TypeInventoryStockChanged))

	ok, _ := c.Exists(context.Background(), cache.LowStockKey)
	assert.False(t, ok)
}

func TestCacheInvalidator_UnknownEvent(t *testing.T) {
	inv := NewCacheInvalidator(seededCache(t), zap.NewNop())
	assert.Error(t, inv.Invalidate(context.Background(), "Mystery"))
}

func TestCacheInvalidator_AsSubscriber(t *testing.T) {
	c := seededCache(t)
	publisher := events.NewInMemoryEventPublisher(zap.NewNop())
	publisher.Subscribe(NewCacheInvalidator(c, zap.NewNop()).Subscriber())

	require.NoError(t, publisher.Publish(context.Background(), events.LowStockDetectedEvent{ItemID: uuid.New()}))

	ok, _ := c.Exists(context.Background(), cache.LowStockKey)
	assert.False(t, ok)
}

func TestHandler_SkipsMessagesWithoutEventType(t *testing.T) {
	c := seededCache(t)
	h := &cacheInvalidationHandler{invalidator: NewCacheInvalidator(c, zap.NewNop()), logger: zap.NewNop()}

	h.handle(context.Background(), &sarama.ConsumerMessage{Topic: "kitchen.orders"})
	ok, _ := c.Exists(context.Background(), cache.DashboardPrefix+"stats:daily")
	assert.True(t, ok)

	h.handle(context.Background(), &sarama.ConsumerMessage{
		Topic:   "kitchen.orders",
		Headers: []*sarama.RecordHeader{{Key: []byte("event-type"), Value: []byte(events.TypeOrderCreated)}},
	})
	ok, _ = c.Exists(context.Background(), cache.DashboardPrefix+"stats:daily")
	assert.False(t, ok)
}
