package handlers

import (
	"time"

	"kitchen-service/internal/auth"
	"kitchen-service/internal/cache"
	"kitchen-service/pkg/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handlers groups everything mounted under /api/v1.
type Handlers struct {
	Auth          *auth.AuthHandler
	Orders        *OrderHandler
	Inventory     *InventoryHandler
	Recipes       *RecipeHandler
	FinishedGoods *FinishedGoodsHandler
	Dashboard     *DashboardHandler
}

// RouteConfig carries the dependencies of the protected group.
type RouteConfig struct {
	JWT            *auth.JWTManager
	Idempotency    cache.Cache
	IdempotencyTTL time.Duration
	Logger         *zap.Logger
}

// RegisterRoutes mounts the API on v1. Reads are open to every role, writes
// need admin or staff, deletes need admin.
func RegisterRoutes(v1 *gin.RouterGroup, h Handlers, cfg RouteConfig) {
	v1.POST("/auth/login", h.Auth.Login)

	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(cfg.JWT, cfg.Logger))
	protected.Use(middleware.IdempotencyMiddleware(cfg.Idempotency, cfg.Logger, cfg.IdempotencyTTL))

	writers := middleware.RequireRole(cfg.Logger, auth.RoleAdmin, auth.RoleStaff)
	admins := middleware.RequireRole(cfg.Logger, auth.RoleAdmin)

	orders := protected.Group("/orders")
	{
		orders.GET("", h.Orders.ListOrders)
		orders.GET("/:id", h.Orders.GetOrder)
		orders.POST("", writers, h.Orders.CreateOrder)
		orders.PUT("/:id", writers, h.Orders.UpdateOrder)
		orders.PATCH("/:id/status", writers, h.Orders.UpdateOrderStatus)
		orders.DELETE("/:id", admins, h.Orders.DeleteOrder)
	}

	inventory := protected.Group("/inventory/items")
	{
		inventory.GET("", h.Inventory.ListItems)
		inventory.GET("/low-stock", h.Inventory.LowStockItems)
		inventory.GET("/:id", h.Inventory.GetItem)
		inventory.POST("", writers, h.Inventory.CreateItem)
		inventory.PUT("/:id", writers, h.Inventory.UpdateItem)
		inventory.POST("/:id/purchases", writers, h.Inventory.RecordPurchase)
		inventory.DELETE("/:id", admins, h.Inventory.DeleteItem)
	}

	recipes := protected.Group("/recipes")
	{
		recipes.GET("", h.Recipes.ListRecipes)
		recipes.GET("/:id", h.Recipes.GetRecipe)
		recipes.POST("", writers, h.Recipes.CreateRecipe)
		recipes.PUT("/:id", writers, h.Recipes.UpdateRecipe)
		recipes.DELETE("/:id", admins, h.Recipes.DeleteRecipe)
	}

	goods := protected.Group("/finished-goods")
	{
		goods.GET("", h.FinishedGoods.ListFinishedGoods)
		goods.GET("/:id", h.FinishedGoods.GetFinishedGoods)
		goods.POST("", writers, h.FinishedGoods.CreateFinishedGoods)
		goods.PUT("/:id", writers, h.FinishedGoods.UpdateFinishedGoods)
		goods.POST("/:id/transactions", writers, h.FinishedGoods.RecordTransaction)
		goods.DELETE("/:id", admins, h.FinishedGoods.DeleteFinishedGoods)
	}

	protected.GET("/dashboard/stats", h.Dashboard.Stats)
}
