package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"kitchen-service/internal/auth"
	"kitchen-service/internal/cache"
	"kitchen-service/internal/domain"
	"kitchen-service/internal/repository"
	"kitchen-service/internal/services"
	"kitchen-service/pkg/errors"
	"kitchen-service/pkg/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockEventPublisher is a mock implementation of EventPublisher
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(ctx context.Context, event interface{}) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

type testServer struct {
	router *gin.Engine
	bus    *MockEventPublisher
	orders *repository.InMemoryOrderRepository
	jwt    *auth.JWTManager
	tokens map[auth.Role]string
}

func setupTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logger := zap.NewNop()

	inventory := repository.NewInMemoryInventoryRepository()
	recipes := repository.NewInMemoryRecipeRepository()
	orders := repository.NewInMemoryOrderRepository()
	goods := repository.NewInMemoryFinishedGoodsRepository()
	store := cache.NewInMemoryCache(logger)

	bus := new(MockEventPublisher)
	bus.On("Publish", mock.Anything, mock.Anything).Return(nil)

	users, err := auth.NewSeededUserStore("admin-pw", "staff-pw", "viewer-pw")
	require.NoError(t, err)
	jwtManager := auth.NewJWTManager("test-secret", time.Hour, logger)

	h := Handlers{
		Auth:          auth.NewAuthHandler(jwtManager, users, logger),
		Orders:        NewOrderHandler(services.NewOrderService(orders, recipes, inventory, goods, bus, logger), logger),
		Inventory:     NewInventoryHandler(services.NewInventoryService(inventory, store, time.Minute, bus, logger), logger),
		Recipes:       NewRecipeHandler(services.NewRecipeService(recipes, inventory, logger), logger),
		FinishedGoods: NewFinishedGoodsHandler(services.NewFinishedGoodsService(goods, recipes, bus, logger), logger),
		Dashboard:     NewDashboardHandler(services.NewDashboardService(orders, inventory, goods, store, time.Minute, logger), logger),
	}

	router := gin.New()
	router.Use(middleware.RecoveryHandler(logger))
	router.Use(middleware.RequestIDMiddleware(logger))
	router.Use(middleware.ErrorHandler(logger))
	RegisterRoutes(router.Group("/api/v1"), h, RouteConfig{
		JWT:            jwtManager,
		Idempotency:    store,
		IdempotencyTTL: time.Minute,
		Logger:         logger,
	})

	srv := &testServer{
		router: router,
		bus:    bus,
		orders: orders,
		jwt:    jwtManager,
		tokens: map[auth.Role]string{},
	}
	for _, u := range []auth.User{{Username: "admin", Role: auth.RoleAdmin}, {Username: "staff", Role: auth.RoleStaff}, {Username: "viewer", Role: auth.RoleViewer}} {
		u := u
		token, _, err := jwtManager.GenerateToken(&u)
		require.NoError(t, err)
		srv.tokens[u.Role] = token
	}
	return srv
}

func (s *testServer) do(t *testing.T, role auth.Role, method, path string, body interface{}, headers ...string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if role != "" {
		req.Header.Set("Authorization", "Bearer "+s.tokens[role])
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v), w.Body.String())
}

func (s *testServer) createItem(t *testing.T, name, stock, threshold string) domain.InventoryItem {
	t.Helper()
	w := s.do(t, auth.RoleStaff, http.MethodPost, "/api/v1/inventory/items", gin.H{
		"name":           name,
		"unit":           "kg",
		"openingStock":   stock,
		"thresholdValue": threshold,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var item domain.InventoryItem
	decode(t, w, &item)
	return item
}

func (s *testServer) createRecipe(t *testing.T, name, price string, item uuid.UUID, qty string) domain.Recipe {
	t.Helper()
	w := s.do(t, auth.RoleStaff, http.MethodPost, "/api/v1/recipes", gin.H{
		"name":             name,
		"ingredients":      []gin.H{{"inventoryItem": item.String(), "quantity": qty, "unit": "kg"}},
		"standardUnit":     "pcs",
		"standardQuantity": "1",
		"unitPrice":        price,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var recipe domain.Recipe
	decode(t, w, &recipe)
	return recipe
}

func (s *testServer) createOrder(t *testing.T, recipe uuid.UUID, qty string, headers ...string) *httptest.ResponseRecorder {
	t.Helper()
	return s.do(t, auth.RoleStaff, http.MethodPost, "/api/v1/orders", gin.H{
		"customer": gin.H{"name": "Ada Lovelace", "phoneNumber": "+44 20 7946 0000"},
		"items":    []gin.H{{"recipe": recipe.String(), "quantity": qty}},
	}, headers...)
}

func (s *testServer) setStatus(t *testing.T, id uuid.UUID, status string) *httptest.ResponseRecorder {
	t.Helper()
	return s.do(t, auth.RoleStaff, http.MethodPatch, "/api/v1/orders/"+id.String()+"/status", gin.H{"status": status})
}

func (s *testServer) itemStock(t *testing.T, id uuid.UUID) decimal.Decimal {
	t.Helper()
	w := s.do(t, auth.RoleViewer, http.MethodGet, "/api/v1/inventory/items/"+id.String(), nil)
	require.Equal(t, http.StatusOK, w.Code)
	var item domain.InventoryItem
	decode(t, w, &item)
	return item.CurrentStock
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestOrderLifecycleOverHTTP(t *testing.T) {
	srv := setupTestServer(t)
	flour := srv.createItem(t, "Flour", "10", "1")
	margherita := srv.createRecipe(t, "Margherita", "8.5", flour.ID, "0.35")

	w := srv.do(t, auth.RoleStaff, http.MethodPost, "/api/v1/finished-goods", gin.H{
		"name": "Margherita (boxed)", "recipe": margherita.ID.String(), "unit": "pcs",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var fg domain.FinishedGoods
	decode(t, w, &fg)

	w = srv.createOrder(t, margherita.ID, "2")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var order domain.Order
	decode(t, w, &order)
	assert.Equal(t, domain.StatusDraft, order.Status)
	assert.True(t, order.ItemsTotal.Equal(dec("17")), order.ItemsTotal.String())
	require.Len(t, order.TotalIngredients, 1)
	assert.True(t, order.TotalIngredients[0].Quantity.Equal(dec("0.7")))
	assert.Equal(t, "staff", order.CreatedBy)

	var populated services.OrderDetails
	decode(t, w, &populated)
	require.Len(t, populated.Items, 1)
	assert.Equal(t, "Margherita", populated.Items[0].RecipeName)
	require.Len(t, populated.TotalIngredients, 1)
	assert.Equal(t, "Flour", populated.TotalIngredients[0].ItemName)

	// creating an order reserves nothing
	assert.True(t, srv.itemStock(t, flour.ID).Equal(dec("10")))

	w = srv.setStatus(t, order.ID, "Ingredients Allocated")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.True(t, srv.itemStock(t, flour.ID).Equal(dec("9.3")))

	require.Equal(t, http.StatusOK, srv.setStatus(t, order.ID, "In Production").Code)
	require.Equal(t, http.StatusOK, srv.setStatus(t, order.ID, "ready_for_dispatch").Code)
	require.Equal(t, http.StatusOK, srv.setStatus(t, order.ID, "Dispatched").Code)

	w = srv.setStatus(t, order.ID, "Delivered")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var result services.StatusUpdateResult
	decode(t, w, &result)
	assert.Equal(t, domain.StatusDelivered, result.Order.Status)
	assert.Empty(t, result.Warnings)

	w = srv.do(t, auth.RoleViewer, http.MethodGet, "/api/v1/finished-goods/"+fg.ID.String(), nil)
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &fg)
	assert.True(t, fg.CurrentStock.IsZero(), fg.CurrentStock.String())
	assert.Len(t, fg.StockHistory, 2)

	w = srv.do(t, auth.RoleViewer, http.MethodGet, "/api/v1/orders/"+order.ID.String(), nil)
	require.Equal(t, http.StatusOK, w.Code)
	var details struct {
		Items []struct {
			RecipeName string `json:"recipeName"`
		} `json:"items"`
		TotalIngredients []struct {
			ItemName string `json:"itemName"`
		} `json:"totalIngredients"`
		StatusHistory []domain.StatusEntry `json:"statusHistory"`
	}
	decode(t, w, &details)
	require.Len(t, details.Items, 1)
	assert.Equal(t, "Margherita", details.Items[0].RecipeName)
	assert.Equal(t, "Flour", details.TotalIngredients[0].ItemName)
	assert.Len(t, details.StatusHistory, 6)

	srv.bus.AssertCalled(t, "Publish", mock.Anything, mock.AnythingOfType("events.OrderCreatedEvent"))
	srv.bus.AssertCalled(t, "Publish", mock.Anything, mock.AnythingOfType("events.OrderStatusChangedEvent"))
}

func TestCreateOrder_InsufficientStock(t *testing.T) {
	srv := setupTestServer(t)
	flour := srv.createItem(t, "Flour", "0.5", "0")
	margherita := srv.createRecipe(t, "Margherita", "8", flour.ID, "0.35")

	w := srv.createOrder(t, margherita.ID, "2")
	require.Equal(t, http.StatusBadRequest, w.Code)

	var body errors.StandardError
	decode(t, w, &body)
	assert.Equal(t, errors.CodeInsufficientStock, body.Code)
	assert.Equal(t, "Flour", body.Meta["itemName"])
	assert.Equal(t, "0.7", body.Meta["required"])
	assert.Equal(t, "0.5", body.Meta["available"])
	assert.Equal(t, "kg", body.Meta["unit"])

	orders, err := srv.orders.List(context.Background(), repository.OrderFilter{})
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestCreateOrder_Validation(t *testing.T) {
	srv := setupTestServer(t)
	flour := srv.createItem(t, "Flour", "5", "0")
	margherita := srv.createRecipe(t, "Margherita", "8", flour.ID, "0.35")

	tests := []struct {
		name string
		body interface{}
	}{
		{"empty items", gin.H{"customer": gin.H{"name": "Ada", "phoneNumber": "1"}, "items": []gin.H{}}},
		{"zero quantity", gin.H{"customer": gin.H{"name": "Ada", "phoneNumber": "1"}, "items": []gin.H{{"recipe": margherita.ID.String(), "quantity": "0"}}}},
		{"bad recipe id", gin.H{"customer": gin.H{"name": "Ada", "phoneNumber": "1"}, "items": []gin.H{{"recipe": "nope", "quantity": "1"}}}},
		{"missing customer", gin.H{"items": []gin.H{{"recipe": margherita.ID.String(), "quantity": "1"}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := srv.do(t, auth.RoleStaff, http.MethodPost, "/api/v1/orders", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
			var body errors.StandardError
			decode(t, w, &body)
			assert.Equal(t, errors.CodeValidation, body.Code)
		})
	}

	w := srv.createOrder(t, uuid.New(), "1")
	assert.Equal(t, http.StatusNotFound, w.Code)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/orders", bytes.NewBufferString("{not json"))
	req.Header.Set("Authorization", "Bearer "+srv.tokens[auth.RoleStaff])
	rec := httptest.NewRecorder()
	srv.router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateOrderStatus_Errors(t *testing.T) {
	srv := setupTestServer(t)
	flour := srv.createItem(t, "Flour", "1", "0")
	margherita := srv.createRecipe(t, "Margherita", "8", flour.ID, "0.35")
	w := srv.createOrder(t, margherita.ID, "2")
	require.Equal(t, http.StatusCreated, w.Code)
	var order domain.Order
	decode(t, w, &order)

	w = srv.setStatus(t, order.ID, "Teleported")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = srv.setStatus(t, uuid.New(), "Cancelled")
	assert.Equal(t, http.StatusNotFound, w.Code)

	// stock drops under the requirement before allocation
	w = srv.do(t, auth.RoleStaff, http.MethodPut, "/api/v1/inventory/items/"+flour.ID.String(), gin.H{"currentStock": "0.5"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	w = srv.setStatus(t, order.ID, "Ingredients Allocated")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	var body errors.StandardError
	decode(t, w, &body)
	assert.Equal(t, errors.CodeInsufficientStock, body.Code)
	assert.True(t, srv.itemStock(t, flour.ID).Equal(dec("0.5")))
}

func TestUpdateOrderStatus_DeliveredShortfallWarnings(t *testing.T) {
	srv := setupTestServer(t)
	flour := srv.createItem(t, "Flour", "10", "0")
	margherita := srv.createRecipe(t, "Margherita", "8", flour.ID, "0.35")
	w := srv.do(t, auth.RoleStaff, http.MethodPost, "/api/v1/finished-goods", gin.H{
		"name": "Boxed", "recipe": margherita.ID.String(), "unit": "pcs",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = srv.createOrder(t, margherita.ID, "3")
	require.Equal(t, http.StatusCreated, w.Code)
	var order domain.Order
	decode(t, w, &order)

	w = srv.setStatus(t, order.ID, "Delivered")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var result services.StatusUpdateResult
	decode(t, w, &result)
	assert.Equal(t, domain.StatusDelivered, result.Order.Status)
	require.Len(t, result.Warnings, 1)
	assert.True(t, result.Warnings[0].Required.Equal(dec("3")))
	assert.True(t, result.Warnings[0].Available.IsZero())
}

func TestDeleteOrder(t *testing.T) {
	srv := setupTestServer(t)
	flour := srv.createItem(t, "Flour", "10", "0")
	margherita := srv.createRecipe(t, "Margherita", "8", flour.ID, "0.35")

	w := srv.createOrder(t, margherita.ID, "1")
	var draft domain.Order
	decode(t, w, &draft)
	w = srv.createOrder(t, margherita.ID, "1")
	var allocated domain.Order
	decode(t, w, &allocated)
	require.Equal(t, http.StatusOK, srv.setStatus(t, allocated.ID, "Ingredients Allocated").Code)

	w = srv.do(t, auth.RoleStaff, http.MethodDelete, "/api/v1/orders/"+draft.ID.String(), nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = srv.do(t, auth.RoleAdmin, http.MethodDelete, "/api/v1/orders/"+allocated.ID.String(), nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	var body errors.StandardError
	decode(t, w, &body)
	assert.Equal(t, errors.CodeInvalidState, body.Code)

	w = srv.do(t, auth.RoleAdmin, http.MethodDelete, "/api/v1/orders/"+draft.ID.String(), nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w = srv.do(t, auth.RoleViewer, http.MethodGet, "/api/v1/orders/"+draft.ID.String(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListOrders_Filters(t *testing.T) {
	srv := setupTestServer(t)
	flour := srv.createItem(t, "Flour", "10", "0")
	margherita := srv.createRecipe(t, "Margherita", "8", flour.ID, "0.35")

	w := srv.createOrder(t, margherita.ID, "1")
	var first domain.Order
	decode(t, w, &first)
	srv.createOrder(t, margherita.ID, "1")
	require.Equal(t, http.StatusOK, srv.setStatus(t, first.ID, "Cancelled").Code)

	var orders []domain.Order
	w = srv.do(t, auth.RoleViewer, http.MethodGet, "/api/v1/orders", nil)
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &orders)
	assert.Len(t, orders, 2)

	w = srv.do(t, auth.RoleViewer, http.MethodGet, "/api/v1/orders?status=cancelled", nil)
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &orders)
	require.Len(t, orders, 1)
	assert.Equal(t, first.ID, orders[0].ID)

	w = srv.do(t, auth.RoleViewer, http.MethodGet, "/api/v1/orders?to=2000-01-01", nil)
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &orders)
	assert.Empty(t, orders)

	w = srv.do(t, auth.RoleViewer, http.MethodGet, "/api/v1/orders?from=yesterday", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateOrder_IdempotentReplay(t *testing.T) {
	srv := setupTestServer(t)
	flour := srv.createItem(t, "Flour", "10", "0")
	margherita := srv.createRecipe(t, "Margherita", "8", flour.ID, "0.35")
	requestID := uuid.New().String()

	first := srv.createOrder(t, margherita.ID, "1", middleware.RequestIDHeader, requestID)
	require.Equal(t, http.StatusCreated, first.Code)
	second := srv.createOrder(t, margherita.ID, "1", middleware.RequestIDHeader, requestID)
	require.Equal(t, http.StatusCreated, second.Code)

	assert.Equal(t, "true", second.Header().Get(middleware.ReplayedHeader))
	assert.JSONEq(t, first.Body.String(), second.Body.String())

	orders, err := srv.orders.List(context.Background(), repository.OrderFilter{})
	require.NoError(t, err)
	assert.Len(t, orders, 1)
}

func TestRoleGates(t *testing.T) {
	srv := setupTestServer(t)
	flour := srv.createItem(t, "Flour", "10", "0")

	tests := []struct {
		name   string
		role   auth.Role
		method string
		path   string
		want   int
	}{
		{"anonymous read", "", http.MethodGet, "/api/v1/inventory/items", http.StatusUnauthorized},
		{"viewer read", auth.RoleViewer, http.MethodGet, "/api/v1/inventory/items", http.StatusOK},
		{"viewer write", auth.RoleViewer, http.MethodPost, "/api/v1/inventory/items/" + flour.ID.String() + "/purchases", http.StatusForbidden},
		{"staff delete", auth.RoleStaff, http.MethodDelete, "/api/v1/inventory/items/" + flour.ID.String(), http.StatusForbidden},
		{"viewer dashboard", auth.RoleViewer, http.MethodGet, "/api/v1/dashboard/stats", http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := srv.do(t, tt.role, tt.method, tt.path, gin.H{"quantity": "1", "cost": "1"})
			assert.Equal(t, tt.want, w.Code, w.Body.String())
		})
	}
}

func TestLogin(t *testing.T) {
	srv := setupTestServer(t)

	w := srv.do(t, "", http.MethodPost, "/api/v1/auth/login", gin.H{"username": "viewer", "password": "viewer-pw"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var resp auth.LoginResponse
	decode(t, w, &resp)
	assert.Equal(t, auth.RoleViewer, resp.Role)

	claims, err := srv.jwt.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "viewer", claims.Username)

	w = srv.do(t, "", http.MethodPost, "/api/v1/auth/login", gin.H{"username": "viewer", "password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestInventoryEndpoints(t *testing.T) {
	srv := setupTestServer(t)
	flour := srv.createItem(t, "Flour", "1", "2")
	srv.createItem(t, "Salt", "5", "1")

	w := srv.do(t, auth.RoleStaff, http.MethodPost, "/api/v1/inventory/items", gin.H{"name": "Flour", "unit": "kg"})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = srv.do(t, auth.RoleStaff, http.MethodPost, "/api/v1/inventory/items", gin.H{"name": "Sand", "unit": "furlong"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = srv.do(t, auth.RoleViewer, http.MethodGet, "/api/v1/inventory/items/low-stock", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var low []domain.InventoryItem
	decode(t, w, &low)
	require.Len(t, low, 1)
	assert.Equal(t, flour.ID, low[0].ID)

	w = srv.do(t, auth.RoleStaff, http.MethodPost, "/api/v1/inventory/items/"+flour.ID.String()+"/purchases", gin.H{
		"quantity": 4, "cost": "9.99", "vendor": "Mill & Co",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var item domain.InventoryItem
	decode(t, w, &item)
	assert.True(t, item.CurrentStock.Equal(dec("5")))
	require.Len(t, item.PurchaseHistory, 1)
	assert.Equal(t, "staff", item.PurchaseHistory[0].Actor)

	w = srv.do(t, auth.RoleStaff, http.MethodPost, "/api/v1/inventory/items/"+flour.ID.String()+"/purchases", gin.H{"quantity": "-1"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = srv.do(t, auth.RoleViewer, http.MethodGet, "/api/v1/inventory/items/not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = srv.do(t, auth.RoleAdmin, http.MethodDelete, "/api/v1/inventory/items/"+flour.ID.String(), nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w = srv.do(t, auth.RoleViewer, http.MethodGet, "/api/v1/inventory/items", nil)
	var items []domain.InventoryItem
	decode(t, w, &items)
	assert.Len(t, items, 1)
}

func TestRecipeEndpoints(t *testing.T) {
	srv := setupTestServer(t)
	flour := srv.createItem(t, "Flour", "10", "0")
	margherita := srv.createRecipe(t, "Margherita", "8", flour.ID, "0.35")

	w := srv.do(t, auth.RoleStaff, http.MethodPost, "/api/v1/recipes", gin.H{
		"name":             "Ghost",
		"ingredients":      []gin.H{{"inventoryItem": uuid.New().String(), "quantity": "1", "unit": "kg"}},
		"standardUnit":     "pcs",
		"standardQuantity": "1",
		"unitPrice":        "1",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = srv.do(t, auth.RoleStaff, http.MethodPut, "/api/v1/recipes/"+margherita.ID.String(), gin.H{"unitPrice": "9.25"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var recipe domain.Recipe
	decode(t, w, &recipe)
	assert.True(t, recipe.UnitPrice.Equal(dec("9.25")))
	assert.Len(t, recipe.Ingredients, 1)

	w = srv.do(t, auth.RoleViewer, http.MethodGet, "/api/v1/recipes", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var recipes []domain.Recipe
	decode(t, w, &recipes)
	assert.Len(t, recipes, 1)

	w = srv.do(t, auth.RoleAdmin, http.MethodDelete, "/api/v1/recipes/"+margherita.ID.String(), nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w = srv.do(t, auth.RoleViewer, http.MethodGet, "/api/v1/recipes/"+margherita.ID.String(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestFinishedGoodsTransactions(t *testing.T) {
	srv := setupTestServer(t)
	flour := srv.createItem(t, "Flour", "10", "0")
	margherita := srv.createRecipe(t, "Margherita", "8", flour.ID, "0.35")

	w := srv.do(t, auth.RoleStaff, http.MethodPost, "/api/v1/finished-goods", gin.H{
		"name": "Boxed", "recipe": margherita.ID.String(), "unit": "pcs",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var fg domain.FinishedGoods
	decode(t, w, &fg)
	path := "/api/v1/finished-goods/" + fg.ID.String() + "/transactions"

	w = srv.do(t, auth.RoleStaff, http.MethodPost, path, gin.H{"transactionType": "Produced", "quantity": "5"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = srv.do(t, auth.RoleStaff, http.MethodPost, path, gin.H{"transactionType": "sold", "quantity": "7"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	var body errors.StandardError
	decode(t, w, &body)
	assert.Equal(t, errors.CodeInsufficientStock, body.Code)

	w = srv.do(t, auth.RoleStaff, http.MethodPost, path, gin.H{"transactionType": "Gifted", "quantity": "1"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = srv.do(t, auth.RoleStaff, http.MethodPost, path, gin.H{"transactionType": "Wasted", "quantity": "2", "notes": "dropped tray"})
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &fg)
	assert.True(t, fg.CurrentStock.Equal(dec("3")))
	assert.Len(t, fg.StockHistory, 2)

	newName := "Margherita box"
	w = srv.do(t, auth.RoleStaff, http.MethodPut, "/api/v1/finished-goods/"+fg.ID.String(), gin.H{"name": newName})
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &fg)
	assert.Equal(t, newName, fg.Name)
	assert.True(t, fg.CurrentStock.Equal(dec("3")))
}

func TestDashboardStats(t *testing.T) {
	srv := setupTestServer(t)
	flour := srv.createItem(t, "Flour", "1", "5")
	margherita := srv.createRecipe(t, "Margherita", "8", flour.ID, "0.35")
	require.Equal(t, http.StatusCreated, srv.createOrder(t, margherita.ID, "2").Code)

	w := srv.do(t, auth.RoleViewer, http.MethodGet, "/api/v1/dashboard/stats?period=weekly", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var stats services.DashboardStats
	decode(t, w, &stats)
	assert.Equal(t, services.PeriodWeekly, stats.Period)
	assert.Equal(t, 1, stats.OrdersByStatus["Draft"])
	assert.Equal(t, 1, stats.OrdersInPeriod)
	assert.True(t, stats.RevenueInPeriod.Equal(dec("16")))
	assert.Len(t, stats.Trend, 7)
	assert.Equal(t, 1, stats.LowStockItems)

	w = srv.do(t, auth.RoleViewer, http.MethodGet, "/api/v1/dashboard/stats?period=yearly", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestParseTimeQuery(t *testing.T) {
	got, err := parseTimeQuery("to", "2026-03-10", true)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 10, 23, 59, 59, 999999999, time.UTC), *got)

	got, err = parseTimeQuery("from", "2026-03-10T08:00:00Z", false)
	require.NoError(t, err)
	assert.Equal(t, 8, got.Hour())

	got, err = parseTimeQuery("from", "", false)
	require.NoError(t, err)
	assert.Nil(t, got)
}
