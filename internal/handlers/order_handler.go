package handlers

import (
	"net/http"
	"time"

	"kitchen-service/internal/commands"
	"kitchen-service/internal/domain"
	"kitchen-service/internal/repository"
	"kitchen-service/internal/services"
	"kitchen-service/pkg/errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type OrderHandler struct {
	logger  *zap.Logger
	service *services.OrderService
}

func NewOrderHandler(service *services.OrderService, logger *zap.Logger) *OrderHandler {
	return &OrderHandler{
		logger:  logger,
		service: service,
	}
}

// fail hands the error to middleware.ErrorHandler.
func fail(c *gin.Context, err error) {
	c.Error(err)
	c.Abort()
}

func bindJSON(c *gin.Context, logger *zap.Logger, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		logger.Warn("Invalid request", zap.Error(err), zap.String("path", c.Request.URL.Path))
		fail(c, errors.NewInvalidRequest("invalid request body", err.Error()))
		return false
	}
	return true
}

// CreateOrder handles POST /api/v1/orders
// @Summary      Place a new order
// @Description  Prices each line from its recipe, aggregates ingredient demand and checks it against current stock. Nothing is reserved: the order is stored as Draft.
// @Description  **Idempotency**: send X-Request-ID to replay the stored response of a repeated request.
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        X-Request-ID  header    string              false  "Client request id for idempotent retries"
// @Param        request       body      CreateOrderRequest  true   "Order"
// @Success      201           {object}  services.OrderDetails
// @Failure      400           {object}  errors.StandardError  "ValidationError or InsufficientStock"
// @Failure      401           {object}  errors.StandardError
// @Failure      403           {object}  errors.StandardError
// @Failure      404           {object}  errors.StandardError  "Recipe not found"
// @Router       /orders [post]
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if !bindJSON(c, h.logger, &req) {
		return
	}

	lines, err := parseLines(req.Items)
	if err != nil {
		fail(c, err)
		return
	}

	order, err := h.service.CreateOrder(c.Request.Context(), commands.CreateOrderCommand{
		Customer:     req.Customer.toDomain(),
		Items:        lines,
		DeliveryDate: req.DeliveryDate,
		Notes:        req.Notes,
	})
	if err != nil {
		fail(c, err)
		return
	}

	details, err := h.service.Details(c.Request.Context(), order)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, details)
}

// UpdateOrder handles PUT /api/v1/orders/:id
// @Summary      Update a Draft order
// @Description  Replaces customer, lines, delivery date or notes. Changing lines re-prices them and recomputes the ingredient totals. Stock is checked again on allocation, not here.
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        X-Request-ID  header    string              false  "Client request id for idempotent retries"
// @Param        id            path      string              true   "Order ID (UUID)"
// @Param        request       body      UpdateOrderRequest  true   "Changed fields"
// @Success      200           {object}  domain.Order
// @Failure      400           {object}  errors.StandardError  "ValidationError or InvalidState"
// @Failure      404           {object}  errors.StandardError
// @Failure      409           {object}  errors.StandardError  "ConcurrentUpdate"
// @Router       /orders/{id} [put]
func (h *OrderHandler) UpdateOrder(c *gin.Context) {
	id, err := parseUUID("id", c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}

	var req UpdateOrderRequest
	if !bindJSON(c, h.logger, &req) {
		return
	}

	lines, err := parseLines(req.Items)
	if err != nil {
		fail(c, err)
		return
	}

	cmd := commands.UpdateOrderCommand{
		ID:           id,
		Items:        lines,
		DeliveryDate: req.DeliveryDate,
		Notes:        req.Notes,
	}
	if req.Customer != nil {
		customer := req.Customer.toDomain()
		cmd.Customer = &customer
	}

	order, err := h.service.UpdateOrder(c.Request.Context(), cmd)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, order)
}

// UpdateOrderStatus handles PATCH /api/v1/orders/:id/status
// @Summary      Move an order to a new status
// @Description  Applies the stock effects of the transition: allocation deducts raw materials, cancelling an allocated order restores them, Ready for Dispatch produces finished goods and Delivered consumes them.
// @Description  A Delivered transition that finds too little finished-goods stock still succeeds and reports the skipped lines in `warnings`.
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        X-Request-ID  header    string                    false  "Client request id for idempotent retries"
// @Param        id            path      string                    true   "Order ID (UUID)"
// @Param        request       body      UpdateOrderStatusRequest  true   "Target status"
// @Success      200           {object}  services.StatusUpdateResult
// @Failure      400           {object}  errors.StandardError  "Unknown status, InsufficientStock or InvalidState"
// @Failure      404           {object}  errors.StandardError
// @Failure      409           {object}  errors.StandardError  "ConcurrentUpdate"
// @Router       /orders/{id}/status [patch]
func (h *OrderHandler) UpdateOrderStatus(c *gin.Context) {
	id, err := parseUUID("id", c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}

	var req UpdateOrderStatusRequest
	if !bindJSON(c, h.logger, &req) {
		return
	}

	status, err := domain.ParseOrderStatus(req.Status)
	if err != nil {
		fail(c, err)
		return
	}

	result, err := h.service.UpdateOrderStatus(c.Request.Context(), commands.UpdateOrderStatusCommand{
		ID:     id,
		Status: status,
		Notes:  req.Notes,
	})
	if err != nil {
		fail(c, err)
		return
	}

	if len(result.Warnings) > 0 {
		h.logger.Warn("Order delivered with shortfall",
			zap.String("order_id", id.String()),
			zap.Int("warnings", len(result.Warnings)),
		)
	}
	c.JSON(http.StatusOK, result)
}

// DeleteOrder handles DELETE /api/v1/orders/:id
// @Summary      Delete an order
// @Description  Only Draft and Cancelled orders can be deleted.
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Param        X-Request-ID  header    string  false  "Client request id for idempotent retries"
// @Param        id            path      string  true   "Order ID (UUID)"
// @Success      200           {object}  SuccessResponse
// @Failure      400           {object}  errors.StandardError  "InvalidState"
// @Failure      404           {object}  errors.StandardError
// @Router       /orders/{id} [delete]
func (h *OrderHandler) DeleteOrder(c *gin.Context) {
	id, err := parseUUID("id", c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}

	if err := h.service.DeleteOrder(c.Request.Context(), commands.DeleteOrderCommand{ID: id}); err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Message: "order deleted successfully"})
}

// GetOrder handles GET /api/v1/orders/:id
// @Summary      Get an order
// @Description  Returns the order with recipe names on its lines and item names on its aggregated ingredients.
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Order ID (UUID)"
// @Success      200  {object}  services.OrderDetails
// @Failure      404  {object}  errors.StandardError
// @Router       /orders/{id} [get]
func (h *OrderHandler) GetOrder(c *gin.Context) {
	id, err := parseUUID("id", c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}

	details, err := h.service.GetOrder(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, details)
}

// ListOrders handles GET /api/v1/orders
// @Summary      List orders
// @Description  Newest first. `from` and `to` accept RFC3339 timestamps or YYYY-MM-DD dates.
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Param        status  query     string  false  "Status label, e.g. In Production"
// @Param        from    query     string  false  "Earliest order date"
// @Param        to      query     string  false  "Latest order date"
// @Success      200     {array}   domain.Order
// @Failure      400     {object}  errors.StandardError
// @Router       /orders [get]
func (h *OrderHandler) ListOrders(c *gin.Context) {
	var filter repository.OrderFilter

	if raw := c.Query("status"); raw != "" {
		status, err := domain.ParseOrderStatus(raw)
		if err != nil {
			fail(c, err)
			return
		}
		filter.Status = &status
	}

	from, err := parseTimeQuery("from", c.Query("from"), false)
	if err != nil {
		fail(c, err)
		return
	}
	to, err := parseTimeQuery("to", c.Query("to"), true)
	if err != nil {
		fail(c, err)
		return
	}
	filter.From, filter.To = from, to

	orders, err := h.service.ListOrders(c.Request.Context(), filter)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, orders)
}

// parseTimeQuery accepts RFC3339 or a bare date. A bare `to` date covers the whole day.
func parseTimeQuery(field, raw string, endOfDay bool) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t, nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, &domain.ValidationError{Field: field, Message: "expected RFC3339 timestamp or YYYY-MM-DD"}
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return &t, nil
}
