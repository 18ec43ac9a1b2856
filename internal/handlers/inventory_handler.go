package handlers

import (
	"net/http"

	"kitchen-service/internal/commands"
	"kitchen-service/internal/domain"
	"kitchen-service/internal/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type InventoryHandler struct {
	logger  *zap.Logger
	service *services.InventoryService
}

func NewInventoryHandler(service *services.InventoryService, logger *zap.Logger) *InventoryHandler {
	return &InventoryHandler{
		logger:  logger,
		service: service,
	}
}

// CreateItem handles POST /api/v1/inventory/items
// @Summary      Create a new inventory item
// @Description  Names are unique. The opening stock becomes the current stock.
// @Description  **Idempotency**: send X-Request-ID to replay the stored response of a repeated request.
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        X-Request-ID  header    string             false  "Client request id for idempotent retries"
// @Param        request       body      CreateItemRequest  true   "Item"
// @Success      201           {object}  domain.InventoryItem
// @Failure      400           {object}  errors.StandardError
// @Failure      409           {object}  errors.StandardError  "Duplicate name"
// @Router       /inventory/items [post]
func (h *InventoryHandler) CreateItem(c *gin.Context) {
	var req CreateItemRequest
	if !bindJSON(c, h.logger, &req) {
		return
	}

	unit, err := domain.ParseUnit(req.Unit)
	if err != nil {
		fail(c, err)
		return
	}

	item, err := h.service.CreateItem(c.Request.Context(), commands.CreateItemCommand{
		Name:           req.Name,
		Unit:           unit,
		OpeningStock:   req.OpeningStock,
		ThresholdValue: req.ThresholdValue,
	})
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, item)
}

// UpdateItem handles PUT /api/v1/inventory/items/:id
// @Summary      Update an inventory item
// @Description  Edits name, unit, threshold or current stock. Stock cannot be set negative.
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        X-Request-ID  header    string             false  "Client request id for idempotent retries"
// @Param        id            path      string             true   "Item ID (UUID)"
// @Param        request       body      UpdateItemRequest  true   "Changed fields"
// @Success      200           {object}  domain.InventoryItem
// @Failure      400           {object}  errors.StandardError
// @Failure      404           {object}  errors.StandardError
// @Failure      409           {object}  errors.StandardError
// @Router       /inventory/items/{id} [put]
func (h *InventoryHandler) UpdateItem(c *gin.Context) {
	id, err := parseUUID("id", c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}

	var req UpdateItemRequest
	if !bindJSON(c, h.logger, &req) {
		return
	}

	unit, err := parseOptionalUnit(req.Unit)
	if err != nil {
		fail(c, err)
		return
	}

	item, err := h.service.UpdateItem(c.Request.Context(), commands.UpdateItemCommand{
		ID:             id,
		Name:           req.Name,
		Unit:           unit,
		ThresholdValue: req.ThresholdValue,
		CurrentStock:   req.CurrentStock,
	})
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, item)
}

// RecordPurchase handles POST /api/v1/inventory/items/:id/purchases
// @Summary      Record a purchase
// @Description  Adds the purchased quantity to current stock and appends it to the purchase history.
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        X-Request-ID  header    string           false  "Client request id for idempotent retries"
// @Param        id            path      string           true   "Item ID (UUID)"
// @Param        request       body      PurchaseRequest  true   "Purchase"
// @Success      200           {object}  domain.InventoryItem
// @Failure      400           {object}  errors.StandardError  "Quantity must be positive"
// @Failure      404           {object}  errors.StandardError
// @Router       /inventory/items/{id}/purchases [post]
func (h *InventoryHandler) RecordPurchase(c *gin.Context) {
	id, err := parseUUID("id", c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}

	var req PurchaseRequest
	if !bindJSON(c, h.logger, &req) {
		return
	}

	item, err := h.service.RecordPurchase(c.Request.Context(), commands.RecordPurchaseCommand{
		ID:       id,
		Quantity: req.Quantity,
		Cost:     req.Cost,
		Vendor:   req.Vendor,
	})
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, item)
}

// DeleteItem handles DELETE /api/v1/inventory/items/:id
// @Summary      Delete an inventory item
// @Tags         inventory
// @Produce      json
// @Security     BearerAuth
// @Param        X-Request-ID  header    string  false  "Client request id for idempotent retries"
// @Param        id            path      string  true   "Item ID (UUID)"
// @Success      200           {object}  SuccessResponse
// @Failure      404           {object}  errors.StandardError
// @Router       /inventory/items/{id} [delete]
func (h *InventoryHandler) DeleteItem(c *gin.Context) {
	id, err := parseUUID("id", c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}

	if err := h.service.DeleteItem(c.Request.Context(), commands.DeleteItemCommand{ID: id}); err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Message: "item deleted successfully"})
}

// GetItem handles GET /api/v1/inventory/items/:id
// @Summary      Get an inventory item
// @Tags         inventory
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Item ID (UUID)"
// @Success      200  {object}  domain.InventoryItem
// @Failure      404  {object}  errors.StandardError
// @Router       /inventory/items/{id} [get]
func (h *InventoryHandler) GetItem(c *gin.Context) {
	id, err := parseUUID("id", c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}

	item, err := h.service.GetItem(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, item)
}

// ListItems handles GET /api/v1/inventory/items
// @Summary      List inventory items
// @Tags         inventory
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.InventoryItem
// @Router       /inventory/items [get]
func (h *InventoryHandler) ListItems(c *gin.Context) {
	items, err := h.service.ListItems(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// LowStockItems handles GET /api/v1/inventory/items/low-stock
// @Summary      List items at or below their threshold
// @Tags         inventory
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.InventoryItem
// @Router       /inventory/items/low-stock [get]
func (h *InventoryHandler) LowStockItems(c *gin.Context) {
	items, err := h.service.LowStockItems(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}
