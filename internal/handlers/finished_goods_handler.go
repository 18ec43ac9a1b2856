package handlers

import (
	"net/http"

	"kitchen-service/internal/commands"
	"kitchen-service/internal/domain"
	"kitchen-service/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type FinishedGoodsHandler struct {
	logger  *zap.Logger
	service *services.FinishedGoodsService
}

func NewFinishedGoodsHandler(service *services.FinishedGoodsService, logger *zap.Logger) *FinishedGoodsHandler {
	return &FinishedGoodsHandler{
		logger:  logger,
		service: service,
	}
}

// CreateFinishedGoods handles POST /api/v1/finished-goods
// @Summary      Create a finished-goods record
// @Description  Links a sellable product to its recipe. Stock starts at zero and grows when orders reach Ready for Dispatch.
// @Tags         finished-goods
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        X-Request-ID  header    string                      false  "Client request id for idempotent retries"
// @Param        request       body      CreateFinishedGoodsRequest  true   "Finished goods"
// @Success      201           {object}  domain.FinishedGoods
// @Failure      400           {object}  errors.StandardError
// @Failure      404           {object}  errors.StandardError  "Recipe not found"
// @Failure      409           {object}  errors.StandardError  "Duplicate name"
// @Router       /finished-goods [post]
func (h *FinishedGoodsHandler) CreateFinishedGoods(c *gin.Context) {
	var req CreateFinishedGoodsRequest
	if !bindJSON(c, h.logger, &req) {
		return
	}

	recipeID, err := parseUUID("recipe", req.Recipe)
	if err != nil {
		fail(c, err)
		return
	}
	unit, err := domain.ParseUnit(req.Unit)
	if err != nil {
		fail(c, err)
		return
	}

	fg, err := h.service.CreateFinishedGoods(c.Request.Context(), commands.CreateFinishedGoodsCommand{
		Name:     req.Name,
		RecipeID: recipeID,
		Unit:     unit,
	})
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, fg)
}

// UpdateFinishedGoods handles PUT /api/v1/finished-goods/:id
// @Summary      Update a finished-goods record
// @Description  Stock only moves through transactions.
// @Tags         finished-goods
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        X-Request-ID  header    string                      false  "Client request id for idempotent retries"
// @Param        id            path      string                      true   "Finished goods ID (UUID)"
// @Param        request       body      UpdateFinishedGoodsRequest  true   "Changed fields"
// @Success      200           {object}  domain.FinishedGoods
// @Failure      400           {object}  errors.StandardError
// @Failure      404           {object}  errors.StandardError
// @Router       /finished-goods/{id} [put]
func (h *FinishedGoodsHandler) UpdateFinishedGoods(c *gin.Context) {
	id, err := parseUUID("id", c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}

	var req UpdateFinishedGoodsRequest
	if !bindJSON(c, h.logger, &req) {
		return
	}

	cmd := commands.UpdateFinishedGoodsCommand{ID: id, Name: req.Name}
	if req.Recipe != nil {
		recipeID, err := parseUUID("recipe", *req.Recipe)
		if err != nil {
			fail(c, err)
			return
		}
		cmd.RecipeID = &recipeID
	}
	if cmd.Unit, err = parseOptionalUnit(req.Unit); err != nil {
		fail(c, err)
		return
	}

	fg, err := h.service.UpdateFinishedGoods(c.Request.Context(), cmd)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, fg)
}

// RecordTransaction handles POST /api/v1/finished-goods/:id/transactions
// @Summary      Record a stock movement
// @Description  Produced and Adjusted add stock, Sold and Wasted remove it. Stock never goes negative.
// @Tags         finished-goods
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        X-Request-ID  header    string              false  "Client request id for idempotent retries"
// @Param        id            path      string              true   "Finished goods ID (UUID)"
// @Param        request       body      TransactionRequest  true   "Transaction"
// @Success      200           {object}  domain.FinishedGoods
// @Failure      400           {object}  errors.StandardError  "Unknown type, non-positive quantity or InsufficientStock"
// @Failure      404           {object}  errors.StandardError
// @Router       /finished-goods/{id}/transactions [post]
func (h *FinishedGoodsHandler) RecordTransaction(c *gin.Context) {
	id, err := parseUUID("id", c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}

	var req TransactionRequest
	if !bindJSON(c, h.logger, &req) {
		return
	}

	txType, err := domain.ParseTransactionType(req.TransactionType)
	if err != nil {
		fail(c, err)
		return
	}

	var orderID *uuid.UUID
	if req.OrderID != nil {
		parsed, err := parseUUID("orderId", *req.OrderID)
		if err != nil {
			fail(c, err)
			return
		}
		orderID = &parsed
	}

	fg, err := h.service.RecordTransaction(c.Request.Context(), commands.RecordTransactionCommand{
		ID:              id,
		TransactionType: txType,
		Quantity:        req.Quantity,
		Notes:           req.Notes,
		OrderID:         orderID,
	})
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, fg)
}

// DeleteFinishedGoods handles DELETE /api/v1/finished-goods/:id
// @Summary      Delete a finished-goods record
// @Tags         finished-goods
// @Produce      json
// @Security     BearerAuth
// @Param        X-Request-ID  header    string  false  "Client request id for idempotent retries"
// @Param        id            path      string  true   "Finished goods ID (UUID)"
// @Success      200           {object}  SuccessResponse
// @Failure      404           {object}  errors.StandardError
// @Router       /finished-goods/{id} [delete]
func (h *FinishedGoodsHandler) DeleteFinishedGoods(c *gin.Context) {
	id, err := parseUUID("id", c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}

	if err := h.service.DeleteFinishedGoods(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Message: "finished goods deleted successfully"})
}

// GetFinishedGoods handles GET /api/v1/finished-goods/:id
// @Summary      Get a finished-goods record with its stock history
// @Tags         finished-goods
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Finished goods ID (UUID)"
// @Success      200  {object}  domain.FinishedGoods
// @Failure      404  {object}  errors.StandardError
// @Router       /finished-goods/{id} [get]
func (h *FinishedGoodsHandler) GetFinishedGoods(c *gin.Context) {
	id, err := parseUUID("id", c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}

	fg, err := h.service.GetFinishedGoods(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, fg)
}

// ListFinishedGoods handles GET /api/v1/finished-goods
// @Summary      List finished goods
// @Tags         finished-goods
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.FinishedGoods
// @Router       /finished-goods [get]
func (h *FinishedGoodsHandler) ListFinishedGoods(c *gin.Context) {
	goods, err := h.service.ListFinishedGoods(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, goods)
}
