package handlers

import (
	"net/http"

	"kitchen-service/internal/commands"
	"kitchen-service/internal/domain"
	"kitchen-service/internal/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type RecipeHandler struct {
	logger  *zap.Logger
	service *services.RecipeService
}

func NewRecipeHandler(service *services.RecipeService, logger *zap.Logger) *RecipeHandler {
	return &RecipeHandler{
		logger:  logger,
		service: service,
	}
}

// CreateRecipe handles POST /api/v1/recipes
// @Summary      Create a recipe
// @Description  Every ingredient must reference an existing inventory item. The ingredient list is the amount needed for `standardQuantity` units.
// @Tags         recipes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        X-Request-ID  header    string               false  "Client request id for idempotent retries"
// @Param        request       body      CreateRecipeRequest  true   "Recipe"
// @Success      201           {object}  domain.Recipe
// @Failure      400           {object}  errors.StandardError
// @Failure      404           {object}  errors.StandardError  "Ingredient item not found"
// @Failure      409           {object}  errors.StandardError  "Duplicate name"
// @Router       /recipes [post]
func (h *RecipeHandler) CreateRecipe(c *gin.Context) {
	var req CreateRecipeRequest
	if !bindJSON(c, h.logger, &req) {
		return
	}

	ingredients, err := parseIngredients(req.Ingredients)
	if err != nil {
		fail(c, err)
		return
	}
	unit, err := domain.ParseUnit(req.StandardUnit)
	if err != nil {
		fail(c, err)
		return
	}

	recipe, err := h.service.CreateRecipe(c.Request.Context(), commands.CreateRecipeCommand{
		Name:             req.Name,
		Description:      req.Description,
		Ingredients:      ingredients,
		StandardUnit:     unit,
		StandardQuantity: req.StandardQuantity,
		UnitPrice:        req.UnitPrice,
	})
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, recipe)
}

// UpdateRecipe handles PUT /api/v1/recipes/:id
// @Summary      Update a recipe
// @Description  Existing orders keep the ingredient totals computed when they were priced.
// @Tags         recipes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        X-Request-ID  header    string               false  "Client request id for idempotent retries"
// @Param        id            path      string               true   "Recipe ID (UUID)"
// @Param        request       body      UpdateRecipeRequest  true   "Changed fields"
// @Success      200           {object}  domain.Recipe
// @Failure      400           {object}  errors.StandardError
// @Failure      404           {object}  errors.StandardError
// @Router       /recipes/{id} [put]
func (h *RecipeHandler) UpdateRecipe(c *gin.Context) {
	id, err := parseUUID("id", c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}

	var req UpdateRecipeRequest
	if !bindJSON(c, h.logger, &req) {
		return
	}

	ingredients, err := parseIngredients(req.Ingredients)
	if err != nil {
		fail(c, err)
		return
	}
	unit, err := parseOptionalUnit(req.StandardUnit)
	if err != nil {
		fail(c, err)
		return
	}

	recipe, err := h.service.UpdateRecipe(c.Request.Context(), commands.UpdateRecipeCommand{
		ID:               id,
		Name:             req.Name,
		Description:      req.Description,
		Ingredients:      ingredients,
		StandardUnit:     unit,
		StandardQuantity: req.StandardQuantity,
		UnitPrice:        req.UnitPrice,
	})
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, recipe)
}

// DeleteRecipe handles DELETE /api/v1/recipes/:id
// @Summary      Delete a recipe
// @Tags         recipes
// @Produce      json
// @Security     BearerAuth
// @Param        X-Request-ID  header    string  false  "Client request id for idempotent retries"
// @Param        id            path      string  true   "Recipe ID (UUID)"
// @Success      200           {object}  SuccessResponse
// @Failure      404           {object}  errors.StandardError
// @Router       /recipes/{id} [delete]
func (h *RecipeHandler) DeleteRecipe(c *gin.Context) {
	id, err := parseUUID("id", c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}

	if err := h.service.DeleteRecipe(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Message: "recipe deleted successfully"})
}

// GetRecipe handles GET /api/v1/recipes/:id
// @Summary      Get a recipe
// @Tags         recipes
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Recipe ID (UUID)"
// @Success      200  {object}  domain.Recipe
// @Failure      404  {object}  errors.StandardError
// @Router       /recipes/{id} [get]
func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	id, err := parseUUID("id", c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}

	recipe, err := h.service.GetRecipe(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, recipe)
}

// ListRecipes handles GET /api/v1/recipes
// @Summary      List recipes
// @Tags         recipes
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Recipe
// @Router       /recipes [get]
func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	recipes, err := h.service.ListRecipes(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, recipes)
}
