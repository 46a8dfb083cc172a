package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campushq/campusconnect-backend/internal/usecase/event"
)

type CategoryHandler struct {
	eventUseCase *event.EventUseCase
}

func NewCategoryHandler(eventUseCase *event.EventUseCase) *CategoryHandler {
	return &CategoryHandler{
		eventUseCase: eventUseCase,
	}
}

// ListCategories handles GET /api/categories
// @Summary List all categories
// @Tags categories
// @Produce json
// @Success 200 {array} domain.Category
// @Failure 500 {object} ErrorResponse
// @Router /api/categories [get]
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	categories, err := h.eventUseCase.ListCategories(c.Request.Context())
	if err != nil {
		respondError(c, err, "failed to list categories")
		return
	}
	c.JSON(http.StatusOK, categories)
}

// GetCategory handles GET /api/categories/:id
// @Summary Get a category
// @Tags categories
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {object} domain.Category
// @Failure 404 {object} ErrorResponse
// @Router /api/categories/{id} [get]
func (h *CategoryHandler) GetCategory(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	category, err := h.eventUseCase.GetCategory(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "failed to get category")
		return
	}
	c.JSON(http.StatusOK, category)
}

// CreateCategory handles POST /api/categories
// @Summary Create a category
// @Tags categories
// @Accept json
// @Produce json
// @Param request body event.CreateCategoryRequest true "Category data"
// @Success 201 {object} domain.Category
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/categories [post]
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req event.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body",
		})
		return
	}

	category, err := h.eventUseCase.CreateCategory(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "failed to create category")
		return
	}
	c.JSON(http.StatusCreated, category)
}
