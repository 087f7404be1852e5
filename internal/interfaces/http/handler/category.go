package handler

import (
	partnerapp "github.com/finbooks/backend/internal/application/partner"
	"github.com/gin-gonic/gin"
)

// CategoryHandler handles cash-flow category endpoints
type CategoryHandler struct {
	BaseHandler
	categoryService *partnerapp.CategoryService
}

// NewCategoryHandler creates a new CategoryHandler
func NewCategoryHandler(categoryService *partnerapp.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// RegisterRoutes registers category routes
func (h *CategoryHandler) RegisterRoutes(rg *gin.RouterGroup) {
	categories := rg.Group("/categories")
	{
		categories.POST("", h.Create)
		categories.GET("", h.List)
	}
}

// Create creates a category
func (h *CategoryHandler) Create(c *gin.Context) {
	companyID, err := getCompanyID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid company ID")
		return
	}

	var req partnerapp.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	resp, err := h.categoryService.Create(c.Request.Context(), companyID, getUserID(c), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// List lists active categories grouped for the UI; the Brazilian default
// chart is seeded on first use
func (h *CategoryHandler) List(c *gin.Context) {
	companyID, err := getCompanyID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid company ID")
		return
	}

	items, err := h.categoryService.List(c.Request.Context(), companyID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, items)
}
