package handler

import (
	budgetapp "github.com/finbooks/backend/internal/application/budget"
	"github.com/gin-gonic/gin"
)

// BudgetHandler handles sales budget endpoints. Approving a budget is the
// bridge into finance: it materializes a receivable account with a monthly
// installment schedule.
type BudgetHandler struct {
	BaseHandler
	budgetService *budgetapp.BudgetService
}

// NewBudgetHandler creates a new BudgetHandler
func NewBudgetHandler(budgetService *budgetapp.BudgetService) *BudgetHandler {
	return &BudgetHandler{budgetService: budgetService}
}

// RegisterRoutes registers budget routes
func (h *BudgetHandler) RegisterRoutes(rg *gin.RouterGroup) {
	budgets := rg.Group("/budgets")
	{
		budgets.POST("", h.Create)
		budgets.GET("", h.List)
		budgets.GET("/:id", h.Get)
		budgets.PUT("/:id", h.Update)
		budgets.DELETE("/:id", h.Delete)
		budgets.POST("/:id/approve", h.Approve)
	}
}

// Create creates a budget in draft (or another non-approved status)
func (h *BudgetHandler) Create(c *gin.Context) {
	companyID, err := getCompanyID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid company ID")
		return
	}

	var req budgetapp.CreateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	resp, err := h.budgetService.Create(c.Request.Context(), companyID, getUserID(c), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// Get loads a budget with its items
func (h *BudgetHandler) Get(c *gin.Context) {
	companyID, err := getCompanyID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid company ID")
		return
	}
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid budget ID")
		return
	}

	resp, err := h.budgetService.Get(c.Request.Context(), companyID, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Update partially updates a budget; sending items replaces the whole list
func (h *BudgetHandler) Update(c *gin.Context) {
	companyID, err := getCompanyID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid company ID")
		return
	}
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid budget ID")
		return
	}

	var req budgetapp.UpdateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	resp, err := h.budgetService.Update(c.Request.Context(), companyID, id, getUserID(c), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// List lists budgets newest first
func (h *BudgetHandler) List(c *gin.Context) {
	companyID, err := getCompanyID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid company ID")
		return
	}

	query := budgetapp.ListBudgetsQuery{
		Status: c.Query("status"),
		Search: c.Query("search"),
	}
	if query.ClientID, err = optionalUUIDQuery(c, "clientId"); err != nil {
		h.BadRequest(c, "Invalid clientId")
		return
	}
	if query.Limit, err = intQuery(c, "limit", 0); err != nil {
		h.BadRequest(c, "limit must be an integer")
		return
	}
	if query.Offset, err = intQuery(c, "offset", 0); err != nil {
		h.BadRequest(c, "offset must be an integer")
		return
	}

	page, err := h.budgetService.List(c.Request.Context(), companyID, query)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, page.Items, page.Total, page.Limit, page.Offset)
}

// Approve approves a budget and returns it together with the receivable
// account the approval created
func (h *BudgetHandler) Approve(c *gin.Context) {
	companyID, err := getCompanyID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid company ID")
		return
	}
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid budget ID")
		return
	}

	result, err := h.budgetService.Approve(c.Request.Context(), companyID, id, getUserID(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// Delete soft-deletes a budget
func (h *BudgetHandler) Delete(c *gin.Context) {
	companyID, err := getCompanyID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid company ID")
		return
	}
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid budget ID")
		return
	}

	if err := h.budgetService.Delete(c.Request.Context(), companyID, id, getUserID(c)); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
