package handler

import (
	treasuryapp "github.com/finbooks/backend/internal/application/treasury"
	"github.com/gin-gonic/gin"
)

// CashFlowHandler handles the cash position and projection endpoints
type CashFlowHandler struct {
	BaseHandler
	cashFlowService *treasuryapp.CashFlowService
}

// NewCashFlowHandler creates a new CashFlowHandler
func NewCashFlowHandler(cashFlowService *treasuryapp.CashFlowService) *CashFlowHandler {
	return &CashFlowHandler{cashFlowService: cashFlowService}
}

// RegisterRoutes registers cash flow routes
func (h *CashFlowHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/treasury/cash-today", h.CashToday)
	rg.GET("/treasury/cash-flow", h.CashFlow)
}

// CashToday returns the company-wide cash position: opening balances of
// active accounts plus realized inflows minus outflows
func (h *CashFlowHandler) CashToday(c *gin.Context) {
	companyID, err := getCompanyID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid company ID")
		return
	}

	resp, err := h.cashFlowService.GetCashToday(c.Request.Context(), companyID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// CashFlow projects expected cash movement per day over a 1-365 day window.
// An out-of-range window is a validation error, never silently clamped.
func (h *CashFlowHandler) CashFlow(c *gin.Context) {
	companyID, err := getCompanyID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid company ID")
		return
	}

	days, err := intQuery(c, "days", treasuryapp.DefaultProjectionDays())
	if err != nil {
		h.BadRequest(c, "days must be an integer")
		return
	}

	resp, err := h.cashFlowService.GetCashFlow(c.Request.Context(), companyID, days)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}
