package handler

import (
	"strconv"

	financeapp "github.com/finbooks/backend/internal/application/finance"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// InstallmentHandler handles cross-account installment endpoints
type InstallmentHandler struct {
	BaseHandler
	installmentService *financeapp.InstallmentService
}

// NewInstallmentHandler creates a new InstallmentHandler
func NewInstallmentHandler(installmentService *financeapp.InstallmentService) *InstallmentHandler {
	return &InstallmentHandler{installmentService: installmentService}
}

// RegisterRoutes registers installment routes
func (h *InstallmentHandler) RegisterRoutes(rg *gin.RouterGroup) {
	installments := rg.Group("/finance/installments")
	{
		installments.GET("", h.List)
		installments.GET("/summary", h.Summary)
		installments.POST("/:id/settle", h.Settle)
	}
}

// List lists installments across accounts, due date ascending
func (h *InstallmentHandler) List(c *gin.Context) {
	companyID, err := getCompanyID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid company ID")
		return
	}

	query := financeapp.ListInstallmentsQuery{
		Status: c.Query("status"),
		Kind:   c.Query("kind"),
		From:   c.Query("from"),
		To:     c.Query("to"),
	}
	if query.FinancialAccountID, err = optionalUUIDQuery(c, "financialAccountId"); err != nil {
		h.BadRequest(c, "Invalid financialAccountId")
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

	page, err := h.installmentService.List(c.Request.Context(), companyID, query)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, page.Items, page.Total, page.Limit, page.Offset)
}

// Summary returns installment counts per financial account. Accounts are
// given as repeated financialAccountId query parameters.
func (h *InstallmentHandler) Summary(c *gin.Context) {
	companyID, err := getCompanyID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid company ID")
		return
	}

	rawIDs := c.QueryArray("financialAccountId")
	accountIDs := make([]uuid.UUID, 0, len(rawIDs))
	for _, raw := range rawIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			h.BadRequest(c, "Invalid financialAccountId")
			return
		}
		accountIDs = append(accountIDs, id)
	}

	summaries, err := h.installmentService.Summary(c.Request.Context(), companyID, accountIDs)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, summaries)
}

// Settle pays (part of) a single installment. The installment is pinned to
// the front of the allocation order; interest and discount are always zero
// on this path.
func (h *InstallmentHandler) Settle(c *gin.Context) {
	companyID, err := getCompanyID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid company ID")
		return
	}
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid installment ID")
		return
	}

	var req financeapp.SettleInstallmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	result, err := h.installmentService.Settle(c.Request.Context(), companyID, getUserID(c), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// intQuery parses an optional integer query parameter
func intQuery(c *gin.Context, name string, def int) (int, error) {
	value := c.Query(name)
	if value == "" {
		return def, nil
	}
	return strconv.Atoi(value)
}
