package handler

import (
	financeapp "github.com/finbooks/backend/internal/application/finance"
	"github.com/finbooks/backend/internal/domain/finance"
	"github.com/gin-gonic/gin"
)

// FinancialAccountHandler handles financial account API endpoints:
// receivables and payables with their installment schedules
type FinancialAccountHandler struct {
	BaseHandler
	accountService *financeapp.AccountService
	postingService *financeapp.PaymentPostingService
}

// NewFinancialAccountHandler creates a new FinancialAccountHandler
func NewFinancialAccountHandler(
	accountService *financeapp.AccountService,
	postingService *financeapp.PaymentPostingService,
) *FinancialAccountHandler {
	return &FinancialAccountHandler{
		accountService: accountService,
		postingService: postingService,
	}
}

// RegisterRoutes registers financial account routes
func (h *FinancialAccountHandler) RegisterRoutes(rg *gin.RouterGroup) {
	accounts := rg.Group("/finance/accounts")
	{
		accounts.POST("", h.Create)
		accounts.GET("", h.List)
		accounts.GET("/:id", h.Get)
		accounts.POST("/:id/cancel", h.Cancel)
		accounts.GET("/:id/payments", h.ListPayments)
	}
	rg.POST("/finance/payments", h.PostPayment)
}

// Create creates a financial account together with its installment schedule
func (h *FinancialAccountHandler) Create(c *gin.Context) {
	companyID, err := getCompanyID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid company ID")
		return
	}

	var req financeapp.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	resp, err := h.accountService.CreateAccount(c.Request.Context(), companyID, getUserID(c), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// Get loads one financial account with its installments
func (h *FinancialAccountHandler) Get(c *gin.Context) {
	companyID, err := getCompanyID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid company ID")
		return
	}
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid account ID")
		return
	}

	resp, err := h.accountService.GetAccount(c.Request.Context(), companyID, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// List lists financial accounts, filterable by kind, status and references
func (h *FinancialAccountHandler) List(c *gin.Context) {
	companyID, err := getCompanyID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid company ID")
		return
	}

	base, err := bindListFilter(c)
	if err != nil {
		h.BindingError(c, err)
		return
	}
	filter := finance.AccountFilter{Filter: base}

	if kind := c.Query("kind"); kind != "" {
		k := finance.AccountKind(kind)
		if !k.IsValid() {
			h.BadRequest(c, "kind must be receivable or payable")
			return
		}
		filter.Kind = &k
	}
	if status := c.Query("status"); status != "" {
		s := finance.AccountStatus(status)
		if !s.IsValid() {
			h.BadRequest(c, "Unknown account status filter")
			return
		}
		filter.Status = &s
	}
	if filter.ContactID, err = optionalUUIDQuery(c, "contactId"); err != nil {
		h.BadRequest(c, "Invalid contactId")
		return
	}
	if filter.CategoryID, err = optionalUUIDQuery(c, "categoryId"); err != nil {
		h.BadRequest(c, "Invalid categoryId")
		return
	}
	if filter.DepartmentID, err = optionalUUIDQuery(c, "departmentId"); err != nil {
		h.BadRequest(c, "Invalid departmentId")
		return
	}
	if from := c.Query("dueFrom"); from != "" {
		d, err := financeapp.ParseDateOnly(from)
		if err != nil {
			h.HandleError(c, err)
			return
		}
		filter.DueFrom = &d
	}
	if to := c.Query("dueTo"); to != "" {
		d, err := financeapp.ParseDateOnly(to)
		if err != nil {
			h.HandleError(c, err)
			return
		}
		filter.DueTo = &d
	}

	page, err := h.accountService.ListAccounts(c.Request.Context(), companyID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, page.Items, page.Total, page.Limit, page.Offset)
}

// Cancel soft-cancels an open or partially paid account
func (h *FinancialAccountHandler) Cancel(c *gin.Context) {
	companyID, err := getCompanyID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid company ID")
		return
	}
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid account ID")
		return
	}

	// body is optional; an empty cancel carries no reason
	var req financeapp.CancelAccountRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			h.BindingError(c, err)
			return
		}
	}

	resp, err := h.accountService.CancelAccount(c.Request.Context(), companyID, id, getUserID(c), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// PostPayment posts one payment against a financial account: the payment is
// recorded, allocated FIFO across open installments and, when a bank account
// is designated, mirrored as a single realized movement
func (h *FinancialAccountHandler) PostPayment(c *gin.Context) {
	companyID, err := getCompanyID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid company ID")
		return
	}

	var req financeapp.PostPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	result, err := h.postingService.PostPayment(c.Request.Context(), companyID, getUserID(c), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, result)
}

// ListPayments lists the payment records of one account
func (h *FinancialAccountHandler) ListPayments(c *gin.Context) {
	companyID, err := getCompanyID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid company ID")
		return
	}
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid account ID")
		return
	}
	filter, err := bindListFilter(c)
	if err != nil {
		h.BindingError(c, err)
		return
	}

	page, err := h.postingService.ListPayments(c.Request.Context(), companyID, id, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, page.Items, page.Total, page.Limit, page.Offset)
}
