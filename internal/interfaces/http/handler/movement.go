package handler

import (
	treasuryapp "github.com/finbooks/backend/internal/application/treasury"
	"github.com/gin-gonic/gin"
)

// MovementHandler handles cash ledger endpoints
type MovementHandler struct {
	BaseHandler
	movementService *treasuryapp.MovementService
}

// NewMovementHandler creates a new MovementHandler
func NewMovementHandler(movementService *treasuryapp.MovementService) *MovementHandler {
	return &MovementHandler{movementService: movementService}
}

// RegisterRoutes registers movement routes
func (h *MovementHandler) RegisterRoutes(rg *gin.RouterGroup) {
	movements := rg.Group("/treasury/movements")
	{
		movements.POST("", h.Create)
		movements.GET("", h.List)
	}
}

// Create records a manual cash movement. System movements are only ever
// created by the payment posting flow.
func (h *MovementHandler) Create(c *gin.Context) {
	companyID, err := getCompanyID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid company ID")
		return
	}

	var req treasuryapp.CreateMovementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	resp, err := h.movementService.Create(c.Request.Context(), companyID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// List lists movements newest first, optionally bounded by occurrence date
func (h *MovementHandler) List(c *gin.Context) {
	companyID, err := getCompanyID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid company ID")
		return
	}

	query := treasuryapp.ListMovementsQuery{
		From: c.Query("from"),
		To:   c.Query("to"),
	}
	if query.Limit, err = intQuery(c, "limit", 0); err != nil {
		h.BadRequest(c, "limit must be an integer")
		return
	}
	if query.Offset, err = intQuery(c, "offset", 0); err != nil {
		h.BadRequest(c, "offset must be an integer")
		return
	}

	page, err := h.movementService.List(c.Request.Context(), companyID, query)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, page.Items, page.Total, page.Limit, page.Offset)
}
