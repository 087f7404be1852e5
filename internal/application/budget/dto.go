package budget

import (
	"time"

	appfinance "github.com/finbooks/backend/internal/application/finance"
	"github.com/finbooks/backend/internal/domain/budget"
	"github.com/finbooks/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BudgetItemInput is one line of a budget request
type BudgetItemInput struct {
	ItemType    string `json:"itemType"`
	Description string `json:"description" binding:"required"`
	Quantity    string `json:"quantity" binding:"required"`
	UnitPrice   string `json:"unitPrice" binding:"required"`
}

// CreateBudgetRequest creates a budget
type CreateBudgetRequest struct {
	BudgetNumber        string            `json:"budgetNumber" binding:"required"`
	Status              string            `json:"status"`
	ClientID            *uuid.UUID        `json:"clientId"`
	ClientName          string            `json:"clientName"`
	SellerName          string            `json:"sellerName"`
	TotalAmount         string            `json:"totalAmount" binding:"required"`
	TotalServices       string            `json:"totalServices"`
	TotalMaterials      string            `json:"totalMaterials"`
	DiscountValue       string            `json:"discountValue"`
	ExpectedBillingDate *string           `json:"expectedBillingDate"`
	InstallmentCount    int               `json:"installmentCount"`
	CategoryID          *uuid.UUID        `json:"categoryId"`
	DepartmentID        *uuid.UUID        `json:"departmentId"`
	BankAccountID       *uuid.UUID        `json:"bankAccountId"`
	Observations        string            `json:"observations"`
	Items               []BudgetItemInput `json:"items"`
}

// UpdateBudgetRequest partially updates a budget
type UpdateBudgetRequest struct {
	Status              *string            `json:"status"`
	ClientID            *uuid.UUID         `json:"clientId"`
	ClientName          *string            `json:"clientName"`
	SellerName          *string            `json:"sellerName"`
	TotalAmount         *string            `json:"totalAmount"`
	TotalServices       *string            `json:"totalServices"`
	TotalMaterials      *string            `json:"totalMaterials"`
	DiscountValue       *string            `json:"discountValue"`
	ExpectedBillingDate *string            `json:"expectedBillingDate"`
	InstallmentCount    *int               `json:"installmentCount"`
	CategoryID          *uuid.UUID         `json:"categoryId"`
	DepartmentID        *uuid.UUID         `json:"departmentId"`
	BankAccountID       *uuid.UUID         `json:"bankAccountId"`
	Observations        *string            `json:"observations"`
	Items               *[]BudgetItemInput `json:"items"`
}

// ListBudgetsQuery narrows budget listings
type ListBudgetsQuery struct {
	Status   string
	ClientID *uuid.UUID
	Search   string
	Limit    int
	Offset   int
}

// BudgetItemResponse is the API shape of a budget line item
type BudgetItemResponse struct {
	ID          uuid.UUID `json:"id"`
	ItemType    string    `json:"itemType"`
	Description string    `json:"description"`
	Quantity    string    `json:"quantity"`
	UnitPrice   string    `json:"unitPrice"`
	Total       string    `json:"total"`
}

// BudgetResponse is the API shape of a budget
type BudgetResponse struct {
	ID                  uuid.UUID            `json:"id"`
	BudgetNumber        string               `json:"budgetNumber"`
	Status              string               `json:"status"`
	ClientID            *uuid.UUID           `json:"clientId"`
	ClientName          string               `json:"clientName"`
	SellerName          string               `json:"sellerName"`
	TotalAmount         string               `json:"totalAmount"`
	TotalServices       string               `json:"totalServices"`
	TotalMaterials      string               `json:"totalMaterials"`
	DiscountValue       string               `json:"discountValue"`
	ExpectedBillingDate *string              `json:"expectedBillingDate"`
	InstallmentCount    int                  `json:"installmentCount"`
	CategoryID          *uuid.UUID           `json:"categoryId"`
	DepartmentID        *uuid.UUID           `json:"departmentId"`
	BankAccountID       *uuid.UUID           `json:"bankAccountId"`
	Observations        string               `json:"observations"`
	CreatedAt           time.Time            `json:"createdAt"`
	Items               []BudgetItemResponse `json:"items"`
}

// ApproveBudgetResult pairs the approved budget with the receivable account
// it materialized
type ApproveBudgetResult struct {
	Budget           BudgetResponse             `json:"budget"`
	FinancialAccount appfinance.AccountResponse `json:"financialAccount"`
}

// ToBudgetResponse maps a domain budget to its API shape
func ToBudgetResponse(b *budget.Budget) BudgetResponse {
	var billingDate *string
	if b.ExpectedBillingDate != nil {
		s := b.ExpectedBillingDate.Format("2006-01-02")
		billingDate = &s
	}
	items := make([]BudgetItemResponse, 0, len(b.Items))
	for _, item := range b.Items {
		items = append(items, BudgetItemResponse{
			ID:          item.ID,
			ItemType:    string(item.ItemType),
			Description: item.Description,
			Quantity:    item.Quantity.String(),
			UnitPrice:   item.UnitPrice.StringFixed(2),
			Total:       item.Total.StringFixed(2),
		})
	}
	return BudgetResponse{
		ID:                  b.ID,
		BudgetNumber:        b.BudgetNumber,
		Status:              b.Status.String(),
		ClientID:            b.ClientID,
		ClientName:          b.ClientName,
		SellerName:          b.SellerName,
		TotalAmount:         b.TotalAmount.StringFixed(2),
		TotalServices:       b.TotalServices.StringFixed(2),
		TotalMaterials:      b.TotalMaterials.StringFixed(2),
		DiscountValue:       b.DiscountValue.StringFixed(2),
		ExpectedBillingDate: billingDate,
		InstallmentCount:    b.InstallmentCount,
		CategoryID:          b.CategoryID,
		DepartmentID:        b.DepartmentID,
		BankAccountID:       b.BankAccountID,
		Observations:        b.Observations,
		CreatedAt:           b.CreatedAt,
		Items:               items,
	}
}

// parseAmount parses a decimal amount field
func parseAmount(field, value string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, shared.NewDomainError("INVALID_AMOUNT", field+" must be a decimal number")
	}
	return d, nil
}

// parseOptionalAmount parses an optional decimal field, defaulting to zero
func parseOptionalAmount(field, value string) (decimal.Decimal, error) {
	if value == "" {
		return decimal.Zero, nil
	}
	return parseAmount(field, value)
}

// buildItems maps item inputs into domain items
func buildItems(inputs []BudgetItemInput) ([]*budget.BudgetItem, error) {
	items := make([]*budget.BudgetItem, 0, len(inputs))
	for _, input := range inputs {
		quantity, err := parseAmount("items.quantity", input.Quantity)
		if err != nil {
			return nil, err
		}
		unitPrice, err := parseAmount("items.unitPrice", input.UnitPrice)
		if err != nil {
			return nil, err
		}
		items = append(items, &budget.BudgetItem{
			BaseEntity:  shared.NewBaseEntity(),
			ItemType:    budget.NormalizeBudgetItemType(input.ItemType),
			Description: input.Description,
			Quantity:    quantity,
			UnitPrice:   unitPrice,
		})
	}
	return items, nil
}
