package budget

import (
	"fmt"
	"time"

	"github.com/finbooks/backend/internal/domain/finance"
	"github.com/finbooks/backend/internal/domain/shared"
	"github.com/finbooks/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BudgetStatus is the lifecycle state of a budget (sales quote)
type BudgetStatus string

const (
	BudgetStatusDraft    BudgetStatus = "draft"
	BudgetStatusSent     BudgetStatus = "sent"
	BudgetStatusApproved BudgetStatus = "approved"
	BudgetStatusCanceled BudgetStatus = "canceled"
)

// IsValid checks if the status is a valid BudgetStatus
func (s BudgetStatus) IsValid() bool {
	switch s {
	case BudgetStatusDraft, BudgetStatusSent, BudgetStatusApproved, BudgetStatusCanceled:
		return true
	}
	return false
}

// String returns the string representation of BudgetStatus
func (s BudgetStatus) String() string {
	return string(s)
}

// NormalizeBudgetStatus maps free-form input to a known status, defaulting
// to draft
func NormalizeBudgetStatus(s string) BudgetStatus {
	switch BudgetStatus(s) {
	case BudgetStatusSent:
		return BudgetStatusSent
	case BudgetStatusApproved:
		return BudgetStatusApproved
	case BudgetStatusCanceled:
		return BudgetStatusCanceled
	default:
		return BudgetStatusDraft
	}
}

// BudgetItemType classifies a budget line item
type BudgetItemType string

const (
	BudgetItemTypeService  BudgetItemType = "service"
	BudgetItemTypeProduct  BudgetItemType = "product"
	BudgetItemTypeMaterial BudgetItemType = "material"
)

// NormalizeBudgetItemType maps free-form input to a known item type,
// defaulting to service
func NormalizeBudgetItemType(s string) BudgetItemType {
	switch BudgetItemType(s) {
	case BudgetItemTypeProduct:
		return BudgetItemTypeProduct
	case BudgetItemTypeMaterial:
		return BudgetItemTypeMaterial
	default:
		return BudgetItemTypeService
	}
}

// BudgetItem is one line of a budget
type BudgetItem struct {
	shared.BaseEntity
	CompanyID   uuid.UUID       `json:"company_id"`
	BudgetID    uuid.UUID       `json:"budget_id"`
	ItemType    BudgetItemType  `json:"item_type"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Total       decimal.Decimal `json:"total"`
}

// Budget is a sales quote. Approving it materializes a receivable
// FinancialAccount with a monthly installment schedule; an approved budget
// can only move to canceled.
type Budget struct {
	shared.CompanyAggregateRoot
	BudgetNumber        string          `json:"budget_number"`
	Status              BudgetStatus    `json:"status"`
	ClientID            *uuid.UUID      `json:"client_id"`
	ClientName          string          `json:"client_name"`
	SellerName          string          `json:"seller_name"`
	TotalAmount         decimal.Decimal `json:"total_amount"`
	TotalServices       decimal.Decimal `json:"total_services"`
	TotalMaterials      decimal.Decimal `json:"total_materials"`
	DiscountValue       decimal.Decimal `json:"discount_value"`
	ExpectedBillingDate *time.Time      `json:"expected_billing_date"` // date-only, UTC midnight
	InstallmentCount    int             `json:"installment_count"`
	CategoryID          *uuid.UUID      `json:"category_id"`
	DepartmentID        *uuid.UUID      `json:"department_id"`
	BankAccountID       *uuid.UUID      `json:"bank_account_id"`
	Observations        string          `json:"observations"`
	DeletedAt           *time.Time      `json:"deleted_at"`
	Items               []*BudgetItem   `json:"items"`
}

// NewBudget creates a draft budget
func NewBudget(companyID uuid.UUID, budgetNumber string, totalAmount decimal.Decimal) (*Budget, error) {
	if budgetNumber == "" {
		return nil, shared.NewDomainError("INVALID_BUDGET_NUMBER", "Budget number is required")
	}
	return &Budget{
		CompanyAggregateRoot: shared.NewCompanyAggregateRoot(companyID),
		BudgetNumber:         budgetNumber,
		Status:               BudgetStatusDraft,
		TotalAmount:          totalAmount,
		InstallmentCount:     1,
	}, nil
}

// IsEditable returns true when the budget can still be modified
func (b *Budget) IsEditable() bool {
	return b.Status != BudgetStatusApproved
}

// CanApprove validates the preconditions for approval
func (b *Budget) CanApprove() error {
	if b.Status == BudgetStatusApproved {
		return shared.NewDomainError("INVALID_STATE", "Budget is already approved")
	}
	if b.ClientID == nil {
		return shared.NewDomainError("CLIENT_REQUIRED", "A client is required to approve the budget")
	}
	if b.TotalAmount.LessThanOrEqual(decimal.Zero) {
		return shared.NewDomainError("INVALID_AMOUNT", "Total amount must be greater than zero to approve")
	}
	return nil
}

// Approve transitions the budget to approved and materializes the receivable
// account it bills through: one installment per InstallmentCount, due dates
// 30 days apart starting at the issue date, amounts split in integer cents
// with the remainder on the last installment.
func (b *Budget) Approve(now time.Time) (*finance.FinancialAccount, error) {
	if err := b.CanApprove(); err != nil {
		return nil, err
	}

	issueDate := now.UTC().Truncate(24 * time.Hour)
	if b.ExpectedBillingDate != nil {
		issueDate = b.ExpectedBillingDate.UTC().Truncate(24 * time.Hour)
	}

	count := b.InstallmentCount
	if count < 1 {
		count = 1
	}
	totalCents := valueobject.NewMoneyBRL(b.TotalAmount).Cents()
	parts, err := valueobject.SplitCents(totalCents, count)
	if err != nil {
		return nil, err
	}

	schedule := make([]finance.InstallmentSpec, count)
	scheduleTotal := decimal.Zero
	for i, cents := range parts {
		amount := decimal.New(cents, -2)
		schedule[i] = finance.InstallmentSpec{
			InstallmentNumber: i + 1,
			DueDate:           issueDate.AddDate(0, 0, 30*i),
			Amount:            amount,
		}
		scheduleTotal = scheduleTotal.Add(amount)
	}

	account, err := finance.NewFinancialAccount(
		b.CompanyID,
		finance.AccountKindReceivable,
		*b.ClientID,
		valueobject.NewMoneyBRL(scheduleTotal),
		fmt.Sprintf("Budget %s", b.BudgetNumber),
		issueDate,
		schedule,
	)
	if err != nil {
		return nil, err
	}
	account.CategoryID = b.CategoryID
	account.DepartmentID = b.DepartmentID
	account.BankAccountID = b.BankAccountID
	budgetID := b.ID
	account.BudgetID = &budgetID

	b.Status = BudgetStatusApproved
	b.UpdatedAt = time.Now()
	b.IncrementVersion()

	return account, nil
}

// Cancel moves the budget to canceled. This is the only transition allowed
// out of approved.
func (b *Budget) Cancel() {
	b.Status = BudgetStatusCanceled
	b.UpdatedAt = time.Now()
	b.IncrementVersion()
}

// SoftDelete hides the budget from listings
func (b *Budget) SoftDelete() {
	now := time.Now()
	b.DeletedAt = &now
	b.UpdatedAt = now
	b.IncrementVersion()
}

// ReplaceItems swaps the full item list, recomputing each line total
func (b *Budget) ReplaceItems(items []*BudgetItem) {
	for _, item := range items {
		item.BudgetID = b.ID
		item.CompanyID = b.CompanyID
		item.Total = item.Quantity.Mul(item.UnitPrice)
	}
	b.Items = items
	b.UpdatedAt = time.Now()
}
