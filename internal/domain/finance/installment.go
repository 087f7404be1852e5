package finance

import (
	"time"

	"github.com/finbooks/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InstallmentStatus represents the settlement state of a single installment.
// It is a pure function of PaidTotal vs Amount and is never stored
// independently of those two values.
type InstallmentStatus string

const (
	InstallmentStatusOpen    InstallmentStatus = "open"    // PaidTotal == 0
	InstallmentStatusPartial InstallmentStatus = "partial" // 0 < PaidTotal < Amount
	InstallmentStatusPaid    InstallmentStatus = "paid"    // PaidTotal >= Amount
)

// IsValid checks if the status is a valid InstallmentStatus
func (s InstallmentStatus) IsValid() bool {
	switch s {
	case InstallmentStatusOpen, InstallmentStatusPartial, InstallmentStatusPaid:
		return true
	}
	return false
}

// String returns the string representation of InstallmentStatus
func (s InstallmentStatus) String() string {
	return string(s)
}

// InstallmentStatusFor derives the installment status from paid total and amount
func InstallmentStatusFor(paidTotal, amount decimal.Decimal) InstallmentStatus {
	switch {
	case paidTotal.GreaterThanOrEqual(amount):
		return InstallmentStatusPaid
	case paidTotal.IsPositive():
		return InstallmentStatusPartial
	default:
		return InstallmentStatusOpen
	}
}

// Installment is one scheduled portion of a FinancialAccount.
// It is a child entity owned exclusively by its account: created once with
// the account, mutated only through settlement, never deleted.
type Installment struct {
	shared.BaseEntity
	CompanyID          uuid.UUID         `json:"company_id"`
	FinancialAccountID uuid.UUID         `json:"financial_account_id"`
	InstallmentNumber  int               `json:"installment_number"` // 1-based, unique per account
	DueDate            time.Time         `json:"due_date"`           // date-only, UTC midnight
	Amount             decimal.Decimal   `json:"amount"`             // fixed at creation
	PaidTotal          decimal.Decimal   `json:"paid_total"`         // monotonically non-decreasing
	Status             InstallmentStatus `json:"status"`
}

// NewInstallment creates an open installment for an account
func NewInstallment(companyID, accountID uuid.UUID, number int, dueDate time.Time, amount decimal.Decimal) (*Installment, error) {
	if number < 1 {
		return nil, shared.NewDomainError("INVALID_INSTALLMENT_NUMBER", "Installment number must be 1 or greater")
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Installment amount must be positive")
	}
	return &Installment{
		BaseEntity:         shared.NewBaseEntity(),
		CompanyID:          companyID,
		FinancialAccountID: accountID,
		InstallmentNumber:  number,
		DueDate:            dueDate,
		Amount:             amount,
		PaidTotal:          decimal.Zero,
		Status:             InstallmentStatusOpen,
	}, nil
}

// Outstanding returns the unpaid balance (Amount - PaidTotal), never negative
func (i *Installment) Outstanding() decimal.Decimal {
	out := i.Amount.Sub(i.PaidTotal)
	if out.IsNegative() {
		return decimal.Zero
	}
	return out
}

// IsSettled returns true when the installment is fully paid
func (i *Installment) IsSettled() bool {
	return i.PaidTotal.GreaterThanOrEqual(i.Amount)
}

// IsOverdue returns true when the installment is past its due date and still carries balance
func (i *Installment) IsOverdue(today time.Time) bool {
	return i.DueDate.Before(today) && i.PaidTotal.LessThan(i.Amount)
}

// applySettlement increases PaidTotal by amount and re-derives the status.
// The caller (the account aggregate) guarantees amount never exceeds the
// outstanding balance, preserving 0 <= PaidTotal <= Amount.
func (i *Installment) applySettlement(amount decimal.Decimal) {
	i.PaidTotal = i.PaidTotal.Add(amount)
	i.Status = InstallmentStatusFor(i.PaidTotal, i.Amount)
	i.UpdatedAt = time.Now()
}
