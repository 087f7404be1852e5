package finance

import (
	"time"

	"github.com/finbooks/backend/internal/domain/shared"
	"github.com/finbooks/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Payment is an immutable record of a single settlement event against a
// FinancialAccount. Payments are append-only: corrections happen through
// compensating entries, never by editing or deleting a posted payment.
type Payment struct {
	shared.BaseEntity
	CompanyID           uuid.UUID       `json:"company_id"`
	FinancialAccountID  uuid.UUID       `json:"financial_account_id"`
	TargetInstallmentID *uuid.UUID      `json:"target_installment_id"`
	BankAccountID       *uuid.UUID      `json:"bank_account_id"`
	PaidAmount          decimal.Decimal `json:"paid_amount"`
	Interest            decimal.Decimal `json:"interest"`
	Discount            decimal.Decimal `json:"discount"`
	PaymentDate         time.Time       `json:"payment_date"` // date-only, UTC midnight
	Notes               string          `json:"notes"`
	CreatedBy           *uuid.UUID      `json:"created_by"`
}

// NewPayment creates a validated payment record.
// Interest and discount only shape the cash movement amount; neither ever
// changes how much is allocated to installments.
func NewPayment(
	companyID, accountID uuid.UUID,
	paidAmount, interest, discount decimal.Decimal,
	paymentDate time.Time,
	targetInstallmentID, bankAccountID *uuid.UUID,
	notes string,
) (*Payment, error) {
	if paidAmount.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Payment amount must be positive")
	}
	if interest.IsNegative() {
		return nil, shared.NewDomainError("INVALID_INTEREST", "Interest cannot be negative")
	}
	if discount.IsNegative() {
		return nil, shared.NewDomainError("INVALID_DISCOUNT", "Discount cannot be negative")
	}
	if discount.GreaterThan(paidAmount) {
		return nil, shared.NewDomainError("INVALID_DISCOUNT", "Discount cannot exceed the paid amount")
	}

	return &Payment{
		BaseEntity:          shared.NewBaseEntity(),
		CompanyID:           companyID,
		FinancialAccountID:  accountID,
		TargetInstallmentID: targetInstallmentID,
		BankAccountID:       bankAccountID,
		PaidAmount:          paidAmount,
		Interest:            interest,
		Discount:            discount,
		PaymentDate:         paymentDate,
		Notes:               notes,
	}, nil
}

// MovementAmount is the cash amount this payment moves through a bank
// account: paidAmount + interest - discount.
func (p *Payment) MovementAmount() decimal.Decimal {
	return p.PaidAmount.Add(p.Interest).Sub(p.Discount)
}

// MovementCents is the movement amount converted to integer cents at the
// ledger boundary (round half up).
func (p *Payment) MovementCents() int64 {
	return valueobject.NewMoneyBRL(p.MovementAmount()).Cents()
}
