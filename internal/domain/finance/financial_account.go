package finance

import (
	"fmt"
	"time"

	"github.com/finbooks/backend/internal/domain/shared"
	"github.com/finbooks/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AccountKind distinguishes money owed to the company from money it owes
type AccountKind string

const (
	AccountKindReceivable AccountKind = "receivable"
	AccountKindPayable    AccountKind = "payable"
)

// IsValid checks if the kind is a valid AccountKind
func (k AccountKind) IsValid() bool {
	return k == AccountKindReceivable || k == AccountKindPayable
}

// String returns the string representation of AccountKind
func (k AccountKind) String() string {
	return string(k)
}

// AccountStatus represents the settlement state of a FinancialAccount
type AccountStatus string

const (
	AccountStatusOpen     AccountStatus = "open"
	AccountStatusPartial  AccountStatus = "partial"
	AccountStatusPaid     AccountStatus = "paid"
	AccountStatusCanceled AccountStatus = "canceled"
)

// IsValid checks if the status is a valid AccountStatus
func (s AccountStatus) IsValid() bool {
	switch s {
	case AccountStatusOpen, AccountStatusPartial, AccountStatusPaid, AccountStatusCanceled:
		return true
	}
	return false
}

// String returns the string representation of AccountStatus
func (s AccountStatus) String() string {
	return string(s)
}

// IsTerminal returns true if the account is in a terminal state
func (s AccountStatus) IsTerminal() bool {
	return s == AccountStatusPaid || s == AccountStatusCanceled
}

// CanReceivePayment returns true if payments can be posted in this status
func (s AccountStatus) CanReceivePayment() bool {
	return s == AccountStatusOpen || s == AccountStatusPartial
}

// InstallmentSpec describes one installment of a new account's schedule
type InstallmentSpec struct {
	InstallmentNumber int
	DueDate           time.Time
	Amount            decimal.Decimal
}

// FinancialAccount is a receivable or payable obligation tied to a contact,
// split into one or more installments. It is the aggregate root for the
// settlement engine: installments are owned exclusively by their account and
// are only ever mutated through ApplyPayment.
type FinancialAccount struct {
	shared.CompanyAggregateRoot
	Kind          AccountKind     `json:"kind"`
	ContactID     uuid.UUID       `json:"contact_id"`
	CategoryID    *uuid.UUID      `json:"category_id"`
	DepartmentID  *uuid.UUID      `json:"department_id"`
	BankAccountID *uuid.UUID      `json:"bank_account_id"` // default settlement account
	BudgetID      *uuid.UUID      `json:"budget_id"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	Description   string          `json:"description"`
	InvoiceNumber string          `json:"invoice_number"`
	IssueDate     time.Time       `json:"issue_date"` // date-only, UTC midnight
	Status        AccountStatus   `json:"status"`
	IsSettled     bool            `json:"is_settled"`
	Observations  string          `json:"observations"`
	CanceledAt    *time.Time      `json:"canceled_at"`
	CancelReason  string          `json:"cancel_reason"`
	Installments  []*Installment  `json:"installments"`
}

// NewFinancialAccount creates an account together with its installment
// schedule in one shot. The schedule is mandatory and its amounts must sum to
// the account total; that invariant holds for the account's entire life.
func NewFinancialAccount(
	companyID uuid.UUID,
	kind AccountKind,
	contactID uuid.UUID,
	totalAmount valueobject.Money,
	description string,
	issueDate time.Time,
	schedule []InstallmentSpec,
) (*FinancialAccount, error) {
	if !kind.IsValid() {
		return nil, shared.NewDomainError("INVALID_KIND", "Account kind must be receivable or payable")
	}
	if contactID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CONTACT", "Contact ID cannot be empty")
	}
	if totalAmount.Amount().LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Total amount must be positive")
	}
	if len(schedule) == 0 {
		return nil, shared.NewDomainError("INVALID_SCHEDULE", "At least one installment is required")
	}

	if description == "" {
		description = "Sem descrição"
	}

	fa := &FinancialAccount{
		CompanyAggregateRoot: shared.NewCompanyAggregateRoot(companyID),
		Kind:                 kind,
		ContactID:            contactID,
		TotalAmount:          totalAmount.Amount(),
		Description:          description,
		IssueDate:            issueDate,
		Status:               AccountStatusOpen,
		IsSettled:            false,
		Installments:         make([]*Installment, 0, len(schedule)),
	}

	seen := make(map[int]bool, len(schedule))
	sum := decimal.Zero
	for _, spec := range schedule {
		if seen[spec.InstallmentNumber] {
			return nil, shared.NewDomainError("DUPLICATE_INSTALLMENT_NUMBER",
				fmt.Sprintf("Installment number %d appears more than once", spec.InstallmentNumber))
		}
		seen[spec.InstallmentNumber] = true

		inst, err := NewInstallment(companyID, fa.ID, spec.InstallmentNumber, spec.DueDate, spec.Amount)
		if err != nil {
			return nil, err
		}
		fa.Installments = append(fa.Installments, inst)
		sum = sum.Add(spec.Amount)
	}

	if !sum.Equal(totalAmount.Amount()) {
		return nil, shared.NewDomainError("SCHEDULE_MISMATCH",
			fmt.Sprintf("Installment amounts sum to %s but account total is %s", sum.String(), totalAmount.Amount().String()))
	}

	fa.AddDomainEvent(NewFinancialAccountCreatedEvent(fa))

	return fa, nil
}

// InstallmentByID returns the owned installment with the given id, or nil
func (fa *FinancialAccount) InstallmentByID(id uuid.UUID) *Installment {
	for _, inst := range fa.Installments {
		if inst.ID == id {
			return inst
		}
	}
	return nil
}

// PaidTotal returns the sum of all installments' paid totals
func (fa *FinancialAccount) PaidTotal() decimal.Decimal {
	sum := decimal.Zero
	for _, inst := range fa.Installments {
		sum = sum.Add(inst.PaidTotal)
	}
	return sum
}

// Outstanding returns the total unpaid balance across all installments
func (fa *FinancialAccount) Outstanding() decimal.Decimal {
	sum := decimal.Zero
	for _, inst := range fa.Installments {
		sum = sum.Add(inst.Outstanding())
	}
	return sum
}

// ApplyPayment allocates a payment across the account's installments and
// recomputes settlement state. Allocation order is FIFO by due date with the
// optional target installment serviced first; any remainder beyond the open
// balance stays unallocated. Returns the applied allocations.
func (fa *FinancialAccount) ApplyPayment(paidAmount decimal.Decimal, targetInstallmentID *uuid.UUID) ([]Allocation, error) {
	if !fa.Status.CanReceivePayment() {
		return nil, shared.NewDomainError("INVALID_STATE",
			fmt.Sprintf("Cannot post a payment to an account in %s status", fa.Status))
	}
	if paidAmount.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Payment amount must be positive")
	}
	if targetInstallmentID != nil && fa.InstallmentByID(*targetInstallmentID) == nil {
		return nil, shared.NewDomainError("INSTALLMENT_MISMATCH", "Installment does not belong to this financial account")
	}

	allocations := AllocatePayment(fa.Installments, paidAmount, targetInstallmentID)
	for _, alloc := range allocations {
		fa.InstallmentByID(alloc.InstallmentID).applySettlement(alloc.Amount)
	}

	fa.RecomputeStatus()
	fa.UpdatedAt = time.Now()
	fa.IncrementVersion()

	if fa.IsSettled {
		fa.AddDomainEvent(NewFinancialAccountSettledEvent(fa))
	} else {
		fa.AddDomainEvent(NewFinancialAccountPaymentAppliedEvent(fa, paidAmount))
	}

	return allocations, nil
}

// RecomputeStatus re-derives account status and IsSettled from the sum of the
// installments' paid totals. Canceled is terminal and never recomputed away.
func (fa *FinancialAccount) RecomputeStatus() {
	if fa.Status == AccountStatusCanceled {
		return
	}
	paid := fa.PaidTotal()
	switch {
	case paid.GreaterThanOrEqual(fa.TotalAmount):
		fa.Status = AccountStatusPaid
		fa.IsSettled = true
	case paid.IsPositive():
		fa.Status = AccountStatusPartial
		fa.IsSettled = false
	default:
		fa.Status = AccountStatusOpen
		fa.IsSettled = false
	}
}

// Cancel soft-cancels the account. Paid accounts cannot be canceled and
// accounts are never deleted.
func (fa *FinancialAccount) Cancel(reason string) error {
	if fa.Status.IsTerminal() {
		return shared.NewDomainError("INVALID_STATE",
			fmt.Sprintf("Cannot cancel an account in %s status", fa.Status))
	}

	now := time.Now()
	fa.Status = AccountStatusCanceled
	fa.CanceledAt = &now
	fa.CancelReason = reason
	fa.UpdatedAt = now
	fa.IncrementVersion()

	fa.AddDomainEvent(NewFinancialAccountCanceledEvent(fa))

	return nil
}

// MovementDirection returns the cash direction a settlement of this account
// produces: receivables bring money in, payables send money out.
func (fa *FinancialAccount) MovementDirection() string {
	if fa.Kind == AccountKindReceivable {
		return "in"
	}
	return "out"
}

// SettlementDescription builds the description carried by posted movements
func (fa *FinancialAccount) SettlementDescription() string {
	prefix := "Pagamento: "
	if fa.Kind == AccountKindReceivable {
		prefix = "Recebimento: "
	}
	desc := fa.Description
	if desc == "" {
		desc = "Conta financeira"
	}
	return prefix + desc
}

// GetTotalAmountMoney returns total amount as Money
func (fa *FinancialAccount) GetTotalAmountMoney() valueobject.Money {
	return valueobject.NewMoneyBRL(fa.TotalAmount)
}
