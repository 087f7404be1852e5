package finance

import (
	"github.com/finbooks/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Event types for the finance domain
const (
	EventTypeFinancialAccountCreated        = "finance.financial_account.created"
	EventTypeFinancialAccountPaymentApplied = "finance.financial_account.payment_applied"
	EventTypeFinancialAccountSettled        = "finance.financial_account.settled"
	EventTypeFinancialAccountCanceled       = "finance.financial_account.canceled"
	EventTypePaymentPosted                  = "finance.payment.posted"
)

// FinancialAccountCreatedEvent is raised when a new account is created
type FinancialAccountCreatedEvent struct {
	shared.BaseDomainEvent
	Kind        AccountKind     `json:"kind"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

// NewFinancialAccountCreatedEvent creates a new FinancialAccountCreatedEvent
func NewFinancialAccountCreatedEvent(fa *FinancialAccount) *FinancialAccountCreatedEvent {
	return &FinancialAccountCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(
			EventTypeFinancialAccountCreated, "FinancialAccount", fa.ID, fa.CompanyID),
		Kind:        fa.Kind,
		TotalAmount: fa.TotalAmount,
	}
}

// FinancialAccountPaymentAppliedEvent is raised when a payment is applied
// without fully settling the account
type FinancialAccountPaymentAppliedEvent struct {
	shared.BaseDomainEvent
	PaidAmount decimal.Decimal `json:"paid_amount"`
	PaidTotal  decimal.Decimal `json:"paid_total"`
	Status     AccountStatus   `json:"status"`
}

// NewFinancialAccountPaymentAppliedEvent creates a new FinancialAccountPaymentAppliedEvent
func NewFinancialAccountPaymentAppliedEvent(fa *FinancialAccount, paidAmount decimal.Decimal) *FinancialAccountPaymentAppliedEvent {
	return &FinancialAccountPaymentAppliedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(
			EventTypeFinancialAccountPaymentApplied, "FinancialAccount", fa.ID, fa.CompanyID),
		PaidAmount: paidAmount,
		PaidTotal:  fa.PaidTotal(),
		Status:     fa.Status,
	}
}

// FinancialAccountSettledEvent is raised when an account becomes fully paid
type FinancialAccountSettledEvent struct {
	shared.BaseDomainEvent
	TotalAmount decimal.Decimal `json:"total_amount"`
	PaidTotal   decimal.Decimal `json:"paid_total"`
}

// NewFinancialAccountSettledEvent creates a new FinancialAccountSettledEvent
func NewFinancialAccountSettledEvent(fa *FinancialAccount) *FinancialAccountSettledEvent {
	return &FinancialAccountSettledEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(
			EventTypeFinancialAccountSettled, "FinancialAccount", fa.ID, fa.CompanyID),
		TotalAmount: fa.TotalAmount,
		PaidTotal:   fa.PaidTotal(),
	}
}

// FinancialAccountCanceledEvent is raised when an account is canceled
type FinancialAccountCanceledEvent struct {
	shared.BaseDomainEvent
	Reason string `json:"reason"`
}

// NewFinancialAccountCanceledEvent creates a new FinancialAccountCanceledEvent
func NewFinancialAccountCanceledEvent(fa *FinancialAccount) *FinancialAccountCanceledEvent {
	return &FinancialAccountCanceledEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(
			EventTypeFinancialAccountCanceled, "FinancialAccount", fa.ID, fa.CompanyID),
		Reason: fa.CancelReason,
	}
}

// PaymentPostedEvent is raised when a payment record is persisted
type PaymentPostedEvent struct {
	shared.BaseDomainEvent
	PaidAmount decimal.Decimal `json:"paid_amount"`
	Interest   decimal.Decimal `json:"interest"`
	Discount   decimal.Decimal `json:"discount"`
}

// NewPaymentPostedEvent creates a new PaymentPostedEvent
func NewPaymentPostedEvent(p *Payment) *PaymentPostedEvent {
	return &PaymentPostedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(
			EventTypePaymentPosted, "Payment", p.ID, p.CompanyID),
		PaidAmount: p.PaidAmount,
		Interest:   p.Interest,
		Discount:   p.Discount,
	}
}
