package finance

import (
	"time"

	"github.com/finbooks/backend/internal/domain/finance"
	"github.com/finbooks/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ParseDateOnly parses a YYYY-MM-DD (or RFC3339) string into a UTC midnight
// timestamp. Day boundaries are always UTC so due-date bucketing stays
// deterministic regardless of caller locale.
func ParseDateOnly(value string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, shared.NewDomainError("INVALID_DATE", "Date must be YYYY-MM-DD or RFC3339")
	}
	return time.Date(t.UTC().Year(), t.UTC().Month(), t.UTC().Day(), 0, 0, 0, 0, time.UTC), nil
}

// TodayUTC returns the current UTC calendar day at midnight
func TodayUTC() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// InstallmentInput is one installment of a new account's schedule
type InstallmentInput struct {
	InstallmentNumber int    `json:"installmentNumber" binding:"required,min=1"`
	DueDate           string `json:"dueDate" binding:"required"`
	Amount            string `json:"amount" binding:"required"`
}

// CreateAccountRequest creates a financial account with its schedule
type CreateAccountRequest struct {
	Kind          string             `json:"kind" binding:"required,oneof=receivable payable"`
	ContactID     uuid.UUID          `json:"contactId" binding:"required"`
	CategoryID    *uuid.UUID         `json:"categoryId"`
	DepartmentID  *uuid.UUID         `json:"departmentId"`
	BankAccountID *uuid.UUID         `json:"bankAccountId"`
	TotalAmount   string             `json:"totalAmount" binding:"required"`
	Description   string             `json:"description"`
	InvoiceNumber string             `json:"invoiceNumber"`
	IssueDate     string             `json:"issueDate" binding:"required"`
	Observations  string             `json:"observations"`
	Installments  []InstallmentInput `json:"installments" binding:"required,min=1,dive"`
}

// PostPaymentRequest posts one payment against a financial account
type PostPaymentRequest struct {
	FinancialAccountID uuid.UUID  `json:"financialAccountId" binding:"required"`
	InstallmentID      *uuid.UUID `json:"installmentId"`
	BankAccountID      *uuid.UUID `json:"bankAccountId"`
	PaymentDate        string     `json:"paymentDate" binding:"required"`
	PaidAmount         string     `json:"paidAmount" binding:"required"`
	Interest           string     `json:"interest"`
	Discount           string     `json:"discount"`
	Notes              string     `json:"notes"`
}

// SettleInstallmentRequest settles (part of) a single installment
type SettleInstallmentRequest struct {
	PaidAmount    string     `json:"paidAmount" binding:"required"`
	PaymentDate   string     `json:"paymentDate"`
	BankAccountID *uuid.UUID `json:"bankAccountId"`
	Notes         string     `json:"notes"`
}

// CancelAccountRequest cancels a financial account
type CancelAccountRequest struct {
	Reason string `json:"reason"`
}

// InstallmentResponse is the API shape of an installment
type InstallmentResponse struct {
	ID                 uuid.UUID `json:"id"`
	FinancialAccountID uuid.UUID `json:"financialAccountId"`
	InstallmentNumber  int       `json:"installmentNumber"`
	DueDate            string    `json:"dueDate"`
	Amount             string    `json:"amount"`
	PaidTotal          string    `json:"paidTotal"`
	Status             string    `json:"status"`
}

// InstallmentAccountSummary carries the installment count of one account
type InstallmentAccountSummary struct {
	FinancialAccountID uuid.UUID `json:"financialAccountId"`
	TotalInstallments  int64     `json:"totalInstallments"`
}

// AccountResponse is the API shape of a financial account
type AccountResponse struct {
	ID            uuid.UUID             `json:"id"`
	Kind          string                `json:"kind"`
	ContactID     uuid.UUID             `json:"contactId"`
	CategoryID    *uuid.UUID            `json:"categoryId"`
	DepartmentID  *uuid.UUID            `json:"departmentId"`
	BankAccountID *uuid.UUID            `json:"bankAccountId"`
	BudgetID      *uuid.UUID            `json:"budgetId"`
	TotalAmount   string                `json:"totalAmount"`
	Description   string                `json:"description"`
	InvoiceNumber string                `json:"invoiceNumber"`
	IssueDate     string                `json:"issueDate"`
	Status        string                `json:"status"`
	IsSettled     bool                  `json:"isSettled"`
	Observations  string                `json:"observations"`
	CreatedAt     time.Time             `json:"createdAt"`
	Installments  []InstallmentResponse `json:"installments,omitempty"`
}

// PaymentResponse is the API shape of a payment record
type PaymentResponse struct {
	ID                 uuid.UUID  `json:"id"`
	FinancialAccountID uuid.UUID  `json:"financialAccountId"`
	InstallmentID      *uuid.UUID `json:"installmentId"`
	BankAccountID      *uuid.UUID `json:"bankAccountId"`
	PaymentDate        string     `json:"paymentDate"`
	PaidAmount         string     `json:"paidAmount"`
	Interest           string     `json:"interest"`
	Discount           string     `json:"discount"`
	Notes              string     `json:"notes"`
	CreatedAt          time.Time  `json:"createdAt"`
}

// PostPaymentResult is returned by the posting orchestrator: the payment
// record plus the account state and allocations it produced
type PostPaymentResult struct {
	Payment     PaymentResponse      `json:"payment"`
	Account     AccountResponse      `json:"financialAccount"`
	Allocations []AllocationResponse `json:"allocations"`
	MovementID  *uuid.UUID           `json:"movementId"`
}

// AllocationResponse is one applied allocation slice
type AllocationResponse struct {
	InstallmentID uuid.UUID `json:"installmentId"`
	Amount        string    `json:"amount"`
}

// ToInstallmentResponse maps a domain installment to its API shape
func ToInstallmentResponse(inst *finance.Installment) InstallmentResponse {
	return InstallmentResponse{
		ID:                 inst.ID,
		FinancialAccountID: inst.FinancialAccountID,
		InstallmentNumber:  inst.InstallmentNumber,
		DueDate:            inst.DueDate.Format("2006-01-02"),
		Amount:             inst.Amount.StringFixed(2),
		PaidTotal:          inst.PaidTotal.StringFixed(2),
		Status:             inst.Status.String(),
	}
}

// ToAccountResponse maps a domain account to its API shape
func ToAccountResponse(fa *finance.FinancialAccount, withInstallments bool) AccountResponse {
	resp := AccountResponse{
		ID:            fa.ID,
		Kind:          fa.Kind.String(),
		ContactID:     fa.ContactID,
		CategoryID:    fa.CategoryID,
		DepartmentID:  fa.DepartmentID,
		BankAccountID: fa.BankAccountID,
		BudgetID:      fa.BudgetID,
		TotalAmount:   fa.TotalAmount.StringFixed(2),
		Description:   fa.Description,
		InvoiceNumber: fa.InvoiceNumber,
		IssueDate:     fa.IssueDate.Format("2006-01-02"),
		Status:        fa.Status.String(),
		IsSettled:     fa.IsSettled,
		Observations:  fa.Observations,
		CreatedAt:     fa.CreatedAt,
	}
	if withInstallments {
		resp.Installments = make([]InstallmentResponse, 0, len(fa.Installments))
		for _, inst := range fa.Installments {
			resp.Installments = append(resp.Installments, ToInstallmentResponse(inst))
		}
	}
	return resp
}

// ToPaymentResponse maps a domain payment to its API shape
func ToPaymentResponse(p *finance.Payment) PaymentResponse {
	return PaymentResponse{
		ID:                 p.ID,
		FinancialAccountID: p.FinancialAccountID,
		InstallmentID:      p.TargetInstallmentID,
		BankAccountID:      p.BankAccountID,
		PaymentDate:        p.PaymentDate.Format("2006-01-02"),
		PaidAmount:         p.PaidAmount.StringFixed(2),
		Interest:           p.Interest.StringFixed(2),
		Discount:           p.Discount.StringFixed(2),
		Notes:              p.Notes,
		CreatedAt:          p.CreatedAt,
	}
}

// parseAmount parses a required positive decimal amount field
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
