package treasury

import (
	"time"

	"github.com/finbooks/backend/internal/domain/shared"
	"github.com/finbooks/backend/internal/domain/treasury"
	"github.com/google/uuid"
)

// parseDateOnly parses a YYYY-MM-DD (or RFC3339) string into a UTC midnight
// timestamp
func parseDateOnly(value string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, shared.NewDomainError("INVALID_DATE", "Date must be YYYY-MM-DD or RFC3339")
	}
	return time.Date(t.UTC().Year(), t.UTC().Month(), t.UTC().Day(), 0, 0, 0, 0, time.UTC), nil
}

// CreateMovementRequest creates a manual cash ledger entry
type CreateMovementRequest struct {
	OccurredAt    string     `json:"occurredAt" binding:"required"`
	Description   string     `json:"description" binding:"max=2000"`
	AmountCents   int64      `json:"amountCents" binding:"required,min=1"`
	Direction     string     `json:"direction" binding:"required,oneof=in out"`
	CategoryID    *uuid.UUID `json:"categoryId"`
	BankAccountID *uuid.UUID `json:"bankAccountId"`
	ContactID     *uuid.UUID `json:"contactId"`
	DepartmentID  *uuid.UUID `json:"departmentId"`
}

// ListMovementsQuery narrows movement listings
type ListMovementsQuery struct {
	From   string
	To     string
	Limit  int
	Offset int
}

// MovementResponse is the API shape of a movement
type MovementResponse struct {
	ID            uuid.UUID  `json:"id"`
	Description   string     `json:"description"`
	AmountCents   int64      `json:"amountCents"`
	Direction     string     `json:"direction"`
	OccurredAt    string     `json:"occurredAt"`
	Status        string     `json:"status"`
	Source        string     `json:"source"`
	IsReconciled  bool       `json:"isReconciled"`
	BankAccountID *uuid.UUID `json:"bankAccountId"`
	PaymentID     *uuid.UUID `json:"paymentId"`
	CategoryID    *uuid.UUID `json:"categoryId"`
	ContactID     *uuid.UUID `json:"contactId"`
	DepartmentID  *uuid.UUID `json:"departmentId"`
	CreatedAt     time.Time  `json:"createdAt"`
}

// ToMovementResponse maps a domain movement to its API shape
func ToMovementResponse(m *treasury.Movement) MovementResponse {
	return MovementResponse{
		ID:            m.ID,
		Description:   m.Description,
		AmountCents:   m.AmountCents,
		Direction:     m.Direction.String(),
		OccurredAt:    m.OccurredAt.Format("2006-01-02"),
		Status:        string(m.Status),
		Source:        string(m.Source),
		IsReconciled:  m.IsReconciled,
		BankAccountID: m.BankAccountID,
		PaymentID:     m.PaymentID,
		CategoryID:    m.CategoryID,
		ContactID:     m.ContactID,
		DepartmentID:  m.DepartmentID,
		CreatedAt:     m.CreatedAt,
	}
}

// CreateBankAccountRequest creates a bank account
type CreateBankAccountRequest struct {
	Name                string  `json:"name" binding:"required"`
	Institution         string  `json:"institution"`
	AccountType         string  `json:"accountType"`
	Agency              string  `json:"agency"`
	AccountNumber       string  `json:"accountNumber"`
	OpeningBalanceCents int64   `json:"openingBalanceCents"`
	OpeningBalanceDate  *string `json:"openingBalanceDate"`
}

// UpdateBankAccountRequest partially updates a bank account
type UpdateBankAccountRequest struct {
	Name                *string `json:"name"`
	Institution         *string `json:"institution"`
	AccountType         *string `json:"accountType"`
	Agency              *string `json:"agency"`
	AccountNumber       *string `json:"accountNumber"`
	OpeningBalanceCents *int64  `json:"openingBalanceCents"`
	OpeningBalanceDate  *string `json:"openingBalanceDate"`
	IsActive            *bool   `json:"isActive"`
}

// BankAccountResponse is the API shape of a bank account
type BankAccountResponse struct {
	ID                  uuid.UUID `json:"id"`
	Name                string    `json:"name"`
	Institution         string    `json:"institution"`
	AccountType         string    `json:"accountType"`
	Agency              string    `json:"agency"`
	AccountNumber       string    `json:"accountNumber"`
	OpeningBalanceCents int64     `json:"openingBalanceCents"`
	OpeningBalanceDate  *string   `json:"openingBalanceDate"`
	IsActive            bool      `json:"isActive"`
	CreatedAt           time.Time `json:"createdAt"`
}

// BankAccountBalanceResponse adds the derived current balance
type BankAccountBalanceResponse struct {
	BankAccountResponse
	CurrentBalanceCents int64 `json:"currentBalanceCents"`
}

// BankBalancesResponse is the aggregated balances view
type BankBalancesResponse struct {
	TotalCashTodayCents      int64                        `json:"totalCashTodayCents"`
	OpeningBalanceTotalCents int64                        `json:"openingBalanceTotalCents"`
	MovementsInTotalCents    int64                        `json:"movementsInTotalCents"`
	MovementsOutTotalCents   int64                        `json:"movementsOutTotalCents"`
	Accounts                 []BankAccountBalanceResponse `json:"accounts"`
}

// ToBankAccountResponse maps a domain bank account to its API shape
func ToBankAccountResponse(b *treasury.BankAccount) BankAccountResponse {
	var openingDate *string
	if b.OpeningBalanceDate != nil {
		s := b.OpeningBalanceDate.Format("2006-01-02")
		openingDate = &s
	}
	return BankAccountResponse{
		ID:                  b.ID,
		Name:                b.Name,
		Institution:         b.Institution,
		AccountType:         b.AccountType.String(),
		Agency:              b.Agency,
		AccountNumber:       b.AccountNumber,
		OpeningBalanceCents: b.OpeningBalanceCents,
		OpeningBalanceDate:  openingDate,
		IsActive:            b.IsActive,
		CreatedAt:           b.CreatedAt,
	}
}

// CashTodayResponse is the company-wide cash position
type CashTodayResponse struct {
	OpeningBalanceTotalCents int64 `json:"openingBalanceTotalCents"`
	MovementsInTotalCents    int64 `json:"movementsInTotalCents"`
	MovementsOutTotalCents   int64 `json:"movementsOutTotalCents"`
	CashTodayCents           int64 `json:"cashTodayCents"`
}

// CashFlowDay is one day of the projection series
type CashFlowDay struct {
	Date               string `json:"date"`
	InCents            int64  `json:"inCents"`
	OutCents           int64  `json:"outCents"`
	NetCents           int64  `json:"netCents"`
	BalanceCents       int64  `json:"balanceCents"`
	BalanceWithOverdue int64  `json:"balanceWithOverdueCents"`
}

// CashFlowResponse is the full projection
type CashFlowResponse struct {
	CashTodayCents            int64         `json:"cashTodayCents"`
	OverdueInTotalCents       int64         `json:"overdueInTotalCents"`
	OverdueOutTotalCents      int64         `json:"overdueOutTotalCents"`
	CashTodayWithOverdueCents int64         `json:"cashTodayWithOverdueCents"`
	Days                      []CashFlowDay `json:"days"`
}
