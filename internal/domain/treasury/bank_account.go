package treasury

import (
	"time"

	"github.com/finbooks/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// BankAccountType classifies a bank account
type BankAccountType string

const (
	BankAccountTypeChecking BankAccountType = "checking"
	BankAccountTypeSavings  BankAccountType = "savings"
	BankAccountTypeCash     BankAccountType = "cash"
)

// IsValid checks if the type is a valid BankAccountType
func (t BankAccountType) IsValid() bool {
	switch t {
	case BankAccountTypeChecking, BankAccountTypeSavings, BankAccountTypeCash:
		return true
	}
	return false
}

// String returns the string representation of BankAccountType
func (t BankAccountType) String() string {
	return string(t)
}

// NormalizeBankAccountType maps free-form input to a known type, defaulting
// to checking
func NormalizeBankAccountType(s string) BankAccountType {
	switch BankAccountType(s) {
	case BankAccountTypeSavings:
		return BankAccountTypeSavings
	case BankAccountTypeCash:
		return BankAccountTypeCash
	default:
		return BankAccountTypeChecking
	}
}

// BankAccount is a company cash account that movements settle through.
// Its current balance is never stored: it is always derived from the opening
// balance plus realized movements.
type BankAccount struct {
	shared.CompanyAggregateRoot
	Name                string          `json:"name"`
	Institution         string          `json:"institution"`
	AccountType         BankAccountType `json:"account_type"`
	Agency              string          `json:"agency"`
	AccountNumber       string          `json:"account_number"`
	OpeningBalanceCents int64           `json:"opening_balance_cents"`
	OpeningBalanceDate  *time.Time      `json:"opening_balance_date"` // date-only, UTC midnight
	IsActive            bool            `json:"is_active"`
}

// NewBankAccount creates an active bank account
func NewBankAccount(companyID uuid.UUID, name, institution string, accountType BankAccountType) (*BankAccount, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Bank account name cannot be empty")
	}
	if !accountType.IsValid() {
		accountType = BankAccountTypeChecking
	}
	return &BankAccount{
		CompanyAggregateRoot: shared.NewCompanyAggregateRoot(companyID),
		Name:                 name,
		Institution:          institution,
		AccountType:          accountType,
		IsActive:             true,
	}, nil
}

// SetOpeningBalance records the opening balance and the date it was taken
func (b *BankAccount) SetOpeningBalance(cents int64, date *time.Time) {
	b.OpeningBalanceCents = cents
	b.OpeningBalanceDate = date
	b.UpdatedAt = time.Now()
	b.IncrementVersion()
}

// Deactivate hides the account from settlement without losing its history
func (b *BankAccount) Deactivate() {
	b.IsActive = false
	b.UpdatedAt = time.Now()
	b.IncrementVersion()
}

// Activate re-enables the account
func (b *BankAccount) Activate() {
	b.IsActive = true
	b.UpdatedAt = time.Now()
	b.IncrementVersion()
}

// BankAccountBalance pairs an account with its derived current balance
type BankAccountBalance struct {
	Account           *BankAccount
	MovementsInCents  int64
	MovementsOutCents int64
}

// CurrentBalanceCents returns opening balance plus realized inflows minus
// realized outflows
func (b BankAccountBalance) CurrentBalanceCents() int64 {
	return b.Account.OpeningBalanceCents + b.MovementsInCents - b.MovementsOutCents
}
