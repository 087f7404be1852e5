package treasury

import (
	"context"
	"time"

	"github.com/finbooks/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// MovementFilter narrows movement listings
type MovementFilter struct {
	shared.Filter
	Direction     *MovementDirection
	BankAccountID *uuid.UUID
	From          *time.Time
	To            *time.Time
}

// MovementTotals aggregates realized movements by direction
type MovementTotals struct {
	InCents  int64
	OutCents int64
}

// NetCents returns inflows minus outflows
func (t MovementTotals) NetCents() int64 {
	return t.InCents - t.OutCents
}

// BankAccountRepository persists bank accounts
type BankAccountRepository interface {
	Create(ctx context.Context, account *BankAccount) error
	Update(ctx context.Context, account *BankAccount) error
	FindByID(ctx context.Context, companyID, id uuid.UUID) (*BankAccount, error)
	List(ctx context.Context, companyID uuid.UUID, filter shared.Filter) (*shared.Paginated[*BankAccount], error)
	ExistsByID(ctx context.Context, companyID, id uuid.UUID) (bool, error)
	// SumActiveOpeningBalances sums opening balances of active accounts
	SumActiveOpeningBalances(ctx context.Context, companyID uuid.UUID) (int64, error)
}

// MovementRepository persists cash ledger entries
type MovementRepository interface {
	Create(ctx context.Context, movement *Movement) error
	FindByID(ctx context.Context, companyID, id uuid.UUID) (*Movement, error)
	List(ctx context.Context, companyID uuid.UUID, filter MovementFilter) (*shared.Paginated[*Movement], error)
	// RealizedTotals sums realized movements per direction, optionally scoped
	// to a bank account and to entries up to a cutoff date
	RealizedTotals(ctx context.Context, companyID uuid.UUID, bankAccountID *uuid.UUID, until *time.Time) (MovementTotals, error)
}
