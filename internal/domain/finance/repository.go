package finance

import (
	"context"
	"time"

	"github.com/finbooks/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AccountFilter narrows financial account listings
type AccountFilter struct {
	shared.Filter
	Kind         *AccountKind
	Status       *AccountStatus
	ContactID    *uuid.UUID
	CategoryID   *uuid.UUID
	DepartmentID *uuid.UUID
	DueFrom      *time.Time
	DueTo        *time.Time
}

// InstallmentFilter narrows installment listings
type InstallmentFilter struct {
	shared.Filter
	FinancialAccountID *uuid.UUID
	Status             *InstallmentStatus
	Kind               *AccountKind // filters by the parent account's kind
	DueFrom            *time.Time
	DueTo              *time.Time
	OverdueOnly        bool
}

// PaymentFilter narrows payment listings
type PaymentFilter struct {
	shared.Filter
	FinancialAccountID *uuid.UUID
	DateFrom           *time.Time
	DateTo             *time.Time
}

// CashFlowRow is one installment slice feeding the cash-flow projection:
// the outstanding balance of an installment of a non-canceled account.
type CashFlowRow struct {
	DueDate     time.Time
	Kind        AccountKind
	Outstanding decimal.Decimal
}

// FinancialAccountRepository persists FinancialAccount aggregates together
// with their installments
type FinancialAccountRepository interface {
	Create(ctx context.Context, account *FinancialAccount) error
	// Update persists the aggregate root and all of its installments
	Update(ctx context.Context, account *FinancialAccount) error
	FindByID(ctx context.Context, companyID, id uuid.UUID) (*FinancialAccount, error)
	// FindByIDForUpdate loads the aggregate under a row lock; only valid
	// inside a transaction scope
	FindByIDForUpdate(ctx context.Context, companyID, id uuid.UUID) (*FinancialAccount, error)
	List(ctx context.Context, companyID uuid.UUID, filter AccountFilter) (*shared.Paginated[*FinancialAccount], error)
	ExistsByID(ctx context.Context, companyID, id uuid.UUID) (bool, error)
}

// PaymentRepository persists immutable payment records
type PaymentRepository interface {
	Create(ctx context.Context, payment *Payment) error
	FindByID(ctx context.Context, companyID, id uuid.UUID) (*Payment, error)
	List(ctx context.Context, companyID uuid.UUID, filter PaymentFilter) (*shared.Paginated[*Payment], error)
}

// InstallmentReadRepository offers cross-account installment queries.
// Writes always go through the FinancialAccount aggregate.
type InstallmentReadRepository interface {
	FindByID(ctx context.Context, companyID, id uuid.UUID) (*Installment, error)
	List(ctx context.Context, companyID uuid.UUID, filter InstallmentFilter) (*shared.Paginated[*Installment], error)
	// OutstandingDueBefore returns one row per installment that still carries
	// balance on a non-canceled account and is due strictly before the limit
	OutstandingDueBefore(ctx context.Context, companyID uuid.UUID, limit time.Time) ([]CashFlowRow, error)
	// CountByAccounts aggregates installment counts per financial account,
	// restricted to the given account IDs
	CountByAccounts(ctx context.Context, companyID uuid.UUID, accountIDs []uuid.UUID) (map[uuid.UUID]int64, error)
}
