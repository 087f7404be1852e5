package finance

import (
	"context"
	"time"

	"github.com/finbooks/backend/internal/domain/finance"
	"github.com/finbooks/backend/internal/domain/shared"
	"github.com/finbooks/backend/internal/domain/treasury"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) Create(ctx context.Context, account *finance.FinancialAccount) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) Update(ctx context.Context, account *finance.FinancialAccount) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) FindByID(ctx context.Context, companyID, id uuid.UUID) (*finance.FinancialAccount, error) {
	args := m.Called(ctx, companyID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*finance.FinancialAccount), args.Error(1)
}

func (m *MockAccountRepository) FindByIDForUpdate(ctx context.Context, companyID, id uuid.UUID) (*finance.FinancialAccount, error) {
	args := m.Called(ctx, companyID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*finance.FinancialAccount), args.Error(1)
}

func (m *MockAccountRepository) List(ctx context.Context, companyID uuid.UUID, filter finance.AccountFilter) (*shared.Paginated[*finance.FinancialAccount], error) {
	args := m.Called(ctx, companyID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shared.Paginated[*finance.FinancialAccount]), args.Error(1)
}

func (m *MockAccountRepository) ExistsByID(ctx context.Context, companyID, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, companyID, id)
	return args.Bool(0), args.Error(1)
}

type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) Create(ctx context.Context, payment *finance.Payment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

func (m *MockPaymentRepository) FindByID(ctx context.Context, companyID, id uuid.UUID) (*finance.Payment, error) {
	args := m.Called(ctx, companyID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*finance.Payment), args.Error(1)
}

func (m *MockPaymentRepository) List(ctx context.Context, companyID uuid.UUID, filter finance.PaymentFilter) (*shared.Paginated[*finance.Payment], error) {
	args := m.Called(ctx, companyID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shared.Paginated[*finance.Payment]), args.Error(1)
}

type MockMovementRepository struct {
	mock.Mock
}

func (m *MockMovementRepository) Create(ctx context.Context, movement *treasury.Movement) error {
	args := m.Called(ctx, movement)
	return args.Error(0)
}

func (m *MockMovementRepository) FindByID(ctx context.Context, companyID, id uuid.UUID) (*treasury.Movement, error) {
	args := m.Called(ctx, companyID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*treasury.Movement), args.Error(1)
}

func (m *MockMovementRepository) List(ctx context.Context, companyID uuid.UUID, filter treasury.MovementFilter) (*shared.Paginated[*treasury.Movement], error) {
	args := m.Called(ctx, companyID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shared.Paginated[*treasury.Movement]), args.Error(1)
}

func (m *MockMovementRepository) RealizedTotals(ctx context.Context, companyID uuid.UUID, bankAccountID *uuid.UUID, until *time.Time) (treasury.MovementTotals, error) {
	args := m.Called(ctx, companyID, bankAccountID, until)
	return args.Get(0).(treasury.MovementTotals), args.Error(1)
}

type MockBankAccountRepository struct {
	mock.Mock
}

func (m *MockBankAccountRepository) Create(ctx context.Context, account *treasury.BankAccount) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockBankAccountRepository) Update(ctx context.Context, account *treasury.BankAccount) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockBankAccountRepository) FindByID(ctx context.Context, companyID, id uuid.UUID) (*treasury.BankAccount, error) {
	args := m.Called(ctx, companyID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*treasury.BankAccount), args.Error(1)
}

func (m *MockBankAccountRepository) List(ctx context.Context, companyID uuid.UUID, filter shared.Filter) (*shared.Paginated[*treasury.BankAccount], error) {
	args := m.Called(ctx, companyID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shared.Paginated[*treasury.BankAccount]), args.Error(1)
}

func (m *MockBankAccountRepository) ExistsByID(ctx context.Context, companyID, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, companyID, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockBankAccountRepository) SumActiveOpeningBalances(ctx context.Context, companyID uuid.UUID) (int64, error) {
	args := m.Called(ctx, companyID)
	return args.Get(0).(int64), args.Error(1)
}

type MockInstallmentReadRepository struct {
	mock.Mock
}

func (m *MockInstallmentReadRepository) FindByID(ctx context.Context, companyID, id uuid.UUID) (*finance.Installment, error) {
	args := m.Called(ctx, companyID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*finance.Installment), args.Error(1)
}

func (m *MockInstallmentReadRepository) List(ctx context.Context, companyID uuid.UUID, filter finance.InstallmentFilter) (*shared.Paginated[*finance.Installment], error) {
	args := m.Called(ctx, companyID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shared.Paginated[*finance.Installment]), args.Error(1)
}

func (m *MockInstallmentReadRepository) CountByAccounts(ctx context.Context, companyID uuid.UUID, accountIDs []uuid.UUID) (map[uuid.UUID]int64, error) {
	args := m.Called(ctx, companyID, accountIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[uuid.UUID]int64), args.Error(1)
}

func (m *MockInstallmentReadRepository) OutstandingDueBefore(ctx context.Context, companyID uuid.UUID, limit time.Time) ([]finance.CashFlowRow, error) {
	args := m.Called(ctx, companyID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]finance.CashFlowRow), args.Error(1)
}
