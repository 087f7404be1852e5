package persistence

import (
	"context"

	appfinance "github.com/finbooks/backend/internal/application/finance"
	"github.com/finbooks/backend/internal/domain/finance"
	"github.com/finbooks/backend/internal/domain/treasury"
	"gorm.io/gorm"
)

// GormTransactionScope implements the settlement TransactionScope using GORM
// transactions. Posting a payment mutates the account aggregate, appends a
// payment and a movement; all of it commits or rolls back together.
type GormTransactionScope struct {
	db *gorm.DB
}

// NewGormTransactionScope creates a new GormTransactionScope.
func NewGormTransactionScope(db *gorm.DB) *GormTransactionScope {
	return &GormTransactionScope{db: db}
}

// Execute runs the given function within a database transaction.
// If the function returns an error, the transaction is rolled back.
// If the function succeeds, the transaction is committed.
func (s *GormTransactionScope) Execute(ctx context.Context, fn func(repos appfinance.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repos := &gormSettlementRepositories{tx: tx}
		return fn(repos)
	})
}

// gormSettlementRepositories provides access to the settlement repositories
// within a transaction.
type gormSettlementRepositories struct {
	tx *gorm.DB
}

// AccountRepo returns the financial account repository scoped to the current transaction.
func (r *gormSettlementRepositories) AccountRepo() finance.FinancialAccountRepository {
	return NewGormFinancialAccountRepository(r.tx)
}

// PaymentRepo returns the payment repository scoped to the current transaction.
func (r *gormSettlementRepositories) PaymentRepo() finance.PaymentRepository {
	return NewGormPaymentRepository(r.tx)
}

// MovementRepo returns the movement repository scoped to the current transaction.
func (r *gormSettlementRepositories) MovementRepo() treasury.MovementRepository {
	return NewGormMovementRepository(r.tx)
}

// BankAccountRepo returns the bank account repository scoped to the current transaction.
func (r *gormSettlementRepositories) BankAccountRepo() treasury.BankAccountRepository {
	return NewGormBankAccountRepository(r.tx)
}

// Ensure GormTransactionScope implements TransactionScope
var _ appfinance.TransactionScope = (*GormTransactionScope)(nil)

// Ensure gormSettlementRepositories implements TransactionalRepositories
var _ appfinance.TransactionalRepositories = (*gormSettlementRepositories)(nil)
