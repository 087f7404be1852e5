package persistence

import (
	"context"

	appbudget "github.com/finbooks/backend/internal/application/budget"
	"github.com/finbooks/backend/internal/domain/budget"
	"github.com/finbooks/backend/internal/domain/finance"
	"gorm.io/gorm"
)

// GormBudgetTransactionScope implements the budget TransactionScope using GORM
// transactions. Approval flips the budget status and creates the receivable
// account atomically.
type GormBudgetTransactionScope struct {
	db *gorm.DB
}

// NewGormBudgetTransactionScope creates a new GormBudgetTransactionScope.
func NewGormBudgetTransactionScope(db *gorm.DB) *GormBudgetTransactionScope {
	return &GormBudgetTransactionScope{db: db}
}

// Execute runs the given function within a database transaction.
func (s *GormBudgetTransactionScope) Execute(ctx context.Context, fn func(repos appbudget.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repos := &gormBudgetRepositories{tx: tx}
		return fn(repos)
	})
}

// gormBudgetRepositories provides access to the approval repositories within
// a transaction.
type gormBudgetRepositories struct {
	tx *gorm.DB
}

// BudgetRepo returns the budget repository scoped to the current transaction.
func (r *gormBudgetRepositories) BudgetRepo() budget.BudgetRepository {
	return NewGormBudgetRepository(r.tx)
}

// AccountRepo returns the financial account repository scoped to the current transaction.
func (r *gormBudgetRepositories) AccountRepo() finance.FinancialAccountRepository {
	return NewGormFinancialAccountRepository(r.tx)
}

// Ensure GormBudgetTransactionScope implements TransactionScope
var _ appbudget.TransactionScope = (*GormBudgetTransactionScope)(nil)

// Ensure gormBudgetRepositories implements TransactionalRepositories
var _ appbudget.TransactionalRepositories = (*gormBudgetRepositories)(nil)
