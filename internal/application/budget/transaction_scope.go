package budget

import (
	"context"

	"github.com/finbooks/backend/internal/domain/budget"
	"github.com/finbooks/backend/internal/domain/finance"
)

// TransactionScope provides transactional access to the approval repositories.
// Approving a budget writes the budget and the receivable account it
// materializes in one atomic step.
type TransactionScope interface {
	// Execute runs the given function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides access to the approval repositories
// within a transaction. All repositories share the same underlying database
// transaction.
type TransactionalRepositories interface {
	// BudgetRepo returns the budget repository scoped to the current transaction
	BudgetRepo() budget.BudgetRepository
	// AccountRepo returns the financial account repository scoped to the current transaction
	AccountRepo() finance.FinancialAccountRepository
}

// NoOpTransactionScope is a transaction scope that doesn't actually use
// transactions. Useful for testing.
type NoOpTransactionScope struct {
	budgetRepo  budget.BudgetRepository
	accountRepo finance.FinancialAccountRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope with the given repositories.
func NewNoOpTransactionScope(
	budgetRepo budget.BudgetRepository,
	accountRepo finance.FinancialAccountRepository,
) *NoOpTransactionScope {
	return &NoOpTransactionScope{budgetRepo: budgetRepo, accountRepo: accountRepo}
}

// Execute runs the function without a real transaction.
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// BudgetRepo returns the budget repository.
func (s *NoOpTransactionScope) BudgetRepo() budget.BudgetRepository {
	return s.budgetRepo
}

// AccountRepo returns the financial account repository.
func (s *NoOpTransactionScope) AccountRepo() finance.FinancialAccountRepository {
	return s.accountRepo
}
