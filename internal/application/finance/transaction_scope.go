package finance

import (
	"context"

	"github.com/finbooks/backend/internal/domain/finance"
	"github.com/finbooks/backend/internal/domain/treasury"
)

// TransactionScope provides transactional access to the settlement repositories.
// When a function is executed within a transaction scope, all repository operations
// will be part of the same database transaction and will be committed or rolled back atomically.
type TransactionScope interface {
	// Execute runs the given function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	// If the function succeeds, the transaction is committed.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides access to all settlement repositories within a transaction.
// All repositories returned share the same underlying database transaction.
//
// Aggregate boundary notes:
//   - AccountRepo: Repository for the FinancialAccount aggregate root. Installment
//     state changes are persisted through this repository when the aggregate is saved.
//   - PaymentRepo: Append-only repository for payment records.
//   - MovementRepo: Append-only repository for cash ledger entries posted by settlement.
//   - BankAccountRepo: Used only for existence checks when a payment designates a
//     settlement account.
type TransactionalRepositories interface {
	// AccountRepo returns the financial account repository scoped to the current transaction
	AccountRepo() finance.FinancialAccountRepository
	// PaymentRepo returns the payment repository scoped to the current transaction
	PaymentRepo() finance.PaymentRepository
	// MovementRepo returns the movement repository scoped to the current transaction
	MovementRepo() treasury.MovementRepository
	// BankAccountRepo returns the bank account repository scoped to the current transaction
	BankAccountRepo() treasury.BankAccountRepository
}

// NoOpTransactionScope is a transaction scope that doesn't actually use transactions.
// This is useful for testing or when transaction support is not required.
type NoOpTransactionScope struct {
	accountRepo     finance.FinancialAccountRepository
	paymentRepo     finance.PaymentRepository
	movementRepo    treasury.MovementRepository
	bankAccountRepo treasury.BankAccountRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope with the given repositories.
func NewNoOpTransactionScope(
	accountRepo finance.FinancialAccountRepository,
	paymentRepo finance.PaymentRepository,
	movementRepo treasury.MovementRepository,
	bankAccountRepo treasury.BankAccountRepository,
) *NoOpTransactionScope {
	return &NoOpTransactionScope{
		accountRepo:     accountRepo,
		paymentRepo:     paymentRepo,
		movementRepo:    movementRepo,
		bankAccountRepo: bankAccountRepo,
	}
}

// Execute runs the function without a real transaction (for testing/compatibility).
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// AccountRepo returns the financial account repository.
func (s *NoOpTransactionScope) AccountRepo() finance.FinancialAccountRepository {
	return s.accountRepo
}

// PaymentRepo returns the payment repository.
func (s *NoOpTransactionScope) PaymentRepo() finance.PaymentRepository {
	return s.paymentRepo
}

// MovementRepo returns the movement repository.
func (s *NoOpTransactionScope) MovementRepo() treasury.MovementRepository {
	return s.movementRepo
}

// BankAccountRepo returns the bank account repository.
func (s *NoOpTransactionScope) BankAccountRepo() treasury.BankAccountRepository {
	return s.bankAccountRepo
}
