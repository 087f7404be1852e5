package finance

import (
	"context"
	"testing"
	"time"

	"github.com/finbooks/backend/internal/domain/finance"
	"github.com/finbooks/backend/internal/domain/shared/valueobject"
	"github.com/finbooks/backend/internal/domain/treasury"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type postingFixture struct {
	companyID   uuid.UUID
	account     *finance.FinancialAccount
	accountRepo *MockAccountRepository
	paymentRepo *MockPaymentRepository
	movements   *MockMovementRepository
	bankRepo    *MockBankAccountRepository
	service     *PaymentPostingService
}

// three installments of 100 due one month apart
func newPostingFixture(t *testing.T, kind finance.AccountKind) *postingFixture {
	t.Helper()
	companyID := uuid.New()

	schedule := []finance.InstallmentSpec{
		{InstallmentNumber: 1, DueDate: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), Amount: decimal.NewFromInt(100)},
		{InstallmentNumber: 2, DueDate: time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC), Amount: decimal.NewFromInt(100)},
		{InstallmentNumber: 3, DueDate: time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC), Amount: decimal.NewFromInt(100)},
	}
	account, err := finance.NewFinancialAccount(
		companyID, kind, uuid.New(),
		valueobject.NewMoneyBRL(decimal.NewFromInt(300)),
		"Contrato anual", time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), schedule,
	)
	require.NoError(t, err)

	f := &postingFixture{
		companyID:   companyID,
		account:     account,
		accountRepo: new(MockAccountRepository),
		paymentRepo: new(MockPaymentRepository),
		movements:   new(MockMovementRepository),
		bankRepo:    new(MockBankAccountRepository),
	}
	f.service = NewPaymentPostingService(NewNoOpTransactionScope(
		f.accountRepo, f.paymentRepo, f.movements, f.bankRepo,
	))
	return f
}

func (f *postingFixture) expectHappyPath() {
	f.accountRepo.On("FindByIDForUpdate", mock.Anything, f.companyID, f.account.ID).Return(f.account, nil)
	f.paymentRepo.On("Create", mock.Anything, mock.AnythingOfType("*finance.Payment")).Return(nil)
	f.accountRepo.On("Update", mock.Anything, f.account).Return(nil)
}

func TestPostPayment_FIFOAllocation(t *testing.T) {
	f := newPostingFixture(t, finance.AccountKindReceivable)
	f.expectHappyPath()
	bankAccountID := uuid.New()
	f.bankRepo.On("ExistsByID", mock.Anything, f.companyID, bankAccountID).Return(true, nil)

	var captured *treasury.Movement
	f.movements.On("Create", mock.Anything, mock.AnythingOfType("*treasury.Movement")).
		Run(func(args mock.Arguments) { captured = args.Get(1).(*treasury.Movement) }).
		Return(nil)

	result, err := f.service.PostPayment(context.Background(), f.companyID, nil, PostPaymentRequest{
		FinancialAccountID: f.account.ID,
		BankAccountID:      &bankAccountID,
		PaymentDate:        "2025-01-15",
		PaidAmount:         "150",
	})
	require.NoError(t, err)

	require.Len(t, result.Allocations, 2)
	assert.Equal(t, f.account.Installments[0].ID, result.Allocations[0].InstallmentID)
	assert.Equal(t, "100.00", result.Allocations[0].Amount)
	assert.Equal(t, f.account.Installments[1].ID, result.Allocations[1].InstallmentID)
	assert.Equal(t, "50.00", result.Allocations[1].Amount)

	assert.Equal(t, finance.InstallmentStatusPaid, f.account.Installments[0].Status)
	assert.Equal(t, finance.InstallmentStatusPartial, f.account.Installments[1].Status)
	assert.Equal(t, finance.InstallmentStatusOpen, f.account.Installments[2].Status)
	assert.Equal(t, "partial", result.Account.Status)

	require.NotNil(t, captured)
	assert.Equal(t, int64(15000), captured.AmountCents)
	assert.Equal(t, treasury.MovementDirectionIn, captured.Direction)
	assert.Equal(t, treasury.MovementSourceSystem, captured.Source)
	assert.True(t, captured.IsReconciled)
	require.NotNil(t, result.MovementID)
	assert.Equal(t, captured.ID, *result.MovementID)
}

func TestPostPayment_PinnedInstallment(t *testing.T) {
	f := newPostingFixture(t, finance.AccountKindReceivable)
	f.expectHappyPath()
	target := f.account.Installments[1].ID

	result, err := f.service.PostPayment(context.Background(), f.companyID, nil, PostPaymentRequest{
		FinancialAccountID: f.account.ID,
		InstallmentID:      &target,
		PaymentDate:        "2025-01-15",
		PaidAmount:         "50",
	})
	require.NoError(t, err)

	require.Len(t, result.Allocations, 1)
	assert.Equal(t, target, result.Allocations[0].InstallmentID)
	assert.Equal(t, finance.InstallmentStatusOpen, f.account.Installments[0].Status)
	assert.Equal(t, finance.InstallmentStatusPartial, f.account.Installments[1].Status)
	assert.Equal(t, finance.InstallmentStatusOpen, f.account.Installments[2].Status)
}

func TestPostPayment_InterestAndDiscountShapeMovementOnly(t *testing.T) {
	f := newPostingFixture(t, finance.AccountKindReceivable)
	f.expectHappyPath()
	bankAccountID := uuid.New()
	f.bankRepo.On("ExistsByID", mock.Anything, f.companyID, bankAccountID).Return(true, nil)

	var captured *treasury.Movement
	f.movements.On("Create", mock.Anything, mock.AnythingOfType("*treasury.Movement")).
		Run(func(args mock.Arguments) { captured = args.Get(1).(*treasury.Movement) }).
		Return(nil)

	_, err := f.service.PostPayment(context.Background(), f.companyID, nil, PostPaymentRequest{
		FinancialAccountID: f.account.ID,
		BankAccountID:      &bankAccountID,
		PaymentDate:        "2025-01-15",
		PaidAmount:         "100",
		Interest:           "10",
		Discount:           "5",
	})
	require.NoError(t, err)

	// movement carries paidAmount + interest - discount; allocation only the principal
	require.NotNil(t, captured)
	assert.Equal(t, int64(10500), captured.AmountCents)
	assert.True(t, f.account.Installments[0].PaidTotal.Equal(decimal.NewFromInt(100)))
}

func TestPostPayment_PayableDirectionOut(t *testing.T) {
	f := newPostingFixture(t, finance.AccountKindPayable)
	f.expectHappyPath()
	bankAccountID := uuid.New()
	f.bankRepo.On("ExistsByID", mock.Anything, f.companyID, bankAccountID).Return(true, nil)

	var captured *treasury.Movement
	f.movements.On("Create", mock.Anything, mock.AnythingOfType("*treasury.Movement")).
		Run(func(args mock.Arguments) { captured = args.Get(1).(*treasury.Movement) }).
		Return(nil)

	_, err := f.service.PostPayment(context.Background(), f.companyID, nil, PostPaymentRequest{
		FinancialAccountID: f.account.ID,
		BankAccountID:      &bankAccountID,
		PaymentDate:        "2025-01-15",
		PaidAmount:         "100",
	})
	require.NoError(t, err)
	assert.Equal(t, treasury.MovementDirectionOut, captured.Direction)
}

func TestPostPayment_NoBankAccountNoMovement(t *testing.T) {
	f := newPostingFixture(t, finance.AccountKindReceivable)
	f.expectHappyPath()

	result, err := f.service.PostPayment(context.Background(), f.companyID, nil, PostPaymentRequest{
		FinancialAccountID: f.account.ID,
		PaymentDate:        "2025-01-15",
		PaidAmount:         "100",
	})
	require.NoError(t, err)

	assert.Nil(t, result.MovementID)
	f.movements.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	f.bankRepo.AssertNotCalled(t, "ExistsByID", mock.Anything, mock.Anything, mock.Anything)
}

func TestPostPayment_FullDiscountSkipsMovement(t *testing.T) {
	f := newPostingFixture(t, finance.AccountKindReceivable)
	f.expectHappyPath()
	bankAccountID := uuid.New()
	f.bankRepo.On("ExistsByID", mock.Anything, f.companyID, bankAccountID).Return(true, nil)

	// discount == paidAmount is valid; the payment posts but moves no cash,
	// so no ledger entry is written even with a bank account designated
	result, err := f.service.PostPayment(context.Background(), f.companyID, nil, PostPaymentRequest{
		FinancialAccountID: f.account.ID,
		BankAccountID:      &bankAccountID,
		PaymentDate:        "2025-01-15",
		PaidAmount:         "50",
		Discount:           "50",
	})
	require.NoError(t, err)

	require.Len(t, result.Allocations, 1)
	assert.Equal(t, "50.00", result.Allocations[0].Amount)
	assert.Equal(t, finance.InstallmentStatusPartial, f.account.Installments[0].Status)

	assert.Nil(t, result.MovementID)
	f.movements.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestPostPayment_AccountDefaultBankAccountFallback(t *testing.T) {
	f := newPostingFixture(t, finance.AccountKindReceivable)
	defaultBank := uuid.New()
	f.account.BankAccountID = &defaultBank
	f.expectHappyPath()
	f.bankRepo.On("ExistsByID", mock.Anything, f.companyID, defaultBank).Return(true, nil)
	f.movements.On("Create", mock.Anything, mock.AnythingOfType("*treasury.Movement")).Return(nil)

	result, err := f.service.PostPayment(context.Background(), f.companyID, nil, PostPaymentRequest{
		FinancialAccountID: f.account.ID,
		PaymentDate:        "2025-01-15",
		PaidAmount:         "100",
	})
	require.NoError(t, err)
	assert.NotNil(t, result.MovementID)
}

func TestPostPayment_Overpayment(t *testing.T) {
	f := newPostingFixture(t, finance.AccountKindReceivable)
	f.expectHappyPath()
	bankAccountID := uuid.New()
	f.bankRepo.On("ExistsByID", mock.Anything, f.companyID, bankAccountID).Return(true, nil)

	var captured *treasury.Movement
	f.movements.On("Create", mock.Anything, mock.AnythingOfType("*treasury.Movement")).
		Run(func(args mock.Arguments) { captured = args.Get(1).(*treasury.Movement) }).
		Return(nil)

	result, err := f.service.PostPayment(context.Background(), f.companyID, nil, PostPaymentRequest{
		FinancialAccountID: f.account.ID,
		BankAccountID:      &bankAccountID,
		PaymentDate:        "2025-01-15",
		PaidAmount:         "350",
	})
	require.NoError(t, err)

	// every installment fully paid, no paidTotal above its amount
	for _, inst := range f.account.Installments {
		assert.True(t, inst.PaidTotal.Equal(inst.Amount))
	}
	assert.Equal(t, "paid", result.Account.Status)
	assert.True(t, result.Account.IsSettled)
	// the movement still reflects the full paid amount
	assert.Equal(t, int64(35000), captured.AmountCents)
}

func TestPostPayment_GuardOnSettledAccount(t *testing.T) {
	f := newPostingFixture(t, finance.AccountKindReceivable)
	_, err := f.account.ApplyPayment(decimal.NewFromInt(300), nil)
	require.NoError(t, err)
	f.accountRepo.On("FindByIDForUpdate", mock.Anything, f.companyID, f.account.ID).Return(f.account, nil)

	_, err = f.service.PostPayment(context.Background(), f.companyID, nil, PostPaymentRequest{
		FinancialAccountID: f.account.ID,
		PaymentDate:        "2025-01-15",
		PaidAmount:         "10",
	})
	require.Error(t, err)

	f.paymentRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	f.accountRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	f.movements.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestPostPayment_GuardOnCanceledAccount(t *testing.T) {
	f := newPostingFixture(t, finance.AccountKindReceivable)
	require.NoError(t, f.account.Cancel("duplicada"))
	f.accountRepo.On("FindByIDForUpdate", mock.Anything, f.companyID, f.account.ID).Return(f.account, nil)

	_, err := f.service.PostPayment(context.Background(), f.companyID, nil, PostPaymentRequest{
		FinancialAccountID: f.account.ID,
		PaymentDate:        "2025-01-15",
		PaidAmount:         "10",
	})
	require.Error(t, err)
	f.paymentRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestPostPayment_ValidationRejectedBeforeAnyRead(t *testing.T) {
	f := newPostingFixture(t, finance.AccountKindReceivable)

	cases := []PostPaymentRequest{
		{FinancialAccountID: f.account.ID, PaymentDate: "2025-01-15", PaidAmount: "0"},
		{FinancialAccountID: f.account.ID, PaymentDate: "2025-01-15", PaidAmount: "-5"},
		{FinancialAccountID: f.account.ID, PaymentDate: "2025-01-15", PaidAmount: "100", Interest: "-1"},
		{FinancialAccountID: f.account.ID, PaymentDate: "2025-01-15", PaidAmount: "100", Discount: "100.01"},
		{FinancialAccountID: f.account.ID, PaymentDate: "not-a-date", PaidAmount: "100"},
		{FinancialAccountID: f.account.ID, PaymentDate: "2025-01-15", PaidAmount: "abc"},
	}
	for _, req := range cases {
		_, err := f.service.PostPayment(context.Background(), f.companyID, nil, req)
		assert.Error(t, err)
	}
	f.accountRepo.AssertNotCalled(t, "FindByIDForUpdate", mock.Anything, mock.Anything, mock.Anything)
}

func TestPostPayment_UnknownBankAccountRejected(t *testing.T) {
	f := newPostingFixture(t, finance.AccountKindReceivable)
	f.expectHappyPath()
	bankAccountID := uuid.New()
	f.bankRepo.On("ExistsByID", mock.Anything, f.companyID, bankAccountID).Return(false, nil)

	_, err := f.service.PostPayment(context.Background(), f.companyID, nil, PostPaymentRequest{
		FinancialAccountID: f.account.ID,
		BankAccountID:      &bankAccountID,
		PaymentDate:        "2025-01-15",
		PaidAmount:         "100",
	})
	require.Error(t, err)
	f.movements.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestPostPayment_AccountNotFound(t *testing.T) {
	f := newPostingFixture(t, finance.AccountKindReceivable)
	missing := uuid.New()
	f.accountRepo.On("FindByIDForUpdate", mock.Anything, f.companyID, missing).Return(nil, nil)

	_, err := f.service.PostPayment(context.Background(), f.companyID, nil, PostPaymentRequest{
		FinancialAccountID: missing,
		PaymentDate:        "2025-01-15",
		PaidAmount:         "100",
	})
	require.Error(t, err)
}
