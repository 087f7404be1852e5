package persistence

import (
	"context"
	"testing"

	"github.com/finbooks/backend/internal/domain/shared"
	"github.com/finbooks/backend/internal/domain/treasury"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormBankAccountRepository_CreateAndFindByID(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormBankAccountRepository(db)
	ctx := context.Background()
	companyID := uuid.New()

	account, err := treasury.NewBankAccount(companyID, "Conta Corrente", "Itaú", treasury.BankAccountTypeChecking)
	require.NoError(t, err)
	openingDate := dateUTC(2025, 1, 1)
	account.SetOpeningBalance(150000, &openingDate)
	require.NoError(t, repo.Create(ctx, account))

	found, err := repo.FindByID(ctx, companyID, account.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Conta Corrente", found.Name)
	assert.Equal(t, "Itaú", found.Institution)
	assert.Equal(t, int64(150000), found.OpeningBalanceCents)
	assert.True(t, found.IsActive)
}

func TestGormBankAccountRepository_Update(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormBankAccountRepository(db)
	ctx := context.Background()
	companyID := uuid.New()

	account, err := treasury.NewBankAccount(companyID, "Poupança", "Caixa", treasury.BankAccountTypeSavings)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, account))

	account.Deactivate()
	require.NoError(t, repo.Update(ctx, account))

	found, err := repo.FindByID(ctx, companyID, account.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.False(t, found.IsActive)
}

func TestGormBankAccountRepository_List_OrdersByName(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormBankAccountRepository(db)
	ctx := context.Background()
	companyID := uuid.New()

	for _, name := range []string{"Caixa interno", "Bradesco", "Itaú"} {
		account, err := treasury.NewBankAccount(companyID, name, "", treasury.BankAccountTypeChecking)
		require.NoError(t, err)
		require.NoError(t, repo.Create(ctx, account))
	}

	filter := shared.Filter{Limit: 50}
	page, err := repo.List(ctx, companyID, filter)
	require.NoError(t, err)
	require.Len(t, page.Items, 3)
	assert.Equal(t, "Bradesco", page.Items[0].Name)
	assert.Equal(t, "Caixa interno", page.Items[1].Name)
	assert.Equal(t, "Itaú", page.Items[2].Name)
}

func TestGormBankAccountRepository_SumActiveOpeningBalances(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormBankAccountRepository(db)
	ctx := context.Background()
	companyID := uuid.New()

	active, err := treasury.NewBankAccount(companyID, "Ativa", "Itaú", treasury.BankAccountTypeChecking)
	require.NoError(t, err)
	active.SetOpeningBalance(100000, nil)
	require.NoError(t, repo.Create(ctx, active))

	second, err := treasury.NewBankAccount(companyID, "Segunda", "Bradesco", treasury.BankAccountTypeChecking)
	require.NoError(t, err)
	second.SetOpeningBalance(25000, nil)
	require.NoError(t, repo.Create(ctx, second))

	inactive, err := treasury.NewBankAccount(companyID, "Encerrada", "Santander", treasury.BankAccountTypeChecking)
	require.NoError(t, err)
	inactive.SetOpeningBalance(999999, nil)
	inactive.Deactivate()
	require.NoError(t, repo.Create(ctx, inactive))

	total, err := repo.SumActiveOpeningBalances(ctx, companyID)
	require.NoError(t, err)
	assert.Equal(t, int64(125000), total)

	empty, err := repo.SumActiveOpeningBalances(ctx, uuid.New())
	require.NoError(t, err)
	assert.Equal(t, int64(0), empty)
}
