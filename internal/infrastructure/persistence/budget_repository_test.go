package persistence

import (
	"context"
	"testing"

	"github.com/finbooks/backend/internal/domain/budget"
	"github.com/finbooks/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBudget(t *testing.T, companyID uuid.UUID, number string) *budget.Budget {
	t.Helper()
	b, err := budget.NewBudget(companyID, number, decimal.RequireFromString("1500.00"))
	require.NoError(t, err)
	clientID := uuid.New()
	b.ClientID = &clientID
	b.ClientName = "Construtora Horizonte"
	b.ReplaceItems([]*budget.BudgetItem{
		{
			BaseEntity:  shared.NewBaseEntity(),
			ItemType:    budget.BudgetItemTypeService,
			Description: "Instalação elétrica",
			Quantity:    decimal.NewFromInt(10),
			UnitPrice:   decimal.RequireFromString("100.00"),
		},
		{
			BaseEntity:  shared.NewBaseEntity(),
			ItemType:    budget.BudgetItemTypeMaterial,
			Description: "Cabos e conduítes",
			Quantity:    decimal.NewFromInt(1),
			UnitPrice:   decimal.RequireFromString("500.00"),
		},
	})
	return b
}

func TestGormBudgetRepository_CreateAndFindByID(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormBudgetRepository(db)
	ctx := context.Background()
	companyID := uuid.New()

	b := newTestBudget(t, companyID, "2025-001")
	require.NoError(t, repo.Create(ctx, b))

	found, err := repo.FindByID(ctx, companyID, b.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "2025-001", found.BudgetNumber)
	assert.Equal(t, budget.BudgetStatusDraft, found.Status)
	assert.Equal(t, "Construtora Horizonte", found.ClientName)
	require.Len(t, found.Items, 2)
	for _, item := range found.Items {
		assert.Equal(t, b.ID, item.BudgetID)
	}

	missing, err := repo.FindByID(ctx, uuid.New(), b.ID)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestGormBudgetRepository_Update_ReplacesItems(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormBudgetRepository(db)
	ctx := context.Background()
	companyID := uuid.New()

	b := newTestBudget(t, companyID, "2025-002")
	require.NoError(t, repo.Create(ctx, b))

	b.ReplaceItems([]*budget.BudgetItem{
		{
			BaseEntity:  shared.NewBaseEntity(),
			ItemType:    budget.BudgetItemTypeService,
			Description: "Projeto revisado",
			Quantity:    decimal.NewFromInt(1),
			UnitPrice:   decimal.RequireFromString("1500.00"),
		},
	})
	require.NoError(t, repo.Update(ctx, b))

	found, err := repo.FindByID(ctx, companyID, b.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	require.Len(t, found.Items, 1)
	assert.Equal(t, "Projeto revisado", found.Items[0].Description)
	assert.True(t, found.Items[0].Total.Equal(decimal.RequireFromString("1500.00")))
}

func TestGormBudgetRepository_SoftDeleteHidesBudget(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormBudgetRepository(db)
	ctx := context.Background()
	companyID := uuid.New()

	b := newTestBudget(t, companyID, "2025-003")
	require.NoError(t, repo.Create(ctx, b))

	b.SoftDelete()
	require.NoError(t, repo.Update(ctx, b))

	found, err := repo.FindByID(ctx, companyID, b.ID)
	require.NoError(t, err)
	assert.Nil(t, found)

	filter := budget.BudgetFilter{}
	filter.Limit = 50
	page, err := repo.List(ctx, companyID, filter)
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.Equal(t, int64(0), page.Total)
}

func TestGormBudgetRepository_List(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormBudgetRepository(db)
	ctx := context.Background()
	companyID := uuid.New()

	draft := newTestBudget(t, companyID, "2025-010")
	canceled := newTestBudget(t, companyID, "2025-011")
	canceled.Cancel()
	require.NoError(t, repo.Create(ctx, draft))
	require.NoError(t, repo.Create(ctx, canceled))
	require.NoError(t, repo.Create(ctx, newTestBudget(t, uuid.New(), "2025-012")))

	t.Run("scopes to company", func(t *testing.T) {
		filter := budget.BudgetFilter{}
		filter.Limit = 50
		page, err := repo.List(ctx, companyID, filter)
		require.NoError(t, err)
		assert.Equal(t, int64(2), page.Total)
	})

	t.Run("filters by status", func(t *testing.T) {
		status := budget.BudgetStatusCanceled
		filter := budget.BudgetFilter{Status: &status}
		filter.Limit = 50
		page, err := repo.List(ctx, companyID, filter)
		require.NoError(t, err)
		require.Len(t, page.Items, 1)
		assert.Equal(t, canceled.ID, page.Items[0].ID)
	})

	t.Run("filters by client", func(t *testing.T) {
		filter := budget.BudgetFilter{ClientID: draft.ClientID}
		filter.Limit = 50
		page, err := repo.List(ctx, companyID, filter)
		require.NoError(t, err)
		require.Len(t, page.Items, 1)
		assert.Equal(t, draft.ID, page.Items[0].ID)
	})
}
