package budget

import (
	"context"

	"github.com/finbooks/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// BudgetFilter narrows budget listings
type BudgetFilter struct {
	shared.Filter
	Status   *BudgetStatus
	ClientID *uuid.UUID
}

// BudgetRepository persists budgets together with their items
type BudgetRepository interface {
	Create(ctx context.Context, budget *Budget) error
	Update(ctx context.Context, budget *Budget) error
	FindByID(ctx context.Context, companyID, id uuid.UUID) (*Budget, error)
	List(ctx context.Context, companyID uuid.UUID, filter BudgetFilter) (*shared.Paginated[*Budget], error)
}
