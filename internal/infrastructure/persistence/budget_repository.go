package persistence

import (
	"context"
	"errors"

	"github.com/finbooks/backend/internal/domain/budget"
	"github.com/finbooks/backend/internal/domain/shared"
	"github.com/finbooks/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormBudgetRepository implements BudgetRepository using GORM.
// Soft-deleted budgets are invisible to every read path.
type GormBudgetRepository struct {
	db *gorm.DB
}

// NewGormBudgetRepository creates a new GormBudgetRepository
func NewGormBudgetRepository(db *gorm.DB) *GormBudgetRepository {
	return &GormBudgetRepository{db: db}
}

// Create persists a new budget with its items
func (r *GormBudgetRepository) Create(ctx context.Context, b *budget.Budget) error {
	model := models.BudgetModelFromDomain(b)
	return r.db.WithContext(ctx).Create(model).Error
}

// Update persists the budget and replaces its item set: items removed from
// the aggregate are deleted, the rest are upserted.
func (r *GormBudgetRepository) Update(ctx context.Context, b *budget.Budget) error {
	model := models.BudgetModelFromDomain(b)
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		keep := make([]uuid.UUID, len(model.Items))
		for i := range model.Items {
			keep[i] = model.Items[i].ID
		}
		itemScope := tx.Where("budget_id = ?", model.ID)
		if len(keep) > 0 {
			itemScope = itemScope.Where("id NOT IN ?", keep)
		}
		if err := itemScope.Delete(&models.BudgetItemModel{}).Error; err != nil {
			return err
		}
		return tx.Session(&gorm.Session{FullSaveAssociations: true}).Save(model).Error
	})
}

// FindByID finds a non-deleted budget by its ID within a company
func (r *GormBudgetRepository) FindByID(ctx context.Context, companyID, id uuid.UUID) (*budget.Budget, error) {
	var model models.BudgetModel
	if err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		Where("company_id = ? AND id = ? AND deleted_at IS NULL", companyID, id).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// List returns a page of non-deleted budgets matching the filter
func (r *GormBudgetRepository) List(ctx context.Context, companyID uuid.UUID, filter budget.BudgetFilter) (*shared.Paginated[*budget.Budget], error) {
	base := r.db.WithContext(ctx).Model(&models.BudgetModel{}).
		Where("company_id = ? AND deleted_at IS NULL", companyID)

	if filter.Status != nil {
		base = base.Where("status = ?", *filter.Status)
	}
	if filter.ClientID != nil {
		base = base.Where("client_id = ?", *filter.ClientID)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		base = base.Where("budget_number LIKE ? OR client_name LIKE ?", pattern, pattern)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, err
	}

	orderBy := ValidateSortField(filter.OrderBy, BudgetSortFields, "created_at")
	orderDir := ValidateSortOrder(filter.OrderDir)

	var budgetModels []models.BudgetModel
	if err := base.
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		Order(orderBy + " " + orderDir).
		Limit(filter.Limit).
		Offset(filter.Offset).
		Find(&budgetModels).Error; err != nil {
		return nil, err
	}

	budgets := make([]*budget.Budget, len(budgetModels))
	for i := range budgetModels {
		budgets[i] = budgetModels[i].ToDomain()
	}
	page := shared.NewPaginated(budgets, total, filter.Limit, filter.Offset)
	return &page, nil
}

// Ensure GormBudgetRepository implements BudgetRepository
var _ budget.BudgetRepository = (*GormBudgetRepository)(nil)
