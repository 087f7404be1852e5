package persistence

import (
	"context"
	"errors"

	"github.com/finbooks/backend/internal/domain/finance"
	"github.com/finbooks/backend/internal/domain/shared"
	"github.com/finbooks/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormFinancialAccountRepository implements FinancialAccountRepository using GORM.
// The aggregate is always loaded and saved together with its installments.
type GormFinancialAccountRepository struct {
	db *gorm.DB
}

// NewGormFinancialAccountRepository creates a new GormFinancialAccountRepository
func NewGormFinancialAccountRepository(db *gorm.DB) *GormFinancialAccountRepository {
	return &GormFinancialAccountRepository{db: db}
}

// Create persists a new financial account with its installment schedule
func (r *GormFinancialAccountRepository) Create(ctx context.Context, account *finance.FinancialAccount) error {
	model := models.FinancialAccountModelFromDomain(account)
	return r.db.WithContext(ctx).Create(model).Error
}

// Update persists the aggregate root and all of its installments.
// Installments are never removed, so a full-association save is enough.
func (r *GormFinancialAccountRepository) Update(ctx context.Context, account *finance.FinancialAccount) error {
	model := models.FinancialAccountModelFromDomain(account)
	return r.db.WithContext(ctx).
		Session(&gorm.Session{FullSaveAssociations: true}).
		Save(model).Error
}

// FindByID loads the aggregate with its installments ordered by number
func (r *GormFinancialAccountRepository) FindByID(ctx context.Context, companyID, id uuid.UUID) (*finance.FinancialAccount, error) {
	return r.findOne(ctx, companyID, id, false)
}

// FindByIDForUpdate loads the aggregate under a FOR UPDATE row lock.
// Only valid inside a transaction scope.
func (r *GormFinancialAccountRepository) FindByIDForUpdate(ctx context.Context, companyID, id uuid.UUID) (*finance.FinancialAccount, error) {
	return r.findOne(ctx, companyID, id, true)
}

func (r *GormFinancialAccountRepository) findOne(ctx context.Context, companyID, id uuid.UUID, forUpdate bool) (*finance.FinancialAccount, error) {
	var model models.FinancialAccountModel
	query := r.db.WithContext(ctx).
		Preload("Installments", func(db *gorm.DB) *gorm.DB {
			return db.Order("installment_number ASC")
		})
	if forUpdate {
		query = query.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	if err := query.
		Where("company_id = ? AND id = ?", companyID, id).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// List returns a page of accounts matching the filter, installments included
func (r *GormFinancialAccountRepository) List(ctx context.Context, companyID uuid.UUID, filter finance.AccountFilter) (*shared.Paginated[*finance.FinancialAccount], error) {
	base := r.db.WithContext(ctx).Model(&models.FinancialAccountModel{}).
		Where("company_id = ?", companyID)
	base = r.applyAccountFilter(base, filter)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, err
	}

	orderBy := ValidateSortField(filter.OrderBy, FinancialAccountSortFields, "created_at")
	orderDir := ValidateSortOrder(filter.OrderDir)

	var accountModels []models.FinancialAccountModel
	if err := base.
		Preload("Installments", func(db *gorm.DB) *gorm.DB {
			return db.Order("installment_number ASC")
		}).
		Order(orderBy + " " + orderDir).
		Limit(filter.Limit).
		Offset(filter.Offset).
		Find(&accountModels).Error; err != nil {
		return nil, err
	}

	accounts := make([]*finance.FinancialAccount, len(accountModels))
	for i := range accountModels {
		accounts[i] = accountModels[i].ToDomain()
	}
	page := shared.NewPaginated(accounts, total, filter.Limit, filter.Offset)
	return &page, nil
}

// ExistsByID checks whether an account exists for the company
func (r *GormFinancialAccountRepository) ExistsByID(ctx context.Context, companyID, id uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.FinancialAccountModel{}).
		Where("company_id = ? AND id = ?", companyID, id).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *GormFinancialAccountRepository) applyAccountFilter(query *gorm.DB, filter finance.AccountFilter) *gorm.DB {
	if filter.Kind != nil {
		query = query.Where("kind = ?", *filter.Kind)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.ContactID != nil {
		query = query.Where("contact_id = ?", *filter.ContactID)
	}
	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.DepartmentID != nil {
		query = query.Where("department_id = ?", *filter.DepartmentID)
	}
	if filter.DueFrom != nil {
		query = query.Where(
			"EXISTS (SELECT 1 FROM installments WHERE installments.financial_account_id = financial_accounts.id AND installments.due_date >= ?)",
			*filter.DueFrom)
	}
	if filter.DueTo != nil {
		query = query.Where(
			"EXISTS (SELECT 1 FROM installments WHERE installments.financial_account_id = financial_accounts.id AND installments.due_date <= ?)",
			*filter.DueTo)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("description LIKE ? OR invoice_number LIKE ?", pattern, pattern)
	}
	return query
}

// Ensure GormFinancialAccountRepository implements FinancialAccountRepository
var _ finance.FinancialAccountRepository = (*GormFinancialAccountRepository)(nil)
