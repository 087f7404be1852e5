package persistence

import (
	"context"
	"errors"

	"github.com/finbooks/backend/internal/domain/shared"
	"github.com/finbooks/backend/internal/domain/treasury"
	"github.com/finbooks/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormBankAccountRepository implements BankAccountRepository using GORM
type GormBankAccountRepository struct {
	db *gorm.DB
}

// NewGormBankAccountRepository creates a new GormBankAccountRepository
func NewGormBankAccountRepository(db *gorm.DB) *GormBankAccountRepository {
	return &GormBankAccountRepository{db: db}
}

// Create persists a new bank account
func (r *GormBankAccountRepository) Create(ctx context.Context, account *treasury.BankAccount) error {
	model := models.BankAccountModelFromDomain(account)
	return r.db.WithContext(ctx).Create(model).Error
}

// Update persists changes to an existing bank account
func (r *GormBankAccountRepository) Update(ctx context.Context, account *treasury.BankAccount) error {
	model := models.BankAccountModelFromDomain(account)
	return r.db.WithContext(ctx).Save(model).Error
}

// FindByID finds a bank account by its ID within a company
func (r *GormBankAccountRepository) FindByID(ctx context.Context, companyID, id uuid.UUID) (*treasury.BankAccount, error) {
	var model models.BankAccountModel
	if err := r.db.WithContext(ctx).
		Where("company_id = ? AND id = ?", companyID, id).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// List returns a page of bank accounts ordered by name by default
func (r *GormBankAccountRepository) List(ctx context.Context, companyID uuid.UUID, filter shared.Filter) (*shared.Paginated[*treasury.BankAccount], error) {
	base := r.db.WithContext(ctx).Model(&models.BankAccountModel{}).
		Where("company_id = ?", companyID)
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		base = base.Where("name LIKE ? OR institution LIKE ?", pattern, pattern)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, err
	}

	orderBy := ValidateSortField(filter.OrderBy, BankAccountSortFields, "name")
	orderDir := filter.OrderDir
	if orderBy == "name" && orderDir == "" {
		orderDir = "asc"
	}

	var accountModels []models.BankAccountModel
	if err := base.
		Order(orderBy + " " + ValidateSortOrder(orderDir)).
		Limit(filter.Limit).
		Offset(filter.Offset).
		Find(&accountModels).Error; err != nil {
		return nil, err
	}

	accounts := make([]*treasury.BankAccount, len(accountModels))
	for i := range accountModels {
		accounts[i] = accountModels[i].ToDomain()
	}
	page := shared.NewPaginated(accounts, total, filter.Limit, filter.Offset)
	return &page, nil
}

// ExistsByID checks whether a bank account exists for the company
func (r *GormBankAccountRepository) ExistsByID(ctx context.Context, companyID, id uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.BankAccountModel{}).
		Where("company_id = ? AND id = ?", companyID, id).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// SumActiveOpeningBalances sums opening balances of active accounts
func (r *GormBankAccountRepository) SumActiveOpeningBalances(ctx context.Context, companyID uuid.UUID) (int64, error) {
	var result struct {
		Total int64
	}
	if err := r.db.WithContext(ctx).
		Model(&models.BankAccountModel{}).
		Select("COALESCE(SUM(opening_balance_cents), 0) AS total").
		Where("company_id = ? AND is_active = ?", companyID, true).
		Scan(&result).Error; err != nil {
		return 0, err
	}
	return result.Total, nil
}

// Ensure GormBankAccountRepository implements BankAccountRepository
var _ treasury.BankAccountRepository = (*GormBankAccountRepository)(nil)
