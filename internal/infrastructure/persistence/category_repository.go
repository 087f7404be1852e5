package persistence

import (
	"context"
	"errors"

	"github.com/finbooks/backend/internal/domain/partner"
	"github.com/finbooks/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormCategoryRepository implements CategoryRepository using GORM
type GormCategoryRepository struct {
	db *gorm.DB
}

// NewGormCategoryRepository creates a new GormCategoryRepository
func NewGormCategoryRepository(db *gorm.DB) *GormCategoryRepository {
	return &GormCategoryRepository{db: db}
}

// Create persists a new category
func (r *GormCategoryRepository) Create(ctx context.Context, category *partner.Category) error {
	model := models.CategoryModelFromDomain(category)
	return r.db.WithContext(ctx).Create(model).Error
}

// CreateBatch persists a set of categories in one statement. Used by the
// idempotent default seeding.
func (r *GormCategoryRepository) CreateBatch(ctx context.Context, categories []*partner.Category) error {
	if len(categories) == 0 {
		return nil
	}
	categoryModels := make([]models.CategoryModel, len(categories))
	for i, c := range categories {
		categoryModels[i].FromDomain(c)
	}
	return r.db.WithContext(ctx).Create(&categoryModels).Error
}

// FindByID finds a category by its ID within a company
func (r *GormCategoryRepository) FindByID(ctx context.Context, companyID, id uuid.UUID) (*partner.Category, error) {
	var model models.CategoryModel
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

// ListActive returns all active categories for a company, grouped and ordered
// by name
func (r *GormCategoryRepository) ListActive(ctx context.Context, companyID uuid.UUID) ([]*partner.Category, error) {
	var categoryModels []models.CategoryModel
	if err := r.db.WithContext(ctx).
		Where("company_id = ? AND is_active = ?", companyID, true).
		Order("group_name ASC").
		Order("name ASC").
		Find(&categoryModels).Error; err != nil {
		return nil, err
	}
	categories := make([]*partner.Category, len(categoryModels))
	for i := range categoryModels {
		categories[i] = categoryModels[i].ToDomain()
	}
	return categories, nil
}

// ListNames returns the names of every category the company has, active or not
func (r *GormCategoryRepository) ListNames(ctx context.Context, companyID uuid.UUID) ([]string, error) {
	var names []string
	if err := r.db.WithContext(ctx).
		Model(&models.CategoryModel{}).
		Where("company_id = ?", companyID).
		Pluck("name", &names).Error; err != nil {
		return nil, err
	}
	return names, nil
}

// ExistsByID checks whether a category exists for the company
func (r *GormCategoryRepository) ExistsByID(ctx context.Context, companyID, id uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.CategoryModel{}).
		Where("company_id = ? AND id = ?", companyID, id).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Ensure GormCategoryRepository implements CategoryRepository
var _ partner.CategoryRepository = (*GormCategoryRepository)(nil)
