package persistence

import (
	"context"
	"errors"

	"github.com/finbooks/backend/internal/domain/partner"
	"github.com/finbooks/backend/internal/domain/shared"
	"github.com/finbooks/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormDepartmentRepository implements DepartmentRepository using GORM
type GormDepartmentRepository struct {
	db *gorm.DB
}

// NewGormDepartmentRepository creates a new GormDepartmentRepository
func NewGormDepartmentRepository(db *gorm.DB) *GormDepartmentRepository {
	return &GormDepartmentRepository{db: db}
}

// Create persists a new department
func (r *GormDepartmentRepository) Create(ctx context.Context, department *partner.Department) error {
	model := models.DepartmentModelFromDomain(department)
	return r.db.WithContext(ctx).Create(model).Error
}

// Update persists changes to an existing department
func (r *GormDepartmentRepository) Update(ctx context.Context, department *partner.Department) error {
	model := models.DepartmentModelFromDomain(department)
	return r.db.WithContext(ctx).Save(model).Error
}

// FindByID finds a department by its ID within a company
func (r *GormDepartmentRepository) FindByID(ctx context.Context, companyID, id uuid.UUID) (*partner.Department, error) {
	var model models.DepartmentModel
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

// List returns a page of departments, ordered by name by default
func (r *GormDepartmentRepository) List(ctx context.Context, companyID uuid.UUID, filter shared.Filter) (*shared.Paginated[*partner.Department], error) {
	base := r.db.WithContext(ctx).Model(&models.DepartmentModel{}).
		Where("company_id = ?", companyID)
	if filter.Search != "" {
		base = base.Where("name LIKE ?", "%"+filter.Search+"%")
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, err
	}

	orderBy := ValidateSortField(filter.OrderBy, DepartmentSortFields, "name")
	orderDir := filter.OrderDir
	if orderBy == "name" && orderDir == "" {
		orderDir = "asc"
	}

	var departmentModels []models.DepartmentModel
	if err := base.
		Order(orderBy + " " + ValidateSortOrder(orderDir)).
		Limit(filter.Limit).
		Offset(filter.Offset).
		Find(&departmentModels).Error; err != nil {
		return nil, err
	}

	departments := make([]*partner.Department, len(departmentModels))
	for i := range departmentModels {
		departments[i] = departmentModels[i].ToDomain()
	}
	page := shared.NewPaginated(departments, total, filter.Limit, filter.Offset)
	return &page, nil
}

// ExistsByID checks whether a department exists for the company
func (r *GormDepartmentRepository) ExistsByID(ctx context.Context, companyID, id uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.DepartmentModel{}).
		Where("company_id = ? AND id = ?", companyID, id).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Ensure GormDepartmentRepository implements DepartmentRepository
var _ partner.DepartmentRepository = (*GormDepartmentRepository)(nil)
