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

// GormContactRepository implements ContactRepository using GORM
type GormContactRepository struct {
	db *gorm.DB
}

// NewGormContactRepository creates a new GormContactRepository
func NewGormContactRepository(db *gorm.DB) *GormContactRepository {
	return &GormContactRepository{db: db}
}

// Create persists a new contact
func (r *GormContactRepository) Create(ctx context.Context, contact *partner.Contact) error {
	model := models.ContactModelFromDomain(contact)
	return r.db.WithContext(ctx).Create(model).Error
}

// Update persists changes to an existing contact
func (r *GormContactRepository) Update(ctx context.Context, contact *partner.Contact) error {
	model := models.ContactModelFromDomain(contact)
	return r.db.WithContext(ctx).Save(model).Error
}

// FindByID finds a contact by its ID within a company
func (r *GormContactRepository) FindByID(ctx context.Context, companyID, id uuid.UUID) (*partner.Contact, error) {
	var model models.ContactModel
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

// List returns a page of contacts, ordered by name by default
func (r *GormContactRepository) List(ctx context.Context, companyID uuid.UUID, filter shared.Filter) (*shared.Paginated[*partner.Contact], error) {
	base := r.db.WithContext(ctx).Model(&models.ContactModel{}).
		Where("company_id = ?", companyID)
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		base = base.Where("name LIKE ? OR trade_name LIKE ? OR document LIKE ?", pattern, pattern, pattern)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, err
	}

	orderBy := ValidateSortField(filter.OrderBy, ContactSortFields, "name")
	orderDir := filter.OrderDir
	if orderBy == "name" && orderDir == "" {
		orderDir = "asc"
	}

	var contactModels []models.ContactModel
	if err := base.
		Order(orderBy + " " + ValidateSortOrder(orderDir)).
		Limit(filter.Limit).
		Offset(filter.Offset).
		Find(&contactModels).Error; err != nil {
		return nil, err
	}

	contacts := make([]*partner.Contact, len(contactModels))
	for i := range contactModels {
		contacts[i] = contactModels[i].ToDomain()
	}
	page := shared.NewPaginated(contacts, total, filter.Limit, filter.Offset)
	return &page, nil
}

// ExistsByID checks whether a contact exists for the company
func (r *GormContactRepository) ExistsByID(ctx context.Context, companyID, id uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.ContactModel{}).
		Where("company_id = ? AND id = ?", companyID, id).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Ensure GormContactRepository implements ContactRepository
var _ partner.ContactRepository = (*GormContactRepository)(nil)
