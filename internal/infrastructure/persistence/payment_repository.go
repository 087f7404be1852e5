package persistence

import (
	"context"
	"errors"

	"github.com/finbooks/backend/internal/domain/finance"
	"github.com/finbooks/backend/internal/domain/shared"
	"github.com/finbooks/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormPaymentRepository implements PaymentRepository using GORM.
// Payments are append-only: there is deliberately no update or delete.
type GormPaymentRepository struct {
	db *gorm.DB
}

// NewGormPaymentRepository creates a new GormPaymentRepository
func NewGormPaymentRepository(db *gorm.DB) *GormPaymentRepository {
	return &GormPaymentRepository{db: db}
}

// Create persists a new payment record
func (r *GormPaymentRepository) Create(ctx context.Context, payment *finance.Payment) error {
	model := models.PaymentModelFromDomain(payment)
	return r.db.WithContext(ctx).Create(model).Error
}

// FindByID finds a payment by its ID within a company
func (r *GormPaymentRepository) FindByID(ctx context.Context, companyID, id uuid.UUID) (*finance.Payment, error) {
	var model models.PaymentModel
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

// List returns a page of payments matching the filter, newest first
func (r *GormPaymentRepository) List(ctx context.Context, companyID uuid.UUID, filter finance.PaymentFilter) (*shared.Paginated[*finance.Payment], error) {
	base := r.db.WithContext(ctx).Model(&models.PaymentModel{}).
		Where("company_id = ?", companyID)

	if filter.FinancialAccountID != nil {
		base = base.Where("financial_account_id = ?", *filter.FinancialAccountID)
	}
	if filter.DateFrom != nil {
		base = base.Where("payment_date >= ?", *filter.DateFrom)
	}
	if filter.DateTo != nil {
		base = base.Where("payment_date <= ?", *filter.DateTo)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, err
	}

	orderBy := ValidateSortField(filter.OrderBy, PaymentSortFields, "payment_date")
	orderDir := ValidateSortOrder(filter.OrderDir)

	var paymentModels []models.PaymentModel
	if err := base.
		Order(orderBy + " " + orderDir).
		Limit(filter.Limit).
		Offset(filter.Offset).
		Find(&paymentModels).Error; err != nil {
		return nil, err
	}

	payments := make([]*finance.Payment, len(paymentModels))
	for i := range paymentModels {
		payments[i] = paymentModels[i].ToDomain()
	}
	page := shared.NewPaginated(payments, total, filter.Limit, filter.Offset)
	return &page, nil
}

// Ensure GormPaymentRepository implements PaymentRepository
var _ finance.PaymentRepository = (*GormPaymentRepository)(nil)
