package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/finbooks/backend/internal/domain/shared"
	"github.com/finbooks/backend/internal/domain/treasury"
	"github.com/finbooks/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormMovementRepository implements MovementRepository using GORM.
// Movements are append-only ledger entries; there is no update or delete.
type GormMovementRepository struct {
	db *gorm.DB
}

// NewGormMovementRepository creates a new GormMovementRepository
func NewGormMovementRepository(db *gorm.DB) *GormMovementRepository {
	return &GormMovementRepository{db: db}
}

// Create persists a new movement
func (r *GormMovementRepository) Create(ctx context.Context, movement *treasury.Movement) error {
	model := models.MovementModelFromDomain(movement)
	return r.db.WithContext(ctx).Create(model).Error
}

// FindByID finds a movement by its ID within a company
func (r *GormMovementRepository) FindByID(ctx context.Context, companyID, id uuid.UUID) (*treasury.Movement, error) {
	var model models.MovementModel
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

// List returns a page of movements matching the filter, newest first
func (r *GormMovementRepository) List(ctx context.Context, companyID uuid.UUID, filter treasury.MovementFilter) (*shared.Paginated[*treasury.Movement], error) {
	base := r.db.WithContext(ctx).Model(&models.MovementModel{}).
		Where("company_id = ?", companyID)

	if filter.Direction != nil {
		base = base.Where("direction = ?", *filter.Direction)
	}
	if filter.BankAccountID != nil {
		base = base.Where("bank_account_id = ?", *filter.BankAccountID)
	}
	if filter.From != nil {
		base = base.Where("occurred_at >= ?", *filter.From)
	}
	if filter.To != nil {
		base = base.Where("occurred_at <= ?", *filter.To)
	}
	if filter.Search != "" {
		base = base.Where("description LIKE ?", "%"+filter.Search+"%")
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, err
	}

	orderBy := ValidateSortField(filter.OrderBy, MovementSortFields, "occurred_at")
	orderDir := ValidateSortOrder(filter.OrderDir)

	var movementModels []models.MovementModel
	if err := base.
		Order(orderBy + " " + orderDir).
		Limit(filter.Limit).
		Offset(filter.Offset).
		Find(&movementModels).Error; err != nil {
		return nil, err
	}

	movements := make([]*treasury.Movement, len(movementModels))
	for i := range movementModels {
		movements[i] = movementModels[i].ToDomain()
	}
	page := shared.NewPaginated(movements, total, filter.Limit, filter.Offset)
	return &page, nil
}

// RealizedTotals sums realized movements per direction, optionally scoped to a
// bank account and to entries that occurred up to a cutoff date.
func (r *GormMovementRepository) RealizedTotals(ctx context.Context, companyID uuid.UUID, bankAccountID *uuid.UUID, until *time.Time) (treasury.MovementTotals, error) {
	query := r.db.WithContext(ctx).
		Model(&models.MovementModel{}).
		Select(
			"COALESCE(SUM(CASE WHEN direction = ? THEN amount_cents ELSE 0 END), 0) AS in_cents, "+
				"COALESCE(SUM(CASE WHEN direction = ? THEN amount_cents ELSE 0 END), 0) AS out_cents",
			treasury.MovementDirectionIn, treasury.MovementDirectionOut).
		Where("company_id = ? AND status = ?", companyID, treasury.MovementStatusRealized)

	if bankAccountID != nil {
		query = query.Where("bank_account_id = ?", *bankAccountID)
	}
	if until != nil {
		query = query.Where("occurred_at <= ?", *until)
	}

	var totals treasury.MovementTotals
	if err := query.Scan(&totals).Error; err != nil {
		return treasury.MovementTotals{}, err
	}
	return totals, nil
}

// Ensure GormMovementRepository implements MovementRepository
var _ treasury.MovementRepository = (*GormMovementRepository)(nil)
