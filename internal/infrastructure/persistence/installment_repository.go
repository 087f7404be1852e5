package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/finbooks/backend/internal/domain/finance"
	"github.com/finbooks/backend/internal/domain/shared"
	"github.com/finbooks/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormInstallmentReadRepository implements InstallmentReadRepository using GORM.
// It only reads: installment writes always go through the owning account.
type GormInstallmentReadRepository struct {
	db *gorm.DB
}

// NewGormInstallmentReadRepository creates a new GormInstallmentReadRepository
func NewGormInstallmentReadRepository(db *gorm.DB) *GormInstallmentReadRepository {
	return &GormInstallmentReadRepository{db: db}
}

// FindByID finds an installment by its ID within a company
func (r *GormInstallmentReadRepository) FindByID(ctx context.Context, companyID, id uuid.UUID) (*finance.Installment, error) {
	var model models.InstallmentModel
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

// List returns a page of installments across accounts. The Kind filter joins
// through the parent account.
func (r *GormInstallmentReadRepository) List(ctx context.Context, companyID uuid.UUID, filter finance.InstallmentFilter) (*shared.Paginated[*finance.Installment], error) {
	base := r.db.WithContext(ctx).Model(&models.InstallmentModel{}).
		Where("installments.company_id = ?", companyID)

	if filter.FinancialAccountID != nil {
		base = base.Where("installments.financial_account_id = ?", *filter.FinancialAccountID)
	}
	if filter.Status != nil {
		base = base.Where("installments.status = ?", *filter.Status)
	}
	if filter.Kind != nil {
		base = base.
			Joins("JOIN financial_accounts ON financial_accounts.id = installments.financial_account_id").
			Where("financial_accounts.kind = ?", *filter.Kind)
	}
	if filter.DueFrom != nil {
		base = base.Where("installments.due_date >= ?", *filter.DueFrom)
	}
	if filter.DueTo != nil {
		base = base.Where("installments.due_date <= ?", *filter.DueTo)
	}
	if filter.OverdueOnly {
		today := time.Now().UTC().Truncate(24 * time.Hour)
		base = base.Where("installments.due_date < ? AND installments.paid_total < installments.amount", today)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, err
	}

	orderBy := ValidateSortField(filter.OrderBy, InstallmentSortFields, "due_date")
	orderDir := ValidateSortOrder(filter.OrderDir)
	if filter.OrderBy == "" && filter.OrderDir == "" {
		orderDir = "ASC"
	}

	var installmentModels []models.InstallmentModel
	if err := base.
		Order("installments." + orderBy + " " + orderDir).
		Order("installments.installment_number ASC").
		Limit(filter.Limit).
		Offset(filter.Offset).
		Find(&installmentModels).Error; err != nil {
		return nil, err
	}

	installments := make([]*finance.Installment, len(installmentModels))
	for i := range installmentModels {
		installments[i] = installmentModels[i].ToDomain()
	}
	page := shared.NewPaginated(installments, total, filter.Limit, filter.Offset)
	return &page, nil
}

// OutstandingDueBefore returns one row per installment that still carries
// balance on a non-canceled account and is due strictly before the limit.
func (r *GormInstallmentReadRepository) OutstandingDueBefore(ctx context.Context, companyID uuid.UUID, limit time.Time) ([]finance.CashFlowRow, error) {
	var rows []struct {
		DueDate     time.Time
		Kind        finance.AccountKind
		Outstanding decimal.Decimal
	}
	if err := r.db.WithContext(ctx).
		Model(&models.InstallmentModel{}).
		Select("installments.due_date AS due_date, financial_accounts.kind AS kind, installments.amount - installments.paid_total AS outstanding").
		Joins("JOIN financial_accounts ON financial_accounts.id = installments.financial_account_id").
		Where("installments.company_id = ?", companyID).
		Where("financial_accounts.status <> ?", finance.AccountStatusCanceled).
		Where("installments.paid_total < installments.amount").
		Where("installments.due_date < ?", limit).
		Order("installments.due_date ASC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	result := make([]finance.CashFlowRow, 0, len(rows))
	for _, row := range rows {
		result = append(result, finance.CashFlowRow{
			DueDate:     row.DueDate,
			Kind:        row.Kind,
			Outstanding: row.Outstanding,
		})
	}
	return result, nil
}

// CountByAccounts aggregates installment counts per financial account
func (r *GormInstallmentReadRepository) CountByAccounts(ctx context.Context, companyID uuid.UUID, accountIDs []uuid.UUID) (map[uuid.UUID]int64, error) {
	if len(accountIDs) == 0 {
		return map[uuid.UUID]int64{}, nil
	}

	var rows []struct {
		FinancialAccountID uuid.UUID
		Total              int64
	}
	if err := r.db.WithContext(ctx).
		Model(&models.InstallmentModel{}).
		Select("financial_account_id, COUNT(*) AS total").
		Where("company_id = ? AND financial_account_id IN ?", companyID, accountIDs).
		Group("financial_account_id").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	counts := make(map[uuid.UUID]int64, len(rows))
	for _, row := range rows {
		counts[row.FinancialAccountID] = row.Total
	}
	return counts, nil
}

// Ensure GormInstallmentReadRepository implements InstallmentReadRepository
var _ finance.InstallmentReadRepository = (*GormInstallmentReadRepository)(nil)
