package budget

import (
	"context"
	"fmt"
	"time"

	appfinance "github.com/finbooks/backend/internal/application/finance"
	"github.com/finbooks/backend/internal/domain/budget"
	"github.com/finbooks/backend/internal/domain/partner"
	"github.com/finbooks/backend/internal/domain/shared"
	"github.com/finbooks/backend/internal/infrastructure/telemetry"
	"github.com/google/uuid"
)

const maxBudgetPageSize = 100

// BudgetService manages budgets (sales quotes) and their approval into
// receivable accounts
type BudgetService struct {
	budgetRepo  budget.BudgetRepository
	contactRepo partner.ContactRepository
	txScope     TransactionScope
	now         func() time.Time
}

// NewBudgetService creates a new BudgetService
func NewBudgetService(
	budgetRepo budget.BudgetRepository,
	contactRepo partner.ContactRepository,
	txScope TransactionScope,
) *BudgetService {
	return &BudgetService{
		budgetRepo:  budgetRepo,
		contactRepo: contactRepo,
		txScope:     txScope,
		now:         time.Now,
	}
}

// Create creates a budget. Approval is a separate operation; a budget cannot
// be born approved.
func (s *BudgetService) Create(
	ctx context.Context,
	companyID uuid.UUID,
	userID *uuid.UUID,
	req CreateBudgetRequest,
) (*BudgetResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "budget", "create")
	defer span.End()

	status := budget.NormalizeBudgetStatus(req.Status)
	if status == budget.BudgetStatusApproved {
		err := shared.NewDomainError("INVALID_STATUS", "Budgets are approved through the approval operation")
		telemetry.RecordError(span, err)
		return nil, err
	}

	totalAmount, err := parseAmount("totalAmount", req.TotalAmount)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	if req.ClientID != nil {
		exists, err := s.contactRepo.ExistsByID(ctx, companyID, *req.ClientID)
		if err != nil {
			telemetry.RecordError(span, err)
			return nil, fmt.Errorf("failed to check client: %w", err)
		}
		if !exists {
			err := shared.NewDomainError("CONTACT_NOT_FOUND", "Client not found")
			telemetry.RecordError(span, err)
			return nil, err
		}
	}

	b, err := budget.NewBudget(companyID, req.BudgetNumber, totalAmount)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}
	b.Status = status
	b.ClientID = req.ClientID
	b.ClientName = req.ClientName
	b.SellerName = req.SellerName
	b.Observations = req.Observations
	b.CategoryID = req.CategoryID
	b.DepartmentID = req.DepartmentID
	b.BankAccountID = req.BankAccountID
	b.CreatedBy = userID
	b.UpdatedBy = userID
	if req.InstallmentCount > 0 {
		b.InstallmentCount = req.InstallmentCount
	}
	if b.TotalServices, err = parseOptionalAmount("totalServices", req.TotalServices); err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}
	if b.TotalMaterials, err = parseOptionalAmount("totalMaterials", req.TotalMaterials); err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}
	if b.DiscountValue, err = parseOptionalAmount("discountValue", req.DiscountValue); err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}
	if req.ExpectedBillingDate != nil {
		d, err := appfinance.ParseDateOnly(*req.ExpectedBillingDate)
		if err != nil {
			telemetry.RecordError(span, err)
			return nil, err
		}
		b.ExpectedBillingDate = &d
	}
	if len(req.Items) > 0 {
		items, err := buildItems(req.Items)
		if err != nil {
			telemetry.RecordError(span, err)
			return nil, err
		}
		b.ReplaceItems(items)
	}

	if err := s.budgetRepo.Create(ctx, b); err != nil {
		telemetry.RecordError(span, err)
		return nil, fmt.Errorf("failed to create budget: %w", err)
	}

	resp := ToBudgetResponse(b)
	return &resp, nil
}

// Update partially updates a budget. An approved budget accepts exactly one
// change: moving to canceled.
func (s *BudgetService) Update(
	ctx context.Context,
	companyID, id uuid.UUID,
	userID *uuid.UUID,
	req UpdateBudgetRequest,
) (*BudgetResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "budget", "update")
	defer span.End()

	b, err := s.budgetRepo.FindByID(ctx, companyID, id)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, fmt.Errorf("failed to load budget: %w", err)
	}
	if b == nil {
		err := shared.NewDomainError("BUDGET_NOT_FOUND", "Budget not found")
		telemetry.RecordError(span, err)
		return nil, err
	}

	if !b.IsEditable() {
		if req.Status != nil && budget.BudgetStatus(*req.Status) == budget.BudgetStatusCanceled {
			b.Cancel()
			if userID != nil {
				b.SetUpdatedBy(*userID)
			}
			if err := s.budgetRepo.Update(ctx, b); err != nil {
				telemetry.RecordError(span, err)
				return nil, fmt.Errorf("failed to update budget: %w", err)
			}
			resp := ToBudgetResponse(b)
			return &resp, nil
		}
		err := shared.NewDomainError("INVALID_STATE", "Approved budgets can only be canceled")
		telemetry.RecordError(span, err)
		return nil, err
	}

	if req.Status != nil {
		status := budget.NormalizeBudgetStatus(*req.Status)
		if status == budget.BudgetStatusApproved {
			err := shared.NewDomainError("INVALID_STATUS", "Budgets are approved through the approval operation")
			telemetry.RecordError(span, err)
			return nil, err
		}
		b.Status = status
	}
	if req.ClientID != nil {
		exists, err := s.contactRepo.ExistsByID(ctx, companyID, *req.ClientID)
		if err != nil {
			telemetry.RecordError(span, err)
			return nil, fmt.Errorf("failed to check client: %w", err)
		}
		if !exists {
			err := shared.NewDomainError("CONTACT_NOT_FOUND", "Client not found")
			telemetry.RecordError(span, err)
			return nil, err
		}
		b.ClientID = req.ClientID
	}
	if req.ClientName != nil {
		b.ClientName = *req.ClientName
	}
	if req.SellerName != nil {
		b.SellerName = *req.SellerName
	}
	if req.TotalAmount != nil {
		if b.TotalAmount, err = parseAmount("totalAmount", *req.TotalAmount); err != nil {
			telemetry.RecordError(span, err)
			return nil, err
		}
	}
	if req.TotalServices != nil {
		if b.TotalServices, err = parseAmount("totalServices", *req.TotalServices); err != nil {
			telemetry.RecordError(span, err)
			return nil, err
		}
	}
	if req.TotalMaterials != nil {
		if b.TotalMaterials, err = parseAmount("totalMaterials", *req.TotalMaterials); err != nil {
			telemetry.RecordError(span, err)
			return nil, err
		}
	}
	if req.DiscountValue != nil {
		if b.DiscountValue, err = parseAmount("discountValue", *req.DiscountValue); err != nil {
			telemetry.RecordError(span, err)
			return nil, err
		}
	}
	if req.ExpectedBillingDate != nil {
		d, err := appfinance.ParseDateOnly(*req.ExpectedBillingDate)
		if err != nil {
			telemetry.RecordError(span, err)
			return nil, err
		}
		b.ExpectedBillingDate = &d
	}
	if req.InstallmentCount != nil && *req.InstallmentCount > 0 {
		b.InstallmentCount = *req.InstallmentCount
	}
	if req.CategoryID != nil {
		b.CategoryID = req.CategoryID
	}
	if req.DepartmentID != nil {
		b.DepartmentID = req.DepartmentID
	}
	if req.BankAccountID != nil {
		b.BankAccountID = req.BankAccountID
	}
	if req.Observations != nil {
		b.Observations = *req.Observations
	}
	if req.Items != nil {
		items, err := buildItems(*req.Items)
		if err != nil {
			telemetry.RecordError(span, err)
			return nil, err
		}
		b.ReplaceItems(items)
	}
	if userID != nil {
		b.SetUpdatedBy(*userID)
	}

	if err := s.budgetRepo.Update(ctx, b); err != nil {
		telemetry.RecordError(span, err)
		return nil, fmt.Errorf("failed to update budget: %w", err)
	}

	resp := ToBudgetResponse(b)
	return &resp, nil
}

// Approve approves a budget and materializes its receivable account with a
// monthly installment schedule. Both writes happen in one transaction.
func (s *BudgetService) Approve(
	ctx context.Context,
	companyID, id uuid.UUID,
	userID *uuid.UUID,
) (*ApproveBudgetResult, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "budget", "approve")
	defer span.End()

	var result *ApproveBudgetResult
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		b, err := repos.BudgetRepo().FindByID(ctx, companyID, id)
		if err != nil {
			return fmt.Errorf("failed to load budget: %w", err)
		}
		if b == nil {
			return shared.NewDomainError("BUDGET_NOT_FOUND", "Budget not found")
		}

		account, err := b.Approve(s.now())
		if err != nil {
			return err
		}
		account.CreatedBy = userID
		account.UpdatedBy = userID
		if userID != nil {
			b.SetUpdatedBy(*userID)
		}

		if err := repos.AccountRepo().Create(ctx, account); err != nil {
			return fmt.Errorf("failed to create financial account: %w", err)
		}
		if err := repos.BudgetRepo().Update(ctx, b); err != nil {
			return fmt.Errorf("failed to update budget: %w", err)
		}

		result = &ApproveBudgetResult{
			Budget:           ToBudgetResponse(b),
			FinancialAccount: appfinance.ToAccountResponse(account, true),
		}
		return nil
	})
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}
	return result, nil
}

// Get loads a budget with its items
func (s *BudgetService) Get(ctx context.Context, companyID, id uuid.UUID) (*BudgetResponse, error) {
	b, err := s.budgetRepo.FindByID(ctx, companyID, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load budget: %w", err)
	}
	if b == nil {
		return nil, shared.NewDomainError("BUDGET_NOT_FOUND", "Budget not found")
	}
	resp := ToBudgetResponse(b)
	return &resp, nil
}

// List lists budgets newest first
func (s *BudgetService) List(
	ctx context.Context,
	companyID uuid.UUID,
	query ListBudgetsQuery,
) (*shared.Paginated[BudgetResponse], error) {
	filter := budget.BudgetFilter{
		Filter: shared.Filter{
			Limit:    query.Limit,
			Offset:   query.Offset,
			Search:   query.Search,
			OrderBy:  "created_at",
			OrderDir: "desc",
		},
		ClientID: query.ClientID,
	}
	filter.ClampLimit(maxBudgetPageSize)
	filter.ClampOffset()

	if query.Status != "" {
		status := budget.BudgetStatus(query.Status)
		if !status.IsValid() {
			return nil, shared.NewDomainError("INVALID_STATUS", "Unknown budget status filter")
		}
		filter.Status = &status
	}

	page, err := s.budgetRepo.List(ctx, companyID, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}

	items := make([]BudgetResponse, 0, len(page.Items))
	for _, b := range page.Items {
		items = append(items, ToBudgetResponse(b))
	}
	return &shared.Paginated[BudgetResponse]{
		Items:  items,
		Total:  page.Total,
		Limit:  page.Limit,
		Offset: page.Offset,
	}, nil
}

// Delete soft-deletes a budget
func (s *BudgetService) Delete(ctx context.Context, companyID, id uuid.UUID, userID *uuid.UUID) error {
	b, err := s.budgetRepo.FindByID(ctx, companyID, id)
	if err != nil {
		return fmt.Errorf("failed to load budget: %w", err)
	}
	if b == nil {
		return shared.NewDomainError("BUDGET_NOT_FOUND", "Budget not found")
	}
	b.SoftDelete()
	if userID != nil {
		b.SetUpdatedBy(*userID)
	}
	if err := s.budgetRepo.Update(ctx, b); err != nil {
		return fmt.Errorf("failed to update budget: %w", err)
	}
	return nil
}
