package finance

import (
	"context"
	"fmt"

	"github.com/finbooks/backend/internal/domain/finance"
	"github.com/finbooks/backend/internal/domain/partner"
	"github.com/finbooks/backend/internal/domain/shared"
	"github.com/finbooks/backend/internal/domain/shared/valueobject"
	"github.com/finbooks/backend/internal/domain/treasury"
	"github.com/finbooks/backend/internal/infrastructure/telemetry"
	"github.com/google/uuid"
)

// AccountService manages financial accounts and their installment schedules
type AccountService struct {
	accountRepo     finance.FinancialAccountRepository
	contactRepo     partner.ContactRepository
	categoryRepo    partner.CategoryRepository
	departmentRepo  partner.DepartmentRepository
	bankAccountRepo treasury.BankAccountRepository
}

// NewAccountService creates a new AccountService
func NewAccountService(
	accountRepo finance.FinancialAccountRepository,
	contactRepo partner.ContactRepository,
	categoryRepo partner.CategoryRepository,
	departmentRepo partner.DepartmentRepository,
	bankAccountRepo treasury.BankAccountRepository,
) *AccountService {
	return &AccountService{
		accountRepo:     accountRepo,
		contactRepo:     contactRepo,
		categoryRepo:    categoryRepo,
		departmentRepo:  departmentRepo,
		bankAccountRepo: bankAccountRepo,
	}
}

// CreateAccount creates a financial account together with its installment
// schedule. Every referenced contact, category, department and bank account
// must exist within the same company.
func (s *AccountService) CreateAccount(
	ctx context.Context,
	companyID uuid.UUID,
	userID *uuid.UUID,
	req CreateAccountRequest,
) (*AccountResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "financial_account", "create")
	defer span.End()

	telemetry.SetAttributes(span,
		telemetry.SpanAttrCompanyID, companyID.String(),
		telemetry.SpanAttrKind, req.Kind,
	)

	totalAmount, err := parseAmount("totalAmount", req.TotalAmount)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}
	issueDate, err := ParseDateOnly(req.IssueDate)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	schedule := make([]finance.InstallmentSpec, 0, len(req.Installments))
	for _, input := range req.Installments {
		dueDate, err := ParseDateOnly(input.DueDate)
		if err != nil {
			telemetry.RecordError(span, err)
			return nil, err
		}
		amount, err := parseAmount("installments.amount", input.Amount)
		if err != nil {
			telemetry.RecordError(span, err)
			return nil, err
		}
		schedule = append(schedule, finance.InstallmentSpec{
			InstallmentNumber: input.InstallmentNumber,
			DueDate:           dueDate,
			Amount:            amount,
		})
	}

	if err := s.validateReferences(ctx, companyID, req); err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	account, err := finance.NewFinancialAccount(
		companyID,
		finance.AccountKind(req.Kind),
		req.ContactID,
		valueobject.NewMoneyBRL(totalAmount),
		req.Description,
		issueDate,
		schedule,
	)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}
	account.CategoryID = req.CategoryID
	account.DepartmentID = req.DepartmentID
	account.BankAccountID = req.BankAccountID
	account.InvoiceNumber = req.InvoiceNumber
	account.Observations = req.Observations
	account.CreatedBy = userID
	account.UpdatedBy = userID

	if err := s.accountRepo.Create(ctx, account); err != nil {
		telemetry.RecordError(span, err)
		return nil, fmt.Errorf("failed to create financial account: %w", err)
	}

	resp := ToAccountResponse(account, true)
	return &resp, nil
}

// validateReferences checks every foreign key on the request against the
// caller's company
func (s *AccountService) validateReferences(ctx context.Context, companyID uuid.UUID, req CreateAccountRequest) error {
	exists, err := s.contactRepo.ExistsByID(ctx, companyID, req.ContactID)
	if err != nil {
		return fmt.Errorf("failed to check contact: %w", err)
	}
	if !exists {
		return shared.NewDomainError("CONTACT_NOT_FOUND", "Contact not found")
	}

	if req.CategoryID != nil {
		exists, err := s.categoryRepo.ExistsByID(ctx, companyID, *req.CategoryID)
		if err != nil {
			return fmt.Errorf("failed to check category: %w", err)
		}
		if !exists {
			return shared.NewDomainError("CATEGORY_NOT_FOUND", "Category not found")
		}
	}
	if req.DepartmentID != nil {
		exists, err := s.departmentRepo.ExistsByID(ctx, companyID, *req.DepartmentID)
		if err != nil {
			return fmt.Errorf("failed to check department: %w", err)
		}
		if !exists {
			return shared.NewDomainError("DEPARTMENT_NOT_FOUND", "Department not found")
		}
	}
	if req.BankAccountID != nil {
		exists, err := s.bankAccountRepo.ExistsByID(ctx, companyID, *req.BankAccountID)
		if err != nil {
			return fmt.Errorf("failed to check bank account: %w", err)
		}
		if !exists {
			return shared.NewDomainError("BANK_ACCOUNT_NOT_FOUND", "Bank account not found")
		}
	}
	return nil
}

// GetAccount loads a financial account with its installments
func (s *AccountService) GetAccount(ctx context.Context, companyID, id uuid.UUID) (*AccountResponse, error) {
	account, err := s.accountRepo.FindByID(ctx, companyID, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load financial account: %w", err)
	}
	if account == nil {
		return nil, shared.NewDomainError("ACCOUNT_NOT_FOUND", "Financial account not found")
	}
	resp := ToAccountResponse(account, true)
	return &resp, nil
}

// ListAccounts lists financial accounts without their installments
func (s *AccountService) ListAccounts(
	ctx context.Context,
	companyID uuid.UUID,
	filter finance.AccountFilter,
) (*shared.Paginated[AccountResponse], error) {
	page, err := s.accountRepo.List(ctx, companyID, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list financial accounts: %w", err)
	}

	items := make([]AccountResponse, 0, len(page.Items))
	for _, account := range page.Items {
		items = append(items, ToAccountResponse(account, false))
	}
	return &shared.Paginated[AccountResponse]{
		Items:  items,
		Total:  page.Total,
		Limit:  page.Limit,
		Offset: page.Offset,
	}, nil
}

// CancelAccount soft-cancels an open or partially paid account
func (s *AccountService) CancelAccount(
	ctx context.Context,
	companyID, id uuid.UUID,
	userID *uuid.UUID,
	req CancelAccountRequest,
) (*AccountResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "financial_account", "cancel")
	defer span.End()

	account, err := s.accountRepo.FindByID(ctx, companyID, id)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, fmt.Errorf("failed to load financial account: %w", err)
	}
	if account == nil {
		err := shared.NewDomainError("ACCOUNT_NOT_FOUND", "Financial account not found")
		telemetry.RecordError(span, err)
		return nil, err
	}

	if err := account.Cancel(req.Reason); err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}
	if userID != nil {
		account.SetUpdatedBy(*userID)
	}

	if err := s.accountRepo.Update(ctx, account); err != nil {
		telemetry.RecordError(span, err)
		return nil, fmt.Errorf("failed to update financial account: %w", err)
	}

	resp := ToAccountResponse(account, true)
	return &resp, nil
}
