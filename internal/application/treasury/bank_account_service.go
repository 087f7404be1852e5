package treasury

import (
	"context"
	"fmt"

	"github.com/finbooks/backend/internal/domain/shared"
	"github.com/finbooks/backend/internal/domain/treasury"
	"github.com/google/uuid"
)

// BankAccountService manages bank accounts and their derived balances
type BankAccountService struct {
	bankRepo     treasury.BankAccountRepository
	movementRepo treasury.MovementRepository
}

// NewBankAccountService creates a new BankAccountService
func NewBankAccountService(
	bankRepo treasury.BankAccountRepository,
	movementRepo treasury.MovementRepository,
) *BankAccountService {
	return &BankAccountService{bankRepo: bankRepo, movementRepo: movementRepo}
}

// Create creates a bank account
func (s *BankAccountService) Create(
	ctx context.Context,
	companyID uuid.UUID,
	req CreateBankAccountRequest,
) (*BankAccountResponse, error) {
	account, err := treasury.NewBankAccount(
		companyID, req.Name, req.Institution,
		treasury.NormalizeBankAccountType(req.AccountType),
	)
	if err != nil {
		return nil, err
	}
	account.Agency = req.Agency
	account.AccountNumber = req.AccountNumber
	if req.OpeningBalanceCents != 0 || req.OpeningBalanceDate != nil {
		if req.OpeningBalanceDate != nil {
			d, err := parseDateOnly(*req.OpeningBalanceDate)
			if err != nil {
				return nil, err
			}
			account.SetOpeningBalance(req.OpeningBalanceCents, &d)
		} else {
			account.SetOpeningBalance(req.OpeningBalanceCents, nil)
		}
	}

	if err := s.bankRepo.Create(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to create bank account: %w", err)
	}
	resp := ToBankAccountResponse(account)
	return &resp, nil
}

// Update partially updates a bank account
func (s *BankAccountService) Update(
	ctx context.Context,
	companyID, id uuid.UUID,
	req UpdateBankAccountRequest,
) (*BankAccountResponse, error) {
	account, err := s.bankRepo.FindByID(ctx, companyID, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load bank account: %w", err)
	}
	if account == nil {
		return nil, shared.NewDomainError("BANK_ACCOUNT_NOT_FOUND", "Bank account not found")
	}

	if req.Name != nil {
		if *req.Name == "" {
			return nil, shared.NewDomainError("INVALID_NAME", "Bank account name cannot be empty")
		}
		account.Name = *req.Name
	}
	if req.Institution != nil {
		account.Institution = *req.Institution
	}
	if req.AccountType != nil {
		account.AccountType = treasury.NormalizeBankAccountType(*req.AccountType)
	}
	if req.Agency != nil {
		account.Agency = *req.Agency
	}
	if req.AccountNumber != nil {
		account.AccountNumber = *req.AccountNumber
	}
	if req.OpeningBalanceCents != nil || req.OpeningBalanceDate != nil {
		cents := account.OpeningBalanceCents
		if req.OpeningBalanceCents != nil {
			cents = *req.OpeningBalanceCents
		}
		date := account.OpeningBalanceDate
		if req.OpeningBalanceDate != nil {
			d, err := parseDateOnly(*req.OpeningBalanceDate)
			if err != nil {
				return nil, err
			}
			date = &d
		}
		account.SetOpeningBalance(cents, date)
	}
	if req.IsActive != nil {
		if *req.IsActive {
			account.Activate()
		} else {
			account.Deactivate()
		}
	}

	if err := s.bankRepo.Update(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to update bank account: %w", err)
	}
	resp := ToBankAccountResponse(account)
	return &resp, nil
}

// Deactivate soft-deletes a bank account. Movements referencing it are kept;
// the account just stops appearing as active.
func (s *BankAccountService) Deactivate(ctx context.Context, companyID, id uuid.UUID) (*BankAccountResponse, error) {
	account, err := s.bankRepo.FindByID(ctx, companyID, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load bank account: %w", err)
	}
	if account == nil {
		return nil, shared.NewDomainError("BANK_ACCOUNT_NOT_FOUND", "Bank account not found")
	}

	account.Deactivate()
	if err := s.bankRepo.Update(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to deactivate bank account: %w", err)
	}
	resp := ToBankAccountResponse(account)
	return &resp, nil
}

// Get loads a bank account
func (s *BankAccountService) Get(ctx context.Context, companyID, id uuid.UUID) (*BankAccountResponse, error) {
	account, err := s.bankRepo.FindByID(ctx, companyID, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load bank account: %w", err)
	}
	if account == nil {
		return nil, shared.NewDomainError("BANK_ACCOUNT_NOT_FOUND", "Bank account not found")
	}
	resp := ToBankAccountResponse(account)
	return &resp, nil
}

// List lists bank accounts
func (s *BankAccountService) List(
	ctx context.Context,
	companyID uuid.UUID,
	filter shared.Filter,
) (*shared.Paginated[BankAccountResponse], error) {
	page, err := s.bankRepo.List(ctx, companyID, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list bank accounts: %w", err)
	}
	items := make([]BankAccountResponse, 0, len(page.Items))
	for _, b := range page.Items {
		items = append(items, ToBankAccountResponse(b))
	}
	return &shared.Paginated[BankAccountResponse]{
		Items:  items,
		Total:  page.Total,
		Limit:  page.Limit,
		Offset: page.Offset,
	}, nil
}

// Balances returns every account with its derived current balance plus the
// company-wide totals. Current balances are never stored; they are always
// opening balance plus realized movements.
func (s *BankAccountService) Balances(ctx context.Context, companyID uuid.UUID) (*BankBalancesResponse, error) {
	page, err := s.bankRepo.List(ctx, companyID, shared.Filter{Limit: 500, OrderBy: "name", OrderDir: "asc"})
	if err != nil {
		return nil, fmt.Errorf("failed to list bank accounts: %w", err)
	}

	resp := &BankBalancesResponse{
		Accounts: make([]BankAccountBalanceResponse, 0, len(page.Items)),
	}
	for _, account := range page.Items {
		id := account.ID
		totals, err := s.movementRepo.RealizedTotals(ctx, companyID, &id, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to sum movements: %w", err)
		}
		balance := treasury.BankAccountBalance{
			Account:           account,
			MovementsInCents:  totals.InCents,
			MovementsOutCents: totals.OutCents,
		}
		resp.Accounts = append(resp.Accounts, BankAccountBalanceResponse{
			BankAccountResponse: ToBankAccountResponse(account),
			CurrentBalanceCents: balance.CurrentBalanceCents(),
		})
		if account.IsActive {
			resp.OpeningBalanceTotalCents += account.OpeningBalanceCents
		}
	}

	companyTotals, err := s.movementRepo.RealizedTotals(ctx, companyID, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to sum movements: %w", err)
	}
	resp.MovementsInTotalCents = companyTotals.InCents
	resp.MovementsOutTotalCents = companyTotals.OutCents
	resp.TotalCashTodayCents = resp.OpeningBalanceTotalCents + companyTotals.InCents - companyTotals.OutCents

	return resp, nil
}
