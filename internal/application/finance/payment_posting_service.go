package finance

import (
	"context"
	"fmt"

	"github.com/finbooks/backend/internal/domain/finance"
	"github.com/finbooks/backend/internal/domain/shared"
	"github.com/finbooks/backend/internal/domain/treasury"
	"github.com/finbooks/backend/internal/infrastructure/telemetry"
	"github.com/google/uuid"
)

// PaymentPostingService is the settlement orchestrator. A single PostPayment
// call records the payment, allocates it across installments, recomputes the
// account's settlement state and posts the cash movement, all inside one
// database transaction.
type PaymentPostingService struct {
	txScope TransactionScope
}

// NewPaymentPostingService creates a new PaymentPostingService
func NewPaymentPostingService(txScope TransactionScope) *PaymentPostingService {
	return &PaymentPostingService{txScope: txScope}
}

// PostPayment posts one payment against a financial account.
//
// Inside one transaction it:
//  1. loads the account and its installments under a row lock
//  2. rejects paid/canceled accounts before any write
//  3. persists the immutable payment record
//  4. allocates the paid amount FIFO by due date (pinned installment first)
//     and persists the updated installments and account state
//  5. posts exactly one realized movement when a bank account is designated,
//     either on the request or as the account's default; with no bank
//     account the payment is recorded and cash position is untouched
//
// Any failure rolls the whole transaction back; no partial state is ever
// observable.
func (s *PaymentPostingService) PostPayment(
	ctx context.Context,
	companyID uuid.UUID,
	userID *uuid.UUID,
	req PostPaymentRequest,
) (*PostPaymentResult, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "payment", "post")
	defer span.End()

	telemetry.SetAttributes(span,
		telemetry.SpanAttrCompanyID, companyID.String(),
		telemetry.SpanAttrAccountID, req.FinancialAccountID.String(),
		telemetry.SpanAttrAmount, req.PaidAmount,
	)

	paymentDate, err := ParseDateOnly(req.PaymentDate)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}
	paidAmount, err := parseAmount("paidAmount", req.PaidAmount)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}
	interest, err := parseOptionalAmount("interest", req.Interest)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}
	discount, err := parseOptionalAmount("discount", req.Discount)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	payment, err := finance.NewPayment(
		companyID, req.FinancialAccountID,
		paidAmount, interest, discount,
		paymentDate, req.InstallmentID, req.BankAccountID, req.Notes,
	)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}
	payment.CreatedBy = userID

	var result *PostPaymentResult
	err = s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		account, err := repos.AccountRepo().FindByIDForUpdate(ctx, companyID, req.FinancialAccountID)
		if err != nil {
			return fmt.Errorf("failed to load financial account: %w", err)
		}
		if account == nil {
			return shared.NewDomainError("ACCOUNT_NOT_FOUND", "Financial account not found")
		}

		allocations, err := account.ApplyPayment(paidAmount, req.InstallmentID)
		if err != nil {
			return err
		}

		if err := repos.PaymentRepo().Create(ctx, payment); err != nil {
			return fmt.Errorf("failed to create payment: %w", err)
		}
		if err := repos.AccountRepo().Update(ctx, account); err != nil {
			return fmt.Errorf("failed to update financial account: %w", err)
		}

		var movementID *uuid.UUID
		bankAccountID := effectiveBankAccount(req.BankAccountID, account)
		if bankAccountID != nil {
			exists, err := repos.BankAccountRepo().ExistsByID(ctx, companyID, *bankAccountID)
			if err != nil {
				return fmt.Errorf("failed to check bank account: %w", err)
			}
			if !exists {
				return shared.NewDomainError("BANK_ACCOUNT_NOT_FOUND", "Bank account not found")
			}

			// A fully discounted payment moves no cash; the payment is
			// recorded but no ledger entry is written, same as when no bank
			// account is designated.
			if cents := payment.MovementCents(); cents > 0 {
				movement, err := treasury.NewSettlementMovement(
					companyID,
					account.SettlementDescription(),
					cents,
					treasury.MovementDirection(account.MovementDirection()),
					paymentDate,
					*bankAccountID,
					payment.ID,
					account.CategoryID, &account.ContactID, account.DepartmentID,
				)
				if err != nil {
					return err
				}
				if err := repos.MovementRepo().Create(ctx, movement); err != nil {
					return fmt.Errorf("failed to create movement: %w", err)
				}
				movementID = &movement.ID
			}
		}

		allocResponses := make([]AllocationResponse, 0, len(allocations))
		for _, a := range allocations {
			allocResponses = append(allocResponses, AllocationResponse{
				InstallmentID: a.InstallmentID,
				Amount:        a.Amount.StringFixed(2),
			})
		}
		result = &PostPaymentResult{
			Payment:     ToPaymentResponse(payment),
			Account:     ToAccountResponse(account, true),
			Allocations: allocResponses,
			MovementID:  movementID,
		}
		return nil
	})
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	telemetry.SetAttributes(span, telemetry.SpanAttrPaymentID, payment.ID.String())
	return result, nil
}

// effectiveBankAccount resolves which bank account the movement settles
// through: the one on the request wins, then the account's own default.
// Nil means no movement is posted.
func effectiveBankAccount(requested *uuid.UUID, account *finance.FinancialAccount) *uuid.UUID {
	if requested != nil {
		return requested
	}
	return account.BankAccountID
}

// ListPayments lists the payment records of one financial account, newest
// payment date first
func (s *PaymentPostingService) ListPayments(
	ctx context.Context,
	companyID, accountID uuid.UUID,
	filter shared.Filter,
) (*shared.Paginated[PaymentResponse], error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "payment", "list")
	defer span.End()

	var page *shared.Paginated[*finance.Payment]
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		exists, err := repos.AccountRepo().ExistsByID(ctx, companyID, accountID)
		if err != nil {
			return fmt.Errorf("failed to check financial account: %w", err)
		}
		if !exists {
			return shared.NewDomainError("ACCOUNT_NOT_FOUND", "Financial account not found")
		}
		page, err = repos.PaymentRepo().List(ctx, companyID, finance.PaymentFilter{
			Filter:             filter,
			FinancialAccountID: &accountID,
		})
		return err
	})
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	items := make([]PaymentResponse, 0, len(page.Items))
	for _, p := range page.Items {
		items = append(items, ToPaymentResponse(p))
	}
	return &shared.Paginated[PaymentResponse]{
		Items:  items,
		Total:  page.Total,
		Limit:  page.Limit,
		Offset: page.Offset,
	}, nil
}
