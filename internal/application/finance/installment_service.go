package finance

import (
	"context"
	"fmt"

	"github.com/finbooks/backend/internal/domain/finance"
	"github.com/finbooks/backend/internal/domain/shared"
	"github.com/finbooks/backend/internal/infrastructure/telemetry"
	"github.com/google/uuid"
)

// maxInstallmentPageSize caps installment listings; the default page is the
// maximum since callers typically pull the full schedule window at once
const maxInstallmentPageSize = 500

// ListInstallmentsQuery is the cross-account installment listing contract
type ListInstallmentsQuery struct {
	Status             string
	Kind               string
	FinancialAccountID *uuid.UUID
	From               string
	To                 string
	Limit              int
	Offset             int
}

// InstallmentService offers cross-account installment reads and the
// settle-one-installment shortcut
type InstallmentService struct {
	installmentRepo finance.InstallmentReadRepository
	postingService  *PaymentPostingService
}

// NewInstallmentService creates a new InstallmentService
func NewInstallmentService(
	installmentRepo finance.InstallmentReadRepository,
	postingService *PaymentPostingService,
) *InstallmentService {
	return &InstallmentService{
		installmentRepo: installmentRepo,
		postingService:  postingService,
	}
}

// List lists installments across accounts, due date ascending. Limit is
// clamped to [1,500] and offset to >= 0.
func (s *InstallmentService) List(
	ctx context.Context,
	companyID uuid.UUID,
	query ListInstallmentsQuery,
) (*shared.Paginated[InstallmentResponse], error) {
	filter := finance.InstallmentFilter{
		Filter: shared.Filter{
			Limit:    query.Limit,
			Offset:   query.Offset,
			OrderBy:  "due_date",
			OrderDir: "asc",
		},
		FinancialAccountID: query.FinancialAccountID,
	}
	filter.ClampLimit(maxInstallmentPageSize)
	filter.ClampOffset()

	if query.Status != "" {
		status := finance.InstallmentStatus(query.Status)
		if !status.IsValid() {
			return nil, shared.NewDomainError("INVALID_STATUS", "Status must be open, partial or paid")
		}
		filter.Status = &status
	}
	if query.Kind != "" {
		kind := finance.AccountKind(query.Kind)
		if !kind.IsValid() {
			return nil, shared.NewDomainError("INVALID_KIND", "Kind must be receivable or payable")
		}
		filter.Kind = &kind
	}
	if query.From != "" {
		from, err := ParseDateOnly(query.From)
		if err != nil {
			return nil, err
		}
		filter.DueFrom = &from
	}
	if query.To != "" {
		to, err := ParseDateOnly(query.To)
		if err != nil {
			return nil, err
		}
		filter.DueTo = &to
	}

	page, err := s.installmentRepo.List(ctx, companyID, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list installments: %w", err)
	}

	items := make([]InstallmentResponse, 0, len(page.Items))
	for _, inst := range page.Items {
		items = append(items, ToInstallmentResponse(inst))
	}
	return &shared.Paginated[InstallmentResponse]{
		Items:  items,
		Total:  page.Total,
		Limit:  page.Limit,
		Offset: page.Offset,
	}, nil
}

// Summary aggregates installment counts for the given accounts. Accounts
// without installments are reported with a zero count so callers can rely on
// one entry per requested ID.
func (s *InstallmentService) Summary(
	ctx context.Context,
	companyID uuid.UUID,
	accountIDs []uuid.UUID,
) ([]InstallmentAccountSummary, error) {
	if len(accountIDs) == 0 {
		return nil, shared.NewDomainError("INVALID_ACCOUNT_IDS", "At least one financialAccountId is required")
	}

	counts, err := s.installmentRepo.CountByAccounts(ctx, companyID, accountIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize installments: %w", err)
	}

	summaries := make([]InstallmentAccountSummary, 0, len(accountIDs))
	for _, id := range accountIDs {
		summaries = append(summaries, InstallmentAccountSummary{
			FinancialAccountID: id,
			TotalInstallments:  counts[id],
		})
	}
	return summaries, nil
}

// Settle pays (part of) a single installment by delegating to the posting
// orchestrator with the installment pinned to the front of the allocation
// order and zero interest/discount. The payment date defaults to today.
func (s *InstallmentService) Settle(
	ctx context.Context,
	companyID uuid.UUID,
	userID *uuid.UUID,
	installmentID uuid.UUID,
	req SettleInstallmentRequest,
) (*PostPaymentResult, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "installment", "settle")
	defer span.End()

	telemetry.SetAttributes(span,
		telemetry.SpanAttrCompanyID, companyID.String(),
		telemetry.SpanAttrInstallmentID, installmentID.String(),
	)

	installment, err := s.installmentRepo.FindByID(ctx, companyID, installmentID)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, fmt.Errorf("failed to load installment: %w", err)
	}
	if installment == nil {
		err := shared.NewDomainError("INSTALLMENT_NOT_FOUND", "Installment not found")
		telemetry.RecordError(span, err)
		return nil, err
	}

	paymentDate := req.PaymentDate
	if paymentDate == "" {
		paymentDate = TodayUTC().Format("2006-01-02")
	}

	result, err := s.postingService.PostPayment(ctx, companyID, userID, PostPaymentRequest{
		FinancialAccountID: installment.FinancialAccountID,
		InstallmentID:      &installmentID,
		BankAccountID:      req.BankAccountID,
		PaymentDate:        paymentDate,
		PaidAmount:         req.PaidAmount,
		Notes:              req.Notes,
	})
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}
	return result, nil
}
