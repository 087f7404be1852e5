package treasury

import (
	"context"
	"fmt"
	"time"

	"github.com/finbooks/backend/internal/domain/finance"
	"github.com/finbooks/backend/internal/domain/shared"
	"github.com/finbooks/backend/internal/domain/shared/valueobject"
	"github.com/finbooks/backend/internal/domain/treasury"
	"github.com/finbooks/backend/internal/infrastructure/telemetry"
	"github.com/google/uuid"
)

const (
	minProjectionDays     = 1
	maxProjectionDays     = 365
	defaultProjectionDays = 30
)

// CashFlowService produces the company cash position and the forward
// cash-flow projection. Both are read-only views over bank accounts,
// realized movements and outstanding installments.
type CashFlowService struct {
	bankRepo        treasury.BankAccountRepository
	movementRepo    treasury.MovementRepository
	installmentRepo finance.InstallmentReadRepository
	now             func() time.Time
}

// NewCashFlowService creates a new CashFlowService
func NewCashFlowService(
	bankRepo treasury.BankAccountRepository,
	movementRepo treasury.MovementRepository,
	installmentRepo finance.InstallmentReadRepository,
) *CashFlowService {
	return &CashFlowService{
		bankRepo:        bankRepo,
		movementRepo:    movementRepo,
		installmentRepo: installmentRepo,
		now:             time.Now,
	}
}

// DefaultProjectionDays is the window used when the caller does not pass one
func DefaultProjectionDays() int {
	return defaultProjectionDays
}

// GetCashToday returns the company-wide cash position: active accounts'
// opening balances plus all realized inflows minus outflows.
func (s *CashFlowService) GetCashToday(ctx context.Context, companyID uuid.UUID) (*CashTodayResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "cashflow", "cash_today")
	defer span.End()

	opening, err := s.bankRepo.SumActiveOpeningBalances(ctx, companyID)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, fmt.Errorf("failed to sum opening balances: %w", err)
	}
	totals, err := s.movementRepo.RealizedTotals(ctx, companyID, nil, nil)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, fmt.Errorf("failed to sum movements: %w", err)
	}

	return &CashTodayResponse{
		OpeningBalanceTotalCents: opening,
		MovementsInTotalCents:    totals.InCents,
		MovementsOutTotalCents:   totals.OutCents,
		CashTodayCents:           opening + totals.NetCents(),
	}, nil
}

// GetCashFlow projects expected net cash movement per calendar day over a
// window of 1 to 365 days, plus an overdue bucket for installments past due
// and still carrying balance. Out-of-range windows are a validation error,
// never silently clamped. Day boundaries are UTC.
func (s *CashFlowService) GetCashFlow(ctx context.Context, companyID uuid.UUID, days int) (*CashFlowResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "cashflow", "projection")
	defer span.End()

	if days < minProjectionDays || days > maxProjectionDays {
		err := shared.NewDomainError("INVALID_DAYS", "days must be between 1 and 365")
		telemetry.RecordError(span, err)
		return nil, err
	}

	today := s.todayUTC()
	horizon := today.AddDate(0, 0, days)

	cashToday, err := s.GetCashToday(ctx, companyID)
	if err != nil {
		return nil, err
	}

	rows, err := s.installmentRepo.OutstandingDueBefore(ctx, companyID, horizon)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, fmt.Errorf("failed to load outstanding installments: %w", err)
	}

	resp := &CashFlowResponse{
		CashTodayCents: cashToday.CashTodayCents,
		Days:           make([]CashFlowDay, days),
	}

	// bucket outstanding balances: overdue before today, one bucket per
	// projected day after
	type bucket struct{ in, out int64 }
	byDay := make(map[string]*bucket, days)
	for _, row := range rows {
		cents := valueobject.NewMoneyBRL(row.Outstanding).Cents()
		if row.DueDate.Before(today) {
			if row.Kind == finance.AccountKindReceivable {
				resp.OverdueInTotalCents += cents
			} else {
				resp.OverdueOutTotalCents += cents
			}
			continue
		}
		key := row.DueDate.Format("2006-01-02")
		b := byDay[key]
		if b == nil {
			b = &bucket{}
			byDay[key] = b
		}
		if row.Kind == finance.AccountKindReceivable {
			b.in += cents
		} else {
			b.out += cents
		}
	}

	resp.CashTodayWithOverdueCents = resp.CashTodayCents + resp.OverdueInTotalCents - resp.OverdueOutTotalCents

	balance := resp.CashTodayCents
	balanceWithOverdue := resp.CashTodayWithOverdueCents
	for i := 0; i < days; i++ {
		date := today.AddDate(0, 0, i)
		key := date.Format("2006-01-02")
		day := CashFlowDay{Date: key}
		if b := byDay[key]; b != nil {
			day.InCents = b.in
			day.OutCents = b.out
		}
		day.NetCents = day.InCents - day.OutCents
		balance += day.NetCents
		balanceWithOverdue += day.NetCents
		day.BalanceCents = balance
		day.BalanceWithOverdue = balanceWithOverdue
		resp.Days[i] = day
	}

	return resp, nil
}

func (s *CashFlowService) todayUTC() time.Time {
	now := s.now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
