package treasury

import (
	"context"
	"fmt"

	"github.com/finbooks/backend/internal/domain/partner"
	"github.com/finbooks/backend/internal/domain/shared"
	"github.com/finbooks/backend/internal/domain/treasury"
	"github.com/finbooks/backend/internal/infrastructure/telemetry"
	"github.com/google/uuid"
)

const maxMovementPageSize = 100

// MovementService manages manual cash ledger entries
type MovementService struct {
	movementRepo   treasury.MovementRepository
	bankRepo       treasury.BankAccountRepository
	categoryRepo   partner.CategoryRepository
	contactRepo    partner.ContactRepository
	departmentRepo partner.DepartmentRepository
}

// NewMovementService creates a new MovementService
func NewMovementService(
	movementRepo treasury.MovementRepository,
	bankRepo treasury.BankAccountRepository,
	categoryRepo partner.CategoryRepository,
	contactRepo partner.ContactRepository,
	departmentRepo partner.DepartmentRepository,
) *MovementService {
	return &MovementService{
		movementRepo:   movementRepo,
		bankRepo:       bankRepo,
		categoryRepo:   categoryRepo,
		contactRepo:    contactRepo,
		departmentRepo: departmentRepo,
	}
}

// Create records a manual movement. Every referenced category, bank account,
// contact and department must exist within the same company.
func (s *MovementService) Create(
	ctx context.Context,
	companyID uuid.UUID,
	req CreateMovementRequest,
) (*MovementResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "movement", "create")
	defer span.End()

	occurredAt, err := parseDateOnly(req.OccurredAt)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	if err := s.validateReferences(ctx, companyID, req); err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	movement, err := treasury.NewManualMovement(
		companyID, req.Description, req.AmountCents,
		treasury.MovementDirection(req.Direction), occurredAt,
		req.BankAccountID, req.CategoryID, req.ContactID, req.DepartmentID,
	)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	if err := s.movementRepo.Create(ctx, movement); err != nil {
		telemetry.RecordError(span, err)
		return nil, fmt.Errorf("failed to create movement: %w", err)
	}

	resp := ToMovementResponse(movement)
	return &resp, nil
}

func (s *MovementService) validateReferences(ctx context.Context, companyID uuid.UUID, req CreateMovementRequest) error {
	if req.CategoryID != nil {
		exists, err := s.categoryRepo.ExistsByID(ctx, companyID, *req.CategoryID)
		if err != nil {
			return fmt.Errorf("failed to check category: %w", err)
		}
		if !exists {
			return shared.NewDomainError("CATEGORY_NOT_FOUND", "Category not found")
		}
	}
	if req.BankAccountID != nil {
		exists, err := s.bankRepo.ExistsByID(ctx, companyID, *req.BankAccountID)
		if err != nil {
			return fmt.Errorf("failed to check bank account: %w", err)
		}
		if !exists {
			return shared.NewDomainError("BANK_ACCOUNT_NOT_FOUND", "Bank account not found")
		}
	}
	if req.ContactID != nil {
		exists, err := s.contactRepo.ExistsByID(ctx, companyID, *req.ContactID)
		if err != nil {
			return fmt.Errorf("failed to check contact: %w", err)
		}
		if !exists {
			return shared.NewDomainError("CONTACT_NOT_FOUND", "Contact not found")
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
	return nil
}

// List lists movements newest first, optionally bounded by occurrence date
func (s *MovementService) List(
	ctx context.Context,
	companyID uuid.UUID,
	query ListMovementsQuery,
) (*shared.Paginated[MovementResponse], error) {
	filter := treasury.MovementFilter{
		Filter: shared.Filter{
			Limit:    query.Limit,
			Offset:   query.Offset,
			OrderBy:  "occurred_at",
			OrderDir: "desc",
		},
	}
	filter.ClampLimit(maxMovementPageSize)
	filter.ClampOffset()

	if query.From != "" {
		from, err := parseDateOnly(query.From)
		if err != nil {
			return nil, err
		}
		filter.From = &from
	}
	if query.To != "" {
		to, err := parseDateOnly(query.To)
		if err != nil {
			return nil, err
		}
		filter.To = &to
	}

	page, err := s.movementRepo.List(ctx, companyID, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list movements: %w", err)
	}

	items := make([]MovementResponse, 0, len(page.Items))
	for _, m := range page.Items {
		items = append(items, ToMovementResponse(m))
	}
	return &shared.Paginated[MovementResponse]{
		Items:  items,
		Total:  page.Total,
		Limit:  page.Limit,
		Offset: page.Offset,
	}, nil
}
