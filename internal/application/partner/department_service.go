package partner

import (
	"context"
	"fmt"

	"github.com/finbooks/backend/internal/domain/partner"
	"github.com/finbooks/backend/internal/domain/shared"
	"github.com/google/uuid"
)

const maxDepartmentPageSize = 100

// DepartmentService manages cost centers
type DepartmentService struct {
	departmentRepo partner.DepartmentRepository
}

// NewDepartmentService creates a new DepartmentService
func NewDepartmentService(departmentRepo partner.DepartmentRepository) *DepartmentService {
	return &DepartmentService{departmentRepo: departmentRepo}
}

// Create creates a department
func (s *DepartmentService) Create(
	ctx context.Context,
	companyID uuid.UUID,
	userID *uuid.UUID,
	req CreateDepartmentRequest,
) (*DepartmentResponse, error) {
	department, err := partner.NewDepartment(companyID, req.Name, req.Description)
	if err != nil {
		return nil, err
	}
	department.CreatedBy = userID
	department.UpdatedBy = userID

	if err := s.departmentRepo.Create(ctx, department); err != nil {
		return nil, fmt.Errorf("failed to create department: %w", err)
	}
	resp := ToDepartmentResponse(department)
	return &resp, nil
}

// Update partially updates a department
func (s *DepartmentService) Update(
	ctx context.Context,
	companyID, id uuid.UUID,
	userID *uuid.UUID,
	req UpdateDepartmentRequest,
) (*DepartmentResponse, error) {
	department, err := s.departmentRepo.FindByID(ctx, companyID, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load department: %w", err)
	}
	if department == nil {
		return nil, shared.NewDomainError("DEPARTMENT_NOT_FOUND", "Department not found")
	}

	if req.Name != nil {
		if *req.Name == "" {
			return nil, shared.NewDomainError("INVALID_NAME", "Department name cannot be empty")
		}
		department.Name = *req.Name
	}
	if req.Description != nil {
		department.Description = *req.Description
	}
	if req.IsActive != nil {
		department.IsActive = *req.IsActive
	}
	if userID != nil {
		department.SetUpdatedBy(*userID)
	}

	if err := s.departmentRepo.Update(ctx, department); err != nil {
		return nil, fmt.Errorf("failed to update department: %w", err)
	}
	resp := ToDepartmentResponse(department)
	return &resp, nil
}

// List lists departments ordered by name
func (s *DepartmentService) List(
	ctx context.Context,
	companyID uuid.UUID,
	filter shared.Filter,
) (*shared.Paginated[DepartmentResponse], error) {
	if filter.OrderBy == "" {
		filter.OrderBy = "name"
		filter.OrderDir = "asc"
	}
	filter.ClampLimit(maxDepartmentPageSize)
	filter.ClampOffset()

	page, err := s.departmentRepo.List(ctx, companyID, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}
	items := make([]DepartmentResponse, 0, len(page.Items))
	for _, d := range page.Items {
		items = append(items, ToDepartmentResponse(d))
	}
	return &shared.Paginated[DepartmentResponse]{
		Items:  items,
		Total:  page.Total,
		Limit:  page.Limit,
		Offset: page.Offset,
	}, nil
}
