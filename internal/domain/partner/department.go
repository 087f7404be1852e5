package partner

import (
	"github.com/finbooks/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Department is a cost center that accounts and movements can be tagged with
type Department struct {
	shared.CompanyAggregateRoot
	Name        string `json:"name"`
	Description string `json:"description"`
	IsActive    bool   `json:"is_active"`
}

// NewDepartment creates an active department
func NewDepartment(companyID uuid.UUID, name, description string) (*Department, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Department name cannot be empty")
	}
	return &Department{
		CompanyAggregateRoot: shared.NewCompanyAggregateRoot(companyID),
		Name:                 name,
		Description:          description,
		IsActive:             true,
	}, nil
}
