package partner

import (
	"context"

	"github.com/finbooks/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ContactRepository persists contacts
type ContactRepository interface {
	Create(ctx context.Context, contact *Contact) error
	Update(ctx context.Context, contact *Contact) error
	FindByID(ctx context.Context, companyID, id uuid.UUID) (*Contact, error)
	List(ctx context.Context, companyID uuid.UUID, filter shared.Filter) (*shared.Paginated[*Contact], error)
	ExistsByID(ctx context.Context, companyID, id uuid.UUID) (bool, error)
}

// CategoryRepository persists categories
type CategoryRepository interface {
	Create(ctx context.Context, category *Category) error
	CreateBatch(ctx context.Context, categories []*Category) error
	FindByID(ctx context.Context, companyID, id uuid.UUID) (*Category, error)
	ListActive(ctx context.Context, companyID uuid.UUID) ([]*Category, error)
	ListNames(ctx context.Context, companyID uuid.UUID) ([]string, error)
	ExistsByID(ctx context.Context, companyID, id uuid.UUID) (bool, error)
}

// DepartmentRepository persists departments
type DepartmentRepository interface {
	Create(ctx context.Context, department *Department) error
	Update(ctx context.Context, department *Department) error
	FindByID(ctx context.Context, companyID, id uuid.UUID) (*Department, error)
	List(ctx context.Context, companyID uuid.UUID, filter shared.Filter) (*shared.Paginated[*Department], error)
	ExistsByID(ctx context.Context, companyID, id uuid.UUID) (bool, error)
}
