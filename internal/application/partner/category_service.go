package partner

import (
	"context"
	"fmt"

	"github.com/finbooks/backend/internal/domain/partner"
	"github.com/google/uuid"
)

// CategoryService manages reporting categories. Every company gets a default
// Brazilian chart seeded on first listing.
type CategoryService struct {
	categoryRepo partner.CategoryRepository
}

// NewCategoryService creates a new CategoryService
func NewCategoryService(categoryRepo partner.CategoryRepository) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo}
}

// Create creates a category
func (s *CategoryService) Create(
	ctx context.Context,
	companyID uuid.UUID,
	userID *uuid.UUID,
	req CreateCategoryRequest,
) (*CategoryResponse, error) {
	category, err := partner.NewCategory(
		companyID, req.Name, req.GroupName,
		partner.NormalizeCategoryFlowType(req.FlowType),
	)
	if err != nil {
		return nil, err
	}
	if req.AffectsCash != nil {
		category.AffectsCash = *req.AffectsCash
	}
	category.CreatedBy = userID
	category.UpdatedBy = userID

	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	resp := ToCategoryResponse(category)
	return &resp, nil
}

// List returns the company's active categories, seeding the defaults first
// when missing. Seeding is idempotent: only names the company does not have
// yet are inserted.
func (s *CategoryService) List(ctx context.Context, companyID uuid.UUID) ([]CategoryResponse, error) {
	if err := s.ensureDefaults(ctx, companyID); err != nil {
		return nil, err
	}

	categories, err := s.categoryRepo.ListActive(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	items := make([]CategoryResponse, 0, len(categories))
	for _, c := range categories {
		items = append(items, ToCategoryResponse(c))
	}
	return items, nil
}

func (s *CategoryService) ensureDefaults(ctx context.Context, companyID uuid.UUID) error {
	names, err := s.categoryRepo.ListNames(ctx, companyID)
	if err != nil {
		return fmt.Errorf("failed to list category names: %w", err)
	}
	existing := make(map[string]bool, len(names))
	for _, name := range names {
		existing[name] = true
	}

	var missing []*partner.Category
	for _, def := range partner.DefaultCategories {
		if existing[def.Name] {
			continue
		}
		category, err := partner.NewCategory(companyID, def.Name, def.GroupName, def.FlowType)
		if err != nil {
			return err
		}
		category.AffectsCash = def.AffectsCash
		missing = append(missing, category)
	}
	if len(missing) == 0 {
		return nil
	}
	if err := s.categoryRepo.CreateBatch(ctx, missing); err != nil {
		return fmt.Errorf("failed to seed default categories: %w", err)
	}
	return nil
}
