package partner

import (
	"context"
	"fmt"

	"github.com/finbooks/backend/internal/domain/partner"
	"github.com/finbooks/backend/internal/domain/shared"
	"github.com/google/uuid"
)

const maxContactPageSize = 100

// ContactService manages customers and suppliers
type ContactService struct {
	contactRepo partner.ContactRepository
}

// NewContactService creates a new ContactService
func NewContactService(contactRepo partner.ContactRepository) *ContactService {
	return &ContactService{contactRepo: contactRepo}
}

// Create creates a contact
func (s *ContactService) Create(
	ctx context.Context,
	companyID uuid.UUID,
	userID *uuid.UUID,
	req CreateContactRequest,
) (*ContactResponse, error) {
	contact, err := partner.NewContact(companyID, partner.ContactType(req.Type), req.Name, req.Document)
	if err != nil {
		return nil, err
	}
	contact.TradeName = req.TradeName
	contact.Phone = req.Phone
	contact.Email = req.Email
	contact.Address = req.Address
	contact.Neighborhood = req.Neighborhood
	contact.City = req.City
	contact.State = req.State
	contact.ZipCode = req.ZipCode
	contact.CreatedBy = userID
	contact.UpdatedBy = userID

	if err := s.contactRepo.Create(ctx, contact); err != nil {
		return nil, fmt.Errorf("failed to create contact: %w", err)
	}
	resp := ToContactResponse(contact)
	return &resp, nil
}

// Update partially updates a contact
func (s *ContactService) Update(
	ctx context.Context,
	companyID, id uuid.UUID,
	userID *uuid.UUID,
	req UpdateContactRequest,
) (*ContactResponse, error) {
	contact, err := s.contactRepo.FindByID(ctx, companyID, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load contact: %w", err)
	}
	if contact == nil {
		return nil, shared.NewDomainError("CONTACT_NOT_FOUND", "Contact not found")
	}

	if req.Type != nil {
		contactType := partner.ContactType(*req.Type)
		if !contactType.IsValid() {
			return nil, shared.NewDomainError("INVALID_CONTACT_TYPE", "Contact type must be customer, supplier or both")
		}
		contact.Type = contactType
	}
	if req.Name != nil {
		if *req.Name == "" {
			return nil, shared.NewDomainError("INVALID_NAME", "Contact name cannot be empty")
		}
		contact.Name = *req.Name
	}
	if req.TradeName != nil {
		contact.TradeName = *req.TradeName
	}
	if req.Document != nil {
		contact.Document = *req.Document
	}
	if req.Phone != nil {
		contact.Phone = *req.Phone
	}
	if req.Email != nil {
		contact.Email = *req.Email
	}
	if req.Address != nil {
		contact.Address = *req.Address
	}
	if req.Neighborhood != nil {
		contact.Neighborhood = *req.Neighborhood
	}
	if req.City != nil {
		contact.City = *req.City
	}
	if req.State != nil {
		contact.State = *req.State
	}
	if req.ZipCode != nil {
		contact.ZipCode = *req.ZipCode
	}
	if req.IsActive != nil && !*req.IsActive {
		contact.Deactivate()
	} else if req.IsActive != nil {
		contact.IsActive = true
	}
	if userID != nil {
		contact.SetUpdatedBy(*userID)
	}

	if err := s.contactRepo.Update(ctx, contact); err != nil {
		return nil, fmt.Errorf("failed to update contact: %w", err)
	}
	resp := ToContactResponse(contact)
	return &resp, nil
}

// Get loads a contact
func (s *ContactService) Get(ctx context.Context, companyID, id uuid.UUID) (*ContactResponse, error) {
	contact, err := s.contactRepo.FindByID(ctx, companyID, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load contact: %w", err)
	}
	if contact == nil {
		return nil, shared.NewDomainError("CONTACT_NOT_FOUND", "Contact not found")
	}
	resp := ToContactResponse(contact)
	return &resp, nil
}

// List lists contacts ordered by name
func (s *ContactService) List(
	ctx context.Context,
	companyID uuid.UUID,
	filter shared.Filter,
) (*shared.Paginated[ContactResponse], error) {
	if filter.OrderBy == "" {
		filter.OrderBy = "name"
		filter.OrderDir = "asc"
	}
	filter.ClampLimit(maxContactPageSize)
	filter.ClampOffset()

	page, err := s.contactRepo.List(ctx, companyID, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}
	items := make([]ContactResponse, 0, len(page.Items))
	for _, c := range page.Items {
		items = append(items, ToContactResponse(c))
	}
	return &shared.Paginated[ContactResponse]{
		Items:  items,
		Total:  page.Total,
		Limit:  page.Limit,
		Offset: page.Offset,
	}, nil
}

// Deactivate hides a contact from selection without breaking references
func (s *ContactService) Deactivate(ctx context.Context, companyID, id uuid.UUID, userID *uuid.UUID) error {
	contact, err := s.contactRepo.FindByID(ctx, companyID, id)
	if err != nil {
		return fmt.Errorf("failed to load contact: %w", err)
	}
	if contact == nil {
		return shared.NewDomainError("CONTACT_NOT_FOUND", "Contact not found")
	}
	contact.Deactivate()
	if userID != nil {
		contact.SetUpdatedBy(*userID)
	}
	if err := s.contactRepo.Update(ctx, contact); err != nil {
		return fmt.Errorf("failed to update contact: %w", err)
	}
	return nil
}
