package partner

import (
	"time"

	"github.com/finbooks/backend/internal/domain/partner"
	"github.com/google/uuid"
)

// CreateContactRequest creates a contact
type CreateContactRequest struct {
	Type         string `json:"type" binding:"required,oneof=customer supplier both"`
	Name         string `json:"name" binding:"required"`
	TradeName    string `json:"tradeName"`
	Document     string `json:"document"`
	Phone        string `json:"phone"`
	Email        string `json:"email" binding:"omitempty,email"`
	Address      string `json:"address"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state"`
	ZipCode      string `json:"zipCode"`
}

// UpdateContactRequest partially updates a contact
type UpdateContactRequest struct {
	Type         *string `json:"type" binding:"omitempty,oneof=customer supplier both"`
	Name         *string `json:"name"`
	TradeName    *string `json:"tradeName"`
	Document     *string `json:"document"`
	Phone        *string `json:"phone"`
	Email        *string `json:"email" binding:"omitempty,email"`
	Address      *string `json:"address"`
	Neighborhood *string `json:"neighborhood"`
	City         *string `json:"city"`
	State        *string `json:"state"`
	ZipCode      *string `json:"zipCode"`
	IsActive     *bool   `json:"isActive"`
}

// ContactResponse is the API shape of a contact
type ContactResponse struct {
	ID           uuid.UUID `json:"id"`
	Type         string    `json:"type"`
	Name         string    `json:"name"`
	TradeName    string    `json:"tradeName"`
	Document     string    `json:"document"`
	Phone        string    `json:"phone"`
	Email        string    `json:"email"`
	Address      string    `json:"address"`
	Neighborhood string    `json:"neighborhood"`
	City         string    `json:"city"`
	State        string    `json:"state"`
	ZipCode      string    `json:"zipCode"`
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
}

// ToContactResponse maps a domain contact to its API shape
func ToContactResponse(c *partner.Contact) ContactResponse {
	return ContactResponse{
		ID:           c.ID,
		Type:         c.Type.String(),
		Name:         c.Name,
		TradeName:    c.TradeName,
		Document:     c.Document,
		Phone:        c.Phone,
		Email:        c.Email,
		Address:      c.Address,
		Neighborhood: c.Neighborhood,
		City:         c.City,
		State:        c.State,
		ZipCode:      c.ZipCode,
		IsActive:     c.IsActive,
		CreatedAt:    c.CreatedAt,
	}
}

// CreateCategoryRequest creates a category
type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	GroupName   string `json:"groupName"`
	FlowType    string `json:"flowType"`
	AffectsCash *bool  `json:"affectsCash"`
}

// CategoryResponse is the API shape of a category
type CategoryResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	GroupName   string    `json:"groupName"`
	FlowType    string    `json:"flowType"`
	AffectsCash bool      `json:"affectsCash"`
	IsActive    bool      `json:"isActive"`
}

// ToCategoryResponse maps a domain category to its API shape
func ToCategoryResponse(c *partner.Category) CategoryResponse {
	return CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		GroupName:   c.GroupName,
		FlowType:    string(c.FlowType),
		AffectsCash: c.AffectsCash,
		IsActive:    c.IsActive,
	}
}

// CreateDepartmentRequest creates a department
type CreateDepartmentRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// UpdateDepartmentRequest partially updates a department
type UpdateDepartmentRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"isActive"`
}

// DepartmentResponse is the API shape of a department
type DepartmentResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ToDepartmentResponse maps a domain department to its API shape
func ToDepartmentResponse(d *partner.Department) DepartmentResponse {
	return DepartmentResponse{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		IsActive:    d.IsActive,
		CreatedAt:   d.CreatedAt,
	}
}
