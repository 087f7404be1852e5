package partner

import (
	"time"

	"github.com/finbooks/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ContactType classifies the commercial relationship with a contact
type ContactType string

const (
	ContactTypeCustomer ContactType = "customer"
	ContactTypeSupplier ContactType = "supplier"
	ContactTypeBoth     ContactType = "both"
)

// IsValid checks if the type is a valid ContactType
func (t ContactType) IsValid() bool {
	switch t {
	case ContactTypeCustomer, ContactTypeSupplier, ContactTypeBoth:
		return true
	}
	return false
}

// String returns the string representation of ContactType
func (t ContactType) String() string {
	return string(t)
}

// Contact is a customer or supplier that financial accounts and movements
// reference
type Contact struct {
	shared.CompanyAggregateRoot
	Type         ContactType `json:"type"`
	Document     string      `json:"document"` // CPF or CNPJ
	Name         string      `json:"name"`
	TradeName    string      `json:"trade_name"`
	Phone        string      `json:"phone"`
	Email        string      `json:"email"`
	Address      string      `json:"address"`
	Neighborhood string      `json:"neighborhood"`
	City         string      `json:"city"`
	State        string      `json:"state"`
	ZipCode      string      `json:"zip_code"`
	IsActive     bool        `json:"is_active"`
}

// NewContact creates an active contact
func NewContact(companyID uuid.UUID, contactType ContactType, name, document string) (*Contact, error) {
	if !contactType.IsValid() {
		return nil, shared.NewDomainError("INVALID_CONTACT_TYPE", "Contact type must be customer, supplier or both")
	}
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Contact name cannot be empty")
	}
	return &Contact{
		CompanyAggregateRoot: shared.NewCompanyAggregateRoot(companyID),
		Type:                 contactType,
		Name:                 name,
		Document:             document,
		IsActive:             true,
	}, nil
}

// Deactivate hides the contact without breaking references from accounts
// and movements
func (c *Contact) Deactivate() {
	c.IsActive = false
	c.UpdatedAt = time.Now()
	c.IncrementVersion()
}
