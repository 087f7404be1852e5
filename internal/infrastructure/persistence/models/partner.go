package models

import (
	"github.com/finbooks/backend/internal/domain/partner"
)

// ContactModel is the persistence model for contacts.
type ContactModel struct {
	CompanyAggregateModel
	Type         partner.ContactType `gorm:"type:varchar(20);not null;index"`
	Document     string              `gorm:"type:varchar(20);index"`
	Name         string              `gorm:"type:varchar(200);not null;index"`
	TradeName    string              `gorm:"type:varchar(200)"`
	Phone        string              `gorm:"type:varchar(30)"`
	Email        string              `gorm:"type:varchar(200)"`
	Address      string              `gorm:"type:varchar(300)"`
	Neighborhood string              `gorm:"type:varchar(100)"`
	City         string              `gorm:"type:varchar(100)"`
	State        string              `gorm:"type:varchar(2)"`
	ZipCode      string              `gorm:"type:varchar(10)"`
	IsActive     bool                `gorm:"not null;default:true;index"`
}

// TableName returns the table name for GORM
func (ContactModel) TableName() string {
	return "contacts"
}

// ToDomain converts the persistence model to a domain Contact aggregate.
func (m *ContactModel) ToDomain() *partner.Contact {
	c := &partner.Contact{
		Type:         m.Type,
		Document:     m.Document,
		Name:         m.Name,
		TradeName:    m.TradeName,
		Phone:        m.Phone,
		Email:        m.Email,
		Address:      m.Address,
		Neighborhood: m.Neighborhood,
		City:         m.City,
		State:        m.State,
		ZipCode:      m.ZipCode,
		IsActive:     m.IsActive,
	}
	m.PopulateCompanyAggregateRoot(&c.CompanyAggregateRoot)
	return c
}

// FromDomain populates the persistence model from a domain Contact aggregate.
func (m *ContactModel) FromDomain(c *partner.Contact) {
	m.FromDomainCompanyAggregateRoot(c.CompanyAggregateRoot)
	m.Type = c.Type
	m.Document = c.Document
	m.Name = c.Name
	m.TradeName = c.TradeName
	m.Phone = c.Phone
	m.Email = c.Email
	m.Address = c.Address
	m.Neighborhood = c.Neighborhood
	m.City = c.City
	m.State = c.State
	m.ZipCode = c.ZipCode
	m.IsActive = c.IsActive
}

// ContactModelFromDomain creates a new persistence model from a domain Contact.
func ContactModelFromDomain(c *partner.Contact) *ContactModel {
	m := &ContactModel{}
	m.FromDomain(c)
	return m
}

// CategoryModel is the persistence model for categories.
type CategoryModel struct {
	CompanyAggregateModel
	Name        string                   `gorm:"type:varchar(200);not null;index:idx_category_company_name,priority:2"`
	GroupName   string                   `gorm:"type:varchar(200)"`
	FlowType    partner.CategoryFlowType `gorm:"type:varchar(20);not null;default:'EXPENSE'"`
	AffectsCash bool                     `gorm:"not null;default:true"`
	IsActive    bool                     `gorm:"not null;default:true;index"`
}

// TableName returns the table name for GORM
func (CategoryModel) TableName() string {
	return "categories"
}

// ToDomain converts the persistence model to a domain Category aggregate.
func (m *CategoryModel) ToDomain() *partner.Category {
	c := &partner.Category{
		Name:        m.Name,
		GroupName:   m.GroupName,
		FlowType:    m.FlowType,
		AffectsCash: m.AffectsCash,
		IsActive:    m.IsActive,
	}
	m.PopulateCompanyAggregateRoot(&c.CompanyAggregateRoot)
	return c
}

// FromDomain populates the persistence model from a domain Category aggregate.
func (m *CategoryModel) FromDomain(c *partner.Category) {
	m.FromDomainCompanyAggregateRoot(c.CompanyAggregateRoot)
	m.Name = c.Name
	m.GroupName = c.GroupName
	m.FlowType = c.FlowType
	m.AffectsCash = c.AffectsCash
	m.IsActive = c.IsActive
}

// CategoryModelFromDomain creates a new persistence model from a domain Category.
func CategoryModelFromDomain(c *partner.Category) *CategoryModel {
	m := &CategoryModel{}
	m.FromDomain(c)
	return m
}

// DepartmentModel is the persistence model for departments.
type DepartmentModel struct {
	CompanyAggregateModel
	Name        string `gorm:"type:varchar(200);not null"`
	Description string `gorm:"type:varchar(500)"`
	IsActive    bool   `gorm:"not null;default:true;index"`
}

// TableName returns the table name for GORM
func (DepartmentModel) TableName() string {
	return "departments"
}

// ToDomain converts the persistence model to a domain Department aggregate.
func (m *DepartmentModel) ToDomain() *partner.Department {
	d := &partner.Department{
		Name:        m.Name,
		Description: m.Description,
		IsActive:    m.IsActive,
	}
	m.PopulateCompanyAggregateRoot(&d.CompanyAggregateRoot)
	return d
}

// FromDomain populates the persistence model from a domain Department aggregate.
func (m *DepartmentModel) FromDomain(d *partner.Department) {
	m.FromDomainCompanyAggregateRoot(d.CompanyAggregateRoot)
	m.Name = d.Name
	m.Description = d.Description
	m.IsActive = d.IsActive
}

// DepartmentModelFromDomain creates a new persistence model from a domain Department.
func DepartmentModelFromDomain(d *partner.Department) *DepartmentModel {
	m := &DepartmentModel{}
	m.FromDomain(d)
	return m
}
