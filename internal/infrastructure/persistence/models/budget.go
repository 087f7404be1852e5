package models

import (
	"time"

	"github.com/finbooks/backend/internal/domain/budget"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BudgetModel is the persistence model for the Budget aggregate root.
// Budgets are soft-deleted: DeletedAt is filtered in every read path.
type BudgetModel struct {
	CompanyAggregateModel
	BudgetNumber        string              `gorm:"type:varchar(50);not null;index:idx_budget_company_number,priority:2"`
	Status              budget.BudgetStatus `gorm:"type:varchar(20);not null;default:'draft';index"`
	ClientID            *uuid.UUID          `gorm:"type:uuid;index"`
	ClientName          string              `gorm:"type:varchar(200)"`
	SellerName          string              `gorm:"type:varchar(200)"`
	TotalAmount         decimal.Decimal     `gorm:"type:decimal(18,2);not null"`
	TotalServices       decimal.Decimal     `gorm:"type:decimal(18,2);not null"`
	TotalMaterials      decimal.Decimal     `gorm:"type:decimal(18,2);not null"`
	DiscountValue       decimal.Decimal     `gorm:"type:decimal(18,2);not null"`
	ExpectedBillingDate *time.Time
	InstallmentCount    int        `gorm:"not null;default:1"`
	CategoryID          *uuid.UUID `gorm:"type:uuid"`
	DepartmentID        *uuid.UUID `gorm:"type:uuid"`
	BankAccountID       *uuid.UUID `gorm:"type:uuid"`
	Observations        string     `gorm:"type:text"`
	DeletedAt           *time.Time `gorm:"index"`
	Items               []BudgetItemModel `gorm:"foreignKey:BudgetID;references:ID"`
}

// TableName returns the table name for GORM
func (BudgetModel) TableName() string {
	return "budgets"
}

// ToDomain converts the persistence model to a domain Budget aggregate.
func (m *BudgetModel) ToDomain() *budget.Budget {
	b := &budget.Budget{
		BudgetNumber:        m.BudgetNumber,
		Status:              m.Status,
		ClientID:            m.ClientID,
		ClientName:          m.ClientName,
		SellerName:          m.SellerName,
		TotalAmount:         m.TotalAmount,
		TotalServices:       m.TotalServices,
		TotalMaterials:      m.TotalMaterials,
		DiscountValue:       m.DiscountValue,
		ExpectedBillingDate: m.ExpectedBillingDate,
		InstallmentCount:    m.InstallmentCount,
		CategoryID:          m.CategoryID,
		DepartmentID:        m.DepartmentID,
		BankAccountID:       m.BankAccountID,
		Observations:        m.Observations,
		DeletedAt:           m.DeletedAt,
	}
	m.PopulateCompanyAggregateRoot(&b.CompanyAggregateRoot)
	b.Items = make([]*budget.BudgetItem, len(m.Items))
	for i := range m.Items {
		b.Items[i] = m.Items[i].ToDomain()
	}
	return b
}

// FromDomain populates the persistence model from a domain Budget aggregate.
func (m *BudgetModel) FromDomain(b *budget.Budget) {
	m.FromDomainCompanyAggregateRoot(b.CompanyAggregateRoot)
	m.BudgetNumber = b.BudgetNumber
	m.Status = b.Status
	m.ClientID = b.ClientID
	m.ClientName = b.ClientName
	m.SellerName = b.SellerName
	m.TotalAmount = b.TotalAmount
	m.TotalServices = b.TotalServices
	m.TotalMaterials = b.TotalMaterials
	m.DiscountValue = b.DiscountValue
	m.ExpectedBillingDate = b.ExpectedBillingDate
	m.InstallmentCount = b.InstallmentCount
	m.CategoryID = b.CategoryID
	m.DepartmentID = b.DepartmentID
	m.BankAccountID = b.BankAccountID
	m.Observations = b.Observations
	m.DeletedAt = b.DeletedAt
	m.Items = make([]BudgetItemModel, len(b.Items))
	for i, item := range b.Items {
		m.Items[i].FromDomain(item)
	}
}

// BudgetModelFromDomain creates a new persistence model from a domain Budget.
func BudgetModelFromDomain(b *budget.Budget) *BudgetModel {
	m := &BudgetModel{}
	m.FromDomain(b)
	return m
}

// BudgetItemModel is the persistence model for budget line items.
type BudgetItemModel struct {
	BaseModel
	CompanyID   uuid.UUID             `gorm:"type:uuid;not null;index"`
	BudgetID    uuid.UUID             `gorm:"type:uuid;not null;index"`
	ItemType    budget.BudgetItemType `gorm:"type:varchar(20);not null;default:'service'"`
	Description string                `gorm:"type:varchar(500);not null"`
	Quantity    decimal.Decimal       `gorm:"type:decimal(18,4);not null"`
	UnitPrice   decimal.Decimal       `gorm:"type:decimal(18,2);not null"`
	Total       decimal.Decimal       `gorm:"type:decimal(18,2);not null"`
}

// TableName returns the table name for GORM
func (BudgetItemModel) TableName() string {
	return "budget_items"
}

// ToDomain converts the persistence model to a domain BudgetItem entity.
func (m *BudgetItemModel) ToDomain() *budget.BudgetItem {
	return &budget.BudgetItem{
		BaseEntity:  m.BaseModel.ToDomain(),
		CompanyID:   m.CompanyID,
		BudgetID:    m.BudgetID,
		ItemType:    m.ItemType,
		Description: m.Description,
		Quantity:    m.Quantity,
		UnitPrice:   m.UnitPrice,
		Total:       m.Total,
	}
}

// FromDomain populates the persistence model from a domain BudgetItem entity.
func (m *BudgetItemModel) FromDomain(item *budget.BudgetItem) {
	m.FromDomainBaseEntity(item.BaseEntity)
	m.CompanyID = item.CompanyID
	m.BudgetID = item.BudgetID
	m.ItemType = item.ItemType
	m.Description = item.Description
	m.Quantity = item.Quantity
	m.UnitPrice = item.UnitPrice
	m.Total = item.Total
}
