package models

import (
	"time"

	"github.com/finbooks/backend/internal/domain/treasury"
	"github.com/google/uuid"
)

// BankAccountModel is the persistence model for bank accounts.
type BankAccountModel struct {
	CompanyAggregateModel
	Name                string                   `gorm:"type:varchar(200);not null"`
	Institution         string                   `gorm:"type:varchar(200)"`
	AccountType         treasury.BankAccountType `gorm:"type:varchar(20);not null;default:'checking'"`
	Agency              string                   `gorm:"type:varchar(20)"`
	AccountNumber       string                   `gorm:"type:varchar(30)"`
	OpeningBalanceCents int64                    `gorm:"not null;default:0"`
	OpeningBalanceDate  *time.Time
	IsActive            bool `gorm:"not null;default:true;index"`
}

// TableName returns the table name for GORM
func (BankAccountModel) TableName() string {
	return "bank_accounts"
}

// ToDomain converts the persistence model to a domain BankAccount aggregate.
func (m *BankAccountModel) ToDomain() *treasury.BankAccount {
	b := &treasury.BankAccount{
		Name:                m.Name,
		Institution:         m.Institution,
		AccountType:         m.AccountType,
		Agency:              m.Agency,
		AccountNumber:       m.AccountNumber,
		OpeningBalanceCents: m.OpeningBalanceCents,
		OpeningBalanceDate:  m.OpeningBalanceDate,
		IsActive:            m.IsActive,
	}
	m.PopulateCompanyAggregateRoot(&b.CompanyAggregateRoot)
	return b
}

// FromDomain populates the persistence model from a domain BankAccount aggregate.
func (m *BankAccountModel) FromDomain(b *treasury.BankAccount) {
	m.FromDomainCompanyAggregateRoot(b.CompanyAggregateRoot)
	m.Name = b.Name
	m.Institution = b.Institution
	m.AccountType = b.AccountType
	m.Agency = b.Agency
	m.AccountNumber = b.AccountNumber
	m.OpeningBalanceCents = b.OpeningBalanceCents
	m.OpeningBalanceDate = b.OpeningBalanceDate
	m.IsActive = b.IsActive
}

// BankAccountModelFromDomain creates a new persistence model from a domain BankAccount.
func BankAccountModelFromDomain(b *treasury.BankAccount) *BankAccountModel {
	m := &BankAccountModel{}
	m.FromDomain(b)
	return m
}

// MovementModel is the persistence model for immutable cash ledger entries.
type MovementModel struct {
	BaseModel
	CompanyID     uuid.UUID                  `gorm:"type:uuid;not null;index"`
	Description   string                     `gorm:"type:varchar(500)"`
	AmountCents   int64                      `gorm:"not null"`
	Direction     treasury.MovementDirection `gorm:"type:varchar(10);not null;index"`
	OccurredAt    time.Time                  `gorm:"not null;index"`
	Status        treasury.MovementStatus    `gorm:"type:varchar(20);not null;default:'REALIZED';index"`
	Source        treasury.MovementSource    `gorm:"type:varchar(20);not null;default:'manual'"`
	IsReconciled  bool                       `gorm:"not null;default:false"`
	BankAccountID *uuid.UUID                 `gorm:"type:uuid;index"`
	PaymentID     *uuid.UUID                 `gorm:"type:uuid;index"`
	CategoryID    *uuid.UUID                 `gorm:"type:uuid"`
	ContactID     *uuid.UUID                 `gorm:"type:uuid"`
	DepartmentID  *uuid.UUID                 `gorm:"type:uuid"`
}

// TableName returns the table name for GORM
func (MovementModel) TableName() string {
	return "movements"
}

// ToDomain converts the persistence model to a domain Movement entity.
func (m *MovementModel) ToDomain() *treasury.Movement {
	return &treasury.Movement{
		BaseEntity:    m.BaseModel.ToDomain(),
		CompanyID:     m.CompanyID,
		Description:   m.Description,
		AmountCents:   m.AmountCents,
		Direction:     m.Direction,
		OccurredAt:    m.OccurredAt,
		Status:        m.Status,
		Source:        m.Source,
		IsReconciled:  m.IsReconciled,
		BankAccountID: m.BankAccountID,
		PaymentID:     m.PaymentID,
		CategoryID:    m.CategoryID,
		ContactID:     m.ContactID,
		DepartmentID:  m.DepartmentID,
	}
}

// FromDomain populates the persistence model from a domain Movement entity.
func (m *MovementModel) FromDomain(mv *treasury.Movement) {
	m.FromDomainBaseEntity(mv.BaseEntity)
	m.CompanyID = mv.CompanyID
	m.Description = mv.Description
	m.AmountCents = mv.AmountCents
	m.Direction = mv.Direction
	m.OccurredAt = mv.OccurredAt
	m.Status = mv.Status
	m.Source = mv.Source
	m.IsReconciled = mv.IsReconciled
	m.BankAccountID = mv.BankAccountID
	m.PaymentID = mv.PaymentID
	m.CategoryID = mv.CategoryID
	m.ContactID = mv.ContactID
	m.DepartmentID = mv.DepartmentID
}

// MovementModelFromDomain creates a new persistence model from a domain Movement.
func MovementModelFromDomain(mv *treasury.Movement) *MovementModel {
	m := &MovementModel{}
	m.FromDomain(mv)
	return m
}
