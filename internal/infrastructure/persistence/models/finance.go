package models

import (
	"time"

	"github.com/finbooks/backend/internal/domain/finance"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// FinancialAccountModel is the persistence model for the FinancialAccount
// aggregate root. Installments are owned rows loaded with the aggregate.
type FinancialAccountModel struct {
	CompanyAggregateModel
	Kind          finance.AccountKind   `gorm:"type:varchar(20);not null;index"`
	ContactID     uuid.UUID             `gorm:"type:uuid;not null;index"`
	CategoryID    *uuid.UUID            `gorm:"type:uuid;index"`
	DepartmentID  *uuid.UUID            `gorm:"type:uuid;index"`
	BankAccountID *uuid.UUID            `gorm:"type:uuid"`
	BudgetID      *uuid.UUID            `gorm:"type:uuid;index"`
	TotalAmount   decimal.Decimal       `gorm:"type:decimal(18,2);not null"`
	Description   string                `gorm:"type:varchar(500);not null"`
	InvoiceNumber string                `gorm:"type:varchar(100)"`
	IssueDate     time.Time             `gorm:"not null"`
	Status        finance.AccountStatus `gorm:"type:varchar(20);not null;default:'open';index"`
	IsSettled     bool                  `gorm:"not null;default:false"`
	Observations  string                `gorm:"type:text"`
	CanceledAt    *time.Time
	CancelReason  string             `gorm:"type:varchar(500)"`
	Installments  []InstallmentModel `gorm:"foreignKey:FinancialAccountID;references:ID"`
}

// TableName returns the table name for GORM
func (FinancialAccountModel) TableName() string {
	return "financial_accounts"
}

// ToDomain converts the persistence model to a domain FinancialAccount aggregate.
func (m *FinancialAccountModel) ToDomain() *finance.FinancialAccount {
	fa := &finance.FinancialAccount{
		Kind:          m.Kind,
		ContactID:     m.ContactID,
		CategoryID:    m.CategoryID,
		DepartmentID:  m.DepartmentID,
		BankAccountID: m.BankAccountID,
		BudgetID:      m.BudgetID,
		TotalAmount:   m.TotalAmount,
		Description:   m.Description,
		InvoiceNumber: m.InvoiceNumber,
		IssueDate:     m.IssueDate,
		Status:        m.Status,
		IsSettled:     m.IsSettled,
		Observations:  m.Observations,
		CanceledAt:    m.CanceledAt,
		CancelReason:  m.CancelReason,
	}
	m.PopulateCompanyAggregateRoot(&fa.CompanyAggregateRoot)
	fa.Installments = make([]*finance.Installment, len(m.Installments))
	for i := range m.Installments {
		fa.Installments[i] = m.Installments[i].ToDomain()
	}
	return fa
}

// FromDomain populates the persistence model from a domain FinancialAccount aggregate.
func (m *FinancialAccountModel) FromDomain(fa *finance.FinancialAccount) {
	m.FromDomainCompanyAggregateRoot(fa.CompanyAggregateRoot)
	m.Kind = fa.Kind
	m.ContactID = fa.ContactID
	m.CategoryID = fa.CategoryID
	m.DepartmentID = fa.DepartmentID
	m.BankAccountID = fa.BankAccountID
	m.BudgetID = fa.BudgetID
	m.TotalAmount = fa.TotalAmount
	m.Description = fa.Description
	m.InvoiceNumber = fa.InvoiceNumber
	m.IssueDate = fa.IssueDate
	m.Status = fa.Status
	m.IsSettled = fa.IsSettled
	m.Observations = fa.Observations
	m.CanceledAt = fa.CanceledAt
	m.CancelReason = fa.CancelReason
	m.Installments = make([]InstallmentModel, len(fa.Installments))
	for i, inst := range fa.Installments {
		m.Installments[i].FromDomain(inst)
	}
}

// FinancialAccountModelFromDomain creates a new persistence model from a domain FinancialAccount.
func FinancialAccountModelFromDomain(fa *finance.FinancialAccount) *FinancialAccountModel {
	m := &FinancialAccountModel{}
	m.FromDomain(fa)
	return m
}

// InstallmentModel is the persistence model for installments. Rows are written
// only through the owning financial account.
type InstallmentModel struct {
	BaseModel
	CompanyID          uuid.UUID                 `gorm:"type:uuid;not null;index"`
	FinancialAccountID uuid.UUID                 `gorm:"type:uuid;not null;index:idx_installment_account_number,priority:1"`
	InstallmentNumber  int                       `gorm:"not null;index:idx_installment_account_number,priority:2"`
	DueDate            time.Time                 `gorm:"not null;index"`
	Amount             decimal.Decimal           `gorm:"type:decimal(18,2);not null"`
	PaidTotal          decimal.Decimal           `gorm:"type:decimal(18,2);not null"`
	Status             finance.InstallmentStatus `gorm:"type:varchar(20);not null;default:'open';index"`
}

// TableName returns the table name for GORM
func (InstallmentModel) TableName() string {
	return "installments"
}

// ToDomain converts the persistence model to a domain Installment entity.
func (m *InstallmentModel) ToDomain() *finance.Installment {
	return &finance.Installment{
		BaseEntity:         m.BaseModel.ToDomain(),
		CompanyID:          m.CompanyID,
		FinancialAccountID: m.FinancialAccountID,
		InstallmentNumber:  m.InstallmentNumber,
		DueDate:            m.DueDate,
		Amount:             m.Amount,
		PaidTotal:          m.PaidTotal,
		Status:             m.Status,
	}
}

// FromDomain populates the persistence model from a domain Installment entity.
func (m *InstallmentModel) FromDomain(inst *finance.Installment) {
	m.FromDomainBaseEntity(inst.BaseEntity)
	m.CompanyID = inst.CompanyID
	m.FinancialAccountID = inst.FinancialAccountID
	m.InstallmentNumber = inst.InstallmentNumber
	m.DueDate = inst.DueDate
	m.Amount = inst.Amount
	m.PaidTotal = inst.PaidTotal
	m.Status = inst.Status
}

// PaymentModel is the persistence model for immutable payment records.
type PaymentModel struct {
	BaseModel
	CompanyID           uuid.UUID       `gorm:"type:uuid;not null;index"`
	FinancialAccountID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	TargetInstallmentID *uuid.UUID      `gorm:"type:uuid"`
	BankAccountID       *uuid.UUID      `gorm:"type:uuid"`
	PaidAmount          decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	Interest            decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	Discount            decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	PaymentDate         time.Time       `gorm:"not null;index"`
	Notes               string          `gorm:"type:text"`
	CreatedBy           *uuid.UUID      `gorm:"type:uuid"`
}

// TableName returns the table name for GORM
func (PaymentModel) TableName() string {
	return "payments"
}

// ToDomain converts the persistence model to a domain Payment entity.
func (m *PaymentModel) ToDomain() *finance.Payment {
	return &finance.Payment{
		BaseEntity:          m.BaseModel.ToDomain(),
		CompanyID:           m.CompanyID,
		FinancialAccountID:  m.FinancialAccountID,
		TargetInstallmentID: m.TargetInstallmentID,
		BankAccountID:       m.BankAccountID,
		PaidAmount:          m.PaidAmount,
		Interest:            m.Interest,
		Discount:            m.Discount,
		PaymentDate:         m.PaymentDate,
		Notes:               m.Notes,
		CreatedBy:           m.CreatedBy,
	}
}

// FromDomain populates the persistence model from a domain Payment entity.
func (m *PaymentModel) FromDomain(p *finance.Payment) {
	m.FromDomainBaseEntity(p.BaseEntity)
	m.CompanyID = p.CompanyID
	m.FinancialAccountID = p.FinancialAccountID
	m.TargetInstallmentID = p.TargetInstallmentID
	m.BankAccountID = p.BankAccountID
	m.PaidAmount = p.PaidAmount
	m.Interest = p.Interest
	m.Discount = p.Discount
	m.PaymentDate = p.PaymentDate
	m.Notes = p.Notes
	m.CreatedBy = p.CreatedBy
}

// PaymentModelFromDomain creates a new persistence model from a domain Payment.
func PaymentModelFromDomain(p *finance.Payment) *PaymentModel {
	m := &PaymentModel{}
	m.FromDomain(p)
	return m
}
