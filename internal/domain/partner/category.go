package partner

import (
	"github.com/finbooks/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// CategoryFlowType classifies which cash flow a category belongs to
type CategoryFlowType string

const (
	CategoryFlowExpense  CategoryFlowType = "EXPENSE"
	CategoryFlowIncome   CategoryFlowType = "INCOME"
	CategoryFlowTransfer CategoryFlowType = "TRANSFER"
)

// NormalizeCategoryFlowType maps free-form input to a known flow type,
// defaulting to expense
func NormalizeCategoryFlowType(s string) CategoryFlowType {
	switch s {
	case "income", "INCOME":
		return CategoryFlowIncome
	case "transfer", "TRANSFER":
		return CategoryFlowTransfer
	default:
		return CategoryFlowExpense
	}
}

// Category labels financial accounts and movements for reporting
type Category struct {
	shared.CompanyAggregateRoot
	Name        string           `json:"name"`
	GroupName   string           `json:"group_name"`
	FlowType    CategoryFlowType `json:"flow_type"`
	AffectsCash bool             `json:"affects_cash"`
	IsActive    bool             `json:"is_active"`
}

// NewCategory creates an active category
func NewCategory(companyID uuid.UUID, name, groupName string, flowType CategoryFlowType) (*Category, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Category name cannot be empty")
	}
	return &Category{
		CompanyAggregateRoot: shared.NewCompanyAggregateRoot(companyID),
		Name:                 name,
		GroupName:            groupName,
		FlowType:             flowType,
		AffectsCash:          true,
		IsActive:             true,
	}, nil
}

// DefaultCategory is one entry of the per-company seed set
type DefaultCategory struct {
	Name        string
	GroupName   string
	FlowType    CategoryFlowType
	AffectsCash bool
}

// DefaultCategories is seeded idempotently for every company on first
// category listing
var DefaultCategories = []DefaultCategory{
	{Name: "Vendas de serviços", GroupName: "Receitas operacionais", FlowType: CategoryFlowIncome, AffectsCash: true},
	{Name: "Vendas de produtos", GroupName: "Receitas operacionais", FlowType: CategoryFlowIncome, AffectsCash: true},
	{Name: "Outras receitas", GroupName: "Receitas operacionais", FlowType: CategoryFlowIncome, AffectsCash: true},
	{Name: "Fornecedores", GroupName: "Despesas operacionais", FlowType: CategoryFlowExpense, AffectsCash: true},
	{Name: "Salários e encargos", GroupName: "Despesas com pessoal", FlowType: CategoryFlowExpense, AffectsCash: true},
	{Name: "Aluguel e condomínio", GroupName: "Despesas administrativas", FlowType: CategoryFlowExpense, AffectsCash: true},
	{Name: "Impostos e taxas", GroupName: "Despesas administrativas", FlowType: CategoryFlowExpense, AffectsCash: true},
	{Name: "Transferência entre contas", GroupName: "Movimentações internas", FlowType: CategoryFlowTransfer, AffectsCash: false},
}
