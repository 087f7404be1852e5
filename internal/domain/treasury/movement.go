package treasury

import (
	"time"

	"github.com/finbooks/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// MovementDirection is the cash direction of a movement
type MovementDirection string

const (
	MovementDirectionIn  MovementDirection = "in"
	MovementDirectionOut MovementDirection = "out"
)

// IsValid checks if the direction is a valid MovementDirection
func (d MovementDirection) IsValid() bool {
	return d == MovementDirectionIn || d == MovementDirectionOut
}

// String returns the string representation of MovementDirection
func (d MovementDirection) String() string {
	return string(d)
}

// MovementSource records how a movement entered the ledger
type MovementSource string

const (
	MovementSourceSystem MovementSource = "system" // posted by the settlement engine
	MovementSourceManual MovementSource = "manual" // entered by a user
)

// MovementStatus is the lifecycle state of a movement. Only realized
// movements count towards balances.
type MovementStatus string

const (
	MovementStatusRealized MovementStatus = "REALIZED"
	MovementStatusPending  MovementStatus = "PENDING"
)

// Movement is one immutable cash ledger entry. Amounts are integer cents;
// the decimal-to-cents conversion happens exactly once, before the movement
// is built. Category, contact and department are snapshots taken at posting
// time so later edits to the source account never rewrite history.
type Movement struct {
	shared.BaseEntity
	CompanyID     uuid.UUID         `json:"company_id"`
	Description   string            `json:"description"`
	AmountCents   int64             `json:"amount_cents"`
	Direction     MovementDirection `json:"direction"`
	OccurredAt    time.Time         `json:"occurred_at"`
	Status        MovementStatus    `json:"status"`
	Source        MovementSource    `json:"source"`
	IsReconciled  bool              `json:"is_reconciled"`
	BankAccountID *uuid.UUID        `json:"bank_account_id"`
	PaymentID     *uuid.UUID        `json:"payment_id"`
	CategoryID    *uuid.UUID        `json:"category_id"`
	ContactID     *uuid.UUID        `json:"contact_id"`
	DepartmentID  *uuid.UUID        `json:"department_id"`
}

// NewManualMovement creates a user-entered movement
func NewManualMovement(
	companyID uuid.UUID,
	description string,
	amountCents int64,
	direction MovementDirection,
	occurredAt time.Time,
	bankAccountID, categoryID, contactID, departmentID *uuid.UUID,
) (*Movement, error) {
	if amountCents <= 0 {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Movement amount must be greater than zero")
	}
	if !direction.IsValid() {
		return nil, shared.NewDomainError("INVALID_DIRECTION", "Direction must be in or out")
	}
	return &Movement{
		BaseEntity:    shared.NewBaseEntity(),
		CompanyID:     companyID,
		Description:   description,
		AmountCents:   amountCents,
		Direction:     direction,
		OccurredAt:    occurredAt,
		Status:        MovementStatusRealized,
		Source:        MovementSourceManual,
		IsReconciled:  false,
		BankAccountID: bankAccountID,
		CategoryID:    categoryID,
		ContactID:     contactID,
		DepartmentID:  departmentID,
	}, nil
}

// NewSettlementMovement creates the system-posted movement produced by a
// payment settling through a bank account. It is born realized and
// reconciled.
func NewSettlementMovement(
	companyID uuid.UUID,
	description string,
	amountCents int64,
	direction MovementDirection,
	occurredAt time.Time,
	bankAccountID, paymentID uuid.UUID,
	categoryID, contactID, departmentID *uuid.UUID,
) (*Movement, error) {
	if amountCents <= 0 {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Movement amount must be greater than zero")
	}
	if !direction.IsValid() {
		return nil, shared.NewDomainError("INVALID_DIRECTION", "Direction must be in or out")
	}
	return &Movement{
		BaseEntity:    shared.NewBaseEntity(),
		CompanyID:     companyID,
		Description:   description,
		AmountCents:   amountCents,
		Direction:     direction,
		OccurredAt:    occurredAt,
		Status:        MovementStatusRealized,
		Source:        MovementSourceSystem,
		IsReconciled:  true,
		BankAccountID: &bankAccountID,
		PaymentID:     &paymentID,
		CategoryID:    categoryID,
		ContactID:     contactID,
		DepartmentID:  departmentID,
	}, nil
}

// SignedCents returns the amount with direction applied: inflows positive,
// outflows negative
func (m *Movement) SignedCents() int64 {
	if m.Direction == MovementDirectionOut {
		return -m.AmountCents
	}
	return m.AmountCents
}
