package finance

import (
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Allocation is one slice of a payment applied to a specific installment
type Allocation struct {
	InstallmentID uuid.UUID       `json:"installment_id"`
	Amount        decimal.Decimal `json:"amount"`
}

// AllocatePayment distributes a payment amount across outstanding installments.
//
// The policy is first-in-first-out by due date (tie-broken by installment
// number) with an optional pin: when targetInstallmentID refers to an
// outstanding installment, that installment is serviced first and the rest
// keep their relative order.
//
// Any remainder left after all candidates are exhausted is intentionally not
// allocated: overpayment beyond the total open balance is absorbed by the
// cash movement only and never produces a negative installment balance.
//
// The function is pure; it never mutates the installments it receives.
// Validation of the payment amount and of installment ownership happens
// upstream, in the posting orchestrator.
func AllocatePayment(installments []*Installment, paidAmount decimal.Decimal, targetInstallmentID *uuid.UUID) []Allocation {
	candidates := make([]*Installment, 0, len(installments))
	for _, inst := range installments {
		if inst.Outstanding().IsPositive() {
			candidates = append(candidates, inst)
		}
	}

	sort.SliceStable(candidates, func(a, b int) bool {
		if candidates[a].DueDate.Equal(candidates[b].DueDate) {
			return candidates[a].InstallmentNumber < candidates[b].InstallmentNumber
		}
		return candidates[a].DueDate.Before(candidates[b].DueDate)
	})

	if targetInstallmentID != nil {
		for idx, inst := range candidates {
			if inst.ID == *targetInstallmentID {
				if idx > 0 {
					target := candidates[idx]
					copy(candidates[1:idx+1], candidates[:idx])
					candidates[0] = target
				}
				break
			}
		}
	}

	allocations := make([]Allocation, 0, len(candidates))
	remaining := paidAmount
	for _, inst := range candidates {
		if !remaining.IsPositive() {
			break
		}
		available := inst.Outstanding()
		applied := decimal.Min(remaining, available)
		allocations = append(allocations, Allocation{
			InstallmentID: inst.ID,
			Amount:        applied,
		})
		remaining = remaining.Sub(applied)
	}

	return allocations
}
