package service

import (
	"fmt"

	"github.com/nilkanthplet/BP-1.0/internal/domain/enum"
	"github.com/qmuntal/stateless"
)

const (
	triggerPartialPayment = "partial_payment"
	triggerSettle         = "settle"
)

// newBillStateMachine describes how a bill moves between statuses.
// paid is terminal.
func newBillStateMachine(from enum.BillStatus) *stateless.StateMachine {
	machine := stateless.NewStateMachine(from)

	machine.Configure(enum.BillStatusPending).
		Permit(triggerPartialPayment, enum.BillStatusPartiallyPaid).
		Permit(triggerSettle, enum.BillStatusPaid)

	machine.Configure(enum.BillStatusPartiallyPaid).
		PermitReentry(triggerPartialPayment).
		Permit(triggerSettle, enum.BillStatusPaid)

	machine.Configure(enum.BillStatusPaid)

	return machine
}

// nextBillStatus moves a bill from its stored status to the one its amounts
// call for. Amounts that still derive to pending leave the status alone.
func nextBillStatus(from enum.BillStatus, completed, total int64) (enum.BillStatus, error) {
	target := enum.DeriveBillStatus(completed, total)

	var trigger string
	switch target {
	case enum.BillStatusPaid:
		trigger = triggerSettle
	case enum.BillStatusPartiallyPaid:
		trigger = triggerPartialPayment
	default:
		if from == enum.BillStatusPending {
			return from, nil
		}
		return from, fmt.Errorf("bill status cannot return from %s to %s", from, target)
	}

	machine := newBillStateMachine(from)
	if err := machine.Fire(trigger); err != nil {
		return from, fmt.Errorf("bill status transition (%s -> %s) failed: %w", from, target, err)
	}

	return machine.MustState().(enum.BillStatus), nil
}
