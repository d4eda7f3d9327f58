package enum

import (
	"encoding/json"
	"fmt"
)

// BillStatus is the settlement state of a bill
type BillStatus string

const (
	BillStatusPending       BillStatus = "pending"
	BillStatusPartiallyPaid BillStatus = "partially_paid"
	BillStatusPaid          BillStatus = "paid"
)

// DeriveBillStatus is the one rule mapping amounts to a status.
// Exactly one status holds for any (completed, total) pair.
func DeriveBillStatus(completed, total int64) BillStatus {
	switch {
	case total-completed <= 0:
		return BillStatusPaid
	case completed > 0:
		return BillStatusPartiallyPaid
	default:
		return BillStatusPending
	}
}

// IsValid reports whether s is a known status
func (s BillStatus) IsValid() bool {
	switch s {
	case BillStatusPending, BillStatusPartiallyPaid, BillStatusPaid:
		return true
	}
	return false
}

func (s BillStatus) String() string {
	return string(s)
}

func (s *BillStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	if !BillStatus(str).IsValid() {
		return fmt.Errorf("unknown bill status %q", str)
	}
	*s = BillStatus(str)
	return nil
}
