package utils

import (
	"fmt"
	"time"
)

// FormatIdentifier builds "<prefix>-<YYYYMMDD>-<seq>" with the date in UTC
// and seq zero-padded to at least four digits.
func FormatIdentifier(prefix string, at time.Time, seq int64) string {
	return fmt.Sprintf("%s-%s-%04d", prefix, at.UTC().Format("20060102"), seq)
}
