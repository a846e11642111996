// Package refcode formats the human-readable booking references shown to
// guests instead of internal ids.
package refcode

import (
	"fmt"
	"time"
)

// DayKey returns the local-date scoping key for the daily sequence counter.
func DayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// Format renders a reference as DDMMYY-NN. The sequence is zero-padded to two
// digits and grows naturally past 99.
func Format(t time.Time, seq int64) string {
	return fmt.Sprintf("%s-%02d", t.Format("020106"), seq)
}
