//go:build unit

package refcode_test

import (
	"testing"
	"time"

	"tipi-reserve/internal/pkg/refcode"

	"github.com/stretchr/testify/assert"
)

func TestDayKey(t *testing.T) {
	assert.Equal(t, "2026-08-15", refcode.DayKey(time.Date(2026, 8, 15, 23, 59, 0, 0, time.UTC)))
	assert.Equal(t, "2026-01-02", refcode.DayKey(time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)))
}

func TestFormat(t *testing.T) {
	day := time.Date(2026, 8, 15, 10, 30, 0, 0, time.UTC)

	cases := []struct {
		name string
		t    time.Time
		seq  int64
		want string
	}{
		{name: "first of the day", t: day, seq: 1, want: "150826-01"},
		{name: "zero padded below ten", t: day, seq: 9, want: "150826-09"},
		{name: "two digits", t: day, seq: 42, want: "150826-42"},
		{name: "grows past two digits", t: day, seq: 117, want: "150826-117"},
		{name: "single digit day and month", t: time.Date(2026, 1, 2, 8, 0, 0, 0, time.UTC), seq: 3, want: "020126-03"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, refcode.Format(tc.t, tc.seq))
		})
	}
}
