//go:build unit

package lodging_test

import (
	"testing"

	"tipi-reserve/tests/common/builder"

	"github.com/stretchr/testify/assert"
)

func TestStockRemaining(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		reserved int
		want     int
	}{
		{name: "untouched stock", total: 20, reserved: 0, want: 20},
		{name: "partially reserved", total: 20, reserved: 13, want: 7},
		{name: "fully reserved", total: 20, reserved: 20, want: 0},
		{name: "drifted counters clamp to zero", total: 20, reserved: 25, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := builder.NewLodgingBuilder().
				WithTotalUnits(tt.total).
				WithReservedUnits(tt.reserved).
				BuildStock()

			assert.Equal(t, tt.want, st.Remaining())
		})
	}
}

func TestStockCanReserve(t *testing.T) {
	st := builder.NewLodgingBuilder().
		WithTotalUnits(20).
		WithReservedUnits(18).
		BuildStock()

	assert.True(t, st.CanReserve(1))
	assert.True(t, st.CanReserve(2))
	assert.False(t, st.CanReserve(3))
	assert.False(t, st.CanReserve(0))
	assert.False(t, st.CanReserve(-1))
}

func TestReconstructStock(t *testing.T) {
	st := builder.NewLodgingBuilder().
		WithID("tipis-lits90").
		WithTitle("Tipi avec deux lits 90").
		WithTotalUnits(20).
		WithReservedUnits(4).
		WithUnitCapacity(2).
		BuildStock()

	assert.Equal(t, "tipis-lits90", st.ID())
	assert.Equal(t, "Tipi avec deux lits 90", st.Title())
	assert.Equal(t, 20, st.TotalUnits())
	assert.Equal(t, 4, st.ReservedUnits())
	assert.Equal(t, 2, st.UnitCapacity())
}
