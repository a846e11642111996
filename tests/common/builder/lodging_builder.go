//go:build unit || e2e

package builder

import (
	"tipi-reserve/internal/domain/lodging"
	"tipi-reserve/internal/usecase/queries"
)

type LodgingBuilder struct {
	ID            string
	Title         string
	TotalUnits    int
	ReservedUnits int
	UnitCapacity  int
}

func NewLodgingBuilder() *LodgingBuilder {
	return &LodgingBuilder{
		ID:            "tipis-lit140",
		Title:         "Tipi avec lit double 140",
		TotalUnits:    20,
		ReservedUnits: 0,
		UnitCapacity:  2,
	}
}

func (l *LodgingBuilder) BuildStock() *lodging.Stock {
	return lodging.ReconstructStock(l.ID, l.Title, l.TotalUnits, l.ReservedUnits, l.UnitCapacity)
}

func (l *LodgingBuilder) BuildStockView() *queries.StockView {
	remaining := l.TotalUnits - l.ReservedUnits
	if remaining < 0 {
		remaining = 0
	}
	return &queries.StockView{
		LodgingID:    l.ID,
		Title:        l.Title,
		TotalUnits:   l.TotalUnits,
		Remaining:    remaining,
		UnitCapacity: l.UnitCapacity,
	}
}

func (l *LodgingBuilder) WithID(id string) *LodgingBuilder {
	l.ID = id
	return l
}

func (l *LodgingBuilder) WithTitle(title string) *LodgingBuilder {
	l.Title = title
	return l
}

func (l *LodgingBuilder) WithTotalUnits(total int) *LodgingBuilder {
	l.TotalUnits = total
	return l
}

func (l *LodgingBuilder) WithReservedUnits(reserved int) *LodgingBuilder {
	l.ReservedUnits = reserved
	return l
}

func (l *LodgingBuilder) WithUnitCapacity(capacity int) *LodgingBuilder {
	l.UnitCapacity = capacity
	return l
}
