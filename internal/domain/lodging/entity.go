package lodging

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound        = errors.New("lodging not found")
	ErrInvalidQuantity = errors.New("quantity must be a positive integer")
)

// InsufficientStockError carries the remaining count so callers can retry
// with a lower quantity.
type InsufficientStockError struct {
	Remaining int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("only %d unit(s) remaining", e.Remaining)
}

// Stock is the per-lodging-type counter pair. The invariant
// 0 <= reservedUnits <= totalUnits holds for every committed state; all
// mutation goes through the durable store's atomic operations, never through
// an in-memory copy of this entity.
type Stock struct {
	id            string
	title         string
	totalUnits    int
	reservedUnits int
	unitCapacity  int
}

func ReconstructStock(id, title string, totalUnits, reservedUnits, unitCapacity int) *Stock {
	return &Stock{
		id:            id,
		title:         title,
		totalUnits:    totalUnits,
		reservedUnits: reservedUnits,
		unitCapacity:  unitCapacity,
	}
}

func (s *Stock) ID() string         { return s.id }
func (s *Stock) Title() string      { return s.title }
func (s *Stock) TotalUnits() int    { return s.totalUnits }
func (s *Stock) ReservedUnits() int { return s.reservedUnits }
func (s *Stock) UnitCapacity() int  { return s.unitCapacity }

// Remaining never reports a negative count even if counters have drifted.
func (s *Stock) Remaining() int {
	remaining := s.totalUnits - s.reservedUnits
	if remaining < 0 {
		return 0
	}
	return remaining
}

func (s *Stock) CanReserve(qty int) bool {
	return qty > 0 && qty <= s.Remaining()
}
