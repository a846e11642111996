package queries

import (
	"context"

	"tipi-reserve/internal/pkg/errs"
)

// StockView is derived data: remaining is computed, never stored.
type StockView struct {
	LodgingID    string `json:"lodging_id"`
	Title        string `json:"title"`
	TotalUnits   int    `json:"total_units"`
	Remaining    int    `json:"remaining"`
	UnitCapacity int    `json:"unit_capacity"`
}

type StockReadStore interface {
	ListStock(ctx context.Context) ([]*StockView, error)
}

type StockQueries interface {
	Remaining(ctx context.Context) ([]*StockView, error)
}

type stockQueriesImpl struct {
	store StockReadStore
}

func NewStockQueries(store StockReadStore) StockQueries {
	return &stockQueriesImpl{store: store}
}

func (q *stockQueriesImpl) Remaining(ctx context.Context) ([]*StockView, error) {
	views, err := q.store.ListStock(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrQueryFailed)
	}
	return views, nil
}
