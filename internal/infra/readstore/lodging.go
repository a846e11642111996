package readstore

import (
	"context"

	"tipi-reserve/internal/infra"
	"tipi-reserve/internal/infra/db"
	"tipi-reserve/internal/usecase/queries"
)

type LodgingReadStore struct {
	db db.DBTX
}

func NewLodgingReadStore(dbtx db.DBTX) *LodgingReadStore {
	return &LodgingReadStore{db: dbtx}
}

func (r *LodgingReadStore) ListStock(ctx context.Context) ([]*queries.StockView, error) {
	const query = `
SELECT id, title, total_units, GREATEST(0, total_units - reserved_units), unit_capacity
FROM lodgings
ORDER BY id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list stock", err)
	}
	defer rows.Close()

	var result []*queries.StockView
	for rows.Next() {
		var v queries.StockView
		if err := rows.Scan(&v.LodgingID, &v.Title, &v.TotalUnits, &v.Remaining, &v.UnitCapacity); err != nil {
			return nil, infra.WrapRepoErr("failed to scan stock", err)
		}
		result = append(result, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate stock", err)
	}
	return result, nil
}
