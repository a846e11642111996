package repository

import (
	"context"

	"tipi-reserve/internal/infra"
	"tipi-reserve/internal/infra/db"
)

type CounterRepository struct {
	db db.DBTX
}

func NewCounterRepository(dbtx db.DBTX) *CounterRepository {
	return &CounterRepository{db: dbtx}
}

// NextSequence is a single atomic read-increment-write: concurrent callers
// each observe a distinct value, so reference codes cannot collide. The
// counter is created on the first booking of a new day and never reused
// across days.
func (r *CounterRepository) NextSequence(ctx context.Context, day string) (int64, error) {
	const stmt = `
INSERT INTO daily_counters (day, value)
VALUES ($1, 1)
ON CONFLICT (day) DO UPDATE SET value = daily_counters.value + 1
RETURNING value`

	var value int64
	if err := r.db.QueryRow(ctx, stmt, day).Scan(&value); err != nil {
		return 0, infra.WrapRepoErr("failed to increment daily counter", err)
	}
	return value, nil
}
