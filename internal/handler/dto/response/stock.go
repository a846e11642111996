package response

import (
	"tipi-reserve/internal/usecase/queries"
)

type StockResponse struct {
	LodgingID    string `json:"lodging_id"`
	Title        string `json:"title"`
	TotalUnits   int    `json:"total_units"`
	Remaining    int    `json:"remaining"`
	UnitCapacity int    `json:"unit_capacity"`
}

func FromStockView(v *queries.StockView) *StockResponse {
	return &StockResponse{
		LodgingID:    v.LodgingID,
		Title:        v.Title,
		TotalUnits:   v.TotalUnits,
		Remaining:    v.Remaining,
		UnitCapacity: v.UnitCapacity,
	}
}

func FromStockViews(views []*queries.StockView) []*StockResponse {
	out := make([]*StockResponse, 0, len(views))
	for _, v := range views {
		out = append(out, FromStockView(v))
	}
	return out
}
