package response

import (
	"tipi-reserve/internal/usecase/commands"
)

type PurgeResponse struct {
	DryRun        bool     `json:"dry_run"`
	OlderThanDays int      `json:"older_than_days"`
	Limit         int      `json:"limit,omitempty"`
	TotalMatched  int      `json:"total_matched"`
	TotalDeleted  int      `json:"total_deleted"`
	SampleIDs     []string `json:"sample_ids"`
}

func FromPurgeResult(r *commands.PurgeResult) *PurgeResponse {
	return &PurgeResponse{
		DryRun:        r.DryRun,
		OlderThanDays: r.OlderThanDays,
		Limit:         r.Limit,
		TotalMatched:  r.TotalMatched,
		TotalDeleted:  r.TotalDeleted,
		SampleIDs:     r.SampleIDs,
	}
}

type RecountResponse struct {
	ReservedUnits map[string]int `json:"reserved_units"`
}
