package cover

import "github.com/google/uuid"

// HeightResult records one derived shaft height.
type HeightResult struct {
	// ShaftID identifies the shaft.
	ShaftID uuid.UUID `json:"shaft_id"`

	// Medium is the shaft's medium name, GroupID its compatibility group.
	Medium  string `json:"medium"`
	GroupID string `json:"group_id"`

	// CoverAltitude is the surveyed cover elevation in meters.
	CoverAltitude float64 `json:"cover_altitude"`

	// LowestInvert is the lowest connected pipe invert in meters.
	LowestInvert float64 `json:"lowest_invert"`

	// ConnectedPipes counts the pipes found within the search radius.
	ConnectedPipes int `json:"connected_pipes"`

	// Height is the cover-to-invert height written to the shaft dimension.
	Height float64 `json:"height"`

	// Clamped reports that the computed height fell below the minimum and
	// was raised to it.
	Clamped bool `json:"clamped,omitempty"`
}

// Summary aggregates one calculator run.
type Summary struct {
	// TotalShafts counts shafts that received a height.
	TotalShafts int `json:"total_shafts"`

	// NoPipeShafts counts shafts skipped for lack of a connected pipe.
	NoPipeShafts int `json:"no_pipe_shafts"`

	// ClampedShafts counts heights raised to the minimum.
	ClampedShafts int `json:"clamped_shafts"`

	// Height statistics in meters over all computed shafts.
	AverageHeight float64 `json:"average_height"`
	MinHeight     float64 `json:"min_height"`
	MaxHeight     float64 `json:"max_height"`
}

// Report bundles the per-shaft results with the aggregate summary.
type Report struct {
	Summary Summary        `json:"summary"`
	Heights []HeightResult `json:"heights"`
}

// BuildSummary aggregates height results into a summary.
func BuildSummary(results []HeightResult, noPipes int) Summary {
	summary := Summary{
		TotalShafts:  len(results),
		NoPipeShafts: noPipes,
	}
	if len(results) == 0 {
		return summary
	}

	var sum float64
	summary.MinHeight = results[0].Height
	summary.MaxHeight = results[0].Height

	for _, r := range results {
		sum += r.Height
		if r.Clamped {
			summary.ClampedShafts++
		}
		if r.Height < summary.MinHeight {
			summary.MinHeight = r.Height
		}
		if r.Height > summary.MaxHeight {
			summary.MaxHeight = r.Height
		}
	}

	summary.AverageHeight = sum / float64(len(results))
	return summary
}
