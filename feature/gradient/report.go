package gradient

import (
	"math"

	"github.com/google/uuid"
)

// Adjustment is the immutable record of one pipe correction: original
// versus adjusted boundary elevations, the resulting gradient, and the
// justification. Pipes already within the elevation tolerance of their
// target produce no record.
type Adjustment struct {
	// PipeID identifies the adjusted element.
	PipeID uuid.UUID `json:"pipe_id"`

	// Medium is the pipe's medium name, GroupID its compatibility group.
	Medium  string `json:"medium"`
	GroupID string `json:"group_id"`

	// Method is "endpoint" for two-point pipes or "segment" for multi-vertex
	// runs normalized per segment.
	Method string `json:"method"`

	// StartConnected and EndConnected report resolved boundary shafts.
	StartConnected bool `json:"start_connected"`
	EndConnected   bool `json:"end_connected"`

	// Original and adjusted boundary elevations in meters.
	OriginalStart float64 `json:"original_start"`
	OriginalEnd   float64 `json:"original_end"`
	AdjustedStart float64 `json:"adjusted_start"`
	AdjustedEnd   float64 `json:"adjusted_end"`

	// GradientPercent is the applied overall gradient, negative downhill.
	GradientPercent float64 `json:"gradient_percent"`

	// Reason explains which rule produced the adjustment.
	Reason string `json:"reason"`

	// Compatibility describes the medium compatibility decisions involved.
	Compatibility string `json:"compatibility"`

	// Segments and Preserved are only set for the segment method.
	Segments  int `json:"segments,omitempty"`
	Preserved int `json:"preserved,omitempty"`
}

// Summary aggregates one engine run for textual reporting.
type Summary struct {
	// TotalPipes and TotalShafts count the processed elements.
	TotalPipes  int `json:"total_pipes"`
	TotalShafts int `json:"total_shafts"`

	// TotalGroups is the number of compatibility groups processed.
	TotalGroups int `json:"total_groups"`

	// TotalAdjustments counts pipes that were actually changed.
	TotalAdjustments int `json:"total_adjustments"`

	// SkippedPipes counts elements absorbed as unusable (too few points,
	// invalid geometry).
	SkippedPipes int `json:"skipped_pipes"`

	// TotalElevationChange sums absolute boundary elevation changes in meters.
	TotalElevationChange float64 `json:"total_elevation_change_m"`

	// Gradient statistics over all adjustments, in percent.
	AverageGradientPercent  float64 `json:"average_gradient_percent"`
	SteepestGradientPercent float64 `json:"steepest_gradient_percent"`
	FlattestGradientPercent float64 `json:"flattest_gradient_percent"`

	// AdjustmentsByGroup counts adjustments per compatibility group.
	AdjustmentsByGroup map[string]int `json:"adjustments_by_group"`
}

// Report bundles the per-pipe records with the aggregate summary.
type Report struct {
	Summary     Summary      `json:"summary"`
	Adjustments []Adjustment `json:"adjustments"`
}

// BuildSummary aggregates adjustment records into a summary.
func BuildSummary(adjustments []Adjustment, totalPipes, totalShafts, totalGroups, skipped int) Summary {
	summary := Summary{
		TotalPipes:         totalPipes,
		TotalShafts:        totalShafts,
		TotalGroups:        totalGroups,
		TotalAdjustments:   len(adjustments),
		SkippedPipes:       skipped,
		AdjustmentsByGroup: make(map[string]int),
	}

	if len(adjustments) == 0 {
		return summary
	}

	var gradientSum float64
	steepest := adjustments[0].GradientPercent
	flattest := adjustments[0].GradientPercent

	for _, adj := range adjustments {
		summary.AdjustmentsByGroup[adj.GroupID]++
		summary.TotalElevationChange += math.Abs(adj.AdjustedStart-adj.OriginalStart) +
			math.Abs(adj.AdjustedEnd-adj.OriginalEnd)
		gradientSum += adj.GradientPercent
		if math.Abs(adj.GradientPercent) > math.Abs(steepest) {
			steepest = adj.GradientPercent
		}
		if math.Abs(adj.GradientPercent) < math.Abs(flattest) {
			flattest = adj.GradientPercent
		}
	}

	summary.AverageGradientPercent = gradientSum / float64(len(adjustments))
	summary.SteepestGradientPercent = steepest
	summary.FlattestGradientPercent = flattest
	return summary
}
