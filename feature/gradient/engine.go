package gradient

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"go.uber.org/zap"

	"pipegrade/core/model"
	"pipegrade/feature/compat"
)

// ErrNotLoaded is returned when Run is called before any network was loaded.
var ErrNotLoaded = errors.New("gradient: no network loaded")

// Engine orchestrates gradient normalization across all mediums: it
// partitions elements into compatibility groups, builds one spatial index
// per group, and runs the per-pipe passes sequentially. Groups own disjoint
// element slices, so a single pass never touches another group's data.
type Engine struct {
	params     Params
	strategy   compat.Strategy
	normalizer *Normalizer
	adjuster   *Adjuster
	log        *zap.Logger

	mediums []*model.Medium
	loaded  bool
}

// NewEngine validates the parameters and builds an engine. A nil strategy
// defaults to prefix matching, a nil logger to a no-op logger.
func NewEngine(params Params, strategy compat.Strategy, log *zap.Logger) (*Engine, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if strategy == nil {
		strategy = compat.NewPrefixStrategy(" ")
	}
	if log == nil {
		log = zap.NewNop()
	}

	return &Engine{
		params:     params,
		strategy:   strategy,
		normalizer: NewNormalizer(params, log),
		adjuster:   NewAdjuster(params),
		log:        log,
	}, nil
}

// Load makes the engine borrow the given mediums for subsequent runs.
// Loading again replaces the previous network; spatial indices are rebuilt
// on the next Run.
func (e *Engine) Load(mediums []*model.Medium) {
	e.mediums = mediums
	e.loaded = true
}

// Run normalizes every line-based element of the loaded network and returns
// the adjustment report. Per-element problems are absorbed and counted;
// only running without a loaded network is an error.
func (e *Engine) Run() (*Report, error) {
	if !e.loaded {
		return nil, ErrNotLoaded
	}

	groups := compat.Partition(e.mediums, e.strategy)

	var adjustments []Adjustment
	totalPipes, totalShafts, skipped := 0, 0, 0

	for _, group := range groups {
		resolver := NewResolver(group, e.strategy, e.params.ManholeSearchRadius)
		totalShafts += resolver.ShaftCount()

		e.log.Info("adjusting gradients for compatibility group",
			zap.String("group", group.ID),
			zap.Int("pipes", len(group.Lines)),
			zap.Int("shafts", resolver.ShaftCount()))

		invertOf := func(shaft *model.NetworkElement) float64 {
			offset := 0.0
			if medium := group.Medium(shaft); medium != nil {
				offset = medium.ElevationOffset(shaft.Kind)
			}
			return shaftAltitude(shaft) - offset
		}

		for _, pipe := range group.Lines {
			totalPipes++

			if err := pipe.Validate(); err != nil || !pipe.IsLineBased() {
				skipped++
				e.log.Warn("skipping pipe with unusable geometry",
					zap.String("pipe", pipe.ID.String()),
					zap.String("medium", pipe.Medium),
					zap.Int("vertices", len(pipe.Geometry)))
				continue
			}

			var adjustment *Adjustment
			if len(pipe.Geometry) == 2 {
				adjustment = e.adjustEndpoints(pipe, group, resolver, invertOf)
			} else {
				adjustment = e.normalizeSegments(pipe, group, resolver, invertOf)
			}
			if adjustment != nil {
				adjustments = append(adjustments, *adjustment)
			}
		}
	}

	return &Report{
		Summary:     BuildSummary(adjustments, totalPipes, totalShafts, len(groups), skipped),
		Adjustments: adjustments,
	}, nil
}

// adjustEndpoints handles the simple case of a two-point pipe.
func (e *Engine) adjustEndpoints(pipe *model.NetworkElement, group *compat.Group, resolver *Resolver, invertOf func(*model.NetworkElement) float64) *Adjustment {
	startShaft := resolver.ShaftAt(pipe.Start(), pipe.Medium)
	endShaft := resolver.ShaftAt(pipe.End(), pipe.Medium)

	var startInvert, endInvert *float64
	if startShaft != nil {
		v := invertOf(startShaft)
		startInvert = &v
	}
	if endShaft != nil {
		v := invertOf(endShaft)
		endInvert = &v
	}

	origStart, origEnd := pipe.Start().Altitude, pipe.End().Altitude
	newStart, newEnd, gradient, reason := e.adjuster.Target(pipe.Start(), pipe.End(), startInvert, endInvert)

	if math.Abs(newStart-origStart) <= ElevationTolerance && math.Abs(newEnd-origEnd) <= ElevationTolerance {
		return nil
	}

	pipe.Geometry[0] = pipe.Geometry[0].WithAltitude(newStart)
	pipe.Geometry[1] = pipe.Geometry[1].WithAltitude(newEnd)

	return &Adjustment{
		PipeID:          pipe.ID,
		Medium:          pipe.Medium,
		GroupID:         group.ID,
		Method:          "endpoint",
		StartConnected:  startShaft != nil,
		EndConnected:    endShaft != nil,
		OriginalStart:   origStart,
		OriginalEnd:     origEnd,
		AdjustedStart:   newStart,
		AdjustedEnd:     newEnd,
		GradientPercent: gradient,
		Reason:          reason,
		Compatibility:   e.describeShafts(pipe, startShaft, endShaft),
	}
}

// normalizeSegments handles multi-vertex pipes with shafts possibly resolved
// at interior vertices.
func (e *Engine) normalizeSegments(pipe *model.NetworkElement, group *compat.Group, resolver *Resolver, invertOf func(*model.NetworkElement) float64) *Adjustment {
	origStart, origEnd := pipe.Start().Altitude, pipe.End().Altitude

	resolutions := resolver.ShaftsAlong(pipe)
	result := e.normalizer.NormalizePipe(pipe, resolutions, invertOf)
	if !result.Changed {
		return nil
	}

	gradient := 0.0
	if length := pipe.Length(); length > 0 {
		gradient = (pipe.End().Altitude - pipe.Start().Altitude) / length * 100
	}

	reason := fmt.Sprintf("normalized %d segment(s)", result.Segments)
	if result.Preserved > 0 {
		reason = fmt.Sprintf("normalized %d segment(s), preserved %d gradient break(s)",
			result.Segments, result.Preserved)
	}

	return &Adjustment{
		PipeID:          pipe.ID,
		Medium:          pipe.Medium,
		GroupID:         group.ID,
		Method:          "segment",
		StartConnected:  result.StartConnected,
		EndConnected:    result.EndConnected,
		OriginalStart:   origStart,
		OriginalEnd:     origEnd,
		AdjustedStart:   pipe.Start().Altitude,
		AdjustedEnd:     pipe.End().Altitude,
		GradientPercent: gradient,
		Reason:          reason,
		Compatibility:   fmt.Sprintf("%d shaft resolution(s) along pipe", len(resolutions)),
		Segments:        result.Segments,
		Preserved:       result.Preserved,
	}
}

// describeShafts renders the compatibility decisions behind the resolved
// boundary shafts for diagnostics.
func (e *Engine) describeShafts(pipe *model.NetworkElement, startShaft, endShaft *model.NetworkElement) string {
	var parts []string
	if startShaft != nil {
		parts = append(parts, "start: "+e.strategy.Describe(pipe.Medium, startShaft.Medium))
	}
	if endShaft != nil {
		parts = append(parts, "end: "+e.strategy.Describe(pipe.Medium, endShaft.Medium))
	}
	if len(parts) == 0 {
		return fmt.Sprintf("no compatible shafts found for %s", pipe.Medium)
	}
	return strings.Join(parts, "; ")
}
