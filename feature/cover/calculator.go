package cover

import (
	"fmt"

	"go.uber.org/zap"

	"pipegrade/core/geo"
	"pipegrade/core/model"
	"pipegrade/feature/compat"
)

// Calculator derives shaft construction heights from the cover elevation
// and the inverts of the pipes connected to each shaft. It runs after
// gradient normalization so pipe elevations are already consistent.
type Calculator struct {
	cfg      Config
	strategy compat.Strategy
	log      *zap.Logger
}

// NewCalculator validates the configuration and builds a calculator. A nil
// strategy defaults to prefix matching, a nil logger to a no-op logger.
func NewCalculator(cfg Config, strategy compat.Strategy, log *zap.Logger) (*Calculator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if strategy == nil {
		strategy = compat.NewPrefixStrategy(" ")
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Calculator{cfg: cfg, strategy: strategy, log: log}, nil
}

// endpoint references one end of a line-based element for spatial lookup.
type endpoint struct {
	pipe  *model.NetworkElement
	point geo.Point
}

// Run computes the cover-to-invert height of every shaft in the given
// mediums, writes it into the shaft's dimension record, and returns the
// per-shaft results. Shafts with no connected pipe are counted and left
// untouched.
func (c *Calculator) Run(mediums []*model.Medium) (*Report, error) {
	if len(mediums) == 0 {
		return nil, fmt.Errorf("cover: no mediums to process")
	}

	groups := compat.Partition(mediums, c.strategy)

	var results []HeightResult
	noPipes := 0

	for _, group := range groups {
		endpoints := collectEndpoints(group)
		index := endpointIndex(endpoints)

		c.log.Info("computing shaft heights for compatibility group",
			zap.String("group", group.ID),
			zap.Int("endpoints", len(endpoints)))

		for _, shaft := range group.Nodes {
			if !shaft.IsPointBased() || !shaft.Kind.IsShaftLike() {
				continue
			}

			result, ok := c.computeHeight(shaft, endpoints, index)
			if !ok {
				noPipes++
				c.log.Debug("shaft has no connected pipes, keeping dimension",
					zap.String("shaft", shaft.ID.String()),
					zap.String("medium", shaft.Medium))
				continue
			}

			result.GroupID = group.ID
			shaft.Dimension.Height = result.Height
			results = append(results, result)
		}
	}

	return &Report{
		Summary: BuildSummary(results, noPipes),
		Heights: results,
	}, nil
}

// computeHeight finds the lowest pipe invert among the pipes connected to
// the shaft and derives the height from the shaft's cover elevation.
func (c *Calculator) computeHeight(shaft *model.NetworkElement, endpoints []endpoint, index *geo.Index) (HeightResult, bool) {
	cover := shaft.Location()

	lowest := 0.0
	connected := 0
	seen := make(map[*model.NetworkElement]bool)

	for _, candidate := range index.Within(cover, c.cfg.SearchRadius) {
		ep := endpoints[candidate.Ref]
		if seen[ep.pipe] || !c.strategy.AreCompatible(shaft.Medium, ep.pipe.Medium) {
			continue
		}
		seen[ep.pipe] = true

		// Stored elevations sit at the pipe crown; subtracting the outer
		// height yields the invert the shaft floor must reach.
		invert := nearerEndAltitude(ep.pipe, cover) - ep.pipe.Dimension.OuterHeight()
		if connected == 0 || invert < lowest {
			lowest = invert
		}
		connected++
	}

	if connected == 0 {
		return HeightResult{}, false
	}

	height := cover.Altitude - lowest
	clamped := false
	if height < c.cfg.MinHeight {
		height = c.cfg.MinHeight
		clamped = true
	}

	return HeightResult{
		ShaftID:        shaft.ID,
		Medium:         shaft.Medium,
		CoverAltitude:  cover.Altitude,
		LowestInvert:   lowest,
		ConnectedPipes: connected,
		Height:         height,
		Clamped:        clamped,
	}, true
}

// nearerEndAltitude returns the altitude of the pipe endpoint closer to the
// given position.
func nearerEndAltitude(pipe *model.NetworkElement, to geo.Point) float64 {
	start, end := pipe.Start(), pipe.End()
	if start.Distance2D(to) <= end.Distance2D(to) {
		return start.Altitude
	}
	return end.Altitude
}

// collectEndpoints gathers both ends of every line-based element in a group.
func collectEndpoints(group *compat.Group) []endpoint {
	var endpoints []endpoint
	for _, pipe := range group.Lines {
		if !pipe.IsLineBased() {
			continue
		}
		endpoints = append(endpoints,
			endpoint{pipe: pipe, point: pipe.Start()},
			endpoint{pipe: pipe, point: pipe.End()})
	}
	return endpoints
}

// endpointIndex builds a spatial index over the collected endpoints.
func endpointIndex(endpoints []endpoint) *geo.Index {
	points := make([]geo.Point, len(endpoints))
	refs := make([]int, len(endpoints))
	for i, ep := range endpoints {
		points[i] = ep.point
		refs[i] = i
	}
	return geo.NewIndex(points, refs)
}
