package gradient

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"pipegrade/core/geo"
	"pipegrade/core/model"
)

func TestBreakIndicesFlagsSlopeChange(t *testing.T) {
	d := NewBreakDetector(5.0)

	// 2% descent, then a 14% drop, then 2% again.
	points := []geo.Point{
		{East: 0, North: 0, Altitude: 100.0},
		{East: 50, North: 0, Altitude: 99.0},
		{East: 60, North: 0, Altitude: 97.6},
		{East: 110, North: 0, Altitude: 96.6},
	}

	assert.Equal(t, []int{1, 2}, d.BreakIndices(points))
}

func TestBreakIndicesIgnoresGentleNoise(t *testing.T) {
	d := NewBreakDetector(5.0)

	points := []geo.Point{
		{East: 0, North: 0, Altitude: 100.0},
		{East: 50, North: 0, Altitude: 99.6},
		{East: 100, North: 0, Altitude: 99.0},
	}

	assert.Empty(t, d.BreakIndices(points))
}

func TestBreakIndicesSkipsCoincidentPoints(t *testing.T) {
	d := NewBreakDetector(5.0)

	points := []geo.Point{
		{East: 0, North: 0, Altitude: 100},
		{East: 0, North: 0, Altitude: 90},
		{East: 10, North: 0, Altitude: 89},
	}

	assert.Empty(t, d.BreakIndices(points))
}

func TestBumpIndicesFlagsLocalMaxima(t *testing.T) {
	d := NewBreakDetector(5.0)

	points := []geo.Point{
		{East: 0, North: 0, Altitude: 100.0},
		{East: 10, North: 0, Altitude: 100.4}, // bump
		{East: 20, North: 0, Altitude: 99.8},
		{East: 30, North: 0, Altitude: 99.5},
	}

	assert.Equal(t, []int{1}, d.BumpIndices(points))
}

func TestShouldPreserveOnBreakVertex(t *testing.T) {
	d := NewBreakDetector(5.0)

	seg := newSegment([]geo.Point{
		{East: 0, North: 0, Altitude: 100.0},
		{East: 50, North: 0, Altitude: 99.0},
		{East: 60, North: 0, Altitude: 97.6},
	}, nil, nil)

	assert.True(t, d.ShouldPreserve(seg))
}

func TestShouldPreserveOnShaftDrop(t *testing.T) {
	d := NewBreakDetector(5.0)

	high := &model.NetworkElement{Kind: model.KindShaft, Geometry: []geo.Point{{East: 0, North: 0, Altitude: 99.0}}}
	low := &model.NetworkElement{Kind: model.KindShaft, Geometry: []geo.Point{{East: 10, North: 0, Altitude: 97.6}}}

	// 1.4 m over 10 m is a 14% shaft drop, above the 5% threshold.
	seg := newSegment([]geo.Point{
		{East: 0, North: 0, Altitude: 99.0},
		{East: 10, North: 0, Altitude: 97.6},
	}, high, low)
	assert.True(t, d.ShouldPreserve(seg))

	// 1 m over 100 m is a gentle 1% difference.
	gentle := newSegment([]geo.Point{
		{East: 0, North: 0, Altitude: 100.0},
		{East: 100, North: 0, Altitude: 99.0},
	},
		&model.NetworkElement{Kind: model.KindShaft, Geometry: []geo.Point{{East: 0, North: 0, Altitude: 100.0}}},
		&model.NetworkElement{Kind: model.KindShaft, Geometry: []geo.Point{{East: 100, North: 0, Altitude: 99.0}}},
	)
	assert.False(t, d.ShouldPreserve(gentle))
}
