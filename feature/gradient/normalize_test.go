package gradient

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"pipegrade/core/geo"
	"pipegrade/core/model"
)

func invertFromAltitude(shaft *model.NetworkElement) float64 {
	return shaftAltitude(shaft)
}

func TestNormalizePipeLinearizesBetweenShafts(t *testing.T) {
	n := NewNormalizer(defaultParams(), zap.NewNop())

	pipe := pipeWith(
		geo.Point{East: 0, North: 0, Altitude: 100.0},
		geo.Point{East: 50, North: 0, Altitude: 99.8}, // noisy terrain vertex
		geo.Point{East: 100, North: 0, Altitude: 99.0},
	)
	start := shaftAt(0, 0, 100.0)
	end := shaftAt(100, 0, 99.0)

	result := n.NormalizePipe(pipe, []VertexShaft{
		{VertexIndex: 0, Shaft: start},
		{VertexIndex: 2, Shaft: end},
	}, invertFromAltitude)

	assert.True(t, result.Changed)
	assert.True(t, result.StartConnected)
	assert.True(t, result.EndConnected)
	assert.Equal(t, 1, result.Segments)
	assert.Zero(t, result.Preserved)

	// One constant 1% slope anchored at the start elevation.
	assert.InDelta(t, 100.0, pipe.Geometry[0].Altitude, 1e-9)
	assert.InDelta(t, 99.5, pipe.Geometry[1].Altitude, 1e-9)
	assert.InDelta(t, 99.0, pipe.Geometry[2].Altitude, 1e-9)
}

func TestNormalizePipePreservesDropStructure(t *testing.T) {
	n := NewNormalizer(defaultParams(), zap.NewNop())

	// 14% between shafts over 10 m: an intentional drop, left alone.
	pipe := pipeWith(
		geo.Point{East: 0, North: 0, Altitude: 99.0},
		geo.Point{East: 5, North: 0, Altitude: 98.3},
		geo.Point{East: 10, North: 0, Altitude: 97.6},
	)
	start := shaftAt(0, 0, 99.0)
	end := shaftAt(10, 0, 97.6)

	result := n.NormalizePipe(pipe, []VertexShaft{
		{VertexIndex: 0, Shaft: start},
		{VertexIndex: 2, Shaft: end},
	}, invertFromAltitude)

	assert.False(t, result.Changed)
	assert.Equal(t, 1, result.Preserved)
	assert.InDelta(t, 98.3, pipe.Geometry[1].Altitude, 1e-9)
}

func TestNormalizePipeSmoothsBumpWithoutShafts(t *testing.T) {
	n := NewNormalizer(defaultParams(), zap.NewNop())

	pipe := pipeWith(
		geo.Point{East: 0, North: 0, Altitude: 100.0},
		geo.Point{East: 10, North: 0, Altitude: 100.4}, // terrain bump
		geo.Point{East: 20, North: 0, Altitude: 99.8},
	)

	result := n.NormalizePipe(pipe, nil, invertFromAltitude)

	assert.True(t, result.Changed)
	assert.False(t, result.StartConnected)
	assert.False(t, result.EndConnected)
	assert.InDelta(t, 100.0, pipe.Geometry[0].Altitude, 1e-9)
	assert.InDelta(t, 99.9, pipe.Geometry[1].Altitude, 1e-9)
	assert.InDelta(t, 99.8, pipe.Geometry[2].Altitude, 1e-9)
}

func TestNormalizePipeKeepsAcceptableProfile(t *testing.T) {
	n := NewNormalizer(defaultParams(), zap.NewNop())

	// Already monotone at 1%, no shafts: nothing to change.
	original := []geo.Point{
		{East: 0, North: 0, Altitude: 100.0},
		{East: 50, North: 0, Altitude: 99.5},
		{East: 100, North: 0, Altitude: 99.0},
	}
	pipe := pipeWith(original...)

	result := n.NormalizePipe(pipe, nil, invertFromAltitude)

	assert.False(t, result.Changed)
	assert.Equal(t, original, pipe.Geometry)
}

func TestNormalizePipeSingleInteriorShaftUsesAverageSlope(t *testing.T) {
	n := NewNormalizer(defaultParams(), zap.NewNop())

	// One shaft mid-pipe splits it in two; each half falls back to its own
	// average slope since a single boundary shaft cannot define the run.
	pipe := pipeWith(
		geo.Point{East: 0, North: 0, Altitude: 100.0},
		geo.Point{East: 25, North: 0, Altitude: 99.9},
		geo.Point{East: 50, North: 0, Altitude: 99.5},
		geo.Point{East: 100, North: 0, Altitude: 99.0},
	)
	mid := shaftAt(50, 0, 99.5)

	result := n.NormalizePipe(pipe, []VertexShaft{{VertexIndex: 2, Shaft: mid}}, invertFromAltitude)

	require.Equal(t, 2, result.Segments)
	assert.True(t, result.Changed)
	// First half averages 1% over 50 m, so the interior vertex lands at 99.75.
	assert.InDelta(t, 99.75, pipe.Geometry[1].Altitude, 1e-9)
	assert.InDelta(t, 99.5, pipe.Geometry[2].Altitude, 1e-9)
	assert.InDelta(t, 99.0, pipe.Geometry[3].Altitude, 1e-9)
}

func TestSmoothBumpsConsecutive(t *testing.T) {
	points := []geo.Point{
		{East: 0, North: 0, Altitude: 100.0},
		{East: 10, North: 0, Altitude: 100.6},
		{East: 20, North: 0, Altitude: 100.3},
		{East: 30, North: 0, Altitude: 99.0},
	}

	out := smoothBumps(points, []int{1, 2})
	assert.InDelta(t, 100.0, out[0].Altitude, 1e-9)
	assert.Less(t, out[1].Altitude, points[1].Altitude)
	assert.Less(t, out[2].Altitude, points[2].Altitude)
	assert.InDelta(t, 99.0, out[3].Altitude, 1e-9)
	// Original slice stays untouched.
	assert.InDelta(t, 100.6, points[1].Altitude, 1e-9)
}
