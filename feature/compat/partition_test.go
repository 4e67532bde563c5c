package compat

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pipegrade/core/geo"
	"pipegrade/core/model"
)

func makeMedium(name string, nodes, lines int) *model.Medium {
	m := &model.Medium{Name: name}
	for i := 0; i < nodes; i++ {
		m.Nodes = append(m.Nodes, &model.NetworkElement{
			ID:       uuid.New(),
			Medium:   name,
			Kind:     model.KindShaft,
			Geometry: []geo.Point{{East: float64(i), North: 0}},
		})
	}
	for i := 0; i < lines; i++ {
		m.Lines = append(m.Lines, &model.NetworkElement{
			ID:     uuid.New(),
			Medium: name,
			Kind:   model.KindPipe,
			Geometry: []geo.Point{
				{East: float64(i), North: 0},
				{East: float64(i + 1), North: 0},
			},
		})
	}
	return m
}

func TestPartitionMergesCompatibleMediums(t *testing.T) {
	mediums := []*model.Medium{
		makeMedium("Abwasser Gemeinde", 2, 1),
		makeMedium("Abwasser Privat", 1, 2),
		makeMedium("Wasser", 1, 1),
	}

	groups := Partition(mediums, NewPrefixStrategy(" "))
	require.Len(t, groups, 2)

	// Sorted by group ID: abwasser before wasser.
	assert.Equal(t, "abwasser", groups[0].ID)
	assert.Len(t, groups[0].Nodes, 3)
	assert.Len(t, groups[0].Lines, 3)

	assert.Equal(t, "wasser", groups[1].ID)
	assert.Len(t, groups[1].Nodes, 1)
	assert.Len(t, groups[1].Lines, 1)
}

func TestPartitionSlicesAreDisjoint(t *testing.T) {
	mediums := []*model.Medium{
		makeMedium("Gas", 1, 1),
		makeMedium("Wasser", 1, 1),
	}

	groups := Partition(mediums, NewPrefixStrategy(" "))
	require.Len(t, groups, 2)

	seen := make(map[uuid.UUID]bool)
	for _, g := range groups {
		for _, e := range append(g.Nodes, g.Lines...) {
			assert.False(t, seen[e.ID], "element assigned to two groups")
			seen[e.ID] = true
		}
	}
	assert.Len(t, seen, 4)
}

func TestGroupMediumLookup(t *testing.T) {
	medium := makeMedium("Wasser", 1, 0)
	medium.ElevationOffsets = map[model.ElementKind]float64{model.KindShaft: 0.5}

	groups := Partition([]*model.Medium{medium}, NewPrefixStrategy(" "))
	require.Len(t, groups, 1)

	source := groups[0].Medium(medium.Nodes[0])
	require.NotNil(t, source)
	assert.Equal(t, 0.5, source.ElevationOffset(model.KindShaft))
}
