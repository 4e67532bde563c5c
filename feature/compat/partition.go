package compat

import (
	"sort"

	"pipegrade/core/model"
)

// Group is one compatibility partition: the disjoint slice of elements a
// single analysis pass owns. Nodes and lines keep their extraction order
// within the group.
type Group struct {
	// ID is the strategy-assigned group identifier.
	ID string

	// Nodes are the point-based elements of the group.
	Nodes []*model.NetworkElement

	// Lines are the line-based elements of the group.
	Lines []*model.NetworkElement

	// Mediums are the source mediums contributing to the group, keyed by
	// name, used to resolve per-kind elevation offsets.
	Mediums map[string]*model.Medium
}

// Medium returns the source medium of an element, nil if unknown.
func (g *Group) Medium(e *model.NetworkElement) *model.Medium {
	return g.Mediums[e.Medium]
}

// Partition splits all elements of the given mediums into disjoint
// compatibility groups, ordered by group ID for deterministic processing.
func Partition(mediums []*model.Medium, strategy Strategy) []*Group {
	byID := make(map[string]*Group)

	for _, medium := range mediums {
		id := strategy.GroupID(medium.Name)
		group, ok := byID[id]
		if !ok {
			group = &Group{ID: id, Mediums: make(map[string]*model.Medium)}
			byID[id] = group
		}
		group.Mediums[medium.Name] = medium
		group.Nodes = append(group.Nodes, medium.Nodes...)
		group.Lines = append(group.Lines, medium.Lines...)
	}

	groups := make([]*Group, 0, len(byID))
	for _, group := range byID {
		groups = append(groups, group)
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].ID < groups[j].ID })

	return groups
}
