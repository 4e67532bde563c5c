package ingest

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"

	"pipegrade/core/geo"
	"pipegrade/core/model"
	"pipegrade/core/utils"
)

// networkFile is the on-disk layout of an extracted network.
type networkFile struct {
	Mediums []mediumRecord `json:"mediums"`
}

type mediumRecord struct {
	Name             string                        `json:"name"`
	Nodes            []elementRecord               `json:"nodes"`
	Lines            []elementRecord               `json:"lines"`
	ElevationOffsets map[model.ElementKind]float64 `json:"elevation_offsets"`
}

// elementRecord mirrors model.NetworkElement but keeps attributes loose:
// extraction tools emit numbers and booleans there, which get stringified.
type elementRecord struct {
	ID         uuid.UUID         `json:"id"`
	Kind       model.ElementKind `json:"kind"`
	Geometry   []geo.Point       `json:"geometry"`
	Dimension  model.Dimension   `json:"dimension"`
	Label      string            `json:"label"`
	Attributes map[string]any    `json:"attributes"`
}

// LoadNetwork reads a JSON network file and decodes it into mediums.
// Every node must be point-based and every line line-based; a violation
// fails the whole load since downstream passes rely on the invariant.
func LoadNetwork(path string) ([]*model.Medium, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("ingest: reading network file: %w", err)
	}

	var file networkFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("ingest: decoding network file %s: %w", path, err)
	}
	if len(file.Mediums) == 0 {
		return nil, fmt.Errorf("ingest: network file %s contains no mediums", path)
	}

	mediums := make([]*model.Medium, 0, len(file.Mediums))
	for _, rec := range file.Mediums {
		if rec.Name == "" {
			return nil, fmt.Errorf("ingest: medium without a name in %s", path)
		}

		medium := &model.Medium{Name: rec.Name, ElevationOffsets: rec.ElevationOffsets}

		for _, node := range rec.Nodes {
			element, err := buildElement(node, rec.Name)
			if err != nil {
				return nil, err
			}
			if !element.IsPointBased() {
				return nil, fmt.Errorf("ingest: node %s in medium %s has %d vertices, want exactly 1",
					element.ID, rec.Name, len(element.Geometry))
			}
			medium.Nodes = append(medium.Nodes, element)
		}

		for _, line := range rec.Lines {
			element, err := buildElement(line, rec.Name)
			if err != nil {
				return nil, err
			}
			if !element.IsLineBased() {
				return nil, fmt.Errorf("ingest: line %s in medium %s has %d vertices, want at least 2",
					element.ID, rec.Name, len(element.Geometry))
			}
			medium.Lines = append(medium.Lines, element)
		}

		mediums = append(mediums, medium)
	}

	return mediums, nil
}

// buildElement converts a decoded record into a model element, assigning an
// identity where the file carries none.
func buildElement(rec elementRecord, medium string) (*model.NetworkElement, error) {
	element := &model.NetworkElement{
		ID:        rec.ID,
		Medium:    medium,
		Kind:      rec.Kind,
		Geometry:  rec.Geometry,
		Dimension: rec.Dimension,
		Label:     rec.Label,
	}
	if element.ID == uuid.Nil {
		element.ID = uuid.New()
	}
	if element.Kind == "" {
		element.Kind = model.KindUnknown
	}
	if len(rec.Attributes) > 0 {
		element.Attributes = make(map[string]string, len(rec.Attributes))
		for key, value := range rec.Attributes {
			element.Attributes[key] = utils.ToString(value)
		}
	}

	if err := element.Validate(); err != nil {
		return nil, fmt.Errorf("ingest: %w", err)
	}
	return element, nil
}
