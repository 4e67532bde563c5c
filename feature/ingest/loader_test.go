package ingest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pipegrade/core/model"
)

func writeTempNetwork(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "network.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadNetwork(t *testing.T) {
	path := writeTempNetwork(t, `{
		"mediums": [{
			"name": "Abwasser Gemeinde",
			"elevation_offsets": {"shaft": 1.8},
			"nodes": [{
				"kind": "shaft",
				"geometry": [{"east": 10.0, "north": 20.0, "altitude": 450.5}],
				"attributes": {"layer": "AW_SCHACHT", "handle": 4711, "verified": true}
			}],
			"lines": [{
				"kind": "pipe",
				"geometry": [
					{"east": 10.0, "north": 20.0, "altitude": 448.7},
					{"east": 60.0, "north": 20.0, "altitude": 448.2}
				],
				"dimension": {"shape": "round", "diameter": 0.25}
			}]
		}]
	}`)

	mediums, err := LoadNetwork(path)
	require.NoError(t, err)
	require.Len(t, mediums, 1)

	medium := mediums[0]
	assert.Equal(t, "Abwasser Gemeinde", medium.Name)
	assert.InDelta(t, 1.8, medium.ElevationOffset(model.KindShaft), 1e-9)

	require.Len(t, medium.Nodes, 1)
	shaft := medium.Nodes[0]
	assert.NotEqual(t, uuid.Nil, shaft.ID)
	assert.Equal(t, model.KindShaft, shaft.Kind)
	assert.Equal(t, "Abwasser Gemeinde", shaft.Medium)
	// Non-string attribute values are stringified.
	assert.Equal(t, "AW_SCHACHT", shaft.Attributes["layer"])
	assert.Equal(t, "4711", shaft.Attributes["handle"])
	assert.Equal(t, "true", shaft.Attributes["verified"])

	require.Len(t, medium.Lines, 1)
	pipe := medium.Lines[0]
	assert.Equal(t, model.KindPipe, pipe.Kind)
	assert.InDelta(t, 0.25, pipe.Dimension.Diameter, 1e-9)
	assert.InDelta(t, 50.0, pipe.Length(), 1e-9)
}

func TestLoadNetworkRejectsMultiVertexNode(t *testing.T) {
	path := writeTempNetwork(t, `{
		"mediums": [{
			"name": "Wasser",
			"nodes": [{
				"kind": "shaft",
				"geometry": [
					{"east": 0, "north": 0, "altitude": 1},
					{"east": 1, "north": 0, "altitude": 1}
				]
			}]
		}]
	}`)

	_, err := LoadNetwork(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "want exactly 1")
}

func TestLoadNetworkRejectsSingleVertexLine(t *testing.T) {
	path := writeTempNetwork(t, `{
		"mediums": [{
			"name": "Wasser",
			"lines": [{
				"kind": "pipe",
				"geometry": [{"east": 0, "north": 0, "altitude": 1}]
			}]
		}]
	}`)

	_, err := LoadNetwork(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "want at least 2")
}

func TestLoadNetworkRejectsEmptyFile(t *testing.T) {
	path := writeTempNetwork(t, `{"mediums": []}`)

	_, err := LoadNetwork(path)
	assert.Error(t, err)
}

func TestLoadNetworkRejectsNamelessMedium(t *testing.T) {
	path := writeTempNetwork(t, `{"mediums": [{"name": ""}]}`)

	_, err := LoadNetwork(path)
	assert.Error(t, err)
}

func TestLoadNetworkMissingFile(t *testing.T) {
	_, err := LoadNetwork(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestLoadNetworkDefaultsUnknownKind(t *testing.T) {
	path := writeTempNetwork(t, `{
		"mediums": [{
			"name": "Wasser",
			"nodes": [{"geometry": [{"east": 0, "north": 0, "altitude": 1}]}]
		}]
	}`)

	mediums, err := LoadNetwork(path)
	require.NoError(t, err)
	assert.Equal(t, model.KindUnknown, mediums[0].Nodes[0].Kind)
}
