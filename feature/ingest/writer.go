package ingest

import (
	"encoding/json"
	"fmt"
	"os"

	"pipegrade/core/model"
)

// WriteReport serializes v as indented JSON to path, creating or truncating
// the file.
func WriteReport(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("ingest: encoding report: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("ingest: writing report %s: %w", path, err)
	}
	return nil
}

// WriteNetwork serializes the mediums back to the network file layout so an
// adjusted network can feed downstream tooling.
func WriteNetwork(path string, mediums []*model.Medium) error {
	return WriteReport(path, map[string]any{"mediums": mediums})
}
