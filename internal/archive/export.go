// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package archive

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"
)

const exportLimit = 1000000

// ExportYAML writes the matching records to <dir>/export.yaml and returns
// the path. It supports the same filters as Retrieve.
func (s *Store) ExportYAML(ctx context.Context, opts QueryOptions) (string, error) {
	records, err := s.exportRecords(ctx, opts)
	if err != nil {
		return "", err
	}
	data, err := yaml.Marshal(records)
	if err != nil {
		return "", fmt.Errorf("marshaling YAML: %w", err)
	}
	return s.writeExport("export.yaml", data)
}

// ExportJSON writes the matching records to <dir>/export.json and returns
// the path. It supports the same filters as Retrieve.
func (s *Store) ExportJSON(ctx context.Context, opts QueryOptions) (string, error) {
	records, err := s.exportRecords(ctx, opts)
	if err != nil {
		return "", err
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshaling JSON: %w", err)
	}
	return s.writeExport("export.json", data)
}

func (s *Store) exportRecords(ctx context.Context, opts QueryOptions) ([]Record, error) {
	opts.MaxResults = exportLimit
	records, err := s.Retrieve(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("querying for export: %w", err)
	}
	if records == nil {
		records = []Record{}
	}
	return records, nil
}

func (s *Store) writeExport(name string, data []byte) (string, error) {
	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return path, nil
}
