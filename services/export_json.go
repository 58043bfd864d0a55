package services

import (
	"encoding/json"
	"fmt"
)

// GenerateJSON serializes the quote snapshot as indented JSON, the
// machine-readable counterpart of the PDF export.
func GenerateJSON(data Snapshot) ([]byte, error) {
	out, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal snapshot: %w", err)
	}
	return out, nil
}
