package render

import (
	"encoding/json"
	"fmt"

	"github.com/matzehuels/gamegrid/pkg/grid"
)

// MarshalLayout encodes a layout as indented JSON.
func MarshalLayout(l grid.Layout) ([]byte, error) {
	if l.Rows == nil {
		l.Rows = []grid.Row{}
	}
	data, err := json.MarshalIndent(l, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal layout: %w", err)
	}
	return append(data, '\n'), nil
}

// UnmarshalLayout decodes a layout written by MarshalLayout.
func UnmarshalLayout(data []byte) (grid.Layout, error) {
	var l grid.Layout
	if err := json.Unmarshal(data, &l); err != nil {
		return grid.Layout{}, fmt.Errorf("unmarshal layout: %w", err)
	}
	if l.Rows == nil {
		l.Rows = []grid.Row{}
	}
	return l, nil
}
