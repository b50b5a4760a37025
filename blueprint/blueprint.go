// Package blueprint loads declarative crop variant definitions, the form a
// surrounding backend usually feeds them in, and materializes them through
// the builder into the merged configuration mapping.
package blueprint

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Definitions is the root of a crop variants definitions file.
type Definitions struct {
	Variants []Definition `json:"variants" yaml:"variants"`
}

// Definition describes one crop variant. Empty fields fall back to the
// builder defaults: resolved title, full-image crop area.
type Definition struct {
	Name                string           `json:"name"                  yaml:"name"`
	Title               string           `json:"title"                 yaml:"title"`
	CropArea            map[string]any   `json:"crop_area"             yaml:"crop_area"`
	FocusArea           map[string]any   `json:"focus_area"            yaml:"focus_area"`
	CoverAreas          []map[string]any `json:"cover_areas"           yaml:"cover_areas"`
	AllowedAspectRatios []RatioDef       `json:"allowed_aspect_ratios" yaml:"allowed_aspect_ratios"`
	SelectedRatio       string           `json:"selected_ratio"        yaml:"selected_ratio"`
}

// RatioDef is one allowed aspect ratio entry; order in the file is the order
// offered to editors.
type RatioDef struct {
	Key   string `json:"key"   yaml:"key"`
	Label string `json:"label" yaml:"label"`
}

// Parse decodes a definitions document.
func Parse(data []byte) (*Definitions, error) {
	var defs Definitions
	if err := yaml.Unmarshal(data, &defs); err != nil {
		return nil, err
	}
	return &defs, nil
}

// Load reads and decodes a definitions file.
func Load(path string) (*Definitions, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}
