package cropvariantsbuilder

// CropVariant is the finalized configuration record emitted by Build. It is a
// value copy, detached from the builder that produced it.
type CropVariant struct {
	Title               string         `json:"title"               yaml:"title"`
	CropArea            Area           `json:"cropArea"            yaml:"crop_area"`
	FocusArea           Area           `json:"focusArea"           yaml:"focus_area"`
	CoverAreas          []Area         `json:"coverAreas"          yaml:"cover_areas"`
	AllowedAspectRatios map[string]any `json:"allowedAspectRatios" yaml:"allowed_aspect_ratios"`
	SelectedRatio       string         `json:"selectedRatio"       yaml:"selected_ratio"`
}
