// Package cropvariantsbuilder assembles crop variant records: named crop
// rectangles with an optional focus area, cover areas and a set of allowed
// aspect ratios, as consumed by image cropping backends. A builder is created
// per variant, mutated through chained setters and finalized with Build,
// which validates the accumulated state and emits a single-entry mapping
// keyed by the variant name, ready to be merged with sibling variants.
package cropvariantsbuilder

import (
	"context"
	"fmt"
	"strings"

	"github.com/pitabwire/util"

	"github.com/helmutstrasser/cropvariantsbuilder/config"
	"github.com/helmutstrasser/cropvariantsbuilder/localization"
)

// labelKeyPattern is the catalog key consulted for the default title of a
// variant, in both the primary and the override catalog.
const labelKeyPattern = "crop_variants.%s.label"

// LabelKey returns the catalog key under which the default title of the named
// variant is looked up.
func LabelKey(name string) string {
	return fmt.Sprintf(labelKeyPattern, strings.TrimSpace(name))
}

// CropVariantBuilder accumulates the fields of one crop variant. Instances
// are not safe for concurrent use; one builder belongs to one caller.
type CropVariantBuilder struct {
	name          string
	title         string
	cropArea      Area
	focusArea     Area
	coverAreas    []Area
	allowedRatios *ratioSet
	selectedRatio string

	localizer   localization.Localizer
	provider    localization.Provider
	settings    config.Settings
	defaultArea func() Area
}

// New creates a builder for the named variant. The default title is resolved
// immediately through the localization fallback chain and the crop area is
// seeded from the default-area provider; both can be overwritten afterwards.
func New(ctx context.Context, name string, opts ...Option) *CropVariantBuilder {
	b := &CropVariantBuilder{
		name:          name,
		allowedRatios: newRatioSet(),
		defaultArea:   FullArea,
	}

	for _, opt := range opts {
		opt(b)
	}

	b.cropArea = b.defaultArea()
	b.title = b.resolveDefaultTitle(ctx)

	return b
}

// Name returns the variant name supplied at construction.
func (b *CropVariantBuilder) Name() string {
	return b.name
}

// SetTitle overwrites the resolved default title. Surrounding whitespace is
// trimmed; emptiness is only rejected at Build time.
func (b *CropVariantBuilder) SetTitle(title string) *CropVariantBuilder {
	b.title = strings.TrimSpace(title)
	return b
}

// SetCropArea replaces the crop area wholesale. Completeness is checked at
// Build time.
func (b *CropVariantBuilder) SetCropArea(area Area) *CropVariantBuilder {
	b.cropArea = area.clone()
	return b
}

// SetFocusArea sets the focus area. A non-empty rectangle must carry all four
// keys; an empty one clears the focus area.
func (b *CropVariantBuilder) SetFocusArea(area Area) error {
	if area.IsEmpty() {
		b.focusArea = nil
		return nil
	}

	if missing := area.MissingKeys(); len(missing) > 0 {
		return fmt.Errorf("crop variant %q: focus area: %w: missing %s",
			b.name, ErrInvalidArea, strings.Join(missing, ", "))
	}

	b.focusArea = area.clone()
	return nil
}

// AddCoverAreas appends the given rectangles to the cover areas. Repeated
// calls accumulate. Completeness is checked at Build time.
func (b *CropVariantBuilder) AddCoverAreas(areas ...Area) *CropVariantBuilder {
	for _, area := range areas {
		b.coverAreas = append(b.coverAreas, area.clone())
	}
	return b
}

// AddAllowedAspectRatios merges the given ratios into the allowed set,
// keeping input order. A key that is already allowed fails the whole call and
// leaves the set untouched.
func (b *CropVariantBuilder) AddAllowedAspectRatios(ratios ...Ratio) error {
	for _, ratio := range ratios {
		if b.allowedRatios.Has(ratio.Key) {
			return fmt.Errorf("crop variant %q: ratio %q: %w",
				b.name, ratio.Key, ErrDuplicateRatio)
		}
	}

	for _, ratio := range ratios {
		b.allowedRatios.Add(ratio.Key, ratio.Label)
	}
	return nil
}

// RemoveAllowedAspectRatio removes one allowed ratio by its trimmed key.
func (b *CropVariantBuilder) RemoveAllowedAspectRatio(ratioKey string) error {
	key := strings.TrimSpace(ratioKey)
	if !b.allowedRatios.Has(key) {
		return fmt.Errorf("crop variant %q: ratio %q: %w",
			b.name, key, ErrUnknownRatio)
	}

	b.allowedRatios.Remove(key)
	if b.selectedRatio == key {
		b.selectedRatio = ""
	}
	return nil
}

// SetSelectedRatio pre-selects one of the allowed ratios. The key is trimmed
// before both validation and storage.
func (b *CropVariantBuilder) SetSelectedRatio(ratioKey string) error {
	key := strings.TrimSpace(ratioKey)
	if !b.allowedRatios.Has(key) {
		return fmt.Errorf("crop variant %q: ratio %q: %w",
			b.name, key, ErrUnknownRatio)
	}

	b.selectedRatio = key
	return nil
}

// Build validates the accumulated state and returns the finalized record as
// a single-entry mapping keyed by the variant name. The first violated check
// decides the error: empty title, empty crop area, incomplete crop area,
// incomplete focus area, incomplete cover area, empty ratio set. The result
// is a value copy; mutating the builder afterwards does not touch it.
func (b *CropVariantBuilder) Build() (map[string]CropVariant, error) {
	if b.title == "" {
		return nil, fmt.Errorf("crop variant %q: title: %w", b.name, ErrMissingField)
	}
	if b.cropArea.IsEmpty() {
		return nil, fmt.Errorf("crop variant %q: crop area: %w", b.name, ErrMissingField)
	}
	if missing := b.cropArea.MissingKeys(); len(missing) > 0 {
		return nil, fmt.Errorf("crop variant %q: crop area: %w: missing %s",
			b.name, ErrInvalidArea, strings.Join(missing, ", "))
	}
	if !b.focusArea.IsEmpty() {
		if missing := b.focusArea.MissingKeys(); len(missing) > 0 {
			return nil, fmt.Errorf("crop variant %q: focus area: %w: missing %s",
				b.name, ErrInvalidArea, strings.Join(missing, ", "))
		}
	}
	for i, area := range b.coverAreas {
		if missing := area.MissingKeys(); len(missing) > 0 {
			return nil, fmt.Errorf("crop variant %q: cover area %d: %w: missing %s",
				b.name, i, ErrInvalidArea, strings.Join(missing, ", "))
		}
	}
	if b.allowedRatios.Len() == 0 {
		return nil, fmt.Errorf("crop variant %q: allowed aspect ratios: %w", b.name, ErrMissingField)
	}

	variant := CropVariant{
		Title:               b.title,
		CropArea:            b.cropArea.clone(),
		AllowedAspectRatios: b.allowedRatios.ToMap(),
		SelectedRatio:       b.selectedRatio,
	}
	if !b.focusArea.IsEmpty() {
		variant.FocusArea = b.focusArea.clone()
	}
	if len(b.coverAreas) > 0 {
		variant.CoverAreas = make([]Area, 0, len(b.coverAreas))
		for _, area := range b.coverAreas {
			variant.CoverAreas = append(variant.CoverAreas, area.clone())
		}
	}

	return map[string]CropVariant{b.name: variant}, nil
}

// AllowedRatioKeys returns the allowed ratio keys in insertion order.
func (b *CropVariantBuilder) AllowedRatioKeys() []string {
	return b.allowedRatios.Keys()
}

// resolveDefaultTitle runs the fallback chain once, at construction. Names
// containing a space skip the catalogs entirely. A hit in the override
// catalog replaces a hit in the primary one. When neither catalog answers,
// underscores in the name turn into spaces.
func (b *CropVariantBuilder) resolveDefaultTitle(ctx context.Context) string {
	var title string

	if b.name != "" && !strings.Contains(b.name, " ") {
		key := LabelKey(b.name)

		if b.localizer != nil {
			title = b.localizer.Lookup(key)
		}

		if b.provider != nil && b.settings.OverrideConfigured() {
			catalog, err := b.provider.Open(b.settings.LabelExtension, b.settings.LabelFileBasename)
			if err != nil {
				util.Log(ctx).
					WithError(err).
					WithField("extension", b.settings.LabelExtension).
					WithField("basename", b.settings.LabelFileBasename).
					Warn("label override catalog unavailable")
			} else if translated := catalog.Lookup(key); translated != "" {
				title = translated
			}
		}
	}

	if title == "" {
		title = strings.ReplaceAll(b.name, "_", " ")
	}
	return title
}
