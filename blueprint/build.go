package blueprint

import (
	"context"

	"github.com/pitabwire/util"

	cropvariants "github.com/helmutstrasser/cropvariantsbuilder"
)

// Build materializes every definition through the builder and merges the
// results into one mapping, one entry per variant. Options are handed to each
// builder unchanged, so all variants share the same localization wiring. The
// first failing definition aborts the build.
func (d *Definitions) Build(ctx context.Context, opts ...cropvariants.Option) (map[string]cropvariants.CropVariant, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	out := make(map[string]cropvariants.CropVariant, len(d.Variants))
	for _, def := range d.Variants {
		variant, err := def.build(ctx, opts...)
		if err != nil {
			return nil, err
		}
		for name, record := range variant {
			out[name] = record
		}

		util.Log(ctx).WithField("variant", def.Name).Debug("crop variant built")
	}

	return out, nil
}

func (def Definition) build(ctx context.Context, opts ...cropvariants.Option) (map[string]cropvariants.CropVariant, error) {
	b := cropvariants.New(ctx, def.Name, opts...)

	if def.Title != "" {
		b.SetTitle(def.Title)
	}
	if def.CropArea != nil {
		b.SetCropArea(cropvariants.Area(def.CropArea))
	}
	if def.FocusArea != nil {
		if err := b.SetFocusArea(cropvariants.Area(def.FocusArea)); err != nil {
			return nil, err
		}
	}
	for _, area := range def.CoverAreas {
		b.AddCoverAreas(cropvariants.Area(area))
	}

	if len(def.AllowedAspectRatios) > 0 {
		ratios := make([]cropvariants.Ratio, 0, len(def.AllowedAspectRatios))
		for _, ratio := range def.AllowedAspectRatios {
			label := any(ratio.Label)
			if ratio.Label == "" {
				label = ratio.Key
			}
			ratios = append(ratios, cropvariants.Ratio{Key: ratio.Key, Label: label})
		}
		if err := b.AddAllowedAspectRatios(ratios...); err != nil {
			return nil, err
		}
	}

	if def.SelectedRatio != "" {
		if err := b.SetSelectedRatio(def.SelectedRatio); err != nil {
			return nil, err
		}
	}

	return b.Build()
}
