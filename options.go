package cropvariantsbuilder

import (
	"github.com/helmutstrasser/cropvariantsbuilder/config"
	"github.com/helmutstrasser/cropvariantsbuilder/localization"
)

// Option configures a new builder.
type Option func(*CropVariantBuilder)

// WithLocalizer wires the primary label catalog consulted when resolving the
// default title of a variant.
func WithLocalizer(l localization.Localizer) Option {
	return func(b *CropVariantBuilder) {
		b.localizer = l
	}
}

// WithSettings supplies the label override settings, usually parsed from the
// environment via config.FromEnv.
func WithSettings(settings config.Settings) Option {
	return func(b *CropVariantBuilder) {
		b.settings = settings
	}
}

// WithCatalogProvider wires the provider used to open the override catalog
// named by the settings. The override is only consulted when both the
// extension namespace and the file basename are configured.
func WithCatalogProvider(p localization.Provider) Option {
	return func(b *CropVariantBuilder) {
		b.provider = p
	}
}

// WithDefaultCropArea replaces the provider of the initial crop area. The
// builder defaults to FullArea.
func WithDefaultCropArea(provide func() Area) Option {
	return func(b *CropVariantBuilder) {
		if provide != nil {
			b.defaultArea = provide
		}
	}
}
