// Package config carries the externally supplied settings of the crop
// variants builder, parsed from the environment.
package config

import (
	"context"

	"github.com/caarlos0/env/v11"
)

type contextKey string

func (c contextKey) String() string {
	return "cropvariantsbuilder/config/" + string(c)
}

const ctxKeySettings = contextKey("settingsKey")

// ToContext adds settings to the current supplied context.
func ToContext(ctx context.Context, settings any) context.Context {
	return context.WithValue(ctx, ctxKeySettings, settings)
}

// FromContext extracts settings from the supplied context if any exist.
func FromContext[T any](ctx context.Context) T {
	if settings, ok := ctx.Value(ctxKeySettings).(T); ok {
		return settings
	}
	var zero T
	return zero
}

// FromEnv convenience method to process settings.
func FromEnv[T any]() (T, error) {
	return env.ParseAs[T]()
}

// FillEnv convenience method to fill a settings object with environment data.
func FillEnv(v any) error {
	return env.Parse(v)
}

// Settings configures where default variant titles are looked up and how the
// library logs.
type Settings struct {
	// LabelExtension and LabelFileBasename name the override catalog
	// consulted after the primary one. Both are required for the override
	// lookup to be attempted at all.
	LabelExtension    string `env:"CROP_LABEL_EXTENSION" yaml:"label_extension"`
	LabelFileBasename string `env:"CROP_LABEL_FILE"      yaml:"label_file_basename"`

	// LabelCatalogRoot is the directory under which override catalogs live.
	LabelCatalogRoot string `env:"CROP_LABEL_CATALOG_ROOT" yaml:"label_catalog_root"`

	Languages []string `envDefault:"en"   env:"CROP_LABEL_LANGUAGES" yaml:"languages"`
	LogLevel  string   `envDefault:"info" env:"LOG_LEVEL"            yaml:"log_level"`
}

// OverrideConfigured reports whether both parts of the override catalog name
// are present.
func (s Settings) OverrideConfigured() bool {
	return s.LabelExtension != "" && s.LabelFileBasename != ""
}

// LoggingLevel returns the configured log level.
func (s Settings) LoggingLevel() string {
	return s.LogLevel
}
