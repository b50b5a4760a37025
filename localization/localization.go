// Package localization provides the label catalogs consulted when resolving
// default crop variant titles. Catalogs are go-i18n bundles fed from TOML
// message files; a missing key answers with an empty string rather than an
// error.
package localization

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

// DefaultFileBasename names the message files of a catalog when the caller
// does not configure one.
const DefaultFileBasename = "messages"

// Localizer answers label lookups. An empty return is the not-found signal;
// implementations never fail on unknown keys.
type Localizer interface {
	Lookup(key string) string
}

// Provider opens the override catalog configured through an extension
// namespace and a message file basename.
type Provider interface {
	Open(extension, basename string) (Localizer, error)
}

// Nop is a Localizer without any translations.
type Nop struct{}

func (Nop) Lookup(string) string { return "" }

// Catalog is a Localizer backed by a go-i18n bundle. The language preference
// order is fixed at construction.
type Catalog struct {
	bundle    *i18n.Bundle
	languages []string
}

// NewCatalog loads <dir>/<basename>.<lang>.toml for every given language.
// The basename defaults to "messages", matching the usual catalog layout.
func NewCatalog(dir, basename string, languages ...string) (*Catalog, error) {
	if dir == "" {
		dir = "localization"
	}
	if basename == "" {
		basename = DefaultFileBasename
	}
	if len(languages) == 0 {
		return nil, errors.New("localization: at least one language is required")
	}

	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	for _, lang := range languages {
		path := filepath.Join(dir, fmt.Sprintf("%s.%s.toml", basename, lang))
		if _, err := bundle.LoadMessageFile(path); err != nil {
			return nil, fmt.Errorf("localization: loading %s: %w", path, err)
		}
	}

	return &Catalog{bundle: bundle, languages: languages}, nil
}

// Bundle exposes the underlying translation bundle.
func (c *Catalog) Bundle() *i18n.Bundle {
	return c.bundle
}

// Lookup translates the key using the catalog's language preference order.
func (c *Catalog) Lookup(key string) string {
	localizer := i18n.NewLocalizer(c.bundle, c.languages...)

	translated, err := localizer.Localize(&i18n.LocalizeConfig{MessageID: key})
	if err != nil {
		return ""
	}
	return translated
}

// DirProvider opens catalogs laid out as <Root>/<extension>/<basename>.<lang>.toml.
type DirProvider struct {
	Root      string
	Languages []string
}

// Open loads the catalog of the given extension namespace. Both the
// extension and the basename have to be non-empty; the secondary lookup is
// not attempted otherwise.
func (p DirProvider) Open(extension, basename string) (Localizer, error) {
	if extension == "" || basename == "" {
		return nil, errors.New("localization: extension and basename are both required")
	}

	return NewCatalog(filepath.Join(p.Root, extension), basename, p.Languages...)
}
