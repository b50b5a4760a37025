package config

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
)

type ConfigSuite struct {
	suite.Suite
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigSuite))
}

func (s *ConfigSuite) TestContextHelpersAndKeyString() {
	ctx := context.Background()
	settings := Settings{LabelExtension: "site_package"}

	s.Equal("cropvariantsbuilder/config/settingsKey", ctxKeySettings.String())

	ctx = ToContext(ctx, settings)
	fromCtx := FromContext[Settings](ctx)
	s.Equal("site_package", fromCtx.LabelExtension)

	missing := FromContext[*Settings](context.Background())
	s.Nil(missing)
}

func (s *ConfigSuite) TestFromEnvAndFillEnv() {
	s.T().Setenv("CROP_LABEL_EXTENSION", "site_package")
	s.T().Setenv("CROP_LABEL_FILE", "frontend")
	s.T().Setenv("CROP_LABEL_LANGUAGES", "de,en")

	fromEnv, err := FromEnv[Settings]()
	s.Require().NoError(err)
	s.Equal("site_package", fromEnv.LabelExtension)
	s.Equal("frontend", fromEnv.LabelFileBasename)
	s.Equal([]string{"de", "en"}, fromEnv.Languages)
	s.Equal("info", fromEnv.LogLevel)

	var target Settings
	s.Require().NoError(FillEnv(&target))
	s.Equal("site_package", target.LabelExtension)
}

func (s *ConfigSuite) TestDefaults() {
	settings, err := FromEnv[Settings]()
	s.Require().NoError(err)
	s.Equal([]string{"en"}, settings.Languages)
	s.Equal("info", settings.LoggingLevel())
}

func (s *ConfigSuite) TestOverrideConfigured() {
	testCases := []struct {
		name     string
		settings Settings
		expected bool
	}{
		{name: "both set", settings: Settings{LabelExtension: "ext", LabelFileBasename: "file"}, expected: true},
		{name: "extension only", settings: Settings{LabelExtension: "ext"}, expected: false},
		{name: "basename only", settings: Settings{LabelFileBasename: "file"}, expected: false},
		{name: "neither", settings: Settings{}, expected: false},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.expected, tc.settings.OverrideConfigured())
		})
	}
}
