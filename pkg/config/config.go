// Package config loads tool configuration by layering embedded
// defaults, an optional user config file, and YML2TEX_ environment
// variables, in that order of precedence. Document metadata from the
// input file itself is applied later, on top of everything here.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	_ "embed"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	y2terrors "github.com/arthurkoziel/yml2tex/pkg/errors"
	"github.com/arthurkoziel/yml2tex/pkg/metas"
)

//go:embed embedded/defaults.toml
var defaultConfig []byte

// Document holds defaults for the presentation metadata options.
type Document struct {
	Title       string `koanf:"title"`
	ShortTitle  string `koanf:"short_title"`
	Author      string `koanf:"author"`
	Institute   string `koanf:"institute"`
	Date        string `koanf:"date"`
	Outline     bool   `koanf:"outline"`
	OutlineName string `koanf:"outline_name"`
	Theme       string `koanf:"theme"`
}

// Highlight configures the syntax-highlighting capability.
type Highlight struct {
	Enabled bool   `koanf:"enabled"`
	Style   string `koanf:"style"`
}

// Config is the fully-layered tool configuration.
type Config struct {
	Document  Document  `koanf:"document"`
	Highlight Highlight `koanf:"highlight"`
}

type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New("not implemented")
}

// Load reads configuration using the standard user config location.
func Load() (*Config, error) {
	return LoadFrom(filepath.Join(xdg.ConfigHome, "yml2tex", "config.toml"))
}

// LoadFrom reads configuration with an explicit user config path. A
// missing file is not an error; a broken one is.
func LoadFrom(userConfigPath string) (*Config, error) {
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, y2terrors.Wrap(err, y2terrors.ErrConfigLoad, "failed to load built-in defaults")
	}

	// 2. User config file, if present
	if _, err := os.Stat(userConfigPath); err == nil {
		if err := k.Load(file.Provider(userConfigPath), toml.Parser()); err != nil {
			return nil, y2terrors.Wrapf(err, y2terrors.ErrConfigParse,
				"failed to load config from %s", userConfigPath)
		}
	}

	// 3. Environment variables: YML2TEX_DOCUMENT_THEME ->
	// document.theme. Only the first underscore separates the section
	// from the key, so keys like outline_name survive.
	err := k.Load(env.Provider("YML2TEX_", ".", func(s string) string {
		s = strings.ToLower(strings.TrimPrefix(s, "YML2TEX_"))
		return strings.Replace(s, "_", ".", 1)
	}), nil)
	if err != nil {
		return nil, y2terrors.Wrap(err, y2terrors.ErrConfigLoad, "failed to load environment variables")
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, y2terrors.Wrap(err, y2terrors.ErrConfigParse, "invalid configuration")
	}
	return &cfg, nil
}

// BaseMetadata converts the configured document defaults into the
// metadata value that seeds resolution of the document's own "metas".
func (c *Config) BaseMetadata() metas.Metadata {
	return metas.Metadata{
		Title:          c.Document.Title,
		ShortTitle:     c.Document.ShortTitle,
		Author:         c.Document.Author,
		Institute:      c.Document.Institute,
		Date:           c.Document.Date,
		Outline:        c.Document.Outline,
		OutlineName:    c.Document.OutlineName,
		Theme:          c.Document.Theme,
		HighlightStyle: c.Highlight.Style,
	}
}
