// Package config loads rpmvars configuration with koanf: embedded TOML
// defaults, then an optional user file from the XDG config directory,
// then RPMVARS_* environment overrides, later sources winning.
package config

import (
	_ "embed"
	goerrors "errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/rpmvars/pkg/errors"
)

//go:embed embedded.toml
var defaultConfig []byte

// EnvPrefix is the prefix for environment overrides, e.g.
// RPMVARS_OUTPUT_TEMPLATE.
const EnvPrefix = "RPMVARS_"

// Config is the resolved runtime configuration.
type Config struct {
	Output struct {
		Template string `koanf:"template"`
	} `koanf:"output"`
	Query struct {
		Distro         string `koanf:"distro"`
		FallbackDistro string `koanf:"fallback_distro"`
	} `koanf:"query"`
	Emit struct {
		Encoder string `koanf:"encoder"`
	} `koanf:"emit"`
}

// Load resolves the configuration from all sources.
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load built-in defaults")
	}

	userPath := filepath.Join(xdg.ConfigHome, "rpmvars", "rpmvars.toml")
	if _, err := os.Stat(userPath); err == nil {
		if err := k.Load(file.Provider(userPath), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load %s", userPath)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment overrides")
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to decode configuration")
	}
	return &cfg, nil
}

// envKey maps RPMVARS_OUTPUT_TEMPLATE to output.template. Only the first
// underscore becomes a separator so keys like fallback_distro survive.
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.Replace(s, "_", ".", 1)
}

// rawBytesProvider implements a koanf provider over in-memory bytes.
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, goerrors.New("not implemented")
}
