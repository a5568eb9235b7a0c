package config

import (
	"os"
	"path/filepath"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"

	"github.com/deckgen/deckgen/pkg/errors"
)

// Config is the resolved deckgen configuration.
type Config struct {
	Output OutputConfig `koanf:"output" toml:"output" yaml:"output"`
	Naming NamingConfig `koanf:"naming" toml:"naming" yaml:"naming"`
}

// OutputConfig controls where and how job files are written.
type OutputConfig struct {
	Dir       string `koanf:"dir" toml:"dir" yaml:"dir"`
	Extension string `koanf:"extension" toml:"extension" yaml:"extension"`
}

// NamingConfig controls how job names are derived from parameter rows.
type NamingConfig struct {
	// Columns are checked in order; the first one present with a non-empty
	// trimmed value provides the job name.
	Columns        []string `koanf:"columns" toml:"columns" yaml:"columns"`
	FallbackPrefix string   `koanf:"fallback_prefix" toml:"fallback_prefix" yaml:"fallback_prefix"`
	FallbackWidth  int      `koanf:"fallback_width" toml:"fallback_width" yaml:"fallback_width"`
	DefaultName    string   `koanf:"default_name" toml:"default_name" yaml:"default_name"`
}

// overrideFiles are probed in order inside the working directory; the first
// one found wins.
var overrideFiles = []struct {
	name   string
	parser koanf.Parser
}{
	{".deckgen.toml", toml.Parser()},
	{".deckgen.yaml", yaml.Parser()},
}

// Default returns the built-in configuration without any file overrides.
func Default() *Config {
	cfg, err := load("")
	if err != nil {
		// The embedded defaults are validated by tests; a parse failure
		// here is a build defect.
		panic(err)
	}
	return cfg
}

// Load returns the configuration for a run, applying the first override
// file found in dir on top of the embedded defaults.
func Load(dir string) (*Config, error) {
	return load(dir)
}

func load(dir string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(rawbytes.Provider(defaultConfig), toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load embedded defaults")
	}

	if dir != "" {
		for _, override := range overrideFiles {
			path := filepath.Join(dir, override.name)
			if _, err := os.Stat(path); err != nil {
				continue
			}
			if err := k.Load(file.Provider(path), override.parser); err != nil {
				return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to load config from %s", path)
			}
			break
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal config")
	}
	return &cfg, nil
}
