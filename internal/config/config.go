// Package config loads the optional gramdfa settings file.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	automaton "github.com/geange/grammar-automaton"
)

// DefaultFile is read from the working directory when no path is given.
const DefaultFile = ".gramdfa.yaml"

// Config holds the settings shared by every command. Command line flags override them.
type Config struct {
	Format     string `mapstructure:"format"`
	OutputDir  string `mapstructure:"output_dir"`
	FinalState string `mapstructure:"final_state"`
	LogLevel   string `mapstructure:"log_level"`
	Addr       string `mapstructure:"addr"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Format:     "csv",
		OutputDir:  ".",
		FinalState: automaton.DefaultFinalState,
		LogLevel:   "info",
		Addr:       ":8080",
	}
}

// Load reads path over the defaults. An empty path means DefaultFile, which may be absent; an explicit path
// must exist.
func Load(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML settings over the defaults. Unknown keys are rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if len(raw) == 0 {
		return cfg, nil
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &cfg,
		ErrorUnused:      true,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return Config{}, err
	}
	if err := dec.Decode(raw); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}
