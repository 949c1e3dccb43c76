package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// ErrInvalidYAML indicates YAML parsing failed.
var ErrInvalidYAML = errors.New("invalid YAML syntax")

// LoadError wraps configuration loading errors with file context.
type LoadError struct {
	File string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load %s: %v", e.File, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Initialize loads, merges, and validates configuration.
//
// A missing file is not an error: every setting has a built-in default and
// small deployments run on defaults plus environment variables. When the
// file exists, its values are expanded with ExpandEnv and merged over the
// defaults; unset fields keep their default.
func Initialize(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			slog.Info("No configuration file, using defaults", "path", path)
			if err := Validate(&cfg); err != nil {
				return nil, err
			}
			return &cfg, nil
		}
		return nil, &LoadError{File: path, Err: err}
	}

	data = ExpandEnv(data)

	var overlay Config
	if err := yaml.Unmarshal(data, &overlay); err != nil {
		return nil, &LoadError{File: path, Err: fmt.Errorf("%w: %v", ErrInvalidYAML, err)}
	}

	// Non-zero overlay values override defaults; everything else stays.
	if err := mergo.Merge(&cfg, overlay, mergo.WithOverride); err != nil {
		return nil, &LoadError{File: path, Err: err}
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	slog.Info("Configuration loaded", "path", path)
	return &cfg, nil
}
