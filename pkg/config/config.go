// Package config assembles the launcher configuration from the environment
// and an optional TOML defaults file.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/kballard/go-shellquote"
)

// Environment variables consumed by the launcher.
const (
	EnvContentDir  = "CONTENT_DIR"
	EnvOperatorKey = "WARG_OPERATOR_KEY"
	EnvServerOpts  = "WARG_SERVER_OPTS"
)

// ErrContentDirUnset is returned when no content directory is configured.
var ErrContentDirUnset = errors.New("content directory not configured: set " + EnvContentDir)

// EnvGetter abstracts environment access for testing.
type EnvGetter interface {
	LookupEnv(key string) (string, bool)
}

// RealEnvGetter reads the actual process environment.
type RealEnvGetter struct{}

func (r *RealEnvGetter) LookupEnv(key string) (string, bool) {
	return os.LookupEnv(key)
}

// Config is the launcher configuration, assembled once at startup and
// immutable afterwards. ContentDir is required; the rest is optional.
type Config struct {
	ContentDir  string
	OperatorKey string
	ExtraArgs   []string
}

// Load builds the configuration: defaults from the TOML file at path (if
// non-empty) overlaid by environment variables, then validated. A variable
// that is set but empty counts as absent, so the environment only wins where
// it actually says something.
func Load(path string, getter EnvGetter) (Config, error) {
	cfg, err := loadFile(path)
	if err != nil {
		return Config{}, err
	}

	if v, ok := getter.LookupEnv(EnvContentDir); ok && v != "" {
		cfg.ContentDir = v
	}
	if v, ok := getter.LookupEnv(EnvOperatorKey); ok && v != "" {
		cfg.OperatorKey = v
	}
	if v, ok := getter.LookupEnv(EnvServerOpts); ok && v != "" {
		args, err := shellquote.Split(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s: %w", EnvServerOpts, err)
		}
		cfg.ExtraArgs = args
	}

	if cfg.ContentDir == "" {
		return Config{}, ErrContentDirUnset
	}
	return cfg, nil
}
