package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

type fileConfig struct {
	ContentDir  string   `toml:"content_dir"`
	OperatorKey string   `toml:"operator_key"`
	ServerOpts  []string `toml:"server_opts"`
}

// loadFile decodes TOML defaults. An empty path yields a zero Config.
func loadFile(path string) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, nil
	}

	var fc fileConfig
	if _, err := toml.DecodeFile(path, &fc); err != nil {
		return Config{}, fmt.Errorf("reading config file %s: %w", path, err)
	}

	cfg.ContentDir = fc.ContentDir
	cfg.OperatorKey = fc.OperatorKey
	cfg.ExtraArgs = fc.ServerOpts
	return cfg, nil
}
