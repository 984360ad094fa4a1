// Package config loads the optional hanjamo ini configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	ini "gopkg.in/ini.v1"
)

type Config struct {
	Mode   string
	Layout string
}

const (
	defaultMode   = "decompose"
	defaultLayout = "dubeolsik"
)

// Load reads path and fills in defaults for anything not set. A missing or
// empty path yields the default configuration.
func Load(path string) (Config, error) {
	cfg := Config{Mode: defaultMode, Layout: defaultLayout}

	if path == "" {
		return cfg, nil
	}

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: %w", err)
	}
	if info.IsDir() {
		return cfg, fmt.Errorf("config: %s is a directory", path)
	}

	file, err := ini.Load(filepath.Clean(path))
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}

	cfg.Mode = file.Section("convert").Key("mode").MustString(cfg.Mode)
	cfg.Layout = file.Section("interactive").Key("layout").MustString(cfg.Layout)
	return cfg, nil
}
