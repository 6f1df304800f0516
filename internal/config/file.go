package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// fileConfig mirrors the optional chd.toml defaults file:
//
//	[dump]
//	count = 8
//	ignore = false
//	encoding = "UTF-8"
type fileConfig struct {
	Dump struct {
		Count    int    `toml:"count"`
		Ignore   bool   `toml:"ignore"`
		Encoding string `toml:"encoding"`
	} `toml:"dump"`
}

// DefaultFilePath returns the conventional defaults file location, or ""
// when the user config directory cannot be determined.
func DefaultFilePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "chd", "chd.toml")
}

// ApplyFile overlays values from a TOML defaults file onto o. Only keys
// actually present in the file are applied, so flag handling can still
// override them afterwards. A missing file is not an error unless the
// path was given explicitly.
func ApplyFile(o *Options, path string, explicit bool) error {
	if path == "" {
		return nil
	}
	var cfg fileConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if meta.IsDefined("dump", "count") {
		o.Count = cfg.Dump.Count
	}
	if meta.IsDefined("dump", "ignore") {
		o.Ignore = cfg.Dump.Ignore
	}
	if meta.IsDefined("dump", "encoding") {
		o.Encoding = cfg.Dump.Encoding
	}
	return nil
}
