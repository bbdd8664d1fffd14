package cli

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/hweber/dotscreen"
)

// config holds the user-adjustable defaults for the CLI. Every field
// maps to a flag default; flags always win over the file.
type config struct {
	DotSize int    `toml:"dot_size"`
	Charset string `toml:"charset"`
	Method  string `toml:"method"`
}

// defaultConfig returns the built-in defaults used when no config file
// exists.
func defaultConfig() config {
	return config{
		DotSize: 8,
		Charset: dotscreen.DefaultCharset,
		Method:  "Circular Halftone",
	}
}

// configPath returns the config file location. DOTSCREEN_CONFIG
// overrides the per-user default.
func configPath() (string, error) {
	if p := os.Getenv("DOTSCREEN_CONFIG"); p != "" {
		return p, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "dotscreen", "config.toml"), nil
}

// loadConfig reads the config file, layering it over the built-in
// defaults. A missing file is not an error; a malformed one is.
func loadConfig() (config, error) {
	cfg := defaultConfig()

	path, err := configPath()
	if err != nil {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if cfg.DotSize < 2 {
		cfg.DotSize = defaultConfig().DotSize
	}
	if cfg.Charset == "" {
		cfg.Charset = dotscreen.DefaultCharset
	}
	return cfg, nil
}
