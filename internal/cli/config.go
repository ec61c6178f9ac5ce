package cli

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/danielgraf/graphport/pkg/errors"
)

// Config holds the CLI defaults loaded from a TOML file. Flags given on the
// command line always win over file values.
type Config struct {
	Export ExportConfig `toml:"export"`
}

// ExportConfig mirrors the exporter parameters plus the default format list.
type ExportConfig struct {
	Formats       []string `toml:"formats"`
	VertexLabels  bool     `toml:"vertex_labels"`
	EdgeLabels    bool     `toml:"edge_labels"`
	EdgeWeights   bool     `toml:"edge_weights"`
	EscapeStrings bool     `toml:"escape_strings"`
}

// defaultConfigPath returns the conventional config location,
// $XDG_CONFIG_HOME/graphport/config.toml (or ~/.config on most systems).
// Returns an empty string when no home directory can be determined.
func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "graphport", "config.toml")
}

// loadConfig reads a TOML config file. A missing file at the default
// location is fine and yields the zero config; a missing file passed
// explicitly, or a file that fails to parse, is an error.
func loadConfig(path string, explicit bool) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		if explicit {
			return cfg, errors.New(errors.ErrCodeFileNotFound, "config file not found: %s", path)
		}
		return cfg, nil
	}
	if err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidPath, err, "read config %s", path)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config %s", path)
	}
	return cfg, nil
}
