package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/grovetools/p4mux/errors"
	"github.com/grovetools/p4mux/pkg/paths"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Load reads a config file. A missing file is not an error and yields the
// defaults; a file that exists but does not parse is.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to read config file").
			WithDetail("path", path)
	}

	cfg, err := LoadFromBytes(data)
	if err != nil {
		return nil, errors.ConfigInvalid(path, err)
	}
	return cfg, nil
}

// LoadDefault loads the config file from its per-user location.
func LoadDefault() (*Config, error) {
	return Load(paths.ConfigFile())
}

// LoadFromBytes decodes TOML over the defaults, so keys absent from data keep
// their default values.
func LoadFromBytes(data []byte) (*Config, error) {
	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse toml: %w", err)
	}
	if _, err := cfg.Perforce.TimeoutDuration(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Format names an output encoding for Marshal.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// Marshal encodes cfg in the given format. TOML output can be saved as a
// config file and loaded back unchanged.
func Marshal(cfg *Config, format Format) ([]byte, error) {
	switch format {
	case FormatTOML, "":
		var buf bytes.Buffer
		enc := toml.NewEncoder(&buf)
		enc.SetIndentTables(true)
		if err := enc.Encode(cfg); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case FormatYAML:
		return yaml.Marshal(cfg)
	case FormatJSON:
		data, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	default:
		return nil, errors.InvalidInput(fmt.Sprintf("unknown format %q (want toml, yaml or json)", format))
	}
}
