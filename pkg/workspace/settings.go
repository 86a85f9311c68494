package workspace

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/grovetools/p4mux/errors"
	"github.com/mitchellh/mapstructure"
)

// Settings are the values read from a workspace config file. Only Client is
// needed to render the status line.
type Settings struct {
	Client  string `mapstructure:"P4CLIENT"`
	Port    string `mapstructure:"P4PORT"`
	User    string `mapstructure:"P4USER"`
	Charset string `mapstructure:"P4CHARSET"`

	// Other collects every remaining key.
	Other map[string]interface{} `mapstructure:",remain"`

	// Path is the file the settings were read from.
	Path string `mapstructure:"-"`
}

// ReadSettings parses a KEY=VALUE workspace config file. Blank lines, lines
// starting with '#' and lines without '=' are skipped. When a key repeats,
// the first occurrence wins.
func ReadSettings(path string) (*Settings, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read workspace config: %w", err)
	}
	defer f.Close()

	values := make(map[string]interface{})
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		if _, seen := values[key]; seen || key == "" {
			continue
		}
		values[key] = strings.TrimSpace(value)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read workspace config: %w", err)
	}

	return decodeSettings(path, values)
}

func decodeSettings(path string, values map[string]interface{}) (*Settings, error) {
	settings := &Settings{Path: path}
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:  settings,
		TagName: "mapstructure",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create mapstructure decoder: %w", err)
	}
	if err := decoder.Decode(values); err != nil {
		return nil, fmt.Errorf("failed to decode workspace config %s: %w", path, err)
	}

	if settings.Client == "" {
		return nil, errors.ClientNotSet(path)
	}
	return settings, nil
}

// Resolve finds the workspace config for dir and reads its settings.
func Resolve(dir, configuredName string) (*Settings, error) {
	path, err := FindConfigFile(dir, ConfigName(configuredName))
	if err != nil {
		return nil, err
	}
	return ReadSettings(path)
}
