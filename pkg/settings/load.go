package settings

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/smith-xyz/autologger/pkg/errors"
	"github.com/smith-xyz/autologger/pkg/logging"
)

const (
	EnvSourceMatcher        = "AUTOLOGGER_SOURCE_MATCHER"
	EnvSourceExcludeMatcher = "AUTOLOGGER_SOURCE_EXCLUDE_MATCHER"
	EnvLoggerName           = "AUTOLOGGER_LOGGER_NAME"
	EnvLoggerSource         = "AUTOLOGGER_LOGGER_SOURCE"
)

// LoadFile decodes Options from a YAML, TOML or JSON file, chosen by extension.
// Files without a known extension are read as JSON.
func LoadFile(path string) (Options, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Options{}, errors.Wrap(errors.ErrCodeInternal, fmt.Sprintf("failed to read %s", path), err)
	}
	return Decode(content, formatOf(path))
}

// Decode decodes Options in the given format ("yaml", "toml" or "json").
func Decode(content []byte, format string) (Options, error) {
	var opts Options
	var err error

	switch format {
	case "yaml":
		err = yaml.Unmarshal(content, &opts)
	case "toml":
		err = toml.Unmarshal(content, &opts)
	case "json":
		dec := json.NewDecoder(bytes.NewReader(content))
		err = dec.Decode(&opts)
	default:
		return Options{}, errors.Configuration("format", "must be yaml, toml or json, got %q", format)
	}
	if err != nil {
		return Options{}, errors.WrapWithContext(errors.ErrCodeConfiguration,
			"[autologger] failed to decode options", err, map[string]any{"format": format})
	}

	return opts, nil
}

func formatOf(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return "yaml"
	case ".toml":
		return "toml"
	default:
		return "json"
	}
}

// ApplyEnv overlays environment variables on opts.
func ApplyEnv(opts Options, lookup func(string) (string, bool)) Options {
	if v, ok := lookup(EnvSourceMatcher); ok && v != "" {
		opts.SourceMatcher = v
	}
	if v, ok := lookup(EnvSourceExcludeMatcher); ok && v != "" {
		opts.SourceExcludeMatcher = v
	}

	name, hasName := lookup(EnvLoggerName)
	source, hasSource := lookup(EnvLoggerSource)
	if (hasName && name != "") || (hasSource && source != "") {
		data := logging.Data{}
		if opts.LoggingData != nil {
			data = *opts.LoggingData
		}
		if name != "" {
			data.Name = name
		}
		if source != "" {
			data.Source = source
		}
		opts.LoggingData = &data
	}

	return opts
}

// LoadOptions reads path (when non-empty) and applies the process environment.
func LoadOptions(path string) (Options, error) {
	var opts Options
	if path != "" {
		var err error
		opts, err = LoadFile(path)
		if err != nil {
			return Options{}, err
		}
	}
	return ApplyEnv(opts, os.LookupEnv), nil
}
