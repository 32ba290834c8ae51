// Package logging resolves the user's logger settings into the immutable
// configuration shared by every insertion decision of a compilation unit.
package logging

import (
	"github.com/smith-xyz/autologger/pkg/levels"
)

// DefaultLoggerName is the host's built-in logger; it never needs an import.
const DefaultLoggerName = "console"

// Data is the user-supplied logger configuration.
type Data struct {
	Name                          string                 `json:"name,omitempty" yaml:"name,omitempty" toml:"name,omitempty"`
	Source                        string                 `json:"source,omitempty" yaml:"source,omitempty" toml:"source,omitempty"`
	LevelForTryCatch              string                 `json:"levelForTryCatch,omitempty" yaml:"levelForTryCatch,omitempty" toml:"levelForTryCatch,omitempty"`
	LevelForMemberExpressionCatch string                 `json:"levelForMemberExpressionCatch,omitempty" yaml:"levelForMemberExpressionCatch,omitempty" toml:"levelForMemberExpressionCatch,omitempty"`
	Levels                        map[string]levels.Data `json:"levels,omitempty" yaml:"levels,omitempty" toml:"levels,omitempty"`
}

// Config is the resolved logger configuration. Read-only once built.
type Config struct {
	LoggerName               string
	ImportSource             string
	SeverityForTryCatch      levels.Level
	SeverityForRejectHandler levels.Level
	Levels                   map[levels.Level]levels.Config
}

// Resolve merges data with the defaults. A nil data yields the defaults.
func Resolve(data *Data) (Config, error) {
	if data == nil {
		data = &Data{}
	}

	cfg := Config{LoggerName: data.Name}
	if cfg.LoggerName == "" {
		cfg.LoggerName = DefaultLoggerName
	}
	// the built-in logger is never imported, whatever source was configured
	if cfg.LoggerName != DefaultLoggerName {
		cfg.ImportSource = data.Source
	}

	cfg.SeverityForTryCatch = levels.NormalizeCatchSeverity(data.LevelForTryCatch)
	cfg.SeverityForRejectHandler = levels.NormalizeCatchSeverity(data.LevelForMemberExpressionCatch)

	resolved, err := levels.ResolveAll(data.Levels)
	if err != nil {
		return Config{}, err
	}
	cfg.Levels = resolved

	return cfg, nil
}

// MethodName returns the logger method configured for level.
func (c *Config) MethodName(level levels.Level) (string, bool) {
	lc, ok := c.Levels[level]
	if !ok {
		return "", false
	}
	return lc.MethodName, true
}

// UsesDefaultLogger reports whether the built-in logger is configured.
func (c *Config) UsesDefaultLogger() bool {
	return c.LoggerName == DefaultLoggerName
}

// Merge fills the empty fields of d from preset and returns the result.
// Level entries are merged field by field.
func Merge(d *Data, preset Data) Data {
	out := preset
	out.Levels = make(map[string]levels.Data, len(preset.Levels))
	for k, v := range preset.Levels {
		out.Levels[k] = v
	}
	if d == nil {
		return out
	}

	if d.Name != "" {
		out.Name = d.Name
		out.Source = d.Source
	} else if d.Source != "" {
		out.Source = d.Source
	}
	if d.LevelForTryCatch != "" {
		out.LevelForTryCatch = d.LevelForTryCatch
	}
	if d.LevelForMemberExpressionCatch != "" {
		out.LevelForMemberExpressionCatch = d.LevelForMemberExpressionCatch
	}
	for k, v := range d.Levels {
		base := out.Levels[k]
		if v.MethodName != "" {
			base.MethodName = v.MethodName
		}
		if v.MatchSource != "" {
			base.MatchSource = v.MatchSource
		}
		if v.MatchFunctionName != "" {
			base.MatchFunctionName = v.MatchFunctionName
		}
		out.Levels[k] = base
	}
	return out
}
