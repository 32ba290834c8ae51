// Package levels defines the supported log severities, their priority
// ordering and per-level configuration.
package levels

import (
	"fmt"
	"slices"

	"github.com/smith-xyz/autologger/pkg/matcher"
)

// Level is a log severity and, by default, the logger method called for it.
type Level string

const (
	Debug Level = "debug"
	Error Level = "error"
	Info  Level = "info"
	Log   Level = "log"
	Warn  Level = "warn"
)

var (
	// registry order, used to materialize every level's config
	supported = []Level{Debug, Error, Info, Log, Warn}
	// evaluation order; index 0 can never be overridden
	byPriority = []Level{Error, Warn, Info, Debug, Log}
)

// Supported returns the levels in registry order.
func Supported() []Level {
	return slices.Clone(supported)
}

// ByPriority returns the levels from highest to lowest priority.
func ByPriority() []Level {
	return slices.Clone(byPriority)
}

// Highest is the level no override may replace.
func Highest() Level {
	return byPriority[0]
}

// IsSupported reports whether name is one of the supported levels.
func IsSupported(name string) bool {
	return slices.Contains(supported, Level(name))
}

// Data is the user-supplied configuration for a single level.
type Data struct {
	MethodName        string `json:"methodName,omitempty" yaml:"methodName,omitempty" toml:"methodName,omitempty"`
	MatchSource       string `json:"matchSource,omitempty" yaml:"matchSource,omitempty" toml:"matchSource,omitempty"`
	MatchFunctionName string `json:"matchFunctionName,omitempty" yaml:"matchFunctionName,omitempty" toml:"matchFunctionName,omitempty"`
}

// Config is the resolved configuration for a single level.
type Config struct {
	MethodName          string
	SourceMatcher       matcher.Pattern
	FunctionNameMatcher matcher.Pattern
}

// HasMatchers reports whether either matcher is configured.
func (c Config) HasMatchers() bool {
	return !c.SourceMatcher.IsNever() || !c.FunctionNameMatcher.IsNever()
}

// ResolveLevelConfig applies defaults to the user data for level.
func ResolveLevelConfig(level Level, data Data) (Config, error) {
	cfg := Config{MethodName: data.MethodName}
	if cfg.MethodName == "" {
		cfg.MethodName = string(level)
	}

	var err error
	cfg.SourceMatcher, err = matcher.CompileOrEmpty(data.MatchSource, fmt.Sprintf("levels.%s.matchSource", level))
	if err != nil {
		return Config{}, err
	}
	cfg.FunctionNameMatcher, err = matcher.CompileOrEmpty(data.MatchFunctionName, fmt.Sprintf("levels.%s.matchFunctionName", level))
	if err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ResolveAll resolves the config of every supported level. Unknown keys in
// userLevels are ignored.
func ResolveAll(userLevels map[string]Data) (map[Level]Config, error) {
	resolved := make(map[Level]Config, len(supported))
	for _, level := range supported {
		cfg, err := ResolveLevelConfig(level, userLevels[string(level)])
		if err != nil {
			return nil, err
		}
		resolved[level] = cfg
	}
	return resolved, nil
}

// NormalizeCatchSeverity returns requested when it is a supported level and
// Error otherwise.
func NormalizeCatchSeverity(requested string) Level {
	if IsSupported(requested) {
		return Level(requested)
	}
	return Error
}
