// Package settings prepares the per-compilation-unit plugin settings from the
// user's options and a host's defaults.
package settings

import (
	"github.com/smith-xyz/autologger/pkg/levels"
	"github.com/smith-xyz/autologger/pkg/logging"
	"github.com/smith-xyz/autologger/pkg/matcher"
)

// Options is the user-facing configuration surface.
//
// SourceMatcher and SourceExcludeMatcher accept a string or a list of strings.
type Options struct {
	SourceMatcher        any           `json:"sourceMatcher,omitempty" yaml:"sourceMatcher,omitempty" toml:"sourceMatcher,omitempty"`
	SourceExcludeMatcher any           `json:"sourceExcludeMatcher,omitempty" yaml:"sourceExcludeMatcher,omitempty" toml:"sourceExcludeMatcher,omitempty"`
	LoggingData          *logging.Data `json:"loggingData,omitempty" yaml:"loggingData,omitempty" toml:"loggingData,omitempty"`
}

// Defaults are the values a host falls back to when Options leave them unset.
type Defaults struct {
	SourceInclude []string
	SourceExclude []string
	// Logging, when set, is merged under LoggingData if no logger name was configured.
	Logging *logging.Data
}

// JavaScript are the defaults for JavaScript sources.
var JavaScript = Defaults{
	SourceInclude: []string{
		`.*js(x)?$`,
	},
	SourceExclude: []string{
		"__fixtures__",
		"__mocks__",
		"__tests__",
		"__snapshots__",
		"node_modules",
	},
}

// Settings is built when a compilation unit starts and dropped when it ends.
// It is never mutated after Prepare returns.
type Settings struct {
	SourceInclude matcher.Pattern
	SourceExclude matcher.Pattern
	Logging       logging.Config
}

// Prepare validates opts and resolves them against defaults.
func Prepare(opts Options, defaults Defaults) (*Settings, error) {
	include, err := matcher.Build(opts.SourceMatcher, "sourceMatcher", defaults.SourceInclude)
	if err != nil {
		return nil, err
	}

	exclude, err := matcher.Build(opts.SourceExcludeMatcher, "sourceExcludeMatcher", defaults.SourceExclude)
	if err != nil {
		return nil, err
	}

	data := opts.LoggingData
	if defaults.Logging != nil && (data == nil || data.Name == "") {
		merged := logging.Merge(data, *defaults.Logging)
		data = &merged
	}

	cfg, err := logging.Resolve(data)
	if err != nil {
		return nil, err
	}

	return &Settings{
		SourceInclude: include,
		SourceExclude: exclude,
		Logging:       cfg,
	}, nil
}

// Allows reports whether filename is included and not excluded.
func (s *Settings) Allows(filename string) bool {
	if !s.SourceInclude.Test(filename) {
		return false
	}
	return !s.SourceExclude.Test(filename)
}

// Summary is a printable view of resolved Settings.
type Summary struct {
	SourceMatcher                 string                 `yaml:"sourceMatcher" json:"sourceMatcher"`
	SourceExcludeMatcher          string                 `yaml:"sourceExcludeMatcher" json:"sourceExcludeMatcher"`
	Name                          string                 `yaml:"name" json:"name"`
	Source                        string                 `yaml:"source" json:"source"`
	LevelForTryCatch              string                 `yaml:"levelForTryCatch" json:"levelForTryCatch"`
	LevelForMemberExpressionCatch string                 `yaml:"levelForMemberExpressionCatch" json:"levelForMemberExpressionCatch"`
	Levels                        map[string]levels.Data `yaml:"levels" json:"levels"`
}

// Summarize describes s.
func (s *Settings) Summarize() Summary {
	sum := Summary{
		SourceMatcher:                 s.SourceInclude.String(),
		SourceExcludeMatcher:          s.SourceExclude.String(),
		Name:                          s.Logging.LoggerName,
		Source:                        s.Logging.ImportSource,
		LevelForTryCatch:              string(s.Logging.SeverityForTryCatch),
		LevelForMemberExpressionCatch: string(s.Logging.SeverityForRejectHandler),
		Levels:                        make(map[string]levels.Data, len(s.Logging.Levels)),
	}
	for level, lc := range s.Logging.Levels {
		sum.Levels[string(level)] = levels.Data{
			MethodName:        lc.MethodName,
			MatchSource:       lc.SourceMatcher.String(),
			MatchFunctionName: lc.FunctionNameMatcher.String(),
		}
	}
	return sum
}
