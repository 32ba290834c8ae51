package instrument

import (
	"github.com/smith-xyz/autologger/pkg/levels"
	"github.com/smith-xyz/autologger/pkg/logging"
)

// DecideMethod returns the logger method for loc, or "" when the location
// must not be logged.
//
// Catch clauses and rejection handlers start from their configured levels;
// anything else starts from log, unless log carries its own matchers, in
// which case it starts undecided. Every level below error is then tried in
// priority order and the first one whose source or function-name matcher
// fires wins. A default of error is never overridden.
func DecideMethod(loc Location, cfg *logging.Config, known KnownData) string {
	level := defaultLevel(loc, cfg, known)

	if level != levels.Highest() {
		if override, ok := overrideLevel(cfg, known); ok {
			level = override
		}
	}

	if level == "" {
		return ""
	}

	method, ok := cfg.MethodName(level)
	if !ok {
		return ""
	}
	return method
}

func defaultLevel(loc Location, cfg *logging.Config, known KnownData) levels.Level {
	if loc.IsCatchClause() {
		return cfg.SeverityForTryCatch
	}
	if known.Name == RejectionHandlerName {
		return cfg.SeverityForRejectHandler
	}

	if lc, ok := cfg.Levels[levels.Log]; ok && lc.HasMatchers() {
		return ""
	}
	return levels.Log
}

// overrideLevel checks the source matcher before the function-name matcher
// within a level, and levels strictly in priority order.
func overrideLevel(cfg *logging.Config, known KnownData) (levels.Level, bool) {
	for _, level := range levels.ByPriority()[1:] {
		lc, ok := cfg.Levels[level]
		if !ok {
			continue
		}
		if lc.SourceMatcher.Test(known.Source) {
			return level, true
		}
		if lc.FunctionNameMatcher.Test(known.Name) {
			return level, true
		}
	}
	return "", false
}
