// Package matcher builds the regular expressions used to select source files,
// function names and log levels.
package matcher

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/smith-xyz/autologger/pkg/errors"
)

// Pattern is a compiled regular expression or the sentinel that never matches.
// The zero value is the sentinel.
type Pattern struct {
	re *regexp.Regexp
}

// Never is the sentinel Pattern; testing anything against it is false.
var Never = Pattern{}

// Test reports whether value matches p.
func (p Pattern) Test(value string) bool {
	if p.re == nil {
		return false
	}
	return p.re.MatchString(value)
}

// IsNever reports whether p is the sentinel.
func (p Pattern) IsNever() bool {
	return p.re == nil
}

// String returns the pattern source, or "" for the sentinel.
func (p Pattern) String() string {
	if p.re == nil {
		return ""
	}
	return p.re.String()
}

// Build compiles input into a Pattern.
//
// A slice is filtered for falsy entries and joined as (a)|(b); a non-empty
// string is used verbatim; a falsy input falls back to defaults. Any other
// type is a configuration error naming paramName.
func Build(input any, paramName string, defaults []string) (Pattern, error) {
	var expr string

	switch v := input.(type) {
	case []string:
		expr = join(v)
	case []any:
		fragments := make([]string, 0, len(v))
		for _, item := range v {
			if isFalsy(item) {
				continue
			}
			if s, ok := item.(string); ok {
				fragments = append(fragments, s)
			} else {
				fragments = append(fragments, fmt.Sprint(item))
			}
		}
		expr = join(fragments)
	default:
		if isFalsy(input) {
			expr = join(defaults)
			break
		}
		s, ok := input.(string)
		if !ok {
			return Never, errors.Configuration(paramName, "can be string or array with strings")
		}
		expr = s
	}

	re, err := regexp.Compile(expr)
	if err != nil {
		return Never, errors.WrapWithContext(errors.ErrCodeConfiguration,
			fmt.Sprintf("[autologger] '%s' is not a valid regular expression", paramName),
			err, map[string]any{"param": paramName, "expression": expr})
	}
	return Pattern{re: re}, nil
}

// CompileOrEmpty compiles expr verbatim, or returns Never when expr is empty.
func CompileOrEmpty(expr, paramName string) (Pattern, error) {
	if expr == "" {
		return Never, nil
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return Never, errors.WrapWithContext(errors.ErrCodeConfiguration,
			fmt.Sprintf("[autologger] '%s' is not a valid regular expression", paramName),
			err, map[string]any{"param": paramName, "expression": expr})
	}
	return Pattern{re: re}, nil
}

func join(fragments []string) string {
	var b strings.Builder
	first := true
	for _, f := range fragments {
		if f == "" {
			continue
		}
		if !first {
			b.WriteByte('|')
		}
		first = false
		b.WriteByte('(')
		b.WriteString(f)
		b.WriteByte(')')
	}
	return b.String()
}

// isFalsy mirrors the truthiness rules of the configuration formats we accept.
func isFalsy(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return t == ""
	case bool:
		return !t
	case int:
		return t == 0
	case int64:
		return t == 0
	case float64:
		return t == 0
	}
	return false
}
