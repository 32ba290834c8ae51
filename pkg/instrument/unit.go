package instrument

import (
	"fmt"
	"log/slog"

	"github.com/smith-xyz/autologger/pkg/settings"
)

const (
	// CatchClauseName names every exception-handler clause.
	CatchClauseName = "catchClause"
	// RejectionHandlerName names an anonymous callback passed to .catch().
	RejectionHandlerName = "memberExpressionCatch"

	arrayItemPrefix = "array-item-"
)

// Unit is the state of one compilation unit. It is created when the host
// starts a file and discarded when the file is done.
type Unit struct {
	// Filename is matched against the include and exclude patterns.
	Filename string
	// Source is the path reported in the location argument.
	Source   string
	Settings *settings.Settings
	Factory  Factory
	Logger   *slog.Logger

	// Inserted counts logger calls added to the unit.
	Inserted int
	// Imported is set once the logger import has been added.
	Imported bool
}

// NewUnit returns a Unit for filename. Source defaults to filename.
func NewUnit(filename, source string, s *settings.Settings, f Factory) *Unit {
	if source == "" {
		source = filename
	}
	return &Unit{
		Filename: filename,
		Source:   source,
		Settings: s,
		Factory:  f,
	}
}

func (u *Unit) logger() *slog.Logger {
	if u.Logger != nil {
		return u.Logger
	}
	return slog.Default()
}

// KnownData is what has been determined about a location before the
// logger method is chosen.
type KnownData struct {
	Name   string
	Source string
	Line   int
	Column int
}

// FormatLocation renders the "[source:line:column]" argument.
func FormatLocation(k KnownData) string {
	return fmt.Sprintf("[%s:%d:%d]", k.Source, k.Line, k.Column)
}
