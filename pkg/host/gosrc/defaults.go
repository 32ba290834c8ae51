package gosrc

import (
	"github.com/smith-xyz/autologger/pkg/levels"
	"github.com/smith-xyz/autologger/pkg/logging"
	"github.com/smith-xyz/autologger/pkg/settings"
)

const (
	// LoggerName is the package name of the bundled runtime logger.
	LoggerName = "autolog"
	// LoggerImportPath is the import path of the bundled runtime logger.
	LoggerImportPath = "github.com/smith-xyz/autologger/pkg/autolog"
)

// Logger calls the bundled runtime logger. Go has no global console, so it
// stands in for one whenever no logger name is configured.
var Logger = logging.Data{
	Name:   LoggerName,
	Source: LoggerImportPath,
	Levels: map[string]levels.Data{
		string(levels.Debug): {MethodName: "Debug"},
		string(levels.Error): {MethodName: "Error"},
		string(levels.Info):  {MethodName: "Info"},
		string(levels.Log):   {MethodName: "Log"},
		string(levels.Warn):  {MethodName: "Warn"},
	},
}

// Defaults are the settings defaults for Go sources.
var Defaults = settings.Defaults{
	SourceInclude: []string{
		`\.go$`,
	},
	SourceExclude: []string{
		`_test\.go$`,
		`/vendor/`,
		`/pkg/mod/`,
		`/testdata/`,
	},
	Logging: &Logger,
}
