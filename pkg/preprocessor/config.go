package preprocessor

import (
	"log/slog"

	"github.com/smith-xyz/autologger/pkg/settings"
)

type Config struct {
	Options settings.Options
	// Root is stripped from file paths to form the location shown in logs.
	Root string
	// OutDir mirrors instrumented files under a separate directory instead
	// of rewriting them in place.
	OutDir      string
	DryRun      bool
	Concurrency int
	Logger      *slog.Logger
	Registry    *Registry
}

// LoadConfig reads the options file at path, if any, and applies the
// AUTOLOGGER_* environment overrides.
func LoadConfig(path string) (Config, error) {
	opts, err := settings.LoadOptions(path)
	if err != nil {
		return Config{}, err
	}
	return Config{
		Options:     opts,
		Concurrency: DefaultConcurrency,
		Registry:    &DefaultRegistry,
	}, nil
}

func (c Config) ShouldWrite() bool {
	return !c.DryRun
}

func (c Config) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.Default()
}

func (c Config) registry() *Registry {
	if c.Registry != nil {
		return c.Registry
	}
	return &DefaultRegistry
}

func (c Config) concurrency() int {
	if c.Concurrency > 0 {
		return c.Concurrency
	}
	return DefaultConcurrency
}
