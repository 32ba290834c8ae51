package cli

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/smith-xyz/autologger/pkg/preprocessor"
)

type instrumentOptions struct {
	configPath  string
	root        string
	out         string
	dryRun      bool
	concurrency int
	excludeDirs []string
}

func newInstrumentCommand(root *rootOptions) *cobra.Command {
	opts := &instrumentOptions{}

	cmd := &cobra.Command{
		Use:   "instrument [paths...]",
		Short: "Instrument the files under the given paths (default: current directory)",
		Example: `  autologger instrument .
  autologger instrument --config autologger.yaml --out build/instrumented .
  autologger instrument --dry-run web/ast
  autologger instrument --exclude-dir gen --exclude-dir mocks .`,
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := preprocessor.LoadConfig(opts.configPath)
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			rootDir, err := absRoot(opts.root)
			if err != nil {
				return err
			}
			paths, err := absPaths(args)
			if err != nil {
				return err
			}

			config.Root = rootDir
			config.OutDir = opts.out
			config.DryRun = opts.dryRun
			if opts.concurrency > 0 {
				config.Concurrency = opts.concurrency
			}
			if len(opts.excludeDirs) > 0 {
				config.Registry = preprocessor.DefaultRegistry.WithExcludedDirs(opts.excludeDirs...)
			}
			config.Logger = slog.Default()

			slog.Debug("instrumenting",
				slog.String("root", rootDir),
				slog.Any("paths", paths),
				slog.String("out", opts.out),
				slog.Bool("dryRun", opts.dryRun))

			sum, err := preprocessor.ProcessPaths(cmd.Context(), paths, config)
			if err != nil {
				return err
			}

			printSummary(cmd.OutOrStdout(), sum, rootDir, opts.dryRun, useColor(root.color, cmd.OutOrStdout()))

			if len(sum.Failed) > 0 {
				return fmt.Errorf("%d file(s) could not be parsed", len(sum.Failed))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.configPath, "config", "", "options file (yaml, yml, toml or json)")
	cmd.Flags().StringVar(&opts.root, "root", "", "project root stripped from logged file paths (default: current directory)")
	cmd.Flags().StringVar(&opts.out, "out", "", "write instrumented files under this directory instead of in place")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "report what would change without writing")
	cmd.Flags().StringSliceVar(&opts.excludeDirs, "exclude-dir", nil, "directory names to skip, in addition to vendor, node_modules and testdata (repeatable)")
	cmd.Flags().IntVar(&opts.concurrency, "concurrency", preprocessor.DefaultConcurrency, "files processed in parallel")

	return cmd
}

func absRoot(root string) (string, error) {
	if root == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("failed to get working directory: %w", err)
		}
		return wd, nil
	}
	return filepath.Abs(root)
}

func absPaths(args []string) ([]string, error) {
	if len(args) == 0 {
		args = []string{"."}
	}
	paths := make([]string, 0, len(args))
	for _, arg := range args {
		abs, err := filepath.Abs(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid path %s: %w", arg, err)
		}
		paths = append(paths, abs)
	}
	return paths, nil
}
