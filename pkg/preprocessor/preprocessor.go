// Package preprocessor runs the instrumentation over files on disk: one
// compilation unit per file, with the host picked by file suffix.
package preprocessor

import (
	"bytes"
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/smith-xyz/autologger/pkg/errors"
	"github.com/smith-xyz/autologger/pkg/instrument"
	"github.com/smith-xyz/autologger/pkg/settings"
)

// Result describes one processed file.
type Result struct {
	Path     string
	Host     string
	Content  []byte
	Inserted int
	Modified bool
	// Output is where Content was written; empty when nothing was written.
	Output string
	// Err is set for files that could not be parsed.
	Err error
}

// ProcessFile instruments filePath in memory. Settings are prepared fresh
// for the file from config.Options and the host's defaults.
func ProcessFile(filePath string, config Config) (Result, error) {
	res := Result{Path: filePath}

	host, ok := config.registry().HostFor(filePath)
	if !ok {
		return res, nil
	}
	res.Host = host.Name()

	src, err := os.ReadFile(filePath)
	if err != nil {
		return res, errors.Wrap(errors.ErrCodeInternal, "failed to read file", err)
	}

	s, err := settings.Prepare(config.Options, host.Defaults())
	if err != nil {
		return res, err
	}

	u := instrument.NewUnit(filePath, SourcePath(config.Root, filePath), s, nil)
	u.Logger = config.logger()

	content, err := host.Instrument(src, u)
	if err != nil {
		return res, fmt.Errorf("preprocessing failed for %s: %w", filePath, err)
	}

	res.Content = content
	res.Inserted = u.Inserted
	res.Modified = !bytes.Equal(content, src)
	return res, nil
}

// ProcessFileInPlace rewrites filePath when instrumentation changed it.
func ProcessFileInPlace(filePath string, config Config) (Result, error) {
	if !config.registry().ShouldInstrument(filePath) {
		return Result{Path: filePath}, nil
	}

	res, err := ProcessFile(filePath, config)
	if err != nil {
		return res, err
	}

	if res.Modified && config.ShouldWrite() {
		if err := writeFile(filePath, res.Content); err != nil {
			return res, errors.Wrap(errors.ErrCodeInternal, "failed to write "+filePath, err)
		}
		res.Output = filePath
	}

	return res, nil
}

// ProcessFileToOutput writes the processed file under config.OutDir, whether
// or not it changed, so the output tree is complete.
func ProcessFileToOutput(filePath string, config Config) (Result, error) {
	if !config.registry().ShouldInstrument(filePath) {
		return Result{Path: filePath}, nil
	}

	res, err := ProcessFile(filePath, config)
	if err != nil {
		return res, err
	}
	if !config.ShouldWrite() {
		return res, nil
	}

	target, err := OutputPath(config.Root, config.OutDir, filePath)
	if err != nil {
		return res, errors.Wrap(errors.ErrCodeConfiguration, "invalid output location", err)
	}
	if err := writeFile(target, res.Content); err != nil {
		return res, errors.Wrap(errors.ErrCodeInternal, "failed to write "+target, err)
	}
	res.Output = target

	return res, nil
}

// Summary aggregates the results of ProcessPaths.
type Summary struct {
	Files    int
	Modified int
	Inserted int
	Failed   []string
	Results  []Result
}

// ProcessPaths instruments every file under paths concurrently. Files that
// fail to parse are reported in the summary; any other failure stops the run.
func ProcessPaths(ctx context.Context, paths []string, config Config) (Summary, error) {
	log := config.logger()

	files, err := CollectFiles(paths, config.registry())
	if err != nil {
		return Summary{}, err
	}

	process := ProcessFileInPlace
	if config.OutDir != "" {
		process = ProcessFileToOutput
	}

	results := make([]Result, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(config.concurrency())

	for i, file := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			res, err := process(file, config)
			if err != nil {
				if errors.HasCode(err, errors.ErrCodeInvalidInput) {
					log.Warn("skipping unparsable file", slog.String("file", file), slog.String("error", err.Error()))
					res.Err = err
					results[i] = res
					return nil
				}
				return err
			}

			log.Debug("processed file",
				slog.String("file", file),
				slog.String("host", res.Host),
				slog.Int("inserted", res.Inserted),
				slog.Bool("modified", res.Modified))
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return Summary{}, err
	}

	sum := Summary{Results: results}
	for _, res := range results {
		sum.Files++
		sum.Inserted += res.Inserted
		if res.Modified {
			sum.Modified++
		}
		if res.Err != nil {
			sum.Failed = append(sum.Failed, res.Path)
		}
	}
	return sum, nil
}

// CollectFiles expands paths into the sorted list of files a host handles.
// Directories are walked, skipping dependency trees; files named explicitly
// are kept whenever a host handles them.
func CollectFiles(paths []string, registry *Registry) ([]string, error) {
	seen := make(map[string]bool)
	var files []string

	add := func(path string) {
		if !seen[path] {
			seen[path] = true
			files = append(files, path)
		}
	}

	for _, root := range paths {
		info, err := os.Stat(root)
		if err != nil {
			return nil, errors.WrapWithContext(errors.ErrCodeInvalidInput, "cannot access path", err,
				map[string]any{"path": root})
		}

		if !info.IsDir() {
			if _, ok := registry.HostFor(root); ok {
				add(root)
			}
			continue
		}

		err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				if path != root && registry.skipDir(path) {
					return filepath.SkipDir
				}
				return nil
			}
			if registry.ShouldInstrument(path) {
				add(path)
			}
			return nil
		})
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, "failed to walk "+root, err)
		}
	}

	sort.Strings(files)
	return files, nil
}
