package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/smith-xyz/autologger/pkg/preprocessor"
)

// useColor resolves the --color flag; auto colours terminals only.
func useColor(mode string, w io.Writer) bool {
	switch strings.ToLower(mode) {
	case "on", "always":
		return true
	case "off", "never":
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func printSummary(w io.Writer, sum preprocessor.Summary, root string, dryRun, colored bool) {
	updated := color.New(color.FgGreen, color.Bold)
	failed := color.New(color.FgRed, color.Bold)
	unchanged := color.New(color.Faint)
	for _, c := range []*color.Color{updated, failed, unchanged} {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	for _, res := range sum.Results {
		path := preprocessor.SourcePath(root, res.Path)
		switch {
		case res.Err != nil:
			failed.Fprint(w, "  failed    ")
			fmt.Fprintf(w, "%s: %v\n", path, res.Err)
		case res.Modified:
			updated.Fprint(w, "  updated   ")
			fmt.Fprintf(w, "%s (%d calls)\n", path, res.Inserted)
		default:
			unchanged.Fprint(w, "  unchanged ")
			fmt.Fprintln(w, path)
		}
	}

	verb := "Instrumented"
	if dryRun {
		verb = "Would instrument"
	}
	fmt.Fprintf(w, "\n%s %d of %d files, %d logger calls added\n", verb, sum.Modified, sum.Files, sum.Inserted)
}
