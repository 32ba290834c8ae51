package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

type versionPayload struct {
	Tool    string `json:"tool"`
	Version string `json:"version"`
	Commit  string `json:"commit,omitempty"`
	Date    string `json:"date,omitempty"`
}

func newVersionCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show build information",
		RunE: func(cmd *cobra.Command, args []string) error {
			payload := versionPayload{Tool: name, Version: version, Commit: commit, Date: date}

			switch strings.ToLower(format) {
			case "json":
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(payload)
			case "pretty", "":
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s (commit %s, built %s)\n", payload.Tool, payload.Version, payload.Commit, payload.Date)
				return nil
			default:
				return fmt.Errorf("unknown format %q (pretty, json)", format)
			}
		},
	}

	cmd.Flags().StringVar(&format, "format", "pretty", "output format (pretty, json)")

	return cmd
}
