package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/smith-xyz/autologger/pkg/preprocessor"
	"github.com/smith-xyz/autologger/pkg/settings"
)

func newConfigCommand() *cobra.Command {
	var (
		configPath string
		host       string
	)

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the resolved configuration as YAML",
		RunE: func(cmd *cobra.Command, args []string) error {
			h, ok := preprocessor.DefaultRegistry.HostNamed(host)
			if !ok {
				return fmt.Errorf("unknown host %q (go, estree)", host)
			}

			opts, err := settings.LoadOptions(configPath)
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			s, err := settings.Prepare(opts, h.Defaults())
			if err != nil {
				return err
			}

			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(s.Summarize()); err != nil {
				return fmt.Errorf("failed to encode configuration: %w", err)
			}
			return enc.Close()
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "options file (yaml, yml, toml or json)")
	cmd.Flags().StringVar(&host, "host", "go", "host whose defaults apply (go, estree)")

	return cmd
}
