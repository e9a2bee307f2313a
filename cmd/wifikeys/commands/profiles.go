package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/systmms/wifikeys/internal/config"
)

func NewProfilesCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profiles",
		Short: "List saved WiFi profile names without reading keys",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.Load(); err != nil {
				return err
			}

			p := newPipeline(cfg)
			names, err := p.aggregator.ListProfiles(cmd.Context())
			p.flushMetrics()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(names) == 0 {
				_, _ = fmt.Fprintln(out, NoProfilesMessage)
				return nil
			}
			for _, name := range names {
				_, _ = fmt.Fprintln(out, name)
			}
			return nil
		},
	}

	return cmd
}
