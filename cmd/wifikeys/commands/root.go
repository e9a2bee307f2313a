package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/systmms/wifikeys/internal/config"
	"github.com/systmms/wifikeys/internal/logging"
)

// BuildInfo is stamped into the binary by the release build.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand wires the global flags into cfg and registers every
// subcommand.
func NewRootCommand(cfg *config.Config, info BuildInfo) *cobra.Command {
	var (
		configFile string
		noColor    bool
		debug      bool
		metricsOut string
	)

	rootCmd := &cobra.Command{
		Use:   "wifikeys",
		Short: "Recover the keys of saved WiFi networks",
		Long: `wifikeys reads the WiFi profiles stored on this Windows host through
netsh and prints or exports each profile's key.

Exports hold cleartext keys. Store them carefully and delete them when done.`,
		Version:       fmt.Sprintf("%s (commit: %s, built: %s)", info.Version, info.Commit, info.Date),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cfg.Path = configFile
			cfg.Explicit = cmd.Flags().Changed("config")
			cfg.Logger = logging.NewWithWriter(cmd.ErrOrStderr(), debug, noColor)
			cfg.MetricsOut = metricsOut
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", config.DefaultPath, "Config file path")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&metricsOut, "metrics-out", "", "Write run metrics in Prometheus textfile format to this path")

	rootCmd.AddCommand(
		NewShowCommand(cfg),
		NewProfilesCommand(cfg),
		NewExportCommand(cfg),
		NewQRCommand(cfg),
		NewDoctorCommand(cfg),
		NewCompletionCommand(),
	)

	return rootCmd
}
