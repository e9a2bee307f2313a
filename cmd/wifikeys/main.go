package main

import (
	"fmt"
	"os"

	"github.com/systmms/wifikeys/cmd/wifikeys/commands"
	"github.com/systmms/wifikeys/internal/config"
	dserrors "github.com/systmms/wifikeys/internal/errors"
	"github.com/systmms/wifikeys/internal/secure"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", dserrors.SimplifyError(err))
		os.Exit(1)
	}
}

func run() error {
	defer secure.Purge()

	cfg := &config.Config{}
	rootCmd := commands.NewRootCommand(cfg, commands.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	})

	return rootCmd.Execute()
}
