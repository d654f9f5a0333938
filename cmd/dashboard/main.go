package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/spacesedan/sentiboard/config"
	"github.com/spacesedan/sentiboard/internal/logging"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "dashboard",
		Short:         "Sentiment analysis dashboard for app-store reviews",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.AddCommand(newServeCmd(), newInspectCmd())
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig reads the env file for APP_ENV and the process environment,
// then starts the logger at the configured level.
func loadConfig() (config.Config, error) {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	config.LoadEnv(env)

	cfg, err := config.Load()
	logging.InitLogger(cfg.LogLevel)
	return cfg, err
}
