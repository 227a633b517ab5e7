package cmd

import (
	"os"

	"github.com/jrschumacher/gpc-ping/internal/config"
	"github.com/jrschumacher/gpc-ping/internal/logger"
	"github.com/spf13/cobra"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "gpc-ping",
	Short: "GP Connect JWT conformance checker",
	Long: `gpc-ping decodes unsigned GP Connect JWTs and checks their claims against
the rules of a chosen specification version (v0.7.4, v1.2.7, v1.5.0, v1.6.0).`,
	SilenceUsage: true,
}

func Execute(c *config.Config) {
	cfg = c
	logger.Debug("Starting CLI", "env", cfg.AppEnv)
	if err := rootCmd.Execute(); err != nil {
		logger.Error("CLI error", "error", err)
		os.Exit(1)
	}
}
