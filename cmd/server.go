package cmd

import (
	"github.com/jrschumacher/gpc-ping/internal/config"
	"github.com/jrschumacher/gpc-ping/server"
	"github.com/spf13/cobra"
)

var serverCmd = &cobra.Command{
	Use:     "server",
	Aliases: []string{"start"},
	Short:   "Start the gpc-ping HTTP server",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := config.Validate(cfg); err != nil {
			return err
		}
		return server.Start(cmd.Context(), cfg)
	},
}

func init() {
	rootCmd.AddCommand(serverCmd)
}
