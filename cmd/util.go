package cmd

import (
	"fmt"

	"github.com/goccy/go-json"
	"github.com/jrschumacher/gpc-ping/internal/jwtutil"
	"github.com/jrschumacher/gpc-ping/internal/validation"
	"github.com/spf13/cobra"
)

var utilCmd = &cobra.Command{
	Use:     "util",
	Aliases: []string{"utils"},
	Short:   "Utility commands for gpc-ping",
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

var utilDecodeCmd = &cobra.Command{
	Use:   "decode [token|-]",
	Short: "Decode an unsigned JWT and print its header and claims",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := readToken(cmd.InOrStdin(), args)
		if err != nil {
			return err
		}

		tok, err := jwtutil.Decode(raw)
		if err != nil {
			return err
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(struct {
			Header        jwtutil.Header  `json:"header"`
			Claims        []jwtutil.Claim `json:"claims"`
			MissingClaims []string        `json:"missingClaims"`
		}{tok.Header(), tok.Claims(), validation.MissingClaims(tok)})
	},
}

var utilVersionsCmd = &cobra.Command{
	Use:   "versions",
	Short: "List the supported GP Connect specification versions",
	Run: func(cmd *cobra.Command, _ []string) {
		for _, v := range validation.Versions() {
			marker := ""
			if v.String() == cfg.DefaultSpecVersion {
				marker = " (default)"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s%s\n", v, marker)
		}
	},
}

func init() {
	rootCmd.AddCommand(utilCmd)
	utilCmd.AddCommand(utilDecodeCmd)
	utilCmd.AddCommand(utilVersionsCmd)
}
