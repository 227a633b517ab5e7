package cmd

import (
	"errors"
	"fmt"

	"github.com/goccy/go-json"
	"github.com/jrschumacher/gpc-ping/internal/logger"
	"github.com/jrschumacher/gpc-ping/internal/validation"
	"github.com/spf13/cobra"
)

var errNotConformant = errors.New("token does not conform to the specification")

var validateCmd = &cobra.Command{
	Use:   "validate [token|-]",
	Short: "Validate a GP Connect JWT against a specification version",
	Long: `Validate decodes an unsigned JWT and runs every claim check for the chosen
specification version. The token is read from stdin when omitted or "-".
Exits non-zero when the token does not conform.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		version, _ := cmd.Flags().GetString("spec-version")
		if version == "" {
			version = cfg.DefaultSpecVersion
		}
		asJSON, _ := cmd.Flags().GetBool("json")

		raw, err := readToken(cmd.InOrStdin(), args)
		if err != nil {
			return err
		}

		report, err := validation.ValidateToken(raw, version)
		if err != nil {
			return err
		}
		logger.Debug("Validated token", "version", report.Version, "valid", report.Valid, "messages", len(report.Messages))

		out := cmd.OutOrStdout()
		if asJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			if err := enc.Encode(report); err != nil {
				return err
			}
		} else {
			fmt.Fprintf(out, "version: %s\nvalid:   %t\n", report.Version, report.Valid)
			for _, m := range report.Messages {
				fmt.Fprintf(out, "  - %s\n", m)
			}
			for _, name := range report.MissingClaims {
				fmt.Fprintf(out, "missing claim: %s\n", name)
			}
		}

		if !report.Valid {
			return errNotConformant
		}
		return nil
	},
}

func init() {
	validateCmd.Flags().StringP("spec-version", "s", "", "GP Connect specification version (defaults to DEFAULT_SPEC_VERSION)")
	validateCmd.Flags().Bool("json", false, "print the full report as JSON")
	rootCmd.AddCommand(validateCmd)
}
