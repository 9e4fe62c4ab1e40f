package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rshade/sitecarbon/internal/emissions"
)

// newRootCmd creates the root Cobra command for the sitecarbon CLI.
func newRootCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:           "sitecarbon",
		Short:         "Construction-site greenhouse-gas calculator",
		Long:          "sitecarbon estimates embodied carbon (LCA stages A1-D) and operational GHG Protocol Scope 1/2/3 emissions for a construction project.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	cmd.AddCommand(newReportCmd(&verbose))
	return cmd
}

// newLogger builds the CLI logger: console output on stderr, debug level
// when verbose.
func newLogger(verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	writer := zerolog.ConsoleWriter{Out: os.Stderr}
	return zerolog.New(writer).Level(level).With().Timestamp().Logger()
}

// parsePolicy maps the --on-missing-factor flag value to a calculator
// policy.
func parsePolicy(value string) (emissions.Policy, error) {
	switch value {
	case "reject":
		return emissions.PolicyReject, nil
	case "zero":
		return emissions.PolicyFlagZero, nil
	default:
		return emissions.PolicyReject, fmt.Errorf("invalid --on-missing-factor value %q (want reject or zero)", value)
	}
}
