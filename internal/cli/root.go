// Package cli implements the command-line interface for coreutils.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hvpaiva/coreutils/internal/logx"
)

const version = "0.1.0"

var verbose bool

// rootCmd is the base command. Each tool registers itself as a subcommand.
var rootCmd = &cobra.Command{
	Use:   "coreutils",
	Short: "Classic Unix text filters in one binary",
	Long: `coreutils - cat, head, wc, uniq, cut and find in one binary.

Each subcommand is a small, pipe-friendly filter. A file argument of "-"
(or no file argument) reads standard input.`,
	Version: version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logx.Setup(verbose, cmd.ErrOrStderr())
	},
	// Execute reports errors itself; keep cobra from printing them twice.
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// No -v shorthand: head claims it for its own verbose-headers flag.
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable debug logging on stderr")
}
