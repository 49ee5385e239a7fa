package cli

import (
	"fmt"
	"regexp"

	"github.com/spf13/cobra"

	"github.com/hvpaiva/coreutils/internal/find"
	"github.com/hvpaiva/coreutils/internal/logx"
)

var (
	findNames []string
	findTypes []string
)

var findCmd = &cobra.Command{
	Use:   "find [PATH...]",
	Short: "Search for files, directories and links",
	Long: `Recursively search PATH(s) (default: the current directory) for
entries whose name matches any --name regex and whose type matches any
--type.

Examples:
  coreutils find . -t f -n '\.go$'
  coreutils find /tmp /var/tmp -t l
  coreutils find src -n '_test'`,
	RunE: runFind,
}

func init() {
	rootCmd.AddCommand(findCmd)

	findCmd.Flags().StringArrayVarP(&findNames, "name", "n", nil, "Name regex to match (repeatable)")
	findCmd.Flags().StringArrayVarP(&findTypes, "type", "t", nil, "Entry type: f, d or l (repeatable)")
}

func runFind(cmd *cobra.Command, args []string) error {
	var opts find.Options
	for _, pattern := range findNames {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return fmt.Errorf("invalid --name %q: %w", pattern, err)
		}
		opts.Names = append(opts.Names, re)
	}
	for _, t := range findTypes {
		et, err := find.ParseEntryType(t)
		if err != nil {
			return err
		}
		opts.Types = append(opts.Types, et)
	}

	paths := args
	if len(paths) == 0 {
		paths = []string{"."}
	}

	log := logx.WithTool("find")
	for _, path := range paths {
		log.Debug().Str("path", path).Msg("walking")
		if err := find.Walk(path, opts, cmd.OutOrStdout(), cmd.ErrOrStderr()); err != nil {
			return err
		}
	}
	return nil
}
