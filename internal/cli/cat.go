package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hvpaiva/coreutils/internal/cat"
	"github.com/hvpaiva/coreutils/internal/iox"
	"github.com/hvpaiva/coreutils/internal/logx"
)

var (
	catNumber         bool
	catNumberNonblank bool
)

var catCmd = &cobra.Command{
	Use:   "cat [FILE...]",
	Short: "Concatenate files to standard output",
	Long: `Concatenate FILE(s) to standard output, optionally numbering lines.

With no FILE, or when FILE is -, read standard input.

Examples:
  coreutils cat file.txt
  coreutils cat -n a.txt b.txt
  coreutils cat -b notes.txt`,
	RunE: runCat,
}

func init() {
	rootCmd.AddCommand(catCmd)

	catCmd.Flags().BoolVarP(&catNumber, "number", "n", false, "Number all output lines")
	catCmd.Flags().BoolVarP(&catNumberNonblank, "number-nonblank", "b", false, "Number non-blank output lines")
	catCmd.MarkFlagsMutuallyExclusive("number", "number-nonblank")
}

func runCat(cmd *cobra.Command, args []string) error {
	files := args
	if len(files) == 0 {
		files = []string{iox.Stdin}
	}

	log := logx.WithTool("cat")
	opts := cat.Options{NumberLines: catNumber, NumberNonblank: catNumberNonblank}

	for _, filename := range files {
		in, err := iox.Open(filename)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Failed to open %s: %v\n", filename, err)
			continue
		}
		log.Debug().Str("file", filename).Msg("reading input")
		err = cat.Run(in, cmd.OutOrStdout(), opts)
		in.Close()
		if err != nil {
			return fmt.Errorf("%s: %w", filename, err)
		}
	}
	return nil
}
