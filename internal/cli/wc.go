package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/hvpaiva/coreutils/internal/iox"
	"github.com/hvpaiva/coreutils/internal/logx"
	"github.com/hvpaiva/coreutils/internal/wc"
)

var (
	wcLines bool
	wcWords bool
	wcChars bool
	wcBytes bool
)

var wcCmd = &cobra.Command{
	Use:   "wc [FILE...]",
	Short: "Count lines, words, characters and bytes",
	Long: `Count lines, words, characters and bytes in each FILE.

With no FILE, or when FILE is -, read standard input. Selected counts are
always printed in the order: lines, words, characters, bytes. With no
selection flags, lines, words and bytes are printed.

With more than one FILE, a cumulative "total" row follows the last file.

Examples:
  coreutils wc file.txt
  coreutils wc -l *.go
  coreutils wc -m unicode.txt`,
	RunE: runWc,
}

func init() {
	rootCmd.AddCommand(wcCmd)

	wcCmd.Flags().BoolVarP(&wcLines, "lines", "l", false, "Print the line count")
	wcCmd.Flags().BoolVarP(&wcWords, "words", "w", false, "Print the word count")
	wcCmd.Flags().BoolVarP(&wcChars, "chars", "m", false, "Print the character count")
	wcCmd.Flags().BoolVarP(&wcBytes, "bytes", "c", false, "Print the byte count")
}

func runWc(cmd *cobra.Command, args []string) error {
	show := wc.Show{Lines: wcLines, Words: wcWords, Chars: wcChars, Bytes: wcBytes}
	if show.Default() {
		show = wc.Show{Lines: true, Words: true, Bytes: true}
	}

	files := args
	if len(files) == 0 {
		files = []string{iox.Stdin}
	}

	log := logx.WithTool("wc")

	// Count files concurrently but report in input order. Open errors are
	// soft (reported on stderr, file skipped); read errors mid-file are
	// command errors, like the other tools.
	counts := make([]wc.Counts, len(files))
	openErrs := make([]error, len(files))
	readErrs := make([]error, len(files))

	var g errgroup.Group
	g.SetLimit(8)
	for i, filename := range files {
		i, filename := i, filename
		g.Go(func() error {
			in, err := iox.Open(filename)
			if err != nil {
				openErrs[i] = err
				return nil
			}
			defer in.Close()
			counts[i], readErrs[i] = wc.Count(in)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	var total wc.Counts
	for i, filename := range files {
		if readErrs[i] != nil {
			return fmt.Errorf("%s: %w", filename, readErrs[i])
		}
		if openErrs[i] != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", filename, openErrs[i])
			continue
		}
		log.Debug().Str("file", filename).Int("lines", counts[i].Lines).Msg("counted")
		fmt.Fprintln(cmd.OutOrStdout(), wc.Format(filename, counts[i], show))
		total.Add(counts[i])
	}

	if len(files) > 1 {
		fmt.Fprintln(cmd.OutOrStdout(), wc.Format("total", total, show))
	}
	return nil
}
