package cli

import (
	"bytes"
	"fmt"

	"github.com/google/renameio/v2"
	"github.com/spf13/cobra"

	"github.com/hvpaiva/coreutils/internal/iox"
	"github.com/hvpaiva/coreutils/internal/logx"
	"github.com/hvpaiva/coreutils/internal/uniq"
)

var (
	uniqCount      bool
	uniqRepeated   bool
	uniqUnique     bool
	uniqIgnoreCase bool
	uniqAdjacent   bool
)

var uniqCmd = &cobra.Command{
	Use:   "uniq [INPUT [OUTPUT]]",
	Short: "Report or omit repeated lines",
	Long: `Filter repeated lines from INPUT (or standard input), writing to
OUTPUT (or standard output).

Unlike the classic uniq, lines do not need to be adjacent to be considered
repeated; pass -a to get the classic adjacent-only behavior.

Examples:
  coreutils uniq -c access.log
  coreutils uniq -d input.txt dupes.txt
  sort input.txt | coreutils uniq -a -c`,
	Args: cobra.MaximumNArgs(2),
	RunE: runUniq,
}

func init() {
	rootCmd.AddCommand(uniqCmd)

	uniqCmd.Flags().BoolVarP(&uniqCount, "count", "c", false, "Prefix lines with their occurrence count")
	uniqCmd.Flags().BoolVarP(&uniqRepeated, "repeated", "d", false, "Only print lines that occur more than once")
	uniqCmd.Flags().BoolVarP(&uniqUnique, "unique", "u", false, "Only print lines that occur exactly once")
	uniqCmd.Flags().BoolVarP(&uniqIgnoreCase, "ignore-case", "i", false, "Case-insensitive line comparison")
	uniqCmd.Flags().BoolVarP(&uniqAdjacent, "adjacent", "a", false, "Only collapse adjacent repeated lines")
	uniqCmd.MarkFlagsMutuallyExclusive("repeated", "unique")
	uniqCmd.MarkFlagsMutuallyExclusive("adjacent", "repeated")
	uniqCmd.MarkFlagsMutuallyExclusive("adjacent", "unique")
}

func runUniq(cmd *cobra.Command, args []string) error {
	inFile := iox.Stdin
	outFile := ""
	if len(args) > 0 {
		inFile = args[0]
	}
	if len(args) > 1 {
		outFile = args[1]
	}

	in, err := iox.Open(inFile)
	if err != nil {
		return fmt.Errorf("%s: %w", inFile, err)
	}
	defer in.Close()

	opts := uniq.Options{
		Count:      uniqCount,
		Repeated:   uniqRepeated,
		Unique:     uniqUnique,
		IgnoreCase: uniqIgnoreCase,
		Adjacent:   uniqAdjacent,
	}

	if outFile == "" {
		return uniq.Run(in, cmd.OutOrStdout(), opts)
	}

	// Buffer and write the output file atomically: the target is only
	// replaced once the whole run has succeeded.
	var buf bytes.Buffer
	if err := uniq.Run(in, &buf, opts); err != nil {
		return err
	}
	if err := writeAtomic(outFile, buf.Bytes()); err != nil {
		return fmt.Errorf("%s: %w", outFile, err)
	}
	logger := logx.WithTool("uniq")
	logger.Debug().Str("file", outFile).Int("bytes", buf.Len()).Msg("wrote output")
	return nil
}

// writeAtomic writes data to path via a temp file, fsync and rename.
func writeAtomic(path string, data []byte) error {
	pending, err := renameio.NewPendingFile(path)
	if err != nil {
		return err
	}
	defer pending.Cleanup()

	if _, err := pending.Write(data); err != nil {
		return err
	}
	return pending.CloseAtomicallyReplace()
}
