package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hvpaiva/coreutils/internal/head"
	"github.com/hvpaiva/coreutils/internal/iox"
)

var (
	headLines   int64
	headBytes   int64
	headQuiet   bool
	headVerbose bool
)

var headCmd = &cobra.Command{
	Use:   "head [FILE...]",
	Short: "Print the first lines or bytes of files",
	Long: `Print the first N lines of each FILE to standard output.

With no FILE, or when FILE is -, read standard input.

With more than one FILE, precede each with a header giving the file name.

Examples:
  coreutils head file.txt
  coreutils head -n 3 a.txt b.txt
  coreutils head -c 16 binary.dat`,
	RunE: runHead,
}

func init() {
	rootCmd.AddCommand(headCmd)

	headCmd.Flags().Int64VarP(&headLines, "lines", "n", 10, "Number of lines to print")
	headCmd.Flags().Int64VarP(&headBytes, "bytes", "c", 0, "Number of bytes to print")
	headCmd.Flags().BoolVarP(&headQuiet, "quiet", "q", false, "Never print file name headers")
	headCmd.Flags().BoolVarP(&headVerbose, "verbose", "v", false, "Always print file name headers")
	headCmd.MarkFlagsMutuallyExclusive("lines", "bytes")
	headCmd.MarkFlagsMutuallyExclusive("quiet", "verbose")
}

func runHead(cmd *cobra.Command, args []string) error {
	// Zero is a valid count and prints nothing; only negatives are rejected.
	if headLines < 0 {
		return fmt.Errorf("invalid --lines %d: must not be negative", headLines)
	}
	byBytes := cmd.Flags().Changed("bytes")
	if byBytes && headBytes < 0 {
		return fmt.Errorf("invalid --bytes %d: must not be negative", headBytes)
	}

	files := args
	if len(files) == 0 {
		files = []string{iox.Stdin}
	}

	out := cmd.OutOrStdout()
	for i, filename := range files {
		in, err := iox.Open(filename)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", filename, err)
			continue
		}

		if !headQuiet && (headVerbose || len(files) > 1) {
			sep := ""
			if i > 0 {
				sep = "\n"
			}
			fmt.Fprintf(out, "%s==> %s <==\n", sep, filename)
		}

		if byBytes {
			err = head.Bytes(in, out, headBytes)
		} else {
			err = head.Lines(in, out, headLines)
		}
		in.Close()
		if err != nil {
			return fmt.Errorf("%s: %w", filename, err)
		}
	}
	return nil
}
