package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hvpaiva/coreutils/internal/cut"
	"github.com/hvpaiva/coreutils/internal/iox"
)

var (
	cutDelimiter string
	cutFields    string
	cutChars     string
	cutBytes     string
)

var cutCmd = &cobra.Command{
	Use:   "cut [FILE...]",
	Short: "Extract fields, characters or bytes from lines",
	Long: `Extract selected fields, characters or bytes from each line of FILE(s).

With no FILE, or when FILE is -, read standard input. Exactly one of
--fields, --chars or --bytes must be given; selections are 1-based lists
such as "1", "2,4" or "1-3,7".

Examples:
  coreutils cut -f 1,3 -d , data.csv
  coreutils cut -c 1-5 words.txt
  coreutils cut -b 1-4 raw.bin`,
	RunE: runCut,
}

func init() {
	rootCmd.AddCommand(cutCmd)

	cutCmd.Flags().StringVarP(&cutDelimiter, "delimiter", "d", "\t", "Field delimiter (single byte)")
	cutCmd.Flags().StringVarP(&cutFields, "fields", "f", "", "Select only these fields")
	cutCmd.Flags().StringVarP(&cutChars, "chars", "c", "", "Select only these characters")
	cutCmd.Flags().StringVarP(&cutBytes, "bytes", "b", "", "Select only these bytes")
	cutCmd.MarkFlagsMutuallyExclusive("fields", "chars", "bytes")
	cutCmd.MarkFlagsOneRequired("fields", "chars", "bytes")
}

func runCut(cmd *cobra.Command, args []string) error {
	if len(cutDelimiter) != 1 {
		return fmt.Errorf("delimiter %q is invalid. It must be a single byte", cutDelimiter)
	}

	var list string
	opts := cut.Options{Delimiter: cutDelimiter[0]}
	switch {
	case cutFields != "":
		opts.Mode, list = cut.Fields, cutFields
	case cutChars != "":
		opts.Mode, list = cut.Chars, cutChars
	case cutBytes != "":
		opts.Mode, list = cut.Bytes, cutBytes
	}

	positions, err := cut.ParsePositions(list)
	if err != nil {
		return err
	}
	opts.Positions = positions

	files := args
	if len(files) == 0 {
		files = []string{iox.Stdin}
	}

	for _, filename := range files {
		in, err := iox.Open(filename)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", filename, err)
			continue
		}
		err = cut.Run(in, cmd.OutOrStdout(), opts)
		in.Close()
		if err != nil {
			return fmt.Errorf("%s: %w", filename, err)
		}
	}
	return nil
}
