// Package cat implements the cat line-numbering filter.
package cat

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Options selects the numbering mode. NumberLines and NumberNonblank are
// mutually exclusive; the cli layer enforces that.
type Options struct {
	NumberLines    bool
	NumberNonblank bool
}

// Run copies r to w line by line, numbering according to opts. Line
// counters restart for every call, so each input file is numbered from 1.
// Lines may be arbitrarily long.
func Run(r io.Reader, w io.Writer, opts Options) error {
	br := bufio.NewReader(r)

	lineNum := 0
	nonblankNum := 0
	for {
		raw, err := br.ReadString('\n')
		if raw != "" {
			line := strings.TrimSuffix(raw, "\n")
			line = strings.TrimSuffix(line, "\r")
			lineNum++

			var werr error
			switch {
			case opts.NumberLines:
				_, werr = fmt.Fprintf(w, "%6d\t%s\n", lineNum, line)
			case opts.NumberNonblank:
				if line == "" {
					_, werr = fmt.Fprintln(w)
				} else {
					nonblankNum++
					_, werr = fmt.Fprintf(w, "%6d\t%s\n", nonblankNum, line)
				}
			default:
				_, werr = fmt.Fprintln(w, line)
			}
			if werr != nil {
				return werr
			}
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
	}
}
