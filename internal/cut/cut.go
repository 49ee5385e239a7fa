// Package cut implements field, character and byte extraction from
// delimited lines, including the selection-list grammar ("1,3-5").
package cut

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Mode says what a selection list indexes into.
type Mode int

const (
	Fields Mode = iota
	Chars
	Bytes
)

// Options holds a parsed extraction request. Delimiter is only used in
// Fields mode and must be a single byte; the cli layer validates that.
type Options struct {
	Mode      Mode
	Positions PositionList
	Delimiter byte
}

// Run extracts the selected positions from every line of r and writes the
// result to w, one line per input line. Lines may be arbitrarily long.
func Run(r io.Reader, w io.Writer, opts Options) error {
	br := bufio.NewReader(r)
	for {
		raw, err := br.ReadString('\n')
		if raw != "" {
			line := strings.TrimSuffix(raw, "\n")
			line = strings.TrimSuffix(line, "\r")

			var out string
			switch opts.Mode {
			case Fields:
				out = extractFields(line, opts.Delimiter, opts.Positions)
			case Chars:
				out = extractChars(line, opts.Positions)
			case Bytes:
				out = extractBytes(line, opts.Positions)
			}
			if _, werr := fmt.Fprintln(w, out); werr != nil {
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

// extractFields splits on the delimiter byte, selects positions and re-joins
// with the same delimiter. Out-of-range positions are skipped.
func extractFields(line string, delim byte, positions PositionList) string {
	fields := strings.Split(line, string(delim))
	var selected []string
	for _, span := range positions {
		for i := span.Low; i < span.High && i < len(fields); i++ {
			selected = append(selected, fields[i])
		}
	}
	return strings.Join(selected, string(delim))
}

func extractChars(line string, positions PositionList) string {
	runes := []rune(line)
	var b strings.Builder
	for _, span := range positions {
		for i := span.Low; i < span.High && i < len(runes); i++ {
			b.WriteRune(runes[i])
		}
	}
	return b.String()
}

func extractBytes(line string, positions PositionList) string {
	var b strings.Builder
	for _, span := range positions {
		for i := span.Low; i < span.High && i < len(line); i++ {
			b.WriteByte(line[i])
		}
	}
	return b.String()
}
