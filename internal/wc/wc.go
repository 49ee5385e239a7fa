// Package wc implements the word-count filter: lines, words, characters and
// bytes of a stream, plus the fixed-column output format.
package wc

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// Counts holds the tallies for one input.
type Counts struct {
	Lines int
	Words int
	Chars int
	Bytes int
}

// Add accumulates other into c, for the trailing total row.
func (c *Counts) Add(other Counts) {
	c.Lines += other.Lines
	c.Words += other.Words
	c.Chars += other.Chars
	c.Bytes += other.Bytes
}

// Show selects which counts appear in formatted output. Order is fixed:
// lines, words, chars, bytes.
type Show struct {
	Lines bool
	Words bool
	Chars bool
	Bytes bool
}

// Default reports whether no count was selected, in which case the caller
// should fall back to lines+words+bytes.
func (s Show) Default() bool {
	return !s.Lines && !s.Words && !s.Chars && !s.Bytes
}

// Count reads r to EOF and tallies it. A line is anything returned by a
// read-line pass, so a trailing fragment without a newline still counts.
func Count(r io.Reader) (Counts, error) {
	var c Counts
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			c.Lines++
			c.Words += len(strings.Fields(line))
			c.Chars += utf8.RuneCountInString(line)
			c.Bytes += len(line)
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return c, nil
			}
			return c, err
		}
	}
}

// Format renders one output row: each selected count right-aligned in 8
// columns, then the filename unless it is "-".
func Format(name string, c Counts, show Show) string {
	var b strings.Builder
	if show.Lines {
		fmt.Fprintf(&b, "%8d", c.Lines)
	}
	if show.Words {
		fmt.Fprintf(&b, "%8d", c.Words)
	}
	if show.Chars {
		fmt.Fprintf(&b, "%8d", c.Chars)
	}
	if show.Bytes {
		fmt.Fprintf(&b, "%8d", c.Bytes)
	}
	if name != "-" {
		b.WriteString(" " + name)
	}
	return b.String()
}
