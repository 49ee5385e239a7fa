// Package uniq implements duplicate-line detection, in two modes: the
// classic adjacent-run collapse, and a whole-input mode where lines do not
// need to be adjacent to count as repeats.
package uniq

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
)

// Options controls filtering and output. Repeated and Unique are mutually
// exclusive, and Adjacent excludes both; the cli layer enforces that.
type Options struct {
	Count      bool // prefix each line with its occurrence count
	Repeated   bool // only groups seen more than once
	Unique     bool // only groups seen exactly once
	IgnoreCase bool // compare under Unicode case folding
	Adjacent   bool // classic uniq: only adjacent runs collapse
}

type group struct {
	repr  string // first-seen spelling, trailing newline included
	count int
}

// Run reads lines from r and writes the de-duplicated result to w.
func Run(r io.Reader, w io.Writer, opts Options) error {
	if opts.Adjacent {
		return runAdjacent(r, w, opts)
	}
	return runGrouped(r, w, opts)
}

// runGrouped groups identical lines anywhere in the input and emits one
// representative per group in first-seen order.
func runGrouped(r io.Reader, w io.Writer, opts Options) error {
	folder := cases.Fold()
	index := make(map[string]int)
	var groups []group

	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			key := line
			if opts.IgnoreCase {
				key = folder.String(line)
			}
			if i, ok := index[key]; ok {
				groups[i].count++
			} else {
				index[key] = len(groups)
				groups = append(groups, group{repr: line, count: 1})
			}
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return err
		}
	}

	for _, g := range groups {
		if opts.Repeated && g.count == 1 {
			continue
		}
		if opts.Unique && g.count > 1 {
			continue
		}
		if err := emit(w, g.count, g.repr, opts.Count); err != nil {
			return err
		}
	}
	return nil
}

// runAdjacent collapses runs of equal lines. Comparison ignores trailing
// whitespace so "a\n" and "a \n" belong to the same run.
func runAdjacent(r io.Reader, w io.Writer, opts Options) error {
	folder := cases.Fold()
	key := func(line string) string {
		k := strings.TrimRightFunc(line, unicode.IsSpace)
		if opts.IgnoreCase {
			k = folder.String(k)
		}
		return k
	}

	var previous string
	run := 0

	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			if run > 0 && key(line) != key(previous) {
				if werr := emit(w, run, previous, opts.Count); werr != nil {
					return werr
				}
				run = 0
			}
			if run == 0 {
				previous = line
			}
			run++
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return err
		}
	}
	if run > 0 {
		return emit(w, run, previous, opts.Count)
	}
	return nil
}

func emit(w io.Writer, count int, line string, withCount bool) error {
	var err error
	if withCount {
		_, err = fmt.Fprintf(w, "%4d %s", count, line)
	} else {
		_, err = io.WriteString(w, line)
	}
	return err
}
