// Package head implements the head filter: the first N lines or bytes of a
// stream.
package head

import (
	"bufio"
	"errors"
	"io"
)

// Lines copies the first n lines of r to w, preserving the input's own line
// endings. A final line without a trailing newline is copied as-is.
func Lines(r io.Reader, w io.Writer, n int64) error {
	br := bufio.NewReader(r)
	for i := int64(0); i < n; i++ {
		line, err := br.ReadString('\n')
		if line != "" {
			if _, werr := io.WriteString(w, line); werr != nil {
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
	return nil
}

// Bytes copies up to n bytes of r to w, raw. Multi-byte characters may be
// split; that matches the classic tool.
func Bytes(r io.Reader, w io.Writer, n int64) error {
	if _, err := io.CopyN(w, r, n); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
