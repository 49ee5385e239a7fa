// Package iox provides the stdin-or-file opening convention shared by all
// tools: a filename of "-" means standard input.
package iox

import (
	"io"
	"os"
)

// Stdin is the filename that selects standard input.
const Stdin = "-"

// Open returns a reader for name, or stdin when name is "-". Closing the
// returned reader never closes the real stdin.
func Open(name string) (io.ReadCloser, error) {
	if name == Stdin {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(name)
}
