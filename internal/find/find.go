// Package find implements a recursive directory walk with name-regex and
// entry-type filters.
package find

import (
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"regexp"
)

// EntryType classifies a directory entry the way find's -type does.
type EntryType int

const (
	TypeFile EntryType = iota
	TypeDir
	TypeLink
)

// ParseEntryType maps the flag values f, d and l to an EntryType.
func ParseEntryType(s string) (EntryType, error) {
	switch s {
	case "f":
		return TypeFile, nil
	case "d":
		return TypeDir, nil
	case "l":
		return TypeLink, nil
	default:
		return 0, fmt.Errorf("invalid --type %q (use f, d, or l)", s)
	}
}

// Options filters walk results. Empty Names or Types means "match any".
type Options struct {
	Names []*regexp.Regexp
	Types []EntryType
}

// Walk recursively walks root, printing every matching path to w, one per
// line. Unreadable entries are reported on errw and the walk continues.
func Walk(root string, opts Options, w, errw io.Writer) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			fmt.Fprintln(errw, err)
			return nil
		}
		if !matchType(d, opts.Types) || !matchName(d.Name(), opts.Names) {
			return nil
		}
		_, werr := fmt.Fprintln(w, path)
		return werr
	})
}

func matchType(d fs.DirEntry, types []EntryType) bool {
	if len(types) == 0 {
		return true
	}
	for _, t := range types {
		switch t {
		case TypeLink:
			if d.Type()&fs.ModeSymlink != 0 {
				return true
			}
		case TypeDir:
			if d.IsDir() {
				return true
			}
		case TypeFile:
			if d.Type().IsRegular() {
				return true
			}
		}
	}
	return false
}

func matchName(name string, res []*regexp.Regexp) bool {
	if len(res) == 0 {
		return true
	}
	for _, re := range res {
		if re.MatchString(name) {
			return true
		}
	}
	return false
}
