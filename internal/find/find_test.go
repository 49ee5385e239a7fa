package find

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTree builds:
//
//	root/
//	  a.txt
//	  b.log
//	  sub/
//	    c.txt
//	  link -> a.txt
func newTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(root, "a.txt"), []byte("a"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "b.log"), []byte("b"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(root, "sub"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "sub", "c.txt"), []byte("c"), 0o644))
	require.NoError(t, os.Symlink(filepath.Join(root, "a.txt"), filepath.Join(root, "link")))

	return root
}

func walk(t *testing.T, root string, opts Options) []string {
	t.Helper()
	var out, errOut bytes.Buffer
	require.NoError(t, Walk(root, opts, &out, &errOut))
	assert.Empty(t, errOut.String())

	var rel []string
	for _, line := range strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n") {
		if line == "" {
			continue
		}
		r, err := filepath.Rel(root, line)
		require.NoError(t, err)
		rel = append(rel, r)
	}
	return rel
}

func TestWalkNoFilters(t *testing.T) {
	root := newTree(t)
	got := walk(t, root, Options{})
	assert.ElementsMatch(t, []string{".", "a.txt", "b.log", "link", "sub", filepath.Join("sub", "c.txt")}, got)
}

func TestWalkTypeFile(t *testing.T) {
	root := newTree(t)
	got := walk(t, root, Options{Types: []EntryType{TypeFile}})
	assert.ElementsMatch(t, []string{"a.txt", "b.log", filepath.Join("sub", "c.txt")}, got)
}

func TestWalkTypeDir(t *testing.T) {
	root := newTree(t)
	got := walk(t, root, Options{Types: []EntryType{TypeDir}})
	assert.ElementsMatch(t, []string{".", "sub"}, got)
}

func TestWalkTypeLink(t *testing.T) {
	root := newTree(t)
	got := walk(t, root, Options{Types: []EntryType{TypeLink}})
	assert.ElementsMatch(t, []string{"link"}, got)
}

func TestWalkNameRegex(t *testing.T) {
	root := newTree(t)
	got := walk(t, root, Options{Names: []*regexp.Regexp{regexp.MustCompile(`\.txt$`)}})
	assert.ElementsMatch(t, []string{"a.txt", filepath.Join("sub", "c.txt")}, got)
}

func TestWalkNameAndType(t *testing.T) {
	root := newTree(t)
	got := walk(t, root, Options{
		Names: []*regexp.Regexp{regexp.MustCompile(`^[ab]`)},
		Types: []EntryType{TypeFile},
	})
	assert.ElementsMatch(t, []string{"a.txt", "b.log"}, got)
}

func TestWalkMissingRootReportsAndContinues(t *testing.T) {
	var out, errOut bytes.Buffer
	err := Walk(filepath.Join(t.TempDir(), "nope"), Options{}, &out, &errOut)
	require.NoError(t, err)
	assert.Empty(t, out.String())
	assert.NotEmpty(t, errOut.String())
}

func TestParseEntryType(t *testing.T) {
	for flag, want := range map[string]EntryType{"f": TypeFile, "d": TypeDir, "l": TypeLink} {
		got, err := ParseEntryType(flag)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := ParseEntryType("x")
	assert.EqualError(t, err, `invalid --type "x" (use f, d, or l)`)
}
