package head

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLines(t *testing.T) {
	tests := []struct {
		name  string
		input string
		n     int64
		want  string
	}{
		{"fewer than available", "one\ntwo\nthree\n", 2, "one\ntwo\n"},
		{"more than available", "one\ntwo\n", 5, "one\ntwo\n"},
		{"no trailing newline", "one\ntwo", 5, "one\ntwo"},
		{"crlf preserved", "one\r\ntwo\r\n", 1, "one\r\n"},
		{"zero lines", "one\ntwo\n", 0, ""},
		{"empty input", "", 3, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			err := Lines(strings.NewReader(tt.input), &out, tt.n)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out.String())
		})
	}
}

func TestBytes(t *testing.T) {
	tests := []struct {
		name  string
		input string
		n     int64
		want  string
	}{
		{"partial", "hello\n", 3, "hel"},
		{"exact", "hello", 5, "hello"},
		{"beyond eof", "hi", 10, "hi"},
		{"splits multibyte rune", "né", 2, "n\xc3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			err := Bytes(strings.NewReader(tt.input), &out, tt.n)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out.String())
		})
	}
}
