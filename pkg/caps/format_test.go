// ABOUTME: Tests for template expansion and writing.
// ABOUTME: Covers parameter evaluation, padding removal and write errors.

package caps

import (
	"bytes"
	"errors"
	"testing"
)

func TestExpand(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		template string
		params   []any
		want     string
	}{
		{"plain", "\x1b[K", nil, "\x1b[K"},
		{"empty", "", nil, ""},
		{"one param", "\x1b[%p1%dD", []any{3}, "\x1b[3D"},
		{"increment", "\x1b[%i%p1%d;%p2%dH", []any{4, 9}, "\x1b[5;10H"},
		{"int64 param", "\x1b[%p1%dC", []any{int64(12)}, "\x1b[12C"},
		{"uint param", "\x1b[%p1%dC", []any{uint(7)}, "\x1b[7C"},
		{"rune param", "\x1b[3%p1%dm", []any{'\x02'}, "\x1b[32m"},
		{"padding", "\x1b[H\x1b[J$<50>", nil, "\x1b[H\x1b[J"},
		{"padding star slash", "a$<5*/>b$<2.5*>c", nil, "abc"},
		{"literal percent", "100%%", nil, "100%"},
		{"dollar kept", "$x$<", nil, "$x$<"},
		{"arithmetic", "%p1%{1}%+%d", []any{41}, "42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := string(Expand(tt.template, tt.params...))
			if got != tt.want {
				t.Errorf("Expand(%q, %v) = %q, want %q", tt.template, tt.params, got, tt.want)
			}
		})
	}
}

func TestTputs(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := Tputs(&buf, "\x1b[%p1%dA", 2); err != nil {
		t.Fatalf("Tputs: %v", err)
	}
	if buf.String() != "\x1b[2A" {
		t.Errorf("wrote %q", buf.String())
	}
}

type failWriter struct{ err error }

func (w failWriter) Write([]byte) (int, error) { return 0, w.err }

func TestTputs_WriteError(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	if err := Tputs(failWriter{boom}, "\a"); !errors.Is(err, boom) {
		t.Errorf("err = %v, want %v", err, boom)
	}
	// Empty expansions never touch the writer.
	if err := Tputs(failWriter{boom}, "$<10>"); err != nil {
		t.Errorf("empty expansion err = %v", err)
	}
}
