// ABOUTME: In-memory line history with navigation state and optional file persistence
// ABOUTME: Consecutive duplicates are dropped; the oldest entries go once the size limit is hit

package linereader

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// History holds accepted lines, oldest first.
type History struct {
	entries []string
	max     int

	// navigation: pos == len(entries) means the line being edited.
	pos   int
	draft string
}

// NewHistory returns an empty history keeping at most max entries.
func NewHistory(max int) *History {
	return &History{max: max}
}

// Add appends line unless it is blank or repeats the newest entry.
func (h *History) Add(line string) {
	if strings.TrimSpace(line) == "" || h.max == 0 {
		h.reset()
		return
	}
	if n := len(h.entries); n > 0 && h.entries[n-1] == line {
		h.reset()
		return
	}
	h.entries = append(h.entries, line)
	if over := len(h.entries) - h.max; over > 0 {
		h.entries = append(h.entries[:0], h.entries[over:]...)
	}
	h.reset()
}

// Entries returns a copy of the history, oldest first.
func (h *History) Entries() []string {
	return append([]string(nil), h.entries...)
}

// Len returns the number of entries.
func (h *History) Len() int {
	return len(h.entries)
}

func (h *History) reset() {
	h.pos = len(h.entries)
	h.draft = ""
}

// prev moves one entry back, saving current as the draft when leaving it.
func (h *History) prev(current string) (string, bool) {
	if h.pos > len(h.entries) {
		h.pos = len(h.entries)
	}
	if h.pos == 0 {
		return "", false
	}
	if h.pos == len(h.entries) {
		h.draft = current
	}
	h.pos--
	return h.entries[h.pos], true
}

// next moves one entry forward, ending at the saved draft.
func (h *History) next() (string, bool) {
	if h.pos >= len(h.entries) {
		return "", false
	}
	h.pos++
	if h.pos == len(h.entries) {
		return h.draft, true
	}
	return h.entries[h.pos], true
}

// Load reads one entry per line from path. A missing file is not an error.
func (h *History) Load(path string) error {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("opening history: %w", err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		h.Add(sc.Text())
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("reading history: %w", err)
	}
	return nil
}

// Save writes every entry to path, creating parent directories.
func (h *History) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating history directory: %w", err)
	}
	var b strings.Builder
	for _, e := range h.entries {
		b.WriteString(e)
		b.WriteByte('\n')
	}
	if err := os.WriteFile(path, []byte(b.String()), 0o600); err != nil {
		return fmt.Errorf("writing history: %w", err)
	}
	return nil
}
