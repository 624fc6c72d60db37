// ABOUTME: Emacs-style kill ring shared by every line read on a reader
// ABOUTME: Consecutive kills merge into one entry; yank-pop walks back through older entries

package killring

// DefaultSize is the ring capacity used by New when size <= 0.
const DefaultSize = 32

// Ring holds killed text, newest last.
type Ring struct {
	entries []string
	size    int
	yankIdx int
}

// New returns a ring holding at most size entries.
func New(size int) *Ring {
	if size <= 0 {
		size = DefaultSize
	}
	return &Ring{entries: make([]string, 0, size), size: size}
}

// Push records text as a new kill. Empty text is ignored.
func (r *Ring) Push(text string) {
	if text == "" {
		return
	}
	if len(r.entries) == r.size {
		copy(r.entries, r.entries[1:])
		r.entries = r.entries[:len(r.entries)-1]
	}
	r.entries = append(r.entries, text)
	r.yankIdx = len(r.entries) - 1
}

// Append merges text into the newest entry, after it for forward kills or
// before it for backward kills. With an empty ring it behaves like Push.
func (r *Ring) Append(text string, backward bool) {
	if len(r.entries) == 0 {
		r.Push(text)
		return
	}
	last := len(r.entries) - 1
	if backward {
		r.entries[last] = text + r.entries[last]
	} else {
		r.entries[last] += text
	}
	r.yankIdx = last
}

// Yank returns the newest entry.
func (r *Ring) Yank() (string, bool) {
	if len(r.entries) == 0 {
		return "", false
	}
	r.yankIdx = len(r.entries) - 1
	return r.entries[r.yankIdx], true
}

// YankPop returns the entry before the one last yanked, wrapping around.
func (r *Ring) YankPop() (string, bool) {
	if len(r.entries) == 0 {
		return "", false
	}
	r.yankIdx = (r.yankIdx - 1 + len(r.entries)) % len(r.entries)
	return r.entries[r.yankIdx], true
}

// Len returns the number of entries.
func (r *Ring) Len() int {
	return len(r.entries)
}
