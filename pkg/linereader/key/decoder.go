// ABOUTME: Decoder splits a raw input byte stream into keys, buffering partial sequences.
// ABOUTME: A lone ESC stays pending until more bytes arrive or the caller flushes after a timeout.

package key

import (
	"time"
	"unicode/utf8"
)

// EscTimeout is how long a caller should wait for the rest of an escape
// sequence before flushing a pending ESC as a lone Escape key.
const EscTimeout = 50 * time.Millisecond

// Decoder accumulates input bytes and emits complete keys.
type Decoder struct {
	buf []byte
}

// Feed appends p and returns every key that is now complete.
func (d *Decoder) Feed(p []byte) []Key {
	d.buf = append(d.buf, p...)
	var keys []Key
	for len(d.buf) > 0 {
		n, k, wait := d.next()
		if wait {
			break
		}
		d.buf = d.buf[n:]
		keys = append(keys, k)
	}
	return keys
}

// Pending reports whether bytes are buffered waiting for more input.
func (d *Decoder) Pending() bool {
	return len(d.buf) > 0
}

// Flush decodes whatever is buffered without waiting for more input. A
// partial escape sequence becomes an Escape key followed by its remaining
// bytes.
func (d *Decoder) Flush() []Key {
	var keys []Key
	for len(d.buf) > 0 {
		n, k, wait := d.next()
		if wait {
			if d.buf[0] == 0x1b {
				n, k = 1, Key{Type: KeyEscape}
			} else {
				n, k = len(d.buf), Key{}
			}
		}
		d.buf = d.buf[n:]
		keys = append(keys, k)
	}
	return keys
}

// next parses one key from the front of the buffer, returning the bytes
// consumed, or wait=true when more input is needed.
func (d *Decoder) next() (int, Key, bool) {
	if d.buf[0] == 0x1b {
		return d.nextEscape()
	}
	if !utf8.FullRune(d.buf) {
		return 0, Key{}, true
	}
	r, size := utf8.DecodeRune(d.buf)
	if r == utf8.RuneError {
		return 1, Key{}, false
	}
	return size, Parse(string(d.buf[:size])), false
}

func (d *Decoder) nextEscape() (int, Key, bool) {
	limit := min(len(d.buf), maxSequence)
	if incomplete(string(d.buf[:limit])) {
		return 0, Key{}, true
	}
	for end := limit; end >= 2; end-- {
		if k := Parse(string(d.buf[:end])); k.Type != KeyUnknown {
			return end, k, false
		}
	}
	if len(d.buf) >= 2 && d.buf[1] != '[' && d.buf[1] != 'O' && !utf8.FullRune(d.buf[1:]) {
		return 0, Key{}, true
	}
	return 1, Key{Type: KeyEscape}, false
}
