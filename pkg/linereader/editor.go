// ABOUTME: Line buffer with cursor, undo and kill ring used by a single read
// ABOUTME: Cursor moves by grapheme cluster; word commands follow emacs conventions

package linereader

import (
	"unicode"

	"github.com/mauromedda/ttyctl/pkg/linereader/internal/killring"
	"github.com/mauromedda/ttyctl/pkg/linereader/internal/undo"
)

const undoDepth = 100

type editorState struct {
	text   []rune
	cursor int
}

type editor struct {
	text   []rune
	cursor int
	ring   *killring.Ring
	undo   *undo.Stack[editorState]

	// yanked is the rune length of the last yank, for yank-pop.
	yanked int
}

func newEditor(ring *killring.Ring, initial string) *editor {
	e := &editor{
		text: []rune(initial),
		ring: ring,
		undo: undo.New[editorState](undoDepth),
	}
	e.cursor = len(e.text)
	return e
}

func (e *editor) String() string {
	return string(e.text)
}

func (e *editor) empty() bool {
	return len(e.text) == 0
}

func (e *editor) save() {
	e.undo.Push(editorState{text: append([]rune(nil), e.text...), cursor: e.cursor})
}

// replace swaps text[from:to] for r and leaves the cursor after it.
func (e *editor) replace(from, to int, r []rune) {
	out := make([]rune, 0, len(e.text)-(to-from)+len(r))
	out = append(out, e.text[:from]...)
	out = append(out, r...)
	out = append(out, e.text[to:]...)
	e.text = out
	e.cursor = from + len(r)
}

// set replaces the whole line, cursor at the end.
func (e *editor) set(s string) {
	e.save()
	e.text = []rune(s)
	e.cursor = len(e.text)
}

func (e *editor) insert(r ...rune) {
	if len(r) == 0 {
		return
	}
	e.save()
	e.replace(e.cursor, e.cursor, r)
}

func (e *editor) backspace() bool {
	if e.cursor == 0 {
		return false
	}
	e.save()
	e.replace(prevBoundary(e.text, e.cursor), e.cursor, nil)
	return true
}

func (e *editor) deleteChar() bool {
	if e.cursor >= len(e.text) {
		return false
	}
	e.save()
	from := e.cursor
	e.replace(from, nextBoundary(e.text, from), nil)
	e.cursor = from
	return true
}

func (e *editor) left() bool {
	if e.cursor == 0 {
		return false
	}
	e.cursor = prevBoundary(e.text, e.cursor)
	return true
}

func (e *editor) right() bool {
	if e.cursor >= len(e.text) {
		return false
	}
	e.cursor = nextBoundary(e.text, e.cursor)
	return true
}

func (e *editor) home() { e.cursor = 0 }

func (e *editor) end() { e.cursor = len(e.text) }

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.Is(unicode.Mn, r)
}

func (e *editor) wordStart() int {
	pos := e.cursor
	for pos > 0 && !isWordRune(e.text[pos-1]) {
		pos--
	}
	for pos > 0 && isWordRune(e.text[pos-1]) {
		pos--
	}
	return pos
}

func (e *editor) wordEnd() int {
	pos := e.cursor
	for pos < len(e.text) && !isWordRune(e.text[pos]) {
		pos++
	}
	for pos < len(e.text) && isWordRune(e.text[pos]) {
		pos++
	}
	return pos
}

func (e *editor) wordLeft() { e.cursor = e.wordStart() }

func (e *editor) wordRight() { e.cursor = e.wordEnd() }

// kill removes text[from:to] into the ring. With merge the text joins the
// newest ring entry.
func (e *editor) kill(from, to int, merge bool) bool {
	if from >= to {
		return false
	}
	e.save()
	killed := string(e.text[from:to])
	backward := to <= e.cursor && from < e.cursor
	if merge {
		e.ring.Append(killed, backward)
	} else {
		e.ring.Push(killed)
	}
	e.replace(from, to, nil)
	return true
}

func (e *editor) killLine(merge bool) bool {
	return e.kill(e.cursor, len(e.text), merge)
}

func (e *editor) discardLine(merge bool) bool {
	return e.kill(0, e.cursor, merge)
}

func (e *editor) killWord(merge bool) bool {
	from := e.cursor
	ok := e.kill(from, e.wordEnd(), merge)
	e.cursor = from
	return ok
}

// rubout kills the whitespace-delimited word before the cursor.
func (e *editor) rubout(merge bool) bool {
	pos := e.cursor
	for pos > 0 && unicode.IsSpace(e.text[pos-1]) {
		pos--
	}
	for pos > 0 && !unicode.IsSpace(e.text[pos-1]) {
		pos--
	}
	return e.kill(pos, e.cursor, merge)
}

func (e *editor) yank() bool {
	text, ok := e.ring.Yank()
	if !ok {
		return false
	}
	r := []rune(text)
	e.save()
	e.replace(e.cursor, e.cursor, r)
	e.yanked = len(r)
	return true
}

// yankPop replaces the text of the previous yank with the next older entry.
func (e *editor) yankPop() bool {
	if e.yanked == 0 || e.yanked > e.cursor {
		return false
	}
	text, ok := e.ring.YankPop()
	if !ok {
		return false
	}
	r := []rune(text)
	e.save()
	e.replace(e.cursor-e.yanked, e.cursor, r)
	e.yanked = len(r)
	return true
}

// transpose swaps the characters around the cursor; at the end of the line it
// swaps the last two.
func (e *editor) transpose() bool {
	if len(e.text) < 2 || e.cursor == 0 {
		return false
	}
	pos := e.cursor
	if pos == len(e.text) {
		pos--
	}
	e.save()
	e.text[pos-1], e.text[pos] = e.text[pos], e.text[pos-1]
	e.cursor = pos + 1
	return true
}

func (e *editor) undoLast() bool {
	state, ok := e.undo.Pop()
	if !ok {
		return false
	}
	e.text = state.text
	e.cursor = state.cursor
	return true
}
