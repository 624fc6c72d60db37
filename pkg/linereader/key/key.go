// ABOUTME: Defines the Key type and Parse for raw-mode keyboard input.
// ABOUTME: Handles printable runes, control bytes, Alt prefixes and CSI/SS3 escape sequences.

package key

import (
	"unicode/utf8"
)

// Key is one decoded keyboard event.
type Key struct {
	Type KeyType
	Rune rune // printable character, or the letter of a Ctrl key
	Alt  bool
	Ctrl bool
}

// KeyType enumerates the kinds of key events.
type KeyType int

const (
	KeyUnknown KeyType = iota
	KeyRune
	KeyCtrl // Ctrl plus Rune, for control bytes without a dedicated type
	KeyEnter
	KeyTab
	KeyBackTab
	KeyBackspace
	KeyDelete
	KeyInsert
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyEscape
)

var typeNames = map[KeyType]string{
	KeyEnter:     "enter",
	KeyTab:       "tab",
	KeyBackTab:   "shift+tab",
	KeyBackspace: "backspace",
	KeyDelete:    "delete",
	KeyInsert:    "insert",
	KeyUp:        "up",
	KeyDown:      "down",
	KeyLeft:      "left",
	KeyRight:     "right",
	KeyHome:      "home",
	KeyEnd:       "end",
	KeyPageUp:    "pgup",
	KeyPageDown:  "pgdown",
	KeyEscape:    "escape",
}

// Name returns the binding name of k: "a", "alt+b", "ctrl+k", "ctrl+left",
// "enter". Unknown keys have an empty name.
func (k Key) Name() string {
	var base string
	switch k.Type {
	case KeyRune:
		base = string(k.Rune)
	case KeyCtrl:
		base = string(k.Rune)
	case KeyUnknown:
		return ""
	default:
		base = typeNames[k.Type]
	}

	prefix := ""
	if k.Ctrl {
		prefix = "ctrl+"
	}
	if k.Alt {
		prefix = "alt+" + prefix
	}
	return prefix + base
}

func (k Key) String() string {
	if n := k.Name(); n != "" {
		return n
	}
	return "unknown"
}

// IsCtrl reports whether k is Ctrl plus the given letter.
func (k Key) IsCtrl(r rune) bool {
	return k.Type == KeyCtrl && k.Rune == r && !k.Alt
}

// Parse decodes one complete key from data.
func Parse(data string) Key {
	if len(data) == 0 {
		return Key{}
	}
	if len(data) == 1 {
		return parseByte(data[0])
	}
	if data[0] == 0x1b {
		return parseEscape(data)
	}

	r, size := utf8.DecodeRuneInString(data)
	if r == utf8.RuneError || size != len(data) {
		return Key{}
	}
	return Key{Type: KeyRune, Rune: r}
}

// parseByte handles a single byte: ASCII or a control character.
func parseByte(b byte) Key {
	switch {
	case b == 0x0d:
		return Key{Type: KeyEnter}
	case b == 0x09:
		return Key{Type: KeyTab}
	case b == 0x7f:
		return Key{Type: KeyBackspace}
	case b == 0x1b:
		return Key{Type: KeyEscape}
	case b == 0x00:
		return Key{Type: KeyCtrl, Rune: '@', Ctrl: true}
	case b >= 0x01 && b <= 0x1a:
		return Key{Type: KeyCtrl, Rune: rune('a' + b - 1), Ctrl: true}
	case b >= 0x1c && b <= 0x1f:
		return Key{Type: KeyCtrl, Rune: rune(b + 0x40), Ctrl: true}
	case b >= 0x20 && b <= 0x7e:
		return Key{Type: KeyRune, Rune: rune(b)}
	}
	return Key{}
}

// parseEscape handles ESC-prefixed data.
func parseEscape(data string) Key {
	if k, ok := sequences[data]; ok {
		return k
	}
	if k, ok := parseModified(data); ok {
		return k
	}

	// Alt+key: ESC followed by one key.
	rest := data[1:]
	if rest[0] == 0x1b {
		return Key{}
	}
	k := Parse(rest)
	if k.Type == KeyUnknown || k.Alt {
		return Key{}
	}
	k.Alt = true
	return k
}
