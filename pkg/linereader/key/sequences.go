// ABOUTME: Escape sequence tables for CSI and SS3 key codes, including xterm modifier forms.
// ABOUTME: Maps arrows, home/end, insert/delete, paging and backtab; "\x1b[1;5D" style carries modifiers.

package key

import "strings"

// sequences maps fixed CSI and SS3 sequences to keys.
var sequences = map[string]Key{
	"\x1b[A":  {Type: KeyUp},
	"\x1b[B":  {Type: KeyDown},
	"\x1b[C":  {Type: KeyRight},
	"\x1b[D":  {Type: KeyLeft},
	"\x1b[H":  {Type: KeyHome},
	"\x1b[F":  {Type: KeyEnd},
	"\x1b[1~": {Type: KeyHome},
	"\x1b[2~": {Type: KeyInsert},
	"\x1b[3~": {Type: KeyDelete},
	"\x1b[4~": {Type: KeyEnd},
	"\x1b[5~": {Type: KeyPageUp},
	"\x1b[6~": {Type: KeyPageDown},
	"\x1b[7~": {Type: KeyHome},
	"\x1b[8~": {Type: KeyEnd},
	"\x1b[Z":  {Type: KeyBackTab},

	"\x1bOA": {Type: KeyUp},
	"\x1bOB": {Type: KeyDown},
	"\x1bOC": {Type: KeyRight},
	"\x1bOD": {Type: KeyLeft},
	"\x1bOH": {Type: KeyHome},
	"\x1bOF": {Type: KeyEnd},
}

var finals = map[byte]KeyType{
	'A': KeyUp,
	'B': KeyDown,
	'C': KeyRight,
	'D': KeyLeft,
	'H': KeyHome,
	'F': KeyEnd,
}

// parseModified decodes "\x1b[1;<m><final>" where m-1 is a bit set of
// shift(1), alt(2) and ctrl(4).
func parseModified(data string) (Key, bool) {
	body, ok := strings.CutPrefix(data, "\x1b[1;")
	if !ok || len(body) != 2 {
		return Key{}, false
	}
	t, ok := finals[body[1]]
	if !ok || body[0] < '2' || body[0] > '8' {
		return Key{}, false
	}
	mod := body[0] - '1'
	return Key{Type: t, Alt: mod&2 != 0, Ctrl: mod&4 != 0}, true
}

// maxSequence is the longest escape sequence Parse recognizes.
const maxSequence = 6

// incomplete reports whether data could still grow into a known escape
// sequence.
func incomplete(data string) bool {
	if len(data) >= maxSequence || data[0] != 0x1b {
		return false
	}
	if len(data) == 1 {
		return true
	}
	switch data[1] {
	case 'O':
		return len(data) == 2
	case '[':
		for _, c := range []byte(data[2:]) {
			if (c < '0' || c > '9') && c != ';' {
				return false
			}
		}
		return true
	}
	return false
}
