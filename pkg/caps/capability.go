// ABOUTME: Capability identifiers keyed by terminfo short name, plus long-name lookup.
// ABOUTME: Name tables come from github.com/xo/terminfo so every standard capability resolves.

package caps

import "github.com/xo/terminfo"

// Capability names a terminal capability by its terminfo short name
// ("cup", "am", "cols"). Extended (user-defined) capabilities use their
// own names.
type Capability string

// Kind is the value type of a capability.
type Kind int

const (
	KindUnknown Kind = iota
	KindBool
	KindNum
	KindString
)

func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindNum:
		return "num"
	case KindString:
		return "string"
	default:
		return "unknown"
	}
}

// Boolean capabilities.
const (
	AutoLeftMargin   Capability = "bw"
	AutoRightMargin  Capability = "am"
	BackColorErase   Capability = "bce"
	EatNewlineGlitch Capability = "xenl"
	HasMetaKey       Capability = "km"
	MoveInsertMode   Capability = "mir"
	MoveStandoutMode Capability = "msgr"
	PrtrSilent       Capability = "mc5i"
	XonXoff          Capability = "xon"
)

// Numeric capabilities.
const (
	Columns      Capability = "cols"
	Lines        Capability = "lines"
	InitTabs     Capability = "it"
	MaxColors    Capability = "colors"
	MaxPairs     Capability = "pairs"
	NoColorVideo Capability = "ncv"
)

// String capabilities.
const (
	Bell               Capability = "bel"
	CarriageReturn     Capability = "cr"
	ClearScreen        Capability = "clear"
	ClrBol             Capability = "el1"
	ClrEol             Capability = "el"
	ClrEos             Capability = "ed"
	ColumnAddress      Capability = "hpa"
	CursorAddress      Capability = "cup"
	CursorDown         Capability = "cud1"
	CursorHome         Capability = "home"
	CursorInvisible    Capability = "civis"
	CursorLeft         Capability = "cub1"
	CursorNormal       Capability = "cnorm"
	CursorRight        Capability = "cuf1"
	CursorUp           Capability = "cuu1"
	DeleteCharacter    Capability = "dch1"
	DeleteLine         Capability = "dl1"
	EnterBoldMode      Capability = "bold"
	EnterReverseMode   Capability = "rev"
	EnterStandoutMode  Capability = "smso"
	EnterUnderlineMode Capability = "smul"
	EraseChars         Capability = "ech"
	ExitAttributeMode  Capability = "sgr0"
	ExitStandoutMode   Capability = "rmso"
	ExitUnderlineMode  Capability = "rmul"
	InsertLine         Capability = "il1"
	KeyBackspace       Capability = "kbs"
	KeyDown            Capability = "kcud1"
	KeyHome            Capability = "khome"
	KeyLeft            Capability = "kcub1"
	KeyRight           Capability = "kcuf1"
	KeyUp              Capability = "kcuu1"
	Newline            Capability = "nel"
	OrigPair           Capability = "op"
	ParmDch            Capability = "dch"
	ParmDownCursor     Capability = "cud"
	ParmLeftCursor     Capability = "cub"
	ParmRightCursor    Capability = "cuf"
	ParmUpCursor       Capability = "cuu"
	RowAddress         Capability = "vpa"
	ScrollForward      Capability = "ind"
	SetABackground     Capability = "setab"
	SetAForeground     Capability = "setaf"
	Tab                Capability = "ht"
	UserString7        Capability = "u7"
)

type capInfo struct {
	short Capability
	kind  Kind
}

// names maps both long and short names of every standard capability.
var names = func() map[string]capInfo {
	m := make(map[string]capInfo, 2*(terminfo.CapCountBool+terminfo.CapCountNum+terminfo.CapCountString))
	add := func(long, short string, k Kind) {
		info := capInfo{short: Capability(short), kind: k}
		m[short] = info
		m[long] = info
	}
	for i := 0; i < terminfo.CapCountBool; i++ {
		add(terminfo.BoolCapName(i), terminfo.BoolCapNameShort(i), KindBool)
	}
	for i := 0; i < terminfo.CapCountNum; i++ {
		add(terminfo.NumCapName(i), terminfo.NumCapNameShort(i), KindNum)
	}
	for i := 0; i < terminfo.CapCountString; i++ {
		add(terminfo.StringCapName(i), terminfo.StringCapNameShort(i), KindString)
	}
	return m
}()

// Lookup resolves a long ("cursor_address") or short ("cup") standard
// capability name.
func Lookup(name string) (Capability, bool) {
	info, ok := names[name]
	return info.short, ok
}

// KindOf returns the value type of a standard capability.
func KindOf(c Capability) Kind {
	return names[string(c)].kind
}
