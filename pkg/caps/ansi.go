// ABOUTME: Built-in description of a generic ANSI/VT100-compatible terminal.
// ABOUTME: Used when the terminal type is unknown or its compiled description is missing.

package caps

import "sync"

// ANSIName is the terminal name reported by the built-in description.
const ANSIName = "ansi"

var ansiSet = sync.OnceValue(func() *Set {
	return NewSet(ANSIName,
		[]Capability{AutoRightMargin, MoveInsertMode, MoveStandoutMode, PrtrSilent},
		map[Capability]int{
			MaxColors: 8,
			Columns:   80,
			InitTabs:  8,
			Lines:     24,
			MaxPairs:  64,
		},
		map[Capability]string{
			Bell:               "\a",
			"blink":            "\x1b[5m",
			EnterBoldMode:      "\x1b[1m",
			"cbt":              "\x1b[Z",
			ClearScreen:        "\x1b[H\x1b[J",
			CarriageReturn:     "\r",
			ParmLeftCursor:     "\x1b[%p1%dD",
			CursorLeft:         "\b",
			ParmDownCursor:     "\x1b[%p1%dB",
			CursorDown:         "\n",
			ParmRightCursor:    "\x1b[%p1%dC",
			CursorRight:        "\x1b[C",
			CursorAddress:      "\x1b[%i%p1%d;%p2%dH",
			ParmUpCursor:       "\x1b[%p1%dA",
			CursorUp:           "\x1b[A",
			ParmDch:            "\x1b[%p1%dP",
			DeleteCharacter:    "\x1b[P",
			"dl":               "\x1b[%p1%dM",
			DeleteLine:         "\x1b[M",
			EraseChars:         "\x1b[%p1%dX",
			ClrEos:             "\x1b[J",
			ClrEol:             "\x1b[K",
			ClrBol:             "\x1b[1K",
			CursorHome:         "\x1b[H",
			ColumnAddress:      "\x1b[%i%p1%dG",
			Tab:                "\t",
			"hts":              "\x1bH",
			"ich":              "\x1b[%p1%d@",
			"il":               "\x1b[%p1%dL",
			InsertLine:         "\x1b[L",
			ScrollForward:      "\n",
			"indn":             "\x1b[%p1%dS",
			"invis":            "\x1b[8m",
			KeyBackspace:       "\b",
			"kcbt":             "\x1b[Z",
			KeyLeft:            "\x1b[D",
			KeyDown:            "\x1b[B",
			KeyRight:           "\x1b[C",
			KeyUp:              "\x1b[A",
			KeyHome:            "\x1b[H",
			"kich1":            "\x1b[L",
			OrigPair:           "\x1b[39;49m",
			EnterReverseMode:   "\x1b[7m",
			"rin":              "\x1b[%p1%dT",
			ExitStandoutMode:   "\x1b[m",
			ExitUnderlineMode:  "\x1b[m",
			SetABackground:     "\x1b[4%p1%dm",
			SetAForeground:     "\x1b[3%p1%dm",
			ExitAttributeMode:  "\x1b[0;10m",
			EnterStandoutMode:  "\x1b[7m",
			EnterUnderlineMode: "\x1b[4m",
			"tbc":              "\x1b[3g",
			UserString7:        "\x1b[6n",
			RowAddress:         "\x1b[%i%p1%dd",
		},
	)
})

// ANSI returns the built-in description. The same Set is returned on every
// call.
func ANSI() *Set {
	return ansiSet()
}
