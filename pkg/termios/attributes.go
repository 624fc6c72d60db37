// ABOUTME: Attributes is a copyable snapshot of terminal line settings (flag groups + control chars).
// ABOUTME: Platform-neutral flag bits; the device layer maps them onto the host termios struct.

package termios

import (
	"fmt"
	"strings"
)

// InputFlag is a set of input-mode bits (c_iflag).
type InputFlag uint32

// Input flags.
const (
	IGNBRK  InputFlag = 1 << iota // ignore BREAK condition
	BRKINT                        // map BREAK to SIGINT
	IGNPAR                        // ignore parity errors
	PARMRK                        // mark parity and framing errors
	INPCK                         // enable input parity check
	ISTRIP                        // strip 8th bit off chars
	INLCR                         // map NL into CR
	IGNCR                         // ignore CR
	ICRNL                         // map CR to NL
	IXON                          // enable output flow control
	IXOFF                         // enable input flow control
	IXANY                         // any char restarts output
	IMAXBEL                       // ring bell on input queue full
	IUTF8                         // input is UTF-8
)

// OutputFlag is a set of output-mode bits (c_oflag).
type OutputFlag uint32

// Output flags.
const (
	OPOST  OutputFlag = 1 << iota // enable output processing
	ONLCR                         // map NL to CR-NL
	OCRNL                         // map CR to NL
	ONOCR                         // no CR output at column 0
	ONLRET                        // NL performs CR function
	OFILL                         // use fill characters for delay
	OFDEL                         // fill is DEL
)

// ControlFlag is a set of control-mode bits (c_cflag).
type ControlFlag uint32

// Control flags. Character size is not modelled and is preserved as-is.
const (
	CSTOPB ControlFlag = 1 << iota // two stop bits
	CREAD                          // enable receiver
	PARENB                         // parity enable
	PARODD                         // odd parity
	HUPCL                          // hang up on last close
	CLOCAL                         // ignore modem status lines
)

// LocalFlag is a set of local-mode bits (c_lflag).
type LocalFlag uint32

// Local flags.
const (
	ECHOKE  LocalFlag = 1 << iota // visual erase for line kill
	ECHOE                         // visually erase chars
	ECHOK                         // echo NL after line kill
	ECHO                          // enable echoing
	ECHONL                        // echo NL even if ECHO is off
	ECHOPRT                       // visual erase mode for hardcopy
	ECHOCTL                       // echo control chars as ^X
	ISIG                          // enable INTR, QUIT, SUSP signals
	ICANON                        // canonical input
	IEXTEN                        // enable DISCARD and LNEXT
	EXTPROC                       // external processing
	TOSTOP                        // stop background jobs on output
	FLUSHO                        // output being flushed
	PENDIN                        // retype pending input
	NOFLSH                        // no flush after interrupt
)

// ControlChar indexes Attributes.Chars.
type ControlChar int

// Control character indices.
const (
	VEOF ControlChar = iota
	VEOL
	VEOL2
	VERASE
	VWERASE
	VKILL
	VREPRINT
	VINTR
	VQUIT
	VSUSP
	VSTART
	VSTOP
	VLNEXT
	VDISCARD
	VMIN
	VTIME
	NCCS // number of control characters
)

var (
	inputNames   = []string{"IGNBRK", "BRKINT", "IGNPAR", "PARMRK", "INPCK", "ISTRIP", "INLCR", "IGNCR", "ICRNL", "IXON", "IXOFF", "IXANY", "IMAXBEL", "IUTF8"}
	outputNames  = []string{"OPOST", "ONLCR", "OCRNL", "ONOCR", "ONLRET", "OFILL", "OFDEL"}
	controlNames = []string{"CSTOPB", "CREAD", "PARENB", "PARODD", "HUPCL", "CLOCAL"}
	localNames   = []string{"ECHOKE", "ECHOE", "ECHOK", "ECHO", "ECHONL", "ECHOPRT", "ECHOCTL", "ISIG", "ICANON", "IEXTEN", "EXTPROC", "TOSTOP", "FLUSHO", "PENDIN", "NOFLSH"}
	charNames    = []string{"VEOF", "VEOL", "VEOL2", "VERASE", "VWERASE", "VKILL", "VREPRINT", "VINTR", "VQUIT", "VSUSP", "VSTART", "VSTOP", "VLNEXT", "VDISCARD", "VMIN", "VTIME"}
)

func flagString[F ~uint32](f F, names []string) string {
	if f == 0 {
		return "0"
	}
	var parts []string
	for i, name := range names {
		if f&(1<<i) != 0 {
			parts = append(parts, name)
		}
	}
	return strings.Join(parts, "|")
}

func (f InputFlag) String() string   { return flagString(f, inputNames) }
func (f OutputFlag) String() string  { return flagString(f, outputNames) }
func (f ControlFlag) String() string { return flagString(f, controlNames) }
func (f LocalFlag) String() string   { return flagString(f, localNames) }

func (c ControlChar) String() string {
	if c < 0 || c >= NCCS {
		return fmt.Sprintf("ControlChar(%d)", int(c))
	}
	return charNames[c]
}

// Attributes is a value snapshot of terminal settings. Copies never alias:
// assigning an Attributes copies its control-character array too.
type Attributes struct {
	Input   InputFlag
	Output  OutputFlag
	Control ControlFlag
	Local   LocalFlag
	Chars   [NCCS]byte
}

func setBits[F ~uint32](v *F, f F, on bool) {
	if on {
		*v |= f
	} else {
		*v &^= f
	}
}

// InputFlag reports whether all bits of f are set.
func (a Attributes) InputFlag(f InputFlag) bool { return a.Input&f == f }

// SetInputFlag sets or clears the bits of f.
func (a *Attributes) SetInputFlag(f InputFlag, on bool) { setBits(&a.Input, f, on) }

// OutputFlag reports whether all bits of f are set.
func (a Attributes) OutputFlag(f OutputFlag) bool { return a.Output&f == f }

// SetOutputFlag sets or clears the bits of f.
func (a *Attributes) SetOutputFlag(f OutputFlag, on bool) { setBits(&a.Output, f, on) }

// ControlFlag reports whether all bits of f are set.
func (a Attributes) ControlFlag(f ControlFlag) bool { return a.Control&f == f }

// SetControlFlag sets or clears the bits of f.
func (a *Attributes) SetControlFlag(f ControlFlag, on bool) { setBits(&a.Control, f, on) }

// LocalFlag reports whether all bits of f are set.
func (a Attributes) LocalFlag(f LocalFlag) bool { return a.Local&f == f }

// SetLocalFlag sets or clears the bits of f.
func (a *Attributes) SetLocalFlag(f LocalFlag, on bool) { setBits(&a.Local, f, on) }

// ControlChar returns the value bound to idx, or 0 for an out-of-range index.
func (a Attributes) ControlChar(idx ControlChar) byte {
	if idx < 0 || idx >= NCCS {
		return 0
	}
	return a.Chars[idx]
}

// SetControlChar binds v to idx. Out-of-range indices are ignored.
func (a *Attributes) SetControlChar(idx ControlChar, v byte) {
	if idx < 0 || idx >= NCCS {
		return
	}
	a.Chars[idx] = v
}

// String returns a debugging representation of the snapshot.
func (a Attributes) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "input=%s output=%s control=%s local=%s chars=[", a.Input, a.Output, a.Control, a.Local)
	for i, v := range a.Chars {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%s=%d", ControlChar(i), v)
	}
	b.WriteByte(']')
	return b.String()
}

// Cooked returns the settings of a freshly opened interactive terminal:
// canonical input with echo and signal generation, ^C/^\/^Z bound to
// INTR/QUIT/SUSP.
func Cooked() Attributes {
	a := Attributes{
		Input:   BRKINT | ICRNL | IXON | IXANY | IMAXBEL | IUTF8,
		Output:  OPOST | ONLCR,
		Control: CREAD | HUPCL,
		Local:   ECHOKE | ECHOE | ECHOK | ECHO | ECHOCTL | ISIG | ICANON | IEXTEN,
	}
	a.Chars[VEOF] = 0x04
	a.Chars[VERASE] = 0x7f
	a.Chars[VWERASE] = 0x17
	a.Chars[VKILL] = 0x15
	a.Chars[VREPRINT] = 0x12
	a.Chars[VINTR] = 0x03
	a.Chars[VQUIT] = 0x1c
	a.Chars[VSUSP] = 0x1a
	a.Chars[VSTART] = 0x11
	a.Chars[VSTOP] = 0x13
	a.Chars[VLNEXT] = 0x16
	a.Chars[VDISCARD] = 0x0f
	a.Chars[VMIN] = 1
	a.Chars[VTIME] = 0
	return a
}
