// ABOUTME: Signal registry: the closed signal set, dispositions and synchronous dispatch.
// ABOUTME: Handle swaps a disposition; Raise runs the default strategy or the custom handler inline.

package console

import (
	"errors"
	"fmt"
)

// Signal is a terminal-related signal the console can dispatch.
type Signal int

const (
	SigInt Signal = iota + 1
	SigQuit
	SigTstp
	SigCont
	SigInfo
	SigWinch
)

var signalNames = [...]string{
	SigInt:   "INT",
	SigQuit:  "QUIT",
	SigTstp:  "TSTP",
	SigCont:  "CONT",
	SigInfo:  "INFO",
	SigWinch: "WINCH",
}

// Signals returns every member of the signal set in declaration order.
func Signals() []Signal {
	return []Signal{SigInt, SigQuit, SigTstp, SigCont, SigInfo, SigWinch}
}

// Valid reports whether s is a member of the signal set.
func (s Signal) Valid() bool {
	return s >= SigInt && s <= SigWinch
}

func (s Signal) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Signal(%d)", int(s))
	}
	return signalNames[s]
}

// Handler receives signals raised under a Custom disposition.
type Handler interface {
	Handle(sig Signal)
}

// HandlerFunc adapts a function to Handler.
type HandlerFunc func(sig Signal)

// Handle calls f(sig).
func (f HandlerFunc) Handle(sig Signal) { f(sig) }

type dispositionKind uint8

const (
	kindInvalid dispositionKind = iota
	kindDefault
	kindIgnore
	kindCustom
)

// Disposition says what Raise does with a signal: run the default strategy,
// ignore it, or call a custom handler. The zero value is not a valid
// disposition and is rejected by Handle.
type Disposition struct {
	kind    dispositionKind
	handler Handler
}

var (
	// Default runs the console's default strategy for the signal.
	Default = Disposition{kind: kindDefault}
	// Ignore discards the signal.
	Ignore = Disposition{kind: kindIgnore}
)

// Custom returns a disposition that calls h. A nil h yields the invalid
// zero disposition.
func Custom(h Handler) Disposition {
	if h == nil {
		return Disposition{}
	}
	return Disposition{kind: kindCustom, handler: h}
}

// CustomFunc returns a disposition that calls fn.
func CustomFunc(fn func(Signal)) Disposition {
	if fn == nil {
		return Disposition{}
	}
	return Custom(HandlerFunc(fn))
}

// Valid reports whether d is one of Default, Ignore or a Custom handler.
func (d Disposition) Valid() bool {
	return d.kind != kindInvalid
}

// IsDefault reports whether d is Default.
func (d Disposition) IsDefault() bool { return d.kind == kindDefault }

// IsIgnore reports whether d is Ignore.
func (d Disposition) IsIgnore() bool { return d.kind == kindIgnore }

// Handler returns the custom handler, or nil for Default and Ignore.
func (d Disposition) Handler() Handler {
	return d.handler
}

func (d Disposition) String() string {
	switch d.kind {
	case kindDefault:
		return "default"
	case kindIgnore:
		return "ignore"
	case kindCustom:
		return "custom"
	default:
		return "invalid"
	}
}

func mustValid(sig Signal) {
	if !sig.Valid() {
		panic(fmt.Sprintf("console: invalid signal %d", int(sig)))
	}
}

// Handle installs d for sig and returns the disposition it replaces.
// It panics if sig is not in the signal set or d is the zero Disposition.
func (c *Console) Handle(sig Signal, d Disposition) Disposition {
	mustValid(sig)
	if !d.Valid() {
		panic(fmt.Sprintf("console: invalid disposition for %s", sig))
	}

	c.sigMu.Lock()
	defer c.sigMu.Unlock()

	prev := c.dispositions[sig]
	c.dispositions[sig] = d
	return prev
}

// Disposition returns the disposition currently installed for sig.
func (c *Console) Disposition(sig Signal) Disposition {
	mustValid(sig)

	c.sigMu.RLock()
	defer c.sigMu.RUnlock()

	return c.dispositions[sig]
}

// Raise dispatches sig according to its disposition. Custom handlers run
// synchronously on the calling goroutine, outside the registry lock, so a
// handler may call Handle or Raise itself.
func (c *Console) Raise(sig Signal) {
	d := c.Disposition(sig)

	switch d.kind {
	case kindDefault:
		c.defaultFn(sig)
	case kindCustom:
		d.handler.Handle(sig)
	}
}

// ErrNotifyRunning is returned by Notify when a signal pump is already
// running for the console.
var ErrNotifyRunning = errors.New("console: signal pump already running")
