// ABOUTME: Terminal mode transitions over attribute snapshots: raw mode, echo and signal echo.
// ABOUTME: Every change reads, copies, mutates the copy and applies it; callers restore snapshots.

package console

import (
	"errors"
	"fmt"

	"github.com/mauromedda/ttyctl/pkg/termios"
)

// ErrOutput marks a failure writing to the terminal output channel. The
// channel should be treated as unusable afterwards.
var ErrOutput = errors.New("console: terminal output failed")

// Attributes returns the current terminal attributes.
func (c *Console) Attributes() (termios.Attributes, error) {
	a, err := c.provider.GetAttributes()
	if err != nil {
		return termios.Attributes{}, fmt.Errorf("console: get attributes: %w", err)
	}
	return a, nil
}

// SetAttributes applies a, typically a snapshot returned by EnterRawMode.
func (c *Console) SetAttributes(a termios.Attributes) error {
	if err := c.provider.SetAttributes(a); err != nil {
		return fmt.Errorf("console: set attributes: %w", err)
	}
	return nil
}

// EnterRawMode disables canonical input, echo and input translation, sets
// VMIN=1 and VTIME=0, and returns the attributes in effect before the
// call. Restoring them is the caller's job.
func (c *Console) EnterRawMode() (termios.Attributes, error) {
	prev, err := c.Attributes()
	if err != nil {
		return termios.Attributes{}, err
	}

	raw := prev
	raw.SetLocalFlag(termios.ICANON|termios.ECHO, false)
	raw.SetInputFlag(termios.IXON|termios.ICRNL|termios.INLCR, false)
	raw.SetControlChar(termios.VMIN, 1)
	raw.SetControlChar(termios.VTIME, 0)

	if err := c.SetAttributes(raw); err != nil {
		return termios.Attributes{}, err
	}
	return prev, nil
}

// WithRawMode runs fn in raw mode and restores the previous attributes on
// every exit path, including a panic in fn.
func (c *Console) WithRawMode(fn func() error) (err error) {
	saved, err := c.EnterRawMode()
	if err != nil {
		return err
	}
	defer termios.RestoreOnPanic(c.provider, saved)

	fnErr := fn()
	if rerr := c.SetAttributes(saved); rerr != nil {
		return errors.Join(fnErr, rerr)
	}
	return fnErr
}

// Echo reports whether local echo is enabled.
func (c *Console) Echo() (bool, error) {
	a, err := c.Attributes()
	if err != nil {
		return false, err
	}
	return a.LocalFlag(termios.ECHO), nil
}

// SetEcho turns local echo on or off and returns the previous setting.
// Attributes are only written when the setting changes.
func (c *Console) SetEcho(on bool) (bool, error) {
	a, err := c.Attributes()
	if err != nil {
		return false, err
	}

	prev := a.LocalFlag(termios.ECHO)
	if prev == on {
		return prev, nil
	}
	a.SetLocalFlag(termios.ECHO, on)
	if err := c.SetAttributes(a); err != nil {
		return prev, err
	}
	return prev, nil
}

var signalChars = map[Signal]termios.ControlChar{
	SigInt:  termios.VINTR,
	SigQuit: termios.VQUIT,
	SigTstp: termios.VSUSP,
}

// EchoSignal writes the caret form (^C, ^\, ^Z) of the control character
// bound to INT, QUIT or TSTP. Other signals, and control characters outside
// 1..31, produce no output.
func (c *Console) EchoSignal(sig Signal) error {
	mustValid(sig)

	cc, ok := signalChars[sig]
	if !ok {
		return nil
	}
	a, err := c.Attributes()
	if err != nil {
		return err
	}

	v := a.ControlChar(cc)
	if v == 0 || v >= 32 {
		return nil
	}
	if _, err := c.out.Write([]byte{'^', v + '@'}); err != nil {
		return fmt.Errorf("%w: echoing %s: %w", ErrOutput, sig, err)
	}
	if err := c.Flush(); err != nil {
		return fmt.Errorf("%w: flushing: %w", ErrOutput, err)
	}
	return nil
}

// EchoInterrupt echoes the interrupt character.
func (c *Console) EchoInterrupt() error {
	return c.EchoSignal(SigInt)
}
