// ABOUTME: Device implements Provider on a real terminal file descriptor.
// ABOUTME: Size and terminal detection go through golang.org/x/term.

package termios

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// Device is a terminal backed by an input and an output file. Attributes are
// read from and written to the input descriptor. Device never closes the
// files it was given.
type Device struct {
	in  *os.File
	out *os.File
}

// NewDevice returns a Device over in and out. If out is nil, in is used for
// both directions.
func NewDevice(in, out *os.File) *Device {
	if out == nil {
		out = in
	}
	return &Device{in: in, out: out}
}

// Stdio returns a Device over os.Stdin and os.Stdout.
func Stdio() *Device {
	return NewDevice(os.Stdin, os.Stdout)
}

// In returns the input file.
func (d *Device) In() *os.File { return d.in }

// Out returns the output file.
func (d *Device) Out() *os.File { return d.out }

// GetAttributes reads the current attributes of the input descriptor.
func (d *Device) GetAttributes() (Attributes, error) {
	a, err := getAttributes(int(d.in.Fd()))
	if err != nil {
		return Attributes{}, fmt.Errorf("reading terminal attributes: %w", err)
	}
	return a, nil
}

// SetAttributes applies a immediately. Host bits that Attributes does not
// model (character size, line speed, ...) keep their current values.
func (d *Device) SetAttributes(a Attributes) error {
	if err := setAttributes(int(d.in.Fd()), a); err != nil {
		return fmt.Errorf("writing terminal attributes: %w", err)
	}
	return nil
}

// Size returns the current terminal dimensions of the output descriptor.
func (d *Device) Size() (width, height int, err error) {
	w, h, err := term.GetSize(int(d.out.Fd()))
	if err != nil {
		return 0, 0, fmt.Errorf("getting terminal size: %w", err)
	}
	return w, h, nil
}

// IsTerminal reports whether the input descriptor is a terminal.
func (d *Device) IsTerminal() bool {
	return term.IsTerminal(int(d.in.Fd()))
}
