// ABOUTME: Defines the Provider interface for atomic get/set of terminal attributes.
// ABOUTME: Implemented by Device (real file descriptor) and Virtual (in-memory fake).

package termios

import "errors"

// ErrUnsupported is returned by Device on platforms without termios support.
var ErrUnsupported = errors.New("termios: not supported on this platform")

// Provider reads and writes terminal attributes. Each call is atomic on its
// own; a get followed by a set is not.
type Provider interface {
	GetAttributes() (Attributes, error)
	SetAttributes(Attributes) error
}

// Sizer is implemented by providers that can report the terminal size.
type Sizer interface {
	Size() (width, height int, err error)
}
