// ABOUTME: Terminal is what the line reader needs from its console.
// ABOUTME: Raw-mode entry and restore, capability output, width and a borrowed interrupt handler.

package linereader

import (
	"io"

	"github.com/mauromedda/ttyctl/pkg/caps"
	"github.com/mauromedda/ttyctl/pkg/termios"
)

// Terminal is the console surface the reader drives.
type Terminal interface {
	Input() io.Reader
	Output() io.Writer
	Flush() error
	// Width returns the terminal width in columns.
	Width() int

	// EnterRawMode returns the attributes to restore afterwards.
	EnterRawMode() (termios.Attributes, error)
	SetAttributes(termios.Attributes) error

	// Puts writes string capability id; false means the terminal lacks it.
	Puts(id caps.Capability, params ...any) (bool, error)

	// OnInterrupt routes the interrupt signal to fn until restore is called.
	OnInterrupt(fn func()) (restore func())
	// EchoInterrupt echoes the interrupt character (^C).
	EchoInterrupt() error
}
