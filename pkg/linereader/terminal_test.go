// ABOUTME: In-memory Terminal used by the line reader tests
// ABOUTME: ANSI capabilities, virtual attributes, captured output and a triggerable interrupt

package linereader

import (
	"bytes"
	"io"
	"strings"
	"sync"

	"github.com/mauromedda/ttyctl/pkg/caps"
	"github.com/mauromedda/ttyctl/pkg/termios"
)

type fakeTerminal struct {
	in    io.Reader
	attrs *termios.Virtual
	set   *caps.Set
	width int

	mu      sync.Mutex
	out     bytes.Buffer
	intr    func()
	echoed  int
	flushes int
}

func newFakeTerminal(input string) *fakeTerminal {
	return newFakeTerminalReader(strings.NewReader(input))
}

func newFakeTerminalReader(in io.Reader) *fakeTerminal {
	return &fakeTerminal{
		in:    in,
		attrs: termios.NewVirtual(80, 24),
		set:   caps.ANSI(),
		width: 80,
	}
}

func (f *fakeTerminal) Input() io.Reader  { return f.in }
func (f *fakeTerminal) Output() io.Writer { return f }
func (f *fakeTerminal) Width() int        { return f.width }

func (f *fakeTerminal) Write(p []byte) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.out.Write(p)
}

func (f *fakeTerminal) Flush() error {
	f.mu.Lock()
	f.flushes++
	f.mu.Unlock()
	return nil
}

func (f *fakeTerminal) output() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.out.String()
}

func (f *fakeTerminal) EnterRawMode() (termios.Attributes, error) {
	prev, err := f.attrs.GetAttributes()
	if err != nil {
		return termios.Attributes{}, err
	}
	raw := prev
	raw.SetLocalFlag(termios.ICANON|termios.ECHO, false)
	if err := f.attrs.SetAttributes(raw); err != nil {
		return termios.Attributes{}, err
	}
	return prev, nil
}

func (f *fakeTerminal) SetAttributes(a termios.Attributes) error {
	return f.attrs.SetAttributes(a)
}

func (f *fakeTerminal) Puts(id caps.Capability, params ...any) (bool, error) {
	s, ok := f.set.String(id)
	if !ok {
		return false, nil
	}
	return true, caps.Tputs(f, s, params...)
}

func (f *fakeTerminal) OnInterrupt(fn func()) func() {
	f.mu.Lock()
	prev := f.intr
	f.intr = fn
	f.mu.Unlock()
	return func() {
		f.mu.Lock()
		f.intr = prev
		f.mu.Unlock()
	}
}

// interrupt runs the installed handler and reports whether one was set.
func (f *fakeTerminal) interrupt() bool {
	f.mu.Lock()
	fn := f.intr
	f.mu.Unlock()
	if fn == nil {
		return false
	}
	fn()
	return true
}

func (f *fakeTerminal) EchoInterrupt() error {
	f.mu.Lock()
	f.echoed++
	f.mu.Unlock()
	_, err := f.Write([]byte("^C"))
	return err
}
