// ABOUTME: Line-input lifecycle: one lazily built line reader per console, shared by all callers.
// ABOUTME: ReadLine forwards to it; OnInterrupt lets the reader borrow the INT disposition.

package console

import "github.com/mauromedda/ttyctl/pkg/linereader"

// LineReader returns the console's line reader, building it on first use.
// Concurrent first calls build exactly one reader.
func (c *Console) LineReader() *linereader.Reader {
	return c.reader()
}

// ReadLine reads one line of input. It returns an error matching
// linereader.ErrInterrupted when the user cancels and io.EOF when input
// ends with nothing typed.
func (c *Console) ReadLine(opts ...linereader.Option) (string, error) {
	return c.LineReader().ReadLine(opts...)
}

// OnInterrupt installs fn as the INT handler and returns a function that
// reinstates the disposition it replaced.
func (c *Console) OnInterrupt(fn func()) (restore func()) {
	prev := c.Handle(SigInt, CustomFunc(func(Signal) { fn() }))
	return func() { c.Handle(SigInt, prev) }
}
