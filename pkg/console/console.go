// ABOUTME: Console is the terminal control plane tying signals, modes, capabilities and line input together.
// ABOUTME: Construction resolves capabilities once; collaborators are injected through options.

package console

import (
	"io"
	"os"
	"sync"
	"sync/atomic"

	"github.com/mauromedda/ttyctl/internal/log"
	"github.com/mauromedda/ttyctl/pkg/caps"
	"github.com/mauromedda/ttyctl/pkg/linereader"
	"github.com/mauromedda/ttyctl/pkg/termios"
)

// DefaultAppName identifies the application to the line reader when
// WithAppName is not given.
const DefaultAppName = "ttyctl"

// Console mediates between an application and its controlling terminal.
// All methods are safe for concurrent use; attribute read-modify-write
// sequences are not atomic as a pair, so the last writer wins.
type Console struct {
	termType string
	appName  string
	inputrc  string
	vars     map[string]string

	in       io.Reader
	out      *syncWriter
	provider termios.Provider
	db       caps.Database

	defaultFn func(Signal)
	sigMu     sync.RWMutex
	// dispositions is indexed by Signal; slot 0 is unused.
	dispositions [SigWinch + 1]Disposition

	capset atomic.Pointer[caps.Set]

	reader func() *linereader.Reader
	pump   atomic.Bool
}

// Option configures a Console.
type Option func(*Console)

// WithType sets the terminal type used for capability resolution. The
// default is $TERM.
func WithType(term string) Option {
	return func(c *Console) { c.termType = term }
}

// WithAppName sets the application name passed to the line reader.
func WithAppName(name string) Option {
	return func(c *Console) { c.appName = name }
}

// WithInputrc sets the line-reader configuration file.
func WithInputrc(path string) Option {
	return func(c *Console) { c.inputrc = path }
}

// WithVariables sets line-reader variables. They take precedence over
// values from the inputrc file.
func WithVariables(vars map[string]string) Option {
	return func(c *Console) { c.vars = vars }
}

// WithInput sets the input stream. The default is os.Stdin.
func WithInput(r io.Reader) Option {
	return func(c *Console) { c.in = r }
}

// WithOutput sets the output sink. If w has a Flush() error method it is
// called by Flush. The default is os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(c *Console) {
		if w != nil {
			c.out = &syncWriter{w: w}
		}
	}
}

// WithProvider sets the attribute provider. The default is a
// termios.Device over stdin and stdout.
func WithProvider(p termios.Provider) Option {
	return func(c *Console) { c.provider = p }
}

// WithDatabase sets the capability database. The default searches the
// standard terminfo directories.
func WithDatabase(db caps.Database) Option {
	return func(c *Console) { c.db = db }
}

// WithDefaultFunc replaces the strategy Raise applies to signals whose
// disposition is Default.
func WithDefaultFunc(fn func(Signal)) Option {
	return func(c *Console) { c.defaultFn = fn }
}

// New returns a Console with every signal set to Default and capabilities
// resolved for the configured terminal type.
func New(opts ...Option) *Console {
	c := &Console{
		termType: os.Getenv("TERM"),
		appName:  DefaultAppName,
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.in == nil {
		c.in = os.Stdin
	}
	if c.out == nil {
		c.out = &syncWriter{w: os.Stdout}
	}
	if c.provider == nil {
		c.provider = termios.Stdio()
	}
	if c.db == nil {
		c.db = caps.NewDirDatabase()
	}
	if c.defaultFn == nil {
		c.defaultFn = c.defaultSignal
	}
	for _, sig := range Signals() {
		c.dispositions[sig] = Default
	}

	c.ResolveCapabilities()
	c.reader = sync.OnceValue(func() *linereader.Reader {
		log.Debug("console: creating line reader for %s", c.appName)
		return linereader.New(c, c.appName, c.inputrc, c.vars)
	})
	return c
}

// Type returns the terminal type fixed at construction. It may be empty.
func (c *Console) Type() string { return c.termType }

// AppName returns the application name given to the line reader.
func (c *Console) AppName() string { return c.appName }

// Input returns the input stream.
func (c *Console) Input() io.Reader { return c.in }

// Output returns the output sink. Writes through it are serialized with
// capability output and signal echoes.
func (c *Console) Output() io.Writer { return c.out }

// Flush flushes the output sink if it buffers.
func (c *Console) Flush() error {
	return c.out.Flush()
}

// Size returns the terminal dimensions from the provider when it can
// report them, otherwise from the cols and lines capabilities.
func (c *Console) Size() (width, height int) {
	if s, ok := c.provider.(termios.Sizer); ok {
		if w, h, err := s.Size(); err == nil && w > 0 && h > 0 {
			return w, h
		}
	}
	width, height = 80, 24
	if v, ok := c.NumericCapability(caps.Columns); ok && v > 0 {
		width = v
	}
	if v, ok := c.NumericCapability(caps.Lines); ok && v > 0 {
		height = v
	}
	return width, height
}

// Width returns the terminal width in columns.
func (c *Console) Width() int {
	w, _ := c.Size()
	return w
}

// defaultSignal is the built-in default strategy. Keyboard signals are
// handed back to the operating system only while the OS signal pump runs;
// otherwise every signal is a no-op.
func (c *Console) defaultSignal(sig Signal) {
	switch sig {
	case SigInt, SigQuit, SigTstp:
		if c.pump.Load() {
			c.redeliver(sig)
			return
		}
	}
	log.Debug("console: default disposition for %s", sig)
}

type flusher interface {
	Flush() error
}

// syncWriter serializes writes from the caller, the signal pump and the
// line reader.
type syncWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (s *syncWriter) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Write(p)
}

func (s *syncWriter) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if f, ok := s.w.(flusher); ok {
		return f.Flush()
	}
	return nil
}
