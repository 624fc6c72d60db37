// ABOUTME: Reader is the interactive line reader: raw-mode reads with emacs-style editing
// ABOUTME: One input pump per reader feeds key decoding; reads are serialized

package linereader

import (
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/muesli/cancelreader"
	"golang.org/x/text/unicode/norm"

	"github.com/mauromedda/ttyctl/internal/config"
	"github.com/mauromedda/ttyctl/internal/log"
	"github.com/mauromedda/ttyctl/pkg/caps"
	"github.com/mauromedda/ttyctl/pkg/linereader/internal/killring"
	"github.com/mauromedda/ttyctl/pkg/linereader/key"
)

// Reader reads edited lines from a Terminal.
type Reader struct {
	term    Terminal
	appName string
	keys    *config.Keybindings
	vars    variables
	history *History
	ring    *killring.Ring

	mu        sync.Mutex
	completer Completer

	// readMu serializes ReadLine; the fields below it belong to the
	// goroutine holding it.
	readMu  sync.Mutex
	dec     key.Decoder
	pending []key.Key
	eof     bool

	startOnce sync.Once
	cancel    func() bool
	chunks    chan []byte
	inputErr  error

	intr      chan struct{}
	done      chan struct{}
	closeOnce sync.Once
}

// New builds a reader for term. Key bindings and variables are read from the
// inputrc file at path (section appName), then overridden by vars. Problems
// with the inputrc file are logged and otherwise ignored.
func New(term Terminal, appName, inputrc string, vars map[string]string) *Reader {
	rc, err := config.LoadInputrc(inputrc)
	if err != nil {
		log.Warn("linereader: %v", err)
		rc = &config.Inputrc{}
	}
	section := rc.For(appName)

	keys := config.NewKeybindings()
	if err := keys.Apply(section.Bindings); err != nil {
		log.Warn("linereader: inputrc %s: %v", inputrc, err)
	}

	v := parseVariables(section.Variables, vars)
	r := &Reader{
		term:    term,
		appName: appName,
		keys:    keys,
		vars:    v,
		history: NewHistory(v.historySize),
		ring:    killring.New(killring.DefaultSize),
		chunks:  make(chan []byte),
		intr:    make(chan struct{}, 1),
		done:    make(chan struct{}),
	}
	if v.historyFile != "" {
		if err := r.history.Load(v.historyFile); err != nil {
			log.Warn("linereader: %v", err)
		}
	}
	return r
}

// AppName returns the application name used to select inputrc settings.
func (r *Reader) AppName() string {
	return r.appName
}

// History returns the reader's history.
func (r *Reader) History() *History {
	return r.history
}

// Keybindings returns the active key bindings.
func (r *Reader) Keybindings() *config.Keybindings {
	return r.keys
}

// SetCompleter installs c for the complete action; nil disables completion.
func (r *Reader) SetCompleter(c Completer) {
	r.mu.Lock()
	r.completer = c
	r.mu.Unlock()
}

func (r *Reader) getCompleter() Completer {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.completer
}

// Close stops the input pump. A read in progress returns io.EOF, as do all
// later reads.
func (r *Reader) Close() error {
	r.closeOnce.Do(func() {
		close(r.done)
		r.mu.Lock()
		cancel := r.cancel
		r.mu.Unlock()
		if cancel != nil {
			cancel()
		}
	})
	return nil
}

func (r *Reader) closed() bool {
	select {
	case <-r.done:
		return true
	default:
		return false
	}
}

func (r *Reader) start() {
	r.startOnce.Do(func() {
		var src io.Reader = r.term.Input()
		cr, err := cancelreader.NewReader(src)
		if err != nil {
			log.Debug("linereader: input is not cancelable: %v", err)
		} else {
			src = cr
			r.mu.Lock()
			r.cancel = cr.Cancel
			r.mu.Unlock()
		}
		go r.pump(src)
	})
}

func (r *Reader) pump(src io.Reader) {
	defer close(r.chunks)
	buf := make([]byte, 256)
	for {
		n, err := src.Read(buf)
		if n > 0 {
			data := append([]byte(nil), buf[:n]...)
			select {
			case r.chunks <- data:
			case <-r.done:
				return
			}
		}
		if err != nil {
			r.inputErr = err
			return
		}
	}
}

func (r *Reader) notifyInterrupt() {
	select {
	case r.intr <- struct{}{}:
	default:
	}
}

// ReadLine reads one edited line. It returns an *InterruptError (matching
// ErrInterrupted) when the user interrupts, and io.EOF when input ends or
// ctrl+d is pressed on an empty line. Input ending after some text returns
// that text.
func (r *Reader) ReadLine(opts ...Option) (string, error) {
	r.readMu.Lock()
	defer r.readMu.Unlock()

	if r.closed() {
		return "", io.EOF
	}
	var o readOptions
	for _, opt := range opts {
		opt(&o)
	}
	r.start()

	saved, err := r.term.EnterRawMode()
	if err != nil {
		log.Debug("linereader: raw mode unavailable: %v", err)
	} else {
		defer func() {
			if err := r.term.SetAttributes(saved); err != nil {
				log.Warn("linereader: restoring terminal: %v", err)
			}
		}()
	}

	for len(r.intr) > 0 {
		<-r.intr
	}
	restore := r.term.OnInterrupt(r.notifyInterrupt)
	defer restore()

	r.history.reset()
	s := &session{
		r:    r,
		ed:   newEditor(r.ring, o.buffer),
		disp: newDisplay(r.term, o),
		opts: o,
	}
	if err := s.disp.render(s.ed.text, s.ed.cursor); err != nil {
		return "", err
	}

	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()
	for {
		for len(r.pending) > 0 {
			k := r.pending[0]
			r.pending = r.pending[1:]
			if line, done, err := s.handle(k); done {
				return line, err
			}
		}
		if r.eof {
			return s.endOfInput()
		}

		var timeout <-chan time.Time
		if r.dec.Pending() {
			if timer == nil {
				timer = time.NewTimer(key.EscTimeout)
			} else {
				timer.Reset(key.EscTimeout)
			}
			timeout = timer.C
		}

		select {
		case <-r.intr:
			return s.interrupt()
		case <-r.done:
			_ = s.disp.finish(s.ed.text)
			return "", io.EOF
		case data, ok := <-r.chunks:
			if !ok {
				r.eof = true
				r.pending = append(r.pending, r.dec.Flush()...)
				continue
			}
			r.pending = append(r.pending, r.dec.Feed(data)...)
		case <-timeout:
			r.pending = append(r.pending, r.dec.Flush()...)
		}
	}
}

// session is the state of one ReadLine call.
type session struct {
	r    *Reader
	ed   *editor
	disp *display
	opts readOptions
	last config.Action
}

func isKill(a config.Action) bool {
	switch a {
	case config.ActionKillLine, config.ActionUnixLineDiscard, config.ActionUnixWordRubout, config.ActionKillWord:
		return true
	}
	return false
}

// handle applies k. done reports that the read is over with line and err.
func (s *session) handle(k key.Key) (line string, done bool, err error) {
	action, bound := s.r.keys.Resolve(k.Name())
	if !bound {
		if k.Type == key.KeyRune && !k.Alt && !k.Ctrl {
			s.ed.insert(k.Rune)
		} else {
			s.bell()
		}
		s.last = ""
		s.ed.yanked = 0
		if err := s.redraw(); err != nil {
			return "", true, err
		}
		return "", false, nil
	}

	merge := isKill(s.last)
	if action != config.ActionYank && action != config.ActionYankPop {
		s.ed.yanked = 0
	}
	ok := true
	switch action {
	case config.ActionAcceptLine:
		line, err := s.accept()
		return line, true, err
	case config.ActionInterrupt:
		line, err := s.interrupt()
		return line, true, err
	case config.ActionDeleteCharOrEOF:
		if s.ed.empty() {
			if err := s.disp.finish(nil); err != nil {
				return "", true, err
			}
			return "", true, io.EOF
		}
		ok = s.ed.deleteChar()
	case config.ActionBeginningOfLine:
		s.ed.home()
	case config.ActionEndOfLine:
		s.ed.end()
	case config.ActionBackwardChar:
		ok = s.ed.left()
	case config.ActionForwardChar:
		ok = s.ed.right()
	case config.ActionBackwardWord:
		s.ed.wordLeft()
	case config.ActionForwardWord:
		s.ed.wordRight()
	case config.ActionBackwardDeleteChar:
		ok = s.ed.backspace()
	case config.ActionDeleteChar:
		ok = s.ed.deleteChar()
	case config.ActionKillLine:
		ok = s.ed.killLine(merge)
	case config.ActionUnixLineDiscard:
		ok = s.ed.discardLine(merge)
	case config.ActionUnixWordRubout:
		ok = s.ed.rubout(merge)
	case config.ActionKillWord:
		ok = s.ed.killWord(merge)
	case config.ActionYank:
		ok = s.ed.yank()
	case config.ActionYankPop:
		ok = (s.last == config.ActionYank || s.last == config.ActionYankPop) && s.ed.yankPop()
	case config.ActionUndo:
		ok = s.ed.undoLast()
	case config.ActionTransposeChars:
		ok = s.ed.transpose()
	case config.ActionPreviousHistory:
		var text string
		if text, ok = s.r.history.prev(s.ed.String()); ok {
			s.ed.set(text)
		}
	case config.ActionNextHistory:
		var text string
		if text, ok = s.r.history.next(); ok {
			s.ed.set(text)
		}
	case config.ActionComplete:
		if err := s.complete(); err != nil {
			return "", true, err
		}
	case config.ActionClearScreen:
		if _, err := s.r.term.Puts(caps.ClearScreen); err != nil {
			return "", true, err
		}
		s.disp.drawn = 0
	}
	s.last = action
	if !ok {
		s.bell()
	}
	if err := s.redraw(); err != nil {
		return "", true, err
	}
	return "", false, nil
}

func (s *session) redraw() error {
	return s.disp.render(s.ed.text, s.ed.cursor)
}

func (s *session) bell() {
	if s.r.vars.bellStyle != "audible" {
		return
	}
	if _, err := s.r.term.Puts(caps.Bell); err != nil {
		log.Debug("linereader: bell: %v", err)
	}
}

func (s *session) accept() (string, error) {
	if err := s.disp.finish(s.ed.text); err != nil {
		return "", err
	}
	line := norm.NFC.String(s.ed.String())
	if !s.opts.masked {
		s.r.remember(line)
	}
	return line, nil
}

func (s *session) interrupt() (string, error) {
	partial := s.ed.String()
	if err := s.disp.render(s.ed.text, len(s.ed.text)); err != nil {
		log.Debug("linereader: %v", err)
	}
	if err := s.r.term.EchoInterrupt(); err != nil {
		log.Debug("linereader: %v", err)
	}
	if _, err := io.WriteString(s.r.term.Output(), "\r\n"); err != nil {
		log.Debug("linereader: %v", err)
	}
	_ = s.r.term.Flush()
	return "", &InterruptError{Partial: partial}
}

func (s *session) endOfInput() (string, error) {
	if !s.ed.empty() {
		return s.accept()
	}
	_ = s.disp.finish(nil)
	if err := s.r.inputErr; err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, cancelreader.ErrCanceled) {
		return "", fmt.Errorf("reading input: %w", err)
	}
	return "", io.EOF
}

func (s *session) complete() error {
	c := s.r.getCompleter()
	if c == nil {
		s.bell()
		return nil
	}
	pos := s.ed.cursor
	candidates, start := c.Complete(s.ed.String(), pos)
	start = max(0, min(start, pos))
	word := string(s.ed.text[start:pos])

	ranked, prefixed := rank(word, candidates, s.r.vars.ignoreCase)
	switch {
	case len(ranked) == 0:
		s.bell()
	case len(ranked) == 1:
		s.ed.save()
		s.ed.replace(start, pos, []rune(ranked[0]))
	default:
		if prefixed {
			p := []rune(commonPrefix(ranked, s.r.vars.ignoreCase))
			if len(p) > pos-start {
				s.ed.save()
				s.ed.replace(start, pos, p)
				return nil
			}
		}
		return s.list(ranked)
	}
	return nil
}

// list prints candidates below the line; the next redraw repaints the prompt.
func (s *session) list(candidates []string) error {
	if err := s.disp.finish(s.ed.text); err != nil {
		return err
	}
	width := s.r.term.Width()
	line := 0
	for i, c := range candidates {
		w := VisibleWidth(c)
		if i > 0 && line+2+w > width {
			if _, err := io.WriteString(s.r.term.Output(), "\r\n"); err != nil {
				return fmt.Errorf("listing completions: %w", err)
			}
			line = 0
		} else if i > 0 {
			if _, err := io.WriteString(s.r.term.Output(), "  "); err != nil {
				return fmt.Errorf("listing completions: %w", err)
			}
			line += 2
		}
		if _, err := io.WriteString(s.r.term.Output(), c); err != nil {
			return fmt.Errorf("listing completions: %w", err)
		}
		line += w
	}
	if _, err := io.WriteString(s.r.term.Output(), "\r\n"); err != nil {
		return fmt.Errorf("listing completions: %w", err)
	}
	s.disp.drawn = 0
	return nil
}

func (r *Reader) remember(line string) {
	r.history.Add(line)
	if r.vars.historyFile == "" {
		return
	}
	if err := r.history.Save(r.vars.historyFile); err != nil {
		log.Warn("linereader: %v", err)
	}
}
