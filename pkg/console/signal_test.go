// ABOUTME: Tests for the signal registry: Handle swaps, Raise dispatch and invalid input
// ABOUTME: Includes re-entrant handlers and concurrent Handle/Raise traffic

package console

import (
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"golang.org/x/sync/errgroup"
)

func TestSignal_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		sig  Signal
		want string
	}{
		{SigInt, "INT"},
		{SigQuit, "QUIT"},
		{SigTstp, "TSTP"},
		{SigCont, "CONT"},
		{SigInfo, "INFO"},
		{SigWinch, "WINCH"},
		{Signal(0), "Signal(0)"},
		{Signal(42), "Signal(42)"},
	}
	for _, tt := range tests {
		if got := tt.sig.String(); got != tt.want {
			t.Errorf("Signal(%d).String() = %q, want %q", int(tt.sig), got, tt.want)
		}
	}
}

func TestHandle_ReturnsPrevious(t *testing.T) {
	t.Parallel()

	c, _, _ := newTestConsole(t)
	custom := CustomFunc(func(Signal) {})

	steps := []struct {
		set      Disposition
		wantPrev string
	}{
		{Ignore, "default"},
		{custom, "ignore"},
		{Default, "custom"},
		{Default, "default"},
	}
	for i, s := range steps {
		if prev := c.Handle(SigQuit, s.set); prev.String() != s.wantPrev {
			t.Errorf("step %d: Handle returned %s, want %s", i, prev, s.wantPrev)
		}
	}
	for _, sig := range Signals() {
		if sig != SigQuit && !c.Disposition(sig).IsDefault() {
			t.Errorf("Disposition(%s) changed by Handle(QUIT)", sig)
		}
	}
}

func TestHandle_RestoresHandler(t *testing.T) {
	t.Parallel()

	c, _, _ := newTestConsole(t)
	var calls atomic.Int32
	h := HandlerFunc(func(Signal) { calls.Add(1) })

	c.Handle(SigCont, Custom(h))
	prev := c.Handle(SigCont, Ignore)
	c.Raise(SigCont)
	c.Handle(SigCont, prev)
	c.Raise(SigCont)

	if calls.Load() != 1 {
		t.Errorf("handler calls = %d, want 1", calls.Load())
	}
	if prev.Handler() == nil {
		t.Error("returned disposition lost its handler")
	}
}

func TestHandle_Panics(t *testing.T) {
	t.Parallel()

	c, _, _ := newTestConsole(t)
	tests := []struct {
		name string
		fn   func()
	}{
		{"signal zero", func() { c.Handle(Signal(0), Ignore) }},
		{"signal out of range", func() { c.Handle(SigWinch+1, Ignore) }},
		{"zero disposition", func() { c.Handle(SigInt, Disposition{}) }},
		{"nil handler", func() { c.Handle(SigInt, Custom(nil)) }},
		{"nil func", func() { c.Handle(SigInt, CustomFunc(nil)) }},
		{"disposition of invalid signal", func() { c.Disposition(Signal(-1)) }},
		{"raise invalid signal", func() { c.Raise(Signal(99)) }},
		{"echo invalid signal", func() { _ = c.EchoSignal(Signal(99)) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected panic")
				}
			}()
			tt.fn()
		})
	}
	if !c.Disposition(SigInt).IsDefault() {
		t.Error("rejected Handle calls must leave the registry unchanged")
	}
}

func TestRaise_Dispositions(t *testing.T) {
	t.Parallel()

	var mu sync.Mutex
	var defaulted []Signal
	c, _, _ := newTestConsole(t, WithDefaultFunc(func(sig Signal) {
		mu.Lock()
		defaulted = append(defaulted, sig)
		mu.Unlock()
	}))

	var got []Signal
	c.Handle(SigWinch, CustomFunc(func(sig Signal) { got = append(got, sig) }))
	c.Handle(SigQuit, Ignore)

	c.Raise(SigInt)
	c.Raise(SigQuit)
	c.Raise(SigWinch)
	c.Raise(SigWinch)

	if len(got) != 2 || got[0] != SigWinch {
		t.Errorf("custom handler saw %v, want [WINCH WINCH]", got)
	}
	mu.Lock()
	defer mu.Unlock()
	if len(defaulted) != 1 || defaulted[0] != SigInt {
		t.Errorf("default strategy saw %v, want [INT]", defaulted)
	}
}

func TestRaise_DefaultWithoutPumpIsNoop(t *testing.T) {
	t.Parallel()

	c, _, out := newTestConsole(t)
	for _, sig := range Signals() {
		c.Raise(sig)
	}
	if out.String() != "" {
		t.Errorf("default dispositions wrote %q", out.String())
	}
}

func TestRaise_ReentrantHandler(t *testing.T) {
	t.Parallel()

	c, _, _ := newTestConsole(t)
	var winch atomic.Int32
	c.Handle(SigWinch, CustomFunc(func(Signal) { winch.Add(1) }))
	c.Handle(SigInt, CustomFunc(func(Signal) {
		c.Handle(SigInt, Ignore)
		c.Raise(SigWinch)
		c.Raise(SigInt)
	}))

	c.Raise(SigInt)

	if winch.Load() != 1 {
		t.Errorf("nested Raise(WINCH) calls = %d, want 1", winch.Load())
	}
	if !c.Disposition(SigInt).IsIgnore() {
		t.Errorf("Disposition(INT) = %s, want ignore", c.Disposition(SigInt))
	}
}

func TestRegistry_Concurrent(t *testing.T) {
	t.Parallel()

	c, _, _ := newTestConsole(t)
	var raised atomic.Int64
	h := CustomFunc(func(Signal) { raised.Add(1) })

	var g errgroup.Group
	for i := range 16 {
		g.Go(func() error {
			sig := Signals()[i%len(Signals())]
			for range 100 {
				c.Handle(sig, h)
				c.Raise(sig)
				if d := c.Disposition(sig); !d.Valid() {
					return fmt.Errorf("invalid disposition for %s", sig)
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatal(err)
	}
	if raised.Load() != 1600 {
		t.Errorf("handler calls = %d, want 1600", raised.Load())
	}
}

func TestDisposition_Accessors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		d          Disposition
		valid      bool
		isDefault  bool
		isIgnore   bool
		hasHandler bool
		str        string
	}{
		{Disposition{}, false, false, false, false, "invalid"},
		{Default, true, true, false, false, "default"},
		{Ignore, true, false, true, false, "ignore"},
		{CustomFunc(func(Signal) {}), true, false, false, true, "custom"},
	}
	for _, tt := range tests {
		if tt.d.Valid() != tt.valid || tt.d.IsDefault() != tt.isDefault ||
			tt.d.IsIgnore() != tt.isIgnore || (tt.d.Handler() != nil) != tt.hasHandler ||
			tt.d.String() != tt.str {
			t.Errorf("disposition %s: accessors disagree", tt.str)
		}
	}
}
