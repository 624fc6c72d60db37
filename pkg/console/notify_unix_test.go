// ABOUTME: Tests the OS signal pump with a real SIGWINCH sent to the test process
// ABOUTME: Not parallel: signal delivery is process-wide

//go:build unix

package console

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"golang.org/x/sys/unix"
)

func TestNotify_Winch(t *testing.T) {
	c, _, _ := newTestConsole(t)

	got := make(chan Signal, 1)
	c.Handle(SigWinch, CustomFunc(func(sig Signal) {
		select {
		case got <- sig:
		default:
		}
	}))

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	if err := c.Notify(ctx); err != nil {
		t.Fatalf("Notify: %v", err)
	}
	if err := c.Notify(ctx); !errors.Is(err, ErrNotifyRunning) {
		t.Errorf("second Notify = %v, want ErrNotifyRunning", err)
	}

	if err := unix.Kill(os.Getpid(), unix.SIGWINCH); err != nil {
		t.Fatalf("kill: %v", err)
	}
	select {
	case sig := <-got:
		if sig != SigWinch {
			t.Errorf("handler got %s, want WINCH", sig)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("SIGWINCH was not raised through the console")
	}

	cancel()
	deadline := time.Now().Add(5 * time.Second)
	for {
		ctx2, cancel2 := context.WithCancel(context.Background())
		err := c.Notify(ctx2)
		cancel2()
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("pump still running after its context was cancelled")
		}
		time.Sleep(time.Millisecond)
	}
}

func TestSysSignal(t *testing.T) {
	t.Parallel()

	for s, sig := range osSignals {
		got, ok := sysSignal(sig)
		if !ok || got != s {
			t.Errorf("sysSignal(%s) = %v, %v; want %v", sig, got, ok, s)
		}
	}
}
