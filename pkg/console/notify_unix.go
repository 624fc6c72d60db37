// ABOUTME: Unix OS signal pump forwarding INT, QUIT, TSTP, CONT, WINCH (and INFO where defined) to Raise.
// ABOUTME: While the pump runs, Default keyboard signals take the operating system's default action.

//go:build unix

package console

import (
	"context"
	"os"
	"os/signal"

	"golang.org/x/sys/unix"

	"github.com/mauromedda/ttyctl/internal/log"
)

var osSignals = map[unix.Signal]Signal{
	unix.SIGINT:   SigInt,
	unix.SIGQUIT:  SigQuit,
	unix.SIGTSTP:  SigTstp,
	unix.SIGCONT:  SigCont,
	unix.SIGWINCH: SigWinch,
}

func sysSignal(sig Signal) (unix.Signal, bool) {
	for s, v := range osSignals {
		if v == sig {
			return s, true
		}
	}
	return 0, false
}

// Notify starts a goroutine that raises console signals for the matching
// OS signals until ctx is done. Only one pump may run per console.
func (c *Console) Notify(ctx context.Context) error {
	if !c.pump.CompareAndSwap(false, true) {
		return ErrNotifyRunning
	}

	ch := make(chan os.Signal, 8)
	sigs := make([]os.Signal, 0, len(osSignals))
	for s := range osSignals {
		sigs = append(sigs, s)
	}
	signal.Notify(ch, sigs...)
	log.Debug("console: signal pump started")

	go func() {
		defer c.pump.Store(false)
		defer signal.Stop(ch)

		for {
			select {
			case <-ctx.Done():
				log.Debug("console: signal pump stopped")
				return
			case s := <-ch:
				us, ok := s.(unix.Signal)
				if !ok {
					continue
				}
				if sig, ok := osSignals[us]; ok {
					c.Raise(sig)
				}
			}
		}
	}()
	return nil
}

// redeliver gives a keyboard signal its operating system default action.
// TSTP stops the process with SIGSTOP so the pump stays registered.
// Terminal attributes are left as they are: a caller in raw mode restores
// them before suspension and re-applies them from a CONT handler.
func (c *Console) redeliver(sig Signal) {
	pid := os.Getpid()
	if sig == SigTstp {
		if err := unix.Kill(pid, unix.SIGSTOP); err != nil {
			log.Warn("console: stopping process: %v", err)
		}
		return
	}

	s, ok := sysSignal(sig)
	if !ok {
		return
	}
	signal.Reset(s)
	if err := unix.Kill(pid, s); err != nil {
		log.Warn("console: re-raising %s: %v", sig, err)
	}
}
