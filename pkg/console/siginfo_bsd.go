// ABOUTME: SIGINFO exists on Darwin and the BSDs; map it to SigInfo there.

//go:build darwin || dragonfly || freebsd || netbsd || openbsd

package console

import "golang.org/x/sys/unix"

func init() {
	osSignals[unix.SIGINFO] = SigInfo
}
