// ABOUTME: RestoreOnPanic puts saved attributes back when a goroutine panics in raw mode.
// ABOUTME: Intended as a deferred call right after switching the terminal into raw mode.

package termios

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
)

// panicOut receives the panic report; tests replace it.
var panicOut io.Writer = os.Stderr

// RestoreOnPanic should be deferred by code that changed terminal settings.
// On panic it re-applies saved through p, shows the cursor, prints the panic
// value and stack trace, then re-panics so the failure is not swallowed.
func RestoreOnPanic(p Provider, saved Attributes) {
	r := recover()
	if r == nil {
		return
	}

	// Best-effort: a broken terminal must not hide the original panic.
	_ = p.SetAttributes(saved)
	fmt.Fprintf(panicOut, "\033[?25h\npanic: %v\n\n%s\n", r, debug.Stack())
	panic(r)
}
