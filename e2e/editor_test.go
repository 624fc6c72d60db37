// ABOUTME: E2E tests for line editing through the real binary: accept, Ctrl+C, Ctrl+D, history
// ABOUTME: Also covers the --keys, --puts and --caps modes

package e2e

import (
	"testing"
	"time"
)

func TestEditor_AcceptLine(t *testing.T) {
	s := startTTYCtl(t)
	defer s.close()

	s.expectStringTimeout(t, "> ", 5*time.Second)
	s.send(t, "hello world\r")
	s.expectStringTimeout(t, `"hello world"`, 5*time.Second)

	s.sendCtrl(t, 'd')
	s.waitExit(t, 5*time.Second)
}

func TestEditor_CtrlC_InterruptsLine(t *testing.T) {
	s := startTTYCtl(t)
	defer s.close()

	s.expectStringTimeout(t, "> ", 5*time.Second)
	s.send(t, "discard me")
	time.Sleep(200 * time.Millisecond)

	// The tty turns Ctrl+C into SIGINT; the console routes it to the reader.
	s.sendCtrl(t, 'c')
	s.expectStringTimeout(t, "^C", 5*time.Second)

	s.send(t, "kept\r")
	s.expectStringTimeout(t, `"kept"`, 5*time.Second)

	s.sendCtrl(t, 'd')
	s.waitExit(t, 5*time.Second)
}

func TestEditor_CtrlD_ExitsWhenEmpty(t *testing.T) {
	s := startTTYCtl(t)
	defer s.close()

	s.expectStringTimeout(t, "> ", 5*time.Second)
	s.sendCtrl(t, 'd')
	s.waitExit(t, 5*time.Second)
}

func TestEditor_HistoryRecall(t *testing.T) {
	s := startTTYCtl(t)
	defer s.close()

	s.expectStringTimeout(t, "> ", 5*time.Second)
	s.send(t, "first\r")
	s.expectStringTimeout(t, `"first"`, 5*time.Second)

	// Up arrow recalls the previous line; the edit appends to it.
	s.send(t, "\x1b[A")
	time.Sleep(200 * time.Millisecond)
	s.send(t, "!\r")
	s.expectStringTimeout(t, `"first!"`, 5*time.Second)

	s.sendCtrl(t, 'd')
	s.waitExit(t, 5*time.Second)
}

func TestEditor_MaskedInput(t *testing.T) {
	s := startTTYCtl(t, "-mask", "*", "-prompt", "secret: ")
	defer s.close()

	s.expectStringTimeout(t, "secret: ", 5*time.Second)
	s.send(t, "hunter2\r")
	s.expectStringTimeout(t, `"hunter2"`, 5*time.Second)
	s.waitExit(t, 5*time.Second)
}

func TestKeys_PrintsKeyNames(t *testing.T) {
	s := startTTYCtl(t, "-keys")
	defer s.close()

	s.expectStringTimeout(t, "ctrl+d quits", 5*time.Second)
	s.send(t, "\x1b[A")
	s.expectStringTimeout(t, "up", 5*time.Second)
	s.send(t, "\x1b")
	s.expectStringTimeout(t, "escape", 5*time.Second)

	s.sendCtrl(t, 'd')
	s.waitExit(t, 5*time.Second)
}

func TestPuts_Bell(t *testing.T) {
	s := startTTYCtl(t, "-puts", "bel")
	defer s.close()

	s.expectStringTimeout(t, "\a", 5*time.Second)
	s.waitExit(t, 5*time.Second)
}

func TestCaps_ListsSections(t *testing.T) {
	s := startTTYCtl(t, "-caps", "-term", "no-such-terminal")
	defer s.close()

	s.expectStringTimeout(t, "terminal ansi", 5*time.Second)
	s.expectStringTimeout(t, "strings", 5*time.Second)
	s.waitExit(t, 5*time.Second)
}

func TestKeys_EchoesInterrupt(t *testing.T) {
	s := startTTYCtl(t, "-keys")
	defer s.close()

	s.expectStringTimeout(t, "ctrl+d quits", 5*time.Second)
	s.sendCtrl(t, 'c')
	s.expectStringTimeout(t, "^C INT", 5*time.Second)

	s.sendCtrl(t, 'd')
	s.waitExit(t, 5*time.Second)
}
