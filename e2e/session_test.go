// ABOUTME: E2E harness: builds the ttyctl binary once and drives it through a PTY
// ABOUTME: Collects output in the background so tests can wait for expected strings

package e2e

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/creack/pty"
)

var (
	buildOnce sync.Once
	binPath   string
	buildErr  error
)

func binary(t *testing.T) string {
	t.Helper()
	buildOnce.Do(func() {
		dir, err := os.MkdirTemp("", "ttyctl-e2e")
		if err != nil {
			buildErr = err
			return
		}
		binPath = filepath.Join(dir, "ttyctl")
		out, err := exec.Command("go", "build", "-o", binPath, "../cmd/ttyctl").CombinedOutput()
		if err != nil {
			buildErr = &buildError{err: err, out: string(out)}
		}
	})
	if buildErr != nil {
		t.Skipf("building ttyctl: %v", buildErr)
	}
	return binPath
}

type buildError struct {
	err error
	out string
}

func (e *buildError) Error() string { return e.err.Error() + ": " + e.out }

type session struct {
	cmd  *exec.Cmd
	ptmx *os.File

	mu   sync.Mutex
	out  bytes.Buffer
	done chan struct{}
	exit chan error
}

// startTTYCtl runs the binary with args on a fresh PTY. HOME points at a
// temporary directory so no user configuration leaks in.
func startTTYCtl(t *testing.T, args ...string) *session {
	t.Helper()
	if testing.Short() {
		t.Skip("e2e tests skipped in short mode")
	}

	cmd := exec.Command(binary(t), args...)
	cmd.Env = append(os.Environ(), "HOME="+t.TempDir(), "TERM=xterm")
	ptmx, err := pty.StartWithSize(cmd, &pty.Winsize{Rows: 24, Cols: 80})
	if err != nil {
		t.Skipf("pty unavailable: %v", err)
	}

	s := &session{cmd: cmd, ptmx: ptmx, done: make(chan struct{}), exit: make(chan error, 1)}
	go func() {
		defer close(s.done)
		buf := make([]byte, 1024)
		for {
			n, err := ptmx.Read(buf)
			if n > 0 {
				s.mu.Lock()
				s.out.Write(buf[:n])
				s.mu.Unlock()
			}
			if err != nil {
				return
			}
		}
	}()
	go func() { s.exit <- cmd.Wait() }()
	return s
}

func (s *session) output() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.out.String()
}

func (s *session) send(t *testing.T, text string) {
	t.Helper()
	if _, err := s.ptmx.Write([]byte(text)); err != nil {
		t.Fatalf("writing to pty: %v", err)
	}
}

func (s *session) sendCtrl(t *testing.T, r rune) {
	t.Helper()
	s.send(t, string(r-'a'+1))
}

func (s *session) expectStringTimeout(t *testing.T, want string, timeout time.Duration) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for !strings.Contains(s.output(), want) {
		if time.Now().After(deadline) {
			t.Fatalf("timed out waiting for %q; output so far: %q", want, s.output())
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func (s *session) waitExit(t *testing.T, timeout time.Duration) {
	t.Helper()
	select {
	case err := <-s.exit:
		if err != nil {
			t.Errorf("ttyctl exited with %v; output: %q", err, s.output())
		}
	case <-time.After(timeout):
		t.Fatalf("ttyctl did not exit; output: %q", s.output())
	}
}

func (s *session) close() {
	_ = s.cmd.Process.Kill()
	_ = s.ptmx.Close()
	<-s.done
}
