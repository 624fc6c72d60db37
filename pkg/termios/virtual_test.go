// ABOUTME: Tests for Virtual verifying snapshot storage, counters, failure injection and resize.
// ABOUTME: Includes a concurrent access check for the race detector.

package termios

import (
	"errors"
	"sync"
	"testing"
)

// compile-time checks
var (
	_ Provider = (*Virtual)(nil)
	_ Sizer    = (*Virtual)(nil)
	_ Provider = (*Device)(nil)
	_ Sizer    = (*Device)(nil)
)

func TestVirtual_StartsCooked(t *testing.T) {
	t.Parallel()
	v := NewVirtual(80, 24)

	got, err := v.GetAttributes()
	if err != nil {
		t.Fatalf("GetAttributes() unexpected error: %v", err)
	}
	if got != Cooked() {
		t.Errorf("GetAttributes() = %s, want cooked settings", got)
	}
	if v.GetCount() != 1 {
		t.Errorf("GetCount() = %d, want 1", v.GetCount())
	}
}

func TestVirtual_SetStoresCopy(t *testing.T) {
	t.Parallel()
	v := NewVirtual(80, 24)

	a := Cooked()
	a.SetLocalFlag(ECHO, false)
	if err := v.SetAttributes(a); err != nil {
		t.Fatalf("SetAttributes() unexpected error: %v", err)
	}

	// Mutating the caller's value must not reach the stored one.
	a.SetLocalFlag(ECHO, true)
	if v.Current().LocalFlag(ECHO) {
		t.Error("stored attributes changed through caller's copy")
	}
	if v.SetCount() != 1 {
		t.Errorf("SetCount() = %d, want 1", v.SetCount())
	}
	if applied := v.Applied(); len(applied) != 1 || applied[0].LocalFlag(ECHO) {
		t.Errorf("Applied() = %v, want one snapshot without ECHO", applied)
	}
}

func TestVirtual_FailureInjection(t *testing.T) {
	t.Parallel()
	v := NewVirtual(80, 24)
	boom := errors.New("boom")

	v.FailGet(boom)
	if _, err := v.GetAttributes(); !errors.Is(err, boom) {
		t.Errorf("GetAttributes() error = %v, want %v", err, boom)
	}
	v.FailGet(nil)

	v.FailSet(boom)
	if err := v.SetAttributes(Attributes{}); !errors.Is(err, boom) {
		t.Errorf("SetAttributes() error = %v, want %v", err, boom)
	}
	if v.SetCount() != 0 {
		t.Errorf("SetCount() = %d after failed set, want 0", v.SetCount())
	}
}

func TestVirtual_Resize(t *testing.T) {
	t.Parallel()
	v := NewVirtual(80, 24)

	var gotW, gotH int
	v.OnResize(func(w, h int) { gotW, gotH = w, h })
	v.SetSize(132, 43)

	if gotW != 132 || gotH != 43 {
		t.Errorf("resize callback got (%d, %d), want (132, 43)", gotW, gotH)
	}
	w, h, err := v.Size()
	if err != nil {
		t.Fatalf("Size() unexpected error: %v", err)
	}
	if w != 132 || h != 43 {
		t.Errorf("Size() = (%d, %d), want (132, 43)", w, h)
	}
}

func TestVirtual_ConcurrentAccess(t *testing.T) {
	t.Parallel()
	v := NewVirtual(80, 24)

	var wg sync.WaitGroup
	const goroutines = 10
	wg.Add(goroutines * 2)
	for range goroutines {
		go func() {
			defer wg.Done()
			a, _ := v.GetAttributes()
			a.SetLocalFlag(ECHO, false)
			_ = v.SetAttributes(a)
		}()
		go func() {
			defer wg.Done()
			_, _, _ = v.Size()
		}()
	}
	wg.Wait()

	if v.SetCount() != goroutines {
		t.Errorf("SetCount() = %d, want %d", v.SetCount(), goroutines)
	}
}
