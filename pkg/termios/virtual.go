// ABOUTME: Virtual implements Provider in memory for tests and headless use.
// ABOUTME: Starts from Cooked settings and records every applied snapshot.

package termios

import "sync"

// Virtual is an in-memory terminal. It stores one Attributes value, tracks
// how many times attributes were read and written, and can be told to fail.
type Virtual struct {
	mu       sync.Mutex
	attrs    Attributes
	width    int
	height   int
	gets     int
	applied  []Attributes
	getErr   error
	setErr   error
	onResize func(width, height int)
}

// NewVirtual returns a Virtual with Cooked settings and the given size.
func NewVirtual(width, height int) *Virtual {
	return &Virtual{
		attrs:  Cooked(),
		width:  width,
		height: height,
	}
}

// GetAttributes returns a copy of the stored attributes.
func (v *Virtual) GetAttributes() (Attributes, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.gets++
	if v.getErr != nil {
		return Attributes{}, v.getErr
	}
	return v.attrs, nil
}

// SetAttributes stores a copy of a.
func (v *Virtual) SetAttributes(a Attributes) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.setErr != nil {
		return v.setErr
	}
	v.attrs = a
	v.applied = append(v.applied, a)
	return nil
}

// Size returns the configured dimensions.
func (v *Virtual) Size() (width, height int, err error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.width, v.height, nil
}

// --- Test helpers (not part of Provider) ---

// SetSize updates the dimensions and invokes the resize callback, if any.
func (v *Virtual) SetSize(width, height int) {
	v.mu.Lock()
	v.width = width
	v.height = height
	fn := v.onResize
	v.mu.Unlock()

	if fn != nil {
		fn(width, height)
	}
}

// OnResize stores a callback invoked by SetSize.
func (v *Virtual) OnResize(fn func(width, height int)) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.onResize = fn
}

// Current returns the stored attributes without counting as a read.
func (v *Virtual) Current() Attributes {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.attrs
}

// Applied returns every snapshot passed to SetAttributes, oldest first.
func (v *Virtual) Applied() []Attributes {
	v.mu.Lock()
	defer v.mu.Unlock()

	out := make([]Attributes, len(v.applied))
	copy(out, v.applied)
	return out
}

// SetCount returns how many times SetAttributes succeeded.
func (v *Virtual) SetCount() int {
	v.mu.Lock()
	defer v.mu.Unlock()

	return len(v.applied)
}

// GetCount returns how many times GetAttributes was called.
func (v *Virtual) GetCount() int {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.gets
}

// FailGet makes subsequent GetAttributes calls return err (nil clears it).
func (v *Virtual) FailGet(err error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.getErr = err
}

// FailSet makes subsequent SetAttributes calls return err (nil clears it).
func (v *Virtual) FailSet(err error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.setErr = err
}
