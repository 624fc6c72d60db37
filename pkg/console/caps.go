// ABOUTME: Capability access: lookups against the resolved set and Puts for string capabilities.
// ABOUTME: Resolution failures fall back to the built-in ANSI description with a warning.

package console

import (
	"fmt"

	"github.com/mauromedda/ttyctl/internal/log"
	"github.com/mauromedda/ttyctl/pkg/caps"
)

// Capabilities returns the capability set currently in effect. The set is
// immutable; ResolveCapabilities replaces it as a whole.
func (c *Console) Capabilities() *caps.Set {
	return c.capset.Load()
}

// BooleanCapability reports whether the terminal has boolean capability id.
func (c *Console) BooleanCapability(id caps.Capability) bool {
	return c.capset.Load().Bool(id)
}

// NumericCapability returns the value of numeric capability id.
func (c *Console) NumericCapability(id caps.Capability) (int, bool) {
	return c.capset.Load().Num(id)
}

// StringCapability returns the unexpanded template of string capability id.
func (c *Console) StringCapability(id caps.Capability) (string, bool) {
	return c.capset.Load().String(id)
}

// Puts expands string capability id with params and writes it to the
// output sink. It returns false without writing when the terminal lacks
// the capability. Write failures are wrapped with ErrOutput.
func (c *Console) Puts(id caps.Capability, params ...any) (bool, error) {
	tmpl, ok := c.StringCapability(id)
	if !ok {
		return false, nil
	}
	if err := caps.Tputs(c.out, tmpl, params...); err != nil {
		return true, fmt.Errorf("%w: writing %s: %w", ErrOutput, id, err)
	}
	return true, nil
}

// ResolveCapabilities looks up the console's terminal type and publishes
// the parsed set. When the type is empty or the lookup fails, the built-in
// ANSI description is used instead.
func (c *Console) ResolveCapabilities() {
	if c.termType == "" {
		c.capset.Store(caps.ANSI())
		return
	}

	set, err := caps.Resolve(c.db, c.termType)
	if err != nil {
		log.Warn("console: no capabilities for terminal type %q, using %s: %v", c.termType, caps.ANSIName, err)
		set = caps.ANSI()
	}
	log.Debug("console: capabilities resolved for %q (%s)", c.termType, set.Name())
	c.capset.Store(set)
}
