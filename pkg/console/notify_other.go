// ABOUTME: Non-unix stand-ins for the OS signal pump; signals can still be raised explicitly.

//go:build !unix

package console

import (
	"context"
	"errors"
)

// Notify is not supported on this platform.
func (c *Console) Notify(ctx context.Context) error {
	return errors.New("console: signal notification not supported on this platform")
}

func (c *Console) redeliver(Signal) {}
