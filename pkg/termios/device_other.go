// ABOUTME: Stub termios bridge for platforms without Linux/Darwin termios ioctls.

//go:build !linux && !darwin

package termios

func getAttributes(int) (Attributes, error) { return Attributes{}, ErrUnsupported }

func setAttributes(int, Attributes) error { return ErrUnsupported }
