// ABOUTME: Linux ioctl request numbers for reading and writing termios.

package termios

import "golang.org/x/sys/unix"

const (
	ioctlGetTermios = unix.TCGETS
	ioctlSetTermios = unix.TCSETS
)
