// ABOUTME: termios ioctl bridge for Linux and Darwin using golang.org/x/sys/unix.
// ABOUTME: Maps the platform-neutral flag bits onto the host struct termios and back.

//go:build linux || darwin

package termios

import "golang.org/x/sys/unix"

type bit[F ~uint32] struct {
	flag F
	host uint64
}

var inputBits = []bit[InputFlag]{
	{IGNBRK, unix.IGNBRK}, {BRKINT, unix.BRKINT}, {IGNPAR, unix.IGNPAR},
	{PARMRK, unix.PARMRK}, {INPCK, unix.INPCK}, {ISTRIP, unix.ISTRIP},
	{INLCR, unix.INLCR}, {IGNCR, unix.IGNCR}, {ICRNL, unix.ICRNL},
	{IXON, unix.IXON}, {IXOFF, unix.IXOFF}, {IXANY, unix.IXANY},
	{IMAXBEL, unix.IMAXBEL}, {IUTF8, unix.IUTF8},
}

var outputBits = []bit[OutputFlag]{
	{OPOST, unix.OPOST}, {ONLCR, unix.ONLCR}, {OCRNL, unix.OCRNL},
	{ONOCR, unix.ONOCR}, {ONLRET, unix.ONLRET}, {OFILL, unix.OFILL},
	{OFDEL, unix.OFDEL},
}

var controlBits = []bit[ControlFlag]{
	{CSTOPB, unix.CSTOPB}, {CREAD, unix.CREAD}, {PARENB, unix.PARENB},
	{PARODD, unix.PARODD}, {HUPCL, unix.HUPCL}, {CLOCAL, unix.CLOCAL},
}

var localBits = []bit[LocalFlag]{
	{ECHOKE, unix.ECHOKE}, {ECHOE, unix.ECHOE}, {ECHOK, unix.ECHOK},
	{ECHO, unix.ECHO}, {ECHONL, unix.ECHONL}, {ECHOPRT, unix.ECHOPRT},
	{ECHOCTL, unix.ECHOCTL}, {ISIG, unix.ISIG}, {ICANON, unix.ICANON},
	{IEXTEN, unix.IEXTEN}, {EXTPROC, unix.EXTPROC}, {TOSTOP, unix.TOSTOP},
	{FLUSHO, unix.FLUSHO}, {PENDIN, unix.PENDIN}, {NOFLSH, unix.NOFLSH},
}

var charIndex = [NCCS]int{
	VEOF:     unix.VEOF,
	VEOL:     unix.VEOL,
	VEOL2:    unix.VEOL2,
	VERASE:   unix.VERASE,
	VWERASE:  unix.VWERASE,
	VKILL:    unix.VKILL,
	VREPRINT: unix.VREPRINT,
	VINTR:    unix.VINTR,
	VQUIT:    unix.VQUIT,
	VSUSP:    unix.VSUSP,
	VSTART:   unix.VSTART,
	VSTOP:    unix.VSTOP,
	VLNEXT:   unix.VLNEXT,
	VDISCARD: unix.VDISCARD,
	VMIN:     unix.VMIN,
	VTIME:    unix.VTIME,
}

func decode[F ~uint32, T uint32 | uint64](host T, table []bit[F]) F {
	var f F
	for _, b := range table {
		if uint64(host)&b.host != 0 {
			f |= b.flag
		}
	}
	return f
}

func encode[F ~uint32, T uint32 | uint64](host T, f F, table []bit[F]) T {
	for _, b := range table {
		if f&b.flag != 0 {
			host |= T(b.host)
		} else {
			host &^= T(b.host)
		}
	}
	return host
}

func fromTermios(t *unix.Termios) Attributes {
	a := Attributes{
		Input:   decode(t.Iflag, inputBits),
		Output:  decode(t.Oflag, outputBits),
		Control: decode(t.Cflag, controlBits),
		Local:   decode(t.Lflag, localBits),
	}
	for i, idx := range charIndex {
		a.Chars[i] = t.Cc[idx]
	}
	return a
}

func applyTermios(t *unix.Termios, a Attributes) {
	t.Iflag = encode(t.Iflag, a.Input, inputBits)
	t.Oflag = encode(t.Oflag, a.Output, outputBits)
	t.Cflag = encode(t.Cflag, a.Control, controlBits)
	t.Lflag = encode(t.Lflag, a.Local, localBits)
	for i, idx := range charIndex {
		t.Cc[idx] = a.Chars[i]
	}
}

func getAttributes(fd int) (Attributes, error) {
	t, err := unix.IoctlGetTermios(fd, ioctlGetTermios)
	if err != nil {
		return Attributes{}, err
	}
	return fromTermios(t), nil
}

func setAttributes(fd int, a Attributes) error {
	t, err := unix.IoctlGetTermios(fd, ioctlGetTermios)
	if err != nil {
		return err
	}
	applyTermios(t, a)
	return unix.IoctlSetTermios(fd, ioctlSetTermios, t)
}
