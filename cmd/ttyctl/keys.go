// ABOUTME: Key echo mode: raw terminal input decoded into key names, one per line
// ABOUTME: Reads time out after 100ms so a lone Escape is reported; signal keys are echoed, not delivered

package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/mauromedda/ttyctl/pkg/console"
	"github.com/mauromedda/ttyctl/pkg/linereader/key"
	"github.com/mauromedda/ttyctl/pkg/termios"
)

func echoKeys(c *console.Console) error {
	out := c.Output()
	fmt.Fprint(out, "press keys, ctrl+d quits\r\n")
	_ = c.Flush()

	// Keyboard signals are echoed instead of stopping the process.
	echo := console.CustomFunc(func(sig console.Signal) {
		if err := c.EchoSignal(sig); err == nil {
			fmt.Fprintf(out, " %s\r\n", sig)
			_ = c.Flush()
		}
	})
	for _, sig := range []console.Signal{console.SigInt, console.SigQuit, console.SigTstp} {
		prev := c.Handle(sig, echo)
		defer c.Handle(sig, prev)
	}

	return c.WithRawMode(func() error {
		a, err := c.Attributes()
		if err != nil {
			return err
		}
		a.SetControlChar(termios.VMIN, 0)
		a.SetControlChar(termios.VTIME, 1)
		if err := c.SetAttributes(a); err != nil {
			return err
		}

		var dec key.Decoder
		buf := make([]byte, 64)
		for {
			n, err := c.Input().Read(buf)
			keys := dec.Feed(buf[:n])
			// With VMIN=0 an empty read is a timeout, which Go reports as io.EOF.
			if n == 0 && errors.Is(err, io.EOF) {
				keys = append(keys, dec.Flush()...)
				err = nil
			}
			for _, k := range keys {
				if k.IsCtrl('d') {
					return nil
				}
				fmt.Fprintf(out, "%s\r\n", k)
			}
			if err := c.Flush(); err != nil {
				return err
			}
			if err != nil {
				return err
			}
		}
	})
}
