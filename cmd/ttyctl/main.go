// ABOUTME: CLI entry point for ttyctl: inspect terminal capabilities, decode keys, read lines
// ABOUTME: Parses flags, builds a Console, starts the signal pump and dispatches to a mode

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/mauromedda/ttyctl/internal/config"
	tlog "github.com/mauromedda/ttyctl/internal/log"
	"github.com/mauromedda/ttyctl/pkg/caps"
	"github.com/mauromedda/ttyctl/pkg/console"
	"github.com/mauromedda/ttyctl/pkg/linereader"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	args := parseFlags()

	if args.version {
		fmt.Printf("ttyctl %s (%s) built %s\n", version, commit, date)
		os.Exit(0)
	}

	if err := run(args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// run builds the console and dispatches to the selected mode.
func run(args cliArgs) error {
	if args.verbose {
		tlog.SetLevel(tlog.LevelDebug)
	}
	if args.logFile != "" {
		f, err := os.OpenFile(args.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		defer f.Close()
		tlog.SetOutput(f)
	}

	c := console.New(consoleOptions(args)...)
	tlog.Debug("ttyctl: terminal %q, capabilities %s", c.Type(), c.Capabilities().Name())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := c.Notify(ctx); err != nil {
		tlog.Debug("ttyctl: signal pump: %v", err)
	}
	c.Handle(console.SigWinch, console.CustomFunc(func(console.Signal) {
		w, h := c.Size()
		tlog.Debug("ttyctl: window resized to %dx%d", w, h)
	}))

	switch {
	case args.caps:
		return printCapabilities(os.Stdout, c.Capabilities())
	case args.puts != "":
		return putCapability(c, args.puts)
	case args.keys:
		return echoKeys(c)
	default:
		return readLines(c, args)
	}
}

func consoleOptions(args cliArgs) []console.Option {
	opts := []console.Option{
		console.WithAppName(args.app),
	}
	if args.term != "" {
		opts = append(opts, console.WithType(args.term))
	}

	inputrc := args.inputrc
	if inputrc == "" {
		inputrc = config.InputrcFile()
	}
	opts = append(opts, console.WithInputrc(inputrc))

	if args.history {
		opts = append(opts, console.WithVariables(map[string]string{
			linereader.VarHistoryFile: config.HistoryFile(args.app),
		}))
	}
	return opts
}

// putCapability parses "name[,param...]" and writes the capability.
func putCapability(c *console.Console, spec string) error {
	fields := strings.Split(spec, ",")
	id, ok := caps.Lookup(strings.TrimSpace(fields[0]))
	if !ok {
		id = caps.Capability(strings.TrimSpace(fields[0]))
	}

	params := make([]any, 0, len(fields)-1)
	for _, f := range fields[1:] {
		n, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return fmt.Errorf("parameter %q: %w", f, err)
		}
		params = append(params, n)
	}

	ok, err := c.Puts(id, params...)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("terminal %q has no %s capability", c.Capabilities().Name(), id)
	}
	return c.Flush()
}

// readLines runs the line reader until end of input, printing each line.
func readLines(c *console.Console, args cliArgs) error {
	r := c.LineReader()
	defer r.Close()

	words := args.remaining()
	if len(words) == 0 {
		words = capabilityNames(c.Capabilities())
	}
	r.SetCompleter(linereader.WordCompleter(words...))

	opts := []linereader.Option{linereader.WithPrompt(args.prompt)}
	if args.mask != "" {
		m, _ := utf8.DecodeRuneInString(args.mask)
		if m == ' ' {
			m = 0
		}
		opts = append(opts, linereader.WithMask(m))
	}

	out := c.Output()
	for {
		line, err := c.ReadLine(opts...)
		switch {
		case errors.Is(err, linereader.ErrInterrupted):
			continue
		case errors.Is(err, io.EOF):
			return nil
		case err != nil:
			return err
		}
		if _, err := fmt.Fprintf(out, "%q\r\n", line); err != nil {
			return err
		}
		if err := c.Flush(); err != nil {
			return err
		}
		if args.mask != "" {
			return nil
		}
	}
}
