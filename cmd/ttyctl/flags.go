// ABOUTME: CLI flag parsing using stdlib flag package
// ABOUTME: Supports --term, --caps, --puts, --keys, --prompt, --mask, --history, --verbose, --version

package main

import "flag"

type cliArgs struct {
	term    string
	app     string
	inputrc string
	caps    bool
	puts    string
	keys    bool
	prompt  string
	mask    string
	history bool
	verbose bool
	logFile string
	version bool
}

func parseFlags() cliArgs {
	var args cliArgs

	flag.StringVar(&args.term, "term", "", "Terminal type (default $TERM)")
	flag.StringVar(&args.app, "app", "ttyctl", "Application name for inputrc sections and history")
	flag.StringVar(&args.inputrc, "inputrc", "", "Line editor config file (default ~/.ttyctl/inputrc.yaml)")
	flag.BoolVar(&args.caps, "caps", false, "List the capabilities of the terminal and exit")
	flag.StringVar(&args.puts, "puts", "", "Write a string capability, e.g. cup,10,4 or bel")
	flag.BoolVar(&args.keys, "keys", false, "Enter raw mode and print decoded key names (ctrl+d quits)")
	flag.StringVar(&args.prompt, "prompt", "> ", "Prompt shown by the line reader")
	flag.StringVar(&args.mask, "mask", "", "Read masked input, echoing this character (use ' ' for none)")
	flag.BoolVar(&args.history, "history", false, "Persist line history under ~/.ttyctl/history")
	flag.BoolVar(&args.verbose, "verbose", false, "Enable debug logging")
	flag.StringVar(&args.logFile, "log", "", "Write log output to this file instead of stderr")
	flag.BoolVar(&args.version, "version", false, "Show version and exit")

	flag.Parse()
	return args
}

// remaining returns the non-flag command-line arguments.
func (a cliArgs) remaining() []string {
	return flag.Args()
}
