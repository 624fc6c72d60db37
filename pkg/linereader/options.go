// ABOUTME: Per-read options, error kinds and reader variables.
// ABOUTME: Variables come from defaults, then the inputrc file, then the construction map.

package linereader

import (
	"errors"
	"strconv"
	"strings"
)

// ErrInterrupted matches, with errors.Is, the error returned when the user
// cancels a read with the interrupt key or signal.
var ErrInterrupted = errors.New("linereader: interrupted")

// InterruptError carries the text that was on the line when the read was
// interrupted.
type InterruptError struct {
	Partial string
}

func (e *InterruptError) Error() string {
	return ErrInterrupted.Error()
}

// Is reports whether target is ErrInterrupted.
func (e *InterruptError) Is(target error) bool {
	return target == ErrInterrupted
}

// Option adjusts a single ReadLine call.
type Option func(*readOptions)

type readOptions struct {
	prompt string
	masked bool
	mask   rune
	buffer string
}

// WithPrompt shows prompt before the input.
func WithPrompt(prompt string) Option {
	return func(o *readOptions) { o.prompt = prompt }
}

// WithMask echoes every character as mask. A zero mask echoes nothing.
// Masked lines are not added to history.
func WithMask(mask rune) Option {
	return func(o *readOptions) {
		o.masked = true
		o.mask = mask
	}
}

// WithBuffer pre-fills the line with text, cursor at the end.
func WithBuffer(text string) Option {
	return func(o *readOptions) { o.buffer = text }
}

// Variable names understood by the reader.
const (
	VarBellStyle            = "bell-style"
	VarHistorySize          = "history-size"
	VarHistoryFile          = "history-file"
	VarCompletionIgnoreCase = "completion-ignore-case"
)

const defaultHistorySize = 500

type variables struct {
	bellStyle   string
	historySize int
	historyFile string
	ignoreCase  bool
}

func defaultVariables() variables {
	return variables{bellStyle: "audible", historySize: defaultHistorySize}
}

// parseVariables applies each layer in order; later layers win.
func parseVariables(layers ...map[string]string) variables {
	v := defaultVariables()
	for _, layer := range layers {
		for name, value := range layer {
			v.set(name, strings.TrimSpace(value))
		}
	}
	return v
}

func (v *variables) set(name, value string) {
	switch strings.ToLower(name) {
	case VarBellStyle:
		switch strings.ToLower(value) {
		case "none", "off":
			v.bellStyle = "none"
		case "audible", "on", "":
			v.bellStyle = "audible"
		}
	case VarHistorySize:
		if n, err := strconv.Atoi(value); err == nil && n >= 0 {
			v.historySize = n
		}
	case VarHistoryFile:
		v.historyFile = value
	case VarCompletionIgnoreCase:
		v.ignoreCase = isOn(value)
	}
}

func isOn(s string) bool {
	switch strings.ToLower(s) {
	case "on", "true", "yes", "1":
		return true
	}
	return false
}
