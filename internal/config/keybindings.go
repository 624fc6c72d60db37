// ABOUTME: Line-editor actions and the key names bound to them
// ABOUTME: Defaults follow Emacs conventions; inputrc bindings replace an action's key list

package config

import (
	"fmt"
	"slices"
	"strings"
)

// Action is a line-editor command that keys can be bound to.
type Action string

const (
	ActionBeginningOfLine    Action = "beginning-of-line"
	ActionEndOfLine          Action = "end-of-line"
	ActionBackwardChar       Action = "backward-char"
	ActionForwardChar        Action = "forward-char"
	ActionBackwardWord       Action = "backward-word"
	ActionForwardWord        Action = "forward-word"
	ActionBackwardDeleteChar Action = "backward-delete-char"
	ActionDeleteChar         Action = "delete-char"
	ActionDeleteCharOrEOF    Action = "delete-char-or-eof"
	ActionKillLine           Action = "kill-line"
	ActionUnixLineDiscard    Action = "unix-line-discard"
	ActionUnixWordRubout     Action = "unix-word-rubout"
	ActionKillWord           Action = "kill-word"
	ActionYank               Action = "yank"
	ActionYankPop            Action = "yank-pop"
	ActionUndo               Action = "undo"
	ActionTransposeChars     Action = "transpose-chars"
	ActionPreviousHistory    Action = "previous-history"
	ActionNextHistory        Action = "next-history"
	ActionComplete           Action = "complete"
	ActionClearScreen        Action = "clear-screen"
	ActionAcceptLine         Action = "accept-line"
	ActionInterrupt          Action = "interrupt"
)

var defaultBindings = map[Action][]string{
	ActionBeginningOfLine:    {"home", "ctrl+a"},
	ActionEndOfLine:          {"end", "ctrl+e"},
	ActionBackwardChar:       {"left", "ctrl+b"},
	ActionForwardChar:        {"right", "ctrl+f"},
	ActionBackwardWord:       {"alt+b", "ctrl+left"},
	ActionForwardWord:        {"alt+f", "ctrl+right"},
	ActionBackwardDeleteChar: {"backspace", "ctrl+h"},
	ActionDeleteChar:         {"delete"},
	ActionDeleteCharOrEOF:    {"ctrl+d"},
	ActionKillLine:           {"ctrl+k"},
	ActionUnixLineDiscard:    {"ctrl+u"},
	ActionUnixWordRubout:     {"ctrl+w", "alt+backspace"},
	ActionKillWord:           {"alt+d"},
	ActionYank:               {"ctrl+y"},
	ActionYankPop:            {"alt+y"},
	ActionUndo:               {"ctrl+_"},
	ActionTransposeChars:     {"ctrl+t"},
	ActionPreviousHistory:    {"up", "ctrl+p"},
	ActionNextHistory:        {"down", "ctrl+n"},
	ActionComplete:           {"tab"},
	ActionClearScreen:        {"ctrl+l"},
	ActionAcceptLine:         {"enter", "ctrl+j"},
	ActionInterrupt:          {"ctrl+c"},
}

// Actions returns every known action, sorted.
func Actions() []Action {
	out := make([]Action, 0, len(defaultBindings))
	for a := range defaultBindings {
		out = append(out, a)
	}
	slices.Sort(out)
	return out
}

// Keybindings maps key names ("ctrl+a", "alt+b", "up") to actions.
type Keybindings struct {
	bindings map[Action][]string
	index    map[string]Action
}

// NewKeybindings returns the default bindings.
func NewKeybindings() *Keybindings {
	kb := &Keybindings{
		bindings: make(map[Action][]string, len(defaultBindings)),
		index:    make(map[string]Action),
	}
	for _, a := range Actions() {
		kb.set(a, defaultBindings[a])
	}
	return kb
}

// NormalizeKey lowercases a key name and accepts "-" as the modifier
// separator ("C-a" style is not supported).
func NormalizeKey(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, mod := range []string{"ctrl-", "alt-", "shift-", "meta-"} {
		name = strings.ReplaceAll(name, mod, strings.TrimSuffix(mod, "-")+"+")
	}
	return strings.ReplaceAll(name, "meta+", "alt+")
}

func (kb *Keybindings) set(a Action, keys []string) {
	for _, k := range kb.bindings[a] {
		if kb.index[k] == a {
			delete(kb.index, k)
		}
	}
	norm := make([]string, 0, len(keys))
	for _, k := range keys {
		k = NormalizeKey(k)
		if k == "" {
			continue
		}
		if prev, ok := kb.index[k]; ok && prev != a {
			kb.bindings[prev] = slices.DeleteFunc(kb.bindings[prev], func(s string) bool { return s == k })
		}
		kb.index[k] = a
		norm = append(norm, k)
	}
	kb.bindings[a] = norm
}

// Bind replaces the keys bound to action. A key already bound to another
// action moves to this one.
func (kb *Keybindings) Bind(action Action, keys ...string) error {
	if _, ok := defaultBindings[action]; !ok {
		return fmt.Errorf("unknown action %q", action)
	}
	kb.set(action, keys)
	return nil
}

// Apply binds every entry of raw, as read from an inputrc file. Unknown
// actions are reported together after the known ones are applied.
func (kb *Keybindings) Apply(raw map[string][]string) error {
	var unknown []string
	names := make([]string, 0, len(raw))
	for name := range raw {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		if err := kb.Bind(Action(name), raw[name]...); err != nil {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) > 0 {
		return fmt.Errorf("unknown actions: %s", strings.Join(unknown, ", "))
	}
	return nil
}

// Resolve returns the action bound to keyName.
func (kb *Keybindings) Resolve(keyName string) (Action, bool) {
	a, ok := kb.index[NormalizeKey(keyName)]
	return a, ok
}

// Keys returns the keys bound to action.
func (kb *Keybindings) Keys(action Action) []string {
	if kb == nil {
		return nil
	}
	return slices.Clone(kb.bindings[action])
}
