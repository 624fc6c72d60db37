// ABOUTME: Renders a capability set as a styled listing for --caps
// ABOUTME: Booleans, numbers and strings in separate sections, names aligned

package main

import (
	"fmt"
	"io"
	"slices"
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/mauromedda/ttyctl/pkg/caps"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("4"))
	nameStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Width(10)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
)

func printCapabilities(w io.Writer, set *caps.Set) error {
	if _, err := fmt.Fprintln(w, headerStyle.Render("terminal "+set.Name())); err != nil {
		return err
	}

	section := func(title string, ids []caps.Capability, value func(caps.Capability) string) error {
		if len(ids) == 0 {
			return nil
		}
		if _, err := fmt.Fprintf(w, "\n%s\n", headerStyle.Render(title)); err != nil {
			return err
		}
		for _, id := range ids {
			line := nameStyle.Render(string(id))
			if v := value(id); v != "" {
				line += " " + valueStyle.Render(v)
			}
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
		return nil
	}

	if err := section("booleans", set.Bools(), func(caps.Capability) string { return "" }); err != nil {
		return err
	}
	if err := section("numbers", set.Nums(), func(id caps.Capability) string {
		n, _ := set.Num(id)
		return strconv.Itoa(n)
	}); err != nil {
		return err
	}
	return section("strings", set.Strings(), func(id caps.Capability) string {
		s, _ := set.String(id)
		return strconv.Quote(s)
	})
}

// capabilityNames lists every capability in set, sorted.
func capabilityNames(set *caps.Set) []string {
	var names []string
	for _, list := range [][]caps.Capability{set.Bools(), set.Nums(), set.Strings()} {
		for _, id := range list {
			names = append(names, string(id))
		}
	}
	slices.Sort(names)
	return names
}
