// ABOUTME: Redraws the prompt and edit line with terminal capabilities
// ABOUTME: Keeps the cursor visible by scrolling the line horizontally within the terminal width

package linereader

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/mauromedda/ttyctl/pkg/caps"
)

type display struct {
	term        Terminal
	prompt      string
	promptWidth int
	masked      bool
	mask        rune

	// scroll is the index of the first visible cluster.
	scroll int
	// drawn is the width written after the prompt on the last render.
	drawn int
}

func newDisplay(term Terminal, o readOptions) *display {
	return &display{
		term:        term,
		prompt:      o.prompt,
		promptWidth: VisibleWidth(o.prompt),
		masked:      o.masked,
		mask:        o.mask,
	}
}

func (d *display) write(s string) error {
	if s == "" {
		return nil
	}
	_, err := d.term.Output().Write([]byte(s))
	return err
}

// puts writes capability id, falling back to fallback when the terminal
// lacks it.
func (d *display) puts(id caps.Capability, fallback string, params ...any) error {
	ok, err := d.term.Puts(id, params...)
	if err != nil {
		return err
	}
	if !ok {
		return d.write(fallback)
	}
	return nil
}

func (d *display) glyphs(segs []segment) []segment {
	if !d.masked {
		return segs
	}
	out := make([]segment, len(segs))
	for i, seg := range segs {
		seg.text = ""
		seg.width = 0
		if d.mask != 0 {
			seg.text = string(d.mask)
			seg.width = runewidth.RuneWidth(d.mask)
		}
		out[i] = seg
	}
	return out
}

// render draws the prompt and the visible part of text with the cursor at
// rune offset cursor.
func (d *display) render(text []rune, cursor int) error {
	segs := d.glyphs(segments(text))

	ci := len(segs)
	for i, seg := range segs {
		if seg.start >= cursor {
			ci = i
			break
		}
	}

	avail := d.term.Width() - d.promptWidth - 1
	if avail < 1 {
		avail = 1
	}
	if d.scroll > ci {
		d.scroll = ci
	}
	if d.scroll > len(segs) {
		d.scroll = len(segs)
	}
	for d.scroll < ci && spanWidth(segs[d.scroll:ci]) > avail {
		d.scroll++
	}
	end, used := d.scroll, 0
	for end < len(segs) && used+segs[end].width <= avail {
		used += segs[end].width
		end++
	}

	var b strings.Builder
	b.WriteString(d.prompt)
	for _, seg := range segs[d.scroll:end] {
		b.WriteString(seg.text)
	}

	if err := d.puts(caps.CarriageReturn, "\r"); err != nil {
		return fmt.Errorf("drawing line: %w", err)
	}
	if err := d.write(b.String()); err != nil {
		return fmt.Errorf("drawing line: %w", err)
	}
	back := spanWidth(segs[min(ci, end):end])
	if err := d.clearTail(used, &back); err != nil {
		return fmt.Errorf("drawing line: %w", err)
	}
	d.drawn = used
	if err := d.moveLeft(back); err != nil {
		return fmt.Errorf("drawing line: %w", err)
	}
	return d.term.Flush()
}

// clearTail erases what the previous render left beyond used columns.
func (d *display) clearTail(used int, back *int) error {
	ok, err := d.term.Puts(caps.ClrEol)
	if err != nil || ok {
		return err
	}
	if extra := d.drawn - used; extra > 0 {
		*back += extra
		return d.write(strings.Repeat(" ", extra))
	}
	return nil
}

func (d *display) moveLeft(n int) error {
	if n <= 0 {
		return nil
	}
	ok, err := d.term.Puts(caps.ParmLeftCursor, n)
	if err != nil || ok {
		return err
	}
	for range n {
		if err := d.puts(caps.CursorLeft, "\b"); err != nil {
			return err
		}
	}
	return nil
}

// finish leaves the cursor at the end of the line and moves to the next one.
func (d *display) finish(text []rune) error {
	if err := d.render(text, len(text)); err != nil {
		return err
	}
	if err := d.write("\r\n"); err != nil {
		return fmt.Errorf("drawing line: %w", err)
	}
	return d.term.Flush()
}

func spanWidth(segs []segment) int {
	w := 0
	for _, seg := range segs {
		w += seg.width
	}
	return w
}
