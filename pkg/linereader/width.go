// ABOUTME: Display width of prompts and line text in terminal columns
// ABOUTME: Grapheme-cluster aware via uniseg, ANSI sequences in prompts count as zero width

package linereader

import (
	"regexp"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;?]*[ -/]*[@-~]|\x1b\][^\x07\x1b]*(?:\x07|\x1b\\)`)

// StripANSI removes CSI and OSC escape sequences from s.
func StripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

// VisibleWidth returns the number of columns s occupies once escape
// sequences are removed.
func VisibleWidth(s string) int {
	s = StripANSI(s)
	if isASCII(s) {
		w := 0
		for i := 0; i < len(s); i++ {
			if s[i] >= 0x20 && s[i] != 0x7f {
				w++
			}
		}
		return w
	}
	w := 0
	state := -1
	for s != "" {
		var cluster string
		cluster, s, _, state = uniseg.FirstGraphemeClusterInString(s, state)
		w += clusterWidth(cluster)
	}
	return w
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

func clusterWidth(cluster string) int {
	r, _ := utf8.DecodeRuneInString(cluster)
	if r < 0x20 || r == 0x7f {
		return 0
	}
	return runewidth.RuneWidth(r)
}

// segment is one grapheme cluster of the line, addressed in runes.
type segment struct {
	start, end int
	width      int
	text       string
}

// segments splits text into grapheme clusters.
func segments(text []rune) []segment {
	s := string(text)
	out := make([]segment, 0, len(text))
	pos := 0
	state := -1
	for s != "" {
		var cluster string
		cluster, s, _, state = uniseg.FirstGraphemeClusterInString(s, state)
		n := utf8.RuneCountInString(cluster)
		out = append(out, segment{start: pos, end: pos + n, width: clusterWidth(cluster), text: cluster})
		pos += n
	}
	return out
}

// prevBoundary returns the cluster boundary before cursor.
func prevBoundary(text []rune, cursor int) int {
	prev := 0
	for _, seg := range segments(text) {
		if seg.end >= cursor {
			return seg.start
		}
		prev = seg.end
	}
	return prev
}

// nextBoundary returns the cluster boundary after cursor.
func nextBoundary(text []rune, cursor int) int {
	for _, seg := range segments(text) {
		if seg.start >= cursor {
			return seg.end
		}
	}
	return len(text)
}
