// ABOUTME: Tab completion: candidate lookup, ranking and common-prefix insertion
// ABOUTME: Prefix matches win; when none exist, candidates are ranked by fuzzy match score

package linereader

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/sahilm/fuzzy"
)

// Completer proposes replacements for the word ending at pos. start is the
// rune offset where the replaced word begins.
type Completer interface {
	Complete(line string, pos int) (candidates []string, start int)
}

// CompleterFunc adapts a function to Completer.
type CompleterFunc func(line string, pos int) ([]string, int)

// Complete calls f.
func (f CompleterFunc) Complete(line string, pos int) ([]string, int) {
	return f(line, pos)
}

// WordCompleter completes the whitespace-delimited word before the cursor
// from a fixed list.
func WordCompleter(words ...string) Completer {
	list := append([]string(nil), words...)
	return CompleterFunc(func(line string, pos int) ([]string, int) {
		r := []rune(line)
		start := pos
		for start > 0 && r[start-1] != ' ' && r[start-1] != '\t' {
			start--
		}
		return list, start
	})
}

func hasPrefix(s, prefix string, ignoreCase bool) bool {
	if !ignoreCase {
		return strings.HasPrefix(s, prefix)
	}
	for _, pr := range prefix {
		sr, size := utf8.DecodeRuneInString(s)
		if size == 0 || !sameRune(sr, pr, true) {
			return false
		}
		s = s[size:]
	}
	return true
}

// sameRune compares runes, folding case when ignoreCase is set. Case pairs
// may differ in encoded length (K and the Kelvin sign).
func sameRune(a, b rune, ignoreCase bool) bool {
	if a == b {
		return true
	}
	if !ignoreCase {
		return false
	}
	for f := unicode.SimpleFold(a); f != a; f = unicode.SimpleFold(f) {
		if f == b {
			return true
		}
	}
	return false
}

// rank orders candidates for word: prefix matches first by fuzzy score, or
// fuzzy matches alone when nothing shares the prefix.
func rank(word string, candidates []string, ignoreCase bool) (ranked []string, prefixed bool) {
	seen := make(map[string]struct{}, len(candidates))
	var pool []string
	for _, c := range candidates {
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		if hasPrefix(c, word, ignoreCase) {
			pool = append(pool, c)
		}
	}
	if word == "" {
		sort.Strings(pool)
		return pool, true
	}
	prefixed = len(pool) > 0
	if !prefixed {
		pool = make([]string, 0, len(seen))
		for _, c := range candidates {
			if _, ok := seen[c]; ok {
				pool = append(pool, c)
				delete(seen, c)
			}
		}
	}
	for _, m := range fuzzy.Find(word, pool) {
		ranked = append(ranked, m.Str)
	}
	return ranked, prefixed
}

// commonPrefix returns the longest prefix shared by all words.
func commonPrefix(words []string, ignoreCase bool) string {
	if len(words) == 0 {
		return ""
	}
	prefix := words[0]
	for _, w := range words[1:] {
		n, m := 0, 0
		for n < len(prefix) && m < len(w) {
			pr, ps := utf8.DecodeRuneInString(prefix[n:])
			wr, ws := utf8.DecodeRuneInString(w[m:])
			if !sameRune(pr, wr, ignoreCase) {
				break
			}
			n += ps
			m += ws
		}
		prefix = prefix[:n]
	}
	return prefix
}
