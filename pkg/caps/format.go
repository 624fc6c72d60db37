// ABOUTME: Expands parameterized capability templates into output bytes.
// ABOUTME: Parameter evaluation is delegated to xo/terminfo; padding markers are removed.

package caps

import (
	"io"
	"regexp"

	"github.com/xo/terminfo"
)

// padding matches $<n>, $<n*>, $<n/> and $<n.m*/> delay markers.
var padding = regexp.MustCompile(`\$<[0-9]+(?:\.[0-9]*)?[*/]*>`)

// Expand evaluates template with params and removes padding markers.
// Integer parameters of any width are passed as int; a byte parameter is
// kept as a byte so that %c prints it.
func Expand(template string, params ...any) []byte {
	if template == "" {
		return nil
	}
	norm := make([]any, len(params))
	for i, p := range params {
		norm[i] = normalize(p)
	}
	out := terminfo.Printf([]byte(template), norm...)
	return padding.ReplaceAll([]byte(out), nil)
}

// Tputs expands template and writes the result to w.
func Tputs(w io.Writer, template string, params ...any) error {
	b := Expand(template, params...)
	if len(b) == 0 {
		return nil
	}
	_, err := w.Write(b)
	return err
}

func normalize(p any) any {
	switch v := p.(type) {
	case int8:
		return int(v)
	case int16:
		return int(v)
	case int32:
		return int(v)
	case int64:
		return int(v)
	case uint:
		return int(v)
	case uint16:
		return int(v)
	case uint32:
		return int(v)
	case uint64:
		return int(v)
	}
	return p
}
