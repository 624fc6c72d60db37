// ABOUTME: Database resolves terminal type names to compiled terminfo descriptions.
// ABOUTME: DirDatabase searches the standard directories and memoizes results per name.

package caps

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/xo/terminfo"
	"golang.org/x/sync/singleflight"
)

// ErrNotFound is returned when no directory holds a description for a name.
var ErrNotFound = errors.New("terminal description not found")

// Database looks up compiled terminal descriptions by terminal type name.
type Database interface {
	Lookup(term string) (*terminfo.Terminfo, error)
}

// DatabaseFunc adapts a function to the Database interface.
type DatabaseFunc func(term string) (*terminfo.Terminfo, error)

// Lookup calls f.
func (f DatabaseFunc) Lookup(term string) (*terminfo.Terminfo, error) {
	return f(term)
}

// DirDatabase searches a list of terminfo directories in order. Successful
// lookups are cached; concurrent lookups of the same name share one read.
type DirDatabase struct {
	dirs  []string
	group singleflight.Group

	mu    sync.RWMutex
	cache map[string]*terminfo.Terminfo
}

// NewDirDatabase returns a database over dirs. With no dirs, the standard
// search path from DefaultDirs is used.
func NewDirDatabase(dirs ...string) *DirDatabase {
	if len(dirs) == 0 {
		dirs = DefaultDirs()
	}
	return &DirDatabase{
		dirs:  dirs,
		cache: make(map[string]*terminfo.Terminfo),
	}
}

// DefaultDirs returns the terminfo(5) search order: $TERMINFO, ~/.terminfo,
// $TERMINFO_DIRS, then the system directories.
func DefaultDirs() []string {
	var dirs []string
	if dir := os.Getenv("TERMINFO"); dir != "" {
		dirs = append(dirs, dir)
	}
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, ".terminfo"))
	}
	if list := os.Getenv("TERMINFO_DIRS"); list != "" {
		for _, d := range strings.Split(list, ":") {
			if d != "" {
				dirs = append(dirs, d)
			}
		}
	}
	return append(dirs, "/etc/terminfo", "/lib/terminfo", "/usr/share/terminfo")
}

// Dirs returns the directories searched, in order.
func (d *DirDatabase) Dirs() []string {
	return append([]string(nil), d.dirs...)
}

// Lookup returns the description for term.
func (d *DirDatabase) Lookup(term string) (*terminfo.Terminfo, error) {
	if term == "" {
		return nil, terminfo.ErrEmptyTermName
	}
	if strings.ContainsAny(term, `/\`) || term == "." || term == ".." {
		return nil, fmt.Errorf("invalid terminal name %q", term)
	}

	d.mu.RLock()
	ti, ok := d.cache[term]
	d.mu.RUnlock()
	if ok {
		return ti, nil
	}

	v, err, _ := d.group.Do(term, func() (any, error) {
		ti, err := d.search(term)
		if err != nil {
			return nil, err
		}
		d.mu.Lock()
		d.cache[term] = ti
		d.mu.Unlock()
		return ti, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*terminfo.Terminfo), nil
}

func (d *DirDatabase) search(term string) (*terminfo.Terminfo, error) {
	for _, dir := range d.dirs {
		ti, err := terminfo.Open(dir, term)
		switch {
		case err == nil:
			return ti, nil
		case errors.Is(err, terminfo.ErrFileNotFound), errors.Is(err, os.ErrNotExist):
			continue
		default:
			return nil, fmt.Errorf("loading %s from %s: %w", term, dir, err)
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrNotFound, term)
}

// Resolve looks up term in db and parses the result into a Set.
func Resolve(db Database, term string) (*Set, error) {
	ti, err := db.Lookup(term)
	if err != nil {
		return nil, err
	}
	return Parse(ti), nil
}
