// ABOUTME: Tests for Set construction, nil safety, the ANSI fallback and name lookup.
// ABOUTME: Sets are immutable, so mutation of source maps must not leak in.

package caps

import (
	"slices"
	"testing"
)

func TestNilSet(t *testing.T) {
	t.Parallel()

	var s *Set
	if s.Bool(AutoRightMargin) {
		t.Error("nil Set Bool should be false")
	}
	if _, ok := s.Num(Columns); ok {
		t.Error("nil Set Num should be absent")
	}
	if _, ok := s.String(Bell); ok {
		t.Error("nil Set String should be absent")
	}
	if s.Name() != "" || s.Bools() != nil || s.Nums() != nil || s.Strings() != nil {
		t.Error("nil Set accessors should return zero values")
	}
}

func TestNewSet_CopiesInputs(t *testing.T) {
	t.Parallel()

	nums := map[Capability]int{Columns: 100}
	strs := map[Capability]string{Bell: "\a"}
	s := NewSet("x", []Capability{AutoRightMargin}, nums, strs)

	nums[Columns] = 1
	strs[Bell] = "changed"
	delete(strs, Bell)

	if v, _ := s.Num(Columns); v != 100 {
		t.Errorf("cols = %d, want 100", v)
	}
	if v, ok := s.String(Bell); !ok || v != "\a" {
		t.Errorf("bel = %q, %v", v, ok)
	}
}

func TestNewSet_NilMaps(t *testing.T) {
	t.Parallel()

	s := NewSet("empty", nil, nil, nil)
	if _, ok := s.Num(Columns); ok {
		t.Error("expected no numerics")
	}
	if len(s.Strings()) != 0 {
		t.Error("expected no strings")
	}
}

func TestParse_Nil(t *testing.T) {
	t.Parallel()

	s := Parse(nil)
	if s == nil {
		t.Fatal("Parse(nil) should return an empty Set")
	}
	if len(s.Bools())+len(s.Nums())+len(s.Strings()) != 0 {
		t.Error("Parse(nil) should be empty")
	}
}

func TestANSI(t *testing.T) {
	t.Parallel()

	s := ANSI()
	if s != ANSI() {
		t.Error("ANSI should return the same Set")
	}
	if s.Name() != ANSIName {
		t.Errorf("Name() = %q", s.Name())
	}
	for _, c := range []Capability{AutoRightMargin, MoveInsertMode, MoveStandoutMode, PrtrSilent} {
		if !s.Bool(c) {
			t.Errorf("%s should be set", c)
		}
	}
	wantNums := map[Capability]int{MaxColors: 8, Columns: 80, InitTabs: 8, Lines: 24, MaxPairs: 64}
	for c, want := range wantNums {
		if got, ok := s.Num(c); !ok || got != want {
			t.Errorf("%s = %d, %v; want %d", c, got, ok, want)
		}
	}
	if got := string(Expand(mustString(t, s, CursorAddress), 0, 0)); got != "\x1b[1;1H" {
		t.Errorf("cup(0,0) = %q", got)
	}
	if got := string(Expand(mustString(t, s, ParmLeftCursor), 5)); got != "\x1b[5D" {
		t.Errorf("cub(5) = %q", got)
	}
	if got := mustString(t, s, CursorLeft); got != "\b" {
		t.Errorf("cub1 = %q", got)
	}
	for _, c := range s.Strings() {
		if KindOf(c) != KindString {
			t.Errorf("%s is not a standard string capability", c)
		}
	}
}

func mustString(t *testing.T, s *Set, c Capability) string {
	t.Helper()
	v, ok := s.String(c)
	if !ok {
		t.Fatalf("%s missing", c)
	}
	return v
}

func TestSetListingsSorted(t *testing.T) {
	t.Parallel()

	s := ANSI()
	for _, list := range [][]Capability{s.Bools(), s.Nums(), s.Strings()} {
		if !slices.IsSorted(list) {
			t.Errorf("not sorted: %v", list)
		}
	}
}

func TestLookup(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		want Capability
		kind Kind
		ok   bool
	}{
		{"cup", CursorAddress, KindString, true},
		{"cursor_address", CursorAddress, KindString, true},
		{"auto_right_margin", AutoRightMargin, KindBool, true},
		{"cols", Columns, KindNum, true},
		{"columns", Columns, KindNum, true},
		{"no_such_capability", "", KindUnknown, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := Lookup(tt.name)
			if got != tt.want || ok != tt.ok {
				t.Errorf("Lookup(%q) = %q, %v; want %q, %v", tt.name, got, ok, tt.want, tt.ok)
			}
			if k := KindOf(got); ok && k != tt.kind {
				t.Errorf("KindOf(%q) = %v, want %v", got, k, tt.kind)
			}
		})
	}
}

func TestKindString(t *testing.T) {
	t.Parallel()

	want := map[Kind]string{KindBool: "bool", KindNum: "num", KindString: "string", KindUnknown: "unknown"}
	for k, s := range want {
		if k.String() != s {
			t.Errorf("%d.String() = %q, want %q", k, k.String(), s)
		}
	}
}
