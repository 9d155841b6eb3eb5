package reactid

import (
	"errors"
	"testing"
)

func TestParseAndString(t *testing.T) {
	tests := []struct {
		in   string
		want ID
	}{
		{"0", ID{{SepRoot, 0}}},
		{"3", ID{{SepRoot, 3}}},
		{"0.1", ID{{SepRoot, 0}, {SepDOM, 1}}},
		{"0.1:2.0", ID{{SepRoot, 0}, {SepDOM, 1}, {SepList, 2}, {SepDOM, 0}}},
		{"0:12", ID{{SepRoot, 0}, {SepList, 12}}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.in, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("Parse(%q) = %v, want %v", tt.in, got, tt.want)
			}
			if got.String() != tt.in {
				t.Errorf("String() = %q, want %q", got.String(), tt.in)
			}
		})
	}
}

func TestParseInvalid(t *testing.T) {
	for _, in := range []string{"", ".", "0.", ".1", "0..1", "a", "0.b", "0.-1", "0.+1", "0;1"} {
		if _, err := Parse(in); !errors.Is(err, ErrInvalid) {
			t.Errorf("Parse(%q) error = %v, want ErrInvalid", in, err)
		}
	}
}

func TestParent(t *testing.T) {
	tests := []struct {
		in     string
		want   string
		wantOK bool
	}{
		{"0", "", false},
		{"0.1", "0", true},
		{"0.1:2", "0.1", true},
		{"0.1:2.0", "0.1:2", true},
	}
	for _, tt := range tests {
		got, ok := MustParse(tt.in).Parent()
		if ok != tt.wantOK {
			t.Errorf("Parent(%q) ok = %v, want %v", tt.in, ok, tt.wantOK)
			continue
		}
		if ok && got.String() != tt.want {
			t.Errorf("Parent(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}

	var empty ID
	if _, ok := empty.Parent(); ok {
		t.Error("empty identifier should have no parent")
	}
}

func TestParentDoesNotAlias(t *testing.T) {
	id := MustParse("0.1.2")
	parent, _ := id.Parent()
	child := parent.Child(SepList, 9)
	if id.String() != "0.1.2" {
		t.Errorf("deriving from parent mutated original: %s", id)
	}
	if child.String() != "0.1:9" {
		t.Errorf("child = %s", child)
	}
}

func TestHostParent(t *testing.T) {
	tests := []struct {
		in     string
		want   string
		wantOK bool
	}{
		{"0", "", false},
		{"0:1", "", false},
		{"0:1:4", "", false},
		{"0.1", "0", true},
		{"0.1:2", "0", true},
		{"0.1:2:0", "0", true},
		{"0.1:2.0", "0.1:2", true},
		{"0.1.3:0", "0.1", true},
	}
	for _, tt := range tests {
		got, ok := MustParse(tt.in).HostParent()
		if ok != tt.wantOK {
			t.Errorf("HostParent(%q) ok = %v, want %v", tt.in, ok, tt.wantOK)
			continue
		}
		if ok && got.String() != tt.want {
			t.Errorf("HostParent(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestWithNewIndex(t *testing.T) {
	if got := MustParse("0.1:2").WithNewIndex(7).String(); got != "0.1:7" {
		t.Errorf("WithNewIndex = %q", got)
	}
	if got := Root(0).WithNewIndex(4).String(); got != "4" {
		t.Errorf("WithNewIndex on root = %q", got)
	}
	var empty ID
	if empty.WithNewIndex(1) != nil {
		t.Error("WithNewIndex on empty should be nil")
	}
}

func TestIsDescendantOrSelf(t *testing.T) {
	tests := []struct {
		id, anc string
		want    bool
	}{
		{"0.1", "0.1", true},
		{"0.1.3", "0.1", true},
		{"0.1:3", "0.1", true},
		{"0.10", "0.1", false},
		{"0.1", "0.1.3", false},
		{"1.1", "0", false},
	}
	for _, tt := range tests {
		if got := MustParse(tt.id).IsDescendantOrSelf(MustParse(tt.anc)); got != tt.want {
			t.Errorf("%s below %s = %v, want %v", tt.id, tt.anc, got, tt.want)
		}
	}
	if MustParse("0").IsDescendantOrSelf(nil) {
		t.Error("nothing is below the empty identifier")
	}
}

func TestStringHelpers(t *testing.T) {
	if p, ok := ParentString("0.1:2"); !ok || p != "0.1" {
		t.Errorf("ParentString = %q, %v", p, ok)
	}
	if _, ok := ParentString("0"); ok {
		t.Error("ParentString(root) should report false")
	}
	if _, ok := ParentString("0.x"); ok {
		t.Error("ParentString should reject non-numeric tail")
	}
	if got := WithNewIndexString("0.1:2", 5); got != "0.1:5" {
		t.Errorf("WithNewIndexString = %q", got)
	}
	if got := WithNewIndexString("3", 5); got != "5" {
		t.Errorf("WithNewIndexString(root) = %q", got)
	}
	if !HasPrefixString("0.1:2", "0.1") || HasPrefixString("0.10", "0.1") || !HasPrefixString("0.1", "0.1") {
		t.Error("HasPrefixString is not segment aware")
	}
	if HasPrefixString("0.1", "") {
		t.Error("empty prefix should never match")
	}
}
