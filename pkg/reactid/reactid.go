package reactid

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Sep is the separator that precedes a segment.
type Sep byte

const (
	SepRoot Sep = 0   // first segment only
	SepDOM  Sep = '.' // child of a real element
	SepList Sep = ':' // slot of an array child
)

// String returns the separator as it appears in the address string.
func (s Sep) String() string {
	if s == SepRoot {
		return ""
	}
	return string(rune(s))
}

// Segment is one step of an identifier.
type Segment struct {
	Sep   Sep
	Index int
}

// ID is a parsed identifier. The zero value is the empty identifier, which
// addresses the container itself.
//
// IDs are values: every method that derives a new ID returns a fresh slice.
type ID []Segment

// ErrInvalid is returned by Parse for malformed address strings.
var ErrInvalid = errors.New("reactid: invalid identifier")

// Root returns the identifier of the root mounted into a container.
func Root(index int) ID {
	return ID{{Sep: SepRoot, Index: index}}
}

// IsZero reports whether id is the empty identifier.
func (id ID) IsZero() bool {
	return len(id) == 0
}

// Depth returns the number of segments.
func (id ID) Depth() int {
	return len(id)
}

// Last returns the trailing segment. It panics on the empty identifier.
func (id ID) Last() Segment {
	return id[len(id)-1]
}

// Child returns the identifier of the index-th slot below id.
func (id ID) Child(sep Sep, index int) ID {
	out := make(ID, len(id)+1)
	copy(out, id)
	out[len(id)] = Segment{Sep: sep, Index: index}
	return out
}

// Parent strips the trailing segment. It returns false for a root (or empty)
// identifier.
func (id ID) Parent() (ID, bool) {
	if len(id) < 2 {
		return nil, false
	}
	return id[:len(id)-1:len(id)-1], true
}

// WithNewIndex rewrites the index of the trailing segment.
func (id ID) WithNewIndex(index int) ID {
	if len(id) == 0 {
		return nil
	}
	out := make(ID, len(id))
	copy(out, id)
	out[len(out)-1].Index = index
	return out
}

// HostParent returns the identifier of the real element whose child list
// holds the nodes of the component at id. Trailing list slots are skipped,
// then one DOM slot is stripped. It returns false when the nodes live
// directly in the render container.
func (id ID) HostParent() (ID, bool) {
	n := len(id)
	for n > 1 && id[n-1].Sep == SepList {
		n--
	}
	if n < 2 {
		return nil, false
	}
	return id[: n-1 : n-1], true
}

// IsDescendantOrSelf reports whether id equals anc or lies below it.
// Matching is segment-aware, so "0.10" is not below "0.1".
func (id ID) IsDescendantOrSelf(anc ID) bool {
	if len(anc) == 0 || len(id) < len(anc) {
		return false
	}
	for i := range anc {
		if id[i] != anc[i] {
			return false
		}
	}
	return true
}

// Equal reports whether two identifiers address the same slot.
func (id ID) Equal(other ID) bool {
	return len(id) == len(other) && id.IsDescendantOrSelf(other)
}

// String formats the identifier as an address string.
func (id ID) String() string {
	var b strings.Builder
	b.Grow(len(id) * 2)
	for _, seg := range id {
		if seg.Sep != SepRoot {
			b.WriteByte(byte(seg.Sep))
		}
		b.WriteString(strconv.Itoa(seg.Index))
	}
	return b.String()
}

// Parse reads an address string such as "0.1:2".
func Parse(s string) (ID, error) {
	if s == "" {
		return nil, fmt.Errorf("%w: empty", ErrInvalid)
	}
	var id ID
	sep := SepRoot
	start := 0
	for i := 0; i <= len(s); i++ {
		if i < len(s) && s[i] != '.' && s[i] != ':' {
			continue
		}
		n, err := strconv.Atoi(s[start:i])
		if err != nil || n < 0 || s[start] == '+' || s[start] == '-' {
			return nil, fmt.Errorf("%w: %q", ErrInvalid, s)
		}
		id = append(id, Segment{Sep: sep, Index: n})
		if i < len(s) {
			sep = Sep(s[i])
		}
		start = i + 1
	}
	return id, nil
}

// MustParse is like Parse but panics on error.
func MustParse(s string) ID {
	id, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return id
}
