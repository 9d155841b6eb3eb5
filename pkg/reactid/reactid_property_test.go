package reactid

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// genID builds identifiers from a root index and a list of (sep, index) pairs.
func genID() gopter.Gen {
	return gopter.CombineGens(
		gen.IntRange(0, 9),
		gen.SliceOfN(6, gen.IntRange(0, 40)),
		gen.SliceOfN(6, gen.Bool()),
	).Map(func(vals []interface{}) ID {
		id := Root(vals[0].(int))
		idx := vals[1].([]int)
		list := vals[2].([]bool)
		for i := range idx {
			sep := SepDOM
			if list[i] {
				sep = SepList
			}
			id = id.Child(sep, idx[i])
		}
		return id
	})
}

func TestIdentifierProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.Rng.Seed(4242)
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("parse inverts format", prop.ForAll(
		func(id ID) bool {
			back, err := Parse(id.String())
			return err == nil && back.Equal(id)
		},
		genID(),
	))

	properties.Property("parent of child is self", prop.ForAll(
		func(id ID, index int, list bool) bool {
			sep := SepDOM
			if list {
				sep = SepList
			}
			parent, ok := id.Child(sep, index).Parent()
			return ok && parent.Equal(id)
		},
		genID(), gen.IntRange(0, 1000), gen.Bool(),
	))

	properties.Property("string parent agrees with structured parent", prop.ForAll(
		func(id ID) bool {
			sp, sok := ParentString(id.String())
			p, ok := id.Parent()
			if sok != ok {
				return false
			}
			return !ok || sp == p.String()
		},
		genID(),
	))

	properties.Property("host parent is a DOM ancestor", prop.ForAll(
		func(id ID) bool {
			host, ok := id.HostParent()
			if !ok {
				for _, seg := range id[1:] {
					if seg.Sep == SepDOM {
						return false
					}
				}
				return true
			}
			if !id.IsDescendantOrSelf(host) || host.Equal(id) {
				return false
			}
			for _, seg := range id[len(host)+1:] {
				if seg.Sep != SepList {
					return false
				}
			}
			return id[len(host)].Sep == SepDOM
		},
		genID(),
	))

	properties.Property("siblings never prefix each other", prop.ForAll(
		func(id ID, a, b int) bool {
			if a == b {
				return true
			}
			x, y := id.Child(SepDOM, a), id.Child(SepDOM, b)
			return !x.IsDescendantOrSelf(y) && !HasPrefixString(x.String(), y.String())
		},
		genID(), gen.IntRange(0, 200), gen.IntRange(0, 200),
	))

	properties.TestingRun(t)
}
