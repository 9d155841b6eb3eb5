package reconcile

import (
	"fmt"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"golang.org/x/net/html"

	"github.com/vango-dev/tiny/pkg/dom"
	"github.com/vango-dev/tiny/pkg/vdom"
)

// genKeys builds a list of distinct keys in random order.
func genKeys() gopter.Gen {
	return gen.SliceOf(gen.IntRange(0, 11)).Map(func(ns []int) []string {
		var out []string
		for _, n := range ns {
			k := fmt.Sprintf("k%d", n)
			if !slices.Contains(out, k) {
				out = append(out, k)
			}
		}
		return out
	})
}

// collectIDs returns every identifier under n.
func collectIDs(n *html.Node, attr string) []string {
	var out []string
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if v, ok := dom.GetAttribute(c, attr); ok {
			out = append(out, v)
		}
		out = append(out, collectIDs(c, attr)...)
	}
	return out
}

func TestReconcileProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.Rng.Seed(4242)
	parameters.MinSuccessfulTests = 150

	properties := gopter.NewProperties(parameters)

	keyed := func(keys []string) any {
		items := make([]any, len(keys))
		for i, k := range keys {
			items[i] = vdom.Li(vdom.Key(k), vdom.OnClick(func() {}), k)
		}
		return vdom.Div(items, vdom.Footer("end"))
	}

	properties.Property("keyed update reaches next order and keeps shared nodes", prop.ForAll(
		func(prev, next []string) bool {
			r, c := newTestRenderer(t)
			rt := r.Render(keyed(prev), c)
			div := c.FirstChild
			before := itemNodes(div)

			rt.Update(keyed(next))

			want := append(slices.Clone(next), "end")
			if !cmp.Equal(want, texts(div)) {
				return false
			}
			after := itemNodes(div)
			for _, k := range next {
				if n, ok := before[k]; ok && after[k] != n {
					return false
				}
			}
			ids := collectIDs(c, r.IDAttribute())
			seen := make(map[string]bool, len(ids))
			for _, id := range ids {
				if seen[id] {
					return false
				}
				seen[id] = true
			}
			return r.Events().Len() == len(next)
		},
		genKeys(), genKeys(),
	))

	properties.Property("unkeyed update renders next values", prop.ForAll(
		func(prev, next []string) bool {
			r, c := newTestRenderer(t)
			rt := r.Render(vdom.Ul(prev), c)
			rt.Update(vdom.Ul(next))
			got := texts(c.FirstChild)
			if len(next) == 0 {
				return len(got) == 0
			}
			return cmp.Equal(next, got)
		},
		genKeys(), genKeys(),
	))

	properties.TestingRun(t)
}
