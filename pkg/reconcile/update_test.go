package reconcile

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/net/html"

	"github.com/vango-dev/tiny/pkg/dom"
	"github.com/vango-dev/tiny/pkg/reactid"
	"github.com/vango-dev/tiny/pkg/vdom"
)

func mustID(s string) reactid.ID { return reactid.MustParse(s) }

func opStrings(ops []Op) []string {
	out := make([]string, len(ops))
	for i, op := range ops {
		out[i] = op.String()
	}
	return out
}

// keyedItems builds <li key=k>k</li> for every key.
func keyedItems(keys ...string) []any {
	out := make([]any, len(keys))
	for i, k := range keys {
		out[i] = vdom.Li(vdom.Key(k), k)
	}
	return out
}

// itemNodes returns the <li> children of parent keyed by text.
func itemNodes(parent *html.Node) map[string]*html.Node {
	out := make(map[string]*html.Node)
	for _, n := range dom.Children(parent) {
		if n.Type == html.ElementNode {
			out[dom.TextContent(n)] = n
		}
	}
	return out
}

func texts(parent *html.Node) []string {
	var out []string
	for _, n := range dom.Children(parent) {
		if n.Type == html.ElementNode {
			out = append(out, dom.TextContent(n))
		}
	}
	return out
}

func TestIdenticalUpdateProducesNoOps(t *testing.T) {
	r, c := newTestRenderer(t)
	build := func() any {
		return vdom.Div(vdom.ClassName("x"), "x", nil, []any{"a", vdom.Li(vdom.Key("k"), "b")})
	}
	rt := r.Render(build(), c)
	before := rt.HTML()

	if ops := rt.Update(build()); len(ops) != 0 {
		t.Errorf("ops = %v, want none", opStrings(ops))
	}
	if rt.HTML() != before {
		t.Errorf("HTML changed:\n%s\n%s", before, rt.HTML())
	}
}

func TestTextUpdatedInPlace(t *testing.T) {
	r, c := newTestRenderer(t)
	rt := r.Render(vdom.P("one"), c)
	span := dom.QueryByID(c, r.IDAttribute(), "0.0")

	ops := rt.Update(vdom.P("two"))
	if len(ops) != 0 {
		t.Errorf("ops = %v", opStrings(ops))
	}
	if dom.QueryByID(c, r.IDAttribute(), "0.0") != span {
		t.Error("text span was re-created")
	}
	if dom.TextContent(span) != "two" {
		t.Errorf("text = %q", dom.TextContent(span))
	}
}

func TestPropDiff(t *testing.T) {
	r, c := newTestRenderer(t)
	rt := r.Render(vdom.Div(vdom.ClassName("a"), vdom.Title("t"), vdom.Disabled(true)), c)
	div := c.FirstChild

	rt.Update(vdom.Div(vdom.ClassName("b"), vdom.Role("note"), vdom.Disabled(false)))

	if c.FirstChild != div {
		t.Fatal("element was re-created")
	}
	want := `<div data-reactid="0" class="b" role="note"></div>`
	if got := rt.HTML(); got != want {
		t.Errorf("HTML = %s, want %s", got, want)
	}
}

func TestEventPropDiff(t *testing.T) {
	r, c := newTestRenderer(t)
	var got []string
	rt := r.Render(vdom.Button(vdom.OnClick(func() { got = append(got, "first") })), c)

	rt.Update(vdom.Button(vdom.OnClick(func() { got = append(got, "second") })))
	r.Document().Dispatch(c.FirstChild, "click", nil)

	rt.Update(vdom.Button())
	r.Document().Dispatch(c.FirstChild, "click", nil)

	if diff := cmp.Diff([]string{"second"}, got); diff != "" {
		t.Errorf("clicks mismatch (-want +got):\n%s", diff)
	}
	if r.Events().Len() != 0 {
		t.Errorf("registrations = %d, want 0", r.Events().Len())
	}
}

func TestKeyedReorderMovesNodes(t *testing.T) {
	r, c := newTestRenderer(t)
	rt := r.Render(vdom.Ul(keyedItems("a", "b", "c")...), c)
	ul := c.FirstChild
	before := itemNodes(ul)

	ops := rt.Update(vdom.Ul(keyedItems("c", "a", "b")...))

	want := []string{
		"MOVE 0.2 in 0 before 0.0",
		"MOVE 0.0 in 0 before 0.1",
		"MOVE 0.1 in 0 end",
	}
	if diff := cmp.Diff(want, opStrings(ops)); diff != "" {
		t.Errorf("ops mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"c", "a", "b"}, texts(ul)); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}
	after := itemNodes(ul)
	for k, n := range before {
		if after[k] != n {
			t.Errorf("node %q was re-created", k)
		}
	}
	if id, _ := dom.GetAttribute(after["c"], r.IDAttribute()); id != "0.2" {
		t.Errorf("moved node id = %s, want 0.2", id)
	}
}

func TestInsertAllocatesFreshSlot(t *testing.T) {
	r, c := newTestRenderer(t)
	rt := r.Render(vdom.Ul(keyedItems("a", "b")...), c)

	ops := rt.Update(vdom.Ul(keyedItems("b", "x")...))

	want := []string{
		"MOVE 0.1 in 0 before 0.2",
		"INSERT 0.2 in 0 end",
		"REMOVE 0.0 from 0",
	}
	if diff := cmp.Diff(want, opStrings(ops)); diff != "" {
		t.Errorf("ops mismatch (-want +got):\n%s", diff)
	}
	wantHTML := `<ul data-reactid="0">` +
		`<li data-reactid="0.1"><span data-reactid="0.1.0">b</span></li>` +
		`<li data-reactid="0.2"><span data-reactid="0.2.0">x</span></li>` +
		`</ul>`
	if got := rt.HTML(); got != wantHTML {
		t.Errorf("HTML =\n%s\nwant\n%s", got, wantHTML)
	}
}

func TestRemovalReleasesEventsAndKeepsSiblings(t *testing.T) {
	r, c := newTestRenderer(t)
	var clicked []string
	item := func(k string) any {
		return vdom.Li(vdom.Key(k), vdom.OnClick(func() { clicked = append(clicked, k) }), k)
	}
	rt := r.Render(vdom.Ul(item("a"), item("b")), c)
	b := dom.QueryByID(c, r.IDAttribute(), "0.1")

	rt.Update(vdom.Ul(item("b")))

	if r.Events().Has(mustID("0.0"), "click") {
		t.Error("removed item still has a click registration")
	}
	if dom.QueryByID(c, r.IDAttribute(), "0.1") != b {
		t.Fatal("sibling identifier changed")
	}
	r.Document().Dispatch(b, "click", nil)
	if diff := cmp.Diff([]string{"b"}, clicked); diff != "" {
		t.Errorf("clicks mismatch (-want +got):\n%s", diff)
	}
}

func TestUnkeyedIncompatibleChildIsReplaced(t *testing.T) {
	r, c := newTestRenderer(t)
	rt := r.Render(vdom.Div(vdom.Strong("x"), "tail"), c)

	ops := rt.Update(vdom.Div(vdom.Em("x"), "tail"))

	want := []string{"REMOVE 0.0 from 0", "INSERT 0.2 in 0 before 0.1"}
	if diff := cmp.Diff(want, opStrings(ops)); diff != "" {
		t.Errorf("ops mismatch (-want +got):\n%s", diff)
	}
	wantHTML := `<div data-reactid="0">` +
		`<em data-reactid="0.2"><span data-reactid="0.2.0">x</span></em>` +
		`<span data-reactid="0.1">tail</span>` +
		`</div>`
	if got := rt.HTML(); got != wantHTML {
		t.Errorf("HTML =\n%s\nwant\n%s", got, wantHTML)
	}
}

func TestListUpdateStaysBeforeFollowingSibling(t *testing.T) {
	r, c := newTestRenderer(t)
	rt := r.Render(vdom.Div(keyedItems("a"), vdom.Footer("end")), c)
	div := c.FirstChild

	rt.Update(vdom.Div(keyedItems("z", "a", "b"), vdom.Footer("end")))

	if diff := cmp.Diff([]string{"z", "a", "b", "end"}, texts(div)); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}

	rt.Update(vdom.Div(keyedItems(), vdom.Footer("end")))
	if diff := cmp.Diff([]string{"end"}, texts(div)); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}

	rt.Update(vdom.Div(keyedItems("q"), vdom.Footer("end")))
	if diff := cmp.Diff([]string{"q", "end"}, texts(div)); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestNestedListsAtRoot(t *testing.T) {
	r, c := newTestRenderer(t)
	rt := r.Render([]any{[]any{"a", "b"}, "c"}, c)

	rt.Update([]any{[]any{"b", "x", "y"}, "c"})

	if diff := cmp.Diff([]string{"b", "x", "y", "c"}, texts(c)); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestRootUpdateReplacesIncompatibleTop(t *testing.T) {
	r, c := newTestRenderer(t)
	rt := r.Render(vdom.Div(vdom.OnClick(func() {})), c)

	ops := rt.Update("text")

	if diff := cmp.Diff([]string{"REMOVE 0 from 0", "INSERT 0 in 0 end"}, opStrings(ops)); diff != "" {
		t.Errorf("ops mismatch (-want +got):\n%s", diff)
	}
	if rt.HTML() != `<span data-reactid="0">text</span>` {
		t.Errorf("HTML = %s", rt.HTML())
	}
	if r.Events().Len() != 0 {
		t.Error("handlers of replaced tree still registered")
	}
}

func TestPatchObserver(t *testing.T) {
	var seen [][]Op
	r, c := newTestRenderer(t, WithPatchObserver(func(root reactid.ID, ops []Op) {
		seen = append(seen, ops)
	}))
	rt := r.Render(vdom.Ul(keyedItems("a")...), c)
	rt.Update(vdom.Ul(keyedItems("a", "b")...))
	rt.Update(vdom.Ul(keyedItems("a", "b")...))

	if len(seen) != 1 || len(seen[0]) != 1 || seen[0][0].Kind != OpInsert {
		t.Errorf("observed = %v", seen)
	}
	if rt.LastOps() != nil {
		t.Errorf("last ops = %v, want none", opStrings(rt.LastOps()))
	}
}
