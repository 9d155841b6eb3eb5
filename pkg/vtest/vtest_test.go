package vtest_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/vango-dev/tiny/pkg/reconcile"
	"github.com/vango-dev/tiny/pkg/vdom"
	"github.com/vango-dev/tiny/pkg/vtest"
)

type clicker struct {
	reconcile.Base
}

func (c *clicker) Render() any {
	n := c.State()["n"].(int)
	return vdom.Button(
		vdom.Class("btn-primary"),
		vdom.OnClick(func() { c.SetState(reconcile.State{"n": n + 1}) }),
		fmt.Sprintf("clicked %d", n),
	)
}

var Clicker = reconcile.Define("Clicker", func(vdom.Props) reconcile.Component {
	c := &clicker{}
	c.SetState(reconcile.State{"n": 0})
	return c
})

func TestHarness_ClickRerenders(t *testing.T) {
	h := vtest.New().Build(t)
	root := h.Mount(vdom.H(Clicker))

	h.Click("0")
	h.Click("0.0")

	vtest.ExpectContains(t, root, "clicked 2")
	vtest.ExpectNotContains(t, root, "clicked 0")
	vtest.ExpectElement(t, root, "button")
	vtest.ExpectAttribute(t, root, "class", "btn-primary")
	vtest.ExpectOps(t, root)
}

func TestHarness_WithIDAttributeAndRootIndex(t *testing.T) {
	h := vtest.New().
		WithIDAttribute("data-tid").
		WithRootIndex(3).
		Build(t)

	first := h.Mount(vdom.P("one"))
	second := h.Mount(vdom.P("two"))

	vtest.ExpectAttribute(t, first, "data-tid", "3")
	vtest.ExpectAttribute(t, second, "data-tid", "4")
	if got := h.Renderer.Roots(); got != 2 {
		t.Errorf("expected 2 roots, got %d", got)
	}
}

func TestHarness_ExpectOpsAfterUpdate(t *testing.T) {
	h := vtest.New().Build(t)
	root := h.Mount(vdom.Ul(vdom.Li("a")))

	root.Update(vdom.Ul(vdom.Li("a"), vdom.Li("b")))

	vtest.ExpectOps(t, root, "INSERT 0.1 in 0 end")
}

func TestHarness_NodeLookup(t *testing.T) {
	h := vtest.New().Build(t)
	h.Mount(vdom.Div(vdom.Span("x")))

	if n := h.Node("0.0"); n.Data != "span" {
		t.Errorf("expected span, got %s", n.Data)
	}
}

func TestRenderToString(t *testing.T) {
	out := vtest.RenderToString(vdom.P("hello"))
	if !strings.Contains(out, "hello") {
		t.Errorf("expected hello in %s", out)
	}
	if !strings.HasPrefix(out, "<p") {
		t.Errorf("expected <p> element, got %s", out)
	}
}
