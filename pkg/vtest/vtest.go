package vtest

import (
	"io"
	"log/slog"
	"strings"
	"testing"

	"golang.org/x/net/html"

	"github.com/vango-dev/tiny/pkg/dom"
	"github.com/vango-dev/tiny/pkg/event"
	"github.com/vango-dev/tiny/pkg/reconcile"
)

// HarnessBuilder allows fluent construction of test harnesses.
type HarnessBuilder struct {
	attr   string
	logger *slog.Logger
	opts   []reconcile.Option
}

// New creates a new harness builder with a discarding logger.
//
// Example:
//
//	h := vtest.New().WithRootIndex(1).Build(t)
func New() *HarnessBuilder {
	return &HarnessBuilder{
		attr:   event.DefaultIDAttribute,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithIDAttribute sets the attribute that carries identifiers.
func (b *HarnessBuilder) WithIDAttribute(attr string) *HarnessBuilder {
	b.attr = attr
	return b
}

// WithLogger sets the logger of the controller and renderer.
func (b *HarnessBuilder) WithLogger(l *slog.Logger) *HarnessBuilder {
	b.logger = l
	return b
}

// WithRootIndex sets the index of the first root.
func (b *HarnessBuilder) WithRootIndex(index int) *HarnessBuilder {
	b.opts = append(b.opts, reconcile.WithRootIndex(index))
	return b
}

// WithOptions passes extra renderer options.
func (b *HarnessBuilder) WithOptions(opts ...reconcile.Option) *HarnessBuilder {
	b.opts = append(b.opts, opts...)
	return b
}

// Build creates the harness. The renderer is closed and the controller
// torn down when the test ends.
func (b *HarnessBuilder) Build(tb testing.TB) *Harness {
	tb.Helper()
	doc := dom.NewDocument()
	events := event.New(doc,
		event.WithIDAttribute(b.attr),
		event.WithLogger(b.logger),
	)
	opts := append([]reconcile.Option{reconcile.WithLogger(b.logger)}, b.opts...)
	h := &Harness{
		tb:       tb,
		Doc:      doc,
		Events:   events,
		Renderer: reconcile.New(doc, events, opts...),
	}
	tb.Cleanup(func() {
		h.Renderer.Close()
		h.Events.Teardown()
	})
	return h
}

// Harness is a document, controller and renderer owned by one test.
type Harness struct {
	tb       testing.TB
	Doc      *dom.Document
	Events   *event.Controller
	Renderer *reconcile.Renderer
}

// Mount renders element into the document body. Every mount after the
// first gets a fresh <div> appended to the body as its container.
func (h *Harness) Mount(element any) *reconcile.Root {
	container := h.Doc.Body()
	if h.Renderer.Roots() > 0 {
		container = h.Doc.CreateElement("div")
		dom.AppendChild(h.Doc.Body(), container)
	}
	return h.MountIn(element, container)
}

// MountIn renders element into container.
func (h *Harness) MountIn(element any, container *html.Node) *reconcile.Root {
	return h.Renderer.Render(element, container)
}

// Node returns the host node carrying id, failing the test when absent.
func (h *Harness) Node(id string) *html.Node {
	h.tb.Helper()
	n := dom.QueryByID(h.Doc.Root(), h.Events.IDAttribute(), id)
	if n == nil {
		h.tb.Fatalf("no node with %s=%q in:\n%s", h.Events.IDAttribute(), id, truncate(h.Doc.String(), 500))
	}
	return n
}

// Dispatch delivers eventType at the node carrying id.
func (h *Harness) Dispatch(id, eventType string, data map[string]any) *dom.Event {
	h.tb.Helper()
	return h.Doc.Dispatch(h.Node(id), eventType, data)
}

// Click delivers a click at the node carrying id.
func (h *Harness) Click(id string) *dom.Event {
	h.tb.Helper()
	return h.Dispatch(id, "click", nil)
}

// RenderToString mounts element into a throwaway document and returns
// the container's inner HTML.
//
// Example:
//
//	html := vtest.RenderToString(tiny.H("p", "hi"))
//	if !strings.Contains(html, "hi") {
//	    t.Error("missing expected text")
//	}
func RenderToString(element any) string {
	doc := dom.NewDocument()
	events := event.New(doc, event.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	defer events.Teardown()
	r := reconcile.New(doc, events)
	defer r.Close()
	return r.Render(element, doc.Body()).HTML()
}

// ExpectContains asserts that the rendered root contains expected.
func ExpectContains(t testing.TB, root *reconcile.Root, expected string) {
	t.Helper()
	out := root.HTML()
	if !strings.Contains(out, expected) {
		t.Errorf("expected rendered output to contain %q, got:\n%s", expected, truncate(out, 500))
	}
}

// ExpectNotContains asserts that the rendered root does not contain unexpected.
func ExpectNotContains(t testing.TB, root *reconcile.Root, unexpected string) {
	t.Helper()
	out := root.HTML()
	if strings.Contains(out, unexpected) {
		t.Errorf("expected rendered output to NOT contain %q, got:\n%s", unexpected, truncate(out, 500))
	}
}

// ExpectElement asserts that the rendered root contains a tag.
func ExpectElement(t testing.TB, root *reconcile.Root, tag string) {
	t.Helper()
	out := root.HTML()
	if !strings.Contains(out, "<"+tag) {
		t.Errorf("expected rendered output to contain <%s> element, got:\n%s", tag, truncate(out, 500))
	}
}

// ExpectAttribute asserts that the rendered root contains an attribute value.
func ExpectAttribute(t testing.TB, root *reconcile.Root, attr, value string) {
	t.Helper()
	out := root.HTML()
	needle := attr + `="` + value + `"`
	if !strings.Contains(out, needle) {
		t.Errorf("expected attribute %s=%q not found, got:\n%s", attr, value, truncate(out, 500))
	}
}

// ExpectOps asserts the operations of the root's last run, in order.
func ExpectOps(t testing.TB, root *reconcile.Root, expected ...string) {
	t.Helper()
	ops := root.LastOps()
	got := make([]string, len(ops))
	for i, op := range ops {
		got[i] = op.String()
	}
	if len(got) != len(expected) {
		t.Errorf("expected %d ops, got %d:\n%s", len(expected), len(got), strings.Join(got, "\n"))
		return
	}
	for i := range got {
		if got[i] != expected[i] {
			t.Errorf("op %d: expected %q, got %q", i, expected[i], got[i])
		}
	}
}

// truncate truncates a string to max length with ellipsis.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
