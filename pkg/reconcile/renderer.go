package reconcile

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/net/html"

	"github.com/vango-dev/tiny/internal/errors"
	"github.com/vango-dev/tiny/pkg/dom"
	"github.com/vango-dev/tiny/pkg/event"
	"github.com/vango-dev/tiny/pkg/reactid"
)

// DefaultTracerName is the tracer used when WithTracer is not given.
const DefaultTracerName = "tiny"

// Option configures a Renderer.
type Option func(*Renderer)

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(r *Renderer) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithTracer sets the tracer used for render and update spans.
func WithTracer(t trace.Tracer) Option {
	return func(r *Renderer) {
		if t != nil {
			r.tracer = t
		}
	}
}

// WithMetrics records reconciliation metrics on m.
func WithMetrics(m *Metrics) Option {
	return func(r *Renderer) {
		r.metrics = m
	}
}

// WithRootIndex sets the index of the first root identifier.
func WithRootIndex(index int) Option {
	return func(r *Renderer) {
		r.nextRoot = index
	}
}

// WithPatchObserver registers fn to receive every batch of operations
// applied to the document.
func WithPatchObserver(fn func(root reactid.ID, ops []Op)) Option {
	return func(r *Renderer) {
		r.observers = append(r.observers, fn)
	}
}

// Renderer mounts element trees into containers of one document.
type Renderer struct {
	doc    *dom.Document
	events *event.Controller
	attr   string

	logger    *slog.Logger
	tracer    trace.Tracer
	metrics   *Metrics
	observers []func(reactid.ID, []Op)

	roots    map[*html.Node]*Root
	nextRoot int
	closed   bool
}

// New creates a Renderer for doc. Event handler props are registered on
// events, whose identifier attribute the renderer also writes.
func New(doc *dom.Document, events *event.Controller, opts ...Option) *Renderer {
	r := &Renderer{
		doc:    doc,
		events: events,
		attr:   events.IDAttribute(),
		logger: slog.Default(),
		tracer: otel.Tracer(DefaultTracerName),
		roots:  make(map[*html.Node]*Root),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Document returns the host document.
func (r *Renderer) Document() *dom.Document { return r.doc }

// Events returns the event controller.
func (r *Renderer) Events() *event.Controller { return r.events }

// IDAttribute returns the attribute carrying identifiers.
func (r *Renderer) IDAttribute() string { return r.attr }

// Render mounts element into container, replacing whatever the container
// held. Rendering into a container that already has a root unmounts the
// previous tree first and reuses its root index.
func (r *Renderer) Render(element any, container *html.Node) *Root {
	if r.closed {
		panic(errors.New("E106"))
	}
	if container == nil {
		panic(errors.New("E105"))
	}

	var id reactid.ID
	if prev, ok := r.roots[container]; ok {
		id = prev.id
		prev.Unmount()
	} else {
		id = reactid.Root(r.nextRoot)
		r.nextRoot++
	}

	rt := &Root{r: r, container: container, id: id}
	rt.run(context.Background(), "tiny.render", func() {
		top := instantiate(rt, element)
		dom.ReplaceChildren(container, top.mount(id, nil)...)
		rt.top = top
		r.roots[container] = rt
	}, attribute.String("tiny.root_id", id.String()))

	r.logger.Debug("rendered", "root", id.String(), "kind", rt.top.kind().String())
	return rt
}

// Roots returns the number of mounted roots.
func (r *Renderer) Roots() int { return len(r.roots) }

// Close unmounts every root. Render panics afterwards. The event
// controller is left to its owner.
func (r *Renderer) Close() {
	if r.closed {
		return
	}
	for _, rt := range r.roots {
		rt.Unmount()
	}
	r.closed = true
}

// Root is one tree mounted into a container.
type Root struct {
	r         *Renderer
	container *html.Node
	id        reactid.ID
	top       component

	depth   int
	pending []func()
	ops     []Op
	lastOps []Op
}

// ID returns the root identifier.
func (rt *Root) ID() reactid.ID { return rt.id }

// Container returns the node the tree is mounted into.
func (rt *Root) Container() *html.Node { return rt.container }

// LastOps returns the operations applied by the most recent update of this
// root.
func (rt *Root) LastOps() []Op { return rt.lastOps }

// Update reconciles the mounted tree against element. A compatible top-level
// component is updated in place; otherwise it is replaced.
func (rt *Root) Update(element any) []Op {
	if rt.top == nil {
		panic(errors.New("E106").WithDetail("root has been unmounted"))
	}
	rt.run(context.Background(), "tiny.update", func() {
		if rt.top.shouldReceive(element) {
			rt.top.receiveComponent(element)
			return
		}
		old := rt.top.nodes()
		rt.top.unmount()
		rt.top = instantiate(rt, element)
		nodes := rt.top.mount(rt.id, nil)
		dom.ReplaceChildren(rt.container, nodes...)
		ops := make([]Op, 0, 2)
		if len(old) > 0 {
			ops = append(ops, Op{Kind: OpRemove, ParentID: rt.id, Parent: rt.container, From: rt.id})
		}
		if len(nodes) > 0 {
			ops = append(ops, Op{Kind: OpInsert, ParentID: rt.id, Parent: rt.container, Slot: rt.id, Nodes: nodes})
		}
		rt.record(ops)
	}, attribute.String("tiny.root_id", rt.id.String()))
	return rt.lastOps
}

// Unmount releases the tree's event registrations, runs unmount hooks and
// empties the container.
func (rt *Root) Unmount() {
	if rt.top == nil {
		return
	}
	rt.top.unmount()
	rt.top = nil
	dom.RemoveChildren(rt.container)
	if rt.r.roots[rt.container] == rt {
		delete(rt.r.roots, rt.container)
	}
}

// HTML returns the container's serialized content.
func (rt *Root) HTML() string { return dom.InnerHTML(rt.container) }

// run executes fn as one top-level operation. Nested calls join the
// outer one; mount hooks are flushed and ops published when the outermost
// call returns.
func (rt *Root) run(ctx context.Context, span string, fn func(), attrs ...attribute.KeyValue) {
	if rt.depth > 0 {
		rt.depth++
		defer func() { rt.depth-- }()
		fn()
		return
	}

	_, s := rt.r.tracer.Start(ctx, span, trace.WithAttributes(attrs...))
	defer s.End()

	rt.depth = 1
	rt.ops = nil
	func() {
		defer func() { rt.depth = 0 }()
		fn()
	}()

	rt.lastOps = rt.ops
	s.SetAttributes(attribute.Int("tiny.ops", len(rt.lastOps)))
	if len(rt.lastOps) > 0 {
		rt.r.logger.Debug("patched", "root", rt.id.String(), "ops", len(rt.lastOps))
		for _, fn := range rt.r.observers {
			fn(rt.id, rt.lastOps)
		}
	}

	for len(rt.pending) > 0 {
		hooks := rt.pending
		rt.pending = nil
		for _, h := range hooks {
			h()
		}
	}
}

// enqueue schedules a post-mount hook.
func (rt *Root) enqueue(fn func()) {
	rt.pending = append(rt.pending, fn)
}

// record collects ops of the current operation.
func (rt *Root) record(ops []Op) {
	rt.ops = append(rt.ops, ops...)
	rt.r.countOps(ops)
}

// hostNode returns the real element holding the nodes of the component at
// id.
func (rt *Root) hostNode(id reactid.ID) *html.Node {
	hid, ok := id.HostParent()
	if !ok {
		return rt.container
	}
	if n := dom.QueryByID(rt.container, rt.r.attr, hid.String()); n != nil {
		return n
	}
	return rt.container
}
