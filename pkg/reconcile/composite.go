package reconcile

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/net/html"

	"github.com/vango-dev/tiny/internal/errors"
	"github.com/vango-dev/tiny/pkg/dom"
	"github.com/vango-dev/tiny/pkg/reactid"
	"github.com/vango-dev/tiny/pkg/vdom"
)

// compositeComponent wraps a user Component. It shares its identifier with
// the component it renders.
type compositeComponent struct {
	base
	el       *vdom.Element
	class    *Class
	inst     Component
	rendered component

	// phase tracks where an update is; SetState during one is deferred.
	phase updatePhase
	// queued holds partials set while an update runs.
	queued State
	// dirty is set when SetState or ForceUpdate arrived after the next
	// state was assigned; the update then runs again.
	dirty  bool
	forced bool
	// depth counts nested updates of this component.
	depth int
}

type updatePhase int

const (
	phaseIdle updatePhase = iota
	// phasePrepare covers WillReceiveProps, ShouldUpdate and WillUpdate.
	phasePrepare
	// phaseRender covers Render and the reconciliation of its output.
	phaseRender
)

// maxNestedUpdates bounds SetState loops between a component's updates
// and its own hooks.
const maxNestedUpdates = 50

func newComposite(rt *Root, el *vdom.Element) *compositeComponent {
	return &compositeComponent{base: base{root: rt}, el: el}
}

func (c *compositeComponent) kind() Kind { return KindComposite }

func (c *compositeComponent) mount(id reactid.ID, parent component) []*html.Node {
	class, ok := c.el.Type.(*Class)
	if !ok {
		panic(errors.New("E102").WithDetailf("got element type %T", c.el.Type))
	}
	c.attach(id, parent)
	c.class = class

	inst := class.ctor(c.el.Props)
	if inst == nil {
		panic(errors.New("E103").WithDetailf("constructor of %q returned nil", class.name))
	}
	c.inst = inst
	b := inst.componentBase()
	b.props = c.el.Props
	if b.state == nil {
		b.state = State{}
	}

	if h, ok := inst.(WillMounter); ok {
		h.ComponentWillMount()
	}
	b.internal = c
	nodes := c.mountRendered(id)

	if c.dirty {
		c.root.enqueue(c.resume)
	}
	if h, ok := inst.(DidMounter); ok {
		c.root.enqueue(h.ComponentDidMount)
	}
	c.root.r.countMount(KindComposite)
	return nodes
}

// mountRendered renders the instance and mounts the result. SetState calls
// made meanwhile are deferred to resume.
func (c *compositeComponent) mountRendered(id reactid.ID) []*html.Node {
	c.phase = phaseRender
	defer func() { c.phase = phaseIdle }()
	c.rendered = instantiate(c.root, c.inst.Render())
	return c.rendered.mount(id, c)
}

func (c *compositeComponent) shouldReceive(next any) bool {
	el, ok := next.(*vdom.Element)
	if !ok || el == nil {
		return false
	}
	class, ok := el.Type.(*Class)
	return ok && class == c.class
}

func (c *compositeComponent) receiveComponent(next any) {
	c.update(next.(*vdom.Element), nil, false)
}

func (c *compositeComponent) setState(partial State) {
	switch c.phase {
	case phasePrepare:
		c.queued = c.queued.merge(partial)
		return
	case phaseRender:
		c.queued = c.queued.merge(partial)
		c.dirty = true
		return
	}
	c.root.run(context.Background(), "tiny.update", func() {
		c.update(nil, partial, false)
	}, attribute.String("tiny.id", c.id.String()), attribute.String("tiny.component", c.class.name))
}

func (c *compositeComponent) forceUpdate() {
	if c.phase != phaseIdle {
		c.dirty, c.forced = true, true
		return
	}
	c.root.run(context.Background(), "tiny.update", func() {
		c.update(nil, nil, true)
	}, attribute.String("tiny.id", c.id.String()), attribute.String("tiny.component", c.class.name))
}

// update applies new props and/or a state patch and re-renders. A nil
// nextEl keeps the current element.
//
// SetState from WillReceiveProps, ShouldUpdate or WillUpdate is folded into
// the state of this update. SetState from Render, from a descendant's hook
// or from DidUpdate triggers another update once this one has finished.
func (c *compositeComponent) update(nextEl *vdom.Element, partial State, force bool) {
	start := time.Now()
	defer c.root.r.observeUpdate(start)

	c.depth++
	defer func() { c.depth-- }()
	if c.depth > maxNestedUpdates {
		panic(errors.New("E107").WithDetailf("component %q updated %d times in a row", c.class.name, c.depth-1))
	}

	prevPhase := c.phase
	c.phase = phasePrepare
	defer func() { c.phase = prevPhase }()

	b := c.inst.componentBase()
	prevProps, prevState := b.props, b.state

	if nextEl == nil {
		nextEl = c.el
	} else if h, ok := c.inst.(WillReceivePropser); ok {
		h.ComponentWillReceiveProps(nextEl.Props)
	}
	nextProps := nextEl.Props
	nextState := b.state
	if partial != nil {
		nextState = nextState.merge(partial)
	}
	nextState = c.fold(nextState)

	if h, ok := c.inst.(ShouldUpdater); ok && !force {
		proceed := h.ShouldComponentUpdate(nextProps, nextState)
		nextState = c.fold(nextState)
		if !proceed {
			c.el = nextEl
			b.props, b.state = nextProps, nextState
			return
		}
	}
	if h, ok := c.inst.(WillUpdater); ok {
		h.ComponentWillUpdate(nextProps, nextState)
		nextState = c.fold(nextState)
	}
	c.el = nextEl
	b.props, b.state = nextProps, nextState

	c.phase = phaseRender
	next := c.inst.Render()
	if c.rendered.shouldReceive(next) {
		c.rendered.receiveComponent(next)
	} else {
		c.replaceRendered(next)
	}

	c.phase = phaseIdle
	rerun, forced := c.dirty, c.forced
	c.dirty, c.forced = false, false
	if h, ok := c.inst.(DidUpdater); ok {
		h.ComponentDidUpdate(prevProps, prevState)
	}
	if !rerun {
		return
	}
	if b.internal != c {
		b.state = c.fold(b.state)
		return
	}
	c.update(nil, nil, forced)
}

// resume runs the update deferred by SetState calls that arrived while the
// component was mounting.
func (c *compositeComponent) resume() {
	if !c.dirty {
		return
	}
	forced := c.forced
	c.dirty, c.forced = false, false
	if c.inst.componentBase().internal != c {
		b := c.inst.componentBase()
		b.state = c.fold(b.state)
		return
	}
	c.root.run(context.Background(), "tiny.update", func() {
		c.update(nil, nil, forced)
	}, attribute.String("tiny.id", c.id.String()), attribute.String("tiny.component", c.class.name))
}

// fold applies the partials queued by hooks to state.
func (c *compositeComponent) fold(state State) State {
	if c.queued == nil {
		return state
	}
	state = state.merge(c.queued)
	c.queued = nil
	return state
}

// replaceRendered unmounts the rendered component and mounts next in its
// place under the same identifier.
func (c *compositeComponent) replaceRendered(next any) {
	rt := c.root
	parent := rt.hostNode(c.id)
	old := c.rendered.nodes()

	var ref *html.Node
	if len(old) > 0 {
		ref = old[len(old)-1].NextSibling
	} else {
		ref = hostSiblingAfter(c)
	}

	c.rendered.unmount()
	for _, n := range old {
		dom.RemoveChild(parent, n)
	}

	c.rendered = instantiate(rt, next)
	nodes := c.rendered.mount(c.id, c)
	rt.r.logger.Debug("replaced rendered output",
		"id", c.id.String(),
		"component", c.class.Name(),
		"kind", c.rendered.kind().String(),
	)
	for _, n := range nodes {
		dom.InsertBefore(parent, n, ref)
	}

	ops := make([]Op, 0, 2)
	if len(old) > 0 {
		ops = append(ops, Op{Kind: OpRemove, ParentID: c.id, Parent: parent, From: c.id})
	}
	if len(nodes) > 0 {
		ops = append(ops, Op{Kind: OpInsert, ParentID: c.id, Parent: parent, Slot: c.id, Nodes: nodes})
	}
	rt.record(ops)
}

func (c *compositeComponent) unmount() {
	if h, ok := c.inst.(WillUnmounter); ok {
		h.ComponentWillUnmount()
	}
	c.rendered.unmount()
	c.inst.componentBase().internal = nil
}

func (c *compositeComponent) nodes() []*html.Node {
	if c.rendered == nil {
		return nil
	}
	return c.rendered.nodes()
}
