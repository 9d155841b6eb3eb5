package reconcile

import (
	"maps"

	"github.com/vango-dev/tiny/pkg/vdom"
)

// State is a component's local state. SetState merges into it shallowly.
type State map[string]any

// merge returns a copy of s with every key of partial applied.
func (s State) merge(partial State) State {
	out := make(State, len(s)+len(partial))
	maps.Copy(out, s)
	maps.Copy(out, partial)
	return out
}

// Component is a user-defined component. Implementations embed Base.
type Component interface {
	// Render returns the element value this component displays: an
	// element, a string or number, a slice, or nil.
	Render() any

	componentBase() *Base
}

// Class is a component type created by Define. Two composite elements are
// compatible when they reference the same *Class.
type Class struct {
	name string
	ctor func(props vdom.Props) Component
}

// Define registers a component class. ctor is called once per mounted
// instance with the element's props.
//
//	var Counter = reconcile.Define("Counter", func(p vdom.Props) reconcile.Component {
//	    c := &counter{}
//	    c.SetState(reconcile.State{"n": 0})
//	    return c
//	})
func Define(name string, ctor func(props vdom.Props) Component) *Class {
	return &Class{name: name, ctor: ctor}
}

// Name returns the name given to Define.
func (c *Class) Name() string { return c.name }

// String implements fmt.Stringer.
func (c *Class) String() string { return c.name }

// Base carries the props, state and renderer back-reference of a component
// instance. Embed it in every Component.
type Base struct {
	props    vdom.Props
	state    State
	internal *compositeComponent
}

func (b *Base) componentBase() *Base { return b }

// Props returns the props of the element the component was last rendered
// with.
func (b *Base) Props() vdom.Props { return b.props }

// State returns the current state. Treat it as read-only; use SetState.
func (b *Base) State() State { return b.state }

// SetState merges partial into the current state and re-renders
// synchronously. Before the component is mounted, or after it has been
// unmounted, it only updates the state.
func (b *Base) SetState(partial State) {
	if b.internal == nil {
		b.state = b.state.merge(partial)
		return
	}
	b.internal.setState(partial)
}

// ForceUpdate re-renders the component, skipping ShouldComponentUpdate.
func (b *Base) ForceUpdate() {
	if b.internal == nil {
		return
	}
	b.internal.forceUpdate()
}

// Lifecycle hooks. A component opts in by implementing the interface.
type (
	WillMounter interface {
		ComponentWillMount()
	}

	// DidMounter runs after the component's nodes are attached to the
	// document. Children run before parents.
	DidMounter interface {
		ComponentDidMount()
	}

	WillReceivePropser interface {
		ComponentWillReceiveProps(nextProps vdom.Props)
	}

	// ShouldUpdater can veto a re-render. The new props and state are
	// stored either way.
	ShouldUpdater interface {
		ShouldComponentUpdate(nextProps vdom.Props, nextState State) bool
	}

	WillUpdater interface {
		ComponentWillUpdate(nextProps vdom.Props, nextState State)
	}

	DidUpdater interface {
		ComponentDidUpdate(prevProps vdom.Props, prevState State)
	}

	// WillUnmounter runs before the component's nodes leave the document.
	WillUnmounter interface {
		ComponentWillUnmount()
	}
)
