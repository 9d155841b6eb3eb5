package reconcile

import (
	"golang.org/x/net/html"

	"github.com/vango-dev/tiny/pkg/reactid"
)

// listComponent mounts a slice child. It has no element of its own: its
// items are placed directly into the nearest enclosing DOM element, or the
// container at the top level.
type listComponent struct {
	base
	items    []any
	children *children
}

func newList(rt *Root, items []any) *listComponent {
	return &listComponent{base: base{root: rt}, items: items}
}

func (c *listComponent) kind() Kind { return KindList }

func (c *listComponent) mount(id reactid.ID, parent component) []*html.Node {
	c.attach(id, parent)
	c.children = newChildren(c, reactid.SepList)
	nodes := c.children.mount(c.items)
	c.root.r.countMount(KindList)
	return nodes
}

func (c *listComponent) shouldReceive(next any) bool {
	return next != nil && classify(next) == KindList
}

func (c *listComponent) receiveComponent(next any) {
	c.items = toSlice(next)
	c.children.update(c.items)
}

func (c *listComponent) unmount() {
	c.children.unmount()
}

func (c *listComponent) nodes() []*html.Node {
	if c.children == nil {
		return nil
	}
	var out []*html.Node
	for _, child := range c.children.order {
		out = append(out, child.nodes()...)
	}
	return out
}
