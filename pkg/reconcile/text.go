package reconcile

import (
	"golang.org/x/net/html"

	"github.com/vango-dev/tiny/pkg/dom"
	"github.com/vango-dev/tiny/pkg/reactid"
)

// textComponent renders a string or number as <span data-reactid=…>text</span>.
type textComponent struct {
	base
	text string
	node *html.Node
}

func newText(rt *Root, v any) *textComponent {
	return &textComponent{base: base{root: rt}, text: textOf(v)}
}

func (c *textComponent) kind() Kind { return KindText }

func (c *textComponent) mount(id reactid.ID, parent component) []*html.Node {
	c.attach(id, parent)
	r := c.root.r
	c.node = r.doc.CreateElement("span")
	dom.SetAttribute(c.node, r.attr, id.String())
	dom.SetTextContent(c.node, c.text)
	r.countMount(KindText)
	return []*html.Node{c.node}
}

func (c *textComponent) shouldReceive(next any) bool {
	return classify(next) == KindText
}

func (c *textComponent) receiveComponent(next any) {
	s := textOf(next)
	if s == c.text {
		return
	}
	c.text = s
	dom.SetTextContent(c.node, s)
}

func (c *textComponent) unmount() {}

func (c *textComponent) nodes() []*html.Node {
	if c.node == nil {
		return nil
	}
	return []*html.Node{c.node}
}

// emptyComponent stands in for a nil child. It has no host presence and
// is never updated in place.
type emptyComponent struct {
	base
}

func (c *emptyComponent) kind() Kind { return KindEmpty }

func (c *emptyComponent) mount(id reactid.ID, parent component) []*html.Node {
	c.attach(id, parent)
	c.root.r.countMount(KindEmpty)
	return nil
}

func (c *emptyComponent) shouldReceive(any) bool { return false }
func (c *emptyComponent) receiveComponent(any)   {}
func (c *emptyComponent) unmount()               {}
func (c *emptyComponent) nodes() []*html.Node    { return nil }
