package reconcile

import (
	"fmt"
	"reflect"
	"strconv"

	"golang.org/x/net/html"

	"github.com/vango-dev/tiny/internal/errors"
	"github.com/vango-dev/tiny/pkg/dom"
	"github.com/vango-dev/tiny/pkg/event"
	"github.com/vango-dev/tiny/pkg/reactid"
	"github.com/vango-dev/tiny/pkg/vdom"
)

// attrAliases maps prop names to the attribute they write.
var attrAliases = map[string]string{
	"className": "class",
	"htmlFor":   "for",
}

// domComponent owns exactly one host element.
type domComponent struct {
	base
	el       *vdom.Element
	node     *html.Node
	children *children
}

func newDOM(rt *Root, el *vdom.Element) *domComponent {
	return &domComponent{base: base{root: rt}, el: el}
}

func (c *domComponent) kind() Kind { return KindDOM }

func (c *domComponent) mount(id reactid.ID, parent component) []*html.Node {
	tag, ok := c.el.Type.(string)
	if !ok {
		panic(errors.New("E101").WithDetailf("got element type %T", c.el.Type))
	}
	c.attach(id, parent)
	r := c.root.r

	c.node = r.doc.CreateElement(tag)
	dom.SetAttribute(c.node, r.attr, id.String())
	c.el.Props.Each(func(key string, value any) {
		c.setProp(key, value)
	})

	c.children = newChildren(c, reactid.SepDOM)
	for _, n := range c.children.mount(c.el.Children()) {
		dom.AppendChild(c.node, n)
	}
	r.countMount(KindDOM)
	return []*html.Node{c.node}
}

func (c *domComponent) shouldReceive(next any) bool {
	el, ok := next.(*vdom.Element)
	if !ok || el == nil {
		return false
	}
	tag, ok := el.Type.(string)
	return ok && tag == c.el.Tag()
}

func (c *domComponent) receiveComponent(next any) {
	prev := c.el
	c.el = next.(*vdom.Element)
	c.updateProps(prev.Props, c.el.Props)
	c.children.update(c.el.Children())
}

func (c *domComponent) unmount() {
	c.root.r.events.RemoveAllEventListener(c.id)
	c.children.unmount()
}

func (c *domComponent) nodes() []*html.Node {
	if c.node == nil {
		return nil
	}
	return []*html.Node{c.node}
}

// updateProps clears removed props, re-applies changed ones and leaves
// equal ones untouched.
func (c *domComponent) updateProps(prev, next vdom.Props) {
	prev.Each(func(key string, _ any) {
		if next.Has(key) {
			return
		}
		c.clearProp(key)
	})
	next.Each(func(key string, value any) {
		if old, ok := prev.Get(key); ok && propsEqual(old, value) {
			return
		}
		c.setProp(key, value)
	})
}

func (c *domComponent) setProp(key string, value any) {
	if key == vdom.KeyProp {
		return
	}
	r := c.root.r
	if name, ok := event.Name(key); ok {
		cb, ok := event.AsCallback(value)
		if !ok {
			if value != nil {
				r.logger.Warn("ignoring non-callable event handler",
					"id", c.id.String(), "prop", key, "type", fmt.Sprintf("%T", value))
			}
			r.events.RemoveEventListener(c.id, name)
			return
		}
		r.events.SetEventListener(c.id, name, cb)
		return
	}

	attr := attrName(key)
	switch v := value.(type) {
	case nil:
		dom.RemoveAttribute(c.node, attr)
	case bool:
		if v {
			dom.SetAttribute(c.node, attr, "")
		} else {
			dom.RemoveAttribute(c.node, attr)
		}
	default:
		dom.SetAttribute(c.node, attr, propToString(value))
	}
}

func (c *domComponent) clearProp(key string) {
	if key == vdom.KeyProp {
		return
	}
	if name, ok := event.Name(key); ok {
		c.root.r.events.RemoveEventListener(c.id, name)
		return
	}
	dom.RemoveAttribute(c.node, attrName(key))
}

func attrName(key string) string {
	if a, ok := attrAliases[key]; ok {
		return a
	}
	return key
}

// propsEqual compares two prop values for equality.
func propsEqual(a, b any) bool {
	switch av := a.(type) {
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case int:
		bv, ok := b.(int)
		return ok && av == bv
	case int64:
		bv, ok := b.(int64)
		return ok && av == bv
	case float64:
		bv, ok := b.(float64)
		return ok && av == bv
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	case nil:
		return b == nil
	}
	// Functions never compare equal, so handlers are always re-registered.
	return reflect.DeepEqual(a, b)
}

// propToString converts a prop value to its attribute text.
func propToString(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}
