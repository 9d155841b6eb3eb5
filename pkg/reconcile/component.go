package reconcile

import (
	"fmt"
	"reflect"
	"strconv"

	"golang.org/x/net/html"

	"github.com/vango-dev/tiny/internal/errors"
	"github.com/vango-dev/tiny/pkg/reactid"
	"github.com/vango-dev/tiny/pkg/vdom"
)

// Kind is the component variant discriminator.
type Kind uint8

const (
	KindEmpty Kind = iota
	KindText
	KindDOM
	KindList
	KindComposite
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "Empty"
	case KindText:
		return "Text"
	case KindDOM:
		return "DOM"
	case KindList:
		return "List"
	case KindComposite:
		return "Composite"
	default:
		return "Unknown"
	}
}

// component is the capability every variant implements.
type component interface {
	// mount allocates id, builds the host nodes and returns them in order.
	mount(id reactid.ID, parent component) []*html.Node

	// shouldReceive reports whether next can update this component in place.
	shouldReceive(next any) bool

	// receiveComponent updates the component in place.
	receiveComponent(next any)

	// unmount releases event registrations and runs unmount hooks for the
	// whole subtree. It does not touch host nodes.
	unmount()

	// nodes returns the host nodes currently produced by the component.
	nodes() []*html.Node

	kind() Kind
	common() *base
}

// base holds the state shared by every variant.
type base struct {
	root       *Root
	id         reactid.ID
	parent     component
	mountIndex int
}

func (b *base) common() *base { return b }

func (b *base) attach(id reactid.ID, parent component) {
	b.id = id
	b.parent = parent
}

// factories is the dispatch table from kind to constructor.
var factories = [...]func(rt *Root, v any) component{
	KindEmpty:     func(rt *Root, v any) component { return &emptyComponent{base: base{root: rt}} },
	KindText:      func(rt *Root, v any) component { return newText(rt, v) },
	KindDOM:       func(rt *Root, v any) component { return newDOM(rt, v.(*vdom.Element)) },
	KindList:      func(rt *Root, v any) component { return newList(rt, toSlice(v)) },
	KindComposite: func(rt *Root, v any) component { return newComposite(rt, v.(*vdom.Element)) },
}

// instantiate returns the component variant for an element value.
func instantiate(rt *Root, v any) component {
	return factories[classify(v)](rt, v)
}

// classify decides the variant for v: nil or false → Empty; string/number →
// Text; slice → List; element with string type → DOM; element with class
// type → Composite. Anything else is a contract violation.
func classify(v any) Kind {
	switch x := v.(type) {
	case nil:
		return KindEmpty
	case bool:
		if !x {
			return KindEmpty
		}
		panic(errors.New("E104").WithDetail("got true; only false renders as an empty slot"))
	case *vdom.Element:
		if x == nil {
			return KindEmpty
		}
		switch x.Type.(type) {
		case string:
			return KindDOM
		case *Class:
			return KindComposite
		}
		panic(errors.New("E102").
			WithDetailf("type of element should be a tag name or a component class, got %T", x.Type).
			WithExample("var App = tiny.Define(\"App\", newApp)\ntiny.CreateElement(App, nil)"))
	}
	if isText(v) {
		return KindText
	}
	if isSlice(v) {
		return KindList
	}
	panic(errors.New("E104").WithDetailf("got %T", v))
}

func isText(v any) bool {
	switch v.(type) {
	case string, int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, float32, float64:
		return true
	case *vdom.Element:
		return false
	case fmt.Stringer:
		return true
	}
	return false
}

func isSlice(v any) bool {
	if _, ok := v.([]any); ok {
		return true
	}
	if v == nil {
		return false
	}
	k := reflect.TypeOf(v).Kind()
	return k == reflect.Slice || k == reflect.Array
}

// toSlice converts any slice or array value to []any.
func toSlice(v any) []any {
	if s, ok := v.([]any); ok {
		return s
	}
	rv := reflect.ValueOf(v)
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out
}

// textOf stringifies a text value.
func textOf(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

// elementOf returns the description a component was last given.
func elementOf(c component) any {
	switch x := c.(type) {
	case *textComponent:
		return x.text
	case *domComponent:
		return x.el
	case *listComponent:
		return x.items
	case *compositeComponent:
		return x.el
	default:
		return nil
	}
}
