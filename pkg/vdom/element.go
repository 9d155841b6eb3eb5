package vdom

import (
	"fmt"
	"slices"
)

// ChildrenKey is the reserved prop holding child values.
const ChildrenKey = "children"

// KeyProp is the prop that sets an element's reconciliation key.
const KeyProp = "key"

// Element is an immutable element description.
type Element struct {
	// Type is a tag name (string) or a component class.
	Type any

	// Key is the stable identity hint among siblings. Empty means none.
	Key string

	// Props are the attributes, event handlers and children in insertion
	// order.
	Props Props
}

// Children returns the child values of the element.
func (e *Element) Children() []any {
	if e == nil {
		return nil
	}
	return e.Props.Children()
}

// Tag returns the tag name for native elements and "" otherwise.
func (e *Element) Tag() string {
	if e == nil {
		return ""
	}
	s, _ := e.Type.(string)
	return s
}

// String returns a short description for logs.
func (e *Element) String() string {
	if e == nil {
		return "<nil>"
	}
	name := e.Tag()
	if name == "" {
		if s, ok := e.Type.(fmt.Stringer); ok {
			name = s.String()
		} else {
			name = fmt.Sprintf("%T", e.Type)
		}
	}
	if e.Key != "" {
		return fmt.Sprintf("<%s key=%q>", name, e.Key)
	}
	return "<" + name + ">"
}

// CreateElement merges children into attrs under the reserved "children" key
// and returns a new Element. The attrs slice is copied; a "children" entry in
// attrs is replaced. The children slice is copied too, so a caller passing
// items... keeps ownership of its backing array.
func CreateElement(typ any, attrs []Attr, children ...any) *Element {
	props := make(Props, 0, len(attrs)+1)
	key := ""
	for _, a := range attrs {
		if a.IsEmpty() || a.Key == ChildrenKey {
			continue
		}
		if a.Key == KeyProp && a.Value != nil {
			key = fmt.Sprintf("%v", a.Value)
		}
		props = props.set(a.Key, a.Value)
	}
	kids := slices.Clone(children)
	if kids == nil {
		kids = []any{}
	}
	props = append(props, Attr{Key: ChildrenKey, Value: kids})
	return &Element{Type: typ, Key: key, Props: props}
}

// H builds an element from variadic arguments, the way the tag helpers do.
// Arguments can be: nil, Attr, []Attr, EventHandler, or any child value.
func H(typ any, args ...any) *Element {
	var attrs []Attr
	children := make([]any, 0, len(args))
	for _, arg := range args {
		switch v := arg.(type) {
		case nil:
			// Ignore nil (allows conditional attributes)
			continue
		case Attr:
			attrs = append(attrs, v)
		case []Attr:
			attrs = append(attrs, v...)
		case EventHandler:
			attrs = append(attrs, Attr{Key: v.Event, Value: v.Handler})
		default:
			children = append(children, v)
		}
	}
	return CreateElement(typ, attrs, children...)
}
