// Package describe parses element descriptions written in YAML or JSON
// into values the reconciler can mount.
//
// A description is one of:
//
//   - a mapping with a required "type" (tag name) and optional "key",
//     "attrs" (mapping) and "children" (sequence)
//   - a scalar: strings and numbers become text, null an empty child
//   - a sequence, which becomes a list child
//
// Example:
//
//	type: ul
//	attrs:
//	  className: todo
//	children:
//	  - type: li
//	    key: a
//	    children: [first]
//	  - [second, 3]
//
// Attribute order follows the document. JSON is accepted as YAML.
package describe

import (
	"os"
	"regexp"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/vango-dev/tiny/internal/errors"
	"github.com/vango-dev/tiny/pkg/event"
	"github.com/vango-dev/tiny/pkg/vdom"
)

var tagPattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9-]*$`)

// ParseFile reads and parses the description at path.
func ParseFile(path string) (any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.FromError(err, "E201")
	}
	v, err := Parse(data)
	if err != nil {
		if te, ok := err.(*errors.TinyError); ok {
			return nil, te.WithDetail(path + ": " + te.Detail)
		}
		return nil, err
	}
	return v, nil
}

// Parse converts a YAML or JSON description into an element value.
func Parse(data []byte) (any, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.New("E202").
			WithDetail(err.Error()).
			Wrap(err)
	}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		// An empty document describes an empty tree.
		return nil, nil
	}
	return child(doc.Content[0])
}

func invalid(n *yaml.Node, format string, args ...any) *errors.TinyError {
	return errors.New("E202").
		WithDetailf("line %d, column %d: "+format, append([]any{n.Line, n.Column}, args...)...)
}

func child(n *yaml.Node) (any, error) {
	switch n.Kind {
	case yaml.AliasNode:
		return child(n.Alias)
	case yaml.ScalarNode:
		v, err := scalar(n)
		if err != nil {
			return nil, err
		}
		if _, ok := v.(bool); ok {
			return nil, invalid(n, "a boolean is not a valid child")
		}
		return v, nil
	case yaml.SequenceNode:
		items := make([]any, 0, len(n.Content))
		for _, c := range n.Content {
			v, err := child(c)
			if err != nil {
				return nil, err
			}
			items = append(items, v)
		}
		return items, nil
	case yaml.MappingNode:
		return element(n)
	default:
		return nil, invalid(n, "unexpected node")
	}
}

func element(n *yaml.Node) (any, error) {
	var (
		tag      string
		attrs    []vdom.Attr
		children []any
		hasType  bool
	)
	for i := 0; i+1 < len(n.Content); i += 2 {
		k, v := n.Content[i], n.Content[i+1]
		switch k.Value {
		case "type":
			if v.Kind != yaml.ScalarNode || !tagPattern.MatchString(v.Value) {
				return nil, invalid(v, "type must be a tag name")
			}
			tag, hasType = v.Value, true
		case "key":
			if v.Kind != yaml.ScalarNode {
				return nil, invalid(v, "key must be a scalar")
			}
			attrs = append(attrs, vdom.Attr{Key: vdom.KeyProp, Value: v.Value})
		case "attrs":
			a, err := attributes(v)
			if err != nil {
				return nil, err
			}
			attrs = append(attrs, a...)
		case "children":
			if v.Kind != yaml.SequenceNode {
				return nil, invalid(v, "children must be a sequence")
			}
			for _, c := range v.Content {
				cv, err := child(c)
				if err != nil {
					return nil, err
				}
				children = append(children, cv)
			}
		default:
			return nil, invalid(k, "unknown field %q", k.Value)
		}
	}
	if !hasType {
		return nil, invalid(n, "element has no type")
	}
	return vdom.CreateElement(tag, attrs, children...), nil
}

func attributes(n *yaml.Node) ([]vdom.Attr, error) {
	if n.Kind != yaml.MappingNode {
		return nil, invalid(n, "attrs must be a mapping")
	}
	attrs := make([]vdom.Attr, 0, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		k, v := n.Content[i], n.Content[i+1]
		if k.Value == vdom.ChildrenKey || k.Value == vdom.KeyProp {
			return nil, invalid(k, "%q is reserved; use the top-level field", k.Value)
		}
		if _, ok := event.Name(k.Value); ok {
			return nil, invalid(k, "event handler %q cannot be described", k.Value)
		}
		if v.Kind != yaml.ScalarNode {
			return nil, invalid(v, "attribute %q must be a scalar", k.Value)
		}
		val, err := scalar(v)
		if err != nil {
			return nil, err
		}
		attrs = append(attrs, vdom.Attr{Key: k.Value, Value: val})
	}
	return attrs, nil
}

func scalar(n *yaml.Node) (any, error) {
	switch n.ShortTag() {
	case "!!null":
		return nil, nil
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return nil, invalid(n, "%v", err)
		}
		return b, nil
	case "!!int":
		i, err := strconv.Atoi(n.Value)
		if err != nil {
			var v int
			if derr := n.Decode(&v); derr != nil {
				return nil, invalid(n, "%v", derr)
			}
			return v, nil
		}
		return i, nil
	case "!!float":
		var f float64
		if err := n.Decode(&f); err != nil {
			return nil, invalid(n, "%v", err)
		}
		return f, nil
	default:
		return n.Value, nil
	}
}
