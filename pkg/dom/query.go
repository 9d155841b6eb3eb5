package dom

import (
	"golang.org/x/net/html"

	"github.com/vango-dev/tiny/pkg/reactid"
)

// QueryByID returns the first descendant of root whose attr equals id.
func QueryByID(root *html.Node, attr, id string) *html.Node {
	return findFirst(root, func(n *html.Node) bool {
		v, ok := GetAttribute(n, attr)
		return ok && v == id
	})
}

// QueryByIDPrefix returns the first descendant of root, in document order,
// whose attr addresses id or a slot below it.
func QueryByIDPrefix(root *html.Node, attr, id string) *html.Node {
	return findFirst(root, func(n *html.Node) bool {
		v, ok := GetAttribute(n, attr)
		return ok && reactid.HasPrefixString(v, id)
	})
}

// ChildrenByIDPrefix returns the direct children of parent whose attr
// addresses id or a slot below it, in order.
func ChildrenByIDPrefix(parent *html.Node, attr, id string) []*html.Node {
	var out []*html.Node
	for c := parent.FirstChild; c != nil; c = c.NextSibling {
		if v, ok := GetAttribute(c, attr); ok && reactid.HasPrefixString(v, id) {
			out = append(out, c)
		}
	}
	return out
}

// FirstChildByIDPrefix is ChildrenByIDPrefix limited to the first match.
func FirstChildByIDPrefix(parent *html.Node, attr, id string) *html.Node {
	for c := parent.FirstChild; c != nil; c = c.NextSibling {
		if v, ok := GetAttribute(c, attr); ok && reactid.HasPrefixString(v, id) {
			return c
		}
	}
	return nil
}
