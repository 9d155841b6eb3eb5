package dom

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

const skeleton = "<!DOCTYPE html><html><head></head><body></body></html>"

// Option configures a Document.
type Option func(*Document)

// WithGlobalProperties replaces the names returned by GlobalProperties.
func WithGlobalProperties(names ...string) Option {
	return func(d *Document) {
		d.globals = append([]string(nil), names...)
	}
}

// Document is a mutable HTML document with document-level event listeners.
type Document struct {
	root      *html.Node
	body      *html.Node
	globals   []string
	listeners map[string][]*listener
	nextID    int
}

type listener struct {
	id int
	fn Listener
}

// NewDocument creates an empty document.
func NewDocument(opts ...Option) *Document {
	root, err := html.Parse(strings.NewReader(skeleton))
	if err != nil {
		// The skeleton is constant; html.Parse only fails on reader errors.
		panic(err)
	}
	d := &Document{
		root:      root,
		globals:   defaultGlobals,
		listeners: make(map[string][]*listener),
	}
	d.body = findFirst(root, func(n *html.Node) bool {
		return n.Type == html.ElementNode && n.DataAtom == atom.Body
	})
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Root returns the document node.
func (d *Document) Root() *html.Node {
	return d.root
}

// Body returns the <body> element.
func (d *Document) Body() *html.Node {
	return d.body
}

// CreateElement returns a detached element node.
func (d *Document) CreateElement(tag string) *html.Node {
	tag = strings.ToLower(tag)
	return &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
	}
}

// CreateTextNode returns a detached text node.
func (d *Document) CreateTextNode(text string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: text}
}

// GlobalProperties lists the names the host exposes globally. Event handler
// slots are the names starting with "on".
func (d *Document) GlobalProperties() []string {
	return append([]string(nil), d.globals...)
}

// String serializes the whole document.
func (d *Document) String() string {
	return render(d.root)
}
