// Package event routes native DOM events back to component callbacks.
//
// A Controller installs exactly one document-level listener per event type
// the host exposes and keeps a registry keyed by (identifier, event type).
// When a native event arrives, the target's identifier is read from its
// identity attribute and the identifier chain is walked upward, invoking
// every registered callback on the way. This emulates bubbling through the
// component tree rather than through the real node tree.
package event

import (
	"log/slog"
	"strings"

	"golang.org/x/net/html"

	"github.com/vango-dev/tiny/pkg/dom"
	"github.com/vango-dev/tiny/pkg/reactid"
)

// DefaultIDAttribute is the identity attribute written on mounted nodes.
const DefaultIDAttribute = "data-reactid"

// Callback handles a delivered event.
type Callback func(*dom.Event)

// Option configures a Controller.
type Option func(*Controller)

// WithIDAttribute overrides the identity attribute read from event targets.
func WithIDAttribute(attr string) Option {
	return func(c *Controller) {
		if attr != "" {
			c.attr = attr
		}
	}
}

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// Controller is the per-document event registry.
type Controller struct {
	doc      *dom.Document
	attr     string
	logger   *slog.Logger
	types    map[string]bool
	registry map[string]map[string]Callback
	removers []func()
	closed   bool
}

// New creates a Controller and installs its document listeners.
func New(doc *dom.Document, opts ...Option) *Controller {
	c := &Controller{
		doc:      doc,
		attr:     DefaultIDAttribute,
		logger:   slog.Default(),
		types:    make(map[string]bool),
		registry: make(map[string]map[string]Callback),
	}
	for _, opt := range opts {
		opt(c)
	}

	for _, name := range doc.GlobalProperties() {
		if !strings.HasPrefix(name, "on") || len(name) == 2 {
			continue
		}
		eventType := strings.TrimPrefix(name, "on")
		if c.types[eventType] {
			continue
		}
		c.types[eventType] = true
		c.removers = append(c.removers, doc.AddEventListener(eventType, c.dispatch))
	}
	c.logger.Debug("event controller installed", "types", len(c.types))
	return c
}

// IDAttribute returns the identity attribute this controller reads.
func (c *Controller) IDAttribute() string {
	return c.attr
}

// Listens reports whether a document listener exists for eventType.
func (c *Controller) Listens(eventType string) bool {
	return c.types[eventType]
}

// SetEventListener registers or overwrites the callback for (rootID, name).
func (c *Controller) SetEventListener(rootID reactid.ID, name string, cb Callback) {
	if cb == nil {
		c.RemoveEventListener(rootID, name)
		return
	}
	if !c.types[name] {
		c.logger.Debug("listener registered for an event type the host never fires",
			"id", rootID.String(), "event", name)
	}
	key := rootID.String()
	bucket := c.registry[key]
	if bucket == nil {
		bucket = make(map[string]Callback)
		c.registry[key] = bucket
	}
	bucket[name] = cb
}

// RemoveEventListener clears a single entry.
func (c *Controller) RemoveEventListener(rootID reactid.ID, name string) {
	key := rootID.String()
	if bucket := c.registry[key]; bucket != nil {
		delete(bucket, name)
		if len(bucket) == 0 {
			delete(c.registry, key)
		}
	}
}

// RemoveAllEventListener clears every entry registered for rootID.
func (c *Controller) RemoveAllEventListener(rootID reactid.ID) {
	delete(c.registry, rootID.String())
}

// Has reports whether a callback is registered for (rootID, name).
func (c *Controller) Has(rootID reactid.ID, name string) bool {
	_, ok := c.registry[rootID.String()][name]
	return ok
}

// Len returns the number of identifiers with at least one registration.
func (c *Controller) Len() int {
	return len(c.registry)
}

// Teardown removes the document listeners and clears the registry.
// The controller must not be used afterwards.
func (c *Controller) Teardown() {
	if c.closed {
		return
	}
	for _, remove := range c.removers {
		remove()
	}
	c.removers = nil
	c.registry = make(map[string]map[string]Callback)
	c.closed = true
	c.logger.Debug("event controller torn down")
}

// Closed reports whether Teardown has run.
func (c *Controller) Closed() bool {
	return c.closed
}

func (c *Controller) dispatch(e *dom.Event) {
	raw, ok := c.targetID(e.Target)
	if !ok {
		return
	}
	id, err := reactid.Parse(raw)
	if err != nil {
		c.logger.Debug("ignoring event target with malformed identifier", "id", raw)
		return
	}
	for {
		if cb := c.registry[id.String()][e.Type]; cb != nil {
			cb(e)
			if e.PropagationStopped() {
				return
			}
		}
		parent, ok := id.Parent()
		if !ok {
			return
		}
		id = parent
	}
}

// targetID reads the identity attribute of the target, climbing to the
// nearest element that carries one (text nodes have no attributes).
func (c *Controller) targetID(n *html.Node) (string, bool) {
	for ; n != nil; n = n.Parent {
		if n.Type != html.ElementNode {
			continue
		}
		if v, ok := dom.GetAttribute(n, c.attr); ok {
			return v, true
		}
	}
	return "", false
}
