// Package tiny provides the public API of the tiny virtual DOM library.
//
// This is the recommended import for most applications:
//
//	import "github.com/vango-dev/tiny"
//
// Usage:
//
//	env := tiny.NewEnv()
//	defer env.Close()
//
//	root := env.Render(
//	    tiny.CreateElement("ul", nil, "first", "second"),
//	    env.Body(),
//	)
//	root.Update(tiny.CreateElement("ul", nil, "second"))
package tiny

import (
	"log/slog"
	"sync"

	"golang.org/x/net/html"

	"github.com/vango-dev/tiny/pkg/dom"
	"github.com/vango-dev/tiny/pkg/event"
	"github.com/vango-dev/tiny/pkg/reconcile"
	"github.com/vango-dev/tiny/pkg/vdom"
)

// =============================================================================
// Elements (re-export from pkg/vdom)
// =============================================================================

// Element is an immutable element description.
type Element = vdom.Element

// Attr is a single prop.
type Attr = vdom.Attr

// Props is an ordered prop list.
type Props = vdom.Props

// CreateElement builds an element. typ is a tag name or a *Class.
func CreateElement(typ any, attrs []Attr, children ...any) *Element {
	return vdom.CreateElement(typ, attrs, children...)
}

// H builds an element from a mix of Attr values, event handlers and
// children.
func H(typ any, args ...any) *Element {
	return vdom.H(typ, args...)
}

// =============================================================================
// Components (re-export from pkg/reconcile)
// =============================================================================

// Component is a user-defined component. Implementations embed Base.
type Component = reconcile.Component

// Base is embedded by every Component.
type Base = reconcile.Base

// State is a component's local state.
type State = reconcile.State

// Class is a component type created by Define.
type Class = reconcile.Class

// Root is a tree mounted into a container.
type Root = reconcile.Root

// Op is one child-list operation applied during reconciliation.
type Op = reconcile.Op

// Define creates a component class.
//
// Example:
//
//	type greeting struct{ tiny.Base }
//
//	func (g *greeting) Render() any {
//	    return tiny.H("p", "hello ", g.Props().GetString("name"))
//	}
//
//	var Greeting = tiny.Define("Greeting", func(tiny.Props) tiny.Component {
//	    return &greeting{}
//	})
func Define(name string, ctor func(props Props) Component) *Class {
	return reconcile.Define(name, ctor)
}

// =============================================================================
// Environment
// =============================================================================

// EnvOption configures an Env.
type EnvOption func(*envConfig)

type envConfig struct {
	idAttribute string
	logger      *slog.Logger
	renderer    []reconcile.Option
}

// WithIDAttribute sets the attribute that carries identifiers.
func WithIDAttribute(attr string) EnvOption {
	return func(c *envConfig) {
		c.idAttribute = attr
	}
}

// WithLogger sets the logger of the event controller and the renderer.
func WithLogger(l *slog.Logger) EnvOption {
	return func(c *envConfig) {
		c.logger = l
	}
}

// WithRendererOptions passes options to the renderer.
func WithRendererOptions(opts ...reconcile.Option) EnvOption {
	return func(c *envConfig) {
		c.renderer = append(c.renderer, opts...)
	}
}

// Env bundles a document, its event controller and a renderer.
type Env struct {
	Doc      *dom.Document
	Events   *event.Controller
	Renderer *reconcile.Renderer
}

// NewEnv creates a fresh document with an event controller and renderer.
func NewEnv(opts ...EnvOption) *Env {
	cfg := envConfig{
		idAttribute: event.DefaultIDAttribute,
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	doc := dom.NewDocument()
	events := event.New(doc,
		event.WithIDAttribute(cfg.idAttribute),
		event.WithLogger(cfg.logger),
	)
	ropts := append([]reconcile.Option{reconcile.WithLogger(cfg.logger)}, cfg.renderer...)
	return &Env{
		Doc:      doc,
		Events:   events,
		Renderer: reconcile.New(doc, events, ropts...),
	}
}

// Body returns the document body.
func (e *Env) Body() *html.Node { return e.Doc.Body() }

// Render mounts element into container. See reconcile.Renderer.Render.
func (e *Env) Render(element any, container *html.Node) *Root {
	return e.Renderer.Render(element, container)
}

// Dispatch delivers a native event at target.
func (e *Env) Dispatch(target *html.Node, eventType string, data map[string]any) *dom.Event {
	return e.Doc.Dispatch(target, eventType, data)
}

// Close unmounts every root and removes the document listeners.
func (e *Env) Close() {
	e.Renderer.Close()
	e.Events.Teardown()
}

var (
	defaultEnv     *Env
	defaultEnvOnce sync.Once
)

// Default returns the process-wide environment used by Render.
func Default() *Env {
	defaultEnvOnce.Do(func() {
		defaultEnv = NewEnv()
	})
	return defaultEnv
}

// Render mounts element into a container of the default environment's
// document. Every call is a full mount; use Root.Update to reconcile.
func Render(element any, container *html.Node) *Root {
	return Default().Render(element, container)
}
