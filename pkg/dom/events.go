package dom

import "golang.org/x/net/html"

// Listener receives native events delivered to the document.
type Listener func(*Event)

// Event is a native event.
type Event struct {
	// Type is the event type without the "on" prefix, e.g. "click".
	Type string

	// Target is the node the event was dispatched at.
	Target *html.Node

	// Data carries event-specific payload such as an input value.
	Data map[string]any

	stopped          bool
	defaultPrevented bool
}

// StopPropagation stops delivery to listeners further up the synthetic
// tree. The document's own listeners still run.
func (e *Event) StopPropagation() { e.stopped = true }

// PropagationStopped reports whether StopPropagation was called.
func (e *Event) PropagationStopped() bool { return e.stopped }

// PreventDefault marks the default action as cancelled.
func (e *Event) PreventDefault() { e.defaultPrevented = true }

// DefaultPrevented reports whether PreventDefault was called.
func (e *Event) DefaultPrevented() bool { return e.defaultPrevented }

// AddEventListener installs fn for events of the given type and returns a
// function that removes it.
func (d *Document) AddEventListener(eventType string, fn Listener) func() {
	d.nextID++
	l := &listener{id: d.nextID, fn: fn}
	d.listeners[eventType] = append(d.listeners[eventType], l)
	return func() { d.removeListener(eventType, l.id) }
}

func (d *Document) removeListener(eventType string, id int) {
	ls := d.listeners[eventType]
	for i, l := range ls {
		if l.id == id {
			d.listeners[eventType] = append(ls[:i:i], ls[i+1:]...)
			break
		}
	}
	if len(d.listeners[eventType]) == 0 {
		delete(d.listeners, eventType)
	}
}

// ListenerCount returns the number of listeners installed for eventType.
func (d *Document) ListenerCount(eventType string) int {
	return len(d.listeners[eventType])
}

// ListenedTypes returns the number of event types with at least one listener.
func (d *Document) ListenedTypes() int {
	return len(d.listeners)
}

// Dispatch delivers a new event of the given type at target and returns it.
func (d *Document) Dispatch(target *html.Node, eventType string, data map[string]any) *Event {
	ev := &Event{Type: eventType, Target: target, Data: data}
	// Snapshot so listeners may add or remove listeners while running.
	ls := append([]*listener(nil), d.listeners[eventType]...)
	for _, l := range ls {
		l.fn(ev)
	}
	return ev
}

// defaultGlobals mirrors the enumerable globals of a browser window: event
// handler slots plus a few ordinary properties.
var defaultGlobals = []string{
	"document", "location", "navigator", "history", "localStorage",

	// Mouse events
	"onclick", "ondblclick", "onmousedown", "onmouseup", "onmousemove",
	"onmouseenter", "onmouseleave", "onmouseover", "onmouseout",
	"oncontextmenu", "onwheel",

	// Keyboard events
	"onkeydown", "onkeyup", "onkeypress",

	// Form events
	"oninput", "onchange", "onsubmit", "onfocus", "onblur", "onfocusin",
	"onfocusout", "onselect", "oninvalid", "onreset",

	// Drag events
	"ondragstart", "ondrag", "ondragend", "ondragenter", "ondragover",
	"ondragleave", "ondrop",

	// Touch and pointer events
	"ontouchstart", "ontouchmove", "ontouchend", "ontouchcancel",
	"onpointerdown", "onpointerup", "onpointermove", "onpointerenter",
	"onpointerleave", "onpointercancel",

	// Scroll, load and media events
	"onscroll", "onscrollend", "onload", "onerror", "onabort",
	"onplay", "onpause", "onended", "ontimeupdate", "onprogress",

	// Animation and transition events
	"onanimationstart", "onanimationend", "onanimationiteration",
	"ontransitionstart", "ontransitionend",

	// Clipboard events
	"oncopy", "oncut", "onpaste",

	"ontoggle",
}
