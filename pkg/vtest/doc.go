// Package vtest provides testing helpers for tiny components.
//
// The vtest package reduces boilerplate when testing components by
// providing a fluent harness builder, event helpers and render assertions.
//
// # Quick Start
//
//	func TestCounter(t *testing.T) {
//	    h := vtest.New().Build(t)
//	    root := h.Mount(tiny.CreateElement(Counter, nil))
//
//	    h.Click("0.0")
//	    vtest.ExpectContains(t, root, "1")
//	}
//
// # Fluent Harness Builder
//
// The builder allows chaining setup operations:
//
//	h := vtest.New().
//	    WithIDAttribute("data-tid").
//	    WithRootIndex(3).
//	    Build(t)
//
// # One-Liner Shorthand
//
// For a plain render with the default identifier attribute:
//
//	html := vtest.RenderToString(tiny.H("p", "hello"))
//
// # Render Assertions
//
// Assert on the rendered HTML of a root:
//
//	vtest.ExpectContains(t, root, "hello")
//	vtest.ExpectNotContains(t, root, "error")
//	vtest.ExpectElement(t, root, "button")
//	vtest.ExpectAttribute(t, root, "class", "btn-primary")
//	vtest.ExpectOps(t, root, "INSERT 0.0:1 in 0.0 end")
package vtest
