// Package vdom builds element descriptions for the reconciler.
//
// An Element is an immutable description: a type (a tag name, or a component
// class for user-defined components), an optional key, and ordered props.
// The reserved "children" prop holds nested child values, which may be nil,
// strings, numbers, *Element values, or slices of any of those (a slice is a
// list child with no wrapping element).
//
// # Element API
//
// Elements are created with CreateElement or the variadic tag helpers:
//
//	Div(Class("card"), ID("main"),
//	    H1("Title"),
//	    Ul(Range(items, func(it string, i int) any {
//	        return Li(Key(it), it)
//	    })),
//	    OnClick(handler),
//	)
//
// Every call returns a fresh element; nothing is shared with, or mutated
// after, a previous render.
package vdom
