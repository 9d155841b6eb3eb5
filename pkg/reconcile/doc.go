// Package reconcile turns element descriptions into live host nodes and
// keeps them up to date.
//
// Every mounted value is backed by one of five component variants:
//
//   - Empty: nil children; mounts to nothing.
//   - Text: strings and numbers; mounts a <span> carrying the identifier.
//   - DOM: *vdom.Element with a tag name; owns one element.
//   - List: a slice child; its items share the parent's element.
//   - Composite: *vdom.Element whose type is a *Class; wraps a user
//     component and mounts whatever it renders.
//
// A Renderer mounts a tree into a container once (Render). Afterwards,
// SetState on a user component, or Root.Update with a new description,
// reconciles in place: children are matched by key (or by position when
// unkeyed), compatible components are updated, and the remaining
// differences are expressed as INSERT, REMOVE and MOVE operations applied
// to the host document.
//
// All work is synchronous. There is no batching: every SetState re-renders
// before it returns, including calls made from inside event callbacks.
package reconcile
