// Package dom is the host environment the reconciler renders into.
//
// A Document is a live tree of golang.org/x/net/html nodes plus a small
// event system modelled on the browser: listeners are installed on the
// document per event type, and Dispatch delivers a native event for a
// target node to those listeners. Nothing bubbles through the real node
// tree; delegation at the document is the only way events are observed.
//
// The package only offers the operations a renderer needs: element and text
// creation, attribute access, insertion and removal, lookups by identity
// attribute, and HTML serialization.
package dom
