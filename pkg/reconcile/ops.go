package reconcile

import (
	"fmt"

	"golang.org/x/net/html"

	"github.com/vango-dev/tiny/pkg/reactid"
)

// OpKind is the type of a diff operation.
type OpKind uint8

const (
	OpInsert OpKind = iota + 1
	OpRemove
	OpMove
)

// String returns the string representation of the OpKind.
func (k OpKind) String() string {
	switch k {
	case OpInsert:
		return "INSERT"
	case OpRemove:
		return "REMOVE"
	case OpMove:
		return "MOVE"
	default:
		return "UNKNOWN"
	}
}

// Op is one child-list mutation computed during reconciliation.
type Op struct {
	Kind OpKind

	// ParentID identifies the DOM or List component whose children changed.
	ParentID reactid.ID

	// Parent is the real element holding the affected nodes.
	Parent *html.Node `json:"-"`

	// Slot is the identifier allocated to an inserted component.
	Slot reactid.ID

	// Nodes are the freshly mounted nodes of an INSERT.
	Nodes []*html.Node `json:"-"`

	// From locates the existing nodes of a MOVE or REMOVE.
	From reactid.ID

	// To identifies the sibling the nodes are placed before. Empty means
	// the end of the parent's child list.
	To reactid.ID
}

// String formats the op for logs and the CLI.
func (o Op) String() string {
	target := "end"
	if !o.To.IsZero() {
		target = "before " + o.To.String()
	}
	switch o.Kind {
	case OpInsert:
		return fmt.Sprintf("INSERT %s in %s %s", o.Slot, o.ParentID, target)
	case OpMove:
		return fmt.Sprintf("MOVE %s in %s %s", o.From, o.ParentID, target)
	case OpRemove:
		return fmt.Sprintf("REMOVE %s from %s", o.From, o.ParentID)
	default:
		return "UNKNOWN"
	}
}
