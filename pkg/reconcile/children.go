package reconcile

import (
	"strconv"

	"golang.org/x/net/html"

	"github.com/vango-dev/tiny/pkg/dom"
	"github.com/vango-dev/tiny/pkg/reactid"
	"github.com/vango-dev/tiny/pkg/vdom"
)

// children is the keyed child collection of a DOM or List component.
type children struct {
	owner component
	sep   reactid.Sep

	byName map[string]component
	names  []string
	order  []component

	// slot is the next unused index for a child identifier. Indexes are
	// never reused, so an inserted child cannot collide with a sibling
	// that kept its identifier across a move.
	slot int
}

func newChildren(owner component, sep reactid.Sep) *children {
	return &children{owner: owner, sep: sep}
}

// childNames computes the matching name of every value: "$"+key for keyed
// elements, the base-36 position otherwise. A repeated key falls back to
// its position.
func childNames(values []any) []string {
	names := make([]string, len(values))
	seen := make(map[string]bool, len(values))
	for i, v := range values {
		pos := strconv.FormatInt(int64(i), 36)
		name := pos
		if el, ok := v.(*vdom.Element); ok && el != nil && el.Key != "" {
			name = "$" + el.Key
			if seen[name] {
				name = "$" + el.Key + "#" + pos
			}
		}
		seen[name] = true
		names[i] = name
	}
	return names
}

func (ch *children) id() reactid.ID { return ch.owner.common().id }

func (ch *children) mount(values []any) []*html.Node {
	rt := ch.owner.common().root
	ch.names = childNames(values)
	ch.byName = make(map[string]component, len(values))
	ch.order = make([]component, len(values))

	var out []*html.Node
	for i, v := range values {
		c := instantiate(rt, v)
		c.common().mountIndex = i
		out = append(out, c.mount(ch.id().Child(ch.sep, i), ch.owner)...)
		ch.byName[ch.names[i]] = c
		ch.order[i] = c
	}
	ch.slot = len(values)
	return out
}

// update reconciles the collection against values and applies the
// resulting operations to the host document.
func (ch *children) update(values []any) {
	rt := ch.owner.common().root
	r := rt.r

	// The end anchor must be resolved before any node moves.
	parent, end := ch.hostRange()

	nextNames := childNames(values)
	next := make([]component, len(values))
	for i, v := range values {
		prev := ch.byName[nextNames[i]]
		if prev != nil && prev.shouldReceive(v) {
			prev.receiveComponent(v)
			next[i] = prev
			continue
		}
		next[i] = instantiate(rt, v)
	}

	var ops []Op
	opAt := make([]int, len(next))
	for i, c := range next {
		opAt[i] = -1
		prev := ch.byName[nextNames[i]]
		if prev == c {
			if prev.common().mountIndex != i && len(c.nodes()) > 0 {
				opAt[i] = len(ops)
				ops = append(ops, Op{Kind: OpMove, ParentID: ch.id(), Parent: parent, From: prev.common().id})
			}
			c.common().mountIndex = i
			continue
		}
		if prev != nil {
			prev.unmount()
			if prev.kind() != KindEmpty {
				ops = append(ops, Op{Kind: OpRemove, ParentID: ch.id(), Parent: parent, From: prev.common().id})
			}
		}
		slot := ch.id().Child(ch.sep, ch.slot)
		ch.slot++
		nodes := c.mount(slot, ch.owner)
		c.common().mountIndex = i
		if len(nodes) == 0 {
			continue
		}
		opAt[i] = len(ops)
		ops = append(ops, Op{Kind: OpInsert, ParentID: ch.id(), Parent: parent, Slot: slot, Nodes: nodes})
	}

	nextByName := make(map[string]component, len(next))
	for i, c := range next {
		nextByName[nextNames[i]] = c
	}
	for i, name := range ch.names {
		if _, ok := nextByName[name]; ok {
			continue
		}
		prev := ch.order[i]
		prev.unmount()
		if prev.kind() != KindEmpty {
			ops = append(ops, Op{Kind: OpRemove, ParentID: ch.id(), Parent: parent, From: prev.common().id})
		}
	}

	// Every placed child goes before the next sibling that has nodes.
	for i := range next {
		if opAt[i] < 0 {
			continue
		}
		for j := i + 1; j < len(next); j++ {
			if len(next[j].nodes()) > 0 {
				ops[opAt[i]].To = next[j].common().id
				break
			}
		}
	}

	ch.names = nextNames
	ch.byName = nextByName
	ch.order = next

	if len(ops) == 0 {
		return
	}
	applyOps(parent, end, r.attr, ops)
	rt.record(ops)
}

// applyOps detaches every moved or removed node first, then places inserts
// and moves from last to first so each anchor is already in position.
func applyOps(parent, end *html.Node, attr string, ops []Op) {
	moved := make(map[int][]*html.Node)
	for i, op := range ops {
		if op.Kind != OpMove && op.Kind != OpRemove {
			continue
		}
		nodes := dom.ChildrenByIDPrefix(parent, attr, op.From.String())
		for _, n := range nodes {
			dom.RemoveChild(parent, n)
		}
		if op.Kind == OpMove {
			moved[i] = nodes
		}
	}

	for i := len(ops) - 1; i >= 0; i-- {
		op := ops[i]
		var nodes []*html.Node
		switch op.Kind {
		case OpInsert:
			nodes = op.Nodes
		case OpMove:
			nodes = moved[i]
		default:
			continue
		}
		ref := end
		if !op.To.IsZero() {
			if n := dom.FirstChildByIDPrefix(parent, attr, op.To.String()); n != nil {
				ref = n
			}
		}
		for _, n := range nodes {
			dom.InsertBefore(parent, n, ref)
		}
	}
}

// hostRange returns the element holding the collection's nodes and the
// node that follows them, nil meaning the end of the element.
func (ch *children) hostRange() (parent, end *html.Node) {
	switch o := ch.owner.(type) {
	case *domComponent:
		return o.node, nil
	default:
		rt := ch.owner.common().root
		return rt.hostNode(ch.id()), hostSiblingAfter(ch.owner)
	}
}

func (ch *children) unmount() {
	if ch == nil {
		return
	}
	for _, c := range ch.order {
		c.unmount()
	}
}

// hostSiblingAfter returns the first host node placed after c's nodes
// inside the same element, or nil when c's nodes come last.
func hostSiblingAfter(c component) *html.Node {
	for cur := c; ; {
		parent := cur.common().parent
		var coll *children
		switch p := parent.(type) {
		case nil:
			return nil
		case *compositeComponent:
			cur = p
			continue
		case *domComponent:
			coll = p.children
		case *listComponent:
			coll = p.children
		}
		after := false
		for _, sib := range coll.order {
			if sib == cur {
				after = true
				continue
			}
			if !after {
				continue
			}
			if ns := sib.nodes(); len(ns) > 0 {
				return ns[0]
			}
		}
		if _, ok := parent.(*domComponent); ok {
			return nil
		}
		cur = parent
	}
}
