// Package store owns the flat, index-addressed arena that backs the
// exact-cover search: one Node slice holding item headers, option-nodes,
// and spacers, and one Item slice holding the horizontal active-item ring
// plus per-item option counts. The arena never grows once Build has
// finished (only OptionItems allocates, for the slice it returns); Cover
// and Uncover only ever rewrite neighbor fields that were
// allocated up front, which is what lets the search engine backtrack by
// undoing links instead of copying state.
package store

import "dlx/internal/domain"

// Root is the sentinel identifying the horizontal ring's anchor. It has no
// header node and no vertical ring of its own; it exists purely so Cover
// and Uncover can splice items in and out without special-casing the ends
// of the ring.
const Root domain.ItemID = -1

// spacerItem is the sentinel Item value marking a Node as a spacer rather
// than an option-node or header.
const spacerItem domain.ItemID = -1

// Item is one constraint column: a display name, its primary/secondary
// classification, its position in the horizontal active-item ring, and the
// number of active options currently referencing it.
type Item struct {
	Name        string
	Kind        domain.Kind
	Left, Right domain.ItemID
	OptionCount int
}

// Node is either an option-node (Item >= 0, linked into that item's
// vertical ring via Up/Down) or a spacer (Item == -1, whose Up/Down instead
// hold the previous/next spacer's NodeID — see walk.go for how that
// supports O(1) wraparound while walking an option). Option, valid only
// on option-nodes, is the 0-based position of AddOption's call that
// created this node, letting callers recover input order from a node
// reached via the choice stack.
type Node struct {
	Up, Down domain.NodeID
	Item     domain.ItemID
	Option   int
}

// IsSpacer reports whether n is a spacer rather than a header or
// option-node.
func (n Node) IsSpacer() bool { return n.Item == spacerItem }

// ItemSpec describes one item to be declared when constructing a Matrix.
type ItemSpec struct {
	Name string
	Kind domain.Kind
}

// Matrix is the fully-assembled sparse link structure: item headers occupy
// Nodes[0:len(Items)], and every option appended afterward is bracketed by
// leading and trailing spacer nodes.
type Matrix struct {
	Items []Item
	Nodes []Node

	rootLeft, rootRight domain.ItemID
	firstSecondary      domain.ItemID
	firstSpacer         domain.NodeID
	lastSpacer          domain.NodeID
	optionCount         int
}

// NewMatrix allocates the header nodes and horizontal ring for specs, in
// declared order. specs must already be validated (primary items first,
// names within budget); Matrix itself does no validation, mirroring the
// split between internal/builder (validates) and internal/store (mutates)
// described in DESIGN.md.
func NewMatrix(specs []ItemSpec, firstSecondary domain.ItemID) *Matrix {
	m := &Matrix{
		Items:          make([]Item, len(specs)),
		Nodes:          make([]Node, len(specs)),
		firstSecondary: firstSecondary,
		rootLeft:       Root,
		rootRight:      Root,
	}
	for i, spec := range specs {
		m.Items[i] = Item{Name: spec.Name, Kind: spec.Kind}
		// Header: its own initial up/down neighbor, item-index equal to
		// its own index.
		m.Nodes[i] = Node{Up: domain.NodeID(i), Down: domain.NodeID(i), Item: domain.ItemID(i)}
	}
	// Thread the horizontal ring Root <-> items[0] <-> ... <-> items[n-1] <-> Root,
	// in declared (primary, then secondary) order.
	prev := Root
	for i := range specs {
		id := domain.ItemID(i)
		m.setRight(prev, id)
		m.setLeft(id, prev)
		prev = id
	}
	m.setRight(prev, Root)
	m.setLeft(Root, prev)

	m.firstSpacer = domain.NodeID(len(specs))
	m.lastSpacer = -1
	return m
}

// left/right/setLeft/setRight treat Root uniformly with real items so that
// Cover/Uncover never need to special-case the ring's anchor.
func (m *Matrix) left(i domain.ItemID) domain.ItemID {
	if i == Root {
		return m.rootLeft
	}
	return m.Items[i].Left
}

func (m *Matrix) right(i domain.ItemID) domain.ItemID {
	if i == Root {
		return m.rootRight
	}
	return m.Items[i].Right
}

func (m *Matrix) setLeft(i, v domain.ItemID) {
	if i == Root {
		m.rootLeft = v
		return
	}
	m.Items[i].Left = v
}

func (m *Matrix) setRight(i, v domain.ItemID) {
	if i == Root {
		m.rootRight = v
		return
	}
	m.Items[i].Right = v
}

// RootRight returns the first active item in the ring, or Root if the ring
// is empty.
func (m *Matrix) RootRight() domain.ItemID { return m.rootRight }

// FirstSecondary returns the item index at which secondary items begin.
// Items with index < FirstSecondary are primary.
func (m *Matrix) FirstSecondary() domain.ItemID { return m.firstSecondary }

// IsPrimary reports whether i is a primary item.
func (m *Matrix) IsPrimary(i domain.ItemID) bool { return i < m.firstSecondary }

// OptionCount returns the number of options appended so far.
func (m *Matrix) OptionCount() int { return m.optionCount }

// OptionIndexOf returns the 0-based position of the AddOption call that
// created the option node n belongs to.
func (m *Matrix) OptionIndexOf(n domain.NodeID) int { return m.Nodes[n].Option }
