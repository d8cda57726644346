package store

import "dlx/internal/domain"

// Cover removes item i from the horizontal ring and unlinks every
// option-node in every OTHER option that touches i from its vertical
// ring, exactly mirroring tranmh-sudoku's DLXSolver.cover but addressed by
// index instead of pointer. Uncover(i) restores everything Cover(i)
// touched, provided intervening calls are properly nested (LIFO).
func (m *Matrix) Cover(i domain.ItemID) {
	m.setRight(m.left(i), m.right(i))
	m.setLeft(m.right(i), m.left(i))

	for row := m.Nodes[i].Down; row != domain.NodeID(i); row = m.Nodes[row].Down {
		m.walkForwardExcept(row, m.unlinkNode)
	}
}

// Uncover is the exact inverse of Cover, undoing work in the reverse
// order Cover performed it: relink bottom-up within each option, then
// options in reverse row order, then finally restore the item itself to
// the horizontal ring.
func (m *Matrix) Uncover(i domain.ItemID) {
	for row := m.Nodes[i].Up; row != domain.NodeID(i); row = m.Nodes[row].Up {
		m.walkBackwardExcept(row, m.relinkNode)
	}

	m.setRight(m.left(i), i)
	m.setLeft(m.right(i), i)
}

// CoverOption covers every OTHER item touched by the option that node n
// belongs to. Used by the search engine when it tentatively chooses
// option n: n's own item was already covered by the Cover call that
// picked the item column n was chosen from.
func (m *Matrix) CoverOption(n domain.NodeID) {
	m.walkForwardExcept(n, func(j domain.NodeID) {
		m.Cover(m.Nodes[j].Item)
	})
}

// UncoverOption is the exact inverse of CoverOption: it must run in
// reverse order so that covers nested inside other covers unwind in
// LIFO order.
func (m *Matrix) UncoverOption(n domain.NodeID) {
	m.walkBackwardExcept(n, func(j domain.NodeID) {
		m.Uncover(m.Nodes[j].Item)
	})
}
