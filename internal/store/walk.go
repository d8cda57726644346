package store

import "dlx/internal/domain"

// nextInOption returns the next option-node after n within the same
// option, wrapping via the spacer trick: a spacer's Up field holds the
// previous spacer's NodeID, and the node right after that previous
// spacer is always the first node of the option the current spacer
// terminates.
func (m *Matrix) nextInOption(n domain.NodeID) domain.NodeID {
	j := n + 1
	if m.Nodes[j].IsSpacer() {
		j = m.Nodes[j].Up + 1
	}
	return j
}

// prevInOption is the mirror image of nextInOption, used when a walk must
// visit an option in reverse order (UncoverOption).
func (m *Matrix) prevInOption(n domain.NodeID) domain.NodeID {
	j := n - 1
	if m.Nodes[j].IsSpacer() {
		j = m.Nodes[j].Down - 1
	}
	return j
}

// walkForwardExcept visits every option-node of n's option other than n
// itself, in forward (+1) order, calling fn on each.
func (m *Matrix) walkForwardExcept(n domain.NodeID, fn func(domain.NodeID)) {
	for j := m.nextInOption(n); j != n; j = m.nextInOption(j) {
		fn(j)
	}
}

// walkBackwardExcept is the reverse-order counterpart of
// walkForwardExcept, used so an UncoverOption mirrors its CoverOption
// exactly in reverse.
func (m *Matrix) walkBackwardExcept(n domain.NodeID, fn func(domain.NodeID)) {
	for j := m.prevInOption(n); j != n; j = m.prevInOption(j) {
		fn(j)
	}
}

// unlinkNode removes node j from its owning item's vertical ring without
// touching j's own Up/Down fields, so a later relinkNode can restore it
// exactly.
func (m *Matrix) unlinkNode(j domain.NodeID) {
	nj := m.Nodes[j]
	m.Nodes[nj.Up].Down = nj.Down
	m.Nodes[nj.Down].Up = nj.Up
	m.Items[nj.Item].OptionCount--
}

// relinkNode is the exact inverse of unlinkNode.
func (m *Matrix) relinkNode(j domain.NodeID) {
	nj := m.Nodes[j]
	m.Nodes[nj.Up].Down = j
	m.Nodes[nj.Down].Up = j
	m.Items[nj.Item].OptionCount++
}

// OptionItems walks from node n backward to its preceding spacer, then
// forward to the following spacer, returning the item IDs of the option n
// belongs to, in insertion order. Used by the reporter to render a chosen
// option without mutating the matrix.
func (m *Matrix) OptionItems(n domain.NodeID) []domain.ItemID {
	spacer := n
	for !m.Nodes[spacer].IsSpacer() {
		spacer--
	}
	items := make([]domain.ItemID, 0, 4)
	for j := spacer + 1; !m.Nodes[j].IsSpacer(); j++ {
		items = append(items, m.Nodes[j].Item)
	}
	return items
}
