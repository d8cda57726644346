package store

import "dlx/internal/domain"

// AddOption appends one option to the flat node store: a leading spacer
// (for the first option this is the first spacer, placed right after the
// header block, and it is linked back to no earlier spacer) followed by one
// option-node per item in items, each spliced to the tail of that item's
// vertical ring. Callers (internal/builder) are responsible for validating
// items before calling AddOption; Matrix assumes items is non-empty,
// duplicate-free, and entirely in range.
func (m *Matrix) AddOption(items []domain.ItemID) {
	spacer := domain.NodeID(len(m.Nodes))
	m.Nodes = append(m.Nodes, Node{Item: spacerItem})
	if m.lastSpacer >= 0 {
		m.Nodes[m.lastSpacer].Down = spacer
		m.Nodes[spacer].Up = m.lastSpacer
	}
	m.lastSpacer = spacer

	optionIndex := m.optionCount
	for _, it := range items {
		id := domain.NodeID(len(m.Nodes))
		header := domain.NodeID(it)
		tail := m.Nodes[header].Up
		m.Nodes = append(m.Nodes, Node{Up: tail, Down: header, Item: it, Option: optionIndex})
		m.Nodes[tail].Down = id
		m.Nodes[header].Up = id
		m.Items[it].OptionCount++
	}
	m.optionCount++
}

// Finalize appends the closing spacer that terminates the last option. It
// must be called exactly once, after every option has been added and
// before the matrix is handed to the search engine.
func (m *Matrix) Finalize() {
	spacer := domain.NodeID(len(m.Nodes))
	m.Nodes = append(m.Nodes, Node{Item: spacerItem})
	if m.lastSpacer >= 0 {
		m.Nodes[m.lastSpacer].Down = spacer
		m.Nodes[spacer].Up = m.lastSpacer
	}
	m.lastSpacer = spacer
}
