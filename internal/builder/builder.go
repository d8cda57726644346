// Package builder validates caller-supplied items and options and
// assembles them into a store.Matrix. It is the only package that knows
// about fallible caller input; internal/store assumes everything it is
// handed is already correct.
package builder

import (
	"fmt"

	"dlx/internal/domain"
	"dlx/internal/store"
)

// Builder accumulates items and options and produces a store.Matrix via
// Build. The zero value is not usable; construct with New.
//
// Once any call fails, Builder sticks to the first error: every
// subsequent AddItem/AddOption/Build call becomes a no-op returning that
// same error, mirroring the caller's usecase.Service "dependency not
// configured" short-circuit.
type Builder struct {
	specs          []store.ItemSpec
	names          map[string]domain.ItemID
	options        [][]domain.ItemID
	firstSecondary domain.ItemID
	itemsClosed    bool
	built          *store.Matrix
	err            error
}

// New returns an empty Builder.
func New() *Builder {
	return &Builder{
		names:          make(map[string]domain.ItemID),
		firstSecondary: -1,
	}
}

// AddItem appends an item and returns its stable ID. Primary items must
// all be declared before any secondary item; AddItem must not be called
// after AddOption.
func (b *Builder) AddItem(name string, kind domain.Kind) (domain.ItemID, error) {
	if b.err != nil {
		return 0, b.err
	}
	if b.itemsClosed {
		return 0, b.fail(fmt.Errorf("dlx: AddItem %q: %w", name, domain.ErrItemsFinalized))
	}
	if len(name) > domain.MaxItemNameLen {
		return 0, b.fail(fmt.Errorf("dlx: AddItem %q: %w", name, domain.ErrItemNameTooLong))
	}
	if kind == domain.Primary && b.firstSecondary >= 0 {
		return 0, b.fail(fmt.Errorf("dlx: AddItem %q: %w", name, domain.ErrSecondaryBeforePrimary))
	}

	id := domain.ItemID(len(b.specs))
	b.specs = append(b.specs, store.ItemSpec{Name: name, Kind: kind})
	b.names[name] = id
	if kind == domain.Secondary && b.firstSecondary < 0 {
		b.firstSecondary = id
	}
	return id, nil
}

// AddOption registers one option as a set of previously declared items.
// It closes item declaration: AddItem may not be called afterward.
func (b *Builder) AddOption(items ...domain.ItemID) (int, error) {
	if b.err != nil {
		return 0, b.err
	}
	b.itemsClosed = true

	if len(items) == 0 {
		return 0, b.fail(fmt.Errorf("dlx: AddOption: %w", domain.ErrEmptyOption))
	}
	seen := make(map[domain.ItemID]bool, len(items))
	for _, it := range items {
		if it < 0 || int(it) >= len(b.specs) {
			return 0, b.fail(fmt.Errorf("dlx: AddOption: item %d: %w", it, domain.ErrUnknownItem))
		}
		if seen[it] {
			return 0, b.fail(fmt.Errorf("dlx: AddOption: item %q: %w", b.specs[it].Name, domain.ErrDuplicateItemInOption))
		}
		seen[it] = true
	}

	idx := len(b.options)
	opt := make([]domain.ItemID, len(items))
	copy(opt, items)
	b.options = append(b.options, opt)
	return idx, nil
}

// Build finalizes the flat store. Idempotent: calling Build more than
// once returns the same matrix without re-running the build algorithm.
func (b *Builder) Build() (*store.Matrix, error) {
	if b.err != nil {
		return nil, b.err
	}
	if b.built != nil {
		return b.built, nil
	}

	firstSecondary := b.firstSecondary
	if firstSecondary < 0 {
		firstSecondary = domain.ItemID(len(b.specs))
	}
	m := store.NewMatrix(b.specs, firstSecondary)
	for _, opt := range b.options {
		m.AddOption(opt)
	}
	m.Finalize()

	b.built = m
	return m, nil
}

// fail records err as the builder's sticky error and returns it.
func (b *Builder) fail(err error) error {
	b.err = err
	return err
}
