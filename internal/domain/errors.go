package domain

import "errors"

// Sentinel errors for matrix construction. Callers branch on these with
// errors.Is; wrap with call-site context via fmt.Errorf("%w", ...), never
// by restating the message as a new string.
var (
	// ErrItemNameTooLong indicates a display name exceeds MaxItemNameLen.
	ErrItemNameTooLong = errors.New("dlx: item name too long")

	// ErrSecondaryBeforePrimary indicates a primary item was declared
	// after at least one secondary item.
	ErrSecondaryBeforePrimary = errors.New("dlx: primary item declared after a secondary item")

	// ErrItemsFinalized indicates AddItem was called after AddOption.
	ErrItemsFinalized = errors.New("dlx: items are finalized, no more items may be added")

	// ErrUnknownItem indicates an option referenced an undeclared item.
	ErrUnknownItem = errors.New("dlx: unknown item")

	// ErrEmptyOption indicates an option with no items was rejected.
	ErrEmptyOption = errors.New("dlx: option has no items")

	// ErrDuplicateItemInOption indicates the same item appeared twice in
	// one option.
	ErrDuplicateItemInOption = errors.New("dlx: duplicate item in option")
)
