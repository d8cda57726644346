package builder_test

import (
	"errors"
	"strings"
	"testing"

	"dlx/internal/builder"
	"dlx/internal/domain"
)

func TestAddItemRejectsNameTooLong(t *testing.T) {
	b := builder.New()
	longName := strings.Repeat("x", domain.MaxItemNameLen+1)
	if _, err := b.AddItem(longName, domain.Primary); !errors.Is(err, domain.ErrItemNameTooLong) {
		t.Fatalf("AddItem(long name) = %v, want ErrItemNameTooLong", err)
	}
}

func TestAddItemRejectsPrimaryAfterSecondary(t *testing.T) {
	b := builder.New()
	if _, err := b.AddItem("s1", domain.Secondary); err != nil {
		t.Fatalf("AddItem(s1) unexpected error: %v", err)
	}
	if _, err := b.AddItem("p1", domain.Primary); !errors.Is(err, domain.ErrSecondaryBeforePrimary) {
		t.Fatalf("AddItem(p1) = %v, want ErrSecondaryBeforePrimary", err)
	}
}

func TestAddItemRejectsAfterOptionsStarted(t *testing.T) {
	b := builder.New()
	a, _ := b.AddItem("A", domain.Primary)
	if _, err := b.AddOption(a); err != nil {
		t.Fatalf("AddOption unexpected error: %v", err)
	}
	if _, err := b.AddItem("B", domain.Primary); !errors.Is(err, domain.ErrItemsFinalized) {
		t.Fatalf("AddItem after AddOption = %v, want ErrItemsFinalized", err)
	}
}

func TestAddOptionRejectsEmpty(t *testing.T) {
	b := builder.New()
	if _, err := b.AddOption(); !errors.Is(err, domain.ErrEmptyOption) {
		t.Fatalf("AddOption() = %v, want ErrEmptyOption", err)
	}
}

func TestAddOptionRejectsUnknownItem(t *testing.T) {
	b := builder.New()
	a, _ := b.AddItem("A", domain.Primary)
	if _, err := b.AddOption(a, domain.ItemID(99)); !errors.Is(err, domain.ErrUnknownItem) {
		t.Fatalf("AddOption(unknown) = %v, want ErrUnknownItem", err)
	}
}

func TestAddOptionRejectsDuplicate(t *testing.T) {
	b := builder.New()
	a, _ := b.AddItem("A", domain.Primary)
	if _, err := b.AddOption(a, a); !errors.Is(err, domain.ErrDuplicateItemInOption) {
		t.Fatalf("AddOption(dup) = %v, want ErrDuplicateItemInOption", err)
	}
}

func TestStickyErrorShortCircuits(t *testing.T) {
	b := builder.New()
	if _, err := b.AddOption(); err == nil {
		t.Fatal("expected first error")
	}
	if _, err := b.AddItem("A", domain.Primary); !errors.Is(err, domain.ErrEmptyOption) {
		t.Fatalf("AddItem after sticky error = %v, want original ErrEmptyOption", err)
	}
	if _, err := b.Build(); !errors.Is(err, domain.ErrEmptyOption) {
		t.Fatalf("Build after sticky error = %v, want original ErrEmptyOption", err)
	}
}

func TestBuildIsIdempotent(t *testing.T) {
	b := builder.New()
	a, _ := b.AddItem("A", domain.Primary)
	if _, err := b.AddOption(a); err != nil {
		t.Fatalf("AddOption unexpected error: %v", err)
	}
	m1, err := b.Build()
	if err != nil {
		t.Fatalf("Build unexpected error: %v", err)
	}
	m2, err := b.Build()
	if err != nil {
		t.Fatalf("second Build unexpected error: %v", err)
	}
	if m1 != m2 {
		t.Fatal("Build called twice returned different matrices")
	}
}

func TestBuildProducesUsableMatrix(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(b *builder.Builder) error
		wantErr bool
	}{
		{
			name: "single item single option",
			setup: func(b *builder.Builder) error {
				a, err := b.AddItem("A", domain.Primary)
				if err != nil {
					return err
				}
				_, err = b.AddOption(a)
				return err
			},
		},
		{
			name: "primary then secondary items",
			setup: func(b *builder.Builder) error {
				a, err := b.AddItem("A", domain.Primary)
				if err != nil {
					return err
				}
				s, err := b.AddItem("S", domain.Secondary)
				if err != nil {
					return err
				}
				_, err = b.AddOption(a, s)
				return err
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := builder.New()
			err := tt.setup(b)
			if (err != nil) != tt.wantErr {
				t.Fatalf("setup error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			m, err := b.Build()
			if err != nil {
				t.Fatalf("Build unexpected error: %v", err)
			}
			if m.OptionCount() != 1 {
				t.Fatalf("OptionCount = %d, want 1", m.OptionCount())
			}
		})
	}
}
