package filter

import (
	"errors"
	"testing"

	"github.com/kailas-cloud/hitfilter/internal/domain"
)

func TestNewCondition_Valid(t *testing.T) {
	c, err := NewCondition("ArmorHeavy", true, ArmorKeyword)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Text() != "ArmorHeavy" {
		t.Errorf("Text() = %q", c.Text())
	}
	if !c.Negate() {
		t.Error("Negate() = false")
	}
	if c.Category() != ArmorKeyword {
		t.Errorf("Category() = %v", c.Category())
	}
	if c.String() != "!armor:ArmorHeavy" {
		t.Errorf("String() = %q", c.String())
	}
}

func TestNewCondition_EmptyText(t *testing.T) {
	_, err := NewCondition("", false, ActorKeyword)
	if !errors.Is(err, domain.ErrInvalidCondition) {
		t.Fatalf("expected ErrInvalidCondition, got %v", err)
	}
}

func TestNewCondition_InvalidCategory(t *testing.T) {
	for _, cat := range []Category{None, categoryCount, Category(42)} {
		if _, err := NewCondition("X", false, cat); !errors.Is(err, domain.ErrInvalidCondition) {
			t.Errorf("category %d: expected ErrInvalidCondition, got %v", cat, err)
		}
	}
}

func TestNewCondition_DoesNotCompileEditorID(t *testing.T) {
	if _, err := NewCondition("Nord[", false, FormEditorID); err != nil {
		t.Fatalf("bad patterns must fail at match time, got %v", err)
	}
}

func TestParseCategory(t *testing.T) {
	tests := []struct {
		name string
		want Category
		ok   bool
	}{
		{"actor", ActorKeyword, true},
		{"armor", ArmorKeyword, true},
		{"magic", MagicKeyword, true},
		{"editorid", FormEditorID, true},
		{"none", None, false},
		{"ARMOR", None, false},
	}
	for _, tt := range tests {
		got, ok := ParseCategory(tt.name)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseCategory(%q) = (%v, %v), want (%v, %v)", tt.name, got, ok, tt.want, tt.ok)
		}
	}
}

func TestCategory_String(t *testing.T) {
	if None.String() != "none" {
		t.Errorf("None.String() = %q", None.String())
	}
	if MagicKeyword.String() != "magic" {
		t.Errorf("MagicKeyword.String() = %q", MagicKeyword.String())
	}
}
