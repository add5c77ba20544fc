package filter

import (
	"fmt"

	"github.com/kailas-cloud/hitfilter/internal/domain"
)

// Category scopes a condition to one keyword domain.
type Category int

// Category constants. None means "no scope restriction" and is never stored on a condition.
const (
	None Category = iota - 1
	ActorKeyword
	ArmorKeyword
	MagicKeyword
	FormEditorID

	categoryCount
)

var categoryNames = [...]string{
	ActorKeyword: "actor",
	ArmorKeyword: "armor",
	MagicKeyword: "magic",
	FormEditorID: "editorid",
}

// IsValid reports whether c can be stored on a condition.
func (c Category) IsValid() bool {
	return c >= ActorKeyword && c < categoryCount
}

func (c Category) String() string {
	if !c.IsValid() {
		return "none"
	}
	return categoryNames[c]
}

// ParseCategory resolves a category name such as "armor".
func ParseCategory(name string) (Category, bool) {
	for i, n := range categoryNames {
		if n == name {
			return Category(i), true
		}
	}
	return None, false
}

func (c Category) bit() categorySet { return 1 << uint(c) }

// categorySet is a bitmask of categories present in a list.
type categorySet uint32

func (s categorySet) has(c Category) bool { return c.IsValid() && s&c.bit() != 0 }

// Condition is a single, immutable keyword test.
type Condition struct {
	text     string
	negate   bool
	category Category
}

// NewCondition validates and creates a Condition.
// Editor ID text is a regular expression and is not compiled here.
func NewCondition(text string, negate bool, category Category) (Condition, error) {
	if text == "" {
		return Condition{}, fmt.Errorf("%w: text is required", domain.ErrInvalidCondition)
	}
	if !category.IsValid() {
		return Condition{}, fmt.Errorf("%w: unknown category %d for %q", domain.ErrInvalidCondition, category, text)
	}
	return Condition{text: text, negate: negate, category: category}, nil
}

// Text returns the keyword name or editor ID pattern.
func (c Condition) Text() string { return c.text }

// Negate reports whether the test is inverted.
func (c Condition) Negate() bool { return c.negate }

// Category returns the condition scope.
func (c Condition) Category() Category { return c.category }

func (c Condition) String() string {
	prefix := ""
	if c.negate {
		prefix = "!"
	}
	return prefix + c.category.String() + ":" + c.text
}

// test applies negation to a raw membership result.
func (c Condition) test(has bool) bool { return has != c.negate }
