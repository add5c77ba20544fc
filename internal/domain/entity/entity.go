// Package entity declares the host object model the filter evaluator queries.
// The host owns every handle; implementations are read during a single call
// and never retained.
package entity

// FormType is the host classification of a form.
type FormType int

// Form type constants.
const (
	Other FormType = iota
	ActorCharacter
	Race
	Armor
	MagicEffect
)

func (t FormType) String() string {
	switch t {
	case ActorCharacter:
		return "actor"
	case Race:
		return "race"
	case Armor:
		return "armor"
	case MagicEffect:
		return "magic_effect"
	default:
		return "other"
	}
}

// Form is any host record with a kind and an editor identifier.
type Form interface {
	FormType() FormType
	EditorID() string
}

// KeywordForm answers keyword membership by exact name.
type KeywordForm interface {
	HasKeywordString(keyword string) bool
}

// BoundObject is an item that can sit in an inventory.
type BoundObject interface {
	IsArmor() bool
	// Armor returns the keyword view of the object when it is an armor.
	Armor() (KeywordForm, bool)
}

// InventoryEntry carries per-stack equip state.
type InventoryEntry interface {
	IsWorn() bool
}

// InventoryItem is one inventory stack.
type InventoryItem struct {
	Object BoundObject
	Count  int
	Entry  InventoryEntry
}

// ActiveEffect is a magic effect instance applied to an actor.
type ActiveEffect interface {
	Inactive() bool
	// BaseEffect may return nil when the host has no base form for the effect.
	BaseEffect() KeywordForm
}

// Actor is a live character.
type Actor interface {
	Form
	KeywordForm
	// Inventory returns the stacks whose object satisfies keep.
	// Enumeration order is unspecified.
	Inventory(keep func(BoundObject) bool) []InventoryItem
	ActiveEffects() []ActiveEffect
}
