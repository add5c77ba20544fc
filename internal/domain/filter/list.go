// Package filter evaluates keyword conditions against actors, their worn armor,
// their active magic effects, and form editor IDs.
package filter

import (
	"fmt"

	"github.com/kailas-cloud/hitfilter/internal/domain/entity"
	"github.com/kailas-cloud/hitfilter/internal/domain/pattern"
)

// List is an ordered conjunction of conditions.
// Build it once, then evaluate it from any number of goroutines.
type List struct {
	conditions []Condition
	present    categorySet
}

// NewList creates a List from conditions, in order.
func NewList(conditions ...Condition) *List {
	l := &List{conditions: make([]Condition, 0, len(conditions))}
	for _, c := range conditions {
		l.Add(c)
	}
	return l
}

// Add appends a condition and records its category.
func (l *List) Add(c Condition) {
	l.conditions = append(l.conditions, c)
	l.present |= c.category.bit()
}

// Has reports whether at least one condition of category c exists.
func (l *List) Has(c Category) bool { return l.present.has(c) }

// Len returns the number of conditions.
func (l *List) Len() int { return len(l.conditions) }

// IsEmpty reports whether the list has no conditions.
func (l *List) IsEmpty() bool { return len(l.conditions) == 0 }

// All returns a copy of the conditions.
func (l *List) All() []Condition {
	out := make([]Condition, len(l.conditions))
	copy(out, l.conditions)
	return out
}

// FormHasKeywords reports whether form passes every condition of the given scope.
// Conditions of other categories are skipped; None applies every condition.
func (l *List) FormHasKeywords(form entity.KeywordForm, scope Category) bool {
	for _, c := range l.conditions {
		if scope != None && c.category != scope {
			continue
		}
		if !c.test(form.HasKeywordString(c.text)) {
			return false
		}
	}
	return true
}

// ActorHasKeywords tests actor keyword conditions against the actor itself.
func (l *List) ActorHasKeywords(actor entity.Actor) bool {
	if !l.Has(ActorKeyword) {
		return true
	}
	return l.FormHasKeywords(actor, ActorKeyword)
}

// ArmorHasKeywords reports whether any worn armor passes every armor condition.
// The scan is existential, so inventory order does not affect the result.
func (l *List) ArmorHasKeywords(actor entity.Actor) bool {
	if !l.Has(ArmorKeyword) {
		return true
	}

	inv := actor.Inventory(func(o entity.BoundObject) bool { return o.IsArmor() })
	for _, item := range inv {
		if item.Count <= 0 || item.Entry == nil || !item.Entry.IsWorn() {
			continue
		}
		armor, ok := item.Object.Armor()
		if ok && armor != nil && l.FormHasKeywords(armor, ArmorKeyword) {
			return true
		}
	}
	return false
}

// ActiveEffectsHasKeywords reports whether any active effect's base effect
// passes every magic condition. Inactive effects never count.
func (l *List) ActiveEffectsHasKeywords(actor entity.Actor) bool {
	if !l.Has(MagicKeyword) {
		return true
	}

	for _, effect := range actor.ActiveEffects() {
		if effect == nil || effect.Inactive() {
			continue
		}
		base := effect.BaseEffect()
		if base != nil && l.FormHasKeywords(base, MagicKeyword) {
			return true
		}
	}
	return false
}

// FormEditorIDMatch requires every editor ID condition to match the whole editor ID.
// Patterns are compiled on use; a bad pattern surfaces here as ErrInvalidPattern.
func (l *List) FormEditorIDMatch(form entity.Form) (bool, error) {
	if !l.Has(FormEditorID) {
		return true, nil
	}

	id := form.EditorID()
	for _, c := range l.conditions {
		if c.category != FormEditorID {
			continue
		}
		re, err := pattern.CompileFull(c.text)
		if err != nil {
			return false, fmt.Errorf("editor id condition: %w", err)
		}
		if !c.test(pattern.FullMatch(re, id)) {
			return false, nil
		}
	}
	return true, nil
}

// Evaluate tests form against the list.
// Characters must pass the actor, armor and magic checks; races must pass the
// editor ID check. Any other form kind does not match.
func (l *List) Evaluate(form entity.Form) (bool, error) {
	switch form.FormType() {
	case entity.ActorCharacter:
		actor, ok := form.(entity.Actor)
		if !ok {
			return false, nil
		}
		return l.ActorHasKeywords(actor) &&
			l.ArmorHasKeywords(actor) &&
			l.ActiveEffectsHasKeywords(actor), nil
	case entity.Race:
		return l.FormEditorIDMatch(form)
	default:
		return false, nil
	}
}
