package filter

import (
	"testing"

	"github.com/kailas-cloud/hitfilter/internal/domain/entity"
)

// --- Fakes ---

type keywords map[string]bool

func kw(names ...string) keywords {
	k := make(keywords, len(names))
	for _, n := range names {
		k[n] = true
	}
	return k
}

func (k keywords) HasKeywordString(name string) bool { return k[name] }

type fakeEntry struct{ worn bool }

func (e fakeEntry) IsWorn() bool { return e.worn }

type fakeObject struct {
	armor    bool
	keywords keywords
}

func (o fakeObject) IsArmor() bool { return o.armor }

func (o fakeObject) Armor() (entity.KeywordForm, bool) {
	if !o.armor {
		return nil, false
	}
	return o.keywords, true
}

type fakeEffect struct {
	inactive bool
	base     entity.KeywordForm
}

func (e fakeEffect) Inactive() bool                 { return e.inactive }
func (e fakeEffect) BaseEffect() entity.KeywordForm { return e.base }

type fakeActor struct {
	keywords
	editorID  string
	inventory []entity.InventoryItem
	effects   []entity.ActiveEffect
}

func (a *fakeActor) FormType() entity.FormType { return entity.ActorCharacter }
func (a *fakeActor) EditorID() string          { return a.editorID }

func (a *fakeActor) Inventory(keep func(entity.BoundObject) bool) []entity.InventoryItem {
	var out []entity.InventoryItem
	for _, it := range a.inventory {
		if keep(it.Object) {
			out = append(out, it)
		}
	}
	return out
}

func (a *fakeActor) ActiveEffects() []entity.ActiveEffect { return a.effects }

func (a *fakeActor) wear(count int, worn bool, names ...string) *fakeActor {
	a.inventory = append(a.inventory, entity.InventoryItem{
		Object: fakeObject{armor: true, keywords: kw(names...)},
		Count:  count,
		Entry:  fakeEntry{worn: worn},
	})
	return a
}

func (a *fakeActor) affect(inactive bool, names ...string) *fakeActor {
	a.effects = append(a.effects, fakeEffect{inactive: inactive, base: kw(names...)})
	return a
}

type fakeForm struct {
	kind     entity.FormType
	editorID string
}

func (f fakeForm) FormType() entity.FormType { return f.kind }
func (f fakeForm) EditorID() string          { return f.editorID }

type prefixClassifier struct{}

func (prefixClassifier) IsArmorKeyword(text string) bool {
	return len(text) >= 5 && text[:5] == "Armor"
}

func (prefixClassifier) IsMagicKeyword(text string) bool {
	return len(text) >= 5 && text[:5] == "Magic"
}

// --- Helpers ---

func cond(t *testing.T, text string, negate bool, cat Category) Condition {
	t.Helper()
	c, err := NewCondition(text, negate, cat)
	if err != nil {
		t.Fatalf("NewCondition(%q): %v", text, err)
	}
	return c
}

func evaluate(t *testing.T, l *List, form entity.Form) bool {
	t.Helper()
	ok, err := l.Evaluate(form)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	return ok
}
