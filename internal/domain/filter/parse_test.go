package filter

import (
	"errors"
	"testing"

	"github.com/kailas-cloud/hitfilter/internal/domain"
)

func TestParse(t *testing.T) {
	l, err := Parse("ActorTypeNPC, !ArmorHeavy; -MagicFire, editorid:Nord.*, actor:ArmorLookalike", "", prefixClassifier{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []struct {
		text   string
		negate bool
		cat    Category
	}{
		{"ActorTypeNPC", false, ActorKeyword},
		{"ArmorHeavy", true, ArmorKeyword},
		{"MagicFire", true, MagicKeyword},
		{"Nord.*", false, FormEditorID},
		{"ArmorLookalike", false, ActorKeyword},
	}

	got := l.All()
	if len(got) != len(want) {
		t.Fatalf("got %d conditions, want %d", len(got), len(want))
	}
	for i, w := range want {
		c := got[i]
		if c.Text() != w.text || c.Negate() != w.negate || c.Category() != w.cat {
			t.Errorf("condition %d = %s, want text=%q negate=%v cat=%v", i, c, w.text, w.negate, w.cat)
		}
	}
}

func TestParse_SkipsEmptyTokens(t *testing.T) {
	l, err := Parse(" ,ActorTypeNPC,, ,", "", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if l.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", l.Len())
	}
}

func TestParse_Empty(t *testing.T) {
	l, err := Parse("", "", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !l.IsEmpty() {
		t.Error("expected empty list")
	}
}

func TestParse_NilClassifier(t *testing.T) {
	l, err := Parse("ArmorHeavy", ",", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if l.All()[0].Category() != ActorKeyword {
		t.Error("without a classifier unprefixed tokens are actor keywords")
	}
}

func TestParse_UnknownPrefixKeepsToken(t *testing.T) {
	l, err := Parse("Faction:Bandit", ",", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if l.All()[0].Text() != "Faction:Bandit" {
		t.Errorf("Text() = %q", l.All()[0].Text())
	}
}

func TestParse_BareNegation(t *testing.T) {
	_, err := Parse("ActorTypeNPC, !", ",", nil)
	if !errors.Is(err, domain.ErrInvalidCondition) {
		t.Fatalf("expected ErrInvalidCondition, got %v", err)
	}
}

func TestParse_InvalidDelimiter(t *testing.T) {
	_, err := Parse("a", "(", nil)
	if !errors.Is(err, domain.ErrInvalidPattern) {
		t.Fatalf("expected ErrInvalidPattern, got %v", err)
	}
}

func TestParse_ClassifierSkipNotFail(t *testing.T) {
	// ActorTypeNPC is not an armor keyword, so it must not fail the armor check.
	l, err := Parse("ActorTypeNPC, ArmorLight", "", prefixClassifier{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	armorOnly := (&fakeActor{keywords: kw()}).wear(1, true, "ArmorLight")
	if !l.ArmorHasKeywords(armorOnly) {
		t.Error("non-armor token leaked into the armor check")
	}
}
