package filter

import (
	"fmt"
	"strings"

	"github.com/kailas-cloud/hitfilter/internal/domain/pattern"
)

// DefaultDelimiter separates conditions in a filter string.
const DefaultDelimiter = `\s*[,;]\s*`

// Classifier infers the scope of a condition written without a prefix.
type Classifier interface {
	IsArmorKeyword(text string) bool
	IsMagicKeyword(text string) bool
}

// Parse builds a List from a delimited filter string such as
// "ActorTypeNPC, !ArmorHeavy, magic:MagicInvisibility, editorid:Nord.*".
//
// A leading '!' or '-' negates a condition. An explicit "actor:", "armor:",
// "magic:" or "editorid:" prefix sets the category; otherwise classifier decides,
// falling back to ActorKeyword. A nil classifier treats every unprefixed token
// as an actor keyword. Empty tokens are ignored.
func Parse(text, delimiter string, classifier Classifier) (*List, error) {
	if delimiter == "" {
		delimiter = DefaultDelimiter
	}
	tokens, err := pattern.Split(strings.TrimSpace(text), delimiter)
	if err != nil {
		return nil, fmt.Errorf("split filter: %w", err)
	}

	l := NewList()
	for _, tok := range tokens {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		c, err := parseToken(tok, classifier)
		if err != nil {
			return nil, err
		}
		l.Add(c)
	}
	return l, nil
}

func parseToken(tok string, classifier Classifier) (Condition, error) {
	negate := false
	if tok[0] == '!' || tok[0] == '-' {
		negate = true
		tok = strings.TrimSpace(tok[1:])
	}

	if prefix, rest, ok := strings.Cut(tok, ":"); ok {
		if cat, known := ParseCategory(strings.ToLower(prefix)); known {
			return NewCondition(rest, negate, cat)
		}
	}

	cat := ActorKeyword
	if classifier != nil {
		switch {
		case classifier.IsArmorKeyword(tok):
			cat = ArmorKeyword
		case classifier.IsMagicKeyword(tok):
			cat = MagicKeyword
		}
	}
	return NewCondition(tok, negate, cat)
}
