// Package pattern holds the process-wide name patterns and the regex split helper.
package pattern

import (
	"regexp"

	"github.com/kailas-cloud/hitfilter/internal/domain"
)

// Sources are the uncompiled pattern texts. An empty source disables the pattern.
type Sources struct {
	Exclude         string
	PlayerNodes     string
	ArmorClassifier string
	MagicClassifier string
}

// Set is the compiled, immutable pattern set shared by every query.
type Set struct {
	exclude     *regexp.Regexp
	playerNodes *regexp.Regexp
	armor       *regexp.Regexp
	magic       *regexp.Regexp
}

// Compile builds a Set. Every pattern must match a whole name.
func Compile(src Sources) (Set, error) {
	var (
		s   Set
		err error
	)
	if s.exclude, err = CompileFull(src.Exclude); err != nil {
		return Set{}, err
	}
	if s.playerNodes, err = CompileFull(src.PlayerNodes); err != nil {
		return Set{}, err
	}
	if s.armor, err = CompileFull(src.ArmorClassifier); err != nil {
		return Set{}, err
	}
	if s.magic, err = CompileFull(src.MagicClassifier); err != nil {
		return Set{}, err
	}
	return s, nil
}

// MustCompile compiles a Set or panics.
func MustCompile(src Sources) Set {
	s, err := Compile(src)
	if err != nil {
		panic(err)
	}
	return s
}

// CompileFull compiles src anchored at both ends. Empty src yields nil.
func CompileFull(src string) (*regexp.Regexp, error) {
	if src == "" {
		return nil, nil
	}
	re, err := regexp.Compile(`^(?:` + src + `)$`)
	if err != nil {
		return nil, domain.NewPatternError(src, err)
	}
	return re, nil
}

// FullMatch reports whether re, compiled by CompileFull, matches s. A nil re never matches.
func FullMatch(re *regexp.Regexp, s string) bool {
	return re != nil && re.MatchString(s)
}

// Exclude returns the excluded node name pattern.
func (s Set) Exclude() *regexp.Regexp { return s.exclude }

// PlayerNodes returns the first-person node name pattern.
func (s Set) PlayerNodes() *regexp.Regexp { return s.playerNodes }

// IsArmorKeyword reports whether keyword text looks like an armor keyword.
func (s Set) IsArmorKeyword(text string) bool { return FullMatch(s.armor, text) }

// IsMagicKeyword reports whether keyword text looks like a magic effect keyword.
func (s Set) IsMagicKeyword(text string) bool { return FullMatch(s.magic, text) }
