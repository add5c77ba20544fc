package fixture

import (
	"github.com/kailas-cloud/hitfilter/internal/domain/entity"
	"github.com/kailas-cloud/hitfilter/internal/domain/scene"
)

type keywordSet map[string]struct{}

func newKeywordSet(names []string) keywordSet {
	s := make(keywordSet, len(names))
	for _, n := range names {
		s[n] = struct{}{}
	}
	return s
}

func (s keywordSet) HasKeywordString(name string) bool {
	_, ok := s[name]
	return ok
}

type actor struct {
	id        string
	keywords  keywordSet
	inventory []entity.InventoryItem
	effects   []entity.ActiveEffect
}

func newActor(spec ActorSpec) *actor {
	a := &actor{id: spec.ID, keywords: newKeywordSet(spec.Keywords)}
	for _, it := range spec.Inventory {
		a.inventory = append(a.inventory, entity.InventoryItem{
			Object: object{armor: it.Armor, keywords: newKeywordSet(it.Keywords)},
			Count:  it.Count,
			Entry:  entry{worn: it.Worn},
		})
	}
	for _, e := range spec.Effects {
		a.effects = append(a.effects, effect{inactive: e.Inactive, base: newKeywordSet(e.Keywords)})
	}
	return a
}

func (a *actor) FormType() entity.FormType            { return entity.ActorCharacter }
func (a *actor) EditorID() string                     { return a.id }
func (a *actor) HasKeywordString(name string) bool    { return a.keywords.HasKeywordString(name) }
func (a *actor) ActiveEffects() []entity.ActiveEffect { return a.effects }

func (a *actor) Inventory(keep func(entity.BoundObject) bool) []entity.InventoryItem {
	var out []entity.InventoryItem
	for _, it := range a.inventory {
		if keep(it.Object) {
			out = append(out, it)
		}
	}
	return out
}

type object struct {
	armor    bool
	keywords keywordSet
}

func (o object) IsArmor() bool { return o.armor }

func (o object) Armor() (entity.KeywordForm, bool) {
	if !o.armor {
		return nil, false
	}
	return o.keywords, true
}

type entry struct{ worn bool }

func (e entry) IsWorn() bool { return e.worn }

type effect struct {
	inactive bool
	base     keywordSet
}

func (e effect) Inactive() bool                 { return e.inactive }
func (e effect) BaseEffect() entity.KeywordForm { return e.base }

type race struct{ id string }

func (r race) FormType() entity.FormType { return entity.Race }
func (r race) EditorID() string          { return r.id }

type node struct {
	name      string
	collision bool
	translate scene.Point3
	children  []scene.Node
}

func newNode(spec *NodeSpec) *node {
	n := &node{
		name:      spec.Name,
		collision: spec.Collision,
		translate: scene.Point3{X: spec.Translate[0], Y: spec.Translate[1], Z: spec.Translate[2]},
		children:  make([]scene.Node, len(spec.Children)),
	}
	for i, c := range spec.Children {
		if c != nil {
			n.children[i] = newNode(c)
		}
	}
	return n
}

func (n *node) Name() string                 { return n.name }
func (n *node) HasCollisionObject() bool     { return n.collision }
func (n *node) WorldTranslate() scene.Point3 { return n.translate }
func (n *node) Children() []scene.Node       { return n.children }
