// Package fixture loads an in-memory world from YAML. It stands in for the host
// engine's object model so filters and hit searches can be run offline.
//
// Example:
//
//	actors:
//	  - id: Lydia
//	    keywords: [ActorTypeNPC]
//	    inventory:
//	      - id: SteelArmor
//	        armor: true
//	        keywords: [ArmorHeavy, ArmorCuirass]
//	        count: 1
//	        worn: true
//	    effects:
//	      - id: FlameCloak
//	        keywords: [MagicDamageFire]
//	races:
//	  - id: NordRace
//	scenes:
//	  - name: skeleton
//	    root:
//	      name: NPC Root [Root]
//	      children:
//	        - name: NPC Head [Head]
//	          collision: true
//	          translate: [0, 0, 120]
//	        - null
package fixture

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/kailas-cloud/hitfilter/internal/domain"
	"github.com/kailas-cloud/hitfilter/internal/domain/entity"
	"github.com/kailas-cloud/hitfilter/internal/domain/scene"
)

// File is the YAML layout of a world fixture.
type File struct {
	Actors []ActorSpec `yaml:"actors"`
	Races  []RaceSpec  `yaml:"races"`
	Scenes []SceneSpec `yaml:"scenes"`
}

// ActorSpec describes a character.
type ActorSpec struct {
	ID        string       `yaml:"id"`
	Keywords  []string     `yaml:"keywords"`
	Inventory []ItemSpec   `yaml:"inventory"`
	Effects   []EffectSpec `yaml:"effects"`
}

// ItemSpec describes an inventory stack.
type ItemSpec struct {
	ID       string   `yaml:"id"`
	Armor    bool     `yaml:"armor"`
	Keywords []string `yaml:"keywords"`
	Count    int      `yaml:"count"`
	Worn     bool     `yaml:"worn"`
}

// EffectSpec describes an active magic effect.
type EffectSpec struct {
	ID       string   `yaml:"id"`
	Inactive bool     `yaml:"inactive"`
	Keywords []string `yaml:"keywords"`
}

// RaceSpec describes a race form.
type RaceSpec struct {
	ID string `yaml:"id"`
}

// SceneSpec names a scene graph root.
type SceneSpec struct {
	Name string    `yaml:"name"`
	Root *NodeSpec `yaml:"root"`
}

// NodeSpec describes a scene node. A null child is an empty slot.
type NodeSpec struct {
	Name      string      `yaml:"name"`
	Collision bool        `yaml:"collision"`
	Translate [3]float32  `yaml:"translate"`
	Children  []*NodeSpec `yaml:"children"`
}

// World is a loaded fixture.
type World struct {
	forms  []entity.Form
	byID   map[string]entity.Form
	scenes map[string]scene.Node
}

// Load reads a world fixture from a YAML file.
func Load(path string) (*World, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("failed to read world %s: %w", path, err)
	}
	w, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("world %s: %w", path, err)
	}
	return w, nil
}

// Parse decodes a world fixture from YAML.
func Parse(data []byte) (*World, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse world: %w", err)
	}
	return Build(f)
}

// Build creates a World from a decoded File.
func Build(f File) (*World, error) {
	w := &World{
		byID:   make(map[string]entity.Form, len(f.Actors)+len(f.Races)),
		scenes: make(map[string]scene.Node, len(f.Scenes)),
	}

	for _, a := range f.Actors {
		if err := w.add(a.ID, newActor(a)); err != nil {
			return nil, err
		}
	}
	for _, r := range f.Races {
		if err := w.add(r.ID, race{id: r.ID}); err != nil {
			return nil, err
		}
	}
	for _, s := range f.Scenes {
		if s.Name == "" {
			return nil, fmt.Errorf("scene name is required")
		}
		if s.Root == nil {
			return nil, fmt.Errorf("scene %q: root is required", s.Name)
		}
		if _, dup := w.scenes[s.Name]; dup {
			return nil, fmt.Errorf("duplicate scene %q", s.Name)
		}
		w.scenes[s.Name] = newNode(s.Root)
	}
	return w, nil
}

func (w *World) add(id string, form entity.Form) error {
	if id == "" {
		return fmt.Errorf("form id is required")
	}
	if _, dup := w.byID[id]; dup {
		return fmt.Errorf("duplicate form id %q", id)
	}
	w.byID[id] = form
	w.forms = append(w.forms, form)
	return nil
}

// Forms returns every form, actors first, in file order.
func (w *World) Forms() []entity.Form {
	out := make([]entity.Form, len(w.forms))
	copy(out, w.forms)
	return out
}

// Form looks up a form by editor ID.
func (w *World) Form(id string) (entity.Form, error) {
	f, ok := w.byID[id]
	if !ok {
		return nil, fmt.Errorf("form %q: %w", id, domain.ErrNotFound)
	}
	return f, nil
}

// Scene looks up a scene graph root by name.
func (w *World) Scene(name string) (scene.Node, error) {
	n, ok := w.scenes[name]
	if !ok {
		return nil, fmt.Errorf("scene %q: %w", name, domain.ErrNotFound)
	}
	return n, nil
}
