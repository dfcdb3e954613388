// Package content loads and validates the data-driven definitions (items,
// actors, props, message templates) and exposes them as an immutable
// registry built once at start-up.
package content

import (
	"fmt"
	"io/fs"
	"maps"
	"slices"

	"cinder-roguelike/internal/gamemap"
	"cinder-roguelike/internal/item"
	"cinder-roguelike/internal/logger"

	"github.com/sirupsen/logrus"
	"golang.org/x/text/language"
)

// Ids the simulation refers to directly.
const (
	PlayerActorID = "actor_player"
	GoblinActorID = "actor_goblin"
	WolfActorID   = "actor_forest_wolf"
)

// Registry is the validated, read-only content set.
type Registry struct {
	items   map[string]*item.Definition
	actors  map[string]*ActorDef
	props   map[string]*gamemap.PropDef
	core    item.CoreItems
	catalog *Catalog
}

// NewRegistry validates the tables and indexes them. It fails on empty
// tables, on missing required ids, on duplicate ids and on actor inventory
// entries that name unknown items.
func NewRegistry(items []*item.Definition, actors []*ActorDef, props []*gamemap.PropDef, messages map[MessageID]string, lang language.Tag) (*Registry, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: items", ErrEmptyTable)
	}
	if len(actors) == 0 {
		return nil, fmt.Errorf("%w: actors", ErrEmptyTable)
	}
	if len(props) == 0 {
		return nil, fmt.Errorf("%w: props", ErrEmptyTable)
	}
	if len(messages) == 0 {
		return nil, fmt.Errorf("%w: messages", ErrEmptyTable)
	}

	r := &Registry{
		items:  make(map[string]*item.Definition, len(items)),
		actors: make(map[string]*ActorDef, len(actors)),
		props:  make(map[string]*gamemap.PropDef, len(props)),
	}
	for _, d := range items {
		if _, dup := r.items[d.ID]; dup {
			return nil, fmt.Errorf("%w: item %s", ErrDuplicateID, d.ID)
		}
		r.items[d.ID] = d
	}
	for _, id := range item.RequiredIDs {
		if r.items[id] == nil {
			return nil, fmt.Errorf("%w: item %s", ErrMissingRequired, id)
		}
	}
	r.core = item.CoreItems{
		ShortSword:  r.items[item.ShortSwordID],
		Bow:         r.items[item.BowID],
		WoodenArrow: r.items[item.WoodenArrowID],
		OilBottle:   r.items[item.OilBottleID],
		DirtClod:    r.items[item.DirtClodID],
	}

	for _, a := range actors {
		if _, dup := r.actors[a.ID]; dup {
			return nil, fmt.Errorf("%w: actor %s", ErrDuplicateID, a.ID)
		}
		for _, e := range a.InitialInventory {
			if r.items[e.ItemID] == nil {
				return nil, fmt.Errorf("%w: actor %s references item %s", ErrUnknownID, a.ID, e.ItemID)
			}
		}
		r.actors[a.ID] = a
	}

	for _, p := range props {
		if _, dup := r.props[p.ID]; dup {
			return nil, fmt.Errorf("%w: prop %s", ErrDuplicateID, p.ID)
		}
		r.props[p.ID] = p
	}
	if r.props[gamemap.ChestID] == nil {
		return nil, fmt.Errorf("%w: prop %s", ErrMissingRequired, gamemap.ChestID)
	}

	catalog, err := NewCatalog(messages, lang)
	if err != nil {
		return nil, err
	}
	r.catalog = catalog
	return r, nil
}

// Load reads every table from fsys and builds a registry for lang.
func Load(fsys fs.FS, lang string) (*Registry, error) {
	tag, err := language.Parse(lang)
	if err != nil {
		return nil, fmt.Errorf("%w: language %q: %v", ErrInvalidField, lang, err)
	}
	items, err := LoadItems(fsys)
	if err != nil {
		return nil, err
	}
	actors, err := LoadActors(fsys)
	if err != nil {
		return nil, err
	}
	props, err := LoadProps(fsys)
	if err != nil {
		return nil, err
	}
	messages, err := LoadMessages(fsys)
	if err != nil {
		return nil, err
	}
	r, err := NewRegistry(items, actors, props, messages, tag)
	if err != nil {
		return nil, err
	}
	logger.Log.WithFields(logrus.Fields{
		"component": "content",
		"items":     len(items),
		"actors":    len(actors),
		"props":     len(props),
		"messages":  len(messages),
		"lang":      tag.String(),
	}).Info("content loaded")
	return r, nil
}

// Item looks up an item definition.
func (r *Registry) Item(id string) (*item.Definition, error) {
	if d := r.items[id]; d != nil {
		return d, nil
	}
	return nil, fmt.Errorf("%w: item %s", ErrUnknownID, id)
}

// Items returns every item definition ordered by id.
func (r *Registry) Items() []*item.Definition {
	out := make([]*item.Definition, 0, len(r.items))
	for _, id := range slices.Sorted(maps.Keys(r.items)) {
		out = append(out, r.items[id])
	}
	return out
}

// Actor looks up an actor definition.
func (r *Registry) Actor(id string) (*ActorDef, error) {
	if a := r.actors[id]; a != nil {
		return a, nil
	}
	return nil, fmt.Errorf("%w: actor %s", ErrUnknownID, id)
}

// Prop looks up a prop definition.
func (r *Registry) Prop(id string) (*gamemap.PropDef, error) {
	if p := r.props[id]; p != nil {
		return p, nil
	}
	return nil, fmt.Errorf("%w: prop %s", ErrUnknownID, id)
}

// MustProp is Prop for ids validated at start-up.
func (r *Registry) MustProp(id string) *gamemap.PropDef {
	p, err := r.Prop(id)
	if err != nil {
		panic(err)
	}
	return p
}

// Core returns the definitions the rules dispatch on.
func (r *Registry) Core() item.CoreItems { return r.core }

// Messages returns the message catalog.
func (r *Registry) Messages() *Catalog { return r.catalog }
