package ecs

import (
	"maps"
	"slices"
)

// World owns every entity and its components. Entities are never removed:
// a defeated enemy stays in the world with its cached drop.
type World struct {
	lastID EntityID
	stores map[ComponentType]map[EntityID]Component
}

// NewWorld creates an empty World.
func NewWorld() *World {
	return &World{stores: make(map[ComponentType]map[EntityID]Component)}
}

// CreateEntity mints the next entity ID. IDs ascend in creation order.
func (w *World) CreateEntity() EntityID {
	w.lastID++
	return w.lastID
}

// Count is the number of entities created so far.
func (w *World) Count() int { return int(w.lastID) }

// Add attaches c to id, replacing any component of the same type.
// Components are values; callers write changes back with Add.
func (w *World) Add(id EntityID, c Component) {
	t := c.Type()
	store := w.stores[t]
	if store == nil {
		store = make(map[EntityID]Component)
		w.stores[t] = store
	}
	store[id] = c
}

// Get returns id's component of type t, or nil.
func (w *World) Get(id EntityID, t ComponentType) Component {
	return w.stores[t][id]
}

// Lookup is Get with the type assertion done.
func Lookup[T Component](w *World, id EntityID, t ComponentType) (T, bool) {
	c, ok := w.stores[t][id].(T)
	return c, ok
}

// Remove detaches id's component of type t. Missing components are ignored.
func (w *World) Remove(id EntityID, t ComponentType) {
	delete(w.stores[t], id)
}

// Has reports whether id carries a component of type t.
func (w *World) Has(id EntityID, t ComponentType) bool {
	_, ok := w.stores[t][id]
	return ok
}

// Query returns the entities carrying every listed type, in ascending ID
// order so that systems iterate deterministically.
func (w *World) Query(types ...ComponentType) []EntityID {
	if len(types) == 0 {
		return nil
	}
	base := slices.MinFunc(types, func(a, b ComponentType) int {
		return len(w.stores[a]) - len(w.stores[b])
	})
	ids := slices.Sorted(maps.Keys(w.stores[base]))
	return slices.DeleteFunc(ids, func(id EntityID) bool {
		for _, t := range types {
			if !w.Has(id, t) {
				return true
			}
		}
		return false
	})
}
