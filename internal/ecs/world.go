// Package ecs provides the entity registry: an arena of entities with
// stable ids and named, insertion-ordered groups over it.
package ecs

import "github.com/kamstrup/intmap"

// EntityID is a unique identifier for an entity (never recycled)
type EntityID uint64

// Group names a subset of the registry
type Group string

// All is the group every entity belongs to
const All Group = "all"

// Live is the constraint on stored entities
type Live interface {
	Alive() bool
}

// group keeps ids in insertion order plus a membership set
type group struct {
	ids     []EntityID
	members *intmap.Map[EntityID, struct{}]
}

func newGroup() *group {
	return &group{members: intmap.New[EntityID, struct{}](64)}
}

func (g *group) add(id EntityID) {
	if _, ok := g.members.Get(id); ok {
		return
	}
	g.members.Put(id, struct{}{})
	g.ids = append(g.ids, id)
}

// World owns the entities of a session.
// Entities are removed only by Flush, never during iteration.
type World[T Live] struct {
	nextID   EntityID
	entities *intmap.Map[EntityID, T]
	groups   map[Group]*group
}

// NewWorld creates an empty world
func NewWorld[T Live]() *World[T] {
	w := &World[T]{
		nextID: 1, // 0 is "nil"
	}
	w.reset()
	return w
}

func (w *World[T]) reset() {
	w.entities = intmap.New[EntityID, T](256)
	w.groups = map[Group]*group{All: newGroup()}
}

func (w *World[T]) group(name Group) *group {
	g, ok := w.groups[name]
	if !ok {
		g = newGroup()
		w.groups[name] = g
	}
	return g
}

// Add stores e, puts it in All and in every listed group, and returns its id
func (w *World[T]) Add(e T, groups ...Group) EntityID {
	id := w.nextID
	w.nextID++

	w.entities.Put(id, e)
	w.groups[All].add(id)
	for _, name := range groups {
		w.group(name).add(id)
	}
	return id
}

// Get returns the entity stored under id
func (w *World[T]) Get(id EntityID) (T, bool) {
	return w.entities.Get(id)
}

// Has reports whether id is a member of the group
func (w *World[T]) Has(name Group, id EntityID) bool {
	g, ok := w.groups[name]
	if !ok {
		return false
	}
	_, ok = g.members.Get(id)
	return ok
}

// Each calls fn for every live entity of the group in insertion order.
// Entities added by fn are not visited in the same pass, and entities
// killed by fn are skipped once reached.
func (w *World[T]) Each(name Group, fn func(id EntityID, e T)) {
	g, ok := w.groups[name]
	if !ok {
		return
	}
	n := len(g.ids)
	for i := 0; i < n; i++ {
		id := g.ids[i]
		e, ok := w.entities.Get(id)
		if !ok || !e.Alive() {
			continue
		}
		fn(id, e)
	}
}

// Collect returns the live entities of the group in insertion order
func (w *World[T]) Collect(name Group) []T {
	var out []T
	w.Each(name, func(_ EntityID, e T) {
		out = append(out, e)
	})
	return out
}

// Len returns the number of live entities in the group
func (w *World[T]) Len(name Group) int {
	n := 0
	w.Each(name, func(EntityID, T) { n++ })
	return n
}

// Flush removes dead entities from the arena and from every group at once.
// It returns how many entities were removed.
func (w *World[T]) Flush() int {
	all := w.groups[All]
	removed := 0
	for _, id := range all.ids {
		e, ok := w.entities.Get(id)
		if ok && !e.Alive() {
			w.entities.Del(id)
			removed++
		}
	}
	if removed == 0 {
		return 0
	}

	for _, g := range w.groups {
		kept := g.ids[:0]
		for _, id := range g.ids {
			if _, ok := w.entities.Get(id); ok {
				kept = append(kept, id)
				continue
			}
			g.members.Del(id)
		}
		clear(g.ids[len(kept):])
		g.ids = kept
	}
	return removed
}

// Clear drops every entity and group. Ids keep increasing afterwards.
func (w *World[T]) Clear() {
	w.reset()
}
