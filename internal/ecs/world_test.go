package ecs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	groupMeteors Group = "meteors"
	groupLasers  Group = "lasers"
)

type testEntity struct {
	name string
	dead bool
}

func (e *testEntity) Alive() bool { return !e.dead }

func names(es []*testEntity) []string {
	out := make([]string, len(es))
	for i, e := range es {
		out[i] = e.name
	}
	return out
}

func TestNewWorld(t *testing.T) {
	w := NewWorld[*testEntity]()

	assert.NotNil(t, w)
	assert.Equal(t, EntityID(1), w.nextID)
	assert.Equal(t, 0, w.Len(All))
}

func TestAdd_AssignsSequentialIDs(t *testing.T) {
	w := NewWorld[*testEntity]()

	id1 := w.Add(&testEntity{name: "a"})
	id2 := w.Add(&testEntity{name: "b"})
	id3 := w.Add(&testEntity{name: "c"})

	assert.Equal(t, EntityID(1), id1)
	assert.Equal(t, EntityID(2), id2)
	assert.Equal(t, EntityID(3), id3)
	assert.Equal(t, EntityID(4), w.nextID)
}

func TestEntityIDNeverRecycled(t *testing.T) {
	w := NewWorld[*testEntity]()

	e := &testEntity{name: "a"}
	id1 := w.Add(e)
	e.dead = true
	w.Flush()
	w.Clear()

	id2 := w.Add(&testEntity{name: "b"})
	assert.NotEqual(t, id1, id2, "Entity IDs should never be recycled")
	assert.Equal(t, EntityID(2), id2)
}

func TestGroups_Membership(t *testing.T) {
	w := NewWorld[*testEntity]()

	star := w.Add(&testEntity{name: "star"})
	meteor := w.Add(&testEntity{name: "meteor"}, groupMeteors)
	laser := w.Add(&testEntity{name: "laser"}, groupLasers)

	assert.Equal(t, 3, w.Len(All))
	assert.Equal(t, 1, w.Len(groupMeteors))
	assert.True(t, w.Has(All, star))
	assert.True(t, w.Has(groupMeteors, meteor))
	assert.False(t, w.Has(groupMeteors, laser))
	assert.False(t, w.Has("unknown", star))
	assert.Equal(t, []string{"star", "meteor", "laser"}, names(w.Collect(All)))
	assert.Empty(t, w.Collect("unknown"))
}

func TestEach_SkipsDeadEntities(t *testing.T) {
	w := NewWorld[*testEntity]()
	a := &testEntity{name: "a"}
	b := &testEntity{name: "b"}
	w.Add(a)
	w.Add(b)

	var seen []string
	w.Each(All, func(_ EntityID, e *testEntity) {
		seen = append(seen, e.name)
		// killing a later entity mid-pass hides it from the rest of the pass
		b.dead = true
	})

	assert.Equal(t, []string{"a"}, seen)
}

func TestEach_DoesNotVisitEntitiesAddedDuringPass(t *testing.T) {
	w := NewWorld[*testEntity]()
	w.Add(&testEntity{name: "player"})

	visits := 0
	w.Each(All, func(_ EntityID, e *testEntity) {
		visits++
		w.Add(&testEntity{name: "laser"}, groupLasers)
	})

	assert.Equal(t, 1, visits)
	assert.Equal(t, 2, w.Len(All))
	assert.Equal(t, 1, w.Len(groupLasers))
}

func TestFlush_RemovesFromEveryGroup(t *testing.T) {
	w := NewWorld[*testEntity]()
	meteor := &testEntity{name: "meteor"}
	laser := &testEntity{name: "laser"}
	keep := &testEntity{name: "keep"}

	meteorID := w.Add(meteor, groupMeteors)
	laserID := w.Add(laser, groupLasers)
	w.Add(keep, groupMeteors)

	meteor.dead = true
	laser.dead = true
	removed := w.Flush()

	assert.Equal(t, 2, removed)
	assert.False(t, w.Has(All, meteorID))
	assert.False(t, w.Has(groupMeteors, meteorID))
	assert.False(t, w.Has(groupLasers, laserID))
	_, ok := w.Get(meteorID)
	assert.False(t, ok)
	assert.Equal(t, []string{"keep"}, names(w.Collect(All)))
	assert.Equal(t, []string{"keep"}, names(w.Collect(groupMeteors)))
	assert.Empty(t, w.Collect(groupLasers))
}

func TestFlush_NothingDead(t *testing.T) {
	w := NewWorld[*testEntity]()
	w.Add(&testEntity{name: "a"})

	assert.Equal(t, 0, w.Flush())
	assert.Equal(t, 1, w.Len(All))
}

func TestFlush_KeepsOrder(t *testing.T) {
	w := NewWorld[*testEntity]()
	es := []*testEntity{{name: "a"}, {name: "b"}, {name: "c"}, {name: "d"}}
	for _, e := range es {
		w.Add(e)
	}

	es[1].dead = true
	w.Flush()
	w.Add(&testEntity{name: "e"})

	assert.Equal(t, []string{"a", "c", "d", "e"}, names(w.Collect(All)))
}

func TestClear(t *testing.T) {
	w := NewWorld[*testEntity]()
	id := w.Add(&testEntity{name: "a"}, groupMeteors)

	w.Clear()

	assert.Equal(t, 0, w.Len(All))
	assert.Equal(t, 0, w.Len(groupMeteors))
	_, ok := w.Get(id)
	assert.False(t, ok)

	got := w.Add(&testEntity{name: "b"}, groupMeteors)
	e, ok := w.Get(got)
	require.True(t, ok)
	assert.Equal(t, "b", e.name)
}
