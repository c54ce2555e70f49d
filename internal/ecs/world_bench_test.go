package ecs

import "testing"

const benchN = 1_000

func benchWorld() *World[*testEntity] {
	w := NewWorld[*testEntity]()
	for i := 0; i < benchN; i++ {
		g := groupMeteors
		if i%4 == 0 {
			g = groupLasers
		}
		w.Add(&testEntity{}, g)
	}
	return w
}

func BenchmarkEach_All(b *testing.B) {
	w := benchWorld()
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		count := 0
		w.Each(All, func(EntityID, *testEntity) { count++ })
	}
}

func BenchmarkEach_Slice(b *testing.B) {
	es := make([]*testEntity, benchN)
	for i := range es {
		es[i] = &testEntity{}
	}
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		count := 0
		for _, e := range es {
			if e.Alive() {
				count++
			}
		}
	}
}

// Kill a quarter of the meteors, flush, refill: one busy frame
func BenchmarkFlush(b *testing.B) {
	w := benchWorld()
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		i := 0
		w.Each(groupMeteors, func(_ EntityID, e *testEntity) {
			if i%4 == 0 {
				e.dead = true
			}
			i++
		})
		removed := w.Flush()
		for j := 0; j < removed; j++ {
			w.Add(&testEntity{}, groupMeteors)
		}
	}
}
