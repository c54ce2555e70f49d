package system

import (
	"time"

	"github.com/younwookim/spaceshooter/internal/domain/entity"
)

// Event is something that happened during a frame
type Event interface {
	isEvent()
}

// SessionStarted is emitted by every start and restart
type SessionStarted struct {
	Now time.Duration
}

func (SessionStarted) isEvent() {}

// LaserFired is emitted when the player shoots
type LaserFired struct {
	Position entity.Vec2
}

func (LaserFired) isEvent() {}

// MeteorSpawned is emitted when a meteor enters play
type MeteorSpawned struct {
	Position entity.Vec2
}

func (MeteorSpawned) isEvent() {}

// MeteorDestroyed is emitted once per laser hit
type MeteorDestroyed struct {
	Impact  entity.Vec2
	Meteors int
	Bonus   float64
}

func (MeteorDestroyed) isEvent() {}

// PlayerHit is emitted when meteors strike the player and the session ends
type PlayerHit struct {
	Meteors int
	Score   float64
}

func (PlayerHit) isEvent() {}

// EventLog collects the events of the current frame
type EventLog struct {
	events []Event
}

// Push appends an event
func (l *EventLog) Push(e Event) {
	l.events = append(l.events, e)
}

// Events returns the events since the last Reset
func (l *EventLog) Events() []Event {
	return l.events
}

// Reset drops all events, keeping capacity
func (l *EventLog) Reset() {
	clear(l.events)
	l.events = l.events[:0]
}
