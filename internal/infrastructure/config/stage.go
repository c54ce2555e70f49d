package config

import "time"

// SpawnConfig places new meteors above the top edge.
// X is drawn from [0, screenWidth].
type SpawnConfig struct {
	IntervalMs int `yaml:"intervalMs"`
	MinY       int `yaml:"minY"`
	MaxY       int `yaml:"maxY"`
}

// Interval returns the spawn period
func (s SpawnConfig) Interval() time.Duration {
	return time.Duration(s.IntervalMs) * time.Millisecond
}

type StarfieldConfig struct {
	Count int `yaml:"count"`
}
