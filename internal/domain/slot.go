package domain

import "time"

// Slot represents a candidate bookable interval computed on demand.
// Slots are values owned by the caller; they are never persisted or cached
// by the engine and are recomputed on every query.
type Slot struct {
	Date      time.Time // Календарный день слота в таймзоне ресурса (полночь)
	StartTime time.Time
	EndTime   time.Time
}

// Duration returns the slot length
func (s *Slot) Duration() time.Duration {
	return s.EndTime.Sub(s.StartTime)
}
