package timetable

import "github.com/campustt/timetable/pkg/model"

type usageKey struct {
	Period model.PeriodType
	Room   string
	Day    int
	Slot   int
}

// UsageTracker is the run-scoped record of room occupancy across every
// branch, semester and section processed in one regeneration. It is passed
// by reference into each allocation call and read/written strictly in the
// tuple order chosen by the caller; that order decides who wins a contested
// room.
type UsageTracker struct {
	occupancy map[usageKey]string
	sticky    map[string]string // course -> preferred room
	lastUse   map[string]int    // room -> logical clock of last assignment
	clock     int
}

func NewUsageTracker() *UsageTracker {
	t := &UsageTracker{}
	t.Reset()
	return t
}

// Reset clears all bookings and sticky room choices. Invoked exactly once
// at the start of a full regeneration.
func (t *UsageTracker) Reset() {
	t.occupancy = make(map[usageKey]string)
	t.sticky = make(map[string]string)
	t.lastUse = make(map[string]int)
	t.clock = 0
}

// TouchRoom advances the room's recency clock.
func (t *UsageTracker) TouchRoom(room string) {
	t.clock++
	t.lastUse[room] = t.clock
}

// RoomAge returns the room's last-use tick; zero means never used.
func (t *UsageTracker) RoomAge(room string) int {
	return t.lastUse[room]
}

// Occupant returns the course holding (period, room, day, slot), if any.
func (t *UsageTracker) Occupant(period model.PeriodType, room string, day, slot int) (string, bool) {
	c, ok := t.occupancy[usageKey{period, room, day, slot}]
	return c, ok
}

// Claim books the room for the course. It succeeds when the key is free or
// already held by the same course (a shared lecture across branches).
func (t *UsageTracker) Claim(period model.PeriodType, room string, day, slot int, course string) bool {
	k := usageKey{period, room, day, slot}
	if held, ok := t.occupancy[k]; ok {
		return held == course
	}
	t.occupancy[k] = course
	return true
}

// StickyRoom returns the room previously chosen for the course in this run.
func (t *UsageTracker) StickyRoom(course string) (string, bool) {
	r, ok := t.sticky[course]
	return r, ok
}

// SetStickyRoom records the course's room so later occurrences reuse it.
func (t *UsageTracker) SetStickyRoom(course, room string) {
	t.sticky[course] = room
}
