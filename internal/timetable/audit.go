package timetable

import (
	"sort"

	"github.com/campustt/timetable/pkg/model"
)

// Conflict is one double-booked room: two or more distinct courses holding
// the same (period, room, day, slot) key.
type Conflict struct {
	Period  model.PeriodType
	Room    string
	Day     int
	Slot    int
	Courses []string
}

// AuditConflicts cross-checks bookings from every grid of a run. Same-course
// bookings under one key are a shared lecture across branches or sections
// and are not conflicts; only distinct course identities colliding count.
// Output order is deterministic: period, room, day, slot.
func AuditConflicts(assignments []model.RoomAssignment) []Conflict {
	byKey := make(map[usageKey][]string)
	for _, a := range assignments {
		k := usageKey{Period: a.Period, Room: a.Room, Day: a.Day, Slot: a.Slot}
		if !containsSTR(byKey[k], a.Course) {
			byKey[k] = append(byKey[k], a.Course)
		}
	}

	var conflicts []Conflict
	for k, courses := range byKey {
		if len(courses) < 2 {
			continue
		}
		sort.Strings(courses)
		conflicts = append(conflicts, Conflict{
			Period: k.Period, Room: k.Room, Day: k.Day, Slot: k.Slot, Courses: courses,
		})
	}
	sort.Slice(conflicts, func(i, j int) bool {
		a, b := conflicts[i], conflicts[j]
		if a.Period != b.Period {
			return a.Period < b.Period
		}
		if a.Room != b.Room {
			return a.Room < b.Room
		}
		if a.Day != b.Day {
			return a.Day < b.Day
		}
		return a.Slot < b.Slot
	})
	return conflicts
}

func containsSTR(s []string, e string) bool {
	for _, a := range s {
		if a == e {
			return true
		}
	}
	return false
}
