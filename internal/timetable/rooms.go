package timetable

import (
	"sort"

	"github.com/campustt/timetable/pkg/model"
)

// UnassignedPlacement records a course occurrence no room could serve.
type UnassignedPlacement struct {
	Course string
	Day    int
	Slot   int
	Period model.PeriodType
}

// RoomAllocationResult is the classroom allocator's output for one grid.
type RoomAllocationResult struct {
	Assignments []model.RoomAssignment
	Unassigned  []UnassignedPlacement

	// BasketRooms maps basket id -> member course -> room, the expansion of
	// each basket cell into per-course room entries.
	BasketRooms map[string]map[string]string
}

// AssignRooms gives every occupied cell of the grid a concrete room, writing
// the room back into course cells and expanding basket cells into one room
// per member. The tracker is consulted before every booking so no two
// distinct courses share a room at the same period/day/slot across the whole
// run. A course keeps the same room across its weekly occurrences; a
// conflict-forced reassignment makes the new room the stable one from then
// on. An occurrence with no viable room is reported, never dropped.
func AssignRooms(grid *model.ScheduleGrid, rooms []*model.Room, courses map[string]*model.Course,
	baskets *BasketAllocation, tracker *UsageTracker) *RoomAllocationResult {
	res := &RoomAllocationResult{BasketRooms: make(map[string]map[string]string)}
	sorted := append([]*model.Room(nil), rooms...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Capacity < sorted[j].Capacity
	})

	days := len(grid.Config.Days)
	consumed := make([][]bool, len(grid.Config.Slots))
	for i := range consumed {
		consumed[i] = make([]bool, days)
	}

	for day := 0; day < days; day++ {
		for slot := range grid.Config.Slots {
			if consumed[slot][day] {
				continue
			}
			cell := grid.At(slot, day)
			switch cell.Kind {
			case model.CellCourse:
				pair := cell.Marker == model.MarkerLab && isLabPair(grid, slot, day, cell.Course)
				room := pickRoom(sorted, tracker, grid, cell, slot, day, pair, strength(courses, cell.Course))
				if room == "" {
					res.Unassigned = append(res.Unassigned, UnassignedPlacement{
						Course: cell.Course, Day: day, Slot: slot, Period: grid.Period,
					})
					// The pair stands or falls as one occurrence; never
					// book its second half alone.
					if pair {
						consumed[slot+1][day] = true
						res.Unassigned = append(res.Unassigned, UnassignedPlacement{
							Course: cell.Course, Day: day, Slot: slot + 1, Period: grid.Period,
						})
					}
					continue
				}
				cell.Room = room
				res.Assignments = append(res.Assignments, assignment(grid, cell.Course, room, day, slot))
				if pair {
					next := grid.At(slot+1, day)
					next.Room = room
					consumed[slot+1][day] = true
					res.Assignments = append(res.Assignments, assignment(grid, cell.Course, room, day, slot+1))
				}
			case model.CellBasket:
				if baskets == nil {
					continue
				}
				ref := model.SlotRef{Day: day, Slot: slot}
				for _, member := range baskets.MembersAt(cell.Basket, ref) {
					mc := model.Cell{Kind: model.CellCourse, Course: member}
					room := pickRoom(sorted, tracker, grid, &mc, slot, day, false, strength(courses, member))
					if room == "" {
						res.Unassigned = append(res.Unassigned, UnassignedPlacement{
							Course: member, Day: day, Slot: slot, Period: grid.Period,
						})
						continue
					}
					if res.BasketRooms[cell.Basket] == nil {
						res.BasketRooms[cell.Basket] = make(map[string]string)
					}
					res.BasketRooms[cell.Basket][member] = room
					res.Assignments = append(res.Assignments, assignment(grid, member, room, day, slot))
				}
			}
		}
	}
	return res
}

func assignment(grid *model.ScheduleGrid, course, room string, day, slot int) model.RoomAssignment {
	return model.RoomAssignment{
		Course: course, Day: day, Slot: slot, Room: room, Period: grid.Period,
		Branch: grid.Branch, Semester: grid.Semester, Section: grid.Section,
	}
}

func strength(courses map[string]*model.Course, code string) int {
	if c, ok := courses[code]; ok {
		return c.Strength
	}
	return 0
}

func isLabPair(grid *model.ScheduleGrid, slot, day int, course string) bool {
	next := grid.At(slot+1, day)
	return next != nil && next.Kind == model.CellCourse &&
		next.Course == course && next.Marker == model.MarkerLab
}

// pickRoom tries the course's stable room first, then the compatible room
// that has gone unused the longest, smallest first on ties.
func pickRoom(rooms []*model.Room, tracker *UsageTracker, grid *model.ScheduleGrid,
	cell *model.Cell, slot, day int, pair bool, strength int) string {
	wantKind := model.LectureRoom
	if cell.Marker == model.MarkerLab {
		wantKind = model.LabRoom
	}
	// Lab hours keep their own stable room; it never displaces the
	// course's lecture room.
	stickyKey := cell.Course
	if wantKind == model.LabRoom {
		stickyKey += "/lab"
	}
	if sticky, ok := tracker.StickyRoom(stickyKey); ok {
		for _, r := range rooms {
			if r.ID == sticky && compatible(r, wantKind, strength) &&
				claim(tracker, grid, r.ID, cell.Course, slot, day, pair) {
				tracker.TouchRoom(r.ID)
				return r.ID
			}
		}
	}
	candidates := make([]*model.Room, 0, len(rooms))
	for _, r := range rooms {
		if compatible(r, wantKind, strength) {
			candidates = append(candidates, r)
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return tracker.RoomAge(candidates[i].ID) < tracker.RoomAge(candidates[j].ID)
	})
	for _, r := range candidates {
		if claim(tracker, grid, r.ID, cell.Course, slot, day, pair) {
			tracker.SetStickyRoom(stickyKey, r.ID)
			tracker.TouchRoom(r.ID)
			return r.ID
		}
	}
	return ""
}

func compatible(r *model.Room, kind model.RoomKind, strength int) bool {
	return r.Kind == kind && r.Capacity >= strength
}

func claim(tracker *UsageTracker, grid *model.ScheduleGrid, room, course string, slot, day int, pair bool) bool {
	if pair {
		if occ, ok := tracker.Occupant(grid.Period, room, day, slot+1); ok && occ != course {
			return false
		}
	}
	if !tracker.Claim(grid.Period, room, day, slot, course) {
		return false
	}
	if pair {
		return tracker.Claim(grid.Period, room, day, slot+1, course)
	}
	return true
}
