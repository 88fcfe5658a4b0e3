package timetable

import "github.com/campustt/timetable/pkg/model"

// BuildSectionGrid lays one section's courses onto a weekly grid. Core
// courses get their lecture, tutorial and lab hours placed individually;
// elective baskets appear as basket cells spanning their shared slots, to be
// expanded into per-course rooms later. The grid is always returned
// well-formed: a requirement that cannot be placed without collision is left
// partially unmet and shows up in reconciliation instead of failing here.
func BuildSectionGrid(cls *Classification, baskets *BasketAllocation, branch string, semester int,
	section string, period model.PeriodType, cfg *Configuration) *model.ScheduleGrid {
	grid := model.NewScheduleGrid(branch, semester, section, period, cfg.Grid)

	// Baskets carry full-semester electives; the half-period grids never
	// show them.
	if baskets != nil && period == model.Regular {
		for _, b := range baskets.Baskets {
			for _, ref := range b.Slots {
				if grid.Free(ref.Slot, ref.Day) {
					*grid.At(ref.Slot, ref.Day) = model.Cell{Kind: model.CellBasket, Basket: b.ID}
				}
			}
		}
	}

	for _, course := range cls.Core {
		if !spanMatches(course.Span, period) {
			continue
		}
		placeLectures(grid, course)
		placeTutorials(grid, course)
		placeLabs(grid, course)
	}
	for _, course := range cls.Minor {
		if !spanMatches(course.Span, period) {
			continue
		}
		placeLectures(grid, course)
		placeTutorials(grid, course)
		placeLabs(grid, course)
	}
	return grid
}

// spanMatches keeps half-semester courses out of the Regular grid and full
// semester courses out of the half-period grids' extra windows.
func spanMatches(span model.TermSpan, period model.PeriodType) bool {
	switch period {
	case model.PreMid:
		return span == model.PreMidOnly
	case model.PostMid:
		return span == model.PostMidOnly
	default:
		return span == model.FullSemester
	}
}

// placeLectures distributes the lecture count across lecture-length rows,
// at most one per day before wrapping to second rows.
func placeLectures(grid *model.ScheduleGrid, course *model.Course) {
	placed := 0
	days := len(grid.Config.Days)
	for round := 0; round < len(grid.Config.Slots) && placed < course.Load.Lectures; round++ {
		for day := 0; day < days && placed < course.Load.Lectures; day++ {
			if dayHolds(grid, day, course.Code) && round == 0 {
				continue
			}
			for _, ts := range grid.Config.Slots {
				if ts.Kind != model.LectureSlot || !grid.Free(ts.Index, day) {
					continue
				}
				*grid.At(ts.Index, day) = model.Cell{Kind: model.CellCourse, Course: course.Code}
				placed++
				break
			}
		}
	}
}

func placeTutorials(grid *model.ScheduleGrid, course *model.Course) {
	placed := 0
	for day := 0; day < len(grid.Config.Days) && placed < course.Load.Tutorials; day++ {
		for _, ts := range grid.Config.Slots {
			if ts.Kind != model.TutorialSlot || !grid.Free(ts.Index, day) {
				continue
			}
			*grid.At(ts.Index, day) = model.Cell{
				Kind: model.CellCourse, Course: course.Code, Marker: model.MarkerTutorial,
			}
			placed++
			break
		}
	}
}

// placeLabs books lab hours as two adjacent same-day rows. One pair covers
// two lab hours; an odd remainder stays unplaced rather than over-booking a
// full pair, and reconciliation reports the shortfall.
func placeLabs(grid *model.ScheduleGrid, course *model.Course) {
	pairs := course.Load.Labs / 2
	placed := 0
	for day := 0; day < len(grid.Config.Days) && placed < pairs; day++ {
		for i := range grid.Config.Slots {
			if !grid.Config.LabPairStart(i) {
				continue
			}
			if !grid.Free(i, day) || !grid.Free(i+1, day) {
				continue
			}
			cell := model.Cell{Kind: model.CellCourse, Course: course.Code, Marker: model.MarkerLab}
			*grid.At(i, day) = cell
			*grid.At(i+1, day) = cell
			placed++
			break
		}
	}
}

func dayHolds(grid *model.ScheduleGrid, day int, course string) bool {
	for s := range grid.Config.Slots {
		c := grid.At(s, day)
		if c != nil && c.Kind == model.CellCourse && c.Course == course {
			return true
		}
	}
	return false
}
