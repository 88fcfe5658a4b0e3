package timetable

import "github.com/campustt/timetable/pkg/model"

// CourseHours is an L/T/P hour triple.
type CourseHours struct {
	Lectures  int
	Tutorials int
	Labs      int
}

// ReportRow pairs a course's scheduled hours with its declared requirement.
// Scheduled always holds the raw walk counts; Displayed is Scheduled after
// the display policy ran and exists for presentation only.
type ReportRow struct {
	Course    string
	Scheduled CourseHours
	Required  CourseHours
	Displayed CourseHours
}

// Discrepant reports a raw scheduled/required mismatch in either direction.
func (r ReportRow) Discrepant() bool {
	return r.Scheduled != r.Required
}

// DisplayPolicy adjusts the displayed hours of a report row. The raw counts
// are never touched.
type DisplayPolicy interface {
	Apply(row *ReportRow)
}

// ClampLectureDisplay reproduces the legacy presentation rule: when the
// declared lecture count is 2 or 3 and at least 2 lectures were scheduled,
// the displayed value snaps to the requirement. This compensates for
// multi-slot lecture blocks being counted per slot; it does not correct the
// underlying count.
type ClampLectureDisplay struct{}

func (ClampLectureDisplay) Apply(row *ReportRow) {
	req := row.Required.Lectures
	if (req == 2 || req == 3) && row.Scheduled.Lectures >= 2 {
		row.Displayed.Lectures = req
	}
}

// NoDisplayAdjustment leaves displayed hours identical to the raw counts.
type NoDisplayAdjustment struct{}

func (NoDisplayAdjustment) Apply(*ReportRow) {}

// Reconcile walks the grid exactly once and produces a scheduled/required
// row for every course it knows about. Lab pairs are consumed together and
// scored as two lab hours. Basket cells credit each member attending that
// slot with one hour against its first unfilled L/T/P bucket. Discrepancies
// are reported, never corrected.
func Reconcile(grid *model.ScheduleGrid, courses []*model.Course,
	baskets *BasketAllocation, policy DisplayPolicy) []ReportRow {
	if policy == nil {
		policy = NoDisplayAdjustment{}
	}
	required := make(map[string]CourseHours, len(courses))
	for _, c := range courses {
		required[c.Code] = CourseHours{
			Lectures:  c.Load.Lectures,
			Tutorials: c.Load.Tutorials,
			Labs:      c.Load.Labs,
		}
	}
	scheduled := make(map[string]*CourseHours)
	hours := func(code string) *CourseHours {
		h := scheduled[code]
		if h == nil {
			h = &CourseHours{}
			scheduled[code] = h
		}
		return h
	}

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
			consumed[slot][day] = true
			cell := grid.At(slot, day)
			switch cell.Kind {
			case model.CellCourse:
				h := hours(cell.Course)
				switch {
				case cell.Marker == model.MarkerLab:
					if next := grid.At(slot+1, day); next != nil &&
						next.Kind == model.CellCourse && next.Course == cell.Course &&
						next.Marker == model.MarkerLab {
						consumed[slot+1][day] = true
						h.Labs += 2
					} else {
						// A lone lab-marked cell is one occupied slot and
						// scores one hour.
						h.Labs++
					}
				case cell.Marker == model.MarkerTutorial,
					grid.Config.Slots[slot].Kind == model.TutorialSlot:
					h.Tutorials++
				default:
					// Two adjacent unmarked cells of one course read as a
					// lab block even without the marker.
					if next := grid.At(slot+1, day); next != nil &&
						next.Kind == model.CellCourse && next.Course == cell.Course &&
						next.Marker == model.MarkerNone &&
						grid.Config.Slots[slot].Kind == model.LabSlot {
						h.Labs += 2
						consumed[slot+1][day] = true
					} else {
						h.Lectures++
					}
				}
			case model.CellBasket:
				if baskets == nil {
					continue
				}
				ref := model.SlotRef{Day: day, Slot: slot}
				for _, member := range baskets.MembersAt(cell.Basket, ref) {
					creditBasketHour(hours(member), required[member])
				}
			}
		}
	}

	rows := make([]ReportRow, 0, len(courses))
	for _, c := range courses {
		row := ReportRow{Course: c.Code, Required: required[c.Code]}
		if h := scheduled[c.Code]; h != nil {
			row.Scheduled = *h
		}
		row.Displayed = row.Scheduled
		policy.Apply(&row)
		rows = append(rows, row)
	}
	return rows
}

// creditBasketHour books one basket hour against the member's first unfilled
// requirement bucket, lectures first. Hours beyond the full requirement pile
// onto lectures so the surplus still surfaces.
func creditBasketHour(h *CourseHours, req CourseHours) {
	switch {
	case h.Lectures < req.Lectures:
		h.Lectures++
	case h.Tutorials < req.Tutorials:
		h.Tutorials++
	case h.Labs < req.Labs:
		h.Labs++
	default:
		h.Lectures++
	}
}
