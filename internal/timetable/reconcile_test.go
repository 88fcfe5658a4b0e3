package timetable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campustt/timetable/pkg/model"
)

func reportFor(t *testing.T, rows []ReportRow, code string) ReportRow {
	t.Helper()
	for _, r := range rows {
		if r.Course == code {
			return r
		}
	}
	t.Fatalf("no report row for %s", code)
	return ReportRow{}
}

func TestReconcileExactMatch(t *testing.T) {
	cfg := NewDefaultConfiguration()
	c := course("CS301", "CSE", 3, "", "", "2-1-0-0-3")
	cls := &Classification{Core: []*model.Course{c}}
	grid := BuildSectionGrid(cls, nil, "CSE", 3, "A", model.Regular, cfg)

	rows := Reconcile(grid, cls.Core, nil, nil)

	row := reportFor(t, rows, "CS301")
	assert.Equal(t, CourseHours{Lectures: 2, Tutorials: 1}, row.Scheduled)
	assert.Equal(t, CourseHours{Lectures: 2, Tutorials: 1}, row.Required)
	assert.False(t, row.Discrepant())
}

func TestReconcileLabPairCountsOnce(t *testing.T) {
	cfg := NewDefaultConfiguration()
	c := course("X101", "CSE", 3, "", "", "0-0-2-0-1")
	cls := &Classification{Core: []*model.Course{c}}
	grid := BuildSectionGrid(cls, nil, "CSE", 3, "A", model.Regular, cfg)

	rows := Reconcile(grid, cls.Core, nil, nil)

	row := reportFor(t, rows, "X101")
	assert.Equal(t, 2, row.Scheduled.Labs, "one two-hour block, not two entries")
	assert.Equal(t, 2, row.Required.Labs)
	assert.False(t, row.Discrepant())
}

func TestReconcileLoneLabCellCountsOneHour(t *testing.T) {
	cfg := NewDefaultConfiguration()
	c := course("X101", "CSE", 3, "", "", "0-0-1-0-1")
	grid := model.NewScheduleGrid("CSE", 3, "A", model.Regular, cfg.Grid)
	// One lab-marked cell with no partner below it, as an imported grid
	// may carry.
	*grid.At(4, 0) = model.Cell{Kind: model.CellCourse, Course: "X101", Marker: model.MarkerLab}

	rows := Reconcile(grid, []*model.Course{c}, nil, nil)

	row := reportFor(t, rows, "X101")
	assert.Equal(t, 1, row.Scheduled.Labs, "one occupied slot, one hour")
	assert.False(t, row.Discrepant())
}

func TestReconcileUnmarkedAdjacentLab(t *testing.T) {
	cfg := NewDefaultConfiguration()
	c := course("X101", "CSE", 3, "", "", "0-0-2-0-1")
	grid := model.NewScheduleGrid("CSE", 3, "A", model.Regular, cfg.Grid)
	// Two adjacent lab-row cells holding the same course, no marker.
	*grid.At(4, 1) = model.Cell{Kind: model.CellCourse, Course: "X101"}
	*grid.At(5, 1) = model.Cell{Kind: model.CellCourse, Course: "X101"}

	rows := Reconcile(grid, []*model.Course{c}, nil, nil)

	row := reportFor(t, rows, "X101")
	assert.Equal(t, 2, row.Scheduled.Labs)
	assert.Zero(t, row.Scheduled.Lectures)
}

func TestReconcileMissingPlacementReported(t *testing.T) {
	cfg := NewDefaultConfiguration()
	c := course("CS301", "CSE", 3, "", "", "3-1-0-0-4")
	grid := model.NewScheduleGrid("CSE", 3, "A", model.Regular, cfg.Grid)
	// Only one of three lectures made it onto the grid.
	*grid.At(0, 0) = model.Cell{Kind: model.CellCourse, Course: "CS301"}

	rows := Reconcile(grid, []*model.Course{c}, nil, nil)

	row := reportFor(t, rows, "CS301")
	assert.True(t, row.Discrepant())
	assert.Equal(t, CourseHours{Lectures: 1}, row.Scheduled)
	assert.Equal(t, CourseHours{Lectures: 3, Tutorials: 1}, row.Required)
}

func TestReconcileZeroRequirementMismatch(t *testing.T) {
	cfg := NewDefaultConfiguration()
	// Malformed descriptor degraded to zero at load time.
	c := course("CS301", "CSE", 3, "", "", "broken")
	grid := model.NewScheduleGrid("CSE", 3, "A", model.Regular, cfg.Grid)
	*grid.At(0, 0) = model.Cell{Kind: model.CellCourse, Course: "CS301"}

	rows := Reconcile(grid, []*model.Course{c}, nil, nil)

	row := reportFor(t, rows, "CS301")
	assert.True(t, row.Discrepant(), "degraded requirement surfaces here, not as a crash")
	assert.Equal(t, CourseHours{}, row.Required)
}

func TestReconcileBasketCreditsMembers(t *testing.T) {
	cfg := NewDefaultConfiguration()
	x1 := course("X101", "CSE", 5, "E", "B1", "2-0-0-0-2")
	x2 := course("X102", "DSAI", 5, "E", "B1", "1-0-0-0-1")
	cls := &Classification{Elective: []*model.Course{x1, x2}}
	baskets := AllocateBaskets(cls.Elective, cfg.Grid)
	grid := BuildSectionGrid(cls, baskets, "CSE", 5, "A", model.Regular, cfg)

	rows := Reconcile(grid, cls.Elective, baskets, nil)

	assert.Equal(t, 2, reportFor(t, rows, "X101").Scheduled.Lectures)
	assert.Equal(t, 1, reportFor(t, rows, "X102").Scheduled.Lectures,
		"lighter member credited only for its quota")
}

func TestReconcileBasketMixedLoadFillsBuckets(t *testing.T) {
	cfg := NewDefaultConfiguration()
	x1 := course("X101", "CSE", 5, "E", "B1", "2-0-0-0-2")
	x2 := course("X102", "DSAI", 5, "E", "B1", "1-1-0-0-2")
	cls := &Classification{Elective: []*model.Course{x1, x2}}
	baskets := AllocateBaskets(cls.Elective, cfg.Grid)
	grid := BuildSectionGrid(cls, baskets, "CSE", 5, "A", model.Regular, cfg)

	rows := Reconcile(grid, cls.Elective, baskets, nil)

	// Basket hours fill the member's L, T then P buckets in order, so a
	// fully served mixed-load member reports no discrepancy.
	row := reportFor(t, rows, "X102")
	assert.Equal(t, CourseHours{Lectures: 1, Tutorials: 1}, row.Scheduled)
	assert.False(t, row.Discrepant())
}

func TestClampLectureDisplay(t *testing.T) {
	cases := []struct {
		name      string
		required  int
		scheduled int
		want      int
	}{
		{"required 3 scheduled 2 clamps up", 3, 2, 3},
		{"required 2 scheduled 3 clamps down", 2, 3, 2},
		{"required 3 scheduled 3 unchanged", 3, 3, 3},
		{"required 4 untouched", 4, 2, 2},
		{"scheduled below 2 untouched", 3, 1, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			row := ReportRow{
				Course:    "CS301",
				Scheduled: CourseHours{Lectures: tc.scheduled},
				Required:  CourseHours{Lectures: tc.required},
			}
			row.Displayed = row.Scheduled
			ClampLectureDisplay{}.Apply(&row)

			assert.Equal(t, tc.want, row.Displayed.Lectures)
			assert.Equal(t, tc.scheduled, row.Scheduled.Lectures, "raw count never touched")
		})
	}
}

func TestReconcileAppliesDisplayPolicy(t *testing.T) {
	cfg := NewDefaultConfiguration()
	c := course("CS301", "CSE", 3, "", "", "3-0-0-0-3")
	grid := model.NewScheduleGrid("CSE", 3, "A", model.Regular, cfg.Grid)
	*grid.At(0, 0) = model.Cell{Kind: model.CellCourse, Course: "CS301"}
	*grid.At(0, 1) = model.Cell{Kind: model.CellCourse, Course: "CS301"}

	rows := Reconcile(grid, []*model.Course{c}, nil, ClampLectureDisplay{})

	row := reportFor(t, rows, "CS301")
	assert.Equal(t, 2, row.Scheduled.Lectures)
	assert.Equal(t, 3, row.Displayed.Lectures, "cosmetic only")
	assert.True(t, row.Discrepant(), "discrepancy judged on raw counts")
}

func TestReconcileTutorialBySlotKind(t *testing.T) {
	cfg := NewDefaultConfiguration()
	c := course("CS301", "CSE", 3, "", "", "0-1-0-0-1")
	grid := model.NewScheduleGrid("CSE", 3, "A", model.Regular, cfg.Grid)
	// Cell dropped into the tutorial row without an explicit marker.
	tutorialRow := -1
	for _, ts := range cfg.Grid.Slots {
		if ts.Kind == model.TutorialSlot {
			tutorialRow = ts.Index
			break
		}
	}
	require.NotEqual(t, -1, tutorialRow)
	*grid.At(tutorialRow, 0) = model.Cell{Kind: model.CellCourse, Course: "CS301"}

	rows := Reconcile(grid, []*model.Course{c}, nil, nil)

	row := reportFor(t, rows, "CS301")
	assert.Equal(t, CourseHours{Tutorials: 1}, row.Scheduled)
	assert.False(t, row.Discrepant())
}
