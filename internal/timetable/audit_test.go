package timetable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campustt/timetable/pkg/model"
)

func booking(course, room string, day, slot int, period model.PeriodType) model.RoomAssignment {
	return model.RoomAssignment{Course: course, Room: room, Day: day, Slot: slot, Period: period}
}

func TestAuditConflictsDistinctCourses(t *testing.T) {
	conflicts := AuditConflicts([]model.RoomAssignment{
		booking("CS301", "C-101", 0, 0, model.Regular),
		booking("EC301", "C-101", 0, 0, model.Regular),
	})

	require.Len(t, conflicts, 1)
	assert.Equal(t, "C-101", conflicts[0].Room)
	assert.Equal(t, []string{"CS301", "EC301"}, conflicts[0].Courses)
}

func TestAuditConflictsSameCourseExcluded(t *testing.T) {
	// A shared lecture booked from two branches and a duplicate section
	// export are the same course identity, not a conflict.
	conflicts := AuditConflicts([]model.RoomAssignment{
		booking("MA201", "C-101", 0, 0, model.Regular),
		booking("MA201", "C-101", 0, 0, model.Regular),
		booking("MA201", "C-101", 0, 0, model.Regular),
	})
	assert.Empty(t, conflicts)
}

func TestAuditConflictsPeriodScoped(t *testing.T) {
	// Same room/day/slot in different periods never collides.
	conflicts := AuditConflicts([]model.RoomAssignment{
		booking("CS311", "C-101", 0, 0, model.PreMid),
		booking("CS312", "C-101", 0, 0, model.PostMid),
	})
	assert.Empty(t, conflicts)
}

func TestAuditConflictsOneEntryPerKey(t *testing.T) {
	conflicts := AuditConflicts([]model.RoomAssignment{
		booking("CS301", "C-101", 0, 0, model.Regular),
		booking("EC301", "C-101", 0, 0, model.Regular),
		booking("DS301", "C-101", 0, 0, model.Regular),
		booking("CS301", "C-101", 1, 0, model.Regular),
		booking("EC301", "C-101", 1, 0, model.Regular),
	})

	require.Len(t, conflicts, 2, "exactly one entry per conflicting key")
	assert.Equal(t, []string{"CS301", "DS301", "EC301"}, conflicts[0].Courses)
	assert.Equal(t, 0, conflicts[0].Day)
	assert.Equal(t, 1, conflicts[1].Day)
}
