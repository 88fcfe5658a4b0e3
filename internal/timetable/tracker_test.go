package timetable

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/campustt/timetable/pkg/model"
)

func TestUsageTrackerClaim(t *testing.T) {
	tr := NewUsageTracker()

	assert.True(t, tr.Claim(model.Regular, "C-101", 0, 0, "CS301"))
	assert.True(t, tr.Claim(model.Regular, "C-101", 0, 0, "CS301"), "same course may re-claim")
	assert.False(t, tr.Claim(model.Regular, "C-101", 0, 0, "EC301"), "different course is rejected")

	occ, ok := tr.Occupant(model.Regular, "C-101", 0, 0)
	assert.True(t, ok)
	assert.Equal(t, "CS301", occ)
}

func TestUsageTrackerPeriodIsolation(t *testing.T) {
	tr := NewUsageTracker()

	assert.True(t, tr.Claim(model.Regular, "C-101", 0, 0, "CS301"))
	assert.True(t, tr.Claim(model.PreMid, "C-101", 0, 0, "CS311"),
		"periods have independent occupancy")
}

func TestUsageTrackerReset(t *testing.T) {
	tr := NewUsageTracker()
	tr.Claim(model.Regular, "C-101", 0, 0, "CS301")
	tr.SetStickyRoom("CS301", "C-101")
	tr.TouchRoom("C-101")

	tr.Reset()

	_, ok := tr.Occupant(model.Regular, "C-101", 0, 0)
	assert.False(t, ok)
	_, ok = tr.StickyRoom("CS301")
	assert.False(t, ok)
	assert.Zero(t, tr.RoomAge("C-101"))
}
