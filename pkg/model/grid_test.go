package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCellLabelRoundTrip(t *testing.T) {
	cells := []Cell{
		{Kind: CellFree},
		{Kind: CellLunch},
		{Kind: CellCourse, Course: "CS301"},
		{Kind: CellCourse, Course: "CS301", Marker: MarkerTutorial},
		{Kind: CellCourse, Course: "CS301", Marker: MarkerLab},
		{Kind: CellCourse, Course: "CS301", Room: "C-102"},
		{Kind: CellCourse, Course: "CS301", Marker: MarkerLab, Room: "L-201"},
		{Kind: CellBasket, Basket: "B1"},
	}
	for _, c := range cells {
		t.Run(c.Label(), func(t *testing.T) {
			assert.Equal(t, c, ParseCellLabel(c.Label()))
		})
	}
}

func TestNewScheduleGrid(t *testing.T) {
	cfg := DefaultGridConfig()
	g := NewScheduleGrid("CSE", 3, "A", Regular, cfg)

	require.Len(t, g.Cells, len(cfg.Slots))
	lunchRow := -1
	for _, ts := range cfg.Slots {
		if ts.Kind == LunchSlot {
			lunchRow = ts.Index
		}
	}
	require.NotEqual(t, -1, lunchRow)
	for day := range cfg.Days {
		assert.Equal(t, CellLunch, g.At(lunchRow, day).Kind)
		assert.False(t, g.Free(lunchRow, day))
		assert.True(t, g.Free(0, day))
	}
	assert.Nil(t, g.At(len(cfg.Slots), 0))
	assert.Nil(t, g.At(0, len(cfg.Days)))
}

func TestLabPairStart(t *testing.T) {
	cfg := DefaultGridConfig()
	starts := 0
	for i := range cfg.Slots {
		if cfg.LabPairStart(i) {
			starts++
			assert.Equal(t, LabSlot, cfg.Slots[i].Kind)
			assert.Equal(t, LabSlot, cfg.Slots[i+1].Kind)
		}
	}
	assert.Equal(t, 1, starts, "default grid carries one lab pair per day")
}
