package model

import "strings"

// CellKind tags the contents of one grid cell.
type CellKind int

const (
	CellFree CellKind = iota
	CellLunch
	CellCourse
	CellBasket
)

// Marker distinguishes the delivery mode of a course occurrence when it
// differs from the default lecture.
type Marker int

const (
	MarkerNone Marker = iota
	MarkerTutorial
	MarkerLab
)

// Cell is the tagged variant held by every grid position. Consumers switch
// on Kind instead of parsing sentinel strings.
type Cell struct {
	Kind   CellKind
	Course string
	Basket string
	Marker Marker
	Room   string
}

// Label renders the cell in its canonical textual form. The form round-trips
// through ParseCellLabel, so exports keep full cell semantics.
func (c Cell) Label() string {
	switch c.Kind {
	case CellLunch:
		return "Lunch Break"
	case CellCourse:
		s := c.Course
		switch c.Marker {
		case MarkerTutorial:
			s += " (Tutorial)"
		case MarkerLab:
			s += " (Lab)"
		}
		if c.Room != "" {
			s += " [" + c.Room + "]"
		}
		return s
	case CellBasket:
		return c.Basket
	default:
		return "Free"
	}
}

// ParseCellLabel is the inverse of Cell.Label. Basket cells are recognised
// by the "B" identifier prefix the curriculum uses for baskets.
func ParseCellLabel(s string) Cell {
	s = strings.TrimSpace(s)
	switch s {
	case "", "Free":
		return Cell{Kind: CellFree}
	case "Lunch Break":
		return Cell{Kind: CellLunch}
	}
	cell := Cell{Kind: CellCourse}
	if i := strings.LastIndex(s, " ["); i >= 0 && strings.HasSuffix(s, "]") {
		cell.Room = s[i+2 : len(s)-1]
		s = s[:i]
	}
	if strings.HasSuffix(s, " (Tutorial)") {
		cell.Marker = MarkerTutorial
		s = strings.TrimSuffix(s, " (Tutorial)")
	} else if strings.HasSuffix(s, " (Lab)") {
		cell.Marker = MarkerLab
		s = strings.TrimSuffix(s, " (Lab)")
	}
	if cell.Room == "" && cell.Marker == MarkerNone &&
		strings.HasPrefix(s, "B") && !strings.ContainsAny(s, " -") && len(s) <= 3 {
		return Cell{Kind: CellBasket, Basket: s}
	}
	cell.Course = s
	return cell
}

// ScheduleGrid is one section's weekly timetable: slots as rows, days as
// columns. Built by the section builder, then mutated in place by the
// classroom allocator which fills in Room without changing placements.
type ScheduleGrid struct {
	Branch   string
	Semester int
	Section  string
	Period   PeriodType
	Config   *GridConfig
	Cells    [][]Cell // [slot][day]
}

// NewScheduleGrid creates a grid of Free cells with the lunch row marked.
func NewScheduleGrid(branch string, semester int, section string, period PeriodType, cfg *GridConfig) *ScheduleGrid {
	g := &ScheduleGrid{
		Branch:   branch,
		Semester: semester,
		Section:  section,
		Period:   period,
		Config:   cfg,
		Cells:    make([][]Cell, len(cfg.Slots)),
	}
	for i := range g.Cells {
		g.Cells[i] = make([]Cell, len(cfg.Days))
		if cfg.Slots[i].Kind == LunchSlot {
			for d := range g.Cells[i] {
				g.Cells[i][d] = Cell{Kind: CellLunch}
			}
		}
	}
	return g
}

// At returns the cell at (slot, day). Out-of-range lookups return nil.
func (g *ScheduleGrid) At(slot, day int) *Cell {
	if slot < 0 || slot >= len(g.Cells) || day < 0 || day >= len(g.Cells[slot]) {
		return nil
	}
	return &g.Cells[slot][day]
}

// Free reports whether (slot, day) exists and holds nothing.
func (g *ScheduleGrid) Free(slot, day int) bool {
	c := g.At(slot, day)
	return c != nil && c.Kind == CellFree
}
