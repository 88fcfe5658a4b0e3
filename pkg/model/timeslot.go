package model

// SlotKind is the typed classification of a weekly time slot. It is computed
// once when the grid configuration is built, never re-derived from labels.
type SlotKind int

const (
	LectureSlot SlotKind = iota
	TutorialSlot
	LabSlot
	LunchSlot
)

func (k SlotKind) String() string {
	switch k {
	case TutorialSlot:
		return "tutorial"
	case LabSlot:
		return "lab"
	case LunchSlot:
		return "lunch"
	default:
		return "lecture"
	}
}

// TimeSlot is one row of the weekly grid.
type TimeSlot struct {
	Index int
	Label string
	Kind  SlotKind
}

// SlotRef addresses one cell of a weekly grid.
type SlotRef struct {
	Day  int
	Slot int
}

// GridConfig is the fixed weekly geometry shared by every section grid in a
// run: ordered days, ordered time slots with their kinds.
type GridConfig struct {
	Days  []string
	Slots []TimeSlot
}

// NewGridConfig tags and indexes the given slot labels.
func NewGridConfig(days []string, slots []TimeSlot) *GridConfig {
	cfg := &GridConfig{Days: days, Slots: make([]TimeSlot, len(slots))}
	copy(cfg.Slots, slots)
	for i := range cfg.Slots {
		cfg.Slots[i].Index = i
	}
	return cfg
}

// DefaultGridConfig is the institute's standard Monday-Friday grid: three
// 90-minute lecture rows, a lunch row, a two-row lab block and one tutorial
// row per day.
func DefaultGridConfig() *GridConfig {
	return NewGridConfig(
		[]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"},
		[]TimeSlot{
			{Label: "09:00-10:30", Kind: LectureSlot},
			{Label: "10:45-12:15", Kind: LectureSlot},
			{Label: "12:15-13:30", Kind: LunchSlot},
			{Label: "13:30-15:00", Kind: LectureSlot},
			{Label: "15:00-16:00", Kind: LabSlot},
			{Label: "16:00-17:00", Kind: LabSlot},
			{Label: "17:15-18:15", Kind: TutorialSlot},
		},
	)
}

// LabPairStart reports whether slot index i starts a lab pair: this slot and
// the next are both lab rows.
func (g *GridConfig) LabPairStart(i int) bool {
	return i >= 0 && i+1 < len(g.Slots) &&
		g.Slots[i].Kind == LabSlot && g.Slots[i+1].Kind == LabSlot
}
