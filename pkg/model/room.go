package model

// RoomKind separates lecture-style rooms from laboratories.
type RoomKind int

const (
	LectureRoom RoomKind = iota
	LabRoom
)

type Room struct {
	ID       string `csv:"room_id"`
	TypeSTR  string `csv:"type"`
	Capacity int    `csv:"capacity"`

	Kind RoomKind `csv:"-"`
}

// AssignProperties derives Kind from the raw type column.
func (r *Room) AssignProperties() {
	if r.TypeSTR == "lab" {
		r.Kind = LabRoom
	} else {
		r.Kind = LectureRoom
	}
}

// RoomAssignment records one course occurrence placed into a room. The same
// (period, room, day, slot) key never carries two distinct courses.
type RoomAssignment struct {
	Course string
	Day    int
	Slot   int
	Room   string
	Period PeriodType

	Branch   string
	Semester int
	Section  string
}
