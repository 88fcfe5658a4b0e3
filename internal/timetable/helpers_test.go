package timetable

import "github.com/campustt/timetable/pkg/model"

// course builds a loaded course record the way csvio would.
func course(code, dept string, sem int, flag, basket, ltpsc string) *model.Course {
	c := &model.Course{
		Code:       code,
		Name:       code,
		Department: dept,
		Semester:   sem,
		Flag:       flag,
		Basket:     basket,
		LoadSTR:    ltpsc,
		Strength:   60,
	}
	c.AssignProperties()
	return c
}

func halfCourse(code, dept string, sem int, ltpsc, span string) *model.Course {
	c := course(code, dept, sem, "", "", ltpsc)
	c.SpanSTR = span
	c.AssignProperties()
	return c
}

func lectureRooms(ids ...string) []*model.Room {
	rooms := make([]*model.Room, 0, len(ids))
	for _, id := range ids {
		rooms = append(rooms, &model.Room{ID: id, TypeSTR: "lecture", Capacity: 120, Kind: model.LectureRoom})
	}
	return rooms
}

func labRooms(ids ...string) []*model.Room {
	rooms := make([]*model.Room, 0, len(ids))
	for _, id := range ids {
		rooms = append(rooms, &model.Room{ID: id, TypeSTR: "lab", Capacity: 120, Kind: model.LabRoom})
	}
	return rooms
}

func byCode(courses ...*model.Course) map[string]*model.Course {
	m := make(map[string]*model.Course, len(courses))
	for _, c := range courses {
		m[c.Code] = c
	}
	return m
}
