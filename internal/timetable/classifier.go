package timetable

import (
	"slices"

	"github.com/campustt/timetable/pkg/model"
)

// Classification partitions a branch/semester's courses into three disjoint
// lists, preserving course-table order.
type Classification struct {
	Core     []*model.Course
	Elective []*model.Course
	Minor    []*model.Course
}

// Classify selects and partitions the courses relevant to one branch and
// semester. A course is core when its owning department is the branch itself
// or one of the shared departments. Electives join regardless of owning
// department, so a course owned elsewhere can appear in this branch's
// baskets.
func Classify(courses []*model.Course, branch string, semester int, common []string) *Classification {
	cls := &Classification{}
	for _, c := range courses {
		if c.Semester != semester {
			continue
		}
		switch c.Category {
		case model.CategoryElective:
			cls.Elective = append(cls.Elective, c)
		case model.CategoryMinor:
			cls.Minor = append(cls.Minor, c)
		default:
			if c.Department == branch || slices.Contains(common, c.Department) {
				cls.Core = append(cls.Core, c)
			}
		}
	}
	return cls
}
