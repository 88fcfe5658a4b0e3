package timetable

import "github.com/campustt/timetable/pkg/model"

// Configuration carries the engine knobs shared by one regeneration run.
type Configuration struct {
	Grid *model.GridConfig

	// CommonDepartments own courses taught to every branch (maths, physics,
	// humanities); their courses count as core for any branch.
	CommonDepartments []string

	// Sections per branch/semester cohort. A single combined cohort uses
	// one empty-string section.
	Sections []string

	Display DisplayPolicy
}

func NewDefaultConfiguration() *Configuration {
	return &Configuration{
		Grid:              model.DefaultGridConfig(),
		CommonDepartments: []string{"MA", "PH", "HSS"},
		Sections:          []string{"A", "B"},
		Display:           ClampLectureDisplay{},
	}
}
