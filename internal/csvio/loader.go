// Package csvio is the engine's external-collaborator layer: it feeds the
// course table, room inventory and time grid in from CSV and drains grids
// back out. The allocation core itself never touches a file.
package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gocarina/gocsv"

	"github.com/campustt/timetable/pkg/model"
)

func setDelimiter(delim rune) {
	gocsv.SetCSVReader(func(in io.Reader) gocsv.CSVReader {
		r := csv.NewReader(in)
		r.Comma = delim
		return r
	})
}

// LoadCourses reads and parses the course table. Courses listed in ignored
// are not loaded. Malformed load descriptors are kept with a zero
// requirement; reconciliation surfaces them later.
func LoadCourses(path string, delim rune, ignored []string) ([]*model.Course, error) {
	setDelimiter(delim)

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open course table: %w", err)
	}
	defer f.Close()

	var rows []*model.Course
	if err := gocsv.UnmarshalFile(f, &rows); err != nil {
		return nil, fmt.Errorf("parse course table %s: %w", path, err)
	}

	courses := make([]*model.Course, 0, len(rows))
	for _, c := range rows {
		skip := false
		for _, ig := range ignored {
			if c.Code == ig {
				skip = true
				break
			}
		}
		if skip {
			continue
		}
		// Commas inside names break downstream exports.
		c.Name = strings.ReplaceAll(c.Name, ",", "_")
		c.AssignProperties()
		courses = append(courses, c)
	}
	return courses, nil
}

// LoadRooms reads and parses the room inventory.
func LoadRooms(path string, delim rune) ([]*model.Room, error) {
	setDelimiter(delim)

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open room inventory: %w", err)
	}
	defer f.Close()

	var rooms []*model.Room
	if err := gocsv.UnmarshalFile(f, &rooms); err != nil {
		return nil, fmt.Errorf("parse room inventory %s: %w", path, err)
	}
	for _, r := range rooms {
		r.AssignProperties()
	}
	return rooms, nil
}

type gridRow struct {
	Label string `csv:"time_range"`
	Kind  string `csv:"kind"`
}

// LoadTimeGrid reads a custom weekly grid configuration: one row per time
// range with its kind (lecture, tutorial, lab, lunch), in grid order.
// An empty path falls back to the default grid.
func LoadTimeGrid(path string, delim rune, days []string) (*model.GridConfig, error) {
	if path == "" {
		return model.DefaultGridConfig(), nil
	}
	setDelimiter(delim)

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open time grid: %w", err)
	}
	defer f.Close()

	var rows []*gridRow
	if err := gocsv.UnmarshalFile(f, &rows); err != nil {
		return nil, fmt.Errorf("parse time grid %s: %w", path, err)
	}

	slots := make([]model.TimeSlot, 0, len(rows))
	for _, r := range rows {
		kind := model.LectureSlot
		switch strings.ToLower(strings.TrimSpace(r.Kind)) {
		case "tutorial":
			kind = model.TutorialSlot
		case "lab":
			kind = model.LabSlot
		case "lunch":
			kind = model.LunchSlot
		}
		slots = append(slots, model.TimeSlot{Label: r.Label, Kind: kind})
	}
	if len(days) == 0 {
		days = model.DefaultGridConfig().Days
	}
	return model.NewGridConfig(days, slots), nil
}
