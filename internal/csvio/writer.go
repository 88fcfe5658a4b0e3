package csvio

import (
	"fmt"
	"os"
	"strings"

	"github.com/gocarina/gocsv"

	"github.com/campustt/timetable/pkg/model"
)

// GridCSVRow is one exported cell. Cell labels round-trip through
// model.ParseCellLabel, so course identity, markers and room suffixes
// survive a write/read cycle.
type GridCSVRow struct {
	Branch   string `csv:"branch"`
	Semester int    `csv:"semester"`
	Section  string `csv:"section"`
	Period   string `csv:"period"`
	Day      string `csv:"day"`
	Time     string `csv:"time"`
	Cell     string `csv:"cell"`
}

// ExportGrid writes the grid to the CSV file at path, replacing any
// previous file.
func ExportGrid(grid *model.ScheduleGrid, path string) error {
	rows := formatGrid(grid)
	if _, err := os.Stat(path); err == nil {
		os.Remove(path)
	}
	out, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, os.ModePerm)
	if err != nil {
		return fmt.Errorf("create export file: %w", err)
	}
	defer out.Close()
	if err := gocsv.MarshalFile(&rows, out); err != nil {
		return fmt.Errorf("write export file: %w", err)
	}
	return nil
}

// ExportGridString renders the grid as CSV text.
func ExportGridString(grid *model.ScheduleGrid) (string, error) {
	rows := formatGrid(grid)
	return gocsv.MarshalString(&rows)
}

// ImportGrid reads a previously exported grid back into cell form, given
// the grid configuration the export was built against.
func ImportGrid(path string, cfg *model.GridConfig) (*model.ScheduleGrid, error) {
	// Exports are written with the default comma writer; the loader may
	// have left a different delimiter on the shared gocsv reader.
	setDelimiter(',')
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open grid file: %w", err)
	}
	defer f.Close()

	var rows []*GridCSVRow
	if err := gocsv.UnmarshalFile(f, &rows); err != nil {
		return nil, fmt.Errorf("parse grid file %s: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("grid file %s is empty", path)
	}

	first := rows[0]
	grid := model.NewScheduleGrid(first.Branch, first.Semester, first.Section,
		model.PeriodType(first.Period), cfg)
	dayIndex := make(map[string]int, len(cfg.Days))
	for i, d := range cfg.Days {
		dayIndex[d] = i
	}
	slotIndex := make(map[string]int, len(cfg.Slots))
	for _, s := range cfg.Slots {
		slotIndex[s.Label] = s.Index
	}
	for _, r := range rows {
		day, okD := dayIndex[r.Day]
		slot, okS := slotIndex[r.Time]
		if !okD || !okS {
			continue
		}
		*grid.At(slot, day) = model.ParseCellLabel(r.Cell)
	}
	return grid, nil
}

// PrintGrid writes a human-readable weekly table to stdout.
func PrintGrid(grid *model.ScheduleGrid) {
	fmt.Printf("%s semester %d section %s (%s)\n",
		grid.Branch, grid.Semester, grid.Section, grid.Period)
	fmt.Printf("%-13s", "")
	for _, d := range grid.Config.Days {
		fmt.Printf(" %-22s", d)
	}
	fmt.Println()
	for _, ts := range grid.Config.Slots {
		fmt.Printf("%-13s", ts.Label)
		for day := range grid.Config.Days {
			fmt.Printf(" %-22s", grid.At(ts.Index, day).Label())
		}
		fmt.Println()
	}
	fmt.Println(strings.Repeat("-", 13+23*len(grid.Config.Days)))
}

func formatGrid(grid *model.ScheduleGrid) []*GridCSVRow {
	var rows []*GridCSVRow
	for day := range grid.Config.Days {
		for _, ts := range grid.Config.Slots {
			rows = append(rows, &GridCSVRow{
				Branch:   grid.Branch,
				Semester: grid.Semester,
				Section:  grid.Section,
				Period:   string(grid.Period),
				Day:      grid.Config.Days[day],
				Time:     ts.Label,
				Cell:     grid.At(ts.Index, day).Label(),
			})
		}
	}
	return rows
}
