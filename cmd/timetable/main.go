package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/campustt/timetable/internal/csvio"
	"github.com/campustt/timetable/internal/timetable"
	"github.com/campustt/timetable/pkg/config"
	"github.com/campustt/timetable/pkg/logger"
	"github.com/campustt/timetable/pkg/model"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}
	log, err := logger.New(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		os.Exit(1)
	}
	defer log.Sync()

	delim := cfg.Data.DelimiterRune()
	courses, err := csvio.LoadCourses(cfg.Data.CoursesFile, delim, nil)
	if err != nil {
		log.Fatal("load courses", zap.Error(err))
	}
	rooms, err := csvio.LoadRooms(cfg.Data.RoomsFile, delim)
	if err != nil {
		log.Fatal("load rooms", zap.Error(err))
	}
	grid, err := csvio.LoadTimeGrid(cfg.Data.GridFile, delim, nil)
	if err != nil {
		log.Fatal("load time grid", zap.Error(err))
	}

	engineCfg := timetable.NewDefaultConfiguration()
	engineCfg.Grid = grid
	engineCfg.Sections = cfg.Run.Sections

	tuples := timetable.DefaultTupleOrder(cfg.Run.Branches, cfg.Run.Semesters,
		cfg.Run.Sections, []model.PeriodType{model.Regular, model.PreMid, model.PostMid})

	start := time.Now()
	gen := timetable.NewGenerator(engineCfg, courses, rooms, log)
	result := gen.Run(tuples)
	elapsed := time.Since(start)

	if err := os.MkdirAll(cfg.Data.ExportDir, 0o755); err != nil {
		log.Fatal("create export dir", zap.Error(err))
	}
	for _, tuple := range tuples {
		g, ok := result.Grids[tuple]
		if !ok {
			continue
		}
		name := fmt.Sprintf("%s-S%d-%s-%s.csv", tuple.Branch, tuple.Semester, tuple.Section, tuple.Period)
		if err := csvio.ExportGrid(g, filepath.Join(cfg.Data.ExportDir, name)); err != nil {
			log.Error("export grid", zap.String("tuple", tuple.String()), zap.Error(err))
		}
		csvio.PrintGrid(g)
	}

	discrepancies := 0
	for tuple, rows := range result.Reports {
		for _, row := range rows {
			if !row.Discrepant() {
				continue
			}
			discrepancies++
			fmt.Printf("%s %s scheduled L%d/T%d/P%d required L%d/T%d/P%d\n",
				tuple, row.Course,
				row.Scheduled.Lectures, row.Scheduled.Tutorials, row.Scheduled.Labs,
				row.Required.Lectures, row.Required.Tutorials, row.Required.Labs)
		}
	}

	if len(result.Conflicts) != 0 {
		fmt.Println("Room conflicts:")
		for _, c := range result.Conflicts {
			fmt.Printf("  %s %s day %d slot %d: %v\n", c.Period, c.Room, c.Day, c.Slot, c.Courses)
		}
	} else {
		fmt.Println("No room conflicts")
	}

	for _, f := range result.Failed {
		fmt.Println("skipped:", f.Error())
	}

	fmt.Printf("Run %s: %d grids, %d bookings, %d unassigned, %d discrepancies in %s\n",
		result.ID, len(result.Grids), len(result.Assignments),
		len(result.Unassigned), discrepancies, elapsed)
}
