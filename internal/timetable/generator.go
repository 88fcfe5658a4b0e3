package timetable

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/campustt/timetable/pkg/model"
)

var (
	// ErrEmptyCourseSet marks a tuple with no courses for its branch and
	// semester.
	ErrEmptyCourseSet = errors.New("no courses for branch/semester")
	// ErrUnknownPeriod marks a tuple carrying an unrecognised period type.
	ErrUnknownPeriod = errors.New("unknown period type")
)

// Tuple identifies one grid to generate. The order in which tuples are
// handed to Run is part of the engine's contract: earlier tuples win
// contested rooms.
type Tuple struct {
	Branch   string
	Semester int
	Section  string
	Period   model.PeriodType
}

func (t Tuple) String() string {
	return fmt.Sprintf("%s/S%d/%s/%s", t.Branch, t.Semester, t.Section, t.Period)
}

// DefaultTupleOrder enumerates branch, then semester, then section, then
// period, reproducing the institute's historical processing order.
func DefaultTupleOrder(branches []string, semesters []int, sections []string, periods []model.PeriodType) []Tuple {
	var tuples []Tuple
	for _, b := range branches {
		for _, s := range semesters {
			for _, sec := range sections {
				for _, p := range periods {
					tuples = append(tuples, Tuple{Branch: b, Semester: s, Section: sec, Period: p})
				}
			}
		}
	}
	return tuples
}

// TupleError is a structural failure isolated to one tuple.
type TupleError struct {
	Tuple Tuple
	Err   error
}

func (e TupleError) Error() string {
	return fmt.Sprintf("%s: %v", e.Tuple, e.Err)
}

func (e TupleError) Unwrap() error {
	return e.Err
}

// RunResult is everything one regeneration produced: per-tuple grids and
// reconciliation reports, the flat booking list, basket room expansions,
// cross-grid conflicts and per-tuple structural failures.
type RunResult struct {
	ID          string
	Grids       map[Tuple]*model.ScheduleGrid
	Reports     map[Tuple][]ReportRow
	Assignments []model.RoomAssignment
	Unassigned  []UnassignedPlacement
	BasketRooms map[string]map[string]string
	Baskets     map[string]*BasketAllocation
	Conflicts   []Conflict
	Failed      []TupleError
}

// Generator runs full timetable regenerations: classify, allocate baskets,
// build section grids, assign rooms, reconcile and audit.
type Generator struct {
	cfg     *Configuration
	courses []*model.Course
	rooms   []*model.Room
	tracker *UsageTracker
	logger  *zap.Logger
}

func NewGenerator(cfg *Configuration, courses []*model.Course, rooms []*model.Room, logger *zap.Logger) *Generator {
	if cfg == nil {
		cfg = NewDefaultConfiguration()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Generator{
		cfg:     cfg,
		courses: courses,
		rooms:   rooms,
		tracker: NewUsageTracker(),
		logger:  logger,
	}
}

// Run regenerates every tuple sequentially in the given order. The shared
// usage tracker is reset once up front. A tuple that fails structurally is
// recorded and skipped; the rest of the run proceeds.
func (g *Generator) Run(tuples []Tuple) *RunResult {
	g.tracker.Reset()
	res := &RunResult{
		ID:          uuid.NewString(),
		Grids:       make(map[Tuple]*model.ScheduleGrid),
		Reports:     make(map[Tuple][]ReportRow),
		BasketRooms: make(map[string]map[string]string),
		Baskets:     make(map[string]*BasketAllocation),
	}
	g.logger.Info("regeneration started",
		zap.String("run_id", res.ID), zap.Int("tuples", len(tuples)))

	byCode := make(map[string]*model.Course, len(g.courses))
	for _, c := range g.courses {
		byCode[c.Code] = c
	}

	for _, tuple := range tuples {
		if !model.KnownPeriod(tuple.Period) {
			res.Failed = append(res.Failed, TupleError{Tuple: tuple, Err: ErrUnknownPeriod})
			g.logger.Warn("tuple skipped", zap.String("tuple", tuple.String()), zap.Error(ErrUnknownPeriod))
			continue
		}
		cls := Classify(g.courses, tuple.Branch, tuple.Semester, g.cfg.CommonDepartments)
		if len(cls.Core)+len(cls.Elective)+len(cls.Minor) == 0 {
			res.Failed = append(res.Failed, TupleError{Tuple: tuple, Err: ErrEmptyCourseSet})
			g.logger.Warn("tuple skipped", zap.String("tuple", tuple.String()), zap.Error(ErrEmptyCourseSet))
			continue
		}

		// Baskets are shared by both sections of a branch/semester, so the
		// allocation is computed once and reused.
		basketKey := fmt.Sprintf("%s/%d", tuple.Branch, tuple.Semester)
		baskets := res.Baskets[basketKey]
		if baskets == nil {
			baskets = AllocateBaskets(cls.Elective, g.cfg.Grid)
			res.Baskets[basketKey] = baskets
		}

		grid := BuildSectionGrid(cls, baskets, tuple.Branch, tuple.Semester,
			tuple.Section, tuple.Period, g.cfg)
		alloc := AssignRooms(grid, g.rooms, byCode, baskets, g.tracker)

		res.Grids[tuple] = grid
		res.Assignments = append(res.Assignments, alloc.Assignments...)
		res.Unassigned = append(res.Unassigned, alloc.Unassigned...)
		for id, members := range alloc.BasketRooms {
			if res.BasketRooms[id] == nil {
				res.BasketRooms[id] = make(map[string]string)
			}
			for m, room := range members {
				res.BasketRooms[id][m] = room
			}
		}

		tracked := relevantCourses(cls, tuple.Period)
		res.Reports[tuple] = Reconcile(grid, tracked, baskets, g.cfg.Display)

		g.logger.Debug("tuple generated",
			zap.String("tuple", tuple.String()),
			zap.Int("assignments", len(alloc.Assignments)),
			zap.Int("unassigned", len(alloc.Unassigned)))
	}

	res.Conflicts = AuditConflicts(res.Assignments)
	g.logger.Info("regeneration finished",
		zap.String("run_id", res.ID),
		zap.Int("grids", len(res.Grids)),
		zap.Int("conflicts", len(res.Conflicts)),
		zap.Int("failed", len(res.Failed)))
	return res
}

// relevantCourses limits a tuple's reconciliation to courses that belong in
// its period's grid.
func relevantCourses(cls *Classification, period model.PeriodType) []*model.Course {
	var out []*model.Course
	for _, group := range [][]*model.Course{cls.Core, cls.Minor} {
		for _, c := range group {
			if spanMatches(c.Span, period) {
				out = append(out, c)
			}
		}
	}
	if period == model.Regular {
		for _, c := range cls.Elective {
			if spanMatches(c.Span, period) {
				out = append(out, c)
			}
		}
	}
	return out
}
