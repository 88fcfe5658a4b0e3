package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/campustt/timetable/internal/csvio"
	"github.com/campustt/timetable/internal/timetable"
	"github.com/campustt/timetable/pkg/model"
)

var validate = validator.New()

type generateRequest struct {
	Branches  []string `json:"branches" validate:"required,min=1,dive,required"`
	Semesters []int    `json:"semesters" validate:"required,min=1,dive,min=1,max=8"`
	Sections  []string `json:"sections" validate:"required,min=1"`
	Periods   []string `json:"periods" validate:"omitempty,dive,oneof=Regular PreMid PostMid"`
}

// handleGenerate runs a full regeneration over the configured CSV tables
// for the requested branch/semester/section tuples. The request order of
// branches, semesters and sections is the processing order, which decides
// contested-room outcomes.
func (s *server) handleGenerate(ctx *gin.Context) {
	var req generateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := validate.Struct(req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	delim := s.cfg.Data.DelimiterRune()
	courses, err := csvio.LoadCourses(s.cfg.Data.CoursesFile, delim, nil)
	if err != nil {
		s.logger.Error("load courses", zap.Error(err))
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	rooms, err := csvio.LoadRooms(s.cfg.Data.RoomsFile, delim)
	if err != nil {
		s.logger.Error("load rooms", zap.Error(err))
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	grid, err := csvio.LoadTimeGrid(s.cfg.Data.GridFile, delim, nil)
	if err != nil {
		s.logger.Error("load time grid", zap.Error(err))
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	periods := make([]model.PeriodType, 0, len(req.Periods))
	for _, p := range req.Periods {
		periods = append(periods, model.PeriodType(p))
	}
	if len(periods) == 0 {
		periods = []model.PeriodType{model.Regular, model.PreMid, model.PostMid}
	}

	engineCfg := timetable.NewDefaultConfiguration()
	engineCfg.Grid = grid
	engineCfg.Sections = req.Sections

	tuples := timetable.DefaultTupleOrder(req.Branches, req.Semesters, req.Sections, periods)
	gen := timetable.NewGenerator(engineCfg, courses, rooms, s.logger)
	result := gen.Run(tuples)
	s.storeRun(result)

	ctx.JSON(http.StatusOK, gin.H{
		"id":         result.ID,
		"grids":      len(result.Grids),
		"conflicts":  len(result.Conflicts),
		"unassigned": len(result.Unassigned),
		"skipped":    len(result.Failed),
	})
}

type gridResponse struct {
	Branch   string     `json:"branch"`
	Semester int        `json:"semester"`
	Section  string     `json:"section"`
	Period   string     `json:"period"`
	Days     []string   `json:"days"`
	Times    []string   `json:"times"`
	Cells    [][]string `json:"cells"`
}

func (s *server) handleGetGrids(ctx *gin.Context) {
	result, ok := s.run(ctx.Param("id"))
	if !ok {
		ctx.Status(http.StatusNotFound)
		return
	}
	grids := make([]gridResponse, 0, len(result.Grids))
	for _, g := range result.Grids {
		resp := gridResponse{
			Branch:   g.Branch,
			Semester: g.Semester,
			Section:  g.Section,
			Period:   string(g.Period),
			Days:     g.Config.Days,
		}
		for _, ts := range g.Config.Slots {
			resp.Times = append(resp.Times, ts.Label)
			row := make([]string, len(g.Config.Days))
			for day := range g.Config.Days {
				row[day] = g.At(ts.Index, day).Label()
			}
			resp.Cells = append(resp.Cells, row)
		}
		grids = append(grids, resp)
	}
	ctx.JSON(http.StatusOK, gin.H{"grids": grids})
}

func (s *server) handleGetReport(ctx *gin.Context) {
	result, ok := s.run(ctx.Param("id"))
	if !ok {
		ctx.Status(http.StatusNotFound)
		return
	}
	type reportEntry struct {
		Tuple string                `json:"tuple"`
		Rows  []timetable.ReportRow `json:"rows"`
	}
	entries := make([]reportEntry, 0, len(result.Reports))
	for tuple, rows := range result.Reports {
		entries = append(entries, reportEntry{Tuple: tuple.String(), Rows: rows})
	}
	ctx.JSON(http.StatusOK, gin.H{
		"reports":    entries,
		"unassigned": result.Unassigned,
	})
}

func (s *server) handleGetConflicts(ctx *gin.Context) {
	result, ok := s.run(ctx.Param("id"))
	if !ok {
		ctx.Status(http.StatusNotFound)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"conflicts": result.Conflicts})
}

func (s *server) handleGetBaskets(ctx *gin.Context) {
	result, ok := s.run(ctx.Param("id"))
	if !ok {
		ctx.Status(http.StatusNotFound)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"baskets": result.BasketRooms})
}
