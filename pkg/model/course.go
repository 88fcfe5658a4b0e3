package model

import (
	"strconv"
	"strings"
)

// Category partitions a course within a branch/semester curriculum.
type Category int

const (
	CategoryCore Category = iota
	CategoryElective
	CategoryMinor
)

func (c Category) String() string {
	switch c {
	case CategoryElective:
		return "elective"
	case CategoryMinor:
		return "minor"
	default:
		return "core"
	}
}

// TermSpan marks whether a course runs the full semester or only one half.
type TermSpan int

const (
	FullSemester TermSpan = iota
	PreMidOnly
	PostMidOnly
)

func (t TermSpan) String() string {
	switch t {
	case PreMidOnly:
		return "pre-mid"
	case PostMidOnly:
		return "post-mid"
	default:
		return "full"
	}
}

// PeriodType scopes a grid and its room bookings to an academic window.
type PeriodType string

const (
	Regular PeriodType = "Regular"
	PreMid  PeriodType = "PreMid"
	PostMid PeriodType = "PostMid"
)

// KnownPeriod reports whether p is one of the three recognised period types.
func KnownPeriod(p PeriodType) bool {
	return p == Regular || p == PreMid || p == PostMid
}

// LoadRequirement holds the weekly hour requirement parsed from an
// "L-T-P-S-C" descriptor. Self-study and credit hours carry no slots.
type LoadRequirement struct {
	Lectures  int
	Tutorials int
	Labs      int
}

// ParseLoad parses an "L-T-P-S-C" descriptor. Anything malformed degrades
// to a zero requirement; reconciliation reports the gap downstream.
func ParseLoad(descriptor string) LoadRequirement {
	parts := strings.Split(strings.TrimSpace(descriptor), "-")
	if len(parts) < 3 {
		return LoadRequirement{}
	}
	nums := make([]int, 3)
	for i := 0; i < 3; i++ {
		n, err := strconv.Atoi(strings.TrimSpace(parts[i]))
		if err != nil || n < 0 {
			return LoadRequirement{}
		}
		nums[i] = n
	}
	return LoadRequirement{Lectures: nums[0], Tutorials: nums[1], Labs: nums[2]}
}

type Course struct {
	Code       string `csv:"Course_Code"`
	Name       string `csv:"Course_Name"`
	Department string `csv:"Department"`
	Semester   int    `csv:"Semester"`
	Flag       string `csv:"Elective"`
	Basket     string `csv:"Basket"`
	LoadSTR    string `csv:"LTPSC"`
	SpanSTR    string `csv:"Term_Type"`
	Strength   int    `csv:"Strength"`

	Category Category        `csv:"-"`
	Load     LoadRequirement `csv:"-"`
	Span     TermSpan        `csv:"-"`
}

// AssignProperties derives the typed fields from the raw CSV columns.
// Called once at load time; the course is read-only afterwards.
func (c *Course) AssignProperties() {
	c.Load = ParseLoad(c.LoadSTR)
	switch strings.ToLower(strings.TrimSpace(c.SpanSTR)) {
	case "pre-mid", "premid", "first-half":
		c.Span = PreMidOnly
	case "post-mid", "postmid", "second-half":
		c.Span = PostMidOnly
	default:
		c.Span = FullSemester
	}
	switch strings.ToUpper(strings.TrimSpace(c.Flag)) {
	case "E", "Y", "1", "TRUE":
		c.Category = CategoryElective
	case "M":
		c.Category = CategoryMinor
	default:
		c.Category = CategoryCore
	}
}

// Elective reports whether the course is offered as an elective.
func (c *Course) Elective() bool {
	return c.Category == CategoryElective
}
