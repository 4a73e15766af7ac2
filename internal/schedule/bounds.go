package schedule

import (
	"fmt"
	"time"

	"github.com/jonathan/syllabus-agent/internal/types"
)

// BoundsIssue flags one assignment whose week reference lands after the
// semester ends.
type BoundsIssue struct {
	Title         string `json:"title"`
	Week          int    `json:"week"`
	ResolvedDate  string `json:"resolved_date"`
	SuggestedWeek int    `json:"suggested_week"`
}

// BoundsReport is the outcome of checking assignments against the term span.
type BoundsReport struct {
	SemesterWeeks int           `json:"semester_weeks"`
	Issues        []BoundsIssue `json:"issues"`
}

// CheckSemesterBounds verifies that week-referenced assignments fall inside
// the term. The term length in weeks is derived from the start and end
// dates; assignments referencing later weeks are reported with the final
// week as the suggested correction.
func CheckSemesterBounds(assignments []types.ParsedAssignment, semesterStart, semesterEnd string) (*BoundsReport, error) {
	start, err := time.Parse(dateLayout, semesterStart)
	if err != nil {
		return nil, fmt.Errorf("invalid semester start date %q: %w", semesterStart, err)
	}
	end, err := time.Parse(dateLayout, semesterEnd)
	if err != nil {
		return nil, fmt.Errorf("invalid semester end date %q: %w", semesterEnd, err)
	}
	if end.Before(start) {
		return nil, fmt.Errorf("semester end %s precedes start %s", semesterEnd, semesterStart)
	}

	weeks := int(end.Sub(start).Hours()/(24*7)) + 1
	report := &BoundsReport{SemesterWeeks: weeks}

	for _, a := range assignments {
		if a.Week < 1 || a.SpecificDate != "" {
			continue
		}
		if a.Week > weeks {
			report.Issues = append(report.Issues, BoundsIssue{
				Title:         a.Title,
				Week:          a.Week,
				ResolvedDate:  weekToDate(start, a.Week).Format(dateLayout),
				SuggestedWeek: weeks,
			})
		}
	}
	return report, nil
}
