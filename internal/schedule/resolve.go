// Package schedule resolves relative week references into absolute calendar
// dates anchored at the semester start.
package schedule

import (
	"fmt"
	"time"

	"github.com/jonathan/syllabus-agent/internal/types"
)

const dateLayout = "2006-01-02"

// maxReasonableWeek is the highest week number treated as plausible for one
// term. Larger values still convert but raise a warning.
const maxReasonableWeek = 20

// weekToDate returns the date 7*(week-1) days after the semester start, so
// week 1 lands on the start date itself.
func weekToDate(semesterStart time.Time, week int) time.Time {
	return semesterStart.AddDate(0, 0, 7*(week-1))
}

// ConvertWeeksToDates resolves assignment due dates against a semester start
// date in YYYY-MM-DD form. A specific date on an assignment always wins over
// its week number. Assignments with neither are dropped. An unparseable
// start date yields an empty result rather than guessed dates.
func ConvertWeeksToDates(assignments []types.ParsedAssignment, semesterStart string) []types.AssignmentWithDate {
	start, err := time.Parse(dateLayout, semesterStart)
	if err != nil {
		return []types.AssignmentWithDate{}
	}

	resolved := make([]types.AssignmentWithDate, 0, len(assignments))
	for _, a := range assignments {
		due, ok := resolveDueDate(a, start)
		if !ok {
			continue
		}
		resolved = append(resolved, withDate(a, due))
	}
	return resolved
}

// ConvertWeeksToDatesDetailed is the auditable variant: every input
// assignment appears in the output exactly once, in order. Assignments with
// no week and no date fall back to the semester start and raise a warning
// instead of being dropped.
func ConvertWeeksToDatesDetailed(assignments []types.ParsedAssignment, semesterStart string) *types.WeekConversionResult {
	result := &types.WeekConversionResult{
		Assignments: make([]types.AssignmentWithDate, 0, len(assignments)),
		Warnings:    []string{},
	}

	start, err := time.Parse(dateLayout, semesterStart)
	if err != nil {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("Invalid semester start date %q; no dates were resolved", semesterStart))
		return result
	}

	for _, a := range assignments {
		// A specific date carries through as-is; only week references count
		// as conversions.
		if a.SpecificDate != "" {
			result.Assignments = append(result.Assignments, withDate(a, a.SpecificDate))
			continue
		}
		if a.Week >= 1 {
			if a.Week > maxReasonableWeek {
				result.Warnings = append(result.Warnings,
					fmt.Sprintf("%q references week %d, which is outside the usual 1-%d range", a.Title, a.Week, maxReasonableWeek))
			}
			result.Assignments = append(result.Assignments, withDate(a, weekToDate(start, a.Week).Format(dateLayout)))
			result.TotalConverted++
			continue
		}
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("%q has no week number or date; defaulting to the semester start", a.Title))
		result.Assignments = append(result.Assignments, withDate(a, semesterStart))
	}
	return result
}

// resolveDueDate picks the due date for one assignment. Reports false when
// the assignment carries neither a usable week nor a specific date.
func resolveDueDate(a types.ParsedAssignment, start time.Time) (string, bool) {
	if a.SpecificDate != "" {
		return a.SpecificDate, true
	}
	if a.Week >= 1 {
		return weekToDate(start, a.Week).Format(dateLayout), true
	}
	return "", false
}

func withDate(a types.ParsedAssignment, due string) types.AssignmentWithDate {
	return types.AssignmentWithDate{
		Title:                a.Title,
		DueDate:              due,
		OriginalWeek:         a.Week,
		OriginalSpecificDate: a.SpecificDate,
		Type:                 a.Type,
		Description:          a.Description,
		Points:               a.Points,
	}
}
