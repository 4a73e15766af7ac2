package extraction

import (
	"fmt"

	"github.com/jonathan/syllabus-agent/internal/types"
)

// QualityReport summarizes how usable a parsed syllabus is, with concrete
// pointers for improving a weak extraction.
type QualityReport struct {
	Score       float64  `json:"score"`
	Strengths   []string `json:"strengths"`
	Suggestions []string `json:"suggestions"`
}

// AnalyzeQuality inspects a parsed syllabus and produces a quality report.
// The score starts from the model's own confidence and is adjusted by what
// was actually extracted.
func AnalyzeQuality(syllabus *types.ParsedSyllabus) QualityReport {
	report := QualityReport{Score: syllabus.Metadata.ParsingConfidence}

	if syllabus.CourseInfo.Name != "" {
		report.Strengths = append(report.Strengths, "Course name identified")
	}
	if syllabus.CourseInfo.Instructor != "" {
		report.Strengths = append(report.Strengths, "Instructor identified")
	} else {
		report.Suggestions = append(report.Suggestions, "Instructor name was not found; check the syllabus header")
	}

	withWeeks := 0
	withDates := 0
	for _, a := range syllabus.Assignments {
		if a.Week > 0 {
			withWeeks++
		}
		if a.SpecificDate != "" {
			withDates++
		}
	}

	switch {
	case len(syllabus.Assignments) == 0:
		report.Score -= 0.2
		report.Suggestions = append(report.Suggestions, "No assignments were extracted; the schedule section may be unstructured")
	default:
		report.Strengths = append(report.Strengths, fmt.Sprintf("%d assignments extracted", len(syllabus.Assignments)))
		if withWeeks > 0 {
			report.Strengths = append(report.Strengths, fmt.Sprintf("%d assignments carry week numbers", withWeeks))
		}
		if withWeeks == 0 && withDates == 0 {
			report.Score -= 0.1
			report.Suggestions = append(report.Suggestions, "No week numbers or dates found on assignments; due dates cannot be resolved")
		}
	}

	if len(syllabus.Schedule) > 0 {
		report.Strengths = append(report.Strengths, "Class meeting schedule extracted")
	}
	if len(syllabus.Metadata.Warnings) > 0 {
		report.Suggestions = append(report.Suggestions, fmt.Sprintf("Review %d parser warnings before trusting the output", len(syllabus.Metadata.Warnings)))
	}

	if report.Score < 0 {
		report.Score = 0
	}
	if report.Score > 1 {
		report.Score = 1
	}
	return report
}
