// Package types defines the shared data structures exchanged between the
// document normalizer, the extraction orchestrator, and the week resolver.
package types

// AssignmentType enumerates the kinds of graded events a syllabus can carry.
type AssignmentType string

// Assignment type constants mirror the extraction prompt's enumeration.
const (
	TypeHomework   AssignmentType = "homework"
	TypeExam       AssignmentType = "exam"
	TypeProject    AssignmentType = "project"
	TypeQuiz       AssignmentType = "quiz"
	TypeReading    AssignmentType = "reading"
	TypeLab        AssignmentType = "lab"
	TypeDiscussion AssignmentType = "discussion"
	TypeDeadline   AssignmentType = "deadline"
)

// ValidAssignmentTypes lists every accepted assignment type.
var ValidAssignmentTypes = []AssignmentType{
	TypeHomework, TypeExam, TypeProject, TypeQuiz,
	TypeReading, TypeLab, TypeDiscussion, TypeDeadline,
}

// IsValidAssignmentType reports whether t is a member of the enumeration.
func IsValidAssignmentType(t string) bool {
	for _, v := range ValidAssignmentTypes {
		if string(v) == t {
			return true
		}
	}
	return false
}

// CourseInfo holds the course-level metadata extracted from a syllabus.
type CourseInfo struct {
	Name        string `json:"name"`
	Code        string `json:"code,omitempty"`
	Instructor  string `json:"instructor,omitempty"`
	Semester    string `json:"semester,omitempty"`
	Year        int    `json:"year,omitempty"`
	Description string `json:"description,omitempty"`
}

// ParsedAssignment is a single graded event as reported by the model.
// Week references are preserved as integers; conversion to calendar dates
// happens later in the schedule package.
type ParsedAssignment struct {
	Title        string         `json:"title"`
	Week         int            `json:"week,omitempty"`
	SpecificDate string         `json:"specific_date,omitempty"`
	Type         AssignmentType `json:"type"`
	Description  string         `json:"description,omitempty"`
	Points       float64        `json:"points,omitempty"`
	Percentage   float64        `json:"percentage,omitempty"`
}

// ScheduleEntry describes a recurring class meeting.
type ScheduleEntry struct {
	Day       string `json:"day"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Location  string `json:"location,omitempty"`
	Type      string `json:"type,omitempty"`
}

// ParsingMetadata carries the quality signals for one extraction run.
type ParsingMetadata struct {
	ParsingConfidence float64  `json:"parsing_confidence"`
	WeeksDetected     int      `json:"weeks_detected"`
	OriginalFormat    string   `json:"original_format"`
	Warnings          []string `json:"warnings,omitempty"`
	ProcessingTimeMs  int64    `json:"processing_time,omitempty"`
}

// ParsedSyllabus is the orchestrator's terminal success value.
type ParsedSyllabus struct {
	CourseInfo  CourseInfo         `json:"course_info"`
	Assignments []ParsedAssignment `json:"assignments"`
	Schedule    []ScheduleEntry    `json:"schedule,omitempty"`
	Metadata    ParsingMetadata    `json:"metadata"`
}

// AssignmentWithDate is a ParsedAssignment whose due date has been resolved
// to an absolute calendar date. The original week number and specific date
// are retained for traceability.
type AssignmentWithDate struct {
	Title                string         `json:"title"`
	DueDate              string         `json:"due_date"`
	OriginalWeek         int            `json:"original_week,omitempty"`
	OriginalSpecificDate string         `json:"original_specific_date,omitempty"`
	Type                 AssignmentType `json:"type"`
	Description          string         `json:"description,omitempty"`
	Points               float64        `json:"points,omitempty"`
}

// WeekConversionResult is the detailed resolver output: a strict 1:1 mapping
// from input assignments plus every warning raised along the way.
type WeekConversionResult struct {
	Assignments    []AssignmentWithDate `json:"assignments"`
	Warnings       []string             `json:"warnings"`
	TotalConverted int                  `json:"total_converted"`
}
