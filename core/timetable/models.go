package timetable

import "strings"

// DayOfWeek is the lowercase English weekday name used by the timetable
// definition ("sunday" .. "saturday").
type DayOfWeek string

const (
	Sunday    DayOfWeek = "sunday"
	Monday    DayOfWeek = "monday"
	Tuesday   DayOfWeek = "tuesday"
	Wednesday DayOfWeek = "wednesday"
	Thursday  DayOfWeek = "thursday"
	Friday    DayOfWeek = "friday"
	Saturday  DayOfWeek = "saturday"
)

// BreakClassID marks an explicit break assignment in a day's classes.
const BreakClassID = "BREAK"

// breakPeriodPrefix marks break periods by id convention ("B1", "B2", ...).
const breakPeriodPrefix = "B"

var dayInfo = map[DayOfWeek]struct {
	Hebrew string
	Number int
}{
	Sunday:    {"ראשון", 0},
	Monday:    {"שני", 1},
	Tuesday:   {"שלישי", 2},
	Wednesday: {"רביעי", 3},
	Thursday:  {"חמישי", 4},
	Friday:    {"שישי", 5},
	Saturday:  {"שבת", 6},
}

func (d DayOfWeek) Valid() bool {
	_, ok := dayInfo[d]
	return ok
}

// Number returns the weekday number, 0=Sunday .. 6=Saturday. -1 for unknown days.
func (d DayOfWeek) Number() int {
	if info, ok := dayInfo[d]; ok {
		return info.Number
	}
	return -1
}

// Hebrew returns the display name of the day in the app locale.
func (d DayOfWeek) Hebrew() string {
	return dayInfo[d].Hebrew
}

type (
	// Period is one time slot of a template. Start/End are zero-padded
	// "HH:MM" strings; within a template, periods are ordered by start time
	// and that ordering defines the slot sequence.
	Period struct {
		ID    string `json:"id" validate:"required"`
		Name  string `json:"name,omitempty"`
		Start string `json:"start" validate:"required,hhmm"`
		End   string `json:"end" validate:"required,hhmm"`
	}

	// PeriodTemplate is a named ordered list of periods shared by one or more groups.
	PeriodTemplate struct {
		ID      string   `json:"id" validate:"required"`
		Label   string   `json:"label"`
		Periods []Period `json:"periods" validate:"required,dive"`
	}

	// ClassDef is immutable reference data for one class, keyed by classId.
	ClassDef struct {
		Subject string `json:"subject" validate:"required"`
		Teacher string `json:"teacher"`
		Color   string `json:"color"`
	}

	// ScheduleEntry assigns a class to one period slot on one day.
	ScheduleEntry struct {
		PeriodID string `json:"periodId" validate:"required"`
		ClassID  string `json:"classId" validate:"required"`
		Room     string `json:"room,omitempty"`
		Notes    string `json:"notes,omitempty"`
	}

	DaySchedule struct {
		Day     DayOfWeek       `json:"day"`
		Classes []ScheduleEntry `json:"classes" validate:"dive"`
	}

	// Group is a cohort with its own weekly class assignments bound to one
	// period template. Week need not cover all seven days.
	Group struct {
		ID         string        `json:"id" validate:"required"`
		Label      string        `json:"label"`
		TemplateID string        `json:"templateId" validate:"required"`
		Week       []DaySchedule `json:"week" validate:"dive"`
	}

	// Timetable is the process-wide, read-only schedule definition.
	Timetable struct {
		Version         string              `json:"version"`
		PeriodTemplates []PeriodTemplate    `json:"periodTemplates" validate:"required,dive"`
		Classes         map[string]ClassDef `json:"classes" validate:"required,dive"`
		Groups          []Group             `json:"groups" validate:"required,dive"`
	}
)

// IsBreakPeriod reports whether periodID marks a break by id convention.
func IsBreakPeriod(periodID string) bool {
	return strings.HasPrefix(periodID, breakPeriodPrefix)
}

// Group returns the group with the given id.
func (t *Timetable) Group(id string) (Group, bool) {
	for _, g := range t.Groups {
		if g.ID == id {
			return g, true
		}
	}
	return Group{}, false
}

// Template returns the period template with the given id.
func (t *Timetable) Template(id string) (PeriodTemplate, bool) {
	for _, tmpl := range t.PeriodTemplates {
		if tmpl.ID == id {
			return tmpl, true
		}
	}
	return PeriodTemplate{}, false
}

// Period returns a single period of a template.
func (t *Timetable) Period(templateID, periodID string) (Period, bool) {
	tmpl, ok := t.Template(templateID)
	if !ok {
		return Period{}, false
	}
	for _, p := range tmpl.Periods {
		if p.ID == periodID {
			return p, true
		}
	}
	return Period{}, false
}

// Class resolves a classId against the global class map.
func (t *Timetable) Class(classID string) (ClassDef, bool) {
	cls, ok := t.Classes[classID]
	return cls, ok
}
