package schedule

import (
	"fmt"
	"time"

	"github.com/devshaki/ShakSite/core"
	"github.com/devshaki/ShakSite/core/timetable"
)

// breakLabel is the display label of synthesized breaks.
const breakLabel = "הפסקה"

type (
	// DisplaySlot is one time period for one day, resolved to either a class
	// occupancy or emptiness. Derived data; rebuilt on every computation.
	DisplaySlot struct {
		Start     string              `json:"start"`
		End       string              `json:"end"`
		IsBreak   bool                `json:"isBreak"`
		Label     string              `json:"label"`
		ClassInfo *timetable.ClassDef `json:"classInfo,omitempty"`
		Room      string              `json:"room,omitempty"`
		Notes     string              `json:"notes,omitempty"`
	}

	// DisplayDay is one day's resolved slot sequence.
	DisplayDay struct {
		Day       string        `json:"day"` // Hebrew display name
		DayNumber int           `json:"dayNumber"`
		Slots     []DisplaySlot `json:"slots"`
	}

	// CurrentPeriod is the display slot containing "now" plus countdown and
	// next-break metadata.
	CurrentPeriod struct {
		TimeSlot          DisplaySlot  `json:"timeSlot"`
		Day               string       `json:"day"`
		MinutesUntilEnd   int          `json:"minutesUntilEnd"`
		NextBreak         *DisplaySlot `json:"nextBreak,omitempty"`
		MinutesUntilBreak *int         `json:"minutesUntilBreak,omitempty"`
	}
)

// Service resolves the static timetable definition into display schedules
// and current-period state. All methods are pure reads over the definition;
// a Service is safe for concurrent use.
type Service struct {
	timetable *timetable.Timetable
	logger    core.Logger
}

func NewService(t *timetable.Timetable, logger core.Logger) *Service {
	return &Service{timetable: t, logger: logger}
}

// Groups returns the selectable groups of the timetable definition.
func (svc *Service) Groups() []timetable.Group {
	return svc.timetable.Groups
}

// BuildDisplaySlots merges the group's period template with one day's class
// assignments into an ordered slot sequence. Template order is the canonical
// time axis; a missing template yields an empty sequence, and entries whose
// classId is not in the class map drop their period from the output entirely
// (rendering them empty would shift visible slot alignment).
func (svc *Service) BuildDisplaySlots(group timetable.Group, day timetable.DaySchedule) []DisplaySlot {
	tmpl, ok := svc.timetable.Template(group.TemplateID)
	if !ok {
		svc.logger.Warn(fmt.Sprintf("group %q references unknown period template %q", group.ID, group.TemplateID))
		return []DisplaySlot{}
	}

	// last write wins on duplicate periodId
	scheduled := make(map[string]timetable.ScheduleEntry, len(day.Classes))
	for _, entry := range day.Classes {
		scheduled[entry.PeriodID] = entry
	}

	slots := make([]DisplaySlot, 0, len(tmpl.Periods))
	for _, period := range tmpl.Periods {
		entry, assigned := scheduled[period.ID]
		if !assigned {
			// empty slot keeps the time axis aligned; a break period stays
			// marked as one even with nothing assigned to it
			slots = append(slots, DisplaySlot{
				Start:   period.Start,
				End:     period.End,
				IsBreak: timetable.IsBreakPeriod(period.ID),
				Label:   "",
			})
			continue
		}

		cls, ok := svc.timetable.Class(entry.ClassID)
		if !ok {
			svc.logger.Warn(fmt.Sprintf("group %q, %s: period %q assigned unknown class %q", group.ID, day.Day, period.ID, entry.ClassID))
			continue
		}
		classInfo := cls // fresh copy per slot, no aliasing into the definition
		slots = append(slots, DisplaySlot{
			Start:     period.Start,
			End:       period.End,
			IsBreak:   timetable.IsBreakPeriod(period.ID) || entry.ClassID == timetable.BreakClassID,
			Label:     classInfo.Subject,
			ClassInfo: &classInfo,
			Room:      entry.Room,
			Notes:     entry.Notes,
		})
	}
	return slots
}

// DisplaySchedule resolves the full week of the given group. An unknown
// group yields an empty schedule.
func (svc *Service) DisplaySchedule(groupID string) []DisplayDay {
	group, ok := svc.timetable.Group(groupID)
	if !ok {
		svc.logger.Warn(fmt.Sprintf("unknown group %q", groupID))
		return []DisplayDay{}
	}

	days := make([]DisplayDay, 0, len(group.Week))
	for _, day := range group.Week {
		days = append(days, DisplayDay{
			Day:       day.Day.Hebrew(),
			DayNumber: day.Day.Number(),
			Slots:     svc.BuildDisplaySlots(group, day),
		})
	}
	return days
}

// CurrentPeriodAt locates the slot containing now within the group's
// schedule and derives countdown and next-break data. The weekday and HH:MM
// time are taken in now's location; callers pass wall-clock time.Now() so the
// process local zone applies. Returns nil when today is not scheduled or no
// slot contains now (lunch, evening, day off).
func (svc *Service) CurrentPeriodAt(groupID string, now time.Time) *CurrentPeriod {
	currentDay := int(now.Weekday()) // 0=Sunday .. 6=Saturday
	currentTime := now.Format("15:04")

	var daySchedule *DisplayDay
	for _, day := range svc.DisplaySchedule(groupID) {
		if day.DayNumber == currentDay {
			day := day
			daySchedule = &day
			break
		}
	}
	if daySchedule == nil {
		return nil
	}

	slots := daySchedule.Slots
	for i, slot := range slots {
		// zero-padded fixed-width HH:MM makes lexicographic comparison valid
		if !(slot.Start <= currentTime && currentTime < slot.End) {
			continue
		}
		currentMinutes := timeToMinutes(currentTime)
		current := &CurrentPeriod{
			TimeSlot:        slot,
			Day:             daySchedule.Day,
			MinutesUntilEnd: timeToMinutes(slot.End) - currentMinutes,
		}

		for j := i + 1; j < len(slots); j++ {
			if slots[j].IsBreak {
				next := slots[j]
				minutes := timeToMinutes(next.Start) - currentMinutes
				current.NextBreak = &next
				current.MinutesUntilBreak = &minutes
				break
			}
		}

		// no explicit break ahead: a gap to the following slot is one
		if current.NextBreak == nil && i+1 < len(slots) {
			nextSlot := slots[i+1]
			if timeToMinutes(nextSlot.Start)-timeToMinutes(slot.End) > 0 {
				minutes := timeToMinutes(slot.End) - currentMinutes
				current.NextBreak = &DisplaySlot{
					Start:   slot.End,
					End:     nextSlot.Start,
					IsBreak: true,
					Label:   breakLabel,
				}
				current.MinutesUntilBreak = &minutes
			}
		}
		return current
	}
	return nil
}

func timeToMinutes(hhmm string) int {
	var hours, minutes int
	_, _ = fmt.Sscanf(hhmm, "%d:%d", &hours, &minutes)
	return hours*60 + minutes
}
