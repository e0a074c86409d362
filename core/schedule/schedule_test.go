package schedule

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devshaki/ShakSite/core/timetable"
)

// capturingLogger records warnings so tests can assert on degradations.
type capturingLogger struct {
	warnings []string
}

func (l *capturingLogger) Debug(msg string, args ...interface{}) {}
func (l *capturingLogger) Info(msg string, args ...interface{})  {}
func (l *capturingLogger) Warn(msg string, args ...interface{})  { l.warnings = append(l.warnings, msg) }
func (l *capturingLogger) Error(msg string, args ...interface{}) {}
func (l *capturingLogger) Fatal(msg string, args ...interface{}) { panic(fmt.Sprint(msg, args)) }

func testTimetable() *timetable.Timetable {
	return &timetable.Timetable{
		PeriodTemplates: []timetable.PeriodTemplate{
			{ID: "std", Periods: []timetable.Period{
				{ID: "P1", Start: "08:00", End: "08:45"},
				{ID: "B1", Start: "08:45", End: "09:00"},
				{ID: "P2", Start: "09:00", End: "09:45"},
				{ID: "P3", Start: "09:50", End: "10:35"},
			}},
			{ID: "gapped", Periods: []timetable.Period{
				{ID: "P1", Start: "08:00", End: "09:00"},
				{ID: "P2", Start: "09:15", End: "10:00"},
			}},
		},
		Classes: map[string]timetable.ClassDef{
			"MATH":  {Subject: "מתמטיקה", Teacher: "כהן"},
			"CS":    {Subject: "מדעי המחשב", Teacher: "לוי"},
			"BREAK": {Subject: "הפסקה"},
		},
		Groups: []timetable.Group{
			{ID: "A", TemplateID: "std", Week: []timetable.DaySchedule{
				{Day: timetable.Sunday, Classes: []timetable.ScheduleEntry{
					{PeriodID: "P1", ClassID: "MATH", Room: "101"},
					{PeriodID: "B1", ClassID: "BREAK"},
					{PeriodID: "P2", ClassID: "CS"},
				}},
				{Day: timetable.Monday, Classes: []timetable.ScheduleEntry{
					{PeriodID: "P1", ClassID: "CS"},
				}},
			}},
			{ID: "B", TemplateID: "gapped", Week: []timetable.DaySchedule{
				{Day: timetable.Sunday, Classes: []timetable.ScheduleEntry{
					{PeriodID: "P1", ClassID: "MATH"},
					{PeriodID: "P2", ClassID: "CS"},
				}},
			}},
			{ID: "broken", TemplateID: "missing"},
		},
	}
}

func newTestService() (*Service, *capturingLogger) {
	logger := &capturingLogger{}
	return NewService(testTimetable(), logger), logger
}

func TestService_BuildDisplaySlots(t *testing.T) {
	svc, logger := newTestService()
	tt := svc.timetable

	group, _ := tt.Group("A")
	day := group.Week[0] // sunday

	slots := svc.BuildDisplaySlots(group, day)
	require.Len(t, slots, 4, "every template period yields at most one slot")

	// template order is the time axis
	assert.Equal(t, "08:00", slots[0].Start)
	assert.Equal(t, "מתמטיקה", slots[0].Label)
	assert.Equal(t, "101", slots[0].Room)
	assert.False(t, slots[0].IsBreak)

	// break via period id convention and explicit break class
	assert.True(t, slots[1].IsBreak)
	assert.Equal(t, "הפסקה", slots[1].Label)

	assert.Equal(t, "מדעי המחשב", slots[2].Label)

	// unassigned period renders as an aligned empty slot
	assert.Equal(t, "09:50", slots[3].Start)
	assert.Empty(t, slots[3].Label)
	assert.Nil(t, slots[3].ClassInfo)
	assert.False(t, slots[3].IsBreak)

	assert.Empty(t, logger.warnings)
}

func TestService_BuildDisplaySlots_unassignedBreakPeriod(t *testing.T) {
	logger := &capturingLogger{}
	tt := &timetable.Timetable{
		PeriodTemplates: []timetable.PeriodTemplate{
			{ID: "t", Periods: []timetable.Period{
				{ID: "P1", Start: "08:30", End: "09:15"},
				{ID: "B1", Start: "09:15", End: "09:30"},
				{ID: "P2", Start: "09:30", End: "10:15"},
			}},
		},
		Classes: map[string]timetable.ClassDef{"MATH": {Subject: "מתמטיקה"}},
		Groups:  []timetable.Group{{ID: "A", TemplateID: "t"}},
	}
	svc := NewService(tt, logger)
	group, _ := tt.Group("A")
	day := timetable.DaySchedule{Day: timetable.Sunday, Classes: []timetable.ScheduleEntry{
		{PeriodID: "P1", ClassID: "MATH"},
	}}

	slots := svc.BuildDisplaySlots(group, day)
	require.Len(t, slots, 3)
	assert.Equal(t, "מתמטיקה", slots[0].Label)
	// the break marking comes from the period id alone, assigned or not
	assert.True(t, slots[1].IsBreak)
	assert.Empty(t, slots[1].Label)
	assert.Nil(t, slots[1].ClassInfo)
	assert.False(t, slots[2].IsBreak)
	assert.Empty(t, logger.warnings)
}

func TestService_BuildDisplaySlots_unknownClassDropsPeriod(t *testing.T) {
	svc, logger := newTestService()
	group, _ := svc.timetable.Group("A")
	day := timetable.DaySchedule{Day: timetable.Sunday, Classes: []timetable.ScheduleEntry{
		{PeriodID: "P1", ClassID: "NOPE"},
		{PeriodID: "P2", ClassID: "CS"},
	}}

	slots := svc.BuildDisplaySlots(group, day)
	require.Len(t, slots, 3, "the period with the unresolved class must vanish, not render empty")
	assert.Equal(t, "08:45", slots[0].Start) // B1 unassigned, empty break
	assert.True(t, slots[0].IsBreak)
	assert.Equal(t, "מדעי המחשב", slots[1].Label)
	assert.Len(t, logger.warnings, 1)
}

func TestService_BuildDisplaySlots_missingTemplate(t *testing.T) {
	svc, logger := newTestService()
	group, _ := svc.timetable.Group("broken")

	slots := svc.BuildDisplaySlots(group, timetable.DaySchedule{Day: timetable.Sunday})
	assert.Empty(t, slots)
	assert.Len(t, logger.warnings, 1)
}

func TestService_BuildDisplaySlots_duplicatePeriodLastWins(t *testing.T) {
	svc, _ := newTestService()
	group, _ := svc.timetable.Group("A")
	day := timetable.DaySchedule{Day: timetable.Sunday, Classes: []timetable.ScheduleEntry{
		{PeriodID: "P1", ClassID: "MATH"},
		{PeriodID: "P1", ClassID: "CS"},
	}}

	slots := svc.BuildDisplaySlots(group, day)
	require.NotEmpty(t, slots)
	assert.Equal(t, "מדעי המחשב", slots[0].Label)
}

func TestService_DisplaySchedule(t *testing.T) {
	svc, logger := newTestService()

	days := svc.DisplaySchedule("A")
	require.Len(t, days, 2)
	assert.Equal(t, "ראשון", days[0].Day)
	assert.Equal(t, 0, days[0].DayNumber)
	assert.Equal(t, "שני", days[1].Day)

	assert.Empty(t, svc.DisplaySchedule("nope"))
	assert.Len(t, logger.warnings, 1)
}

func TestService_CurrentPeriodAt(t *testing.T) {
	svc, _ := newTestService()

	// 2024-01-07 is a Sunday
	sundayAt := func(hour, min int) time.Time {
		return time.Date(2024, 1, 7, hour, min, 0, 0, time.Local)
	}

	t.Run("inside a class", func(t *testing.T) {
		cur := svc.CurrentPeriodAt("A", sundayAt(8, 20))
		require.NotNil(t, cur)
		assert.Equal(t, "מתמטיקה", cur.TimeSlot.Label)
		assert.Equal(t, "ראשון", cur.Day)
		assert.Equal(t, 25, cur.MinutesUntilEnd)
		require.NotNil(t, cur.NextBreak)
		assert.Equal(t, "08:45", cur.NextBreak.Start)
		require.NotNil(t, cur.MinutesUntilBreak)
		assert.Equal(t, 25, *cur.MinutesUntilBreak)
	})

	t.Run("start boundary is inclusive, end exclusive", func(t *testing.T) {
		cur := svc.CurrentPeriodAt("A", sundayAt(8, 0))
		require.NotNil(t, cur)
		assert.Equal(t, 45, cur.MinutesUntilEnd)

		cur = svc.CurrentPeriodAt("A", sundayAt(8, 45))
		require.NotNil(t, cur)
		assert.True(t, cur.TimeSlot.IsBreak, "at 08:45 the break owns the moment")
	})

	t.Run("no slot contains now", func(t *testing.T) {
		assert.Nil(t, svc.CurrentPeriodAt("A", sundayAt(12, 0)))
		assert.Nil(t, svc.CurrentPeriodAt("A", sundayAt(6, 0)))
	})

	t.Run("unscheduled day", func(t *testing.T) {
		saturday := time.Date(2024, 1, 6, 9, 0, 0, 0, time.Local)
		assert.Nil(t, svc.CurrentPeriodAt("A", saturday))
	})

	t.Run("unknown group", func(t *testing.T) {
		assert.Nil(t, svc.CurrentPeriodAt("nope", sundayAt(8, 20)))
	})

	t.Run("gap between periods becomes a break", func(t *testing.T) {
		cur := svc.CurrentPeriodAt("B", sundayAt(8, 30))
		require.NotNil(t, cur)
		assert.Equal(t, 30, cur.MinutesUntilEnd)
		require.NotNil(t, cur.NextBreak)
		assert.True(t, cur.NextBreak.IsBreak)
		assert.Equal(t, "09:00", cur.NextBreak.Start)
		assert.Equal(t, "09:15", cur.NextBreak.End)
		assert.Equal(t, "הפסקה", cur.NextBreak.Label)
		require.NotNil(t, cur.MinutesUntilBreak)
		assert.Equal(t, 30, *cur.MinutesUntilBreak)
	})

	t.Run("last slot has no next break", func(t *testing.T) {
		cur := svc.CurrentPeriodAt("B", sundayAt(9, 30))
		require.NotNil(t, cur)
		assert.Nil(t, cur.NextBreak)
		assert.Nil(t, cur.MinutesUntilBreak)
	})
}

func Test_timeToMinutes(t *testing.T) {
	assert.Equal(t, 0, timeToMinutes("00:00"))
	assert.Equal(t, 8*60+45, timeToMinutes("08:45"))
	assert.Equal(t, 23*60+59, timeToMinutes("23:59"))
}
