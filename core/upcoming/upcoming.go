// Package upcoming selects the exams and tasks worth previewing on the
// schedule grid: exams inside the lookahead window, incomplete tasks ordered
// by priority then due date. It is independent of the timetable engine but
// shares its "bad data never throws" stance: unparseable dates are treated
// as infinitely far in the future.
package upcoming

import (
	"math"
	"sort"
	"time"

	"github.com/devshaki/ShakSite/core/exam"
	"github.com/devshaki/ShakSite/core/task"
)

const (
	// ExamLookaheadDays is the upcoming window: [today, today+30d] inclusive.
	ExamLookaheadDays = 30
	// MaxItemsToDisplay bounds both previews.
	MaxItemsToDisplay = 5
)

// acceptable ISO date layouts, most specific first
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// DateValue converts an ISO date string to a numeric millisecond timestamp.
// Empty or unparseable input yields +Inf, never an error: bad dates sort
// last and fall outside any window.
func DateValue(date string) float64 {
	t, ok := parseDate(date)
	if !ok {
		return math.Inf(1)
	}
	return float64(t.UnixMilli())
}

func parseDate(date string) (time.Time, bool) {
	if date == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, date, time.Local); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// StartOfDay truncates t to local midnight.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// WithinDateRange reports whether date falls on or between start and end,
// compared at day precision (time-of-day ignored). Unparseable dates are
// never within any range.
func WithinDateRange(date string, start, end time.Time) bool {
	t, ok := parseDate(date)
	if !ok {
		return false
	}
	day := StartOfDay(t)
	return !day.Before(start) && !day.After(end)
}

// CompareTasks orders tasks by priority (high first) and then by due date
// (earliest first); 0 means equal, ties keep their original relative order
// under a stable sort.
func CompareTasks(first, second task.Task) int {
	if diff := task.PriorityRank(first.Priority) - task.PriorityRank(second.Priority); diff != 0 {
		return diff
	}
	firstDue, secondDue := DateValue(first.DueDate), DateValue(second.DueDate)
	switch {
	case firstDue < secondDue:
		return -1
	case firstDue > secondDue:
		return 1
	}
	return 0
}

// Service aggregates the exam and task collections into bounded, sorted
// previews. Each fetch fails independently; a failed exam query never blocks
// the task preview.
type Service struct {
	exams *exam.Service
	tasks *task.Service
}

func NewService(exams *exam.Service, tasks *task.Service) *Service {
	return &Service{exams: exams, tasks: tasks}
}

// UpcomingExams returns at most MaxItemsToDisplay exams dated inside
// [startOfToday, startOfToday+ExamLookaheadDays], soonest first.
func (svc *Service) UpcomingExams(now time.Time) ([]exam.Exam, error) {
	all, err := svc.exams.QueryAll()
	if err != nil {
		return nil, err
	}

	today := StartOfDay(now)
	windowEnd := today.AddDate(0, 0, ExamLookaheadDays)

	upcoming := make([]exam.Exam, 0, len(all))
	for _, ex := range all {
		if WithinDateRange(ex.Date, today, windowEnd) {
			upcoming = append(upcoming, ex)
		}
	}
	sort.SliceStable(upcoming, func(i, j int) bool {
		return DateValue(upcoming[i].Date) < DateValue(upcoming[j].Date)
	})
	if len(upcoming) > MaxItemsToDisplay {
		upcoming = upcoming[:MaxItemsToDisplay]
	}
	return upcoming, nil
}

// PendingTasks returns at most MaxItemsToDisplay incomplete tasks, highest
// priority first, then earliest due date.
func (svc *Service) PendingTasks() ([]task.Task, error) {
	all, err := svc.tasks.QueryAll()
	if err != nil {
		return nil, err
	}

	pending := make([]task.Task, 0, len(all))
	for _, t := range all {
		if !t.Completed {
			pending = append(pending, t)
		}
	}
	sort.SliceStable(pending, func(i, j int) bool { return CompareTasks(pending[i], pending[j]) < 0 })
	if len(pending) > MaxItemsToDisplay {
		pending = pending[:MaxItemsToDisplay]
	}
	return pending, nil
}
