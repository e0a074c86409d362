package schedule

import (
	"context"
	"sync"
	"time"

	"github.com/devshaki/ShakSite/core/timetable"
)

// TickInterval is how often watchers re-derive the current period so that
// slot highlighting and countdowns stay accurate without user action. A
// tuning constant, not a correctness requirement; must stay under a minute
// to keep "current slot" highlighting visibly responsive.
const TickInterval = 10 * time.Second

// DefaultGroup is the group shown before anyone picks one.
const DefaultGroup = "A"

// View exposes a live weekly display schedule derived from two externally
// mutable cells: the selected group and a "show only today" toggle. Every
// read re-derives from the timetable definition, so switching groups is
// reflected immediately; nothing is cached across reads.
type View struct {
	svc *Service
	now func() time.Time

	mu            sync.RWMutex
	groupID       string
	showOnlyToday bool
}

func NewView(svc *Service, defaultGroup string) *View {
	return &View{
		svc:     svc,
		now:     time.Now,
		groupID: defaultGroup,
	}
}

// Groups exposes the selectable groups of the underlying definition.
func (v *View) Groups() []timetable.Group {
	return v.svc.Groups()
}

func (v *View) SelectedGroup() string {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.groupID
}

func (v *View) SelectGroup(groupID string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.groupID = groupID
}

// ToggleGroup advances the selection to the next group of the definition,
// wrapping around (A -> B -> A for the usual two-group setup).
func (v *View) ToggleGroup() string {
	v.mu.Lock()
	defer v.mu.Unlock()

	groups := v.svc.Groups()
	for i, g := range groups {
		if g.ID == v.groupID {
			v.groupID = groups[(i+1)%len(groups)].ID
			return v.groupID
		}
	}
	if len(groups) > 0 {
		v.groupID = groups[0].ID
	}
	return v.groupID
}

func (v *View) ShowOnlyToday() bool {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.showOnlyToday
}

func (v *View) SetShowOnlyToday(only bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.showOnlyToday = only
}

// Schedule returns the display schedule for the current selection: the full
// week, or just today's DisplayDay when the toggle is set.
func (v *View) Schedule() []DisplayDay {
	return v.ScheduleFor(v.SelectedGroup())
}

// ScheduleFor returns the display schedule of the given group without
// touching the selection. The today-toggle still applies.
func (v *View) ScheduleFor(groupID string) []DisplayDay {
	v.mu.RLock()
	onlyToday := v.showOnlyToday
	v.mu.RUnlock()

	days := v.svc.DisplaySchedule(groupID)
	if !onlyToday {
		return days
	}

	today := int(v.now().Weekday())
	filtered := make([]DisplayDay, 0, 1)
	for _, day := range days {
		if day.DayNumber == today {
			filtered = append(filtered, day)
		}
	}
	return filtered
}

// CurrentPeriod resolves the current period for the selected group at
// wall-clock now.
func (v *View) CurrentPeriod() *CurrentPeriod {
	return v.svc.CurrentPeriodAt(v.SelectedGroup(), v.now())
}

// Watch invokes fn with a freshly computed current period immediately and
// then on every tick until ctx is done. Each tick is an independent
// synchronous computation; there is no shared state to go stale.
func (v *View) Watch(ctx context.Context, interval time.Duration, fn func(*CurrentPeriod)) {
	fn(v.CurrentPeriod())

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			fn(v.CurrentPeriod())
		}
	}
}
