package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestView() *View {
	svc, _ := newTestService()
	v := NewView(svc, "A")
	v.now = func() time.Time { return time.Date(2024, 1, 7, 8, 20, 0, 0, time.Local) } // Sunday
	return v
}

func TestView_SelectGroup(t *testing.T) {
	v := newTestView()
	assert.Equal(t, "A", v.SelectedGroup())

	// switching takes effect on the very next read
	v.SelectGroup("B")
	assert.Equal(t, "B", v.SelectedGroup())
	days := v.Schedule()
	require.Len(t, days, 1)
	require.Len(t, days[0].Slots, 2)
	assert.Equal(t, "09:00", days[0].Slots[0].End)
}

func TestView_ScheduleFor(t *testing.T) {
	v := newTestView()

	days := v.ScheduleFor("B")
	require.Len(t, days, 1)
	require.Len(t, days[0].Slots, 2)
	assert.Equal(t, "A", v.SelectedGroup(), "a one-off read must not move the selection")

	// the today filter applies to one-off reads too
	v.SetShowOnlyToday(true)
	v.now = func() time.Time { return time.Date(2024, 1, 9, 8, 20, 0, 0, time.Local) } // Tuesday
	assert.Empty(t, v.ScheduleFor("B"))
}

func TestView_ToggleGroup(t *testing.T) {
	v := newTestView()
	assert.Equal(t, "B", v.ToggleGroup())
	assert.Equal(t, "broken", v.ToggleGroup())
	assert.Equal(t, "A", v.ToggleGroup(), "toggling wraps around")

	// an out-of-definition selection snaps back to the first group
	v.SelectGroup("ghost")
	assert.Equal(t, "A", v.ToggleGroup())
}

func TestView_Schedule_showOnlyToday(t *testing.T) {
	v := newTestView()
	require.Len(t, v.Schedule(), 2)

	v.SetShowOnlyToday(true)
	assert.True(t, v.ShowOnlyToday())
	days := v.Schedule()
	require.Len(t, days, 1)
	assert.Equal(t, 0, days[0].DayNumber)

	// today not in the week: nothing to show
	v.now = func() time.Time { return time.Date(2024, 1, 9, 8, 20, 0, 0, time.Local) } // Tuesday
	assert.Empty(t, v.Schedule())

	v.SetShowOnlyToday(false)
	assert.Len(t, v.Schedule(), 2)
}

func TestView_CurrentPeriod(t *testing.T) {
	v := newTestView()
	cur := v.CurrentPeriod()
	require.NotNil(t, cur)
	assert.Equal(t, "מתמטיקה", cur.TimeSlot.Label)

	// the selection change flows into the very next computation
	v.SelectGroup("B")
	cur = v.CurrentPeriod()
	require.NotNil(t, cur)
	assert.Equal(t, "09:00", cur.TimeSlot.End)
}

func TestView_Watch(t *testing.T) {
	v := newTestView()

	ctx, cancel := context.WithCancel(context.Background())
	calls := make(chan *CurrentPeriod, 8)
	done := make(chan struct{})
	go func() {
		v.Watch(ctx, time.Millisecond, func(cur *CurrentPeriod) {
			select {
			case calls <- cur:
			default:
			}
		})
		close(done)
	}()

	// immediate call plus at least one tick
	for i := 0; i < 2; i++ {
		select {
		case cur := <-calls:
			require.NotNil(t, cur)
		case <-time.After(time.Second):
			t.Fatal("Watch() did not fire in time")
		}
	}

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Watch() did not stop on ctx cancellation")
	}
}
