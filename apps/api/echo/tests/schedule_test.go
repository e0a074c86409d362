package tests

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/devshaki/ShakSite/core/schedule"
)

func selectGroup(t *testing.T, groupID string) {
	t.Helper()
	req, rec := newRequest(http.MethodPut, "/api/schedule/group", marshalObj(t, map[string]string{"group": groupID}))
	app.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("selectGroup(%q): code = %v; body = %s", groupID, rec.Code, rec.Body.String())
	}
}

func Test_scheduleApi_retrieve(t *testing.T) {
	selectGroup(t, "A")

	req, rec := newRequest(http.MethodGet, "/api/schedule")
	app.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("code = %v; body = %s", rec.Code, rec.Body.String())
	}

	var days []schedule.DisplayDay
	if err := json.Unmarshal(rec.Body.Bytes(), &days); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(days) != 1 {
		t.Fatalf("days = %d; want 1", len(days))
	}
	if days[0].Day != "ראשון" || days[0].DayNumber != 0 {
		t.Errorf("unexpected day header: %+v", days[0])
	}
	if len(days[0].Slots) != 3 {
		t.Fatalf("slots = %d; want 3", len(days[0].Slots))
	}
	if !days[0].Slots[1].IsBreak {
		t.Errorf("middle slot should be the break: %+v", days[0].Slots[1])
	}
}

func Test_scheduleApi_retrieve_groupOverride(t *testing.T) {
	selectGroup(t, "A")

	req, rec := newRequest(http.MethodGet, "/api/schedule?group=B")
	app.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("code = %v; body = %s", rec.Code, rec.Body.String())
	}
	var days []schedule.DisplayDay
	if err := json.Unmarshal(rec.Body.Bytes(), &days); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(days) != 1 || days[0].Slots[0].Label != "מדעי המחשב" {
		t.Errorf("override did not serve group B: %+v", days)
	}

	// a one-off override never moves the selection
	if got := view.SelectedGroup(); got != "A" {
		t.Errorf("SelectedGroup() = %q; want A", got)
	}

	tt := httpTest{
		name: "unknown override", wantCode: http.StatusBadRequest,
		wantData: marshalObj(t, map[string]string{"group": "unknown group"}),
	}
	req, rec = newRequest(http.MethodGet, "/api/schedule?group=Z")
	app.ServeHTTP(rec, req)
	checkCodeAndData(t, tt, rec)
}

func Test_scheduleApi_selectGroup(t *testing.T) {
	selectGroup(t, "A")

	tests := []httpTest{
		{
			name: "switch to B", method: http.MethodPut, path: "/api/schedule/group",
			body: marshalObj(t, map[string]string{"group": "B"}), wantCode: http.StatusOK,
			wantData: marshalObj(t, map[string]string{"group": "B"}),
		},
		{
			name: "unknown group", method: http.MethodPut, path: "/api/schedule/group",
			body: marshalObj(t, map[string]string{"group": "Z"}), wantCode: http.StatusBadRequest,
			wantData: marshalObj(t, map[string]string{"group": "unknown group"}),
		},
		{
			name: "missing group", method: http.MethodPut, path: "/api/schedule/group",
			body: marshalObj(t, map[string]string{}), wantCode: http.StatusBadRequest,
			wantData: marshalObj(t, map[string]string{"group": "this field is required"}),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newRequest(tt.method, tt.path, tt.body)
			app.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}

	// the unknown group never became the selection
	if got := view.SelectedGroup(); got != "B" {
		t.Errorf("SelectedGroup() = %q; want B", got)
	}

	// and the switch is visible on the very next schedule read
	req, rec := newRequest(http.MethodGet, "/api/schedule")
	app.ServeHTTP(rec, req)
	var days []schedule.DisplayDay
	if err := json.Unmarshal(rec.Body.Bytes(), &days); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(days) != 1 || days[0].Slots[0].Label != "מדעי המחשב" {
		t.Errorf("schedule did not follow the selection: %+v", days)
	}
}

func Test_scheduleApi_queryGroups(t *testing.T) {
	selectGroup(t, "A")

	tt := httpTest{
		path: "/api/schedule/groups", wantCode: http.StatusOK,
		wantData: marshalList(t,
			map[string]interface{}{"id": "A", "label": "קבוצה א", "selected": true},
			map[string]interface{}{"id": "B", "label": "קבוצה ב", "selected": false},
		),
	}
	req, rec := newRequest(http.MethodGet, tt.path)
	app.ServeHTTP(rec, req)
	checkCodeAndData(t, tt, rec)
}

func Test_scheduleApi_toggleGroup(t *testing.T) {
	selectGroup(t, "A")

	for i, want := range []string{"B", "A", "B"} {
		req, rec := newRequest(http.MethodPost, "/api/schedule/group/toggle")
		app.ServeHTTP(rec, req)
		tt := httpTest{wantCode: http.StatusOK, wantData: marshalObj(t, map[string]string{"group": want})}
		t.Run(fmt.Sprintf("toggle %d", i), func(t *testing.T) { checkCodeAndData(t, tt, rec) })
	}
}

func Test_scheduleApi_setShowOnlyToday(t *testing.T) {
	selectGroup(t, "A")
	defer func() {
		req, rec := newRequest(http.MethodPut, "/api/schedule/today", marshalObj(t, map[string]bool{"showOnlyToday": false}))
		app.ServeHTTP(rec, req)
	}()

	req, rec := newRequest(http.MethodPut, "/api/schedule/today", marshalObj(t, map[string]bool{"showOnlyToday": true}))
	app.ServeHTTP(rec, req)
	checkCodeAndData(t, httpTest{wantCode: http.StatusOK, wantData: marshalObj(t, map[string]bool{"showOnlyToday": true})}, rec)

	req, rec = newRequest(http.MethodGet, "/api/schedule")
	app.ServeHTTP(rec, req)
	var days []schedule.DisplayDay
	if err := json.Unmarshal(rec.Body.Bytes(), &days); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	// the test timetable only schedules Sundays
	today := int(time.Now().Weekday())
	for _, day := range days {
		if day.DayNumber != today {
			t.Errorf("found a day other than today: %+v", day)
		}
	}
}

func Test_scheduleApi_currentPeriod(t *testing.T) {
	selectGroup(t, "A")

	req, rec := newRequest(http.MethodGet, "/api/schedule/current")
	app.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("code = %v; body = %s", rec.Code, rec.Body.String())
	}
	// wall-clock dependent: either null or a well-formed current period
	var cur *schedule.CurrentPeriod
	if err := json.Unmarshal(rec.Body.Bytes(), &cur); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if cur != nil && cur.Day != "ראשון" {
		t.Errorf("unexpected day %q", cur.Day)
	}
}

func Test_scheduleApi_upcomingItems(t *testing.T) {
	resetDB(t)

	soon := time.Now().AddDate(0, 0, 3).Format("2006-01-02")
	farOut := time.Now().AddDate(0, 0, 60).Format("2006-01-02")

	if _, err := examSvc.Create(examNew("בגרות במתמטיקה", soon)); err != nil {
		t.Fatalf("examSvc.Create(): %v", err)
	}
	if _, err := examSvc.Create(examNew("מעבדה", farOut)); err != nil {
		t.Fatalf("examSvc.Create(): %v", err)
	}
	if _, err := taskSvc.Create(taskNew("שיעורי בית", soon)); err != nil {
		t.Fatalf("taskSvc.Create(): %v", err)
	}

	req, rec := newRequest(http.MethodGet, "/api/schedule/upcoming")
	app.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("code = %v; body = %s", rec.Code, rec.Body.String())
	}

	var got struct {
		Exams []struct {
			Subject string `json:"subject"`
		} `json:"exams"`
		Tasks []struct {
			Title string `json:"title"`
		} `json:"tasks"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(got.Exams) != 1 || got.Exams[0].Subject != "בגרות במתמטיקה" {
		t.Errorf("exams = %+v; the out-of-window exam must not appear", got.Exams)
	}
	if len(got.Tasks) != 1 || got.Tasks[0].Title != "שיעורי בית" {
		t.Errorf("tasks = %+v", got.Tasks)
	}
}
