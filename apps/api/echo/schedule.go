package echoapi

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/devshaki/ShakSite/core"
	"github.com/devshaki/ShakSite/core/exam"
	"github.com/devshaki/ShakSite/core/schedule"
	"github.com/devshaki/ShakSite/core/task"
	"github.com/devshaki/ShakSite/core/upcoming"
)

type scheduleApi struct {
	view        *schedule.View
	upcomingSvc *upcoming.Service
	logger      core.Logger
}

func registerScheduleAPI(g *echo.Group, view *schedule.View, upcomingSvc *upcoming.Service, logger core.Logger) {
	api := scheduleApi{
		view:        view,
		upcomingSvc: upcomingSvc,
		logger:      logger,
	}

	sg := g.Group("/schedule")
	sg.GET("", api.retrieve)
	sg.GET("/current", api.currentPeriod)
	sg.GET("/groups", api.queryGroups)
	sg.GET("/upcoming", api.upcomingItems)
	sg.PUT("/group", api.selectGroup)
	sg.POST("/group/toggle", api.toggleGroup)
	sg.PUT("/today", api.setShowOnlyToday)
}

// Handlers

// retrieve serves the week of the selected group, or of the ?group=
// override without touching the selection.
func (api *scheduleApi) retrieve(ctx echo.Context) error {
	if groupID := ctx.QueryParam("group"); groupID != "" {
		for _, g := range api.view.Groups() {
			if g.ID == groupID {
				return ctx.JSON(http.StatusOK, api.view.ScheduleFor(g.ID))
			}
		}
		return core.NewValidationError(nil, core.FieldError{Field: "group", Error: "unknown group"})
	}
	return ctx.JSON(http.StatusOK, api.view.Schedule())
}

func (api *scheduleApi) currentPeriod(ctx echo.Context) error {
	// JSON "null" when nothing is scheduled right now
	return ctx.JSON(http.StatusOK, api.view.CurrentPeriod())
}

func (api *scheduleApi) queryGroups(ctx echo.Context) error {
	type groupInfo struct {
		ID       string `json:"id"`
		Label    string `json:"label"`
		Selected bool   `json:"selected"`
	}

	selected := api.view.SelectedGroup()
	groups := make([]groupInfo, 0, 2)
	for _, g := range api.view.Groups() {
		groups = append(groups, groupInfo{ID: g.ID, Label: g.Label, Selected: g.ID == selected})
	}
	return ctx.JSON(http.StatusOK, groups)
}

// upcomingItems previews the next exams and the open tasks. Each collection
// is fetched independently; one failing never blanks the other.
func (api *scheduleApi) upcomingItems(ctx echo.Context) error {
	exams, err := api.upcomingSvc.UpcomingExams(time.Now())
	if err != nil {
		api.logger.Error("querying upcoming exams", errors.Wrap(err, "querying upcoming exams"))
		exams = []exam.Exam{}
	}
	tasks, err := api.upcomingSvc.PendingTasks()
	if err != nil {
		api.logger.Error("querying pending tasks", errors.Wrap(err, "querying pending tasks"))
		tasks = []task.Task{}
	}
	if exams == nil {
		exams = []exam.Exam{}
	}
	if tasks == nil {
		tasks = []task.Task{}
	}
	return ctx.JSON(http.StatusOK, echo.Map{"exams": exams, "tasks": tasks})
}

type selectGroupRequest struct {
	Group string `json:"group" validate:"required"`
}

func (api *scheduleApi) selectGroup(ctx echo.Context) error {
	var data selectGroupRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to selectGroupRequest")
	}
	if data.Group == "" {
		return core.NewValidationError(nil, core.FieldError{Field: "group", Error: "this field is required"})
	}

	for _, g := range api.view.Groups() {
		if g.ID == data.Group {
			api.view.SelectGroup(g.ID)
			return ctx.JSON(http.StatusOK, echo.Map{"group": g.ID})
		}
	}
	return core.NewValidationError(nil, core.FieldError{Field: "group", Error: "unknown group"})
}

func (api *scheduleApi) toggleGroup(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, echo.Map{"group": api.view.ToggleGroup()})
}

type showOnlyTodayRequest struct {
	ShowOnlyToday bool `json:"showOnlyToday"`
}

func (api *scheduleApi) setShowOnlyToday(ctx echo.Context) error {
	var data showOnlyTodayRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to showOnlyTodayRequest")
	}
	api.view.SetShowOnlyToday(data.ShowOnlyToday)
	return ctx.JSON(http.StatusOK, echo.Map{"showOnlyToday": data.ShowOnlyToday})
}
