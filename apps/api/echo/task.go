package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/devshaki/ShakSite/core/task"
)

type taskApi struct {
	svc      *task.Service
	validate *validator.Validate
}

func registerTaskAPI(g *echo.Group, svc *task.Service, validate *validator.Validate) {
	api := taskApi{svc: svc, validate: validate}

	tg := g.Group("/tasks")
	tg.GET("", api.query)
	tg.POST("", api.create)
	tg.PUT("/:id", api.update)
	tg.DELETE("/:id", api.destroy)
}

// Handlers

func (api *taskApi) query(ctx echo.Context) error {
	tasks, err := api.svc.QueryAll()
	if err != nil {
		return errors.Wrap(err, "querying tasks")
	}
	if tasks == nil {
		tasks = []task.Task{}
	}
	return ctx.JSON(http.StatusOK, tasks)
}

func (api *taskApi) create(ctx echo.Context) error {
	var data task.NewTask
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewTask")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	tsk, err := api.svc.Create(data)
	if err != nil {
		return errors.Wrap(err, "creating task")
	}
	return ctx.JSON(http.StatusCreated, tsk)
}

func (api *taskApi) update(ctx echo.Context) error {
	var data task.UpdateTask
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateTask")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	tsk, err := api.svc.Update(ctx.Param("id"), data)
	if err != nil {
		if errors.Cause(err) == task.ErrNotFound {
			return errHttpNotFound
		}
		return errors.Wrap(err, "updating task")
	}
	return ctx.JSON(http.StatusOK, tsk)
}

func (api *taskApi) destroy(ctx echo.Context) error {
	if err := api.svc.Delete(ctx.Param("id")); err != nil {
		if errors.Cause(err) == task.ErrNotFound {
			return ctx.JSON(http.StatusOK, echo.Map{"success": false})
		}
		return errors.Wrap(err, "deleting task")
	}
	return ctx.JSON(http.StatusOK, echo.Map{"success": true})
}
