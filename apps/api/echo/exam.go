package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/devshaki/ShakSite/core/exam"
)

type examApi struct {
	svc      *exam.Service
	validate *validator.Validate
}

func registerExamAPI(g *echo.Group, svc *exam.Service, validate *validator.Validate) {
	api := examApi{svc: svc, validate: validate}

	eg := g.Group("/exams")
	eg.GET("", api.query)
	eg.POST("", api.create)
	eg.PUT("/:id", api.update)
	eg.DELETE("/:id", api.destroy)
}

// Handlers

func (api *examApi) query(ctx echo.Context) error {
	exams, err := api.svc.QueryAll()
	if err != nil {
		return errors.Wrap(err, "querying exams")
	}
	if exams == nil {
		exams = []exam.Exam{}
	}
	return ctx.JSON(http.StatusOK, exams)
}

func (api *examApi) create(ctx echo.Context) error {
	var data exam.NewExam
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewExam")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	ex, err := api.svc.Create(data)
	if err != nil {
		return errors.Wrap(err, "creating exam")
	}
	return ctx.JSON(http.StatusCreated, ex)
}

func (api *examApi) update(ctx echo.Context) error {
	var data exam.UpdateExam
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateExam")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	ex, err := api.svc.Update(ctx.Param("id"), data)
	if err != nil {
		if errors.Cause(err) == exam.ErrNotFound {
			return errHttpNotFound
		}
		return errors.Wrap(err, "updating exam")
	}
	return ctx.JSON(http.StatusOK, ex)
}

func (api *examApi) destroy(ctx echo.Context) error {
	if err := api.svc.Delete(ctx.Param("id")); err != nil {
		if errors.Cause(err) == exam.ErrNotFound {
			return ctx.JSON(http.StatusOK, echo.Map{"success": false})
		}
		return errors.Wrap(err, "deleting exam")
	}
	return ctx.JSON(http.StatusOK, echo.Map{"success": true})
}
