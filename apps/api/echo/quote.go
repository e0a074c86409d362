package echoapi

import (
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/devshaki/ShakSite/core/quote"
)

type quoteApi struct {
	svc      *quote.Service
	validate *validator.Validate
}

func registerQuoteAPI(g *echo.Group, svc *quote.Service, validate *validator.Validate) {
	api := quoteApi{svc: svc, validate: validate}

	qg := g.Group("/quotes")
	qg.GET("", api.query)
	qg.GET("/daily", api.daily)
	qg.POST("", api.create)
	qg.PUT("/:id", api.update)
	qg.DELETE("/:id", api.destroy)
}

// Handlers

func (api *quoteApi) query(ctx echo.Context) error {
	quotes, err := api.svc.QueryAll()
	if err != nil {
		return errors.Wrap(err, "querying quotes")
	}
	if quotes == nil {
		quotes = []quote.Quote{}
	}
	return ctx.JSON(http.StatusOK, quotes)
}

func (api *quoteApi) daily(ctx echo.Context) error {
	q, err := api.svc.DailyQuote(time.Now())
	if err != nil {
		return errors.Wrap(err, "picking daily quote")
	}
	return ctx.JSON(http.StatusOK, echo.Map{"quote": q})
}

func (api *quoteApi) create(ctx echo.Context) error {
	var data quote.NewQuote
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewQuote")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	q, err := api.svc.Create(data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, q)
}

func (api *quoteApi) update(ctx echo.Context) error {
	var data quote.UpdateQuote
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateQuote")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	q, err := api.svc.Update(ctx.Param("id"), data)
	if err != nil {
		if errors.Cause(err) == quote.ErrNotFound {
			return errHttpNotFound
		}
		return errors.Wrap(err, "updating quote")
	}
	return ctx.JSON(http.StatusOK, q)
}

func (api *quoteApi) destroy(ctx echo.Context) error {
	if err := api.svc.Delete(ctx.Param("id")); err != nil {
		if errors.Cause(err) == quote.ErrNotFound {
			return ctx.JSON(http.StatusOK, echo.Map{"success": false})
		}
		return errors.Wrap(err, "deleting quote")
	}
	return ctx.JSON(http.StatusOK, echo.Map{"success": true})
}
