package echoapi

import (
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/devshaki/ShakSite/core"
	"github.com/devshaki/ShakSite/core/meme"
)

// maxMemeUploadSize caps a single meme image upload.
const maxMemeUploadSize = 10 << 20 // 10 MiB

var allowedMemeExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

type memeApi struct {
	svc      *meme.Service
	validate *validator.Validate
	logger   core.Logger
}

func registerMemeAPI(g *echo.Group, svc *meme.Service, validate *validator.Validate, logger core.Logger) {
	api := memeApi{svc: svc, validate: validate, logger: logger}

	g.GET("", api.query)
	g.POST("/upload", api.upload)
	g.GET("/hall-of-fame", api.hallOfFame)
	g.GET("/image/:filename", api.image)
	g.POST("/:id/vote", api.vote)
	g.DELETE("/:id", api.destroy)
}

type voteRequest struct {
	Type string `json:"type" validate:"required,oneof=up down"`
}

// Handlers

func (api *memeApi) query(ctx echo.Context) error {
	memes, err := api.svc.QueryAll()
	if err != nil {
		return errors.Wrap(err, "querying memes")
	}
	if memes == nil {
		memes = []meme.Meme{}
	}
	return ctx.JSON(http.StatusOK, memes)
}

func (api *memeApi) upload(ctx echo.Context) error {
	fh, err := ctx.FormFile("file")
	if err != nil {
		return core.NewValidationError(err, core.FieldError{Field: "file", Error: "an image file is required"})
	}
	if fh.Size > maxMemeUploadSize {
		err = errors.New("file exceeds the 10MB upload limit")
		return core.NewValidationError(err, core.FieldError{Field: "file", Error: err.Error()})
	}

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if !allowedMemeExts[ext] {
		err = errors.New("only jpg, jpeg, png, gif and webp images are accepted")
		return core.NewValidationError(err, core.FieldError{Field: "file", Error: err.Error()})
	}

	src, err := fh.Open()
	if err != nil {
		return errors.Wrap(err, "opening uploaded file")
	}
	defer src.Close()

	// random stored name so client filenames never hit the filesystem
	filename := strings.ReplaceAll(uuid.NewString(), "-", "") + ext
	if err = api.svc.SaveImage(filename, src); err != nil {
		return errors.Wrap(err, "storing uploaded image")
	}

	m, err := api.svc.Create(meme.NewMeme{
		Filename:     filename,
		OriginalName: fh.Filename,
		UploadedBy:   ctx.FormValue("uploadedBy"),
		Caption:      ctx.FormValue("caption"),
	})
	if err != nil {
		return errors.Wrap(err, "registering uploaded meme")
	}
	api.logger.Info("meme uploaded: " + m.ID + " (" + fh.Filename + ")")
	return ctx.JSON(http.StatusCreated, m)
}

func (api *memeApi) hallOfFame(ctx echo.Context) error {
	limit, _ := strconv.Atoi(ctx.QueryParam("limit"))
	memes, err := api.svc.HallOfFame(limit)
	if err != nil {
		return errors.Wrap(err, "ranking memes")
	}
	if memes == nil {
		memes = []meme.Meme{}
	}
	return ctx.JSON(http.StatusOK, memes)
}

func (api *memeApi) image(ctx echo.Context) error {
	path, ok := api.svc.ImagePath(ctx.Param("filename"))
	if !ok {
		return errHttpNotFound
	}
	return ctx.File(path)
}

func (api *memeApi) vote(ctx echo.Context) error {
	var data voteRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding vote")
	}
	if err := api.validate.Struct(&data); err != nil {
		return err
	}

	m, err := api.svc.Vote(ctx.Param("id"), data.Type)
	if err != nil {
		switch errors.Cause(err) {
		case meme.ErrNotFound:
			return errHttpNotFound
		case meme.ErrInvalidVote:
			return core.NewValidationError(err, core.FieldError{Field: "type", Error: err.Error()})
		}
		return errors.Wrap(err, "applying vote")
	}
	return ctx.JSON(http.StatusOK, m)
}

func (api *memeApi) destroy(ctx echo.Context) error {
	if err := api.svc.Delete(ctx.Param("id")); err != nil {
		if errors.Cause(err) == meme.ErrNotFound {
			return ctx.JSON(http.StatusOK, echo.Map{"success": false})
		}
		return errors.Wrap(err, "deleting meme")
	}
	return ctx.JSON(http.StatusOK, echo.Map{"success": true})
}
