package echoapi

import (
	"context"
	"net/http"
	"os"
	"syscall"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"

	"github.com/devshaki/ShakSite/core"
	"github.com/devshaki/ShakSite/core/exam"
	"github.com/devshaki/ShakSite/core/meme"
	"github.com/devshaki/ShakSite/core/quote"
	"github.com/devshaki/ShakSite/core/schedule"
	"github.com/devshaki/ShakSite/core/task"
	"github.com/devshaki/ShakSite/core/upcoming"
)

type (
	// Deps carries everything the HTTP layer serves.
	Deps struct {
		Conf           *core.Config
		Logger         core.Logger
		Validate       *validator.Validate
		Translator     ut.Translator
		View           *schedule.View
		ExamSvc        *exam.Service
		TaskSvc        *task.Service
		QuoteSvc       *quote.Service
		MemeSvc        *meme.Service
		UpcomingSvc    *upcoming.Service
		DisableReqLogs bool
	}

	Server interface {
		http.Handler
		Start() error
		Stop(context.Context) error
	}

	server struct {
		addr     string
		shutdown chan os.Signal
		deps     *Deps
		app      *echo.Echo
	}
)

var _ Server = (*server)(nil)

func NewServer(addr string, shutdown chan os.Signal, deps *Deps) Server {
	s := &server{
		addr:     addr,
		shutdown: shutdown,
		deps:     deps,
		app:      echo.New(),
	}
	s.setup()
	return s
}

func (s *server) setup() {
	conf := s.deps.Conf

	s.app.Pre(middleware.RemoveTrailingSlash())
	if !s.deps.DisableReqLogs {
		s.app.Use(middleware.Logger())
	}
	// do not recover in DEV|TEST mode
	if !(conf.Debug || conf.TestMode) {
		s.app.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{LogLevel: log.ERROR}))
	}

	s.app.HTTPErrorHandler = newAppHTTPErrorHandler(s.deps.Logger, s.deps.Translator, s.signalShutdown)
	s.app.Debug = conf.Debug

	// frontend & uploaded files
	s.app.Static("/", conf.PublicDir)
	s.app.Static("/uploads", conf.UploadsDir)

	api := s.app.Group("/api")
	registerScheduleAPI(api, s.deps.View, s.deps.UpcomingSvc, s.deps.Logger)
	registerExamAPI(api, s.deps.ExamSvc, s.deps.Validate)
	registerTaskAPI(api, s.deps.TaskSvc, s.deps.Validate)
	registerQuoteAPI(api, s.deps.QuoteSvc, s.deps.Validate)

	// the meme gallery predates the /api prefix
	registerMemeAPI(s.app.Group("/memes"), s.deps.MemeSvc, s.deps.Validate, s.deps.Logger)
}

// signalShutdown sends SIGTERM for a graceful shutdown on unrecoverable errors.
func (s *server) signalShutdown() {
	if s.shutdown != nil {
		s.shutdown <- syscall.SIGTERM
	}
}

func (s *server) Start() error {
	return s.app.Start(s.addr)
}

func (s *server) Stop(ctx context.Context) error {
	return s.app.Shutdown(ctx)
}

func (s *server) ServeHTTP(w http.ResponseWriter, r *http.Request) { // for tests
	s.app.ServeHTTP(w, r)
}
