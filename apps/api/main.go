package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	echoapi "github.com/devshaki/ShakSite/apps/api/echo"
	"github.com/devshaki/ShakSite/core"
	"github.com/devshaki/ShakSite/core/exam"
	"github.com/devshaki/ShakSite/core/meme"
	"github.com/devshaki/ShakSite/core/quote"
	"github.com/devshaki/ShakSite/core/schedule"
	"github.com/devshaki/ShakSite/core/task"
	"github.com/devshaki/ShakSite/core/timetable"
	"github.com/devshaki/ShakSite/core/upcoming"
	logsvc "github.com/devshaki/ShakSite/services/logger"
	"github.com/devshaki/ShakSite/storage/images"
	"github.com/devshaki/ShakSite/storage/jsondb"
)

const shutdownTimeout = 20 * time.Second

// logPeriodChanges returns a tick callback that logs whenever the current
// period starts, ends, or changes. Ticks within the same period stay quiet.
func logPeriodChanges(logger core.Logger) func(*schedule.CurrentPeriod) {
	var last string
	seeded := false
	return func(cur *schedule.CurrentPeriod) {
		key := ""
		if cur != nil {
			key = cur.TimeSlot.Start + "-" + cur.TimeSlot.End
		}
		if seeded && key == last {
			return
		}
		seeded = true
		last = key

		if cur == nil {
			logger.Info("schedule: no current period")
			return
		}
		logger.Info(fmt.Sprintf("schedule: now in %q (%s-%s)", cur.TimeSlot.Label, cur.TimeSlot.Start, cur.TimeSlot.End))
	}
}

func main() {
	conf := core.NewConfig()

	std := log.New(os.Stdout, conf.AppName+" : ", log.LstdFlags|log.Lshortfile)
	var logger core.Logger
	if conf.Debug {
		logger = core.NewStdLogger(std)
	} else {
		logger = logsvc.NewRollbarLogger(std, conf)
	}

	if err := run(conf, logger); err != nil {
		logger.Fatal("api: startup failed", err)
	}
}

func run(conf *core.Config, logger core.Logger) error {
	// validation
	validate, translator := core.NewValidator()
	timetable.RegisterValidators(validate, translator)
	task.RegisterValidators(validate, translator)

	// timetable; an empty path falls back to the built-in default
	tt, err := timetable.LoadFile(conf.TimetableFile)
	if err != nil {
		return err
	}
	if err = tt.Validate(validate); err != nil {
		return err
	}

	// storage
	db, err := jsondb.Open(conf.DataDir)
	if err != nil {
		return err
	}
	imgStore, err := images.NewMemeStore(conf.UploadsDir)
	if err != nil {
		return err
	}

	// services
	examSvc := exam.NewService(jsondb.NewExamRepository(db))
	taskSvc := task.NewService(jsondb.NewTaskRepository(db))
	quoteSvc := quote.NewService(jsondb.NewQuoteRepository(db))
	memeSvc := meme.NewService(jsondb.NewMemeRepository(db), imgStore)
	upcomingSvc := upcoming.NewService(examSvc, taskSvc)

	schedSvc := schedule.NewService(tt, logger)
	view := schedule.NewView(schedSvc, schedule.DefaultGroup)

	// track the school day in the logs
	watchCtx, cancelWatch := context.WithCancel(context.Background())
	defer cancelWatch()
	go view.Watch(watchCtx, schedule.TickInterval, logPeriodChanges(logger))

	// API server
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	app := echoapi.NewServer(conf.ServerAddr(), shutdown, &echoapi.Deps{
		Conf:        conf,
		Logger:      logger,
		Validate:    validate,
		Translator:  translator,
		View:        view,
		ExamSvc:     examSvc,
		TaskSvc:     taskSvc,
		QuoteSvc:    quoteSvc,
		MemeSvc:     memeSvc,
		UpcomingSvc: upcomingSvc,
	})

	serverErrors := make(chan error, 1)
	go func() { serverErrors <- app.Start() }()
	logger.Info("api: listening on " + conf.ServerAddr())

	select {
	case err = <-serverErrors:
		return err
	case sig := <-shutdown:
		logger.Info("api: shutting down", "signal", sig)
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err = app.Stop(ctx); err != nil {
			return err
		}
	}
	return nil
}
