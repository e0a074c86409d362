package main

import (
	"log"
	"os"

	"github.com/devshaki/ShakSite/core"
	"github.com/devshaki/ShakSite/core/exam"
	"github.com/devshaki/ShakSite/core/task"
	"github.com/devshaki/ShakSite/core/timetable"
	"github.com/devshaki/ShakSite/core/upcoming"
	emailsvc "github.com/devshaki/ShakSite/services/email"
	"github.com/devshaki/ShakSite/storage/jsondb"
)

var logger *log.Logger

func main() {
	defer os.Exit(0)

	logger = log.New(os.Stdout, "ADMIN : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)

	conf := core.NewConfig()

	validate, translator := core.NewValidator()
	timetable.RegisterValidators(validate, translator)
	task.RegisterValidators(validate, translator)

	// set up storage & services
	db, err := jsondb.Open(conf.DataDir)
	errAndDie(err)
	examSvc := exam.NewService(jsondb.NewExamRepository(db))
	taskSvc := task.NewService(jsondb.NewTaskRepository(db))

	var mailSvc core.EmailService
	if conf.Debug {
		mailSvc = emailsvc.NewConsoleService(conf)
	} else {
		mailSvc = emailsvc.NewSendgridService(conf, core.NewStdLogger(logger))
	}

	// start CLI
	cli := commandLine{
		conf:        conf,
		validate:    validate,
		translator:  translator,
		upcomingSvc: upcoming.NewService(examSvc, taskSvc),
		mailSvc:     mailSvc,
	}
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			logger.Printf("\nerror: %s\n", err)
		}
		os.Exit(1)
	}
}

func errAndDie(err error) {
	if err != nil {
		logger.Fatal(err)
	}
}
