package main

import (
	"errors"
	"flag"
	"fmt"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/devshaki/ShakSite/core"
	"github.com/devshaki/ShakSite/core/upcoming"
)

var errHelp = errors.New("help provided")

type commandLine struct {
	conf        *core.Config
	validate    *validator.Validate
	translator  ut.Translator
	upcomingSvc *upcoming.Service
	mailSvc     core.EmailService
}

func (cli *commandLine) printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  validate [-file PATH] - check a timetable definition file")
	fmt.Println("  remind                - email the upcoming exams digest to the admin")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	validateCmd := flag.NewFlagSet("validate", flag.ExitOnError)
	validateFile := validateCmd.String("file", "", "Path of the timetable file. Defaults to the configured one.")

	remindCmd := flag.NewFlagSet("remind", flag.ExitOnError)

	switch args[1] {
	case "validate":
		if err := validateCmd.Parse(args[2:]); err != nil {
			return err
		}
		file := *validateFile
		if file == "" {
			file = cli.conf.TimetableFile
		}
		return cli.validateTimetable(file)
	case "remind":
		if err := remindCmd.Parse(args[2:]); err != nil {
			return err
		}
		return cli.remind()
	default:
		cli.printUsage()
		return errHelp
	}
}
