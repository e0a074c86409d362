package main

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/devshaki/ShakSite/core"
	"github.com/devshaki/ShakSite/core/timetable"
)

// validateTimetable loads a timetable definition and reports every problem
// found instead of stopping at the first.
func (cli *commandLine) validateTimetable(path string) error {
	tt, err := timetable.LoadFile(path)
	if err != nil {
		return err
	}

	if err = tt.Validate(cli.validate); err != nil {
		switch vErr := errors.Cause(err).(type) {
		case *core.ValidationError:
			fmt.Println("timetable is invalid:")
			for _, fe := range vErr.Fields {
				fmt.Printf("  %s: %s\n", fe.Field, fe.Error)
			}
		case validator.ValidationErrors:
			fmt.Println("timetable is invalid:")
			for _, fe := range vErr {
				fmt.Printf("  %s: %s\n", fe.Field(), fe.Translate(cli.translator))
			}
		}
		return err
	}

	if path == "" {
		path = "(built-in default)"
	}
	fmt.Printf("%s: ok. %d template(s), %d class(es), %d group(s)\n",
		path, len(tt.PeriodTemplates), len(tt.Classes), len(tt.Groups))
	return nil
}
