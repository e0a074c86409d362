package main

import (
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/devshaki/ShakSite/core"
	"github.com/devshaki/ShakSite/core/task"
)

// remind emails the admin a plain-text digest of upcoming exams and pending
// tasks. A quiet month sends nothing.
func (cli *commandLine) remind() error {
	if cli.conf.AdminEmail.Address == "" {
		return errors.New("no admin email configured, set ADMINEMAIL")
	}

	now := time.Now()

	exams, err := cli.upcomingSvc.UpcomingExams(now)
	if err != nil {
		return err
	}
	tasks, err := cli.upcomingSvc.PendingTasks()
	if err != nil {
		return err
	}
	if len(exams) == 0 && len(tasks) == 0 {
		fmt.Println("nothing upcoming, no reminder sent")
		return nil
	}

	var body strings.Builder
	if len(exams) > 0 {
		body.WriteString("Upcoming exams:\n")
		for _, e := range exams {
			fmt.Fprintf(&body, "  - %s on %s", e.Subject, e.Date)
			if e.Time != "" {
				fmt.Fprintf(&body, " at %s", e.Time)
			}
			if e.Room != "" {
				fmt.Fprintf(&body, " (room %s)", e.Room)
			}
			body.WriteString("\n")
		}
	}
	if len(tasks) > 0 {
		if body.Len() > 0 {
			body.WriteString("\n")
		}
		body.WriteString("Pending tasks:\n")
		for _, t := range tasks {
			priority := t.Priority
			if priority == "" {
				priority = task.DefaultPriority
			}
			fmt.Fprintf(&body, "  - [%s] %s, due %s\n", priority, t.Title, t.DueDate)
		}
	}

	cli.mailSvc.SendMessages(&core.EmailMessage{
		To:      []mail.Address{cli.conf.AdminEmail},
		Subject: fmt.Sprintf("%s digest for %s", cli.conf.AppName, now.Format("2006-01-02")),
		BodyStr: body.String(),
	})
	fmt.Printf("reminder sent: %d exam(s), %d task(s)\n", len(exams), len(tasks))
	return nil
}
