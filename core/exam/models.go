package exam

import (
	"github.com/go-playground/validator/v10"

	"github.com/devshaki/ShakSite/core"
)

// Exam is one scheduled exam date. Date is an ISO date string; Time an
// optional HH:MM. ClassID optionally references a timetable class.
type Exam struct {
	ID      string `json:"id"`
	Subject string `json:"subject"`
	Date    string `json:"date"`
	Time    string `json:"time,omitempty"`
	Room    string `json:"room,omitempty"`
	Notes   string `json:"notes,omitempty"`
	ClassID string `json:"classId,omitempty"`
}

// NewExam contains information needed to create a new Exam.
type NewExam struct {
	Subject string `json:"subject" validate:"required"`
	Date    string `json:"date" validate:"required"`
	Time    string `json:"time" validate:"omitempty,hhmm"`
	Room    string `json:"room"`
	Notes   string `json:"notes"`
	ClassID string `json:"classId"`
}

func (ne *NewExam) Validate(validate *validator.Validate) error {
	ne.Subject = core.CleanString(ne.Subject)
	ne.Date = core.CleanString(ne.Date)
	ne.Time = core.CleanString(ne.Time)
	ne.Room = core.CleanString(ne.Room)
	return validate.Struct(ne)
}

// UpdateExam defines what information may be provided to modify an existing
// Exam. Nil fields are left untouched.
type UpdateExam struct {
	Subject *string `json:"subject"`
	Date    *string `json:"date"`
	Time    *string `json:"time" validate:"omitempty,hhmm"`
	Room    *string `json:"room"`
	Notes   *string `json:"notes"`
	ClassID *string `json:"classId"`
}

func (ue *UpdateExam) Validate(validate *validator.Validate) error {
	if ue.Subject != nil {
		*ue.Subject = core.CleanString(*ue.Subject)
	}
	if ue.Date != nil {
		*ue.Date = core.CleanString(*ue.Date)
	}
	if ue.Time != nil {
		*ue.Time = core.CleanString(*ue.Time)
	}
	return validate.Struct(ue)
}
