package task

import (
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/devshaki/ShakSite/core"
)

// Priorities
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// DefaultPriority applies when a task carries no priority.
const DefaultPriority = PriorityMedium

// priorityRanks orders priorities for display: high before medium before low.
var priorityRanks = map[string]int{
	PriorityHigh:   0,
	PriorityMedium: 1,
	PriorityLow:    2,
}

// PriorityRank returns the sort rank of a priority, defaulting unknown or
// missing values to medium.
func PriorityRank(priority string) int {
	if rank, ok := priorityRanks[priority]; ok {
		return rank
	}
	return priorityRanks[DefaultPriority]
}

// Task is one todo item. DueDate is an ISO date string.
type Task struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	DueDate     string `json:"dueDate"`
	Subject     string `json:"subject,omitempty"`
	Completed   bool   `json:"completed"`
	Priority    string `json:"priority,omitempty"`
}

// NewTask contains information needed to create a new Task.
type NewTask struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	DueDate     string `json:"dueDate" validate:"required"`
	Subject     string `json:"subject"`
	Priority    string `json:"priority" validate:"omitempty,priority"`
}

func (nt *NewTask) Validate(validate *validator.Validate) error {
	nt.Title = core.CleanString(nt.Title)
	nt.DueDate = core.CleanString(nt.DueDate)
	nt.Priority = core.CleanString(nt.Priority, true /* lower */)
	return validate.Struct(nt)
}

// UpdateTask defines what information may be provided to modify an existing
// Task. Nil fields are left untouched.
type UpdateTask struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	DueDate     *string `json:"dueDate"`
	Subject     *string `json:"subject"`
	Completed   *bool   `json:"completed"`
	Priority    *string `json:"priority" validate:"omitempty,priority"`
}

func (u *UpdateTask) Validate(validate *validator.Validate) error {
	if u.Title != nil {
		*u.Title = core.CleanString(*u.Title)
	}
	if u.DueDate != nil {
		*u.DueDate = core.CleanString(*u.DueDate)
	}
	if u.Priority != nil {
		*u.Priority = core.CleanString(*u.Priority, true /* lower */)
	}
	return validate.Struct(u)
}

var (
	priorityTag  = "priority"
	priorityText = "priority must be one of: low, medium, high"
)

// RegisterValidators registers the task validation tags.
func RegisterValidators(validate *validator.Validate, translator ut.Translator) {
	_ = validate.RegisterValidation(priorityTag, priorityValidation)
	core.RegisterCustomTranslation(validate, translator, priorityTag, priorityText)
}

func priorityValidation(fl validator.FieldLevel) bool {
	_, ok := priorityRanks[fl.Field().String()]
	return ok
}
