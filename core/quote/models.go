package quote

import (
	"github.com/go-playground/validator/v10"

	"github.com/devshaki/ShakSite/core"
)

// Quote is one displayable quote. AddedDate is an ISO date string.
type Quote struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Author    string `json:"author,omitempty"`
	AddedDate string `json:"addedDate"`
}

// Display renders the quote the way the ticker shows it.
func (q Quote) Display() string {
	if q.Author != "" {
		return q.Text + " — " + q.Author
	}
	return q.Text
}

// NewQuote contains information needed to create a new Quote.
type NewQuote struct {
	Text   string `json:"text" validate:"required"`
	Author string `json:"author"`
}

func (nq *NewQuote) Validate(validate *validator.Validate) error {
	nq.Text = core.CleanString(nq.Text)
	nq.Author = core.CleanString(nq.Author)
	return validate.Struct(nq)
}

// UpdateQuote defines what information may be provided to modify an existing
// Quote. Nil fields are left untouched.
type UpdateQuote struct {
	Text   *string `json:"text"`
	Author *string `json:"author"`
}

func (uq *UpdateQuote) Validate(validate *validator.Validate) error {
	if uq.Text != nil {
		*uq.Text = core.CleanString(*uq.Text)
	}
	if uq.Author != nil {
		*uq.Author = core.CleanString(*uq.Author)
	}
	return validate.Struct(uq)
}
