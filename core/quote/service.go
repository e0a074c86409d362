package quote

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pmezard/go-difflib/difflib"

	"github.com/devshaki/ShakSite/core"
)

var (
	ErrNotFound   = errors.New("quote not found")
	ErrTooSimilar = errors.New("a very similar quote already exists")
)

// maxSim is the difflib QuickRatio above which a new quote is considered a
// duplicate of an existing one.
const maxSim = .9

// defaultQuotes seed the daily rotation alongside user-added quotes.
var defaultQuotes = []string{
	"אני בשירותים (ירדן דרורי)",
	"לא טוב",
	"מוביט זה פרוקסי של איראן",
	"תדליקו את המזגן חם לי",
	"תבורכו!!!",
	"אודיפי",
	"הסוויש הוא שקוף",
	"בכר אתה לא תורם לאנושות",
	"הקרסרים! הם מדברים ביניהם!",
	"לכו תזדיינו - אלי גוריאל",
}

type (
	Repository interface {
		CreateQuote(quote Quote) (Quote, error)
		QueryAllQuotes() ([]Quote, error)
		GetQuoteByID(id string) (Quote, error)
		UpdateQuote(quote Quote) (Quote, error)
		DeleteQuote(id string) error
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// checkSimilarity rejects quotes that are near-identical to a stored one.
func (svc *Service) checkSimilarity(text string) error {
	quotes, err := svc.repo.QueryAllQuotes()
	if err != nil {
		return err
	}
	lower := strings.ToLower(text)
	for _, q := range quotes {
		ratio := difflib.NewMatcher(strings.Split(lower, ""), strings.Split(strings.ToLower(q.Text), "")).QuickRatio()
		if ratio >= maxSim {
			return core.NewValidationError(ErrTooSimilar, core.FieldError{Field: "text", Error: ErrTooSimilar.Error()})
		}
	}
	return nil
}

func (svc *Service) Create(nq NewQuote) (Quote, error) {
	if err := svc.checkSimilarity(nq.Text); err != nil {
		return Quote{}, err
	}
	return svc.repo.CreateQuote(Quote{
		ID:        uuid.NewString(),
		Text:      nq.Text,
		Author:    nq.Author,
		AddedDate: time.Now().UTC().Format(time.RFC3339),
	})
}

func (svc *Service) QueryAll() ([]Quote, error) {
	return svc.repo.QueryAllQuotes()
}

func (svc *Service) GetByID(id string) (Quote, error) {
	return svc.repo.GetQuoteByID(id)
}

func (svc *Service) Update(id string, uq UpdateQuote) (Quote, error) {
	q, err := svc.repo.GetQuoteByID(id)
	if err != nil {
		return Quote{}, err
	}
	if uq.Text != nil {
		q.Text = *uq.Text
	}
	if uq.Author != nil {
		q.Author = *uq.Author
	}
	return svc.repo.UpdateQuote(q)
}

func (svc *Service) Delete(id string) error {
	return svc.repo.DeleteQuote(id)
}

// DailyQuote rotates through the built-in quotes plus everything stored,
// keyed by day of year, so everyone sees the same quote all day.
func (svc *Service) DailyQuote(now time.Time) (string, error) {
	all := make([]string, 0, len(defaultQuotes))
	all = append(all, defaultQuotes...)

	stored, err := svc.repo.QueryAllQuotes()
	if err != nil {
		return "", err
	}
	for _, q := range stored {
		all = append(all, q.Display())
	}

	return all[now.YearDay()%len(all)], nil
}
