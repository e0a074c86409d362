package jsondb

import (
	"github.com/devshaki/ShakSite/core/quote"
)

type quoteRepository struct {
	db *table
}

var _ quote.Repository = (*quoteRepository)(nil) // interface compliance check

func NewQuoteRepository(db *DB) quote.Repository {
	return &quoteRepository{db: db.quote}
}

func (repo *quoteRepository) CreateQuote(q quote.Quote) (quote.Quote, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	var quotes []quote.Quote
	if err := repo.db.load(&quotes); err != nil {
		return quote.Quote{}, err
	}
	quotes = append(quotes, q)
	if err := repo.db.save(quotes); err != nil {
		return quote.Quote{}, err
	}
	return q, nil
}

func (repo *quoteRepository) QueryAllQuotes() ([]quote.Quote, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	var quotes []quote.Quote
	if err := repo.db.load(&quotes); err != nil {
		return nil, err
	}
	return quotes, nil
}

func (repo *quoteRepository) GetQuoteByID(id string) (quote.Quote, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	var quotes []quote.Quote
	if err := repo.db.load(&quotes); err != nil {
		return quote.Quote{}, err
	}
	for _, q := range quotes {
		if q.ID == id {
			return q, nil
		}
	}
	return quote.Quote{}, quote.ErrNotFound
}

func (repo *quoteRepository) UpdateQuote(q quote.Quote) (quote.Quote, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	var quotes []quote.Quote
	if err := repo.db.load(&quotes); err != nil {
		return quote.Quote{}, err
	}
	for i := range quotes {
		if quotes[i].ID == q.ID {
			quotes[i] = q
			if err := repo.db.save(quotes); err != nil {
				return quote.Quote{}, err
			}
			return q, nil
		}
	}
	return quote.Quote{}, quote.ErrNotFound
}

func (repo *quoteRepository) DeleteQuote(id string) error {
	repo.db.Lock()
	defer repo.db.Unlock()

	var quotes []quote.Quote
	if err := repo.db.load(&quotes); err != nil {
		return err
	}
	filtered := quotes[:0]
	for _, q := range quotes {
		if q.ID != id {
			filtered = append(filtered, q)
		}
	}
	if len(filtered) == len(quotes) {
		return quote.ErrNotFound
	}
	return repo.db.save(filtered)
}
