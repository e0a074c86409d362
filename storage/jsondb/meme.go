package jsondb

import (
	"github.com/devshaki/ShakSite/core/meme"
)

type memeRepository struct {
	db *table
}

var _ meme.Repository = (*memeRepository)(nil) // interface compliance check

func NewMemeRepository(db *DB) meme.Repository {
	return &memeRepository{db: db.meme}
}

func (repo *memeRepository) CreateMeme(m meme.Meme) (meme.Meme, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	var memes []meme.Meme
	if err := repo.db.load(&memes); err != nil {
		return meme.Meme{}, err
	}
	memes = append(memes, m)
	if err := repo.db.save(memes); err != nil {
		return meme.Meme{}, err
	}
	return m, nil
}

func (repo *memeRepository) QueryAllMemes() ([]meme.Meme, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	var memes []meme.Meme
	if err := repo.db.load(&memes); err != nil {
		return nil, err
	}
	return memes, nil
}

func (repo *memeRepository) GetMemeByID(id string) (meme.Meme, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	var memes []meme.Meme
	if err := repo.db.load(&memes); err != nil {
		return meme.Meme{}, err
	}
	for _, m := range memes {
		if m.ID == id {
			return m, nil
		}
	}
	return meme.Meme{}, meme.ErrNotFound
}

func (repo *memeRepository) UpdateMeme(m meme.Meme) (meme.Meme, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	var memes []meme.Meme
	if err := repo.db.load(&memes); err != nil {
		return meme.Meme{}, err
	}
	for i := range memes {
		if memes[i].ID == m.ID {
			memes[i] = m
			if err := repo.db.save(memes); err != nil {
				return meme.Meme{}, err
			}
			return m, nil
		}
	}
	return meme.Meme{}, meme.ErrNotFound
}

func (repo *memeRepository) DeleteMeme(id string) error {
	repo.db.Lock()
	defer repo.db.Unlock()

	var memes []meme.Meme
	if err := repo.db.load(&memes); err != nil {
		return err
	}
	filtered := memes[:0]
	for _, m := range memes {
		if m.ID != id {
			filtered = append(filtered, m)
		}
	}
	if len(filtered) == len(memes) {
		return meme.ErrNotFound
	}
	return repo.db.save(filtered)
}
