package meme

import (
	"errors"
	"io"
	"sort"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound    = errors.New("meme not found")
	ErrInvalidVote = errors.New("vote must be 'up' or 'down'")
)

// DefaultHallOfFameSize bounds the hall-of-fame preview.
const DefaultHallOfFameSize = 10

type (
	Repository interface {
		CreateMeme(meme Meme) (Meme, error)
		QueryAllMemes() ([]Meme, error)
		GetMemeByID(id string) (Meme, error)
		UpdateMeme(meme Meme) (Meme, error)
		DeleteMeme(id string) error
	}

	// ImageStore keeps the uploaded image files; the single-directory layout
	// is a deliberate non-goal for scaling.
	ImageStore interface {
		Save(filename string, r io.Reader) error
		// Path returns the absolute path of a stored image and whether it exists.
		Path(filename string) (string, bool)
		Remove(filename string) error
	}

	Service struct {
		repo   Repository
		images ImageStore
	}
)

func NewService(repo Repository, images ImageStore) *Service {
	return &Service{repo: repo, images: images}
}

func (svc *Service) Create(nm NewMeme) (Meme, error) {
	return svc.repo.CreateMeme(Meme{
		ID:           uuid.NewString(),
		Filename:     nm.Filename,
		OriginalName: nm.OriginalName,
		UploadedBy:   nm.UploadedBy,
		UploadedAt:   time.Now().UTC().Format(time.RFC3339),
		Caption:      nm.Caption,
	})
}

func (svc *Service) QueryAll() ([]Meme, error) {
	return svc.repo.QueryAllMemes()
}

func (svc *Service) GetByID(id string) (Meme, error) {
	return svc.repo.GetMemeByID(id)
}

// Vote applies an up or down vote and re-derives the score.
func (svc *Service) Vote(id, voteType string) (Meme, error) {
	m, err := svc.repo.GetMemeByID(id)
	if err != nil {
		return Meme{}, err
	}
	switch voteType {
	case VoteUp:
		m.Upvotes++
	case VoteDown:
		m.Downvotes++
	default:
		return Meme{}, ErrInvalidVote
	}
	m.Score = m.Upvotes - m.Downvotes
	return svc.repo.UpdateMeme(m)
}

// HallOfFame returns the top memes by score, best first.
func (svc *Service) HallOfFame(limit int) ([]Meme, error) {
	if limit <= 0 {
		limit = DefaultHallOfFameSize
	}
	memes, err := svc.repo.QueryAllMemes()
	if err != nil {
		return nil, err
	}
	sort.SliceStable(memes, func(i, j int) bool { return memes[i].Score > memes[j].Score })
	if len(memes) > limit {
		memes = memes[:limit]
	}
	return memes, nil
}

// Delete removes the meme record and its stored image file.
func (svc *Service) Delete(id string) error {
	m, err := svc.repo.GetMemeByID(id)
	if err != nil {
		return err
	}
	if err := svc.images.Remove(m.Filename); err != nil {
		return err
	}
	return svc.repo.DeleteMeme(id)
}

// SaveImage stores an uploaded image under the given filename.
func (svc *Service) SaveImage(filename string, r io.Reader) error {
	return svc.images.Save(filename, r)
}

// ImagePath resolves a stored image filename to its absolute path.
func (svc *Service) ImagePath(filename string) (string, bool) {
	return svc.images.Path(filename)
}
