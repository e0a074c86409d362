// Package images stores uploaded image files in a single flat directory.
package images

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/devshaki/ShakSite/core/meme"
)

type store struct {
	dir string
}

var _ meme.ImageStore = (*store)(nil) // interface compliance check

// NewMemeStore prepares the meme image directory under uploadsDir.
func NewMemeStore(uploadsDir string) (meme.ImageStore, error) {
	dir := filepath.Join(uploadsDir, "memes")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "creating uploads dir %s", dir)
	}
	return &store{dir: dir}, nil
}

func (s *store) Save(filename string, r io.Reader) error {
	path, ok := s.resolve(filename)
	if !ok {
		return errors.Errorf("invalid filename %q", filename)
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "creating %s", path)
	}
	defer f.Close()
	if _, err := io.Copy(f, r); err != nil {
		return errors.Wrapf(err, "writing %s", path)
	}
	return nil
}

func (s *store) Path(filename string) (string, bool) {
	path, ok := s.resolve(filename)
	if !ok {
		return "", false
	}
	if _, err := os.Stat(path); err != nil {
		return "", false
	}
	return path, true
}

func (s *store) Remove(filename string) error {
	path, ok := s.resolve(filename)
	if !ok {
		return nil
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return errors.Wrapf(err, "removing %s", path)
	}
	return nil
}

// resolve keeps lookups inside the store directory; filenames are generated
// server-side but image serving takes them from the URL.
func (s *store) resolve(filename string) (string, bool) {
	if filename == "" || filename != filepath.Base(filename) || strings.HasPrefix(filename, ".") {
		return "", false
	}
	return filepath.Join(s.dir, filename), true
}
