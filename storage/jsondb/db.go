// Package jsondb persists each entity collection as one flat JSON array
// file on disk. Every operation reads and rewrites the whole file; there are
// no durability guarantees beyond what the filesystem provides, matching the
// app's single-writer deployment.
package jsondb

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"
)

type DB struct {
	exam  *table
	task  *table
	quote *table
	meme  *table
}

// Open prepares the data directory and one table file per entity.
func Open(dataDir string) (*DB, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "creating data dir %s", dataDir)
	}

	db := &DB{}
	for _, t := range []struct {
		name string
		dest **table
	}{
		{"exams", &db.exam},
		{"tasks", &db.task},
		{"quotes", &db.quote},
		{"memes", &db.meme},
	} {
		tbl, err := newTable(dataDir, t.name)
		if err != nil {
			return nil, err
		}
		*t.dest = tbl
	}
	return db, nil
}

// table guards one JSON array file. The RWMutex is the only concurrency
// control; reads decode the full file, writes re-encode it.
type table struct {
	sync.RWMutex
	path string
}

func newTable(dir, name string) (*table, error) {
	t := &table{path: filepath.Join(dir, name+".json")}
	if _, err := os.Stat(t.path); os.IsNotExist(err) {
		if err := os.WriteFile(t.path, []byte("[]"), 0o644); err != nil {
			return nil, errors.Wrapf(err, "initializing %s", t.path)
		}
	} else if err != nil {
		return nil, errors.Wrapf(err, "checking %s", t.path)
	}
	return t, nil
}

// load decodes the table file into dest (a pointer to a slice).
// Callers must hold at least a read lock.
func (t *table) load(dest interface{}) error {
	data, err := os.ReadFile(t.path)
	if err != nil {
		return errors.Wrapf(err, "reading %s", t.path)
	}
	return errors.Wrapf(json.Unmarshal(data, dest), "decoding %s", t.path)
}

// save rewrites the table file from src. Callers must hold the write lock.
func (t *table) save(src interface{}) error {
	data, err := json.MarshalIndent(src, "", "  ")
	if err != nil {
		return errors.Wrapf(err, "encoding %s", t.path)
	}
	return errors.Wrapf(os.WriteFile(t.path, data, 0o644), "writing %s", t.path)
}
