// Package history persists the last watched episode of every title.
//
// The store is a single JSON object keyed by anime title. Titles are the only
// key, so two different anime sharing a title share one entry. Each write
// rewrites the whole mapping; there is no locking, and concurrent writers
// from several processes may lose updates.
package history

import (
	"bytes"
	"errors"
	"os"
	"sort"
	"time"

	"github.com/animeflow/animeflow/filesystem"
	"github.com/animeflow/animeflow/log"
	"github.com/animeflow/animeflow/source"
	"github.com/animeflow/animeflow/where"
	json "github.com/goccy/go-json"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/afero"
)

// ErrUnknownTitle is returned by Remove for a title without an entry.
var ErrUnknownTitle = errors.New("no history entry for title")

// Store reads and writes the history file at a fixed path.
type Store struct {
	path string
	now  func() time.Time
}

// New creates a store backed by the file at path.
func New(path string) *Store {
	return &Store{path: path, now: time.Now}
}

// Default returns the store at the configured history location.
func Default() *Store {
	return New(where.History())
}

// Path returns the backing file location.
func (s *Store) Path() string {
	return s.path
}

// Load returns every entry. A missing or unreadable file yields an empty mapping.
func (s *Store) Load() map[string]Entry {
	entries := make(map[string]Entry)

	data, err := afero.ReadFile(filesystem.API(), s.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.WithFields(log.Fields{"path": s.path}).Warn("reading history: ", err)
		}
		return entries
	}

	if err := json.Unmarshal(data, &entries); err != nil {
		log.WithFields(log.Fields{"path": s.path}).Warn("ignoring corrupt history: ", err)
		return make(map[string]Entry)
	}

	if entries == nil {
		entries = make(map[string]Entry)
	}

	return entries
}

// Save records num as the last watched episode of anime. Progress is
// overwritten unconditionally, so replaying an earlier episode moves it back.
func (s *Store) Save(anime source.AnimeSummary, num int) error {
	entries := s.Load()
	entries[anime.Title] = newEntry(anime, num, s.now())
	return s.write(entries)
}

// Get returns the entry of title, if any.
func (s *Store) Get(title string) mo.Option[Entry] {
	entry, ok := s.Load()[title]
	if !ok {
		return mo.None[Entry]()
	}
	return mo.Some(entry)
}

// Recent returns up to n entries, most recently watched first.
// A non-positive n returns all of them.
func (s *Store) Recent(n int) []Entry {
	entries := lo.Values(s.Load())
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Timestamp == entries[j].Timestamp {
			return entries[i].AnimeTitle < entries[j].AnimeTitle
		}
		return entries[i].Timestamp > entries[j].Timestamp
	})

	if n > 0 && len(entries) > n {
		entries = entries[:n]
	}

	return entries
}

// Remove deletes the entry of title.
func (s *Store) Remove(title string) error {
	entries := s.Load()
	if _, ok := entries[title]; !ok {
		return ErrUnknownTitle
	}

	delete(entries, title)
	return s.write(entries)
}

// Clear deletes every entry.
func (s *Store) Clear() error {
	return s.write(make(map[string]Entry))
}

func (s *Store) write(entries map[string]Entry) error {
	var buf bytes.Buffer

	encoder := json.NewEncoder(&buf)
	encoder.SetIndent("", "    ")
	encoder.SetEscapeHTML(false)

	if err := encoder.Encode(entries); err != nil {
		return err
	}

	return filesystem.WriteFileAtomic(s.path, buf.Bytes(), 0o644)
}
