package snapshot

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mcdev12/campeonato/go/internal/models"
	"github.com/rs/zerolog/log"
)

// Document is the serialized form of the whole championship. Entities live in
// flat collections and reference each other by id, so the cyclic
// team/player/match graph round-trips without embedded copies.
type Document struct {
	SavedAt time.Time       `json:"saved_at"`
	Teams   []models.Team   `json:"teams"`
	Players []models.Player `json:"players"`
	Matches []models.Match  `json:"matches"`
}

// Store persists championship documents as pretty-printed JSON files.
type Store struct {
	path string
}

// NewStore creates a store writing to the given file path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the file path the store reads and writes.
func (s *Store) Path() string {
	return s.path
}

// Save writes the document atomically: marshal to a temp file in the target
// directory, then rename over the destination.
func (s *Store) Save(doc *Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create snapshot directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp snapshot: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write temp snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close temp snapshot: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("rename snapshot into place: %w", err)
	}
	return nil
}

// Load reads the document back. A missing or unreadable or corrupt file
// yields an empty document so the championship starts fresh instead of
// failing; the condition is logged, never returned.
func (s *Store) Load() *Document {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Info().Str("path", s.path).Msg("no snapshot file, starting empty")
		} else {
			log.Warn().Err(err).Str("path", s.path).Msg("cannot read snapshot, starting empty")
		}
		return &Document{}
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		log.Warn().Err(err).Str("path", s.path).Msg("corrupt snapshot, starting empty")
		return &Document{}
	}

	log.Info().
		Str("path", s.path).
		Int("teams", len(doc.Teams)).
		Int("matches", len(doc.Matches)).
		Msg("snapshot loaded")
	return &doc
}
