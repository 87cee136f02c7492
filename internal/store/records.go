// Package store persists completed-game conversation records.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/rttlabs/rtt/internal/model/game"
)

// Store saves a completed game's record and reports where it was written.
type Store interface {
	Save(rec game.Record) (string, error)
}

// FileStore writes one JSON file per game under a username-scoped directory,
// created on demand. Filenames repeat at sub-second granularity; the last
// write wins.
type FileStore struct {
	root string
}

// NewFileStore returns a FileStore rooted at dir ("logs" when empty).
func NewFileStore(dir string) *FileStore {
	if dir == "" {
		dir = "logs"
	}
	return &FileStore{root: dir}
}

// Save assigns the record an ID and writes it to
// <root>/<username>/conversation_<timestamp>.json.
func (s *FileStore) Save(rec game.Record) (string, error) {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}

	dir := filepath.Join(s.root, rec.Username)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create record directory: %w", err)
	}

	payload, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode record: %w", err)
	}

	path := filepath.Join(dir, fmt.Sprintf("conversation_%s.json", rec.Timestamp))
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		return "", fmt.Errorf("write record: %w", err)
	}

	return path, nil
}

// Load reads a previously saved record back from disk.
func (s *FileStore) Load(path string) (game.Record, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		return game.Record{}, fmt.Errorf("read record: %w", err)
	}

	var rec game.Record
	if err := json.Unmarshal(payload, &rec); err != nil {
		return game.Record{}, fmt.Errorf("decode record: %w", err)
	}
	return rec, nil
}
