package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

var (
	// ErrNotFound means no habit file exists yet at the store's path.
	ErrNotFound = errors.New("habit file not found")
	// ErrCorrupt means the habit file exists but cannot be parsed.
	ErrCorrupt = errors.New("habit file is corrupt")
)

// EnvFile overrides the default habit file location when set.
const EnvFile = "HABITKEEP_FILE"

// DefaultPath returns the default habit file location.
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(homeDir, ".habitkeep.json"), nil
}

// ResolvePath returns the habit file path, honoring the env override.
func ResolvePath() (string, error) {
	if p := os.Getenv(EnvFile); p != "" {
		return p, nil
	}
	return DefaultPath()
}

// Store reads and writes the whole habit document to a single JSON file.
// It assumes a single reader/writer; there is no locking, and concurrent
// writers would clobber each other's changes.
type Store struct {
	path string
	log  zerolog.Logger
}

func NewStore(path string, log zerolog.Logger) *Store {
	return &Store{path: path, log: log}
}

// Path returns the backing file location.
func (s *Store) Path() string { return s.path }

// Load deserializes the full document. Returns ErrNotFound when the file is
// missing and ErrCorrupt (wrapping the decode error) when it cannot be
// parsed; both are expected conditions the caller can recover from by
// falling back to an empty document.
func (s *Store) Load() (*Document, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, s.path)
		}
		return nil, fmt.Errorf("read habit file: %w", err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	doc.normalize()
	s.log.Debug().Str("path", s.path).Int("bytes", len(data)).Msg("habit data loaded")
	return &doc, nil
}

// Save serializes and replaces the full document. The write goes through a
// temp file plus rename so readers never observe a partial document. Write
// failures propagate; the caller's in-memory state may already be ahead of
// disk at that point and must treat the error as fatal to the operation.
func (s *Store) Save(doc *Document) error {
	data, err := json.MarshalIndent(doc, "", "    ")
	if err != nil {
		return fmt.Errorf("encode habit data: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".habitkeep-*.json")
	if err != nil {
		return fmt.Errorf("create temp habit file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("write habit file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("close habit file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("replace habit file: %w", err)
	}

	s.log.Info().Str("path", s.path).Msg("habit data saved")
	return nil
}

// InitEmpty creates, persists, and returns an empty document.
func (s *Store) InitEmpty() (*Document, error) {
	doc := NewDocument()
	if err := s.Save(doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// Delete removes the habit file. Returns ErrNotFound if there is nothing to
// delete.
func (s *Store) Delete() error {
	if err := os.Remove(s.path); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrNotFound, s.path)
		}
		return fmt.Errorf("delete habit file: %w", err)
	}
	s.log.Info().Str("path", s.path).Msg("habit file deleted")
	return nil
}
