package engine

import (
	"errors"
	"time"

	"github.com/rs/zerolog"

	"habitkeep/internal/storage"
)

// Timestamp layouts. Auto-generated timestamps carry microsecond precision;
// manually supplied ones may be minute precision. Both are local time.
const (
	TimestampLayout       = "2006-01-02 15:04:05.000000"
	TimestampMinuteLayout = "2006-01-02 15:04"
	DateLayout            = "2006-01-02"
)

// Service owns the habit document and its store. Every mutating operation
// persists the whole document synchronously before returning; if the save
// fails the in-memory state has already advanced, so callers must treat the
// returned error as fatal to the operation.
//
// Service is not safe for concurrent use. One process at a time is assumed
// to hold the habit file.
type Service struct {
	store *storage.Store
	doc   *storage.Document
	log   zerolog.Logger
}

// NewService loads the document from store. A missing or corrupt file is an
// expected startup condition: the service logs it and starts from a freshly
// persisted empty document instead.
func NewService(store *storage.Store, log zerolog.Logger) (*Service, error) {
	doc, err := store.Load()
	switch {
	case err == nil:
	case errors.Is(err, storage.ErrNotFound), errors.Is(err, storage.ErrCorrupt):
		log.Warn().Err(err).Msg("starting with empty habit data")
		doc, err = store.InitEmpty()
		if err != nil {
			return nil, err
		}
	default:
		return nil, err
	}
	return &Service{store: store, doc: doc, log: log}, nil
}

func (s *Service) Store() *storage.Store       { return s.store }
func (s *Service) Document() *storage.Document { return s.doc }

// Uncompleted returns the uncompleted entries for a period. Invalid periods
// yield nil. The slice is shared with the document; callers must not mutate.
func (s *Service) Uncompleted(p Period) []storage.Entry {
	b := p.entries(s.doc)
	if b == nil {
		return nil
	}
	return *b
}

func formatTimestamp(t time.Time) string {
	return t.Format(TimestampLayout)
}

// parseTimestamp accepts exactly the two layouts the system writes. Anything
// else is a soft InvalidTimestampError, never silently ignored.
func parseTimestamp(value string) (time.Time, error) {
	if t, err := time.ParseInLocation(TimestampLayout, value, time.Local); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation(TimestampMinuteLayout, value, time.Local); err == nil {
		return t, nil
	}
	return time.Time{}, InvalidTimestampError{Input: value}
}
