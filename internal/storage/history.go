package storage

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// HistoryRecord is the per-task audit trail. Created and Removed stay nil
// until the corresponding event happens; Completed only ever grows.
type HistoryRecord struct {
	Created   *string  `json:"created"`
	Completed []string `json:"completed"`
	Removed   *string  `json:"removed"`
}

// History maps task names to their records while preserving insertion
// order. Order matters: analyzer tie-breaks resolve to the first task seen,
// so a save/load round trip must not reshuffle keys. A plain map cannot
// guarantee that, hence the explicit key slice and hand-rolled JSON codec.
type History struct {
	order   []string
	records map[string]*HistoryRecord
}

func NewHistory() *History {
	return &History{records: map[string]*HistoryRecord{}}
}

// Len returns the number of tracked tasks.
func (h *History) Len() int { return len(h.order) }

// Tasks returns task names in insertion order. The returned slice is shared;
// callers must not mutate it.
func (h *History) Tasks() []string { return h.order }

// Get returns the record for task, or nil if the task has no history.
func (h *History) Get(task string) *HistoryRecord { return h.records[task] }

// Ensure returns the record for task, creating an empty one (appended at the
// end of the insertion order) if none exists.
func (h *History) Ensure(task string) *HistoryRecord {
	if r, ok := h.records[task]; ok {
		return r
	}
	r := &HistoryRecord{Completed: []string{}}
	h.records[task] = r
	h.order = append(h.order, task)
	return r
}

func (h *History) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, task := range h.order {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(task)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		rec, err := json.Marshal(h.records[task])
		if err != nil {
			return nil, err
		}
		buf.Write(rec)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (h *History) UnmarshalJSON(data []byte) error {
	h.order = nil
	h.records = map[string]*HistoryRecord{}

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("history: %w", err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("history: expected object, got %v", tok)
	}

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("history key: %w", err)
		}
		task, ok := tok.(string)
		if !ok {
			return fmt.Errorf("history key: expected string, got %v", tok)
		}
		var rec HistoryRecord
		if err := dec.Decode(&rec); err != nil {
			return fmt.Errorf("history record %q: %w", task, err)
		}
		if rec.Completed == nil {
			rec.Completed = []string{}
		}
		if _, dup := h.records[task]; !dup {
			h.order = append(h.order, task)
		}
		h.records[task] = &rec
	}

	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("history: %w", err)
	}
	return nil
}
