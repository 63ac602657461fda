package storage

import (
	"encoding/json"
	"fmt"
)

// Entry is an uncompleted habit: a task name plus its period-dependent
// schedule string. On the wire it is a two-element array [task, schedule].
type Entry struct {
	Task     string
	Schedule string
}

func (e Entry) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]string{e.Task, e.Schedule})
}

func (e *Entry) UnmarshalJSON(data []byte) error {
	var pair [2]string
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("habit entry: %w", err)
	}
	e.Task = pair[0]
	e.Schedule = pair[1]
	return nil
}

// Completion is a completed-habit record: task name plus the completion
// timestamp string. Wire format is a two-element array [task, timestamp].
type Completion struct {
	Task        string
	CompletedAt string
}

func (c Completion) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]string{c.Task, c.CompletedAt})
}

func (c *Completion) UnmarshalJSON(data []byte) error {
	var pair [2]string
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("completion entry: %w", err)
	}
	c.Task = pair[0]
	c.CompletedAt = pair[1]
	return nil
}

// EntryBuckets holds one uncompleted-habit list per period. The five buckets
// are fixed; struct fields keep the serialized key order stable.
type EntryBuckets struct {
	Daily   []Entry `json:"daily"`
	Weekly  []Entry `json:"weekly"`
	Monthly []Entry `json:"monthly"`
	Yearly  []Entry `json:"yearly"`
	OnceOff []Entry `json:"once_off"`
}

// CompletionBuckets mirrors EntryBuckets for completed records.
type CompletionBuckets struct {
	Daily   []Completion `json:"daily"`
	Weekly  []Completion `json:"weekly"`
	Monthly []Completion `json:"monthly"`
	Yearly  []Completion `json:"yearly"`
	OnceOff []Completion `json:"once_off"`
}

// Document is the whole persisted habit state. Every mutation rewrites the
// full document; there is no incremental persistence.
type Document struct {
	Uncompleted EntryBuckets      `json:"uncompleted_habits"`
	Completed   CompletionBuckets `json:"completed_habits"`
	History     *History          `json:"history"`
}

// NewDocument returns an empty document with all five buckets present and an
// empty history, matching the on-disk shape of a freshly initialized file.
func NewDocument() *Document {
	return &Document{
		Uncompleted: EntryBuckets{
			Daily:   []Entry{},
			Weekly:  []Entry{},
			Monthly: []Entry{},
			Yearly:  []Entry{},
			OnceOff: []Entry{},
		},
		Completed: CompletionBuckets{
			Daily:   []Completion{},
			Weekly:  []Completion{},
			Monthly: []Completion{},
			Yearly:  []Completion{},
			OnceOff: []Completion{},
		},
		History: NewHistory(),
	}
}

func (d *Document) normalize() {
	if d.History == nil {
		d.History = NewHistory()
	}
	for _, b := range []*[]Entry{
		&d.Uncompleted.Daily, &d.Uncompleted.Weekly, &d.Uncompleted.Monthly,
		&d.Uncompleted.Yearly, &d.Uncompleted.OnceOff,
	} {
		if *b == nil {
			*b = []Entry{}
		}
	}
	for _, b := range []*[]Completion{
		&d.Completed.Daily, &d.Completed.Weekly, &d.Completed.Monthly,
		&d.Completed.Yearly, &d.Completed.OnceOff,
	} {
		if *b == nil {
			*b = []Completion{}
		}
	}
}
