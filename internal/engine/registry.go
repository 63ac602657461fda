package engine

import (
	"time"

	"habitkeep/internal/storage"
)

// CompleteResult describes a successful completion.
type CompleteResult struct {
	Task        string
	Period      Period
	CompletedAt string
	Descheduled bool // true when a once-off habit left the uncompleted bucket
}

func findEntry(entries []storage.Entry, task string) int {
	for i := range entries {
		if entries[i].Task == task {
			return i
		}
	}
	return -1
}

func findCompletion(comps []storage.Completion, task string) int {
	for i := range comps {
		if comps[i].Task == task {
			return i
		}
	}
	return -1
}

// AddUncompleted appends a habit to the period's uncompleted bucket. The
// creation time is recorded only when the task has no history record yet; an
// existing record keeps its original created timestamp (or its nil, if the
// record was born from a removal).
func (s *Service) AddUncompleted(period Period, task, schedule string) error {
	if !period.IsValid() {
		return InvalidPeriodError{Input: string(period)}
	}

	entries := period.entries(s.doc)
	*entries = append(*entries, storage.Entry{Task: task, Schedule: schedule})

	if s.doc.History.Get(task) == nil {
		ts := formatTimestamp(time.Now())
		s.doc.History.Ensure(task).Created = &ts
	}

	return s.store.Save(s.doc)
}

// RemoveUncompleted removes the first matching entry and stamps the task's
// removal time. Completion history is never retracted.
func (s *Service) RemoveUncompleted(period Period, task string) error {
	if !period.IsValid() {
		return InvalidPeriodError{Input: string(period)}
	}

	entries := period.entries(s.doc)
	idx := findEntry(*entries, task)
	if idx < 0 {
		return NotFoundError{Task: task, Period: period}
	}
	*entries = append((*entries)[:idx], (*entries)[idx+1:]...)

	ts := formatTimestamp(time.Now())
	s.doc.History.Ensure(task).Removed = &ts

	return s.store.Save(s.doc)
}

// Complete marks the first matching uncompleted habit as done now. Recurring
// habits stay in the uncompleted bucket so future occurrences remain
// schedulable; a once-off habit is descheduled on completion.
func (s *Service) Complete(period Period, task string) (*CompleteResult, error) {
	if !period.IsValid() {
		return nil, InvalidPeriodError{Input: string(period)}
	}

	entries := period.entries(s.doc)
	idx := findEntry(*entries, task)
	if idx < 0 {
		return nil, NotFoundError{Task: task, Period: period}
	}

	ts := formatTimestamp(time.Now())
	comps := period.completions(s.doc)
	*comps = append(*comps, storage.Completion{Task: task, CompletedAt: ts})

	rec := s.doc.History.Ensure(task)
	rec.Completed = append(rec.Completed, ts)

	descheduled := false
	if period == PeriodOnceOff {
		*entries = append((*entries)[:idx], (*entries)[idx+1:]...)
		descheduled = true
	}

	if err := s.store.Save(s.doc); err != nil {
		return nil, err
	}
	return &CompleteResult{
		Task:        task,
		Period:      period,
		CompletedAt: ts,
		Descheduled: descheduled,
	}, nil
}

// LogCompleted backfills a completion without requiring a prior uncompleted
// entry. The timestamp must be in one of the two accepted layouts so the
// analyzer can read it back later.
func (s *Service) LogCompleted(period Period, task, completedAt string) error {
	if !period.IsValid() {
		return InvalidPeriodError{Input: string(period)}
	}
	if _, err := parseTimestamp(completedAt); err != nil {
		return err
	}

	comps := period.completions(s.doc)
	*comps = append(*comps, storage.Completion{Task: task, CompletedAt: completedAt})

	rec := s.doc.History.Ensure(task)
	rec.Completed = append(rec.Completed, completedAt)

	return s.store.Save(s.doc)
}

// RemoveCompleted removes the first matching completed record and stamps the
// task's removal time. The history's completed list keeps the timestamp.
func (s *Service) RemoveCompleted(period Period, task string) error {
	if !period.IsValid() {
		return InvalidPeriodError{Input: string(period)}
	}

	comps := period.completions(s.doc)
	idx := findCompletion(*comps, task)
	if idx < 0 {
		return NotFoundError{Task: task, Period: period, Completed: true}
	}
	*comps = append((*comps)[:idx], (*comps)[idx+1:]...)

	ts := formatTimestamp(time.Now())
	s.doc.History.Ensure(task).Removed = &ts

	return s.store.Save(s.doc)
}

// EditUncompleted renames and/or reschedules the first matching uncompleted
// entry in place. Empty arguments leave the corresponding field unchanged.
// Renames are not tracked in history.
func (s *Service) EditUncompleted(period Period, oldTask, newTask, newSchedule string) error {
	if !period.IsValid() {
		return InvalidPeriodError{Input: string(period)}
	}

	entries := period.entries(s.doc)
	idx := findEntry(*entries, oldTask)
	if idx < 0 {
		return NotFoundError{Task: oldTask, Period: period}
	}
	if newTask != "" {
		(*entries)[idx].Task = newTask
	}
	if newSchedule != "" {
		(*entries)[idx].Schedule = newSchedule
	}

	return s.store.Save(s.doc)
}
