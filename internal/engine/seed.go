package engine

import (
	"time"

	"habitkeep/internal/storage"
)

type seedHabit struct {
	period   Period
	task     string
	schedule string
	hour     int
	minute   int
}

var seedHabits = []seedHabit{
	{PeriodDaily, "Morning Exercise", "07:00", 7, 0},
	{PeriodDaily, "Evening Reading", "20:00", 20, 0},
	{PeriodWeekly, "Weekly Meeting", "Monday 09:00", 9, 0},
	{PeriodWeekly, "Grocery Shopping", "Saturday 10:00", 10, 0},
	{PeriodMonthly, "Pay Rent", "01 09:00", 9, 0},
	{PeriodMonthly, "Team Meeting", "15 11:00", 11, 0},
	{PeriodYearly, "Annual Review", "12-31 10:00", 10, 0},
	{PeriodYearly, "Doctor Checkup", "06-15 14:00", 14, 0},
	{PeriodOnceOff, "Project Deadline", "2024-11-01 17:00", 17, 0},
	{PeriodOnceOff, "Friend's Wedding", "2024-12-15 16:00", 16, 0},
}

// Seed installs the predefined habit set and simulates four weeks of
// tracking history: daily habits completed every day, weekly habits once a
// week, monthly habits once (15 days back), yearly habits on the previous
// year's end. Useful for demos and for exercising the analyzer.
func (s *Service) Seed() error {
	now := time.Now()
	created := formatTimestamp(now)
	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, time.Local)

	for _, h := range seedHabits {
		entries := h.period.entries(s.doc)
		*entries = append(*entries, storage.Entry{Task: h.task, Schedule: h.schedule})
		if s.doc.History.Get(h.task) == nil {
			s.doc.History.Ensure(h.task).Created = &created
		}
	}

	at := func(daysAgo, hour, minute int) string {
		t := today.AddDate(0, 0, -daysAgo)
		return formatTimestamp(time.Date(t.Year(), t.Month(), t.Day(), hour, minute, 0, 0, time.Local))
	}

	for _, h := range seedHabits {
		rec := s.doc.History.Ensure(h.task)
		switch h.period {
		case PeriodDaily:
			for i := 0; i < 28; i++ {
				rec.Completed = append(rec.Completed, at(28-i, h.hour, h.minute))
			}
		case PeriodWeekly:
			for i := 0; i < 4; i++ {
				rec.Completed = append(rec.Completed, at((4-i)*7, h.hour, h.minute))
			}
		case PeriodMonthly:
			rec.Completed = append(rec.Completed, at(15, h.hour, h.minute))
		case PeriodYearly:
			rec.Completed = append(rec.Completed, "2023-12-31 10:00:00.000000")
		}
	}

	return s.store.Save(s.doc)
}
