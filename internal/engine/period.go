package engine

import (
	"strings"

	"habitkeep/internal/storage"
)

// Period is the recurrence class of a habit. The set is closed: no custom
// periods.
type Period string

const (
	PeriodDaily   Period = "daily"
	PeriodWeekly  Period = "weekly"
	PeriodMonthly Period = "monthly"
	PeriodYearly  Period = "yearly"
	PeriodOnceOff Period = "once_off"
)

// Periods lists all periods in bucket order. Output that iterates periods
// (listings, due matching) follows this order so results stay deterministic.
var Periods = []Period{PeriodDaily, PeriodWeekly, PeriodMonthly, PeriodYearly, PeriodOnceOff}

func (p Period) IsValid() bool {
	switch p {
	case PeriodDaily, PeriodWeekly, PeriodMonthly, PeriodYearly, PeriodOnceOff:
		return true
	default:
		return false
	}
}

// Capitalized renders the bucket name for listings, uppercasing only the
// first letter ("once_off" stays "Once_off").
func (p Period) Capitalized() string {
	s := string(p)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// Label renders the display name used in due-matcher lines.
func (p Period) Label() string {
	if p == PeriodOnceOff {
		return "Once-off"
	}
	return p.Capitalized()
}

// ParsePeriod parses user input to a Period.
func ParsePeriod(input string) (Period, error) {
	s := strings.TrimSpace(strings.ToLower(input))
	p := Period(s)
	if !p.IsValid() {
		return "", InvalidPeriodError{Input: input}
	}
	return p, nil
}

func (p Period) entries(d *storage.Document) *[]storage.Entry {
	switch p {
	case PeriodDaily:
		return &d.Uncompleted.Daily
	case PeriodWeekly:
		return &d.Uncompleted.Weekly
	case PeriodMonthly:
		return &d.Uncompleted.Monthly
	case PeriodYearly:
		return &d.Uncompleted.Yearly
	case PeriodOnceOff:
		return &d.Uncompleted.OnceOff
	default:
		return nil
	}
}

func (p Period) completions(d *storage.Document) *[]storage.Completion {
	switch p {
	case PeriodDaily:
		return &d.Completed.Daily
	case PeriodWeekly:
		return &d.Completed.Weekly
	case PeriodMonthly:
		return &d.Completed.Monthly
	case PeriodYearly:
		return &d.Completed.Yearly
	case PeriodOnceOff:
		return &d.Completed.OnceOff
	default:
		return nil
	}
}
