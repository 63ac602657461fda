package engine

import (
	"fmt"
	"strings"
	"time"
)

// TasksDueOn returns display lines for every uncompleted habit due on the
// given YYYY-MM-DD date, in fixed period order (daily first, once-off last).
//
// Matching is deliberately loose, mirroring the schedule strings users type:
// weekly schedules match on weekday-name containment, the other periods on a
// date-component prefix. "Monday 09:00" therefore matches any date falling
// on a Monday, and "01 09:00" matches the first of every month.
func (s *Service) TasksDueOn(date string) ([]string, error) {
	target, err := time.ParseInLocation(DateLayout, date, time.Local)
	if err != nil {
		return nil, InvalidDateError{Input: date}
	}

	weekday := target.Weekday().String()
	dayOfMonth := target.Format("02")
	monthDay := target.Format("01-02")

	due := []string{}
	for _, p := range Periods {
		for _, e := range *p.entries(s.doc) {
			if !scheduleMatches(p, e.Schedule, date, weekday, dayOfMonth, monthDay) {
				continue
			}
			due = append(due, fmt.Sprintf("%s: %s at %s", p.Label(), e.Task, e.Schedule))
		}
	}
	return due, nil
}

func scheduleMatches(p Period, schedule, date, weekday, dayOfMonth, monthDay string) bool {
	switch p {
	case PeriodDaily:
		return true
	case PeriodWeekly:
		return strings.Contains(schedule, weekday)
	case PeriodMonthly:
		return strings.HasPrefix(schedule, dayOfMonth)
	case PeriodYearly:
		return strings.HasPrefix(schedule, monthDay)
	case PeriodOnceOff:
		return strings.HasPrefix(schedule, date)
	default:
		return false
	}
}
