package engine

import (
	"fmt"
	"sort"
	"time"
)

// StreakResult is the longest consecutive-day completion run found.
type StreakResult struct {
	Habit  string
	Length int
}

// ChallengeResult is the habit with the most recorded completions. The name
// is historical: it counts completions, not missed occurrences.
type ChallengeResult struct {
	Habit string
	Count int
}

// Analysis is the derived view over the completion history.
type Analysis struct {
	LongestStreak      StreakResult
	CurrentDailyHabits []string
	MostChallenging    ChallengeResult
}

// Analyze walks the history in insertion order. Ties for both the longest
// streak and the completion count resolve to the first task encountered;
// a later task only wins on a strictly greater value.
func (s *Service) Analyze() (*Analysis, error) {
	a := &Analysis{CurrentDailyHabits: []string{}}

	for _, task := range s.doc.History.Tasks() {
		rec := s.doc.History.Get(task)

		dates := make([]time.Time, 0, len(rec.Completed))
		for _, ts := range rec.Completed {
			t, err := parseTimestamp(ts)
			if err != nil {
				return nil, fmt.Errorf("history for %q: %w", task, err)
			}
			y, m, d := t.Date()
			dates = append(dates, time.Date(y, m, d, 0, 0, 0, 0, time.Local))
		}
		sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

		maxStreak := longestRun(dates)
		if maxStreak > a.LongestStreak.Length {
			a.LongestStreak = StreakResult{Habit: task, Length: maxStreak}
		}

		if count := len(rec.Completed); count > a.MostChallenging.Count {
			a.MostChallenging = ChallengeResult{Habit: task, Count: count}
		}
	}

	for _, e := range s.doc.Uncompleted.Daily {
		a.CurrentDailyHabits = append(a.CurrentDailyHabits, fmt.Sprintf("%s at %s", e.Task, e.Schedule))
	}

	return a, nil
}

// longestRun finds the longest run of consecutive calendar days in a sorted
// date list. A repeated date resets the running streak to 1, same as a gap.
func longestRun(dates []time.Time) int {
	streak := 0
	max := 0
	var last time.Time

	for _, d := range dates {
		if !last.IsZero() && d.Equal(last.AddDate(0, 0, 1)) {
			streak++
		} else {
			streak = 1
		}
		last = d
		if streak > max {
			max = streak
		}
	}
	return max
}
