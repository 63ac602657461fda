package engine

import "fmt"

// InvalidPeriodError indicates a period name outside the closed set. This is
// routine user input, not a fault; callers report it and abort the operation
// without touching state.
type InvalidPeriodError struct {
	Input string
}

func (e InvalidPeriodError) Error() string {
	return fmt.Sprintf("invalid period %q: choose from daily, weekly, monthly, yearly, once_off", e.Input)
}

// NotFoundError indicates no entry matched the task in the targeted bucket.
type NotFoundError struct {
	Task      string
	Period    Period
	Completed bool
}

func (e NotFoundError) Error() string {
	bucket := "uncompleted"
	if e.Completed {
		bucket = "completed"
	}
	return fmt.Sprintf("habit %q not found in %s %s habits", e.Task, e.Period, bucket)
}

// InvalidDateError indicates a date that does not parse as YYYY-MM-DD.
type InvalidDateError struct {
	Input string
}

func (e InvalidDateError) Error() string {
	return fmt.Sprintf("invalid date %q: use YYYY-MM-DD", e.Input)
}

// InvalidTimestampError indicates a completion timestamp in neither of the
// accepted layouts.
type InvalidTimestampError struct {
	Input string
}

func (e InvalidTimestampError) Error() string {
	return fmt.Sprintf("invalid timestamp %q: use YYYY-MM-DD HH:MM", e.Input)
}
