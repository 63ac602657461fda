package engine

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"habitkeep/internal/storage"
)

func newTestService(t *testing.T) *Service {
	t.Helper()

	path := filepath.Join(t.TempDir(), "habits.json")
	st := storage.NewStore(path, zerolog.Nop())
	svc, err := NewService(st, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return svc
}

func TestAddThenRemoveUncompleted(t *testing.T) {
	svc := newTestService(t)

	if err := svc.AddUncompleted(PeriodDaily, "Drink Water", "08:00"); err != nil {
		t.Fatalf("AddUncompleted: %v", err)
	}
	rec := svc.Document().History.Get("Drink Water")
	if rec == nil || rec.Created == nil {
		t.Fatalf("expected created timestamp in history, got %+v", rec)
	}

	if err := svc.RemoveUncompleted(PeriodDaily, "Drink Water"); err != nil {
		t.Fatalf("RemoveUncompleted: %v", err)
	}
	if n := len(svc.Document().Uncompleted.Daily); n != 0 {
		t.Fatalf("daily bucket has %d entries, want 0", n)
	}
	rec = svc.Document().History.Get("Drink Water")
	if rec.Removed == nil {
		t.Fatal("expected removed timestamp in history")
	}
}

func TestRemoveUncompletedNotFound(t *testing.T) {
	svc := newTestService(t)

	err := svc.RemoveUncompleted(PeriodDaily, "Ghost")
	var nf NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("err = %v, want NotFoundError", err)
	}
	if nf.Task != "Ghost" || nf.Period != PeriodDaily {
		t.Fatalf("unexpected error detail: %+v", nf)
	}
}

func TestInvalidPeriod(t *testing.T) {
	svc := newTestService(t)

	err := svc.AddUncompleted(Period("fortnightly"), "X", "08:00")
	var ip InvalidPeriodError
	if !errors.As(err, &ip) {
		t.Fatalf("err = %v, want InvalidPeriodError", err)
	}
	if _, err := ParsePeriod("Weekly "); err != nil {
		t.Fatalf("ParsePeriod should normalize case/space: %v", err)
	}
}

func TestCompleteRecurringKeepsEntry(t *testing.T) {
	svc := newTestService(t)

	if err := svc.AddUncompleted(PeriodWeekly, "Gym", "Tuesday 18:00"); err != nil {
		t.Fatalf("AddUncompleted: %v", err)
	}
	res, err := svc.Complete(PeriodWeekly, "Gym")
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if res.Descheduled {
		t.Fatal("recurring habit should not be descheduled")
	}
	if n := len(svc.Document().Uncompleted.Weekly); n != 1 {
		t.Fatalf("weekly uncompleted has %d entries, want 1", n)
	}
	if n := len(svc.Document().Completed.Weekly); n != 1 {
		t.Fatalf("weekly completed has %d entries, want 1", n)
	}
	rec := svc.Document().History.Get("Gym")
	if len(rec.Completed) != 1 {
		t.Fatalf("history completed has %d entries, want 1", len(rec.Completed))
	}
}

func TestCompleteOnceOffDeschedules(t *testing.T) {
	svc := newTestService(t)

	if err := svc.AddUncompleted(PeriodOnceOff, "File Taxes", "2024-10-31 12:00"); err != nil {
		t.Fatalf("AddUncompleted: %v", err)
	}
	res, err := svc.Complete(PeriodOnceOff, "File Taxes")
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if !res.Descheduled {
		t.Fatal("once-off habit should be descheduled")
	}
	if n := len(svc.Document().Uncompleted.OnceOff); n != 0 {
		t.Fatalf("once_off uncompleted has %d entries, want 0", n)
	}
	if n := len(svc.Document().Completed.OnceOff); n != 1 {
		t.Fatalf("once_off completed has %d entries, want 1", n)
	}
}

func TestCompleteNotFound(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Complete(PeriodDaily, "Ghost")
	var nf NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("err = %v, want NotFoundError", err)
	}
}

func TestLogCompletedValidatesTimestamp(t *testing.T) {
	svc := newTestService(t)

	err := svc.LogCompleted(PeriodDaily, "Run", "yesterday-ish")
	var it InvalidTimestampError
	if !errors.As(err, &it) {
		t.Fatalf("err = %v, want InvalidTimestampError", err)
	}

	if err := svc.LogCompleted(PeriodDaily, "Run", "2024-10-14 07:30"); err != nil {
		t.Fatalf("LogCompleted minute precision: %v", err)
	}
	if err := svc.LogCompleted(PeriodDaily, "Run", "2024-10-15 07:30:00.000000"); err != nil {
		t.Fatalf("LogCompleted microsecond precision: %v", err)
	}
	rec := svc.Document().History.Get("Run")
	if len(rec.Completed) != 2 {
		t.Fatalf("history completed has %d entries, want 2", len(rec.Completed))
	}
	if rec.Created != nil {
		t.Fatal("backfilled task should not gain a created timestamp")
	}
}

func TestRemoveCompleted(t *testing.T) {
	svc := newTestService(t)

	if err := svc.LogCompleted(PeriodMonthly, "Pay Bills", "2024-10-01 12:00"); err != nil {
		t.Fatalf("LogCompleted: %v", err)
	}
	if err := svc.RemoveCompleted(PeriodMonthly, "Pay Bills"); err != nil {
		t.Fatalf("RemoveCompleted: %v", err)
	}
	if n := len(svc.Document().Completed.Monthly); n != 0 {
		t.Fatalf("monthly completed has %d entries, want 0", n)
	}
	rec := svc.Document().History.Get("Pay Bills")
	if rec.Removed == nil {
		t.Fatal("expected removed timestamp")
	}
	if len(rec.Completed) != 1 {
		t.Fatal("history completion must survive removal from the bucket")
	}

	err := svc.RemoveCompleted(PeriodMonthly, "Pay Bills")
	var nf NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("err = %v, want NotFoundError", err)
	}
	if !nf.Completed {
		t.Fatal("NotFoundError should point at the completed bucket")
	}
}

func TestEditUncompleted(t *testing.T) {
	svc := newTestService(t)

	if err := svc.AddUncompleted(PeriodDaily, "Stretch", "06:00"); err != nil {
		t.Fatalf("AddUncompleted: %v", err)
	}
	if err := svc.EditUncompleted(PeriodDaily, "Stretch", "", "06:30"); err != nil {
		t.Fatalf("EditUncompleted reschedule: %v", err)
	}
	e := svc.Document().Uncompleted.Daily[0]
	if e.Task != "Stretch" || e.Schedule != "06:30" {
		t.Fatalf("entry = %+v, want Stretch at 06:30", e)
	}

	if err := svc.EditUncompleted(PeriodDaily, "Stretch", "Morning Stretch", ""); err != nil {
		t.Fatalf("EditUncompleted rename: %v", err)
	}
	e = svc.Document().Uncompleted.Daily[0]
	if e.Task != "Morning Stretch" || e.Schedule != "06:30" {
		t.Fatalf("entry = %+v, want Morning Stretch at 06:30", e)
	}
	if svc.Document().History.Get("Morning Stretch") != nil {
		t.Fatal("rename must not create a history record")
	}
}

func TestDuplicateTasksResolveFirstMatch(t *testing.T) {
	svc := newTestService(t)

	if err := svc.AddUncompleted(PeriodDaily, "Walk", "07:00"); err != nil {
		t.Fatalf("AddUncompleted: %v", err)
	}
	if err := svc.AddUncompleted(PeriodDaily, "Walk", "19:00"); err != nil {
		t.Fatalf("AddUncompleted duplicate: %v", err)
	}
	if err := svc.RemoveUncompleted(PeriodDaily, "Walk"); err != nil {
		t.Fatalf("RemoveUncompleted: %v", err)
	}
	daily := svc.Document().Uncompleted.Daily
	if len(daily) != 1 || daily[0].Schedule != "19:00" {
		t.Fatalf("daily = %+v, want the second Walk entry to survive", daily)
	}
}

func TestPersistAcrossServices(t *testing.T) {
	path := filepath.Join(t.TempDir(), "habits.json")
	st := storage.NewStore(path, zerolog.Nop())

	svc, err := NewService(st, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	if err := svc.AddUncompleted(PeriodYearly, "Renew Passport", "03-01 10:00"); err != nil {
		t.Fatalf("AddUncompleted: %v", err)
	}

	again, err := NewService(storage.NewStore(path, zerolog.Nop()), zerolog.Nop())
	if err != nil {
		t.Fatalf("NewService reload: %v", err)
	}
	yearly := again.Document().Uncompleted.Yearly
	if len(yearly) != 1 || yearly[0].Task != "Renew Passport" {
		t.Fatalf("yearly = %+v, want Renew Passport", yearly)
	}
}
