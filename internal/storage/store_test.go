package storage

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "habits.json"), zerolog.Nop())
}

func TestLoadMissingFile(t *testing.T) {
	st := newTestStore(t)

	_, err := st.Load()
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestLoadCorruptFile(t *testing.T) {
	st := newTestStore(t)

	if err := os.WriteFile(st.Path(), []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	_, err := st.Load()
	if !errors.Is(err, ErrCorrupt) {
		t.Fatalf("err = %v, want ErrCorrupt", err)
	}
}

func TestInitEmptyThenLoad(t *testing.T) {
	st := newTestStore(t)

	if _, err := st.InitEmpty(); err != nil {
		t.Fatalf("InitEmpty: %v", err)
	}
	doc, err := st.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	for _, b := range [][]Entry{
		doc.Uncompleted.Daily, doc.Uncompleted.Weekly, doc.Uncompleted.Monthly,
		doc.Uncompleted.Yearly, doc.Uncompleted.OnceOff,
	} {
		if b == nil || len(b) != 0 {
			t.Fatalf("expected empty non-nil bucket, got %#v", b)
		}
	}
	if doc.History == nil || doc.History.Len() != 0 {
		t.Fatalf("expected empty history, got %+v", doc.History)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	st := newTestStore(t)

	doc := NewDocument()
	doc.Uncompleted.Daily = append(doc.Uncompleted.Daily, Entry{Task: "Drink Water", Schedule: "08:00"})
	doc.Completed.Monthly = append(doc.Completed.Monthly, Completion{Task: "Pay Bills", CompletedAt: "2024-10-01 12:00"})
	created := "2024-09-01 08:00:00.000000"
	rec := doc.History.Ensure("Drink Water")
	rec.Created = &created
	rec.Completed = append(rec.Completed, "2024-09-02 08:05:00.000000")
	doc.History.Ensure("Pay Bills").Completed = []string{"2024-10-01 12:00"}

	if err := st.Save(doc); err != nil {
		t.Fatalf("Save: %v", err)
	}
	first, err := os.ReadFile(st.Path())
	if err != nil {
		t.Fatalf("read: %v", err)
	}

	loaded, err := st.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if err := st.Save(loaded); err != nil {
		t.Fatalf("re-Save: %v", err)
	}
	second, err := os.ReadFile(st.Path())
	if err != nil {
		t.Fatalf("read: %v", err)
	}

	if !bytes.Equal(first, second) {
		t.Fatalf("save(load()) changed document content:\n%s\nvs\n%s", first, second)
	}
}

func TestHistoryPreservesInsertionOrder(t *testing.T) {
	st := newTestStore(t)

	doc := NewDocument()
	// Deliberately not alphabetical.
	for _, task := range []string{"Zebra", "Alpha", "Mango"} {
		doc.History.Ensure(task)
	}
	if err := st.Save(doc); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := st.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	got := loaded.History.Tasks()
	want := []string{"Zebra", "Alpha", "Mango"}
	if len(got) != len(want) {
		t.Fatalf("tasks = %q, want %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("tasks = %q, want %q", got, want)
		}
	}
}

func TestEntryWireFormat(t *testing.T) {
	st := newTestStore(t)

	doc := NewDocument()
	doc.Uncompleted.Weekly = append(doc.Uncompleted.Weekly, Entry{Task: "Gym", Schedule: "Tuesday 18:00"})
	if err := st.Save(doc); err != nil {
		t.Fatalf("Save: %v", err)
	}

	raw, err := os.ReadFile(st.Path())
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !bytes.Contains(raw, []byte(`"Gym",`)) || !bytes.Contains(raw, []byte(`"Tuesday 18:00"`)) {
		t.Fatalf("entry not serialized as a pair array:\n%s", raw)
	}
	if bytes.Contains(raw, []byte(`"Task"`)) || bytes.Contains(raw, []byte(`"task"`)) {
		t.Fatalf("entry serialized as an object, want pair array:\n%s", raw)
	}
}

func TestDelete(t *testing.T) {
	st := newTestStore(t)

	if _, err := st.InitEmpty(); err != nil {
		t.Fatalf("InitEmpty: %v", err)
	}
	if err := st.Delete(); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := st.Load(); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Load after delete: err = %v, want ErrNotFound", err)
	}
	if err := st.Delete(); !errors.Is(err, ErrNotFound) {
		t.Fatalf("second Delete: err = %v, want ErrNotFound", err)
	}
}

func TestResolvePathEnvOverride(t *testing.T) {
	t.Setenv(EnvFile, "/tmp/custom-habits.json")
	p, err := ResolvePath()
	if err != nil {
		t.Fatalf("ResolvePath: %v", err)
	}
	if p != "/tmp/custom-habits.json" {
		t.Fatalf("path = %q, want env override", p)
	}
}
