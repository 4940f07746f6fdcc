package store

import (
	"errors"
	"testing"
	"time"

	"taskwise/internal/models"
)

// setupSQLite opens an in-memory database for the test.
func setupSQLite(t *testing.T) *SQLite {
	t.Helper()

	s, err := OpenSQLite(":memory:")
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSQLiteCreateAndGet(t *testing.T) {
	s := setupSQLite(t)

	created := mustCreate(t, s, models.Draft{Title: "  Buy milk  "})
	if created.Title != "Buy milk" {
		t.Errorf("title = %q, want trimmed %q", created.Title, "Buy milk")
	}
	if created.Priority != 3 || created.EstimatedMinutes != 30 {
		t.Errorf("defaults not applied: priority=%d estimate=%d", created.Priority, created.EstimatedMinutes)
	}

	got, err := s.Get(created.ID)
	if err != nil {
		t.Fatalf("Get(%d) error = %v", created.ID, err)
	}
	if got.Title != created.Title || got.ID != created.ID {
		t.Errorf("Get() = %+v, want %+v", got, created)
	}
}

func TestSQLiteRejectsEmptyTitle(t *testing.T) {
	s := setupSQLite(t)

	_, err := s.Create(models.Draft{Title: "   "})
	if !IsValidation(err) {
		t.Fatalf("Create(blank title) error = %v, want validation error", err)
	}

	tasks, _ := s.List()
	if len(tasks) != 0 {
		t.Errorf("store has %d tasks after rejected create, want 0", len(tasks))
	}
}

func TestSQLiteIDsNotReusedAfterDelete(t *testing.T) {
	s := setupSQLite(t)

	mustCreate(t, s, models.Draft{Title: "first"})
	second := mustCreate(t, s, models.Draft{Title: "second"})

	if removed, err := s.Delete(second.ID); err != nil || !removed {
		t.Fatalf("Delete(%d) = (%v, %v), want (true, nil)", second.ID, removed, err)
	}

	third := mustCreate(t, s, models.Draft{Title: "third"})
	if third.ID <= second.ID {
		t.Errorf("id %d handed out after %d was deleted", third.ID, second.ID)
	}
}

func TestSQLiteUpdate(t *testing.T) {
	s := setupSQLite(t)

	task := mustCreate(t, s, models.Draft{Title: "before"})
	updated, err := s.Update(task.ID, models.Draft{Title: "after", Priority: 1, Completed: true})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if updated.ID != task.ID {
		t.Errorf("id changed on update: %d -> %d", task.ID, updated.ID)
	}
	if updated.Title != "after" || updated.Priority != 1 || !updated.Completed {
		t.Errorf("update not applied: %+v", updated)
	}

	_, err = s.Update(999, models.Draft{Title: "ghost"})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("Update(999) error = %v, want ErrNotFound", err)
	}
}

func TestSQLiteDeleteIdempotent(t *testing.T) {
	s := setupSQLite(t)
	task := mustCreate(t, s, models.Draft{Title: "doomed"})

	removed, err := s.Delete(task.ID)
	if err != nil || !removed {
		t.Fatalf("first Delete() = (%v, %v), want (true, nil)", removed, err)
	}

	removed, err = s.Delete(task.ID)
	if err != nil {
		t.Fatalf("second Delete() error = %v", err)
	}
	if removed {
		t.Error("second Delete() = true, want false")
	}
}

func TestSQLiteSuggestOrdering(t *testing.T) {
	s := setupSQLite(t)

	date := func(day int) *time.Time {
		d := time.Date(2026, time.March, day, 12, 0, 0, 0, time.UTC)
		return &d
	}

	a := mustCreate(t, s, models.Draft{Title: "A", Priority: 2, DueDate: date(10)})
	b := mustCreate(t, s, models.Draft{Title: "B", Priority: 1, DueDate: date(5)})
	c := mustCreate(t, s, models.Draft{Title: "C", Priority: 1})
	d := mustCreate(t, s, models.Draft{Title: "D", Priority: 1, DueDate: date(1)})
	mustCreate(t, s, models.Draft{Title: "done", Priority: 1, Completed: true})

	suggested, err := s.Suggest()
	if err != nil {
		t.Fatalf("Suggest() error = %v", err)
	}

	want := []uint{d.ID, b.ID, c.ID, a.ID}
	if len(suggested) != len(want) {
		t.Fatalf("Suggest() returned %d tasks, want %d", len(suggested), len(want))
	}
	for i, id := range want {
		if suggested[i].ID != id {
			t.Errorf("Suggest()[%d].ID = %d, want %d", i, suggested[i].ID, id)
		}
	}
}

func TestSQLiteSearchLiteralSpecialChars(t *testing.T) {
	s := setupSQLite(t)

	mustCreate(t, s, models.Draft{Title: "resolve 100% of tickets"})
	mustCreate(t, s, models.Draft{Title: "unrelated"})

	// % must stay a literal, not a wildcard.
	got, err := s.Search("100%")
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(got) != 1 {
		t.Errorf("Search(100%%) returned %d tasks, want 1", len(got))
	}

	got, _ = s.Search("MILK")
	if len(got) != 0 {
		t.Errorf("Search(MILK) returned %d tasks, want 0", len(got))
	}
}
