package store

import (
	"errors"
	"testing"
	"time"

	"taskwise/internal/models"
)

func mustCreate(t *testing.T, s Store, draft models.Draft) *models.Task {
	t.Helper()
	task, err := s.Create(draft)
	if err != nil {
		t.Fatalf("Create(%+v) error = %v", draft, err)
	}
	return task
}

func TestMemoryCreateAssignsUniqueIDs(t *testing.T) {
	s := NewMemory()

	seen := map[uint]bool{}
	for i := 0; i < 5; i++ {
		task := mustCreate(t, s, models.Draft{Title: "task"})
		if seen[task.ID] {
			t.Fatalf("id %d assigned twice", task.ID)
		}
		seen[task.ID] = true
	}
}

func TestMemoryIDsNotReusedAfterDelete(t *testing.T) {
	s := NewMemory()

	mustCreate(t, s, models.Draft{Title: "first"})
	second := mustCreate(t, s, models.Draft{Title: "second"})

	removed, err := s.Delete(second.ID)
	if err != nil || !removed {
		t.Fatalf("Delete(%d) = (%v, %v), want (true, nil)", second.ID, removed, err)
	}

	// With "count of live tasks + 1" id assignment this would collide
	// with the first task's successor; the monotonic counter must not.
	third := mustCreate(t, s, models.Draft{Title: "third"})
	if third.ID == second.ID {
		t.Errorf("id %d reused after delete", second.ID)
	}
	if third.ID <= second.ID {
		t.Errorf("ids not monotonic: got %d after %d", third.ID, second.ID)
	}
}

func TestMemoryCreateTrimsTitle(t *testing.T) {
	s := NewMemory()

	task := mustCreate(t, s, models.Draft{Title: "  Buy milk  "})
	if task.Title != "Buy milk" {
		t.Errorf("title = %q, want %q", task.Title, "Buy milk")
	}
}

func TestMemoryCreateRejectsEmptyTitle(t *testing.T) {
	s := NewMemory()

	for _, title := range []string{"", "   "} {
		_, err := s.Create(models.Draft{Title: title})
		if !IsValidation(err) {
			t.Errorf("Create(title=%q) error = %v, want validation error", title, err)
		}
	}

	tasks, err := s.List()
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(tasks) != 0 {
		t.Errorf("store has %d tasks after rejected creates, want 0", len(tasks))
	}
}

func TestMemoryCreateDefaults(t *testing.T) {
	s := NewMemory()

	task := mustCreate(t, s, models.Draft{Title: "defaults"})
	if task.Priority != 3 {
		t.Errorf("priority = %d, want 3", task.Priority)
	}
	if task.EstimatedMinutes != 30 {
		t.Errorf("estimatedMinutes = %d, want 30", task.EstimatedMinutes)
	}
	if task.Completed {
		t.Error("completed = true, want false")
	}
	if task.DueDate != nil {
		t.Errorf("dueDate = %v, want nil", task.DueDate)
	}
	if task.CreatedAt.IsZero() || task.UpdatedAt.IsZero() {
		t.Error("timestamps not set on create")
	}
}

func TestMemoryCreateClampsPriority(t *testing.T) {
	s := NewMemory()

	low := mustCreate(t, s, models.Draft{Title: "low", Priority: 9})
	if low.Priority != 5 {
		t.Errorf("priority 9 stored as %d, want clamped to 5", low.Priority)
	}

	high := mustCreate(t, s, models.Draft{Title: "high", Priority: -1})
	if high.Priority != 1 {
		t.Errorf("priority -1 stored as %d, want clamped to 1", high.Priority)
	}
}

func TestMemoryUpdatePreservesID(t *testing.T) {
	s := NewMemory()

	mustCreate(t, s, models.Draft{Title: "one"})
	mustCreate(t, s, models.Draft{Title: "two"})
	target := mustCreate(t, s, models.Draft{Title: "three"})

	updated, err := s.Update(target.ID, models.Draft{
		Title:    "X",
		Priority: 2,
	})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if updated.ID != target.ID {
		t.Errorf("id = %d, want %d", updated.ID, target.ID)
	}
	if updated.Title != "X" || updated.Priority != 2 {
		t.Errorf("updated task = %+v, want title X priority 2", updated)
	}

	got, err := s.Get(target.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.Title != "X" {
		t.Errorf("Get after update: title = %q, want %q", got.Title, "X")
	}
}

func TestMemoryUpdateMissingID(t *testing.T) {
	s := NewMemory()

	_, err := s.Update(999, models.Draft{Title: "ghost"})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("Update(999) error = %v, want ErrNotFound", err)
	}

	tasks, _ := s.List()
	if len(tasks) != 0 {
		t.Errorf("update on missing id created a task: %+v", tasks)
	}
}

func TestMemoryUpdateRejectsEmptyTitle(t *testing.T) {
	s := NewMemory()
	task := mustCreate(t, s, models.Draft{Title: "keep me"})

	_, err := s.Update(task.ID, models.Draft{Title: "  "})
	if !IsValidation(err) {
		t.Fatalf("Update(empty title) error = %v, want validation error", err)
	}

	got, _ := s.Get(task.ID)
	if got.Title != "keep me" {
		t.Errorf("failed update mutated the task: title = %q", got.Title)
	}
}

func TestMemoryDeleteIdempotent(t *testing.T) {
	s := NewMemory()
	task := mustCreate(t, s, models.Draft{Title: "doomed"})

	removed, err := s.Delete(task.ID)
	if err != nil {
		t.Fatalf("first Delete() error = %v", err)
	}
	if !removed {
		t.Error("first Delete() = false, want true")
	}

	removed, err = s.Delete(task.ID)
	if err != nil {
		t.Fatalf("second Delete() error = %v", err)
	}
	if removed {
		t.Error("second Delete() = true, want false")
	}
}

func TestMemoryGetMissing(t *testing.T) {
	s := NewMemory()

	_, err := s.Get(1)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("Get(1) on empty store error = %v, want ErrNotFound", err)
	}
}

func TestMemoryPendingKeepsStoreOrder(t *testing.T) {
	s := NewMemory()

	first := mustCreate(t, s, models.Draft{Title: "first"})
	mustCreate(t, s, models.Draft{Title: "second", Completed: true})
	third := mustCreate(t, s, models.Draft{Title: "third"})

	pending, err := s.Pending()
	if err != nil {
		t.Fatalf("Pending() error = %v", err)
	}
	if len(pending) != 2 {
		t.Fatalf("Pending() returned %d tasks, want 2", len(pending))
	}
	if pending[0].ID != first.ID || pending[1].ID != third.ID {
		t.Errorf("Pending() order = [%d, %d], want [%d, %d]",
			pending[0].ID, pending[1].ID, first.ID, third.ID)
	}
}

func TestMemorySuggestOrdering(t *testing.T) {
	s := NewMemory()

	date := func(day int) *time.Time {
		d := time.Date(2026, time.March, day, 12, 0, 0, 0, time.UTC)
		return &d
	}

	a := mustCreate(t, s, models.Draft{Title: "A", Priority: 2, DueDate: date(10)})
	b := mustCreate(t, s, models.Draft{Title: "B", Priority: 1, DueDate: date(5)})
	c := mustCreate(t, s, models.Draft{Title: "C", Priority: 1})
	d := mustCreate(t, s, models.Draft{Title: "D", Priority: 1, DueDate: date(1)})

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

func TestMemorySuggestExcludesCompleted(t *testing.T) {
	s := NewMemory()

	mustCreate(t, s, models.Draft{Title: "done already", Priority: 1, Completed: true})
	open := mustCreate(t, s, models.Draft{Title: "still open", Priority: 5})

	suggested, _ := s.Suggest()
	if len(suggested) != 1 || suggested[0].ID != open.ID {
		t.Errorf("Suggest() = %+v, want only task %d", suggested, open.ID)
	}
}

func TestMemorySearchCaseInsensitive(t *testing.T) {
	s := NewMemory()
	mustCreate(t, s, models.Draft{Title: "Buy Milk"})

	for _, query := range []string{"milk", "MILK", "Milk"} {
		got, err := s.Search(query)
		if err != nil {
			t.Fatalf("Search(%q) error = %v", query, err)
		}
		if len(got) != 1 {
			t.Errorf("Search(%q) returned %d tasks, want 1", query, len(got))
		}
	}

	got, _ := s.Search("bread")
	if len(got) != 0 {
		t.Errorf("Search(bread) returned %d tasks, want 0", len(got))
	}
}

func TestMemorySearchEmptyQueryMatchesAll(t *testing.T) {
	s := NewMemory()
	mustCreate(t, s, models.Draft{Title: "one"})
	mustCreate(t, s, models.Draft{Title: "two"})

	got, _ := s.Search("")
	if len(got) != 2 {
		t.Errorf("Search(\"\") returned %d tasks, want 2", len(got))
	}
}

func TestMemoryCreateGetRoundTrip(t *testing.T) {
	s := NewMemory()

	due := time.Date(2026, time.June, 1, 9, 0, 0, 0, time.UTC)
	created := mustCreate(t, s, models.Draft{
		Title:            "round trip",
		Description:      "a full draft",
		Priority:         2,
		EstimatedMinutes: 45,
		DueDate:          &due,
	})

	got, err := s.Get(created.ID)
	if err != nil {
		t.Fatalf("Get(%d) error = %v", created.ID, err)
	}
	if *got != *created {
		t.Errorf("Get() = %+v, want %+v", got, created)
	}
}

func TestMemoryListReturnsCopy(t *testing.T) {
	s := NewMemory()
	task := mustCreate(t, s, models.Draft{Title: "original"})

	tasks, _ := s.List()
	tasks[0].Title = "mutated"

	got, _ := s.Get(task.ID)
	if got.Title != "original" {
		t.Error("mutating List() result changed store state")
	}
}
