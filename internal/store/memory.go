package store

import (
	"sync"
	"time"

	"taskwise/internal/models"
)

// Memory is the in-session store: an ordered slice of tasks plus a monotonic
// id counter. The counter never decreases and ids are never reused, so a
// delete followed by a create cannot hand out an id that was already seen.
//
// The mutex is there for the server deployment, where one instance is shared
// across concurrent requests; single-session callers pay only an uncontended
// lock.
type Memory struct {
	mu     sync.RWMutex
	tasks  []models.Task
	lastID uint
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) List() ([]models.Task, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.snapshot(), nil
}

func (m *Memory) Get(id uint) (*models.Task, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, t := range m.tasks {
		if t.ID == id {
			task := t
			return &task, nil
		}
	}
	return nil, ErrNotFound
}

func (m *Memory) Create(draft models.Draft) (*models.Task, error) {
	normalized, err := normalizeDraft(draft)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.lastID++
	now := time.Now()
	task := models.Task{
		ID:               m.lastID,
		CreatedAt:        now,
		UpdatedAt:        now,
		Title:            normalized.Title,
		Description:      normalized.Description,
		Priority:         normalized.Priority,
		EstimatedMinutes: normalized.EstimatedMinutes,
		Completed:        normalized.Completed,
		DueDate:          normalized.DueDate,
	}
	m.tasks = append(m.tasks, task)

	stored := task
	return &stored, nil
}

func (m *Memory) Update(id uint, draft models.Draft) (*models.Task, error) {
	normalized, err := normalizeDraft(draft)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.tasks {
		if m.tasks[i].ID != id {
			continue
		}
		t := &m.tasks[i]
		t.Title = normalized.Title
		t.Description = normalized.Description
		t.Priority = normalized.Priority
		t.EstimatedMinutes = normalized.EstimatedMinutes
		t.Completed = normalized.Completed
		t.DueDate = normalized.DueDate
		t.UpdatedAt = time.Now()

		updated := *t
		return &updated, nil
	}
	return nil, ErrNotFound
}

func (m *Memory) Delete(id uint) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.tasks {
		if m.tasks[i].ID == id {
			m.tasks = append(m.tasks[:i], m.tasks[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (m *Memory) Pending() ([]models.Task, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return filterPending(m.tasks), nil
}

func (m *Memory) Suggest() ([]models.Task, error) {
	m.mu.RLock()
	pending := filterPending(m.tasks)
	m.mu.RUnlock()

	SortSuggested(pending)
	return pending, nil
}

func (m *Memory) Search(query string) ([]models.Task, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	matched := make([]models.Task, 0)
	for _, t := range m.tasks {
		if matchesTitle(t, query) {
			matched = append(matched, t)
		}
	}
	return matched, nil
}

// snapshot copies the task slice so callers cannot alias store state.
func (m *Memory) snapshot() []models.Task {
	out := make([]models.Task, len(m.tasks))
	copy(out, m.tasks)
	return out
}
