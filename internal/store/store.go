package store

import (
	"strings"

	"taskwise/internal/models"
)

// Store is the contract shared by the in-memory store, the sqlite store,
// and the remote HTTP client.
type Store interface {
	// List returns all tasks in insertion order.
	List() ([]models.Task, error)
	// Get looks up a task by id; returns ErrNotFound if absent.
	Get(id uint) (*models.Task, error)
	// Create validates and normalizes the draft, assigns a fresh id,
	// and appends the task.
	Create(draft models.Draft) (*models.Task, error)
	// Update replaces all mutable fields of the task with the given id,
	// preserving the id; returns ErrNotFound if absent.
	Update(id uint, draft models.Draft) (*models.Task, error)
	// Delete removes the task with the given id. Deleting a missing id is
	// not an error; the boolean reports whether anything was removed.
	Delete(id uint) (bool, error)
	// Pending returns tasks with Completed == false, in store order.
	Pending() ([]models.Task, error)
	// Suggest returns pending tasks in recommended order: ascending
	// priority, then ascending due date with undated tasks last.
	Suggest() ([]models.Task, error)
	// Search matches query case-insensitively against titles.
	Search(query string) ([]models.Task, error)
}

// normalizeDraft applies the validation and defaulting rules shared by every
// backend. The title is trimmed and must be non-empty; priority clamps into
// 1..5 with zero meaning unset; a non-positive estimate falls back to the
// default.
func normalizeDraft(draft models.Draft) (models.Draft, error) {
	draft.Title = strings.TrimSpace(draft.Title)
	if draft.Title == "" {
		return draft, &ValidationError{Field: "title", Reason: "must not be empty"}
	}

	switch {
	case draft.Priority == 0:
		draft.Priority = models.DefaultPriority
	case draft.Priority < 1:
		draft.Priority = 1
	case draft.Priority > 5:
		draft.Priority = 5
	}

	if draft.EstimatedMinutes <= 0 {
		draft.EstimatedMinutes = models.DefaultEstimatedMinutes
	}

	return draft, nil
}
