package store

import (
	"sort"
	"strings"

	"taskwise/internal/models"
)

// SortSuggested orders tasks in place by ascending priority, then ascending
// due date within a priority, with undated tasks after dated ones. The sort
// is stable, so ties keep their store order.
func SortSuggested(tasks []models.Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		a, b := tasks[i], tasks[j]
		if a.Priority != b.Priority {
			return a.Priority < b.Priority
		}
		switch {
		case a.DueDate == nil && b.DueDate == nil:
			return false
		case a.DueDate == nil:
			return false
		case b.DueDate == nil:
			return true
		default:
			return a.DueDate.Before(*b.DueDate)
		}
	})
}

// matchesTitle is the search predicate: case-insensitive substring match on
// the title only. An empty query matches everything; requiring a non-empty
// query is the caller's policy, not the store's.
func matchesTitle(task models.Task, query string) bool {
	return strings.Contains(strings.ToLower(task.Title), strings.ToLower(query))
}

func filterPending(tasks []models.Task) []models.Task {
	pending := make([]models.Task, 0, len(tasks))
	for _, t := range tasks {
		if !t.Completed {
			pending = append(pending, t)
		}
	}
	return pending
}
