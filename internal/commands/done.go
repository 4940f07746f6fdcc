package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"taskwise/internal/models"
	"taskwise/internal/store"
)

var doneCmd = &cobra.Command{
	Use:   "done <task-id>",
	Short: "Mark a task as completed",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		task := setCompleted(parseTaskID(args[0]), true)
		fmt.Printf("Marked task #%d as done: %s\n", task.ID, task.Title)
	},
}

var undoneCmd = &cobra.Command{
	Use:   "undone <task-id>",
	Short: "Mark a completed task as pending again",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		task := setCompleted(parseTaskID(args[0]), false)
		fmt.Printf("Marked task #%d as pending: %s\n", task.ID, task.Title)
	},
}

// setCompleted flips the completed flag through a full-replacement update.
func setCompleted(id uint, completed bool) *models.Task {
	s := remoteStore()

	task, err := s.Get(id)
	if errors.Is(err, store.ErrNotFound) {
		fail(fmt.Errorf("task #%d not found", id))
	}
	if err != nil {
		fail(err)
	}

	updated, err := s.Update(id, models.Draft{
		Title:            task.Title,
		Description:      task.Description,
		Priority:         task.Priority,
		EstimatedMinutes: task.EstimatedMinutes,
		Completed:        completed,
		DueDate:          task.DueDate,
	})
	if err != nil {
		fail(err)
	}
	return updated
}
