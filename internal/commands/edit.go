package commands

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"taskwise/internal/models"
	"taskwise/internal/parser"
	"taskwise/internal/store"
)

var editCmd = &cobra.Command{
	Use:   "edit <task-id>",
	Short: "Edit an existing task",
	Long: `Edit an existing task. Fields not given as flags keep their current
value; the id never changes.

Usage:
  taskwise edit 42 --title "New title" --priority 1 --due "2 days"`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id := parseTaskID(args[0])
		s := remoteStore()

		task, err := s.Get(id)
		if errors.Is(err, store.ErrNotFound) {
			fail(fmt.Errorf("task #%d not found", id))
		}
		if err != nil {
			fail(err)
		}

		// Updates are full replacements, so start from the stored task.
		draft := models.Draft{
			Title:            task.Title,
			Description:      task.Description,
			Priority:         task.Priority,
			EstimatedMinutes: task.EstimatedMinutes,
			Completed:        task.Completed,
			DueDate:          task.DueDate,
		}

		if cmd.Flags().Changed("title") {
			draft.Title, _ = cmd.Flags().GetString("title")
		}
		if cmd.Flags().Changed("description") {
			draft.Description, _ = cmd.Flags().GetString("description")
		}
		if cmd.Flags().Changed("priority") {
			draft.Priority, _ = cmd.Flags().GetInt("priority")
		}
		if cmd.Flags().Changed("estimate") {
			draft.EstimatedMinutes, _ = cmd.Flags().GetInt("estimate")
		}
		if cmd.Flags().Changed("due") {
			due, _ := cmd.Flags().GetString("due")
			if due == "" {
				draft.DueDate = nil
			} else {
				dueDate, err := parser.ParseDueDate(due)
				if err != nil {
					fail(fmt.Errorf("invalid due date: %w", err))
				}
				draft.DueDate = dueDate
			}
		}

		updated, err := s.Update(id, draft)
		if err != nil {
			fail(err)
		}

		fmt.Printf("Updated task #%d: %s\n", updated.ID, updated.Title)
	},
}

func parseTaskID(arg string) uint {
	id, err := strconv.ParseUint(arg, 10, 32)
	if err != nil {
		fail(fmt.Errorf("invalid task id %q", arg))
	}
	return uint(id)
}

func init() {
	editCmd.Flags().StringP("title", "t", "", "New title")
	editCmd.Flags().StringP("description", "d", "", "New description")
	editCmd.Flags().IntP("priority", "p", 0, "New priority: 1 (highest) to 5 (lowest)")
	editCmd.Flags().IntP("estimate", "e", 0, "New estimated minutes")
	editCmd.Flags().String("due", "", "New due date; empty string clears it")
}
