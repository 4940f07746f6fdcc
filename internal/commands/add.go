package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"taskwise/internal/models"
	"taskwise/internal/parser"
)

var addCmd = &cobra.Command{
	Use:   "add [title]",
	Short: "Add a new task",
	Long: `Add a new task.

Quick-add syntax inside the title:
  +N          - Priority 1 (highest) to 5 (lowest)
  est:N       - Estimated minutes
  due:X       - Due date (due:3days, due:15/12/2026, due:2026-12-15)

Example:
  taskwise add "Write quarterly report +2 est:90 due:3days"

Flags override anything parsed from the title.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		parsed := parser.ParseQuickAdd(strings.Join(args, " "))
		if len(parsed.Errors) > 0 {
			fail(fmt.Errorf("could not parse title: %s", strings.Join(parsed.Errors, ", ")))
		}

		draft := models.Draft{
			Title:            parsed.Title,
			Priority:         parsed.Priority,
			EstimatedMinutes: parsed.EstimatedMinutes,
			DueDate:          parsed.DueDate,
		}

		if desc, _ := cmd.Flags().GetString("description"); desc != "" {
			draft.Description = desc
		}
		if priority, _ := cmd.Flags().GetInt("priority"); priority != 0 {
			draft.Priority = priority
		}
		if est, _ := cmd.Flags().GetInt("estimate"); est != 0 {
			draft.EstimatedMinutes = est
		}
		if due, _ := cmd.Flags().GetString("due"); due != "" {
			dueDate, err := parser.ParseDueDate(due)
			if err != nil {
				fail(fmt.Errorf("invalid due date: %w", err))
			}
			draft.DueDate = dueDate
		}

		task, err := remoteStore().Create(draft)
		if err != nil {
			fail(err)
		}

		fmt.Printf("Created task #%d: %s\n", task.ID, task.Title)
		fmt.Printf("  Priority: %d  Estimate: %d min\n", task.Priority, task.EstimatedMinutes)
		if task.DueDate != nil {
			fmt.Printf("  Due: %s\n", parser.FormatDueDate(task.DueDate))
		}
	},
}

func init() {
	addCmd.Flags().StringP("description", "d", "", "Task description")
	addCmd.Flags().IntP("priority", "p", 0, "Priority: 1 (highest) to 5 (lowest)")
	addCmd.Flags().IntP("estimate", "e", 0, "Estimated minutes")
	addCmd.Flags().String("due", "", "Due date: dd/mm/yyyy, yyyy-mm-dd, X days, X hours, X weeks")
}
