package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"taskwise/internal/client"
	"taskwise/internal/config"
	"taskwise/internal/models"
	"taskwise/internal/parser"
	"taskwise/internal/store"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "taskwise",
	Short: "A task manager with suggested working order",
	Long: `taskwise keeps track of your tasks and recommends what to work on next:
highest priority first, soonest deadline first within a priority, undated
tasks last.

Run 'taskwise serve' to start the API, then use the other commands against it,
or 'taskwise ui' for a self-contained interactive session.`,
}

// remoteStore returns a Store backed by the task API configured via
// TASKWISE_API_URL.
func remoteStore() store.Store {
	cfg := config.Load()
	return client.New(cfg.APIBase, cfg.HTTPTimeout)
}

// fail prints err the way the given command surfaces errors and exits
// non-zero. Unavailable gets a hint about the serve command.
func fail(err error) {
	if store.IsUnavailable(err) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Is the API running? Start it with 'taskwise serve' or set TASKWISE_API_URL.")
	} else {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	os.Exit(1)
}

// renderTaskTable prints tasks in the fixed-width table format used by every
// read command.
func renderTaskTable(tasks []models.Task) {
	if len(tasks) == 0 {
		fmt.Println("No tasks found.")
		return
	}

	fmt.Printf("%-4s %-5s %-40s %-8s %-5s %s\n", "ID", "DONE", "TITLE", "PRIORITY", "EST", "DUE")
	fmt.Println(strings.Repeat("-", 80))

	for _, task := range tasks {
		title := task.Title
		if len(title) > 38 {
			title = title[:35] + "..."
		}

		done := " "
		if task.Completed {
			done = "x"
		}

		fmt.Printf("%-4d %-5s %-40s %-8d %-5d %s\n",
			task.ID,
			done,
			title,
			task.Priority,
			task.EstimatedMinutes,
			parser.FormatDueDate(task.DueDate))
	}
}

// SetVersion sets the version information
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(suggestCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(doneCmd)
	rootCmd.AddCommand(undoneCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(uiCmd)
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("taskwise %s (commit %s, built %s)\n", version, commit, date)
	},
}
