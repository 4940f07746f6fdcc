package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search tasks by title",
	Long:  "Case-insensitive substring search over task titles.",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		query := strings.TrimSpace(strings.Join(args, " "))
		if query == "" {
			// Caller-level rule: an empty query is a user error here,
			// even though the store itself would match everything.
			fail(fmt.Errorf("search query must not be empty"))
		}

		tasks, err := remoteStore().Search(query)
		if err != nil {
			fail(err)
		}

		fmt.Printf("Search results for %q (%d found):\n", query, len(tasks))
		if len(tasks) == 0 {
			return
		}
		fmt.Println()
		renderTaskTable(tasks)
	},
}
