package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var suggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Show pending tasks in recommended working order",
	Long: `Show what to work on next.

Pending tasks are ordered by ascending priority; within a priority the
soonest deadline comes first and undated tasks come last.`,
	Run: func(cmd *cobra.Command, args []string) {
		tasks, err := remoteStore().Suggest()
		if err != nil {
			fail(err)
		}

		if len(tasks) == 0 {
			fmt.Println("Nothing pending. Enjoy the quiet.")
			return
		}

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			renderJSON(tasks)
			return
		}
		renderTaskTable(tasks)
	},
}

func init() {
	suggestCmd.Flags().Bool("json", false, "Output as JSON")
}
