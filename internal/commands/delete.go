package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:     "rm <task-id>",
	Aliases: []string{"delete"},
	Short:   "Delete a task",
	Long:    "Delete a task. Deleting an id that does not exist is not an error.",
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id := parseTaskID(args[0])

		removed, err := remoteStore().Delete(id)
		if err != nil {
			fail(err)
		}

		if removed {
			fmt.Printf("Deleted task #%d\n", id)
		} else {
			fmt.Printf("Task #%d was already gone\n", id)
		}
	},
}
