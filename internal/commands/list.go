package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"taskwise/internal/models"
)

var listCmd = &cobra.Command{
	Use:     "ls",
	Aliases: []string{"list"},
	Short:   "List tasks",
	Long:    "List all tasks in creation order, or only the pending ones with --pending.",
	Run: func(cmd *cobra.Command, args []string) {
		s := remoteStore()

		var tasks []models.Task
		var err error
		if pending, _ := cmd.Flags().GetBool("pending"); pending {
			tasks, err = s.Pending()
		} else {
			tasks, err = s.List()
		}
		if err != nil {
			fail(err)
		}

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			renderJSON(tasks)
			return
		}

		if len(tasks) == 0 {
			fmt.Println("No tasks yet. Use 'taskwise add \"task title\"' to create your first task.")
			return
		}
		renderTaskTable(tasks)
	},
}

func renderJSON(tasks []models.Task) {
	out, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		fail(err)
	}
	fmt.Println(string(out))
}

func init() {
	listCmd.Flags().Bool("pending", false, "Show only tasks not yet completed")
	listCmd.Flags().Bool("json", false, "Output as JSON")
}
