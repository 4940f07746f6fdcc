package commands

import (
	"github.com/spf13/cobra"

	"taskwise/internal/store"
	"taskwise/internal/tui"
)

var uiCmd = &cobra.Command{
	Use:   "ui",
	Short: "Interactive task session",
	Long: `Open the interactive task list.

By default this is a self-contained session: tasks live in memory and are
gone when you quit. With --remote the session works against the task API
instead, so changes land in the server's store.`,
	Run: func(cmd *cobra.Command, args []string) {
		var backend store.Store
		if remote, _ := cmd.Flags().GetBool("remote"); remote {
			backend = remoteStore()
		} else {
			backend = store.NewMemory()
		}

		if err := tui.Run(backend); err != nil {
			fail(err)
		}
	},
}

func init() {
	uiCmd.Flags().Bool("remote", false, "Work against the task API instead of an in-memory session")
}
