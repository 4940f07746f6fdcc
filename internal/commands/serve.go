package commands

import (
	"github.com/spf13/cobra"

	"taskwise/internal/config"
	"taskwise/internal/httpapi"
	"taskwise/internal/logger"
	"taskwise/internal/store"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the task API server",
	Long: `Run the HTTP API that the other commands talk to.

The store backend defaults to an in-memory sqlite database, so tasks live
for the server process. Point --dsn at a file to keep them longer.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.Load()
		logger.Init(cfg.LogLevel, cfg.LogJSON)

		if port, _ := cmd.Flags().GetString("port"); port != "" {
			cfg.AppPort = port
		}
		if dsn, _ := cmd.Flags().GetString("dsn"); dsn != "" {
			cfg.StoreDSN = dsn
		}

		var backend store.Store
		if inMemory, _ := cmd.Flags().GetBool("memory"); inMemory {
			backend = store.NewMemory()
		} else {
			s, err := store.OpenSQLite(cfg.StoreDSN)
			if err != nil {
				logger.Fatal("failed to open store", "dsn", cfg.StoreDSN, "err", err)
			}
			defer s.Close()
			backend = s
		}

		if err := httpapi.Serve(cfg.AppPort, backend); err != nil {
			logger.Fatal("server failed", "err", err)
		}
	},
}

func init() {
	serveCmd.Flags().StringP("port", "p", "", "Port to listen on (default 8080)")
	serveCmd.Flags().String("dsn", "", "SQLite DSN for the store (default :memory:)")
	serveCmd.Flags().Bool("memory", false, "Use the plain in-memory store instead of sqlite")
}
