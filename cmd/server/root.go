package main

import (
	"alcyxob/workout-api/internal/config"
	"fmt"

	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "workout-api",
	Short: "HTTP API for athletes' workout sessions",
	Long: `workout-api serves the workout session resource: create, list, list by
athlete, fetch, partial update, mark as completed and delete.

STORAGE:

  database.driver   postgres (default), sqlite or mongo
  database.uri      Postgres DSN, SQLite file path or MongoDB URI

Settings come from config.yaml in --config, overridden by environment
variables such as SERVER_ADDRESS or DATABASE_URI.

  $ workout-api serve --config ./deploy
  $ workout-api migrate`,
	SilenceUsage: true,
	// With no subcommand the server is started.
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", ".", "directory containing config.yaml")
	rootCmd.AddCommand(serveCmd, migrateCmd)
}

func loadConfig() (config.Config, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return config.Config{}, fmt.Errorf("could not load config: %w", err)
	}
	return cfg, nil
}
