package main

import (
	"log"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema and indexes, then exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		b, err := openBackend(cfg.Database)
		if err != nil {
			return err
		}
		defer func() {
			if err := b.close(); err != nil {
				log.Printf("ERROR: Failed to close database: %v", err)
			}
		}()

		if err := b.migrate(cmd.Context()); err != nil {
			return err
		}
		log.Println("Migration finished.")
		return nil
	},
}
