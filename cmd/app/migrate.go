package main

import (
	"fmt"
	"strconv"

	"salesorders/cmd"
	"salesorders/internal/adapters/out/postgres/migrations"

	"github.com/spf13/cobra"
)

func newMigrateCmd(envFile *string) *cobra.Command {
	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema",
	}
	migrateCmd.AddCommand(newMigrateUpCmd(envFile))
	migrateCmd.AddCommand(newMigrateDownCmd(envFile))
	migrateCmd.AddCommand(newMigrateVersionCmd(envFile))
	return migrateCmd
}

func newMigrateUpCmd(envFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			config, err := cmd.LoadConfig(*envFile)
			if err != nil {
				return err
			}
			if err := migrateUp(config); err != nil {
				return err
			}
			c.Println("migrations applied")
			return nil
		},
	}
}

func newMigrateDownCmd(envFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "down [steps]",
		Short: "Roll back the given number of migrations (default 1)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			steps := 1
			if len(args) == 1 {
				n, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("steps must be a number: %w", err)
				}
				steps = n
			}

			config, err := cmd.LoadConfig(*envFile)
			if err != nil {
				return err
			}
			db, err := migrations.Open(config.DSN())
			if err != nil {
				return err
			}
			defer db.Close()

			if err := migrations.Down(db, steps); err != nil {
				return err
			}
			c.Printf("rolled back %d migration(s)\n", steps)
			return nil
		},
	}
}

func newMigrateVersionCmd(envFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the current schema version",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			config, err := cmd.LoadConfig(*envFile)
			if err != nil {
				return err
			}
			db, err := migrations.Open(config.DSN())
			if err != nil {
				return err
			}
			defer db.Close()

			version, dirty, err := migrations.Version(db)
			if err != nil {
				return err
			}
			c.Printf("version %d (dirty: %t)\n", version, dirty)
			return nil
		},
	}
}
