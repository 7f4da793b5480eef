package main

import (
	"github.com/deppfellow/superheroes/internal/database"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or upgrade the heroes, powers and hero_powers tables",
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := bootstrap()
		if err != nil {
			return err
		}
		defer a.close()

		return database.Migrate(cmd.Context(), a.log, a.server.DB)
	},
}
