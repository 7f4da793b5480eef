package main

import (
	"math/rand/v2"

	"github.com/deppfellow/superheroes/internal/database"
	"github.com/deppfellow/superheroes/internal/repository"
	"github.com/deppfellow/superheroes/internal/service"
	"github.com/spf13/cobra"
)

var seedValue uint64

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Replace all rows with the sample heroes and powers",
	Long: `seed deletes every hero, power and hero_power, then inserts the sample
heroes and powers and gives each hero one random power at a random strength.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := bootstrap()
		if err != nil {
			return err
		}
		defer a.close()

		ctx := cmd.Context()
		if err := database.Migrate(ctx, a.log, a.server.DB); err != nil {
			return err
		}

		services, err := service.NewService(a.server, repository.NewRepositories(a.server))
		if err != nil {
			return err
		}

		seeder := services.Seed
		if cmd.Flags().Changed("rand-seed") {
			seeder = seeder.WithRand(rand.New(rand.NewPCG(seedValue, seedValue)))
		}

		return seeder.Run(ctx)
	},
}

func init() {
	seedCmd.Flags().Uint64Var(&seedValue, "rand-seed", 0, "Seed for the power and strength assignments, for reproducible data")
}
