package service

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/deppfellow/superheroes/internal/model"
	"github.com/deppfellow/superheroes/internal/repository"
	"github.com/deppfellow/superheroes/internal/server"
)

// SeedPower and SeedHero describe the fixed sample rows.
type SeedPower struct {
	Name        string
	Description string
}

type SeedHero struct {
	Name      string
	SuperName string
}

var SeedPowers = []SeedPower{
	{"super strength", "Gives the wielder super-human strength"},
	{"flight", "Gives the wielder the ability to fly through the skies at supersonic speed"},
	{"super human senses", "Allows the wielder to use her senses at a super-human level"},
	{"elasticity", "Can stretch the human body to extreme lengths"},
}

var SeedHeroes = []SeedHero{
	{"Kamala Khan", "Ms. Marvel"},
	{"Doreen Green", "Squirrel Girl"},
	{"Gwen Stacy", "Spider-Gwen"},
	{"Janet Van Dyne", "The Wasp"},
	{"Wanda Maximoff", "Scarlet Witch"},
	{"Carol Danvers", "Captain Marvel"},
	{"Jean Grey", "Dark Phoenix"},
	{"Ororo Munroe", "Storm"},
	{"Kitty Pryde", "Shadowcat"},
	{"Elektra Natchios", "Elektra"},
}

type SeedService struct {
	server *server.Server
	store  repository.Store
	rand   *rand.Rand
}

func NewSeedService(s *server.Server, store repository.Store) *SeedService {
	return &SeedService{
		server: s,
		store:  store,
		rand:   rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
}

// WithRand makes power and strength picks reproducible.
func (s *SeedService) WithRand(r *rand.Rand) *SeedService {
	s.rand = r
	return s
}

// Run replaces the store content with the sample data.
//
// Every table is cleared, then the powers and heroes are inserted and each
// hero gets one random power at a random strength. All of it happens in a
// single transaction.
func (s *SeedService) Run(ctx context.Context) error {
	log := s.server.Logger

	err := s.store.InTx(ctx, func(tx repository.Store) error {
		log.Info().Msg("clearing db")
		if err := tx.DeleteAll(ctx); err != nil {
			return err
		}

		log.Info().Msg("seeding powers")
		powers := make([]*model.Power, 0, len(SeedPowers))
		for _, sp := range SeedPowers {
			power, err := model.NewPower(sp.Name, sp.Description)
			if err != nil {
				return err
			}
			if err := tx.CreatePower(ctx, power); err != nil {
				return err
			}
			powers = append(powers, power)
		}

		log.Info().Msg("seeding heroes")
		heroes := make([]*model.Hero, 0, len(SeedHeroes))
		for _, sh := range SeedHeroes {
			hero, err := model.NewHero(sh.Name, sh.SuperName)
			if err != nil {
				return err
			}
			if err := tx.CreateHero(ctx, hero); err != nil {
				return err
			}
			heroes = append(heroes, hero)
		}

		log.Info().Msg("adding powers to heroes")
		for _, hero := range heroes {
			power := powers[s.rand.IntN(len(powers))]
			strength := model.Strengths[s.rand.IntN(len(model.Strengths))]

			link, err := model.NewHeroPower(hero.ID, power.ID, string(strength))
			if err != nil {
				return err
			}
			if err := tx.CreateHeroPower(ctx, link); err != nil {
				return err
			}

			log.Debug().
				Str("hero", hero.SuperName()).
				Str("power", power.Name()).
				Str("strength", string(strength)).
				Msg("assigned power")
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}

	log.Info().Int("heroes", len(SeedHeroes)).Int("powers", len(SeedPowers)).Msg("done seeding")
	return nil
}
