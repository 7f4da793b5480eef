package service

import (
	"github.com/deppfellow/superheroes/internal/repository"
	"github.com/deppfellow/superheroes/internal/server"
)

type Services struct {
	Heroes     *HeroService
	Powers     *PowerService
	HeroPowers *HeroPowerService
	Seed       *SeedService
}

func NewService(s *server.Server, repos *repository.Repositories) (*Services, error) {
	return &Services{
		Heroes:     NewHeroService(s, repos.Store),
		Powers:     NewPowerService(s, repos.Store),
		HeroPowers: NewHeroPowerService(s, repos.Store),
		Seed:       NewSeedService(s, repos.Store),
	}, nil
}
