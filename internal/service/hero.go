package service

import (
	"context"

	"github.com/deppfellow/superheroes/internal/model"
	"github.com/deppfellow/superheroes/internal/repository"
	"github.com/deppfellow/superheroes/internal/server"
	"github.com/deppfellow/superheroes/internal/sqlerr"
)

type HeroService struct {
	server *server.Server
	store  repository.Store
}

func NewHeroService(s *server.Server, store repository.Store) *HeroService {
	return &HeroService{server: s, store: store}
}

// List returns every hero without their links.
func (s *HeroService) List(ctx context.Context) ([]model.Hero, error) {
	heroes, err := s.store.ListHeroes(ctx)
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}
	return heroes, nil
}

// Get returns one hero with its links and their powers.
func (s *HeroService) Get(ctx context.Context, id int64) (*model.Hero, error) {
	hero, err := s.store.GetHero(ctx, id)
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}
	return hero, nil
}
