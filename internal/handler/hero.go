package handler

import (
	"github.com/deppfellow/superheroes/internal/serializer"
	"github.com/deppfellow/superheroes/internal/server"
	"github.com/deppfellow/superheroes/internal/service"
	"github.com/labstack/echo/v4"
)

type HeroHandler struct {
	Handler
	heroes *service.HeroService
}

func NewHeroHandler(s *server.Server, heroes *service.HeroService) *HeroHandler {
	return &HeroHandler{
		Handler: NewHandler(s),
		heroes:  heroes,
	}
}

// ListHeroes returns every hero as a summary, without links.
func (h *HeroHandler) ListHeroes(c echo.Context, _ *EmptyRequest) ([]serializer.HeroSummary, error) {
	heroes, err := h.heroes.List(c.Request().Context())
	if err != nil {
		return nil, err
	}
	return serializer.NewHeroSummaries(heroes), nil
}

// GetHero returns one hero with its hero_powers and their powers.
func (h *HeroHandler) GetHero(c echo.Context, req *IDRequest) (serializer.HeroDetail, error) {
	hero, err := h.heroes.Get(c.Request().Context(), req.ID)
	if err != nil {
		return serializer.HeroDetail{}, err
	}
	return serializer.NewHeroDetail(hero), nil
}
