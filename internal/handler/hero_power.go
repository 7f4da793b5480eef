package handler

import (
	"github.com/deppfellow/superheroes/internal/serializer"
	"github.com/deppfellow/superheroes/internal/server"
	"github.com/deppfellow/superheroes/internal/service"
	"github.com/deppfellow/superheroes/internal/validation"
	"github.com/labstack/echo/v4"
)

// CreateHeroPowerRequest is the POST /hero_powers payload.
//
// strength is checked by the HeroPower model, so its message matches
// every other place a link is built.
type CreateHeroPowerRequest struct {
	Strength string `json:"strength"`
	PowerID  int64  `json:"power_id" validate:"required"`
	HeroID   int64  `json:"hero_id" validate:"required"`
}

func (r *CreateHeroPowerRequest) Validate() error {
	return validation.Struct(r)
}

type HeroPowerHandler struct {
	Handler
	heroPowers *service.HeroPowerService
}

func NewHeroPowerHandler(s *server.Server, heroPowers *service.HeroPowerService) *HeroPowerHandler {
	return &HeroPowerHandler{
		Handler:    NewHandler(s),
		heroPowers: heroPowers,
	}
}

func (h *HeroPowerHandler) CreateHeroPower(c echo.Context, req *CreateHeroPowerRequest) (serializer.HeroPowerDetail, error) {
	link, err := h.heroPowers.Create(c.Request().Context(), req.HeroID, req.PowerID, req.Strength)
	if err != nil {
		return serializer.HeroPowerDetail{}, err
	}
	return serializer.NewHeroPowerDetail(link), nil
}
