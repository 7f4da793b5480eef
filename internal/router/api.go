package router

import (
	"net/http"

	"github.com/deppfellow/superheroes/internal/handler"
	"github.com/labstack/echo/v4"
)

func registerAPIRoutes(r *echo.Echo, h *handler.Handlers) {
	heroes := r.Group("/heroes")
	heroes.GET("", handler.Handle(h.Heroes.Handler, h.Heroes.ListHeroes, http.StatusOK, &handler.EmptyRequest{}))
	heroes.GET("/:id", handler.Handle(h.Heroes.Handler, h.Heroes.GetHero, http.StatusOK, &handler.IDRequest{}))

	powers := r.Group("/powers")
	powers.GET("", handler.Handle(h.Powers.Handler, h.Powers.ListPowers, http.StatusOK, &handler.EmptyRequest{}))
	powers.GET("/:id", handler.Handle(h.Powers.Handler, h.Powers.GetPower, http.StatusOK, &handler.IDRequest{}))
	powers.PATCH("/:id", handler.Handle(h.Powers.Handler, h.Powers.UpdatePower, http.StatusOK, &handler.UpdatePowerRequest{}))

	r.POST("/hero_powers", handler.Handle(h.HeroPowers.Handler, h.HeroPowers.CreateHeroPower, http.StatusCreated, &handler.CreateHeroPowerRequest{}))
}
