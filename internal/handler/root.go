package handler

import (
	"net/http"

	"github.com/deppfellow/superheroes/internal/server"
	"github.com/labstack/echo/v4"
)

const banner = "<h1>Code challenge week 1</h1>"

type RootHandler struct {
	Handler
}

func NewRootHandler(s *server.Server) *RootHandler {
	return &RootHandler{Handler: NewHandler(s)}
}

// Index serves the static landing banner.
func (h *RootHandler) Index(c echo.Context) error {
	return c.HTML(http.StatusOK, banner)
}
