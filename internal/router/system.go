package router

import (
	"github.com/deppfellow/superheroes/internal/handler"
	"github.com/labstack/echo/v4"
)

// registerSystemRoutes registers endpoints that are not part of the API itself.
func registerSystemRoutes(r *echo.Echo, h *handler.Handlers) {
	r.GET("/", h.Root.Index)

	// Health status endpoint (used by monitors).
	r.GET("/status", h.Health.CheckHealth)

	// openapi.json and the docs UI page.
	r.Static("/static", handler.StaticDir)
	r.GET("/docs", h.OpenAPI.ServeOpenAPIUI)
}
