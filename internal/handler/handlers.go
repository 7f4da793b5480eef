package handler

import (
	"github.com/deppfellow/superheroes/internal/server"
	"github.com/deppfellow/superheroes/internal/service"
)

// Handlers is a container that groups all HTTP handlers, so router
// setup receives one object instead of many.
type Handlers struct {
	Root       *RootHandler
	Health     *HealthHandler  // Health serves the /status endpoint.
	OpenAPI    *OpenAPIHandler // OpenAPI serves the API documentation UI.
	Heroes     *HeroHandler
	Powers     *PowerHandler
	HeroPowers *HeroPowerHandler
}

// NewHandlers constructs the handler container.
func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Root:       NewRootHandler(s),
		Health:     NewHealthHandler(s),
		OpenAPI:    NewOpenAPIHandler(s),
		Heroes:     NewHeroHandler(s, services.Heroes),
		Powers:     NewPowerHandler(s, services.Powers),
		HeroPowers: NewHeroPowerHandler(s, services.HeroPowers),
	}
}
