package repository

import (
	"github.com/deppfellow/superheroes/internal/server"
)

// Repositories is a container for all repository instances.
//
// Heroes, powers and their links share one Store so a service can span
// all three tables in a single transaction.
type Repositories struct {
	Store Store
}

// NewRepositories constructs the repository container over s.DB.
func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		Store: New(s.DB),
	}
}
