package service

import (
	"context"

	"github.com/deppfellow/superheroes/internal/errs"
	"github.com/deppfellow/superheroes/internal/logger"
	"github.com/deppfellow/superheroes/internal/model"
	"github.com/deppfellow/superheroes/internal/repository"
	"github.com/deppfellow/superheroes/internal/server"
	"github.com/deppfellow/superheroes/internal/sqlerr"
)

type HeroPowerService struct {
	server *server.Server
	store  repository.Store
}

func NewHeroPowerService(s *server.Server, store repository.Store) *HeroPowerService {
	return &HeroPowerService{server: s, store: store}
}

// Create links heroID to powerID and returns the stored link with both
// parents loaded. A bad strength or a missing parent rolls back the
// transaction.
func (s *HeroPowerService) Create(ctx context.Context, heroID, powerID int64, strength string) (*model.HeroPower, error) {
	var created *model.HeroPower

	err := s.store.InTx(ctx, func(tx repository.Store) error {
		link, err := model.NewHeroPower(heroID, powerID, strength)
		if err != nil {
			return errs.ValidationError(err)
		}

		if err := tx.CreateHeroPower(ctx, link); err != nil {
			return err
		}

		created, err = tx.GetHeroPower(ctx, link.ID)
		return err
	})
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}

	logger.FromContext(ctx).Info().
		Int64("hero_power_id", created.ID).
		Int64("hero_id", created.HeroID).
		Int64("power_id", created.PowerID).
		Str("strength", string(created.Strength())).
		Msg("hero power created")

	return created, nil
}
