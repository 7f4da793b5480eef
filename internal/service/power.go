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

// MissingFieldsMessage is returned when an update carries nothing to apply.
const MissingFieldsMessage = "Validation errors"

type PowerService struct {
	server *server.Server
	store  repository.Store
}

func NewPowerService(s *server.Server, store repository.Store) *PowerService {
	return &PowerService{server: s, store: store}
}

func (s *PowerService) List(ctx context.Context) ([]model.Power, error) {
	powers, err := s.store.ListPowers(ctx)
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}
	return powers, nil
}

func (s *PowerService) Get(ctx context.Context, id int64) (*model.Power, error) {
	power, err := s.store.GetPower(ctx, id)
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}
	return power, nil
}

// UpdateDescription replaces the description of power id.
//
// Checks run in this order, inside one transaction:
//  1. the power exists (404)
//  2. a non-empty description was sent (400 "Validation errors")
//  3. the description satisfies the Power rules (400 with the rule's message)
//
// Any failure rolls the transaction back, so the stored power is unchanged.
func (s *PowerService) UpdateDescription(ctx context.Context, id int64, description *string) (*model.Power, error) {
	var updated *model.Power

	err := s.store.InTx(ctx, func(tx repository.Store) error {
		power, err := tx.GetPower(ctx, id)
		if err != nil {
			return err
		}

		if description == nil || *description == "" {
			return errs.NewBadRequestError(MissingFieldsMessage, nil, []string{MissingFieldsMessage})
		}

		if err := power.SetDescription(*description); err != nil {
			return errs.ValidationError(err)
		}

		if err := tx.UpdatePower(ctx, power); err != nil {
			return err
		}

		updated = power
		return nil
	})
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}

	logger.FromContext(ctx).Info().
		Int64("power_id", updated.ID).
		Msg("power description updated")

	return updated, nil
}
