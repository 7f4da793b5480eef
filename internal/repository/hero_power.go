package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/deppfellow/superheroes/internal/model"
	"github.com/deppfellow/superheroes/internal/sqlerr"
)

func (s *store) GetHeroPower(ctx context.Context, id int64) (*model.HeroPower, error) {
	var (
		heroID, powerID             int64
		strength                    string
		heroName, superName         string
		powerName, powerDescription string
	)
	err := s.queryRow(ctx, `
		SELECT hp.hero_id, hp.power_id, hp.strength,
		       h.name, h.super_name,
		       p.name, p.description
		FROM hero_powers hp
		JOIN heroes h ON h.id = hp.hero_id
		JOIN powers p ON p.id = hp.power_id
		WHERE hp.id = ?`, id,
	).Scan(&heroID, &powerID, &strength, &heroName, &superName, &powerName, &powerDescription)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sqlerr.NoRows("hero_powers", err)
		}
		return nil, fmt.Errorf("get hero power %d: %w", id, err)
	}

	link := model.RestoreHeroPower(id, heroID, powerID, strength)
	link.Hero = model.RestoreHero(heroID, heroName, superName)
	link.Power = model.RestorePower(powerID, powerName, powerDescription)

	return link, nil
}

func (s *store) CreateHeroPower(ctx context.Context, heroPower *model.HeroPower) error {
	err := s.queryRow(ctx,
		`INSERT INTO hero_powers (strength, hero_id, power_id) VALUES (?, ?, ?) RETURNING id`,
		string(heroPower.Strength()), heroPower.HeroID, heroPower.PowerID,
	).Scan(&heroPower.ID)
	if err == nil {
		return nil
	}

	err = s.driverError(err, "hero_powers")

	// SQLite does not say which foreign key failed; find the missing parent.
	var sqlErr *sqlerr.Error
	if errors.As(err, &sqlErr) && sqlErr.Code == sqlerr.ForeignKeyViolation && sqlErr.ColumnName == "" {
		column, lookupErr := s.missingParent(ctx, heroPower)
		if lookupErr != nil {
			return fmt.Errorf("create hero power: %w", lookupErr)
		}
		sqlErr.ColumnName = column
	}

	return fmt.Errorf("create hero power: %w", err)
}

// missingParent reports which of hero_id and power_id references no row.
// The hero is checked first.
func (s *store) missingParent(ctx context.Context, heroPower *model.HeroPower) (string, error) {
	checks := []struct {
		column string
		query  string
		id     int64
	}{
		{"hero_id", `SELECT EXISTS (SELECT 1 FROM heroes WHERE id = ?)`, heroPower.HeroID},
		{"power_id", `SELECT EXISTS (SELECT 1 FROM powers WHERE id = ?)`, heroPower.PowerID},
	}

	for _, c := range checks {
		var exists bool
		if err := s.queryRow(ctx, c.query, c.id).Scan(&exists); err != nil {
			return "", err
		}
		if !exists {
			return c.column, nil
		}
	}
	return "", nil
}
