package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/deppfellow/superheroes/internal/model"
	"github.com/deppfellow/superheroes/internal/sqlerr"
)

func (s *store) ListHeroes(ctx context.Context) ([]model.Hero, error) {
	rows, err := s.query(ctx, `SELECT id, name, super_name FROM heroes ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list heroes: %w", err)
	}
	defer rows.Close()

	heroes := []model.Hero{}
	for rows.Next() {
		var (
			id              int64
			name, superName string
		)
		if err := rows.Scan(&id, &name, &superName); err != nil {
			return nil, fmt.Errorf("scan hero: %w", err)
		}
		heroes = append(heroes, *model.RestoreHero(id, name, superName))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list heroes: %w", err)
	}

	return heroes, nil
}

func (s *store) GetHero(ctx context.Context, id int64) (*model.Hero, error) {
	var name, superName string
	err := s.queryRow(ctx, `SELECT name, super_name FROM heroes WHERE id = ?`, id).Scan(&name, &superName)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sqlerr.NoRows("heroes", err)
		}
		return nil, fmt.Errorf("get hero %d: %w", id, err)
	}

	hero := model.RestoreHero(id, name, superName)

	links, err := s.heroPowersOf(ctx, id)
	if err != nil {
		return nil, err
	}
	hero.HeroPowers = links

	return hero, nil
}

// heroPowersOf loads the links of one hero in id order, each with its Power.
func (s *store) heroPowersOf(ctx context.Context, heroID int64) ([]model.HeroPower, error) {
	rows, err := s.query(ctx, `
		SELECT hp.id, hp.power_id, hp.strength, p.name, p.description
		FROM hero_powers hp
		JOIN powers p ON p.id = hp.power_id
		WHERE hp.hero_id = ?
		ORDER BY hp.id`, heroID)
	if err != nil {
		return nil, fmt.Errorf("list hero powers of hero %d: %w", heroID, err)
	}
	defer rows.Close()

	links := []model.HeroPower{}
	for rows.Next() {
		var (
			id, powerID                    int64
			strength, powerName, powerDesc string
		)
		if err := rows.Scan(&id, &powerID, &strength, &powerName, &powerDesc); err != nil {
			return nil, fmt.Errorf("scan hero power: %w", err)
		}
		link := model.RestoreHeroPower(id, heroID, powerID, strength)
		link.Power = model.RestorePower(powerID, powerName, powerDesc)
		links = append(links, *link)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list hero powers of hero %d: %w", heroID, err)
	}

	return links, nil
}

func (s *store) CreateHero(ctx context.Context, hero *model.Hero) error {
	err := s.queryRow(ctx,
		`INSERT INTO heroes (name, super_name) VALUES (?, ?) RETURNING id`,
		hero.Name(), hero.SuperName(),
	).Scan(&hero.ID)
	if err != nil {
		return fmt.Errorf("create hero: %w", s.driverError(err, "heroes"))
	}
	return nil
}

func (s *store) DeleteHero(ctx context.Context, id int64) error {
	res, err := s.exec(ctx, `DELETE FROM heroes WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete hero %d: %w", id, s.driverError(err, "heroes"))
	}
	return expectAffected(res, "heroes")
}
