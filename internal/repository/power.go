package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/deppfellow/superheroes/internal/model"
	"github.com/deppfellow/superheroes/internal/sqlerr"
)

func (s *store) ListPowers(ctx context.Context) ([]model.Power, error) {
	rows, err := s.query(ctx, `SELECT id, name, description FROM powers ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list powers: %w", err)
	}
	defer rows.Close()

	powers := []model.Power{}
	for rows.Next() {
		var (
			id                int64
			name, description string
		)
		if err := rows.Scan(&id, &name, &description); err != nil {
			return nil, fmt.Errorf("scan power: %w", err)
		}
		powers = append(powers, *model.RestorePower(id, name, description))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list powers: %w", err)
	}

	return powers, nil
}

func (s *store) GetPower(ctx context.Context, id int64) (*model.Power, error) {
	var name, description string
	err := s.queryRow(ctx, `SELECT name, description FROM powers WHERE id = ?`, id).Scan(&name, &description)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sqlerr.NoRows("powers", err)
		}
		return nil, fmt.Errorf("get power %d: %w", id, err)
	}
	return model.RestorePower(id, name, description), nil
}

func (s *store) CreatePower(ctx context.Context, power *model.Power) error {
	err := s.queryRow(ctx,
		`INSERT INTO powers (name, description) VALUES (?, ?) RETURNING id`,
		power.Name(), power.Description(),
	).Scan(&power.ID)
	if err != nil {
		return fmt.Errorf("create power: %w", s.driverError(err, "powers"))
	}
	return nil
}

func (s *store) UpdatePower(ctx context.Context, power *model.Power) error {
	res, err := s.exec(ctx,
		`UPDATE powers SET name = ?, description = ? WHERE id = ?`,
		power.Name(), power.Description(), power.ID,
	)
	if err != nil {
		return fmt.Errorf("update power %d: %w", power.ID, s.driverError(err, "powers"))
	}
	return expectAffected(res, "powers")
}

func (s *store) DeletePower(ctx context.Context, id int64) error {
	res, err := s.exec(ctx, `DELETE FROM powers WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete power %d: %w", id, s.driverError(err, "powers"))
	}
	return expectAffected(res, "powers")
}
