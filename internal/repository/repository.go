// Package repository handles all interactions with the database.
//
// It contains raw SQL queries and methods to fetch, persist,
// or update data, abstracting SQL logic away from the service layer.
//
// One implementation serves both stores. Queries are written with "?"
// placeholders and rebound to "$n" for PostgreSQL.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/deppfellow/superheroes/internal/database"
	"github.com/deppfellow/superheroes/internal/model"
	"github.com/deppfellow/superheroes/internal/sqlerr"
	"github.com/mattn/go-sqlite3"
)

// Store is the persistence contract used by the services.
//
// Lookups that miss return an error tagged with sqlerr.NoRows, so
// sqlerr.HandleError turns them into "<Entity> not found".
type Store interface {
	ListHeroes(ctx context.Context) ([]model.Hero, error)
	// GetHero loads the hero with its links, each carrying its Power.
	GetHero(ctx context.Context, id int64) (*model.Hero, error)
	CreateHero(ctx context.Context, hero *model.Hero) error
	DeleteHero(ctx context.Context, id int64) error

	ListPowers(ctx context.Context) ([]model.Power, error)
	GetPower(ctx context.Context, id int64) (*model.Power, error)
	CreatePower(ctx context.Context, power *model.Power) error
	UpdatePower(ctx context.Context, power *model.Power) error
	DeletePower(ctx context.Context, id int64) error

	// GetHeroPower loads the link with its Hero and Power.
	GetHeroPower(ctx context.Context, id int64) (*model.HeroPower, error)
	CreateHeroPower(ctx context.Context, heroPower *model.HeroPower) error

	// DeleteAll empties every table.
	DeleteAll(ctx context.Context) error

	// InTx runs fn inside one transaction. The transaction commits when fn
	// returns nil and rolls back otherwise. Calling InTx on the Store
	// passed to fn joins the running transaction.
	InTx(ctx context.Context, fn func(Store) error) error
}

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

type store struct {
	q      querier
	db     *sql.DB // nil inside a transaction
	driver database.Driver
}

// New returns a Store backed by db.
func New(db *database.Database) Store {
	return &store{q: db.SQL, db: db.SQL, driver: db.Driver}
}

// rebind rewrites "?" placeholders for the store's dialect.
func (s *store) rebind(query string) string {
	if s.driver != database.DriverPostgres {
		return query
	}

	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for i := 0; i < len(query); i++ {
		if query[i] == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteByte(query[i])
	}
	return b.String()
}

func (s *store) query(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return s.q.QueryContext(ctx, s.rebind(query), args...)
}

func (s *store) queryRow(ctx context.Context, query string, args ...any) *sql.Row {
	return s.q.QueryRowContext(ctx, s.rebind(query), args...)
}

func (s *store) exec(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return s.q.ExecContext(ctx, s.rebind(query), args...)
}

// driverError attaches the table to SQLite errors, which do not carry it.
// PostgreSQL errors already name their table and pass through.
func (s *store) driverError(err error, table string) error {
	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		return sqlerr.ConvertSQLiteError(liteErr, table)
	}
	return err
}

func (s *store) InTx(ctx context.Context, fn func(Store) error) (err error) {
	if s.db == nil {
		return fn(s)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if err = fn(&store{q: tx, driver: s.driver}); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

func (s *store) DeleteAll(ctx context.Context) error {
	// Links first, so this does not depend on ON DELETE CASCADE.
	for _, table := range []string{"hero_powers", "heroes", "powers"} {
		if _, err := s.exec(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("delete %s: %w", table, s.driverError(err, table))
		}
	}
	return nil
}

// expectAffected turns a zero-row UPDATE or DELETE into a "no rows" error.
func expectAffected(res sql.Result, table string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sqlerr.NoRows(table, sql.ErrNoRows)
	}
	return nil
}
