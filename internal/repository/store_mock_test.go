package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/deppfellow/superheroes/internal/database"
	"github.com/deppfellow/superheroes/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockStore(t *testing.T, driver database.Driver) (*store, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return &store{q: db, db: db, driver: driver}, mock
}

func TestRebind(t *testing.T) {
	pg := &store{driver: database.DriverPostgres}
	lite := &store{driver: database.DriverSQLite}

	query := "INSERT INTO hero_powers (strength, hero_id, power_id) VALUES (?, ?, ?)"

	assert.Equal(t, "INSERT INTO hero_powers (strength, hero_id, power_id) VALUES ($1, $2, $3)", pg.rebind(query))
	assert.Equal(t, query, lite.rebind(query))
	assert.Equal(t, "SELECT 1", pg.rebind("SELECT 1"))
}

func TestInTx_CommitFailure(t *testing.T) {
	s, mock := newMockStore(t, database.DriverPostgres)
	commitErr := errors.New("connection lost")

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO heroes \(name, super_name\) VALUES \(\$1, \$2\) RETURNING id`).
		WithArgs("Kamala Khan", "Ms. Marvel").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
	mock.ExpectCommit().WillReturnError(commitErr)

	hero, err := model.NewHero("Kamala Khan", "Ms. Marvel")
	require.NoError(t, err)

	err = s.InTx(context.Background(), func(tx Store) error {
		return tx.CreateHero(context.Background(), hero)
	})
	assert.ErrorIs(t, err, commitErr)
	assert.Equal(t, int64(7), hero.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInTx_BeginFailure(t *testing.T) {
	s, mock := newMockStore(t, database.DriverSQLite)
	beginErr := errors.New("database is locked")

	mock.ExpectBegin().WillReturnError(beginErr)

	called := false
	err := s.InTx(context.Background(), func(Store) error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, beginErr)
	assert.False(t, called)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInTx_RollsBackOnPanic(t *testing.T) {
	s, mock := newMockStore(t, database.DriverSQLite)

	mock.ExpectBegin()
	mock.ExpectRollback()

	assert.Panics(t, func() {
		_ = s.InTx(context.Background(), func(Store) error {
			panic("boom")
		})
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdatePower_NoRowsAffected(t *testing.T) {
	s, mock := newMockStore(t, database.DriverPostgres)

	mock.ExpectExec(`UPDATE powers SET name = \$1, description = \$2 WHERE id = \$3`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := s.UpdatePower(context.Background(), model.RestorePower(42, "flight", "Soars above the clouds all day"))
	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListHeroes_QueryFailure(t *testing.T) {
	s, mock := newMockStore(t, database.DriverSQLite)
	queryErr := errors.New("disk I/O error")

	mock.ExpectQuery(`SELECT id, name, super_name FROM heroes`).WillReturnError(queryErr)

	heroes, err := s.ListHeroes(context.Background())
	assert.ErrorIs(t, err, queryErr)
	assert.Nil(t, heroes)
	assert.NoError(t, mock.ExpectationsWereMet())
}
