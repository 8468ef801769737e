package db

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 db,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return gdb, mock
}

func TestEnsureOverlapGuardUsesTimestamptzRange(t *testing.T) {
	gdb, mock := newMockDB(t)

	mock.ExpectExec(`CREATE EXTENSION IF NOT EXISTS btree_gist`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	// start_time/end_time migrate as timestamptz; the constraint must use
	// the matching range type or Postgres rejects the DDL outright.
	mock.ExpectExec(`tstzrange\(start_time, end_time\) WITH &&`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, ensureOverlapGuard(gdb))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnsureOverlapGuardSurfacesDDLErrors(t *testing.T) {
	gdb, mock := newMockDB(t)

	mock.ExpectExec(`CREATE EXTENSION IF NOT EXISTS btree_gist`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`tstzrange\(start_time, end_time\)`).
		WillReturnError(errors.New("type mismatch"))

	err := ensureOverlapGuard(gdb)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "type mismatch")
}

func TestEnsureOverlapGuardSurfacesExtensionErrors(t *testing.T) {
	gdb, mock := newMockDB(t)

	mock.ExpectExec(`CREATE EXTENSION IF NOT EXISTS btree_gist`).
		WillReturnError(errors.New("permission denied"))

	err := ensureOverlapGuard(gdb)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "permission denied")
}
