package service_test

import (
	"database/sql"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/proyectozoo/zoo-api/internal/mocks"
	"github.com/proyectozoo/zoo-api/internal/service"
	"github.com/stretchr/testify/require"
)

// fixedNow is a Monday morning used as "now" across service tests.
var fixedNow = time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)

func clockAt(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTxDB returns a sqlmock database whose expectations are verified at cleanup.
func newTxDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, mock.ExpectationsWereMet())
		_ = db.Close()
	})
	return db, mock
}

func expectCommit(m sqlmock.Sqlmock) {
	m.ExpectBegin()
	m.ExpectCommit()
}

func expectRollback(m sqlmock.Sqlmock) {
	m.ExpectBegin()
	m.ExpectRollback()
}

func photos(images *mocks.MockImageStore, dir string) service.Photos {
	return service.Photos{Images: images, Dir: dir, DefaultPath: dir + "/default.png"}
}
