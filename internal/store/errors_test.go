package store

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tradebook/m/internal/apperr"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want apperr.Kind
	}{
		{"no rows", sql.ErrNoRows, apperr.KindNotFound},
		{"unique violation", &pgconn.PgError{Code: "23505"}, apperr.KindConflict},
		{"foreign key violation", &pgconn.PgError{Code: "23503"}, apperr.KindValidation},
		{"bad text representation", &pgconn.PgError{Code: "22P02"}, apperr.KindValidation},
		{"connection failure", &pgconn.PgError{Code: "08006"}, apperr.KindUnavailable},
		{"admin shutdown", &pgconn.PgError{Code: "57P01"}, apperr.KindUnavailable},
		{"bad conn", fmt.Errorf("exec: %w", driver.ErrBadConn), apperr.KindUnavailable},
		{"deadline", context.DeadlineExceeded, apperr.KindUnavailable},
		{"closed pool", errors.New("sql: database is closed"), apperr.KindUnavailable},
		{"already classified", apperr.Conflict("taken"), apperr.KindConflict},
		{"anything else", errors.New("boom"), apperr.KindInternal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, apperr.KindOf(classify(tt.err, "record")))
		})
	}
	assert.NoError(t, classify(nil, "record"))
}

func newMockStore(t *testing.T) (*Store, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })
	return New(sqlx.NewDb(mockDB, "sqlmock"), fakeHash), mock
}

func TestProvidersStoreUnavailable(t *testing.T) {
	s, mock := newMockStore(t)
	mock.ExpectQuery("SELECT id, name, contacts, comments FROM providers").
		WillReturnError(&pgconn.PgError{Code: "08001", Message: "connection refused"})

	_, err := s.Providers(context.Background())
	require.Error(t, err)
	assert.Equal(t, apperr.KindUnavailable, apperr.KindOf(err))
	assert.Equal(t, "store unavailable", apperr.Message(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateFieldUsesAllowListedColumn(t *testing.T) {
	s, mock := newMockStore(t)
	mock.ExpectExec(`UPDATE drivers_share SET driver_id = \? WHERE id = \?`).
		WithArgs(int64(3), int64(9)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, s.UpdateField(context.Background(), EntityShares, 9, "driver", []byte(`3`)))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateFieldMissingRow(t *testing.T) {
	s, mock := newMockStore(t)
	mock.ExpectExec(`UPDATE history SET total_price = \? WHERE id = \?`).
		WithArgs(12.5, int64(4)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := s.UpdateField(context.Background(), EntityHistory, 4, "total_price", []byte(`12.5`))
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	assert.Equal(t, "history record not found", apperr.Message(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}
