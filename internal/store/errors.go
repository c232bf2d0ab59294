package store

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"tradebook/m/internal/apperr"
)

func notFound(what string) error {
	return apperr.NotFound("%s not found", what)
}

// classify maps driver failures onto the apperr taxonomy. what names the
// record or operation for the caller-facing message.
func classify(err error, what string) error {
	if err == nil {
		return nil
	}
	var ae *apperr.Error
	if errors.As(err, &ae) {
		return err
	}
	if errors.Is(err, sql.ErrNoRows) {
		return notFound(what)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == "23505":
			return apperr.Wrap(apperr.KindConflict, err, what+" already exists")
		case strings.HasPrefix(pgErr.Code, "23"):
			return apperr.Wrap(apperr.KindValidation, err, what+" references a missing record or violates a constraint")
		case strings.HasPrefix(pgErr.Code, "22"):
			return apperr.Wrap(apperr.KindValidation, err, "invalid value for "+what)
		case strings.HasPrefix(pgErr.Code, "08"), strings.HasPrefix(pgErr.Code, "57P"):
			return unavailable(err)
		}
	}

	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		code := liteErr.Code()
		switch {
		case code == sqlite3.SQLITE_CONSTRAINT_UNIQUE, code == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY,
			code&0xff == sqlite3.SQLITE_CONSTRAINT && strings.Contains(liteErr.Error(), "UNIQUE constraint failed"):
			return apperr.Wrap(apperr.KindConflict, err, what+" already exists")
		case code&0xff == sqlite3.SQLITE_CONSTRAINT:
			return apperr.Wrap(apperr.KindValidation, err, what+" references a missing record or violates a constraint")
		case code&0xff == sqlite3.SQLITE_BUSY, code&0xff == sqlite3.SQLITE_LOCKED, code&0xff == sqlite3.SQLITE_CANTOPEN:
			return unavailable(err)
		}
	}

	var connectErr *pgconn.ConnectError
	var netErr net.Error
	switch {
	case errors.Is(err, driver.ErrBadConn), errors.Is(err, sql.ErrConnDone),
		errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled),
		errors.As(err, &connectErr), errors.As(err, &netErr):
		return unavailable(err)
	}
	// database/sql does not export its closed-pool error.
	if strings.Contains(err.Error(), "sql: database is closed") {
		return unavailable(err)
	}
	return fmt.Errorf("%s: %w", what, err)
}

func unavailable(err error) error {
	return apperr.Wrap(apperr.KindUnavailable, err, "store unavailable")
}
