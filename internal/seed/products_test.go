package seed

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"tradebook/m/internal/migrations"
)

func TestLoadProducts(t *testing.T) {
	db, err := sqlx.Connect("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, migrations.Run(db))

	_, err = db.Exec(`INSERT INTO products (product_name) VALUES ('Gouda')`)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "products.csv")
	csv := "product_name,origin\nGouda,NL\nBrie,FR\n\n  Cheddar  ,UK\nBrie,FR\n"
	require.NoError(t, os.WriteFile(path, []byte(csv), 0o600))

	n, err := LoadProducts(db, path, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	var names []string
	require.NoError(t, db.Select(&names, `SELECT product_name FROM products ORDER BY product_name`))
	assert.Equal(t, []string{"Brie", "Cheddar", "Gouda"}, names)
}

func TestLoadProductsMissingFile(t *testing.T) {
	db, err := sqlx.Connect("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	_, err = LoadProducts(db, filepath.Join(t.TempDir(), "absent.csv"), zap.NewNop())
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadProductsStopsOnInsertError(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })
	db := sqlx.NewDb(mockDB, "sqlmock")

	path := filepath.Join(t.TempDir(), "products.csv")
	require.NoError(t, os.WriteFile(path, []byte("Gouda\nBrie\nCheddar\n"), 0o600))

	mock.ExpectBegin()
	prep := mock.ExpectPrepare("INSERT INTO products")
	prep.ExpectExec().WithArgs("Gouda").WillReturnResult(sqlmock.NewResult(1, 1))
	prep.ExpectExec().WithArgs("Brie").WillReturnError(errors.New("current transaction is aborted"))
	mock.ExpectRollback()

	n, err := LoadProducts(db, path, zap.NewNop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"Brie" (line 2)`)
	assert.Zero(t, n)
	assert.NoError(t, mock.ExpectationsWereMet())
}
