package seed

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

// LoadProducts ingests a product catalog CSV into the products table,
// ignoring names that already exist. The first column of each row is the
// product name; a header row named "product_name" is skipped.
func LoadProducts(db *sqlx.DB, csvPath string, log *zap.Logger) (int, error) {
	file, err := os.Open(csvPath)
	if err != nil {
		return 0, err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	tx, err := db.Beginx()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	stmt, err := tx.Preparex(tx.Rebind(`INSERT INTO products (product_name) VALUES (?) ON CONFLICT (product_name) DO NOTHING`))
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	rows := 0
	for line := 0; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			log.Warn("unable to read product row", zap.Int("line", line+1), zap.Error(err))
			continue
		}
		name := strings.TrimSpace(record[0])
		if name == "" || (line == 0 && strings.EqualFold(name, "product_name")) {
			continue
		}
		res, err := stmt.Exec(name)
		if err != nil {
			return 0, fmt.Errorf("insert product %q (line %d): %w", name, line+1, err)
		}
		if n, _ := res.RowsAffected(); n > 0 {
			rows++
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	log.Info("seeded product catalog", zap.Int("rows", rows), zap.String("path", csvPath))
	return rows, nil
}
