package migrations

import (
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
)

// Run creates the database schema for the records API. Statements are
// idempotent, so Run is safe on every start.
func Run(db *sqlx.DB) error {
	schema := sqliteSchema
	if db.DriverName() == "pgx" {
		schema = postgresSchema
	}
	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}
	return nil
}

var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id SERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		contacts TEXT NOT NULL DEFAULT '',
		login TEXT NOT NULL UNIQUE,
		password TEXT NOT NULL
	);`,
	`CREATE TABLE IF NOT EXISTS users_roles (
		user_id INTEGER PRIMARY KEY REFERENCES users(id),
		is_admin BOOLEAN NOT NULL DEFAULT FALSE,
		is_driver BOOLEAN NOT NULL DEFAULT FALSE,
		is_operator BOOLEAN NOT NULL DEFAULT FALSE,
		is_superuser BOOLEAN NOT NULL DEFAULT FALSE
	);`,
	`CREATE TABLE IF NOT EXISTS providers (
		id SERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		contacts TEXT NOT NULL DEFAULT '',
		comments TEXT NOT NULL DEFAULT ''
	);`,
	`CREATE TABLE IF NOT EXISTS clients (
		id SERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		entity TEXT NOT NULL DEFAULT '',
		address TEXT NOT NULL DEFAULT '',
		address_comments TEXT NOT NULL DEFAULT '',
		network TEXT NOT NULL DEFAULT '',
		payment TEXT NOT NULL DEFAULT '',
		default_provider INTEGER REFERENCES providers(id),
		recoil DOUBLE PRECISION NOT NULL DEFAULT 0,
		comments TEXT NOT NULL DEFAULT ''
	);`,
	`CREATE TABLE IF NOT EXISTS clients_work_hours (
		client_id INTEGER PRIMARY KEY REFERENCES clients(id),
		monday TEXT,
		tuesday TEXT,
		wednesday TEXT,
		thursday TEXT,
		friday TEXT,
		saturday TEXT,
		sunday TEXT
	);`,
	`CREATE TABLE IF NOT EXISTS products (
		id SERIAL PRIMARY KEY,
		product_name TEXT NOT NULL UNIQUE
	);`,
	`CREATE TABLE IF NOT EXISTS providers_purchases (
		id SERIAL PRIMARY KEY,
		delivery_time TIMESTAMP NOT NULL,
		provider INTEGER REFERENCES providers(id),
		product TEXT NOT NULL,
		amount INTEGER NOT NULL DEFAULT 0,
		weight DOUBLE PRECISION NOT NULL DEFAULT 0,
		price_per_kilo DOUBLE PRECISION NOT NULL DEFAULT 0,
		total_price DOUBLE PRECISION NOT NULL DEFAULT 0,
		paid DOUBLE PRECISION NOT NULL DEFAULT 0,
		debt DOUBLE PRECISION NOT NULL DEFAULT 0,
		comments TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL DEFAULT ''
	);`,
	`CREATE TABLE IF NOT EXISTS clients_sales (
		id SERIAL PRIMARY KEY,
		delivery_time TIMESTAMP NOT NULL,
		client INTEGER REFERENCES clients(id),
		provider INTEGER REFERENCES providers(id),
		driver INTEGER REFERENCES users(id),
		paid DOUBLE PRECISION NOT NULL DEFAULT 0,
		debt DOUBLE PRECISION NOT NULL DEFAULT 0,
		comments TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL DEFAULT ''
	);`,
	`CREATE TABLE IF NOT EXISTS drivers_share (
		id SERIAL PRIMARY KEY,
		driver_id INTEGER REFERENCES users(id),
		purchase_id INTEGER REFERENCES providers_purchases(id),
		amount INTEGER NOT NULL DEFAULT 0,
		weight DOUBLE PRECISION NOT NULL DEFAULT 0,
		price_per_kilo DOUBLE PRECISION NOT NULL DEFAULT 0,
		status TEXT NOT NULL DEFAULT ''
	);`,
	`CREATE INDEX IF NOT EXISTS drivers_share_purchase_idx ON drivers_share (purchase_id);`,
	`CREATE TABLE IF NOT EXISTS history (
		id SERIAL PRIMARY KEY,
		sale_id INTEGER REFERENCES clients_sales(id),
		share_id INTEGER REFERENCES drivers_share(id),
		amount INTEGER NOT NULL DEFAULT 0,
		weight DOUBLE PRECISION NOT NULL DEFAULT 0,
		price_per_kilo DOUBLE PRECISION NOT NULL DEFAULT 0,
		total_price DOUBLE PRECISION NOT NULL DEFAULT 0
	);`,
	`CREATE TABLE IF NOT EXISTS clients_future_sales (
		id SERIAL PRIMARY KEY,
		client INTEGER REFERENCES clients(id),
		product TEXT NOT NULL,
		amount INTEGER NOT NULL DEFAULT 0,
		order_time TIMESTAMP NOT NULL,
		delivery_time TIMESTAMP NOT NULL,
		status TEXT NOT NULL DEFAULT '',
		comments TEXT NOT NULL DEFAULT ''
	);`,
	`CREATE TABLE IF NOT EXISTS clients_prices (
		id SERIAL PRIMARY KEY,
		product_name TEXT NOT NULL,
		client_id INTEGER REFERENCES clients(id),
		price DOUBLE PRECISION NOT NULL DEFAULT 0
	);`,
}

// sqliteSchema is derived from the PostgreSQL one; only the id and type
// spellings differ.
var sqliteSchema = func() []string {
	r := strings.NewReplacer(
		"SERIAL PRIMARY KEY", "INTEGER PRIMARY KEY AUTOINCREMENT",
		"DOUBLE PRECISION", "REAL",
		"TIMESTAMP", "TEXT",
		"BOOLEAN", "INTEGER",
		"DEFAULT FALSE", "DEFAULT 0",
	)
	out := make([]string, len(postgresSchema))
	for i, stmt := range postgresSchema {
		out[i] = r.Replace(stmt)
	}
	return out
}()
