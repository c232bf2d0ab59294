// Package store maps records API operations onto parameterized SQL through
// sqlx. Queries are written with ? placeholders and rebound for the driver,
// so the same statements run on PostgreSQL (pgx) and SQLite.
package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
)

// PasswordHasher turns a plaintext password into the value kept in users.password.
type PasswordHasher func(plain string) (string, error)

// Store bundles the database handle used by every repository method.
type Store struct {
	db   *sqlx.DB
	hash PasswordHasher
}

// New constructs a Store. hash is applied to every password before it is written.
func New(db *sqlx.DB, hash PasswordHasher) *Store {
	return &Store{db: db, hash: hash}
}

// Ping reports whether the store answers.
func (s *Store) Ping(ctx context.Context) error {
	return classify(s.db.PingContext(ctx), "store")
}

func (s *Store) insert(ctx context.Context, q sqlx.QueryerContext, query string, args ...any) (int64, error) {
	var id int64
	err := q.QueryRowxContext(ctx, s.db.Rebind(query+" RETURNING id"), args...).Scan(&id)
	return id, err
}

// selection accumulates the column list and joins of a listing query. Joined
// columns are aliased with dotted paths ("provider.name") so sqlx scans them
// into the nested reference structs of the domain types.
type selection struct {
	cols  []string
	joins []string
}

func (q *selection) col(expr, as string) {
	q.cols = append(q.cols, fmt.Sprintf(`%s AS "%s"`, expr, as))
}

func (q *selection) fields(alias, prefix string, names ...string) {
	for _, n := range names {
		q.col(alias+"."+n, prefix+n)
	}
}

func (q *selection) join(table, alias, on string) {
	q.joins = append(q.joins, fmt.Sprintf("LEFT JOIN %s %s ON %s", table, alias, on))
}

func (q *selection) provider(alias, fk, prefix string) {
	q.join("providers", alias, fk+" = "+alias+".id")
	q.fields(alias, prefix, "id", "name", "contacts", "comments")
}

func (q *selection) user(alias, fk, prefix string) {
	q.join("users", alias, fk+" = "+alias+".id")
	q.fields(alias, prefix, "id", "name", "contacts")
}

func (q *selection) workHours(alias, clientID, prefix string) {
	q.join("clients_work_hours", alias, clientID+" = "+alias+".client_id")
	q.fields(alias, prefix, "monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday")
}

// clientColumns selects a client row already present under alias.
func (q *selection) clientColumns(alias, prefix string) {
	q.fields(alias, prefix, "id", "name", "entity", "address", "address_comments", "network", "payment")
	q.col(alias+".default_provider", prefix+"default_provider_id")
	q.fields(alias, prefix, "recoil", "comments")
	q.provider(alias+"_dp", alias+".default_provider", prefix+"default_provider.")
	q.workHours(alias+"_wh", alias+".id", prefix+"work_hours.")
}

func (q *selection) client(alias, fk, prefix string) {
	q.join("clients", alias, fk+" = "+alias+".id")
	q.clientColumns(alias, prefix)
}

func (q *selection) purchaseColumns(alias, prefix string) {
	q.fields(alias, prefix, "id", "delivery_time", "product", "amount", "weight",
		"price_per_kilo", "total_price", "paid", "debt", "comments", "status")
	q.provider(alias+"_pr", alias+".provider", prefix+"provider.")
}

func (q *selection) purchase(alias, fk, prefix string) {
	q.join("providers_purchases", alias, fk+" = "+alias+".id")
	q.purchaseColumns(alias, prefix)
}

func (q *selection) saleColumns(alias, prefix string) {
	q.fields(alias, prefix, "id", "delivery_time", "paid", "debt", "comments", "status")
	q.client(alias+"_c", alias+".client", prefix+"client.")
	q.provider(alias+"_p", alias+".provider", prefix+"provider.")
	q.user(alias+"_d", alias+".driver", prefix+"driver.")
}

func (q *selection) sale(alias, fk, prefix string) {
	q.join("clients_sales", alias, fk+" = "+alias+".id")
	q.saleColumns(alias, prefix)
}

func (q *selection) shareColumns(alias, prefix string) {
	q.fields(alias, prefix, "id", "amount", "weight", "price_per_kilo", "status")
	q.user(alias+"_d", alias+".driver_id", prefix+"driver.")
	q.purchase(alias+"_pp", alias+".purchase_id", prefix+"purchase.")
}

func (q *selection) share(alias, fk, prefix string) {
	q.join("drivers_share", alias, fk+" = "+alias+".id")
	q.shareColumns(alias, prefix)
}

func (q *selection) from(table string, w *where, orderBy string) (string, []any) {
	var b strings.Builder
	b.WriteString("SELECT ")
	b.WriteString(strings.Join(q.cols, ", "))
	b.WriteString(" FROM ")
	b.WriteString(table)
	for _, j := range q.joins {
		b.WriteString(" ")
		b.WriteString(j)
	}
	b.WriteString(w.String())
	if orderBy != "" {
		b.WriteString(" ORDER BY ")
		b.WriteString(orderBy)
	}
	return b.String(), w.args
}

// where builds a conjunctive predicate from optional equality filters.
// Filters left nil add nothing.
type where struct {
	clauses []string
	args    []any
}

func (w *where) eq(column string, value any) *where {
	w.clauses = append(w.clauses, column+" = ?")
	w.args = append(w.args, value)
	return w
}

func (w *where) String() string {
	if len(w.clauses) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(w.clauses, " AND ")
}

func eqIf[T any](w *where, column string, value *T) {
	if value != nil {
		w.eq(column, *value)
	}
}

func byID(column string, id int64) *where {
	return new(where).eq(column, id)
}

// one runs a listing query expected to match a single record.
func one[T any](ctx context.Context, s *Store, what string, query string, args []any) (T, error) {
	var rows []T
	if err := s.db.SelectContext(ctx, &rows, s.db.Rebind(query), args...); err != nil {
		var zero T
		return zero, classify(err, what)
	}
	if len(rows) == 0 {
		var zero T
		return zero, notFound(what)
	}
	return rows[0], nil
}

func list[T any](ctx context.Context, s *Store, what string, query string, args []any) ([]T, error) {
	var rows []T
	if err := s.db.SelectContext(ctx, &rows, s.db.Rebind(query), args...); err != nil {
		return nil, classify(err, what)
	}
	return rows, nil
}
