package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"strings"

	"tradebook/m/domain"
	"tradebook/m/internal/apperr"
)

// Entity names a collection whose records accept single-field updates.
type Entity string

const (
	EntityUsers        Entity = "users"
	EntityProviders    Entity = "providers"
	EntityClients      Entity = "clients"
	EntityProducts     Entity = "products"
	EntityPurchases    Entity = "purchases"
	EntitySales        Entity = "sales"
	EntityShares       Entity = "shares"
	EntityHistory      Entity = "history"
	EntityFutureSales  Entity = "future-sales"
	EntityClientPrices Entity = "client-prices"
)

type kind int

const (
	kindText kind = iota
	kindInt
	kindFloat
	kindBool
	kindTimestamp
	kindPassword
)

func (k kind) String() string {
	switch k {
	case kindInt:
		return "integer"
	case kindFloat:
		return "number"
	case kindBool:
		return "boolean"
	case kindTimestamp:
		return "timestamp"
	case kindPassword:
		return "password"
	}
	return "string"
}

type field struct {
	table  string
	column string
	key    string
	kind   kind
}

func cols(table, key string, k kind, names ...string) map[string]field {
	out := make(map[string]field, len(names))
	for _, n := range names {
		out[n] = field{table: table, column: n, key: key, kind: k}
	}
	return out
}

func merge(sets ...map[string]field) map[string]field {
	out := map[string]field{}
	for _, s := range sets {
		maps.Copy(out, s)
	}
	return out
}

// renamed maps public field names onto columns whose names differ.
func renamed(table, key string, k kind, pairs ...string) map[string]field {
	out := make(map[string]field, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out[pairs[i]] = field{table: table, column: pairs[i+1], key: key, kind: k}
	}
	return out
}

var updatable = map[Entity]map[string]field{
	EntityUsers: merge(
		cols("users", "id", kindText, "name", "contacts", "login"),
		cols("users", "id", kindPassword, "password"),
		cols("users_roles", "user_id", kindBool, "is_admin", "is_driver", "is_operator", "is_superuser"),
	),
	EntityProviders: cols("providers", "id", kindText, "name", "contacts", "comments"),
	EntityClients: merge(
		cols("clients", "id", kindText, "name", "entity", "address", "address_comments", "network", "payment", "comments"),
		cols("clients", "id", kindInt, "default_provider"),
		cols("clients", "id", kindFloat, "recoil"),
		cols("clients_work_hours", "client_id", kindText, "monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"),
	),
	EntityProducts: cols("products", "id", kindText, "product_name"),
	EntityPurchases: merge(
		cols("providers_purchases", "id", kindTimestamp, "delivery_time"),
		cols("providers_purchases", "id", kindInt, "provider", "amount"),
		cols("providers_purchases", "id", kindText, "product", "comments", "status"),
		cols("providers_purchases", "id", kindFloat, "weight", "price_per_kilo", "total_price", "paid", "debt"),
	),
	EntitySales: merge(
		cols("clients_sales", "id", kindTimestamp, "delivery_time"),
		cols("clients_sales", "id", kindInt, "client", "provider", "driver"),
		cols("clients_sales", "id", kindFloat, "paid", "debt"),
		cols("clients_sales", "id", kindText, "comments", "status"),
	),
	EntityShares: merge(
		renamed("drivers_share", "id", kindInt, "driver", "driver_id", "purchase", "purchase_id"),
		cols("drivers_share", "id", kindInt, "amount"),
		cols("drivers_share", "id", kindFloat, "weight", "price_per_kilo"),
		cols("drivers_share", "id", kindText, "status"),
	),
	EntityHistory: merge(
		renamed("history", "id", kindInt, "sale", "sale_id", "share", "share_id"),
		cols("history", "id", kindInt, "amount"),
		cols("history", "id", kindFloat, "weight", "price_per_kilo", "total_price"),
	),
	EntityFutureSales: merge(
		cols("clients_future_sales", "id", kindInt, "client", "amount"),
		cols("clients_future_sales", "id", kindText, "product", "status", "comments"),
		cols("clients_future_sales", "id", kindTimestamp, "order_time", "delivery_time"),
	),
	EntityClientPrices: merge(
		cols("clients_prices", "id", kindText, "product_name"),
		renamed("clients_prices", "id", kindInt, "client", "client_id"),
		cols("clients_prices", "id", kindFloat, "price"),
	),
}

// Fields returns the sorted names of the updatable fields of e.
func Fields(e Entity) []string {
	return slices.Sorted(maps.Keys(updatable[e]))
}

// UpdateField sets one allow-listed field of the record id to the JSON value
// raw. The value must match the field's type; passwords are hashed first.
func (s *Store) UpdateField(ctx context.Context, e Entity, id int64, name string, raw json.RawMessage) error {
	fields, ok := updatable[e]
	if !ok {
		return apperr.Validation("unknown collection %q", e)
	}
	f, ok := fields[name]
	if !ok {
		return apperr.Validation("field %q cannot be updated, allowed: %s", name, strings.Join(Fields(e), ", "))
	}
	value, err := s.coerce(f.kind, raw)
	if err != nil {
		return apperr.Wrap(apperr.KindValidation, err, fmt.Sprintf("invalid value for %s, expected %s", name, f.kind))
	}

	query := fmt.Sprintf(`UPDATE %s SET %s = ? WHERE %s = ?`, f.table, f.column, f.key)
	res, err := s.db.ExecContext(ctx, s.db.Rebind(query), value, id)
	if err != nil {
		return classify(err, string(e)+" "+name)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return classify(err, string(e))
	}
	if n == 0 {
		return notFound(singular(e))
	}
	return nil
}

func (s *Store) coerce(k kind, raw json.RawMessage) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}

	switch k {
	case kindInt:
		n, ok := v.(json.Number)
		if !ok {
			return nil, fmt.Errorf("got %s", describe(v))
		}
		return n.Int64()
	case kindFloat:
		n, ok := v.(json.Number)
		if !ok {
			return nil, fmt.Errorf("got %s", describe(v))
		}
		return n.Float64()
	case kindBool:
		b, ok := v.(bool)
		if !ok {
			return nil, fmt.Errorf("got %s", describe(v))
		}
		return b, nil
	}

	str, ok := v.(string)
	if !ok {
		return nil, fmt.Errorf("got %s", describe(v))
	}
	switch k {
	case kindTimestamp:
		return domain.ParseTimestamp(str)
	case kindPassword:
		if str == "" {
			return nil, fmt.Errorf("password must not be empty")
		}
		return s.hash(str)
	}
	return str, nil
}

func describe(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case json.Number:
		return "number"
	case bool:
		return "boolean"
	case string:
		return "string"
	case []any:
		return "array"
	}
	return "object"
}

func singular(e Entity) string {
	switch e {
	case EntityHistory:
		return "history record"
	case EntityFutureSales:
		return "future sale"
	case EntityClientPrices:
		return "client price"
	}
	return strings.TrimSuffix(string(e), "s")
}
