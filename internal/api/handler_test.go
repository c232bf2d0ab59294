package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"tradebook/m/internal/auth"
	"tradebook/m/internal/migrations"
	"tradebook/m/internal/seed"
	"tradebook/m/internal/store"
)

type testServer struct {
	t      *testing.T
	db     *sqlx.DB
	store  *store.Store
	router http.Handler
}

func newTestServer(t *testing.T, opts Options) *testServer {
	t.Helper()
	db, err := sqlx.Connect("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, migrations.Run(db))

	st := store.New(db, auth.HashPassword)
	h := New(st, auth.NewIssuer("test-secret", time.Hour), zap.NewNop(), opts)
	return &testServer{t: t, db: db, store: st, router: h.Router()}
}

func (s *testServer) do(method, path string, body any, header ...string) (int, map[string]any) {
	s.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if raw, ok := body.(string); ok {
			buf.WriteString(raw)
		} else {
			require.NoError(s.t, json.NewEncoder(&buf).Encode(body))
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	var out map[string]any
	if rec.Body.Len() > 0 {
		require.NoError(s.t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	}
	return rec.Code, out
}

func obj(t *testing.T, v any, keys ...string) map[string]any {
	t.Helper()
	for _, k := range keys {
		m, ok := v.(map[string]any)
		require.True(t, ok, "expected object at %q, got %T", k, v)
		v = m[k]
	}
	m, ok := v.(map[string]any)
	require.True(t, ok, "expected object, got %T", v)
	return m
}

func (s *testServer) seedBasics() {
	s.t.Helper()
	code, _ := s.do(http.MethodPost, "/providers", map[string]any{"name": "Acme", "contacts": "555-0100"})
	require.Equal(s.t, http.StatusCreated, code)
	code, _ = s.do(http.MethodPost, "/users", map[string]any{
		"name": "Dan", "login": "dan", "password": "pw", "is_driver": true,
	})
	require.Equal(s.t, http.StatusCreated, code)
}

func TestPurchaseShareWarehouseScenario(t *testing.T) {
	s := newTestServer(t, Options{})
	s.seedBasics()

	code, body := s.do(http.MethodPost, "/purchases", map[string]any{
		"delivery_time": "2024-03-01 08:00:00", "provider_id": 1, "product": "Gouda",
		"amount": 10, "weight": 10.0, "price_per_kilo": 2.5, "status": "received",
	})
	require.Equal(t, http.StatusCreated, code, body)
	purchase := obj(t, body, "new_purchase")
	assert.Equal(t, 25.0, purchase["total_price"])
	assert.Equal(t, 0.0, purchase["paid"])
	assert.Equal(t, 25.0, purchase["debt"])
	assert.Equal(t, "Acme", obj(t, purchase, "provider")["name"])

	code, body = s.do(http.MethodPost, "/shares", map[string]any{
		"driver_id": 1, "purchase_id": 1, "amount": 4, "weight": 4.0, "price_per_kilo": 2.5, "status": "loaded",
	})
	require.Equal(t, http.StatusCreated, code, body)

	code, body = s.do(http.MethodGet, "/warehouse", nil)
	require.Equal(t, http.StatusOK, code)
	item := obj(t, body, "warehouse", "1")
	assert.Equal(t, 6.0, item["weight"])
	assert.Equal(t, 6.0, item["amount"])
	assert.Equal(t, "Gouda", item["product"])
}

func TestListingIsKeyedAndFiltered(t *testing.T) {
	s := newTestServer(t, Options{})
	s.seedBasics()

	for _, status := range []string{"delivered", "ordered", "delivered"} {
		code, body := s.do(http.MethodPost, "/purchases", map[string]any{
			"delivery_time": "2024-03-01", "provider_id": 1, "product": "Brie", "status": status,
		})
		require.Equal(t, http.StatusCreated, code, body)
	}

	code, body := s.do(http.MethodGet, "/purchases?status=delivered", nil)
	require.Equal(t, http.StatusOK, code)
	delivered := obj(t, body, "purchases")
	assert.Len(t, delivered, 2)
	assert.Contains(t, delivered, "1")
	assert.Contains(t, delivered, "3")

	code, body = s.do(http.MethodGet, "/purchases", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, obj(t, body, "purchases"), 3)

	code, body = s.do(http.MethodGet, "/purchases?provider_id=abc", nil)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "INVALID_INPUT", body["code"])
	assert.NotEmpty(t, body["request_id"])

	code, body = s.do(http.MethodGet, "/providers/names", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, map[string]any{"name": "Acme"}, obj(t, body, "providers", "1"))
}

func TestCheckCredentials(t *testing.T) {
	s := newTestServer(t, Options{})
	s.seedBasics()

	code, body := s.do(http.MethodPost, "/auth/check", map[string]any{"login": "dan", "password": "pw", "role": "admin"})
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, false, body["is_correct_user"])
	assert.NotContains(t, body, "token")
	assert.NotContains(t, obj(t, body, "user"), "password")

	code, body = s.do(http.MethodPost, "/auth/check", map[string]any{"login": "dan", "password": "pw", "role": "driver"})
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, body["is_correct_user"])
	assert.NotEmpty(t, body["token"])

	code, body = s.do(http.MethodPost, "/auth/check", map[string]any{"login": "dan", "password": "bad", "role": "driver"})
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, false, body["is_correct_user"])

	code, _ = s.do(http.MethodPost, "/auth/check", map[string]any{"login": "dan", "password": "pw", "role": "pilot"})
	assert.Equal(t, http.StatusBadRequest, code)

	code, body = s.do(http.MethodPost, "/auth/check", map[string]any{"login": "ghost", "password": "pw", "role": "driver"})
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "user with this login doesn't exist", body["error"])
}

func TestUpdateFieldRoute(t *testing.T) {
	s := newTestServer(t, Options{})
	s.seedBasics()

	code, body := s.do(http.MethodPut, "/providers/1/comments", map[string]any{"value": "pays late"})
	require.Equal(t, http.StatusOK, code, body)
	assert.Equal(t, "pays late", obj(t, body, "updated_provider", "1")["comments"])

	code, body = s.do(http.MethodPut, "/providers/1/id", map[string]any{"value": 9})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "INVALID_INPUT", body["code"])

	code, _ = s.do(http.MethodPut, "/providers/1/name", map[string]any{"value": 9})
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = s.do(http.MethodPut, "/providers/1/name", `{}`)
	assert.Equal(t, http.StatusBadRequest, code)

	code, body = s.do(http.MethodPut, "/providers/42/name", map[string]any{"value": "x"})
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "NOT_FOUND", body["code"])

	code, _ = s.do(http.MethodPut, "/users/1/password", map[string]any{"value": "changed"})
	require.Equal(t, http.StatusOK, code)
	code, body = s.do(http.MethodPost, "/auth/check", map[string]any{"login": "dan", "password": "changed", "role": "driver"})
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, body["is_correct_user"])
}

func TestCreateValidation(t *testing.T) {
	s := newTestServer(t, Options{})

	code, body := s.do(http.MethodPost, "/purchases", map[string]any{"provider_id": 1, "product": "Gouda", "status": "new"})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Contains(t, body["error"], "delivery_time")

	code, _ = s.do(http.MethodPost, "/providers", `{"name": "A", "contacts": "b", "color": "red"}`)
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = s.do(http.MethodPost, "/providers", nil)
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = s.do(http.MethodPost, "/products", map[string]any{"product_name": "Gouda"})
	require.Equal(t, http.StatusCreated, code)
	code, body = s.do(http.MethodPost, "/products", map[string]any{"product_name": "Gouda"})
	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, "CONFLICT", body["code"])
}

// token runs the credential check and returns the issued bearer header value.
func (s *testServer) token(login, password, role string) string {
	s.t.Helper()
	code, body := s.do(http.MethodPost, "/auth/check", map[string]any{"login": login, "password": password, "role": role})
	require.Equal(s.t, http.StatusOK, code, body)
	token, _ := body["token"].(string)
	require.NotEmpty(s.t, token, body)
	return "Bearer " + token
}

func TestRequireAuthFreshInstall(t *testing.T) {
	s := newTestServer(t, Options{RequireAuth: true})

	code, body := s.do(http.MethodPost, "/users", map[string]any{"name": "Root", "login": "root", "password": "pw", "is_admin": true})
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, "UNAUTHORIZED", body["code"])

	created, err := seed.Admin(context.Background(), s.store, "root", "s3cret", zap.NewNop())
	require.NoError(t, err)
	require.True(t, created)

	admin := s.token("root", "s3cret", "admin")
	code, body = s.do(http.MethodPost, "/users", map[string]any{"name": "Op", "login": "op", "password": "pw", "is_operator": true},
		"Authorization", admin)
	require.Equal(t, http.StatusCreated, code, body)

	code, body = s.do(http.MethodGet, "/users", nil, "Authorization", admin)
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, obj(t, body, "users"), 2)
}

func TestRequireAuth(t *testing.T) {
	s := newTestServer(t, Options{RequireAuth: true})
	_, err := seed.Admin(context.Background(), s.store, "root", "s3cret", zap.NewNop())
	require.NoError(t, err)
	admin := s.token("root", "s3cret", "superuser")
	code, _ := s.do(http.MethodPost, "/users", map[string]any{"name": "Op", "login": "op", "password": "pw", "is_operator": true},
		"Authorization", admin)
	require.Equal(t, http.StatusCreated, code)

	code, body := s.do(http.MethodGet, "/providers", nil)
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, "UNAUTHORIZED", body["code"])

	operator := s.token("op", "pw", "operator")
	code, _ = s.do(http.MethodGet, "/providers", nil, "Authorization", operator)
	assert.Equal(t, http.StatusOK, code)

	code, body = s.do(http.MethodPost, "/users", map[string]any{"name": "X", "login": "x", "password": "pw"},
		"Authorization", operator)
	assert.Equal(t, http.StatusForbidden, code)
	assert.Equal(t, "FORBIDDEN", body["code"])

	code, _ = s.do(http.MethodGet, "/providers", nil, "Authorization", "Bearer nope")
	assert.Equal(t, http.StatusUnauthorized, code)
}

func TestDemotedAdminLosesAccessImmediately(t *testing.T) {
	s := newTestServer(t, Options{RequireAuth: true})
	_, err := seed.Admin(context.Background(), s.store, "root", "s3cret", zap.NewNop())
	require.NoError(t, err)
	root := s.token("root", "s3cret", "admin")

	code, body := s.do(http.MethodPost, "/users", map[string]any{"name": "Ann", "login": "ann", "password": "pw", "is_admin": true},
		"Authorization", root)
	require.Equal(t, http.StatusCreated, code, body)
	ann := s.token("ann", "pw", "admin")

	code, _ = s.do(http.MethodPut, "/users/2/is_admin", map[string]any{"value": false}, "Authorization", root)
	require.Equal(t, http.StatusOK, code)

	code, body = s.do(http.MethodPost, "/users", map[string]any{"name": "Eve", "login": "eve", "password": "pw"},
		"Authorization", ann)
	assert.Equal(t, http.StatusForbidden, code)
	assert.Equal(t, "FORBIDDEN", body["code"])
}

func TestStoreUnavailable(t *testing.T) {
	s := newTestServer(t, Options{})
	require.NoError(t, s.db.Close())

	code, body := s.do(http.MethodGet, "/providers", nil)
	assert.Equal(t, http.StatusServiceUnavailable, code)
	assert.Equal(t, "STORE_UNAVAILABLE", body["code"])

	code, _ = s.do(http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusServiceUnavailable, code)
}

func TestUnknownRouteAndRequestID(t *testing.T) {
	s := newTestServer(t, Options{})

	code, body := s.do(http.MethodGet, "/planes", nil, "X-Request-ID", "abc-123")
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "abc-123", body["request_id"])

	code, body = s.do(http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "ok", body["status"])
}
