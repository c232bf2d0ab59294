package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"tradebook/m/internal/auth"
	"tradebook/m/internal/store"
)

// Options tune the HTTP surface.
type Options struct {
	AllowedOrigins []string
	RequireAuth    bool
}

// Handler bundles dependencies for HTTP handlers.
type Handler struct {
	store    *store.Store
	tokens   *auth.Issuer
	log      *zap.Logger
	validate *validator.Validate
	opts     Options
}

// New constructs a Handler.
func New(s *store.Store, tokens *auth.Issuer, log *zap.Logger, opts Options) *Handler {
	return &Handler{store: s, tokens: tokens, log: log, validate: newValidator(), opts: opts}
}

// Router wires up the HTTP API.
func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(h.accessLog)
	r.Use(h.recoverer)
	// An empty origin list leaves CORS disabled.
	if len(h.opts.AllowedOrigins) > 0 {
		r.Use(cors.New(cors.Options{
			AllowedOrigins:   h.opts.AllowedOrigins,
			AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions},
			AllowedHeaders:   []string{"Authorization", "Content-Type", "X-Request-ID"},
			ExposedHeaders:   []string{"X-Request-ID"},
			AllowCredentials: true,
		}).Handler)
	}

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		h.respondError(w, r, errNotFoundRoute)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		h.respondError(w, r, errMethodNotAllowed)
	})

	r.Get("/health", h.health)
	r.Post("/auth/check", h.checkCredentials)

	r.Group(func(pr chi.Router) {
		if h.opts.RequireAuth {
			pr.Use(h.authMiddleware)
		}

		pr.Route("/users", func(r chi.Router) {
			r.With(h.requireRole(adminRoles...)).Post("/", h.createUser)
			r.Get("/", h.listUsers)
			r.Get("/{id}", h.getUser)
			r.With(h.requireRole(adminRoles...)).Put("/{id}/{field}", updateField(h, store.EntityUsers, "user", h.store.User))
		})

		pr.Route("/providers", func(r chi.Router) {
			r.Post("/", create(h, "provider", h.store.CreateProvider))
			r.Get("/", h.listProviders)
			r.Get("/names", h.providerNames)
			r.Get("/{id}", get(h, "providers", h.store.Provider))
			r.Put("/{id}/{field}", updateField(h, store.EntityProviders, "provider", h.store.Provider))
		})

		pr.Route("/clients", func(r chi.Router) {
			r.Post("/", create(h, "client", h.store.CreateClient))
			r.Get("/", h.listClients)
			r.Get("/names", h.clientNames)
			r.Get("/{id}", get(h, "clients", h.store.Client))
			r.Put("/{id}/{field}", updateField(h, store.EntityClients, "client", h.store.Client))
		})

		pr.Route("/client-prices", func(r chi.Router) {
			r.Post("/", create(h, "client_price", h.store.CreateClientPrice))
			r.Get("/", h.listClientPrices)
			r.Get("/{id}", get(h, "client_prices", h.store.ClientPrice))
			r.Put("/{id}/{field}", updateField(h, store.EntityClientPrices, "client_price", h.store.ClientPrice))
		})

		pr.Route("/products", func(r chi.Router) {
			r.Post("/", create(h, "product", h.store.CreateProduct))
			r.Get("/", h.listProducts)
			r.Get("/{id}", get(h, "products", h.store.Product))
			r.Put("/{id}/{field}", updateField(h, store.EntityProducts, "product", h.store.Product))
		})

		pr.Route("/purchases", func(r chi.Router) {
			r.Post("/", create(h, "purchase", h.store.CreatePurchase))
			r.Get("/", h.listPurchases)
			r.Get("/{id}", get(h, "purchases", h.store.Purchase))
			r.Put("/{id}/{field}", updateField(h, store.EntityPurchases, "purchase", h.store.Purchase))
		})

		pr.Route("/sales", func(r chi.Router) {
			r.Post("/", create(h, "sale", h.store.CreateSale))
			r.Get("/", h.listSales)
			r.Get("/{id}", get(h, "sales", h.store.Sale))
			r.Put("/{id}/{field}", updateField(h, store.EntitySales, "sale", h.store.Sale))
		})

		pr.Route("/future-sales", func(r chi.Router) {
			r.Post("/", create(h, "future_sale", h.store.CreateFutureSale))
			r.Get("/", h.listFutureSales)
			r.Get("/{id}", get(h, "future_sales", h.store.FutureSale))
			r.Put("/{id}/{field}", updateField(h, store.EntityFutureSales, "future_sale", h.store.FutureSale))
		})

		pr.Route("/shares", func(r chi.Router) {
			r.Post("/", create(h, "share", h.store.CreateShare))
			r.Get("/", h.listShares)
			r.Get("/{id}", get(h, "shares", h.store.Share))
			r.Put("/{id}/{field}", updateField(h, store.EntityShares, "share", h.store.Share))
		})

		pr.Route("/history", func(r chi.Router) {
			r.Post("/", create(h, "story", h.store.CreateStory))
			r.Get("/", h.listHistory)
			r.Get("/{id}", get(h, "history", h.store.Story))
			r.Put("/{id}/{field}", updateField(h, store.EntityHistory, "story", h.store.Story))
		})

		pr.Get("/warehouse", h.warehouse)
	})

	return r
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Ping(r.Context()); err != nil {
		h.respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
