package api

import (
	"net/http"

	"tradebook/m/domain"
)

func (h *Handler) listProviders(w http.ResponseWriter, r *http.Request) {
	providers, err := h.store.Providers(r.Context())
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, collection("providers", providers))
}

func (h *Handler) providerNames(w http.ResponseWriter, r *http.Request) {
	names, err := h.store.ProviderNames(r.Context())
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, collection("providers", names))
}

func (h *Handler) listClients(w http.ResponseWriter, r *http.Request) {
	clients, err := h.store.Clients(r.Context())
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, collection("clients", clients))
}

func (h *Handler) clientNames(w http.ResponseWriter, r *http.Request) {
	names, err := h.store.ClientNames(r.Context())
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, collection("clients", names))
}

func (h *Handler) listClientPrices(w http.ResponseWriter, r *http.Request) {
	q := filters{r: r}
	f := domain.ClientPriceFilter{ClientID: q.int64("client_id"), ProductName: q.str("product_name")}
	if q.err != nil {
		h.respondError(w, r, q.err)
		return
	}
	prices, err := h.store.ClientPrices(r.Context(), f)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, collection("client_prices", prices))
}

func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.store.Products(r.Context())
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, collection("products", products))
}

func (h *Handler) listPurchases(w http.ResponseWriter, r *http.Request) {
	q := filters{r: r}
	f := domain.PurchaseFilter{ProviderID: q.int64("provider_id"), Product: q.str("product"), Status: q.str("status")}
	if q.err != nil {
		h.respondError(w, r, q.err)
		return
	}
	purchases, err := h.store.Purchases(r.Context(), f)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, collection("purchases", purchases))
}

func (h *Handler) listSales(w http.ResponseWriter, r *http.Request) {
	q := filters{r: r}
	f := domain.SaleFilter{DriverID: q.int64("driver_id"), ClientID: q.int64("client_id"), Status: q.str("status")}
	if q.err != nil {
		h.respondError(w, r, q.err)
		return
	}
	sales, err := h.store.Sales(r.Context(), f)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, collection("sales", sales))
}

func (h *Handler) listFutureSales(w http.ResponseWriter, r *http.Request) {
	q := filters{r: r}
	f := domain.FutureSaleFilter{ClientID: q.int64("client_id"), Status: q.str("status")}
	if q.err != nil {
		h.respondError(w, r, q.err)
		return
	}
	sales, err := h.store.FutureSales(r.Context(), f)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, collection("future_sales", sales))
}

func (h *Handler) listShares(w http.ResponseWriter, r *http.Request) {
	q := filters{r: r}
	f := domain.ShareFilter{DriverID: q.int64("driver_id"), PurchaseID: q.int64("purchase_id"), Status: q.str("status")}
	if q.err != nil {
		h.respondError(w, r, q.err)
		return
	}
	shares, err := h.store.Shares(r.Context(), f)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, collection("shares", shares))
}

func (h *Handler) listHistory(w http.ResponseWriter, r *http.Request) {
	q := filters{r: r}
	f := domain.StoryFilter{ClientID: q.int64("client_id"), DriverID: q.int64("driver_id"), ProviderID: q.int64("provider_id")}
	if q.err != nil {
		h.respondError(w, r, q.err)
		return
	}
	history, err := h.store.History(r.Context(), f)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, collection("history", history))
}

func (h *Handler) warehouse(w http.ResponseWriter, r *http.Request) {
	items, err := h.store.Warehouse(r.Context())
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, collection("warehouse", items))
}
