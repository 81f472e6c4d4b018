package httpx

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mia-boutique/storefront/internal/catalog"
)

func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	ps, err := h.Catalog.Products(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}

	q := r.URL.Query()
	includeInactive := q.Get("includeInactive") == "true" && h.isAdmin(r)
	out := make([]catalog.Product, 0, len(ps))
	for _, p := range ps {
		if !p.IsActive && !includeInactive {
			continue
		}
		if c := q.Get("category"); c != "" && p.Category != c {
			continue
		}
		if g := q.Get("gender"); g != "" && p.Gender != g {
			continue
		}
		if q.Get("isNew") == "true" && !p.IsNew {
			continue
		}
		if s := q.Get("store"); s != "" && !hasStore(p, s) {
			continue
		}
		out = append(out, p)
	}
	writeJSON(w, http.StatusOK, out)
}

func hasStore(p catalog.Product, storeID string) bool {
	for _, id := range p.Stores {
		if id == storeID {
			return true
		}
	}
	return false
}

func (h *Handler) getProduct(w http.ResponseWriter, r *http.Request) {
	p, err := h.Catalog.ProductByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *Handler) createProduct(w http.ResponseWriter, r *http.Request) {
	var in catalog.NewProduct
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeBadBody(w)
		return
	}
	if err := catalog.ValidateNewProduct(in); err != nil {
		h.writeError(w, err)
		return
	}
	p, err := h.Catalog.CreateProduct(r.Context(), in)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

func (h *Handler) updateProduct(w http.ResponseWriter, r *http.Request) {
	var patch catalog.ProductPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeBadBody(w)
		return
	}
	if err := catalog.ValidateProductPatch(patch); err != nil {
		h.writeError(w, err)
		return
	}
	p, err := h.Catalog.UpdateProduct(r.Context(), chi.URLParam(r, "id"), patch)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *Handler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	if err := h.Catalog.DeleteProduct(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}
