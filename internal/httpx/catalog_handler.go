package httpx

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mia-boutique/storefront/internal/catalog"
)

func (h *Handler) listStores(w http.ResponseWriter, r *http.Request) {
	ss, err := h.Catalog.Stores(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ss)
}

func (h *Handler) createStore(w http.ResponseWriter, r *http.Request) {
	var in catalog.Store
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeBadBody(w)
		return
	}
	if err := catalog.ValidateStore(in); err != nil {
		h.writeError(w, err)
		return
	}
	s, err := h.Catalog.CreateStore(r.Context(), in)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, s)
}

func (h *Handler) updateStore(w http.ResponseWriter, r *http.Request) {
	var in catalog.Store
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeBadBody(w)
		return
	}
	if err := catalog.ValidateStore(in); err != nil {
		h.writeError(w, err)
		return
	}
	s, err := h.Catalog.UpdateStore(r.Context(), chi.URLParam(r, "id"), in)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, s)
}

func (h *Handler) deleteStore(w http.ResponseWriter, r *http.Request) {
	if err := h.Catalog.DeleteStore(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}

func (h *Handler) listCategories(w http.ResponseWriter, r *http.Request) {
	cs, err := h.Catalog.Categories(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cs)
}

func (h *Handler) createCategory(w http.ResponseWriter, r *http.Request) {
	var in catalog.Category
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeBadBody(w)
		return
	}
	if err := catalog.ValidateCategory(in); err != nil {
		h.writeError(w, err)
		return
	}
	c, err := h.Catalog.CreateCategory(r.Context(), in)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, c)
}

func (h *Handler) updateCategory(w http.ResponseWriter, r *http.Request) {
	var in catalog.Category
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeBadBody(w)
		return
	}
	if err := catalog.ValidateCategory(in); err != nil {
		h.writeError(w, err)
		return
	}
	c, err := h.Catalog.UpdateCategory(r.Context(), chi.URLParam(r, "id"), in)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (h *Handler) deleteCategory(w http.ResponseWriter, r *http.Request) {
	if err := h.Catalog.DeleteCategory(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}
