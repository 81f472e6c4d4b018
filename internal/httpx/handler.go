package httpx

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/mia-boutique/storefront/internal/auth"
	"github.com/mia-boutique/storefront/internal/catalog"
	"github.com/mia-boutique/storefront/internal/orders"
)

// EventPublisher is satisfied by the kafka producer; tests plug in a fake.
type EventPublisher interface {
	Publish(topic string, key, value []byte, headers ...kafkago.Header)
}

// Handler carries the dependencies shared by every route.
type Handler struct {
	Catalog  *catalog.Repo
	Orders   *orders.Repo
	Redis    *redis.Client // optional, best-effort
	Producer EventPublisher
	Secret   []byte
	Password string
	Service  string
	Log      *zap.Logger
}

func (h *Handler) Register(r *chi.Mux) {
	r.Route("/api", func(r chi.Router) {
		// public storefront surface
		r.Get("/products", h.listProducts)
		r.Get("/products/{id}", h.getProduct)
		r.Get("/categories", h.listCategories)
		r.Get("/stores", h.listStores)
		r.Post("/orders", h.createOrder)
		r.Get("/orders/{id}/status", h.getOrderStatus)
		r.Post("/admin/login", h.login)
		r.Post("/admin/logout", h.logout)

		// admin panel surface
		r.Group(func(r chi.Router) {
			r.Use(h.requireAdmin)
			r.Get("/admin/me", h.me)

			r.Post("/products", h.createProduct)
			r.Patch("/products/{id}", h.updateProduct)
			r.Delete("/products/{id}", h.deleteProduct)

			r.Post("/stores", h.createStore)
			r.Patch("/stores/{id}", h.updateStore)
			r.Delete("/stores/{id}", h.deleteStore)

			r.Post("/categories", h.createCategory)
			r.Patch("/categories/{id}", h.updateCategory)
			r.Delete("/categories/{id}", h.deleteCategory)

			r.Get("/orders", h.listOrders)
			r.Get("/orders/{id}", h.getOrder)
			r.Patch("/orders/{id}/status", h.updateOrderStatus)
			r.Delete("/orders/{id}", h.deleteOrder)
		})
	})
}

// requireAdmin rejects requests without a valid signed session cookie.
func (h *Handler) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !h.isAdmin(r) {
			writeUnauthorized(w)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (h *Handler) isAdmin(r *http.Request) bool {
	c, err := r.Cookie(auth.CookieName)
	if err != nil {
		return false
	}
	return auth.VerifyToken(h.Secret, c.Value)
}
