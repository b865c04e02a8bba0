package router

import (
	"net/http"
	"strings"

	"github.com/SandyBridge101/AudiophileEcommerce/internal/handler"
	"github.com/SandyBridge101/AudiophileEcommerce/internal/middleware"

	"github.com/rs/zerolog"
)

// New creates a new HTTP router with all routes and middleware configured.
func New(
	productHandler *handler.ProductHandler,
	orderHandler *handler.OrderHandler,
	cartHandler *handler.CartHandler,
	logger zerolog.Logger,
) http.Handler {
	mux := http.NewServeMux()

	// Health check endpoint
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	// Product handler function
	productRouteHandler := func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/products" || r.URL.Path == "/products/":
			productHandler.GetAll(w, r)
		case strings.HasPrefix(r.URL.Path, "/products/category/"):
			productHandler.GetByCategory(w, r)
		default:
			productHandler.GetBySlug(w, r)
		}
	}

	// Register product routes (both with and without trailing slash)
	mux.HandleFunc("/products", productRouteHandler)
	mux.HandleFunc("/products/", productRouteHandler)

	// Order handler function
	orderRouteHandler := func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost && (r.URL.Path == "/orders" || r.URL.Path == "/orders/") {
			orderHandler.Create(w, r)
			return
		}

		if strings.HasPrefix(r.URL.Path, "/orders/") && r.URL.Path != "/orders/" {
			orderHandler.GetByID(w, r)
			return
		}

		http.Error(w, "not found", http.StatusNotFound)
	}

	// Register order routes (both with and without trailing slash)
	mux.HandleFunc("/orders", orderRouteHandler)
	mux.HandleFunc("/orders/", orderRouteHandler)

	// Cart handler function
	cartRouteHandler := func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/cart" || r.URL.Path == "/cart/":
			cartHandler.Cart(w, r)
		case r.URL.Path == "/cart/items" || r.URL.Path == "/cart/items/":
			cartHandler.AddItem(w, r)
		case strings.HasPrefix(r.URL.Path, "/cart/items/"):
			cartHandler.Item(w, r)
		default:
			http.Error(w, "not found", http.StatusNotFound)
		}
	}

	// Register cart routes (both with and without trailing slash)
	mux.HandleFunc("/cart", cartRouteHandler)
	mux.HandleFunc("/cart/", cartRouteHandler)

	// Apply middleware in order: Recovery -> Logging -> CORS
	var h http.Handler = mux
	h = middleware.CORS(h)
	h = middleware.Logging(logger)(h)
	h = middleware.Recovery(logger)(h)

	return h
}
