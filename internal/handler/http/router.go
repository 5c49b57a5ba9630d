package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/meshram0823/UrbanCart/internal/service"
	"github.com/meshram0823/UrbanCart/pkg/health"
	"github.com/meshram0823/UrbanCart/pkg/middleware"
)

// NewRouter creates a chi router with all catalog routes registered. The
// paths match the storefront client verbatim, so they are not versioned.
func NewRouter(
	productService *service.ProductService,
	categoryService *service.CategoryService,
	favouritesService *service.FavouritesService,
	healthHandler *health.Handler,
	logger *slog.Logger,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Recovery(logger))
	r.Use(chimw.Compress(5))
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(middleware.CORS(middleware.DefaultCORSConfig()))
	r.Use(middleware.RequestLogging(logger))
	r.Use(middleware.PrometheusMetrics("catalog"))

	// Health check endpoints
	r.Get("/health/live", healthHandler.LivenessHandler())
	r.Get("/health/ready", healthHandler.ReadinessHandler())
	r.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
		promhttp.Handler().ServeHTTP(w, r)
	})

	productHandler := NewProductHandler(productService, logger)
	categoryHandler := NewCategoryHandler(categoryService, logger)
	favouritesHandler := NewFavouritesHandler(favouritesService, logger)

	r.Route("/products", func(r chi.Router) {
		r.Use(ContentTypeJSON)

		r.Get("/", productHandler.List)
		r.Post("/", productHandler.Create)

		// Fixed collection routes must be registered alongside /{id};
		// chi matches static segments before wildcards.
		r.Get("/all", productHandler.ListAll)
		r.Get("/top", productHandler.ListTop)
		r.Get("/new", productHandler.ListNew)
		r.Post("/filter", productHandler.Filter)

		r.Get("/{id}", productHandler.Get)
		r.Put("/{id}", productHandler.Update)
		r.Delete("/{id}", productHandler.Delete)

		r.Post("/{id}/reviews", productHandler.AddReview)
	})

	r.Route("/categories", func(r chi.Router) {
		r.Use(ContentTypeJSON)

		r.Get("/", categoryHandler.List)
		r.Post("/", categoryHandler.Create)
	})

	r.Route("/favourites", func(r chi.Router) {
		r.Use(ContentTypeJSON)
		r.Use(UserIDFromHeader)

		r.Get("/", favouritesHandler.Get)
		r.Post("/", favouritesHandler.Add)
		r.Put("/", favouritesHandler.Replace)
		r.Delete("/{productId}", favouritesHandler.Remove)
	})

	return r
}
