package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/webshoplabs/product-form-api/api/controllers"
	"github.com/webshoplabs/product-form-api/api/middleware"
	"github.com/webshoplabs/product-form-api/internal/form"
	"github.com/webshoplabs/product-form-api/pkg/config"
	"github.com/webshoplabs/product-form-api/pkg/logger"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	formService form.Service,
	registry *prometheus.Registry,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(cfg.App.CORSOrigins),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg))
	})

	if registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	}

	r.Route("/products", func(r chi.Router) {
		r.Get("/new", controllers.RenderForm(formService, logg))
		r.Get("/{productId}/edit", controllers.RenderForm(formService, logg))
		r.Post("/save", controllers.SubmitForm(formService, logg))
		r.Post("/upload", controllers.UploadMedia(formService, cfg.Upload.MaxUploadBytes(), logg))
	})

	return r
}
