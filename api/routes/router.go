package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/motoshophq/motoshop-backend/api/controllers"
	"github.com/motoshophq/motoshop-backend/api/middleware"
	"github.com/motoshophq/motoshop-backend/internal/auth"
	"github.com/motoshophq/motoshop-backend/internal/catalog"
	"github.com/motoshophq/motoshop-backend/internal/customers"
	"github.com/motoshophq/motoshop-backend/internal/orders"
	"github.com/motoshophq/motoshop-backend/internal/quotes"
	"github.com/motoshophq/motoshop-backend/internal/reports"
	"github.com/motoshophq/motoshop-backend/pkg/auth/session"
	"github.com/motoshophq/motoshop-backend/pkg/config"
	"github.com/motoshophq/motoshop-backend/pkg/db"
	"github.com/motoshophq/motoshop-backend/pkg/logger"
	"github.com/motoshophq/motoshop-backend/pkg/metrics"
	"github.com/motoshophq/motoshop-backend/pkg/redis"
)

// Services bundles the domain services the router exposes.
type Services struct {
	Auth      auth.Service
	Register  auth.RegisterService
	Customers customers.Service
	Catalog   catalog.Service
	Quotes    quotes.Service
	Orders    orders.Service
	Reports   reports.Service
}

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	redisClient *redis.Client,
	sessionChecker session.AccessSessionChecker,
	httpMetrics *metrics.HTTPMetrics,
	metricsHandler http.Handler,
	svcs Services,
) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(cfg.CORS),
	)
	if httpMetrics != nil {
		r.Use(httpMetrics.Middleware)
	}

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, dbP, redisClient))
	})

	if metricsHandler == nil {
		metricsHandler = promhttp.Handler()
	}
	r.Method(http.MethodGet, "/metrics", metricsHandler)

	r.Route("/api/v1/auth", func(r chi.Router) {
		r.Post("/register", controllers.AuthRegister(svcs.Register, svcs.Auth, logg))
		r.Post("/login", controllers.AuthLogin(svcs.Auth, logg))
		r.Post("/refresh", controllers.AuthRefresh(svcs.Auth, logg))
		r.With(middleware.Auth(cfg.JWT, sessionChecker, logg)).Post("/logout", controllers.AuthLogout(svcs.Auth, logg))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, sessionChecker, logg))

		r.Route("/customers", func(r chi.Router) {
			r.Post("/", controllers.CustomerCreate(svcs.Customers, logg))
			r.Get("/", controllers.CustomerList(svcs.Customers, logg))
			r.Get("/{customerId}", controllers.CustomerDetail(svcs.Customers, logg))
			r.Patch("/{customerId}", controllers.CustomerUpdate(svcs.Customers, logg))
			r.Delete("/{customerId}", controllers.CustomerDelete(svcs.Customers, logg))
		})

		r.Route("/products", func(r chi.Router) {
			r.Post("/", controllers.ProductCreate(svcs.Catalog, logg))
			r.Get("/", controllers.ProductList(svcs.Catalog, logg))
			r.Get("/{productId}", controllers.ProductDetail(svcs.Catalog, logg))
			r.Patch("/{productId}", controllers.ProductUpdate(svcs.Catalog, logg))
			r.Delete("/{productId}", controllers.ProductDelete(svcs.Catalog, logg))
		})

		r.Route("/services", func(r chi.Router) {
			r.Post("/", controllers.ServiceCreate(svcs.Catalog, logg))
			r.Get("/", controllers.ServiceList(svcs.Catalog, logg))
			r.Get("/{serviceId}", controllers.ServiceDetail(svcs.Catalog, logg))
			r.Patch("/{serviceId}", controllers.ServiceUpdate(svcs.Catalog, logg))
			r.Delete("/{serviceId}", controllers.ServiceDelete(svcs.Catalog, logg))
		})

		r.Get("/catalog/templates", controllers.CatalogTemplates(svcs.Catalog, logg))

		r.Route("/quotes", func(r chi.Router) {
			r.Post("/", controllers.QuoteCreate(svcs.Quotes, logg))
			r.Get("/", controllers.QuoteList(svcs.Quotes, logg))
			r.Get("/{quoteId}", controllers.QuoteDetail(svcs.Quotes, logg))
			r.Delete("/{quoteId}", controllers.QuoteDelete(svcs.Quotes, logg))
			r.Get("/{quoteId}/pdf", controllers.QuotePDF(svcs.Quotes, logg))
			r.Post("/{quoteId}/convert", controllers.QuoteConvert(svcs.Orders, logg))
		})

		r.Route("/orders", func(r chi.Router) {
			r.Get("/", controllers.OrderList(svcs.Orders, logg))
			r.Get("/{orderId}", controllers.OrderDetail(svcs.Orders, logg))
		})

		r.Route("/reports", func(r chi.Router) {
			r.Get("/revenue", controllers.ReportRevenue(svcs.Reports, logg))
			r.Get("/summary", controllers.ReportSummary(svcs.Reports, logg))
		})
	})

	return r
}
