package api

import (
	"net/http"
	"time"

	"networth/src/api/controllers"
	handlers "networth/src/api/handlers"
	"networth/src/clients/yahoo"
	"networth/src/config"
	"networth/src/database"
	"networth/src/repositories"
	"networth/src/services"
	"networth/src/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/sirupsen/logrus"
)

type Server struct {
	Router  *chi.Mux
	Handler *handlers.Handler
	Refresh *services.RefreshService
	logger  *logrus.Logger
}

// NewServer wires the whole service: one DB pool, one quote client and one
// pricing service (owning the process-wide quote cache), shared by every
// controller.
func NewServer(cfg *config.Config, logger *logrus.Logger) (*Server, error) {
	db, err := database.SetupDB(cfg)
	if err != nil {
		return nil, err
	}

	holdingRepo := repositories.NewHoldingRepository(db)
	logRepo := repositories.NewActivityLogRepository(db)
	snapshotRepo := repositories.NewSnapshotRepository(db)
	incomeRepo := repositories.NewIncomeRepository(db)
	subscriptionRepo := repositories.NewSubscriptionRepository(db)
	conversionRepo := repositories.NewConversionRepository(db)

	yahooClient := yahoo.NewClient(cfg)
	pricing := services.NewPricingService(yahooClient)
	refresh := services.NewRefreshService(holdingRepo, pricing)

	handler := &handlers.Handler{
		Assets:        controllers.NewAssetsController(holdingRepo, logRepo, pricing),
		Prices:        controllers.NewPricesController(pricing, refresh, yahooClient),
		Logs:          controllers.NewLogsController(logRepo),
		Snapshots:     controllers.NewSnapshotsController(snapshotRepo),
		Incomes:       controllers.NewIncomesController(incomeRepo),
		Subscriptions: controllers.NewSubscriptionsController(subscriptionRepo),
		Conversions:   controllers.NewConversionsController(conversionRepo),
	}

	server := &Server{
		Router:  chi.NewRouter(),
		Handler: handler,
		Refresh: refresh,
		logger:  logger,
	}
	server.InitRoutes()
	return server, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}

// loggerMiddleware threads the service logger through the request context.
func (s *Server) loggerMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r.WithContext(utils.WithLogger(r.Context(), s.logger)))
	})
}

func (s *Server) InitRoutes() {
	// The React UI runs on another origin
	s.Router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))
	s.Router.Use(s.loggerMiddleware)

	s.Router.Get("/alive", handlers.Healthcheck)

	s.Router.Route("/api/assets/{portfolio}", func(r chi.Router) {
		r.Get("/", s.Handler.GetHoldings)
		r.Post("/", s.Handler.CreateHolding)
		r.Put("/", s.Handler.UpdateHolding)
		r.Delete("/", s.Handler.DeleteHolding)
	})

	s.Router.Route("/api/prices", func(r chi.Router) {
		r.Get("/", s.Handler.GetPrices)
		r.Post("/refresh", s.Handler.RefreshPrices)
	})

	s.Router.Get("/api/tickers/search", s.Handler.SearchTickers)

	s.Router.Get("/api/logs", s.Handler.GetLogs)
	s.Router.Route("/api/activity-logs", func(r chi.Router) {
		r.Get("/", s.Handler.GetActivityLogs)
		r.Get("/paginated", s.Handler.GetPaginatedLogs)
	})

	s.Router.Route("/api/snapshots", func(r chi.Router) {
		r.Get("/", s.Handler.GetSnapshots)
		r.Post("/", s.Handler.UpsertSnapshot)
		r.Delete("/", s.Handler.DeleteSnapshot)
	})

	s.Router.Route("/api/income", func(r chi.Router) {
		r.Get("/", s.Handler.GetIncomes)
		r.Post("/", s.Handler.CreateIncome)
		r.Put("/", s.Handler.UpdateIncome)
		r.Delete("/", s.Handler.DeleteIncome)
	})

	s.Router.Route("/api/subscriptions", func(r chi.Router) {
		r.Get("/", s.Handler.GetSubscriptions)
		r.Post("/", s.Handler.CreateSubscription)
		r.Put("/", s.Handler.UpdateSubscription)
		r.Delete("/", s.Handler.DeleteSubscription)
	})

	s.Router.Route("/api/conversions", func(r chi.Router) {
		r.Get("/", s.Handler.GetConversions)
		r.Post("/", s.Handler.CreateConversion)
		r.Put("/", s.Handler.UpdateConversion)
		r.Delete("/", s.Handler.DeleteConversion)
	})
}

func NewHTTPServer(server *Server, port string) *http.Server {
	httpServer := &http.Server{
		Addr:         ":" + port,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		Handler:      server,
	}
	return httpServer
}
