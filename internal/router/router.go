package router

import (
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/txdash/transactions-dashboard/internal/handlers"
	"github.com/txdash/transactions-dashboard/internal/middleware"
)

func NewRouter(deps *handlers.Deps) chi.Router {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	lm := middleware.NewLoggerMiddleware(deps.Log)
	r.Use(lm.LoggerMiddleware)

	th := handlers.NewTransactionHandlers(deps)
	ah := handlers.NewAnalyticsHandlers(deps)

	r.Route("/api", func(r chi.Router) {
		r.Mount("/transactions", th.TransactionRoutes())
		r.Get("/statistics", ah.GetStatistics)
		r.Get("/bar-chart", ah.GetBarChart)
		r.Get("/pie-chart", ah.GetPieChart)
	})

	return r
}
