package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/txdash/transactions-dashboard/internal/bootstrap"
	"github.com/txdash/transactions-dashboard/internal/config"
	"github.com/txdash/transactions-dashboard/internal/handlers"
	"github.com/txdash/transactions-dashboard/internal/response"
	"github.com/txdash/transactions-dashboard/internal/router"
	"github.com/txdash/transactions-dashboard/internal/services"
	"github.com/txdash/transactions-dashboard/internal/store"
)

func exitOnError(message string, err error, log *slog.Logger) {
	if err != nil {
		log.Error(message, "error", err)
		os.Exit(1)
	}
}

func main() {
	// bootstrap
	_ = godotenv.Load()
	cfg := config.New()
	bs, err := bootstrap.Run(cfg)
	exitOnError("bootstrap failed", err, bs.Log)
	defer bs.Close()

	// stores
	tstore := store.NewTransactionStore(bs.Firestore)

	// services
	tserv := services.NewTransactionService(tstore)
	anserv := services.NewAnalyticsService(tstore)

	// response handler
	rh := response.New(bs.Log)

	// dependancies
	deps := new(handlers.Deps)
	deps.Log = bs.Log
	deps.ResponseHandler = rh
	deps.TransactionSvc = tserv
	deps.AnalyticsSvc = anserv

	// router
	r := router.NewRouter(deps)
	bs.Log.Info("query service listening", "port", cfg.Port)
	err = http.ListenAndServe(":"+cfg.Port, r)
	exitOnError("server start failed", err, bs.Log)
}
