package handlers

import (
	"log/slog"

	"github.com/txdash/transactions-dashboard/internal/response"
)

type Deps struct {
	Log             *slog.Logger
	ResponseHandler response.ResponseHandler
	TransactionSvc  transactionService
	AnalyticsSvc    analyticsService
}
