package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/txdash/transactions-dashboard/internal/dto"
	"github.com/txdash/transactions-dashboard/internal/response"
	"github.com/txdash/transactions-dashboard/internal/services"
)

type transactionService interface {
	List(ctx context.Context, args dto.ListArgs) (dto.ListResult, error)
}

type transactionHandlers struct {
	ResponseHandler response.ResponseHandler
	TransactionSvc  transactionService
}

func NewTransactionHandlers(deps *Deps) *transactionHandlers {
	return &transactionHandlers{
		ResponseHandler: deps.ResponseHandler,
		TransactionSvc:  deps.TransactionSvc,
	}
}

func (h *transactionHandlers) TransactionRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ListTransactions)
	return r
}

// ListTransactions handles GET /api/transactions?search=&page=&perPage=.
// Missing or non-numeric page and perPage fall back to 1 and the default
// page size rather than failing.
func (h *transactionHandlers) ListTransactions(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	args := dto.ListArgs{
		Search:  q.Get("search"),
		Page:    intParam(q.Get("page"), 1),
		PerPage: intParam(q.Get("perPage"), services.DefaultPerPage),
	}

	result, err := h.TransactionSvc.List(r.Context(), args)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, result)
}

func intParam(raw string, fallback int) int {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}
