package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/txdash/transactions-dashboard/internal/dto"
	"github.com/txdash/transactions-dashboard/internal/models"
	"github.com/txdash/transactions-dashboard/internal/services"
)

// --- Stubs ---

type stubTransactionService struct {
	result   dto.ListResult
	err      error
	lastArgs dto.ListArgs
}

func (s *stubTransactionService) List(_ context.Context, args dto.ListArgs) (dto.ListResult, error) {
	s.lastArgs = args
	return s.result, s.err
}

type stubResponseHandler struct {
	writeSuccessCalled  bool
	writeSuccessStatus  int
	writeSuccessPayload any

	handleErrorCalled bool
	handleErrorErr    error
}

func (s *stubResponseHandler) WriteSuccess(w http.ResponseWriter, r *http.Request, status int, payload any) {
	s.writeSuccessCalled = true
	s.writeSuccessStatus = status
	s.writeSuccessPayload = payload

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
}

func (s *stubResponseHandler) WriteError(w http.ResponseWriter, r *http.Request, status int, message string) {
	w.WriteHeader(status)
}

func (s *stubResponseHandler) HandleError(w http.ResponseWriter, r *http.Request, err error) {
	s.handleErrorCalled = true
	s.handleErrorErr = err
	w.WriteHeader(http.StatusInternalServerError)
}

// --- Tests ---

func TestListTransactions_OK(t *testing.T) {
	svc := &stubTransactionService{
		result: dto.ListResult{
			Data: []models.Transaction{{TransactionID: "t1", Title: "Lamp"}},
			Metadata: dto.PageMetadata{
				CurrentPage: 2, PerPage: 5, TotalRecords: 11, TotalPages: 3,
			},
		},
	}
	resp := &stubResponseHandler{}
	h := NewTransactionHandlers(&Deps{ResponseHandler: resp, TransactionSvc: svc})

	req := httptest.NewRequest(http.MethodGet, "/api/transactions?search=lamp&page=2&perPage=5", nil)
	rr := httptest.NewRecorder()
	h.ListTransactions(rr, req)

	if !resp.writeSuccessCalled || resp.writeSuccessStatus != http.StatusOK {
		t.Fatalf("expected WriteSuccess with 200, got called=%v status=%d", resp.writeSuccessCalled, resp.writeSuccessStatus)
	}
	if svc.lastArgs.Search != "lamp" || svc.lastArgs.Page != 2 || svc.lastArgs.PerPage != 5 {
		t.Fatalf("args mismatch: %+v", svc.lastArgs)
	}
}

func TestListTransactions_DefaultsApplied(t *testing.T) {
	svc := &stubTransactionService{}
	resp := &stubResponseHandler{}
	h := NewTransactionHandlers(&Deps{ResponseHandler: resp, TransactionSvc: svc})

	req := httptest.NewRequest(http.MethodGet, "/api/transactions", nil)
	rr := httptest.NewRecorder()
	h.ListTransactions(rr, req)

	if svc.lastArgs.Page != 1 || svc.lastArgs.PerPage != services.DefaultPerPage {
		t.Fatalf("expected default paging, got %+v", svc.lastArgs)
	}
	if svc.lastArgs.Search != "" {
		t.Fatalf("expected empty search, got %q", svc.lastArgs.Search)
	}
}

func TestListTransactions_NonNumericPageFallsBack(t *testing.T) {
	svc := &stubTransactionService{}
	resp := &stubResponseHandler{}
	h := NewTransactionHandlers(&Deps{ResponseHandler: resp, TransactionSvc: svc})

	req := httptest.NewRequest(http.MethodGet, "/api/transactions?page=abc&perPage=xyz", nil)
	rr := httptest.NewRecorder()
	h.ListTransactions(rr, req)

	if svc.lastArgs.Page != 1 || svc.lastArgs.PerPage != services.DefaultPerPage {
		t.Fatalf("expected fallback paging, got %+v", svc.lastArgs)
	}
}

func TestListTransactions_ServiceError(t *testing.T) {
	svc := &stubTransactionService{err: errors.New("store down")}
	resp := &stubResponseHandler{}
	h := NewTransactionHandlers(&Deps{ResponseHandler: resp, TransactionSvc: svc})

	req := httptest.NewRequest(http.MethodGet, "/api/transactions", nil)
	rr := httptest.NewRecorder()
	h.ListTransactions(rr, req)

	if !resp.handleErrorCalled {
		t.Fatal("expected HandleError to be called")
	}
}
