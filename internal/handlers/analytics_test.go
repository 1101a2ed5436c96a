package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/txdash/transactions-dashboard/internal/dto"
	"github.com/txdash/transactions-dashboard/internal/errs"
	"github.com/txdash/transactions-dashboard/internal/response"
	"github.com/txdash/transactions-dashboard/pkg/logger"
)

type stubAnalyticsService struct {
	stats      dto.Statistics
	statsErr   error
	buckets    []dto.PriceBucket
	bucketsErr error
	categories []dto.CategoryCount
	catErr     error

	lastYear  int
	lastMonth time.Month
}

func (s *stubAnalyticsService) MonthlyStatistics(_ context.Context, year int, month time.Month) (dto.Statistics, error) {
	s.lastYear = year
	s.lastMonth = month
	return s.stats, s.statsErr
}

func (s *stubAnalyticsService) PriceHistogram(_ context.Context, month time.Month) ([]dto.PriceBucket, error) {
	s.lastMonth = month
	return s.buckets, s.bucketsErr
}

func (s *stubAnalyticsService) CategoryBreakdown(_ context.Context, month time.Month) ([]dto.CategoryCount, error) {
	s.lastMonth = month
	return s.categories, s.catErr
}

func newAnalyticsHandlersForTest(svc *stubAnalyticsService, resp *stubResponseHandler) *analyticsHandlers {
	return NewAnalyticsHandlers(&Deps{ResponseHandler: resp, AnalyticsSvc: svc})
}

func TestGetStatistics_OK(t *testing.T) {
	svc := &stubAnalyticsService{stats: dto.Statistics{TotalSaleAmount: 40, TotalSoldItems: 1, TotalNotSoldItems: 1}}
	resp := &stubResponseHandler{}
	h := newAnalyticsHandlersForTest(svc, resp)

	req := httptest.NewRequest(http.MethodGet, "/api/statistics?year=2024&month=3", nil)
	rr := httptest.NewRecorder()
	h.GetStatistics(rr, req)

	if !resp.writeSuccessCalled || resp.writeSuccessStatus != http.StatusOK {
		t.Fatalf("expected WriteSuccess with 200, got called=%v status=%d", resp.writeSuccessCalled, resp.writeSuccessStatus)
	}
	if svc.lastYear != 2024 || svc.lastMonth != time.March {
		t.Fatalf("service args mismatch: year=%d month=%v", svc.lastYear, svc.lastMonth)
	}

	result, ok := resp.writeSuccessPayload.(dto.StatisticsResult)
	if !ok {
		t.Fatalf("unexpected payload type %T", resp.writeSuccessPayload)
	}
	// year and month echo the raw query values.
	if result.Year != "2024" || result.Month != "3" {
		t.Fatalf("echo mismatch: %+v", result)
	}
	if result.Statistics.TotalSaleAmount != 40 {
		t.Fatalf("statistics mismatch: %+v", result.Statistics)
	}
}

func TestGetStatistics_MissingParams(t *testing.T) {
	for _, target := range []string{
		"/api/statistics",
		"/api/statistics?year=2024",
		"/api/statistics?month=3",
	} {
		svc := &stubAnalyticsService{}
		resp := &stubResponseHandler{}
		h := newAnalyticsHandlersForTest(svc, resp)

		req := httptest.NewRequest(http.MethodGet, target, nil)
		rr := httptest.NewRecorder()
		h.GetStatistics(rr, req)

		if !resp.handleErrorCalled {
			t.Fatalf("%s: expected HandleError to be called", target)
		}
		var vErr *errs.ValidationError
		if !errors.As(resp.handleErrorErr, &vErr) {
			t.Fatalf("%s: expected ValidationError, got %T", target, resp.handleErrorErr)
		}
	}
}

func TestGetStatistics_OutOfRangeMonth(t *testing.T) {
	svc := &stubAnalyticsService{}
	resp := &stubResponseHandler{}
	h := newAnalyticsHandlersForTest(svc, resp)

	req := httptest.NewRequest(http.MethodGet, "/api/statistics?year=2024&month=13", nil)
	rr := httptest.NewRecorder()
	h.GetStatistics(rr, req)

	var vErr *errs.ValidationError
	if !errors.As(resp.handleErrorErr, &vErr) {
		t.Fatalf("expected ValidationError, got %T", resp.handleErrorErr)
	}
}

func TestGetBarChart_OK(t *testing.T) {
	svc := &stubAnalyticsService{buckets: []dto.PriceBucket{{Label: "0-100", Count: 2}}}
	resp := &stubResponseHandler{}
	h := newAnalyticsHandlersForTest(svc, resp)

	req := httptest.NewRequest(http.MethodGet, "/api/bar-chart?month=03", nil)
	rr := httptest.NewRecorder()
	h.GetBarChart(rr, req)

	if !resp.writeSuccessCalled {
		t.Fatal("expected WriteSuccess to be called")
	}
	if svc.lastMonth != time.March {
		t.Fatalf("month mismatch: %v", svc.lastMonth)
	}
	result, ok := resp.writeSuccessPayload.(dto.BarChartResult)
	if !ok {
		t.Fatalf("unexpected payload type %T", resp.writeSuccessPayload)
	}
	if result.Month != "03" || len(result.Data) != 1 {
		t.Fatalf("payload mismatch: %+v", result)
	}
}

func TestGetBarChart_MissingMonth(t *testing.T) {
	svc := &stubAnalyticsService{}
	resp := &stubResponseHandler{}
	h := newAnalyticsHandlersForTest(svc, resp)

	req := httptest.NewRequest(http.MethodGet, "/api/bar-chart", nil)
	rr := httptest.NewRecorder()
	h.GetBarChart(rr, req)

	var vErr *errs.ValidationError
	if !errors.As(resp.handleErrorErr, &vErr) {
		t.Fatalf("expected ValidationError, got %T", resp.handleErrorErr)
	}
}

func TestGetPieChart_OK(t *testing.T) {
	svc := &stubAnalyticsService{categories: []dto.CategoryCount{{Category: "Home", Count: 3}}}
	resp := &stubResponseHandler{}
	h := newAnalyticsHandlersForTest(svc, resp)

	req := httptest.NewRequest(http.MethodGet, "/api/pie-chart?month=12", nil)
	rr := httptest.NewRecorder()
	h.GetPieChart(rr, req)

	result, ok := resp.writeSuccessPayload.(dto.PieChartResult)
	if !ok {
		t.Fatalf("unexpected payload type %T", resp.writeSuccessPayload)
	}
	if result.Month != "12" || result.Data[0].Category != "Home" {
		t.Fatalf("payload mismatch: %+v", result)
	}
}

func TestGetPieChart_ServiceError(t *testing.T) {
	svc := &stubAnalyticsService{catErr: errs.NewDatabaseError("read", "failed to stream transactions", errors.New("unavailable"))}
	resp := &stubResponseHandler{}
	h := newAnalyticsHandlersForTest(svc, resp)

	req := httptest.NewRequest(http.MethodGet, "/api/pie-chart?month=03", nil)
	rr := httptest.NewRecorder()
	h.GetPieChart(rr, req)

	if !resp.handleErrorCalled {
		t.Fatal("expected HandleError to be called")
	}
}

// Wire contract check with the real response handler: 400 carries the
// validation message, 500 stays generic.
func TestAnalyticsErrorBodies(t *testing.T) {
	log := slog.New(logger.NewTestHandler(slog.LevelInfo))
	rh := response.New(log)

	svc := &stubAnalyticsService{statsErr: errs.NewDatabaseError("read", "failed to stream transactions", errors.New("unavailable"))}
	h := NewAnalyticsHandlers(&Deps{ResponseHandler: rh, AnalyticsSvc: svc})

	req := httptest.NewRequest(http.MethodGet, "/api/statistics?month=3", nil)
	rr := httptest.NewRecorder()
	h.GetStatistics(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if body["message"] != "Year and month are required." {
		t.Fatalf("message mismatch: %q", body["message"])
	}

	req = httptest.NewRequest(http.MethodGet, "/api/statistics?year=2024&month=3", nil)
	rr = httptest.NewRecorder()
	h.GetStatistics(rr, req)

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rr.Code)
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if body["message"] != "Internal server error" {
		t.Fatalf("message mismatch: %q", body["message"])
	}
}
