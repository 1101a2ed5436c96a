package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/txdash/transactions-dashboard/internal/dto"
	"github.com/txdash/transactions-dashboard/internal/errs"
	"github.com/txdash/transactions-dashboard/internal/response"
)

type analyticsService interface {
	MonthlyStatistics(ctx context.Context, year int, month time.Month) (dto.Statistics, error)
	PriceHistogram(ctx context.Context, month time.Month) ([]dto.PriceBucket, error)
	CategoryBreakdown(ctx context.Context, month time.Month) ([]dto.CategoryCount, error)
}

type analyticsHandlers struct {
	ResponseHandler response.ResponseHandler
	AnalyticsSvc    analyticsService
}

func NewAnalyticsHandlers(deps *Deps) *analyticsHandlers {
	return &analyticsHandlers{
		ResponseHandler: deps.ResponseHandler,
		AnalyticsSvc:    deps.AnalyticsSvc,
	}
}

// GetStatistics handles GET /api/statistics?year=&month=. Both parameters
// are required; the response echoes them back as received.
func (h *analyticsHandlers) GetStatistics(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	yearStr := q.Get("year")
	monthStr := q.Get("month")
	if yearStr == "" || monthStr == "" {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("Year and month are required."))
		return
	}

	year, err := strconv.Atoi(yearStr)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("Year must be a number."))
		return
	}
	month, vErr := parseMonth(monthStr)
	if vErr != nil {
		h.ResponseHandler.HandleError(w, r, vErr)
		return
	}

	stats, err := h.AnalyticsSvc.MonthlyStatistics(r.Context(), year, month)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, dto.StatisticsResult{
		Year:       yearStr,
		Month:      monthStr,
		Statistics: stats,
	})
}

// GetBarChart handles GET /api/bar-chart?month=MM.
func (h *analyticsHandlers) GetBarChart(w http.ResponseWriter, r *http.Request) {
	monthStr := r.URL.Query().Get("month")
	if monthStr == "" {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("Month is required (format: MM)."))
		return
	}
	month, vErr := parseMonth(monthStr)
	if vErr != nil {
		h.ResponseHandler.HandleError(w, r, vErr)
		return
	}

	buckets, err := h.AnalyticsSvc.PriceHistogram(r.Context(), month)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, dto.BarChartResult{
		Month: monthStr,
		Data:  buckets,
	})
}

// GetPieChart handles GET /api/pie-chart?month=MM.
func (h *analyticsHandlers) GetPieChart(w http.ResponseWriter, r *http.Request) {
	monthStr := r.URL.Query().Get("month")
	if monthStr == "" {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("Month is required (format: MM)."))
		return
	}
	month, vErr := parseMonth(monthStr)
	if vErr != nil {
		h.ResponseHandler.HandleError(w, r, vErr)
		return
	}

	categories, err := h.AnalyticsSvc.CategoryBreakdown(r.Context(), month)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, dto.PieChartResult{
		Month: monthStr,
		Data:  categories,
	})
}

// parseMonth validates a month value in the 1-12 range. Out-of-range values
// are rejected rather than rolled over to an adjacent year.
func parseMonth(raw string) (time.Month, error) {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 || n > 12 {
		return 0, errs.NewValidationError("Month must be between 01 and 12.")
	}
	return time.Month(n), nil
}
