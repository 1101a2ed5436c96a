package services

import (
	"context"
	"math"
	"sort"
	"time"

	"github.com/txdash/transactions-dashboard/internal/dto"
	"github.com/txdash/transactions-dashboard/internal/models"
	"github.com/txdash/transactions-dashboard/pkg/helpers"
)

// ChartReferenceYear is the fixed year the chart endpoints match months
// against. The transaction's own year is ignored: a carry-over from the
// original API contract that downstream consumers may depend on.
const ChartReferenceYear = 2024

// UncategorizedLabel is the category assigned to transactions with no
// category of their own.
const UncategorizedLabel = "Uncategorized"

// priceBucket bounds are half-open: min inclusive, max exclusive. Each
// bucket's max equals the next bucket's min, so every non-negative price
// lands in exactly one bucket.
type priceBucket struct {
	label    string
	min, max float64
}

var priceBuckets = []priceBucket{
	{"0-100", 0, 101},
	{"101-200", 101, 201},
	{"201-300", 201, 301},
	{"301-400", 301, 401},
	{"401-500", 401, 501},
	{"501-600", 501, 601},
	{"601-700", 601, 701},
	{"701-800", 701, 801},
	{"801-900", 801, 901},
	{"901-above", 901, math.Inf(1)},
}

type analyticsService struct {
	txs transactionQueryStore
}

func NewAnalyticsService(txs transactionQueryStore) *analyticsService {
	return &analyticsService{txs: txs}
}

// monthWindow returns the half-open interval [first-of-month, first-of-next-month).
func monthWindow(year int, month time.Month) (time.Time, time.Time) {
	from := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return from, from.AddDate(0, 1, 0)
}

// MonthlyStatistics aggregates sale totals over the given calendar month.
func (s *analyticsService) MonthlyStatistics(ctx context.Context, year int, month time.Month) (dto.Statistics, error) {
	from, to := monthWindow(year, month)

	var stats dto.Statistics
	err := s.txs.Query(ctx, dto.TransactionQuery{
		DateFrom: helpers.Ptr(from),
		DateTo:   helpers.Ptr(to),
	}, func(tx *models.Transaction) error {
		if tx.Sold {
			stats.TotalSaleAmount += tx.SaleAmount
			stats.TotalSoldItems++
		} else {
			stats.TotalNotSoldItems++
		}
		return nil
	})
	if err != nil {
		return dto.Statistics{}, err
	}
	return stats, nil
}

// PriceHistogram counts the month's transactions into the fixed price
// buckets, in bucket order. The month is matched against ChartReferenceYear.
func (s *analyticsService) PriceHistogram(ctx context.Context, month time.Month) ([]dto.PriceBucket, error) {
	from, to := monthWindow(ChartReferenceYear, month)

	counts := make([]int, len(priceBuckets))
	err := s.txs.Query(ctx, dto.TransactionQuery{
		DateFrom: helpers.Ptr(from),
		DateTo:   helpers.Ptr(to),
	}, func(tx *models.Transaction) error {
		for i, b := range priceBuckets {
			if tx.Price >= b.min && tx.Price < b.max {
				counts[i]++
				break
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	out := make([]dto.PriceBucket, len(priceBuckets))
	for i, b := range priceBuckets {
		out[i] = dto.PriceBucket{Label: b.label, Count: counts[i]}
	}
	return out, nil
}

// CategoryBreakdown counts the month's transactions per category. Categories
// are sorted so identical inputs yield identical output; only observed
// categories appear.
func (s *analyticsService) CategoryBreakdown(ctx context.Context, month time.Month) ([]dto.CategoryCount, error) {
	from, to := monthWindow(ChartReferenceYear, month)

	counts := map[string]int{}
	err := s.txs.Query(ctx, dto.TransactionQuery{
		DateFrom: helpers.Ptr(from),
		DateTo:   helpers.Ptr(to),
	}, func(tx *models.Transaction) error {
		category := tx.Category
		if category == "" {
			category = UncategorizedLabel
		}
		counts[category]++
		return nil
	})
	if err != nil {
		return nil, err
	}

	out := make([]dto.CategoryCount, 0, len(counts))
	for category, count := range counts {
		out = append(out, dto.CategoryCount{Category: category, Count: count})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Category < out[j].Category })
	return out, nil
}
