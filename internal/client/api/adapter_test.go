package apiclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestFetchTransactionsBuildsQuery(t *testing.T) {
	var gotPath string
	var gotQuery map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = map[string]string{}
		for k := range r.URL.Query() {
			gotQuery[k] = r.URL.Query().Get(k)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":[{"id":"t1","title":"Lamp"}],"metadata":{"currentPage":2,"perPage":5,"totalRecords":11,"totalPages":3}}`))
	}))
	defer srv.Close()

	a := NewAdapter(srv.URL)
	got, err := a.FetchTransactions(context.Background(), "lamp", 2, 5)
	if err != nil {
		t.Fatalf("FetchTransactions error: %v", err)
	}

	if gotPath != "/api/transactions" {
		t.Fatalf("path mismatch: %s", gotPath)
	}
	if gotQuery["search"] != "lamp" || gotQuery["page"] != "2" || gotQuery["perPage"] != "5" {
		t.Fatalf("query mismatch: %v", gotQuery)
	}
	if len(got.Data) != 1 || got.Data[0].TransactionID != "t1" {
		t.Fatalf("data mismatch: %+v", got.Data)
	}
	if got.Metadata.TotalPages != 3 {
		t.Fatalf("metadata mismatch: %+v", got.Metadata)
	}
}

func TestFetchStatisticsFormatsMonth(t *testing.T) {
	var gotQuery map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = map[string]string{
			"year":  r.URL.Query().Get("year"),
			"month": r.URL.Query().Get("month"),
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"year":"2024","month":"03","statistics":{"totalSaleAmount":40,"totalSoldItems":1,"totalNotSoldItems":1}}`))
	}))
	defer srv.Close()

	a := NewAdapter(srv.URL)
	got, err := a.FetchStatistics(context.Background(), 2024, time.March)
	if err != nil {
		t.Fatalf("FetchStatistics error: %v", err)
	}

	if gotQuery["year"] != "2024" || gotQuery["month"] != "03" {
		t.Fatalf("query mismatch: %v", gotQuery)
	}
	if got.Statistics.TotalSaleAmount != 40 {
		t.Fatalf("statistics mismatch: %+v", got.Statistics)
	}
}

func TestFetchBarChartErrorSurfacesMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message":"Month is required (format: MM)."}`))
	}))
	defer srv.Close()

	a := NewAdapter(srv.URL)
	_, err := a.FetchBarChart(context.Background(), time.March)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "Month is required") {
		t.Fatalf("error should carry the API message: %v", err)
	}
}

func TestFetchPieChartCancelledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	a := NewAdapter(srv.URL)
	if _, err := a.FetchPieChart(ctx, time.March); err == nil {
		t.Fatal("expected error from cancelled context")
	}
}
