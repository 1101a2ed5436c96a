package apiclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/txdash/transactions-dashboard/internal/dto"
)

// Adapter is the dashboard's HTTP client for the query service.
type Adapter struct {
	baseURL string
	client  *http.Client
}

func NewAdapter(baseURL string) *Adapter {
	return &Adapter{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

func (a *Adapter) FetchTransactions(ctx context.Context, search string, page, perPage int) (dto.ListResult, error) {
	params := url.Values{}
	params.Set("search", search)
	params.Set("page", strconv.Itoa(page))
	params.Set("perPage", strconv.Itoa(perPage))

	var result dto.ListResult
	err := a.get(ctx, "/api/transactions", params, &result)
	return result, err
}

func (a *Adapter) FetchStatistics(ctx context.Context, year int, month time.Month) (dto.StatisticsResult, error) {
	params := url.Values{}
	params.Set("year", strconv.Itoa(year))
	params.Set("month", monthParam(month))

	var result dto.StatisticsResult
	err := a.get(ctx, "/api/statistics", params, &result)
	return result, err
}

func (a *Adapter) FetchBarChart(ctx context.Context, month time.Month) (dto.BarChartResult, error) {
	params := url.Values{}
	params.Set("month", monthParam(month))

	var result dto.BarChartResult
	err := a.get(ctx, "/api/bar-chart", params, &result)
	return result, err
}

func (a *Adapter) FetchPieChart(ctx context.Context, month time.Month) (dto.PieChartResult, error) {
	params := url.Values{}
	params.Set("month", monthParam(month))

	var result dto.PieChartResult
	err := a.get(ctx, "/api/pie-chart", params, &result)
	return result, err
}

func (a *Adapter) get(ctx context.Context, path string, params url.Values, out any) error {
	u := a.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var apiErr struct {
			Message string `json:"message"`
		}
		if decodeErr := json.NewDecoder(resp.Body).Decode(&apiErr); decodeErr == nil && apiErr.Message != "" {
			return fmt.Errorf("%s: %s (status %d)", path, apiErr.Message, resp.StatusCode)
		}
		return fmt.Errorf("%s: unexpected status %d", path, resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

// monthParam formats a month as the two-digit "MM" the API expects.
func monthParam(month time.Month) string {
	return fmt.Sprintf("%02d", int(month))
}
