package view

import (
	"context"
	"errors"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/txdash/transactions-dashboard/internal/dto"
	"github.com/txdash/transactions-dashboard/pkg/logger"
)

// Fetcher is the slice of the API client the dashboard needs.
type Fetcher interface {
	FetchTransactions(ctx context.Context, search string, page, perPage int) (dto.ListResult, error)
	FetchStatistics(ctx context.Context, year int, month time.Month) (dto.StatisticsResult, error)
	FetchBarChart(ctx context.Context, month time.Month) (dto.BarChartResult, error)
	FetchPieChart(ctx context.Context, month time.Month) (dto.PieChartResult, error)
}

// Inputs is the declared set of values the dashboard derives its state from.
type Inputs struct {
	Year    int
	Month   time.Month
	Page    int
	PerPage int
	Search  string
}

// Snapshot is one consistent render state: the inputs it was derived from and
// the results of the parallel fetches they triggered.
type Snapshot struct {
	Inputs       Inputs
	Transactions dto.ListResult
	Statistics   dto.StatisticsResult
	BarChart     dto.BarChartResult
	PieChart     dto.PieChartResult
}

// Refresher recomputes the dashboard's derived state whenever an input
// changes. Each change cancels the in-flight fetches of the previous inputs;
// a stale fetch that still completes is dropped, so the snapshot stream only
// ever moves forward. A failed refresh publishes nothing, leaving the
// previous snapshot as the current render state.
type Refresher struct {
	api Fetcher

	mu     sync.Mutex
	inputs Inputs
	gen    uint64
	cancel context.CancelFunc
	closed bool

	snapshots chan Snapshot
}

func NewRefresher(api Fetcher, initial Inputs) *Refresher {
	if initial.Page < 1 {
		initial.Page = 1
	}
	if initial.PerPage < 1 {
		initial.PerPage = 10
	}
	return &Refresher{
		api:       api,
		inputs:    initial,
		snapshots: make(chan Snapshot, 1),
	}
}

// Snapshots delivers the latest completed snapshot. Slow consumers only ever
// see the most recent one.
func (r *Refresher) Snapshots() <-chan Snapshot {
	return r.snapshots
}

// SetMonth switches the selected month and resets the table to page 1.
func (r *Refresher) SetMonth(ctx context.Context, month time.Month) {
	r.mu.Lock()
	r.inputs.Month = month
	r.inputs.Page = 1
	r.refreshLocked(ctx)
	r.mu.Unlock()
}

func (r *Refresher) SetSearch(ctx context.Context, search string) {
	r.mu.Lock()
	r.inputs.Search = search
	r.refreshLocked(ctx)
	r.mu.Unlock()
}

func (r *Refresher) SetPage(ctx context.Context, page int) {
	if page < 1 {
		page = 1
	}
	r.mu.Lock()
	r.inputs.Page = page
	r.refreshLocked(ctx)
	r.mu.Unlock()
}

// Refresh recomputes with the current inputs.
func (r *Refresher) Refresh(ctx context.Context) {
	r.mu.Lock()
	r.refreshLocked(ctx)
	r.mu.Unlock()
}

// Close cancels any in-flight refresh and closes the snapshot channel, so
// consumers ranging over Snapshots terminate.
func (r *Refresher) Close() {
	r.mu.Lock()
	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
	}
	if !r.closed {
		r.closed = true
		close(r.snapshots)
	}
	r.mu.Unlock()
}

func (r *Refresher) refreshLocked(ctx context.Context) {
	if r.closed {
		return
	}
	if r.cancel != nil {
		r.cancel()
	}
	fetchCtx, cancel := context.WithCancel(ctx)
	r.cancel = cancel
	r.gen++

	go r.run(fetchCtx, r.gen, r.inputs)
}

func (r *Refresher) run(ctx context.Context, gen uint64, in Inputs) {
	log := logger.FromContext(ctx)

	var snap Snapshot
	snap.Inputs = in

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		snap.Transactions, err = r.api.FetchTransactions(ctx, in.Search, in.Page, in.PerPage)
		return err
	})
	g.Go(func() error {
		var err error
		snap.Statistics, err = r.api.FetchStatistics(ctx, in.Year, in.Month)
		return err
	})
	g.Go(func() error {
		var err error
		snap.BarChart, err = r.api.FetchBarChart(ctx, in.Month)
		return err
	})
	g.Go(func() error {
		var err error
		snap.PieChart, err = r.api.FetchPieChart(ctx, in.Month)
		return err
	})

	if err := g.Wait(); err != nil {
		if errors.Is(err, context.Canceled) {
			log.Debug("refresh superseded", "month", int(in.Month), "page", in.Page)
		} else {
			log.Error("dashboard refresh failed", "error", err)
		}
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed || gen != r.gen {
		// Shut down, or a newer input change won the race; drop this
		// snapshot.
		return
	}
	select {
	case <-r.snapshots:
	default:
	}
	r.snapshots <- snap
}
