package advisory

import (
	"context"
	"log/slog"
	"maps"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/mmynk/housepoints/internal/models"
	"github.com/mmynk/housepoints/internal/scoreboard"
)

// reasonsPerSummary is how many recent reasons go into a summary prompt.
const reasonsPerSummary = 3

// Refresher keeps one summary per house, regenerating them in the
// background whenever the houses or the event log change. A house without a
// summary yet is a normal state.
type Refresher struct {
	svc    *Service
	limit  int
	logger *slog.Logger

	base context.Context
	stop context.CancelFunc

	mu        sync.Mutex
	run       uint64
	cancel    context.CancelFunc
	done      chan struct{}
	summaries map[string]string
}

// NewRefresher creates a refresher running at most limit calls at once.
func NewRefresher(svc *Service, limit int, logger *slog.Logger) *Refresher {
	if limit < 1 {
		limit = 1
	}
	if logger == nil {
		logger = slog.Default()
	}
	base, stop := context.WithCancel(context.Background())
	done := make(chan struct{})
	close(done)
	return &Refresher{
		svc:       svc,
		limit:     limit,
		logger:    logger,
		base:      base,
		stop:      stop,
		done:      done,
		summaries: make(map[string]string),
	}
}

type summaryJob struct {
	houseID string
	name    string
	total   int
	reasons []string
}

// Refresh cancels any run in flight and starts a new one over the given
// snapshot. Only houses with at least one event are summarized; summaries of
// other houses are dropped.
func (r *Refresher) Refresh(houses []models.House, events []models.PointEvent) {
	var jobs []summaryJob
	for _, h := range houses {
		reasons := scoreboard.RecentReasons(h.ID, events, reasonsPerSummary)
		if len(reasons) == 0 {
			continue
		}
		jobs = append(jobs, summaryJob{
			houseID: h.ID,
			name:    h.Name,
			total:   scoreboard.HouseTotal(h.ID, events),
			reasons: reasons,
		})
	}

	r.mu.Lock()
	if r.cancel != nil {
		r.cancel()
	}
	r.run++
	run := r.run
	ctx, cancel := context.WithCancel(r.base)
	r.cancel = cancel
	done := make(chan struct{})
	r.done = done

	keep := make(map[string]string, len(jobs))
	for _, j := range jobs {
		if s, ok := r.summaries[j.houseID]; ok {
			keep[j.houseID] = s
		}
	}
	r.summaries = keep
	r.mu.Unlock()

	r.logger.Debug("refreshing house summaries", "run", run, "houses", len(jobs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.limit)
	go func() {
		defer close(done)
		defer cancel()
		for _, j := range jobs {
			if gctx.Err() != nil {
				break
			}
			g.Go(func() error {
				summary := r.svc.Summarize(gctx, j.name, j.total, j.reasons)
				if gctx.Err() == nil {
					r.store(run, j.houseID, summary)
				}
				return nil
			})
		}
		_ = g.Wait()
	}()
}

func (r *Refresher) store(run uint64, houseID, summary string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if run != r.run {
		return
	}
	r.summaries[houseID] = summary
}

// Summaries returns a copy of the summaries available so far, by house id.
func (r *Refresher) Summaries() map[string]string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return maps.Clone(r.summaries)
}

// Wait blocks until the current run finishes or ctx is done.
func (r *Refresher) Wait(ctx context.Context) error {
	r.mu.Lock()
	done := r.done
	r.mu.Unlock()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close cancels any run in flight. Later calls to Refresh do nothing useful.
func (r *Refresher) Close() {
	r.stop()
}
