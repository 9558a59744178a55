package bulk

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/tunepath-askeva/eram/pkg/cache"
	"github.com/tunepath-askeva/eram/pkg/metrics"
)

const DefaultConcurrency = 8

// Action performs the mutation for one id.
type Action func(ctx context.Context, id string) error

type Invalidator interface {
	Invalidate(ctx context.Context, tags ...cache.Tag) []string
}

type Runner struct {
	Concurrency int
	Invalidator Invalidator
	Tags        []cache.Tag
	Metrics     *metrics.Collector
}

type Report struct {
	Requested int
	Succeeded []string
	Failed    map[string]error
}

// Err is nil only when every requested update succeeded. Otherwise it is one
// aggregate error wrapping each cause.
func (r Report) Err() error {
	if len(r.Failed) == 0 {
		return nil
	}

	ids := make([]string, 0, len(r.Failed))
	for id := range r.Failed {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	causes := make([]error, 0, len(ids))
	for _, id := range ids {
		causes = append(causes, fmt.Errorf("%s: %w", id, r.Failed[id]))
	}

	return &Error{
		Failed:    len(r.Failed),
		Requested: r.Requested,
		Succeeded: len(r.Succeeded),
		cause:     errors.Join(causes...),
	}
}

// Error summarises a partially or wholly failed bulk action.
type Error struct {
	Failed    int
	Requested int
	Succeeded int
	cause     error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%d of %d updates failed (%d succeeded)", e.Failed, e.Requested, e.Succeeded)
}

// Summary is what the operator sees; the per-id causes go to the logs.
func (e *Error) Summary() string {
	return e.Error()
}

func (e *Error) Unwrap() error {
	return e.cause
}

// Run fires action once per id, waits for all of them and then invalidates
// the runner's tags whatever the outcome. Duplicate ids are sent once.
func (r Runner) Run(ctx context.Context, ids []string, action Action) Report {
	unique := dedupe(ids)

	report := Report{
		Requested: len(unique),
		Failed:    make(map[string]error),
	}

	limit := r.Concurrency
	if limit <= 0 {
		limit = DefaultConcurrency
	}

	var mu sync.Mutex
	var group errgroup.Group
	group.SetLimit(limit)

	for _, id := range unique {
		id := id
		group.Go(func() error {
			err := action(ctx, id)

			mu.Lock()
			defer mu.Unlock()

			if err != nil {
				report.Failed[id] = err
			} else {
				report.Succeeded = append(report.Succeeded, id)
			}

			// Other updates keep running when one fails.
			return nil
		})
	}

	_ = group.Wait()

	sort.Strings(report.Succeeded)

	if r.Invalidator != nil && len(r.Tags) > 0 {
		r.Invalidator.Invalidate(ctx, r.Tags...)
	}

	r.Metrics.BulkOutcome(len(report.Succeeded), len(report.Failed))

	if len(report.Failed) > 0 {
		slog.WarnContext(ctx, "bulk action partially failed",
			"requested", report.Requested,
			"failed", len(report.Failed),
			"succeeded", len(report.Succeeded),
		)
	}

	return report
}

func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))

	for _, id := range ids {
		if id == "" {
			continue
		}

		if _, ok := seen[id]; ok {
			continue
		}

		seen[id] = struct{}{}
		out = append(out, id)
	}

	return out
}
