package sourcing

import (
	"context"
	"fmt"
	"time"

	"github.com/tunepath-askeva/eram/api/recruiter"
	"github.com/tunepath-askeva/eram/cli/candidates"
	"github.com/tunepath-askeva/eram/pkg/cli"
	"github.com/tunepath-askeva/eram/pkg/metrics"
	"github.com/tunepath-askeva/eram/pkg/pagination"
	"github.com/tunepath-askeva/eram/search"
)

type Handler struct {
	Recruiter *recruiter.Api
	Metrics   *metrics.Collector
	Debounce  time.Duration
	PageSize  int
}

func MakeHandler(recruiterApi *recruiter.Api, collector *metrics.Collector, debounce time.Duration) Handler {
	return Handler{
		Recruiter: recruiterApi,
		Metrics:   collector,
		Debounce:  debounce,
		PageSize:  pagination.DefaultLimit,
	}
}

// RunPreset loads a saved search and runs it for jobID. The session is
// returned so the caller can keep refining it.
func (h Handler) RunPreset(ctx context.Context, jobID, path string) (*search.Session, error) {
	preset, err := search.LoadPreset(path)
	if err != nil {
		return nil, err
	}

	session := preset.Session(jobID, h.Metrics)

	if session.JobID == "" {
		return nil, fmt.Errorf("preset %q names no job and none was given", preset.Name)
	}

	cli.Blueln(fmt.Sprintf("Running %q (%s) for job %s", preset.Name, session.Mode(), session.JobID))

	return session, h.run(ctx, session)
}

// Refine reads keyword edits from next until it returns an empty line. Each
// edit is searched after the input settles; the final keywords are searched
// once more before returning.
func (h Handler) Refine(ctx context.Context, session *search.Session, next func() (string, error)) error {
	debouncer := search.NewDebouncer[search.Result](h.Debounce)

	for {
		keywords, err := next()
		if err != nil {
			debouncer.Stop()

			return err
		}

		if keywords == "" {
			break
		}

		session.Set(func(f *search.Filters) { f.Keywords = keywords })
		session.Apply()
		session.Schedule(ctx, debouncer, h.Recruiter, func(result search.Result, err error) {
			if err != nil {
				cli.Errorln(err.Error())

				return
			}

			if result.Fetched {
				cli.Grayln(fmt.Sprintf("%q: %d matches", keywords, result.Page.Total))
			}
		})
	}

	debouncer.Stop()

	return h.run(ctx, session)
}

// Suggestions lists the suggested matches for a job.
func (h Handler) Suggestions(ctx context.Context, jobID string, page int) error {
	session := search.NewSession(jobID, h.PageSize, h.Metrics)
	session.UseMatch(search.ModeSuggestion)
	session.SetPage(page)

	return h.run(ctx, session)
}

func (h Handler) run(ctx context.Context, session *search.Session) error {
	page, fetched, err := session.Run(ctx, h.Recruiter)
	if err != nil {
		return err
	}

	if !fetched {
		cli.Warningln("Every filter is at its default, so nothing was searched.")

		return nil
	}

	candidates.Print(page)

	return nil
}
