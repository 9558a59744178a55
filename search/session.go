package search

import (
	"context"
	"fmt"

	"github.com/tunepath-askeva/eram/api/payload"
	"github.com/tunepath-askeva/eram/api/recruiter"
	"github.com/tunepath-askeva/eram/pkg/metrics"
	"github.com/tunepath-askeva/eram/pkg/pagination"
)

type Mode int

const (
	ModeFilters Mode = iota
	ModeExact
	ModeSuggestion
)

func (m Mode) String() string {
	switch m {
	case ModeExact:
		return "exact"
	case ModeSuggestion:
		return "suggestion"
	default:
		return "filters"
	}
}

func ParseMode(value string) (Mode, error) {
	switch normalizeText(value) {
	case "", "filters":
		return ModeFilters, nil
	case "exact":
		return ModeExact, nil
	case "suggestion":
		return ModeSuggestion, nil
	default:
		return ModeFilters, fmt.Errorf("unknown search mode %q", value)
	}
}

// Searcher is the backend side of a sourcing search.
type Searcher interface {
	SearchSourced(ctx context.Context, q recruiter.SourcedQuery) (*pagination.Page[payload.Candidate], error)
	ExactMatch(ctx context.Context, q recruiter.MatchQuery) (*pagination.Page[payload.Candidate], error)
	SuggestionMatch(ctx context.Context, q recruiter.MatchQuery) (*pagination.Page[payload.Candidate], error)
}

// Request describes the fetch a session currently calls for.
type Request struct {
	JobID    string
	Mode     Mode
	Filters  Filters
	Page     int
	PageSize int
}

// Session holds the sourcing search state of one job. Filter mode and the
// match modes never combine.
type Session struct {
	JobID    string
	draft    Filters
	applied  Filters
	mode     Mode
	page     int
	pageSize int
	metrics  *metrics.Collector
}

func NewSession(jobID string, pageSize int, collector *metrics.Collector) *Session {
	limit := pagination.MakePaginate(1, pageSize).Limit

	return &Session{
		JobID:    jobID,
		draft:    DefaultFilters(),
		applied:  DefaultFilters(),
		mode:     ModeFilters,
		page:     pagination.MinPage,
		pageSize: limit,
		metrics:  collector,
	}
}

func (s *Session) Draft() Filters {
	return s.draft.clone()
}

func (s *Session) Applied() Filters {
	return s.applied.clone()
}

func (s *Session) Mode() Mode {
	return s.mode
}

func (s *Session) Page() int {
	return s.page
}

// Set edits the draft filters. Any change returns to page one and leaves
// match mode.
func (s *Session) Set(edit func(*Filters)) {
	next := s.draft.clone()
	edit(&next)

	if !next.Equal(s.draft) {
		s.page = pagination.MinPage
	}

	s.draft = next
	s.mode = ModeFilters
}

// Apply commits the draft filters.
func (s *Session) Apply() {
	if !s.draft.Equal(s.applied) {
		s.page = pagination.MinPage
	}

	s.applied = s.draft.clone()
	s.mode = ModeFilters
}

// UseMatch switches to a server-side match mode, clearing every filter.
func (s *Session) UseMatch(mode Mode) {
	if mode == ModeFilters {
		s.mode = ModeFilters
		return
	}

	s.draft = DefaultFilters()
	s.applied = DefaultFilters()
	s.mode = mode
	s.page = pagination.MinPage
}

func (s *Session) SetPage(page int) {
	s.page = pagination.MakePaginate(page, s.pageSize).Page
}

// Request returns false when nothing should be fetched: filter mode with
// every filter at its default.
func (s *Session) Request() (Request, bool) {
	request := Request{
		JobID:    s.JobID,
		Mode:     s.mode,
		Filters:  s.applied.clone(),
		Page:     s.page,
		PageSize: s.pageSize,
	}

	if s.mode == ModeFilters && s.applied.IsDefault() {
		return request, false
	}

	return request, true
}

// Run executes the current request. A skipped search returns a nil page and
// false without calling the searcher.
func (s *Session) Run(ctx context.Context, searcher Searcher) (*pagination.Page[payload.Candidate], bool, error) {
	request, ok := s.Request()
	if !ok {
		s.metrics.SearchSkipped()

		return nil, false, nil
	}

	page, err := request.Do(ctx, searcher)

	return page, true, err
}

func (r Request) Do(ctx context.Context, searcher Searcher) (*pagination.Page[payload.Candidate], error) {
	match := recruiter.MatchQuery{JobID: r.JobID, Page: r.Page, Limit: r.PageSize}

	switch r.Mode {
	case ModeExact:
		return searcher.ExactMatch(ctx, match)
	case ModeSuggestion:
		return searcher.SuggestionMatch(ctx, match)
	default:
		return searcher.SearchSourced(ctx, recruiter.SourcedQuery{
			JobID:   r.JobID,
			Filters: r.Filters.Encode(),
			Page:    r.Page,
			Limit:   r.PageSize,
		})
	}
}

// Result is what a debounced search hands back. Fetched is false when the
// search was skipped.
type Result struct {
	Page    *pagination.Page[payload.Candidate]
	Fetched bool
}

// Schedule runs the current request through the debouncer. The request is
// captured now, so later edits only take effect on the next Schedule. A
// skipped search cancels whatever was pending and delivers straight away.
func (s *Session) Schedule(ctx context.Context, d *Debouncer[Result], searcher Searcher, deliver func(Result, error)) uint64 {
	request, ok := s.Request()
	if !ok {
		d.Stop()
		s.metrics.SearchSkipped()

		if deliver != nil {
			deliver(Result{}, nil)
		}

		return d.Generation()
	}

	return d.Trigger(ctx, func(ctx context.Context) (Result, error) {
		page, err := request.Do(ctx, searcher)

		return Result{Page: page, Fetched: true}, err
	}, deliver)
}
