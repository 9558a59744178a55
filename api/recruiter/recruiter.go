package recruiter

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/tunepath-askeva/eram/api/payload"
	"github.com/tunepath-askeva/eram/bulk"
	"github.com/tunepath-askeva/eram/pkg/cache"
	"github.com/tunepath-askeva/eram/pkg/pagination"
	"github.com/tunepath-askeva/eram/pkg/query"
)

const BasePath = "/api/recruiter"

const (
	SearchSourced     query.Name = "getSourcedCandidates"
	ExactMatch        query.Name = "getExactMatchCandidates"
	SuggestionMatch   query.Name = "getSuggestionMatchCandidates"
	ListJobCandidates query.Name = "getJobCandidates"
	MoveCandidate     query.Name = "moveCandidateStatus"
)

const (
	TagSourced      cache.Tag = "Sourced"
	TagJobCandidate cache.Tag = "JobCandidate"
)

// SourcedQuery is one page of a filtered sourcing search for a job.
type SourcedQuery struct {
	JobID   string
	Filters url.Values
	Page    int
	Limit   int
}

type MatchQuery struct {
	JobID string
	Page  int
	Limit int
}

type JobCandidatesQuery struct {
	JobID  string
	Status string
	query.ListParams
}

type Move struct {
	JobID       string
	CandidateID string
	Change      payload.StatusChange
}

func (m Move) validate() error {
	if err := requireJob(m.JobID); err != nil {
		return err
	}

	if err := query.ID(m.CandidateID).Require(); err != nil {
		return fmt.Errorf("candidate: %w", err)
	}

	return nil
}

func requireJob(id string) error {
	if err := query.ID(id).Require(); err != nil {
		return fmt.Errorf("job: %w", err)
	}

	return nil
}

type candidatesPage = pagination.Page[payload.Candidate]

var (
	sourcedEndpoint = query.Endpoint[SourcedQuery, *candidatesPage]{
		Name:   SearchSourced,
		Method: http.MethodGet,
		Path:   func(SourcedQuery) string { return "/sourced-candidates" },
		Params: func(q SourcedQuery) url.Values {
			values := url.Values{}
			for key, vals := range q.Filters {
				values[key] = append([]string(nil), vals...)
			}

			if q.JobID != "" {
				values.Set("jobId", q.JobID)
			}

			return pagination.Paginate{Page: q.Page, Limit: q.Limit}.Apply(values)
		},
		Transform: payload.DecodeList[payload.Candidate](payload.Items("candidates").WithLegacy("sourcedCandidates")),
		Provides:  query.Tags[SourcedQuery](TagSourced),
	}

	exactEndpoint      = matchEndpoint(ExactMatch, "exact-match")
	suggestionEndpoint = matchEndpoint(SuggestionMatch, "suggestion-match")

	jobCandidatesEndpoint = query.Endpoint[JobCandidatesQuery, *candidatesPage]{
		Name:   ListJobCandidates,
		Method: http.MethodGet,
		Check:  func(q JobCandidatesQuery) error { return requireJob(q.JobID) },
		Path:   func(q JobCandidatesQuery) string { return query.ID(q.JobID).Path("/jobs") + "/candidates" },
		Params: func(q JobCandidatesQuery) url.Values {
			values := q.ListParams.Values()
			if status := strings.TrimSpace(q.Status); status != "" {
				values.Set("status", status)
			}

			return values
		},
		Transform: payload.DecodeList[payload.Candidate](payload.Items("candidates")),
		Provides:  query.Tags[JobCandidatesQuery](TagJobCandidate),
	}

	moveEndpoint = query.Endpoint[Move, payload.Acknowledgement]{
		Name:   MoveCandidate,
		Method: http.MethodPut,
		Check:  Move.validate,
		Path: func(m Move) string {
			return query.ID(m.JobID).Path("/jobs") + query.ID(m.CandidateID).Path("/candidates") + "/status"
		},
		Body:        func(m Move) any { return m.Change },
		Transform:   payload.DecodeObject[payload.Acknowledgement](),
		Invalidates: query.Tags[Move](TagJobCandidate, TagSourced),
	}

	// bulkMoveEndpoint leaves invalidation to the bulk runner, which does it
	// once for the whole batch.
	bulkMoveEndpoint = withoutInvalidation(moveEndpoint)
)

var definitions = map[query.Name]query.Definition{
	SearchSourced:     sourcedEndpoint,
	ExactMatch:        exactEndpoint,
	SuggestionMatch:   suggestionEndpoint,
	ListJobCandidates: jobCandidatesEndpoint,
	MoveCandidate:     moveEndpoint,
}

func withoutInvalidation[P any, R any](e query.Endpoint[P, R]) query.Endpoint[P, R] {
	e.Invalidates = nil

	return e
}

func matchEndpoint(name query.Name, mode string) query.Endpoint[MatchQuery, *candidatesPage] {
	return query.Endpoint[MatchQuery, *candidatesPage]{
		Name:   name,
		Method: http.MethodGet,
		Check:  func(q MatchQuery) error { return requireJob(q.JobID) },
		Path:   func(q MatchQuery) string { return query.ID(q.JobID).Path("/jobs") + "/" + mode },
		Params: func(q MatchQuery) url.Values {
			return pagination.Paginate{Page: q.Page, Limit: q.Limit}.Apply(nil)
		},
		Transform: payload.DecodeList[payload.Candidate](payload.Items("candidates").WithLegacy("matches")),
		Provides:  query.Tags[MatchQuery](TagSourced),
	}
}

type Api struct {
	slice *query.Slice
}

func New(slice *query.Slice) (*Api, error) {
	for name, definition := range definitions {
		if definition.EndpointName() != name {
			return nil, fmt.Errorf("recruiter: endpoint %s registered as %s", definition.EndpointName(), name)
		}

		if err := slice.Register(definition); err != nil {
			return nil, fmt.Errorf("recruiter: %w", err)
		}
	}

	return &Api{slice: slice}, nil
}

func (a *Api) Slice() *query.Slice {
	return a.slice
}

func (a *Api) SearchSourced(ctx context.Context, q SourcedQuery) (*pagination.Page[payload.Candidate], error) {
	return query.Query(ctx, a.slice, sourcedEndpoint, q)
}

func (a *Api) ExactMatch(ctx context.Context, q MatchQuery) (*pagination.Page[payload.Candidate], error) {
	return query.Query(ctx, a.slice, exactEndpoint, q)
}

func (a *Api) SuggestionMatch(ctx context.Context, q MatchQuery) (*pagination.Page[payload.Candidate], error) {
	return query.Query(ctx, a.slice, suggestionEndpoint, q)
}

func (a *Api) ListJobCandidates(ctx context.Context, q JobCandidatesQuery) (*pagination.Page[payload.Candidate], error) {
	return query.Query(ctx, a.slice, jobCandidatesEndpoint, q)
}

func (a *Api) WatchJobCandidates(ctx context.Context, q JobCandidatesQuery, onUpdate func(*pagination.Page[payload.Candidate], error)) (func(), error) {
	return query.Watch(ctx, a.slice, jobCandidatesEndpoint, q, onUpdate)
}

// MoveCandidates moves every candidate to the same status, one request per
// id, and refetches the affected lists whatever the outcome.
func (a *Api) MoveCandidates(ctx context.Context, jobID string, candidateIDs []string, change payload.StatusChange, runner bulk.Runner) bulk.Report {
	runner.Invalidator = a.slice
	runner.Tags = []cache.Tag{TagJobCandidate, TagSourced}

	return runner.Run(ctx, candidateIDs, func(ctx context.Context, id string) error {
		_, err := query.Mutate(ctx, a.slice, bulkMoveEndpoint, Move{JobID: jobID, CandidateID: id, Change: change})

		return err
	})
}

// MoveCandidate changes one candidate's status for a job.
func (a *Api) MoveCandidate(ctx context.Context, m Move) (payload.Acknowledgement, error) {
	return query.Mutate(ctx, a.slice, moveEndpoint, m)
}
