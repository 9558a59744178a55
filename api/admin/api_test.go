package admin

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/tunepath-askeva/eram/api/payload"
	"github.com/tunepath-askeva/eram/pkg/cache"
	"github.com/tunepath-askeva/eram/pkg/endpoint"
	"github.com/tunepath-askeva/eram/pkg/portal"
	"github.com/tunepath-askeva/eram/pkg/query"
)

type recorded struct {
	Method string
	Path   string
	Query  string
	Body   string
}

type backend struct {
	mu        sync.Mutex
	calls     []recorded
	responses map[string]string
}

func (b *backend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	raw, _ := io.ReadAll(r.Body)

	b.mu.Lock()
	b.calls = append(b.calls, recorded{Method: r.Method, Path: r.URL.Path, Query: r.URL.RawQuery, Body: string(raw)})
	body, ok := b.responses[r.Method+" "+r.URL.Path]
	b.mu.Unlock()

	if !ok {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"route not found"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(body))
}

func (b *backend) count(method, path string) int {
	b.mu.Lock()
	defer b.mu.Unlock()

	n := 0
	for _, c := range b.calls {
		if c.Method == method && c.Path == path {
			n++
		}
	}

	return n
}

func (b *backend) last() recorded {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.calls[len(b.calls)-1]
}

func newTestApi(t *testing.T, responses map[string]string) (*Api, *backend) {
	t.Helper()

	b := &backend{responses: responses}
	srv := httptest.NewServer(b)
	t.Cleanup(srv.Close)

	api, err := New(query.NewSlice(query.SliceConfig{
		BasePath: BasePath,
		Client:   portal.NewClient(srv.URL, nil, time.Second),
		Cache:    cache.NewQueryCache(),
	}))

	if err != nil {
		t.Fatalf("new api: %v", err)
	}

	return api, b
}

func TestNewRegistersEveryEndpoint(t *testing.T) {
	api, _ := newTestApi(t, nil)

	names := api.Slice().Registry().Names()
	if len(names) != len(definitions) {
		t.Fatalf("registered %d of %d", len(names), len(definitions))
	}

	if _, ok := api.Slice().Registry().Lookup(GetProjects); !ok {
		t.Fatalf("getProjects missing")
	}

	if _, err := New(api.Slice()); !errors.Is(err, query.ErrDuplicateEndpoint) {
		t.Fatalf("registering twice should fail, got %v", err)
	}
}

func TestListCandidatesNormalises(t *testing.T) {
	api, b := newTestApi(t, map[string]string{
		"GET /api/admin/candidate": `{"candidates":[{"_id":"c1","fullName":"Ana","skills":["go"]}],"total":11,"currentPage":2,"pageSize":5}`,
	})

	page, err := api.ListCandidates(context.Background(), query.ListParams{Page: 2, PageSize: 5, Search: "ana"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	if page.Total != 11 || page.TotalPages != 3 || page.Items[0].FullName != "Ana" {
		t.Fatalf("unexpected %+v", page)
	}

	if q := b.last().Query; q != "limit=5&page=2&search=ana" {
		t.Fatalf("query %s", q)
	}
}

func TestEndpointPaths(t *testing.T) {
	api, b := newTestApi(t, map[string]string{
		"GET /api/admin/dashboard":           `{"dashboard":{"totalCandidates":7}}`,
		"GET /api/admin/workOrder/w1":        `{"workOrder":{"_id":"w1","title":"Welder","salaryFrom":100}}`,
		"DELETE /api/admin/staff/s1":         ``,
		"PATCH /api/admin/whatsapp-status/9": `{"success":true}`,
		"GET /api/admin/branch-employees":    `{"employees":[{"_id":"e1"}]}`,
		"GET /api/admin/job-codes":           `{"jobCodes":[]}`,
	})

	ctx := context.Background()

	dashboard, err := api.Dashboard(ctx)
	if err != nil || dashboard.TotalCandidates != 7 {
		t.Fatalf("dashboard %+v %v", dashboard, err)
	}

	order, err := api.GetWorkOrder(ctx, "w1")
	if err != nil || order.Title != "Welder" {
		t.Fatalf("work order %+v %v", order, err)
	}

	if err := api.DeleteStaff(ctx, "s1"); err != nil {
		t.Fatalf("delete: %v", err)
	}

	ack, err := api.UpdateWhatsAppStatus(ctx, "9", true)
	if err != nil || !ack.Success {
		t.Fatalf("status %+v %v", ack, err)
	}

	if last := b.last(); last.Body != `{"isActive":true}` {
		t.Fatalf("body %s", last.Body)
	}

	if page, err := api.ListBranchEmployees(ctx, query.ListParams{}); err != nil || len(page.Items) != 1 {
		t.Fatalf("employees %+v %v", page, err)
	}

	if _, err := api.ListJobCodes(ctx, query.ListParams{}); err != nil {
		t.Fatalf("job codes: %v", err)
	}
}

func TestApprovalMutationRefetchesActiveRequisitions(t *testing.T) {
	api, b := newTestApi(t, map[string]string{
		"GET /api/admin/requisition": `{"requisitions":[{"_id":"r1","requisitionNo":"R1","referenceNo":"A"}]}`,
		"PUT /api/admin/approval/a1": `{"approval":{"_id":"a1","action":"approved"}}`,
	})

	ctx := context.Background()

	stop, err := query.Watch(ctx, api.Slice(), requisitionsEndpoint, query.ListParams{}, nil)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}
	defer stop()

	approval, err := api.UpdateApproval(ctx, "a1", payload.ApprovalInput{Action: payload.ApprovalApproved, Remark: "ok"})
	if err != nil || approval.Action != "approved" {
		t.Fatalf("approval %+v %v", approval, err)
	}

	if n := b.count(http.MethodGet, "/api/admin/requisition"); n != 2 {
		t.Fatalf("expected requisitions refetched, got %d calls", n)
	}
}

func TestCreateClientValidation(t *testing.T) {
	api, b := newTestApi(t, nil)

	_, err := api.CreateClient(context.Background(), payload.ClientInput{FullName: "  ", Email: "bad"})

	validationErr, ok := endpoint.AsValidationError(err)
	if !ok {
		t.Fatalf("expected validation error, got %v", err)
	}

	if validationErr.Endpoint != string(CreateClient) {
		t.Fatalf("endpoint %s", validationErr.Endpoint)
	}

	if len(b.calls) != 0 {
		t.Fatalf("no request expected")
	}
}

func TestBlankIDSendsNothing(t *testing.T) {
	api, b := newTestApi(t, map[string]string{
		"GET /api/admin/workOrder/":    `{"workOrders":[{"_id":"w1"}],"total":1}`,
		"DELETE /api/admin/candidate/": `{"success":true}`,
	})

	ctx := context.Background()

	order, err := api.GetWorkOrder(ctx, "")
	if !errors.Is(err, query.ErrMissingID) {
		t.Fatalf("expected missing id, got %+v %v", order, err)
	}

	if validationErr, ok := endpoint.AsValidationError(err); !ok || validationErr.Endpoint != string(GetWorkOrder) {
		t.Fatalf("expected a validation error for %s, got %v", GetWorkOrder, err)
	}

	if err := api.DeleteCandidate(ctx, "  "); !errors.Is(err, query.ErrMissingID) {
		t.Fatalf("delete: expected missing id, got %v", err)
	}

	input := payload.StaffInput{FullName: "Sam Lee", Email: "sam@example.com"}
	if _, err := api.UpdateStaff(ctx, " ", input); !errors.Is(err, query.ErrMissingID) {
		t.Fatalf("update: expected missing id, got %v", err)
	}

	if len(b.calls) != 0 {
		t.Fatalf("no request expected, got %+v", b.calls)
	}
}

func TestServerErrorMessage(t *testing.T) {
	api, _ := newTestApi(t, nil)

	_, err := api.ListProjects(context.Background(), query.ListParams{})

	apiErr, ok := endpoint.AsApiError(err)
	if !ok || apiErr.Status != http.StatusNotFound || apiErr.Message != "route not found" {
		t.Fatalf("unexpected %v", err)
	}
}

func TestGroupedRequisitions(t *testing.T) {
	api, _ := newTestApi(t, map[string]string{
		"GET /api/admin/requisition": `{"requisitions":[
			{"_id":"1","requisitionNo":"R1","referenceNo":"A"},
			{"_id":"2","requisitionNo":"R1","referenceNo":"A"},
			{"_id":"3","requisitionNo":"R2","referenceNo":"A"}]}`,
	})

	groups, err := api.GroupedRequisitions(context.Background(), query.ListParams{})
	if err != nil {
		t.Fatalf("grouped: %v", err)
	}

	if len(groups) != 2 || len(groups[0].Items) != 2 {
		t.Fatalf("groups %+v", groups)
	}
}

func TestPipelineDraftSubmit(t *testing.T) {
	api, b := newTestApi(t, map[string]string{
		"POST /api/admin/Pipeline": `{"pipeline":{"_id":"p1","name":"Hiring"}}`,
	})

	draft := NewPipelineDraft(" Hiring ")
	draft.AddStage("Screening")
	draft.AddStage("Interview", "CV", " ")
	draft.AddStage("Offer", "Passport")

	if err := draft.MoveStage(2, 0); err != nil {
		t.Fatalf("move: %v", err)
	}

	if err := draft.RemoveStage(1); err != nil {
		t.Fatalf("remove: %v", err)
	}

	stages := draft.Stages()
	if len(stages) != 2 || stages[0].Name != "Offer" || stages[0].Order != 1 || stages[1].Name != "Interview" || stages[1].Order != 2 {
		t.Fatalf("stages %+v", stages)
	}

	if len(stages[1].RequiredDocuments) != 1 {
		t.Fatalf("blank documents should be dropped")
	}

	created, err := draft.Submit(context.Background(), api)
	if err != nil || created.ID != "p1" {
		t.Fatalf("submit %+v %v", created, err)
	}

	var sent payload.Pipeline
	if err := json.Unmarshal([]byte(b.last().Body), &sent); err != nil {
		t.Fatalf("body: %v", err)
	}

	if sent.Name != "Hiring" || len(sent.Stages) != 2 || sent.Stages[1].Order != 2 {
		t.Fatalf("sent %+v", sent)
	}

	if err := draft.MoveStage(0, 5); !errors.Is(err, ErrStageIndex) {
		t.Fatalf("expected index error")
	}

	if err := draft.RemoveStage(-1); !errors.Is(err, ErrStageIndex) {
		t.Fatalf("expected index error")
	}
}

func TestEmptyPipelineIsRejected(t *testing.T) {
	api, b := newTestApi(t, nil)

	_, err := NewPipelineDraft("Empty").Submit(context.Background(), api)
	if _, ok := endpoint.AsValidationError(err); !ok {
		t.Fatalf("expected validation error, got %v", err)
	}

	if len(b.calls) != 0 {
		t.Fatalf("no request expected")
	}
}
