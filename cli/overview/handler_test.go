package overview

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/tunepath-askeva/eram/cli/clitest"
	"github.com/tunepath-askeva/eram/metal/env"
	"github.com/tunepath-askeva/eram/pkg/portal"
	"github.com/tunepath-askeva/eram/whatsapp"
)

func makeHandler(t *testing.T) (Handler, *clitest.Backend) {
	t.Helper()

	backend := clitest.MakeBackend(t)
	apis := clitest.MakeApis(t, backend)

	return MakeHandler(apis.Admin, apis.WhatsApp), backend
}

func TestDashboard(t *testing.T) {
	h, backend := makeHandler(t)
	backend.JSON("GET /api/admin/dashboard", http.StatusOK,
		`{"data":{"totalCandidates":42,"pendingApprovals":3,"candidatesByStage":{"screening":5,"sourced":30}}}`)

	out := clitest.CaptureOutput(t, func() {
		if err := h.Dashboard(context.Background()); err != nil {
			t.Fatalf("dashboard: %v", err)
		}
	})

	for _, want := range []string{"42", "Pending approvals", "screening", "sourced"} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in %q", want, out)
		}
	}

	if strings.Index(out, "screening") > strings.Index(out, "sourced") {
		t.Fatalf("stages not sorted: %q", out)
	}
}

func TestTemplatesListsApprovedOnly(t *testing.T) {
	h, backend := makeHandler(t)
	backend.JSON("GET /v1/templates", http.StatusOK,
		`{"templates":[{"id":"1","name":"interview_invite","status":"APPROVED","language":"en"},{"id":"2","name":"draft_offer","status":"PENDING"}]}`)

	out := clitest.CaptureOutput(t, func() {
		if err := h.Templates(context.Background()); err != nil {
			t.Fatalf("templates: %v", err)
		}
	})

	if !strings.Contains(out, "interview_invite") || strings.Contains(out, "draft_offer") {
		t.Fatalf("output: %q", out)
	}
}

func TestTemplatesWithoutApiKey(t *testing.T) {
	backend := clitest.MakeBackend(t)
	apis := clitest.MakeApis(t, backend)

	provider := whatsapp.NewProvider(portal.NewDefaultClient(nil), env.WhatsAppEnvironment{BaseURL: backend.URL})
	h := MakeHandler(apis.Admin, provider)

	out := clitest.CaptureOutput(t, func() {
		if err := h.Templates(context.Background()); err != nil {
			t.Fatalf("templates: %v", err)
		}
	})

	if !strings.Contains(out, "not configured") || len(backend.Requests()) != 0 {
		t.Fatalf("output %q, requests %v", out, backend.Requests())
	}
}

func TestRequisitionsGrouped(t *testing.T) {
	h, backend := makeHandler(t)
	backend.JSON("GET /api/admin/requisition", http.StatusOK, `{"requisitions":[
		{"_id":"r1","requisitionNo":"RQ-1","referenceNo":"A","title":"Welder"},
		{"_id":"r2","requisitionNo":"RQ-2","referenceNo":"","title":"Fitter"},
		{"_id":"r3","requisitionNo":"RQ-1","referenceNo":"A","title":"Rigger"}
	]}`)

	out := clitest.CaptureOutput(t, func() {
		if err := h.Requisitions(context.Background(), 1); err != nil {
			t.Fatalf("requisitions: %v", err)
		}
	})

	if !strings.Contains(out, "Requisition RQ-1 / Reference A (2)") || !strings.Contains(out, "Requisition RQ-2 / Reference - (1)") {
		t.Fatalf("output: %q", out)
	}

	if strings.Index(out, "RQ-1") > strings.Index(out, "RQ-2") {
		t.Fatalf("groups out of first-seen order: %q", out)
	}
}
