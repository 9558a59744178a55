package candidates

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tunepath-askeva/eram/api/payload"
	"github.com/tunepath-askeva/eram/bulk"
	"github.com/tunepath-askeva/eram/cli/clitest"
)

func makeHandler(t *testing.T) (Handler, *clitest.Backend) {
	t.Helper()

	backend := clitest.MakeBackend(t)
	apis := clitest.MakeApis(t, backend)

	return MakeHandler(apis.Admin, apis.Recruiter, apis.Metrics), backend
}

func TestListPrintsCandidates(t *testing.T) {
	h, backend := makeHandler(t)
	backend.JSON("GET /api/admin/candidate", http.StatusOK,
		`{"candidates":[{"_id":"c1","fullName":"Amina Yusuf","jobTitle":"Welder","status":"sourced"}],"total":1,"totalPages":1,"currentPage":1,"pageSize":10}`)

	out := clitest.CaptureOutput(t, func() {
		if err := h.List(context.Background(), 1, "amina"); err != nil {
			t.Fatalf("list: %v", err)
		}
	})

	if !strings.Contains(out, "Amina Yusuf") || !strings.Contains(out, "Page 1 of 1, 1 total") {
		t.Fatalf("output: %q", out)
	}
}

func TestListSurfacesServerMessage(t *testing.T) {
	h, backend := makeHandler(t)
	backend.JSON("GET /api/admin/candidate", http.StatusForbidden, `{"message":"Not allowed"}`)

	err := h.List(context.Background(), 1, "")
	if err == nil || err.Error() != "Not allowed" {
		t.Fatalf("expected the server message, got %v", err)
	}
}

func TestExportWalksEveryPage(t *testing.T) {
	h, backend := makeHandler(t)
	backend.Handle("GET /api/admin/candidate", func(w http.ResponseWriter, r *http.Request) {
		page := r.URL.Query().Get("page")
		name := map[string]string{"1": "Engineer, Senior", "2": `Says "hi"`}[page]

		fmt.Fprintf(w, `{"candidates":[{"_id":"c%s","fullName":"Cand %s","jobTitle":%q}],"total":2,"totalPages":2,"currentPage":%s,"pageSize":100}`, page, page, name, page)
	})

	path := filepath.Join(t.TempDir(), "candidates.csv")

	var count int
	clitest.CaptureOutput(t, func() {
		var err error
		if count, err = h.Export(context.Background(), path, ""); err != nil {
			t.Fatalf("export: %v", err)
		}
	})

	if count != 2 || backend.Count("GET /api/admin/candidate") != 2 {
		t.Fatalf("count %d, requests %v", count, backend.Requests())
	}

	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}

	if len(records) != 3 || records[1][3] != "Engineer, Senior" || records[2][3] != `Says "hi"` {
		t.Fatalf("records: %q", records)
	}
}

func candidatePage(from, n int) string {
	items := make([]string, 0, n)
	for i := 0; i < n; i++ {
		items = append(items, fmt.Sprintf(`{"_id":"c%d","fullName":"Cand %d"}`, from+i, from+i))
	}

	return `{"candidates":[` + strings.Join(items, ",") + `]}`
}

func TestExportWithoutPageMetadata(t *testing.T) {
	h, backend := makeHandler(t)
	backend.Handle("GET /api/admin/candidate", func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("page") {
		case "1":
			fmt.Fprint(w, candidatePage(0, 100))
		case "2":
			fmt.Fprint(w, candidatePage(100, 100))
		default:
			fmt.Fprint(w, candidatePage(200, 7))
		}
	})

	path := filepath.Join(t.TempDir(), "candidates.csv")

	var count int
	clitest.CaptureOutput(t, func() {
		var err error
		if count, err = h.Export(context.Background(), path, ""); err != nil {
			t.Fatalf("export: %v", err)
		}
	})

	if count != 207 || backend.Count("GET /api/admin/candidate") != 3 {
		t.Fatalf("count %d, requests %v", count, backend.Requests())
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}

	if lines := strings.Count(string(raw), "\n"); lines != 208 {
		t.Fatalf("expected header and 207 rows, got %d lines", lines)
	}
}

func TestExportWarnsWhenThePageCapIsHit(t *testing.T) {
	h, backend := makeHandler(t)
	h.MaxExportPages = 2

	backend.Handle("GET /api/admin/candidate", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, candidatePage(0, 100))
	})

	path := filepath.Join(t.TempDir(), "candidates.csv")

	out := clitest.CaptureOutput(t, func() {
		count, err := h.Export(context.Background(), path, "")
		if err != nil || count != 200 {
			t.Fatalf("export: %d %v", count, err)
		}
	})

	if backend.Count("GET /api/admin/candidate") != 2 {
		t.Fatalf("requests %v", backend.Requests())
	}

	if !strings.Contains(out, "Stopped after 2 pages") {
		t.Fatalf("expected a truncation warning, got %q", out)
	}
}

func TestMoveReportsPartialFailure(t *testing.T) {
	h, backend := makeHandler(t)
	backend.JSON("PUT /api/recruiter/jobs/job-1/candidates/c1/status", http.StatusOK, `{"success":true}`)
	backend.JSON("PUT /api/recruiter/jobs/job-1/candidates/c2/status", http.StatusInternalServerError, `{"message":"stage locked"}`)

	var (
		report bulk.Report
		err    error
	)

	out := clitest.CaptureOutput(t, func() {
		report, err = h.Move(context.Background(), "job-1", []string{"c1", "c2", "c1"}, payload.StatusChange{Status: payload.StatusScreening})
	})

	if report.Requested != 2 || len(report.Succeeded) != 1 || len(report.Failed) != 1 {
		t.Fatalf("report: %+v", report)
	}

	var bulkErr *bulk.Error
	if !errors.As(err, &bulkErr) || bulkErr.Succeeded != 1 {
		t.Fatalf("expected an aggregate error, got %v", err)
	}

	if !strings.Contains(out, "Moved 1 of 2") || !strings.Contains(out, "stage locked") {
		t.Fatalf("output: %q", out)
	}
}
