package candidates

import (
	"context"
	"fmt"
	"strconv"

	"github.com/tunepath-askeva/eram/api/payload"
	"github.com/tunepath-askeva/eram/bulk"
	"github.com/tunepath-askeva/eram/export"
	"github.com/tunepath-askeva/eram/pkg/cli"
	"github.com/tunepath-askeva/eram/pkg/pagination"
	"github.com/tunepath-askeva/eram/pkg/portal"
	"github.com/tunepath-askeva/eram/pkg/query"
)

// maxExportPages bounds an export at ten thousand candidates.
const maxExportPages = 100

func (h Handler) List(ctx context.Context, page int, search string) error {
	result, err := h.Admin.ListCandidates(ctx, query.ListParams{Page: page, PageSize: h.PageSize, Search: search})
	if err != nil {
		return err
	}

	Print(result)

	return nil
}

// Export writes every candidate matching search to path as CSV. Without
// page metadata from the server, a full page means there may be another.
func (h Handler) Export(ctx context.Context, path, search string) (int, error) {
	var rows []payload.Candidate

	limit := h.MaxExportPages
	if limit <= 0 {
		limit = maxExportPages
	}

	truncated := false

	for page := 1; ; page++ {
		result, err := h.Admin.ListCandidates(ctx, query.ListParams{
			Page:     page,
			PageSize: pagination.MaxLimit,
			Search:   search,
		})

		if err != nil {
			return 0, err
		}

		rows = append(rows, result.Items...)

		if !hasMore(result, page, pagination.MaxLimit) {
			break
		}

		if page == limit {
			truncated = true

			break
		}
	}

	if err := export.WriteFile(path, export.CandidateColumns(), rows); err != nil {
		return 0, err
	}

	cli.Successln(fmt.Sprintf("Exported %d candidates to %s", len(rows), path))

	if truncated {
		cli.Warningln(fmt.Sprintf("Stopped after %d pages, more candidates match. Narrow the search to export the rest.", limit))
	}

	return len(rows), nil
}

func hasMore(result *pagination.Page[payload.Candidate], page, requested int) bool {
	if len(result.Items) == 0 {
		return false
	}

	if result.TotalPages > 0 {
		return page < result.TotalPages
	}

	size := result.PageSize
	if size <= 0 {
		size = requested
	}

	return len(result.Items) >= size
}

// Move sends one status change per candidate. The report is printed before
// the aggregate error is returned.
func (h Handler) Move(ctx context.Context, jobID string, ids []string, change payload.StatusChange) (bulk.Report, error) {
	runner := bulk.Runner{Concurrency: h.Concurrency, Metrics: h.Metrics}

	report := h.Recruiter.MoveCandidates(ctx, jobID, ids, change, runner)

	if len(report.Succeeded) > 0 {
		cli.Successln(fmt.Sprintf("Moved %d of %d candidates to %s", len(report.Succeeded), report.Requested, change.Status))
	}

	for id, cause := range report.Failed {
		cli.Errorln(fmt.Sprintf("   > %s: %v", id, cause))
	}

	return report, report.Err()
}

// Print renders a page of candidates and its position.
func Print(page *pagination.Page[payload.Candidate]) {
	if page == nil || len(page.Items) == 0 {
		cli.Warningln("No candidates found.")

		return
	}

	rows := make([][]string, 0, len(page.Items))
	for _, c := range page.Items {
		rows = append(rows, []string{
			c.ID,
			cli.Truncate(c.FullName, 28),
			cli.Truncate(c.Title(), 24),
			c.TotalExperience,
			portal.NewStringable(c.Status).ToTitle(),
		})
	}

	cli.Table([]string{"ID", "NAME", "TITLE", "EXPERIENCE", "STATUS"}, rows)
	cli.Grayln("Page " + strconv.Itoa(page.CurrentPage) + " of " + strconv.Itoa(page.TotalPages) + ", " + strconv.Itoa(page.Total) + " total")
}
