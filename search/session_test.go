package search

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/tunepath-askeva/eram/api/payload"
	"github.com/tunepath-askeva/eram/api/recruiter"
	"github.com/tunepath-askeva/eram/pkg/metrics"
	"github.com/tunepath-askeva/eram/pkg/pagination"
)

type fakeSearcher struct {
	sourced     []recruiter.SourcedQuery
	exact       []recruiter.MatchQuery
	suggestions []recruiter.MatchQuery
}

func (f *fakeSearcher) SearchSourced(_ context.Context, q recruiter.SourcedQuery) (*pagination.Page[payload.Candidate], error) {
	f.sourced = append(f.sourced, q)
	return pagination.MakePage([]payload.Candidate{{ID: "s"}}, 1, 1, q.Page, q.Limit), nil
}

func (f *fakeSearcher) ExactMatch(_ context.Context, q recruiter.MatchQuery) (*pagination.Page[payload.Candidate], error) {
	f.exact = append(f.exact, q)
	return pagination.MakePage([]payload.Candidate{{ID: "e"}}, 1, 1, q.Page, q.Limit), nil
}

func (f *fakeSearcher) SuggestionMatch(_ context.Context, q recruiter.MatchQuery) (*pagination.Page[payload.Candidate], error) {
	f.suggestions = append(f.suggestions, q)
	return pagination.MakePage([]payload.Candidate{{ID: "m"}}, 1, 1, q.Page, q.Limit), nil
}

func (f *fakeSearcher) calls() int {
	return len(f.sourced) + len(f.exact) + len(f.suggestions)
}

func TestDefaultFiltersNeverFetch(t *testing.T) {
	collector := metrics.NewCollector()
	session := NewSession("job-1", 10, collector)
	searcher := &fakeSearcher{}

	session.Set(func(f *Filters) {
		*f = Filters{Experience: Range{0, 20}, Salary: Range{0, 2000000}, AgeRange: Range{18, 70}}
	})
	session.Apply()

	page, fetched, err := session.Run(context.Background(), searcher)
	if err != nil || fetched || page != nil {
		t.Fatalf("expected skip, got page=%v fetched=%v err=%v", page, fetched, err)
	}

	if searcher.calls() != 0 {
		t.Fatalf("no network call expected")
	}

	if _, ok := session.Request(); ok {
		t.Fatalf("request should be skipped")
	}

	expected := `
# HELP eram_search_skipped_total Searches not sent because every filter held its default.
# TYPE eram_search_skipped_total counter
eram_search_skipped_total 1
`

	if err := testutil.GatherAndCompare(collector.Registry(), strings.NewReader(expected), "eram_search_skipped_total"); err != nil {
		t.Fatalf("skipped metric: %v", err)
	}
}

func TestAnyFilterChangeResetsPage(t *testing.T) {
	edits := []func(*Filters){
		func(f *Filters) { f.Keywords = "welder" },
		func(f *Filters) { f.Experience = Range{3, 10} },
		func(f *Filters) { f.Skills = []string{"tig"} },
		func(f *Filters) { f.Location = "Doha" },
		func(f *Filters) { f.Company = "Acme" },
		func(f *Filters) { f.Salary = Range{100, 200} },
		func(f *Filters) { f.AgeRange = Range{20, 30} },
		func(f *Filters) { f.Nationality = "PH" },
		func(f *Filters) { f.NoticePeriod = "immediate" },
		func(f *Filters) { f.VisaStatus = "visit" },
		func(f *Filters) { f.Languages = []string{"hindi"} },
	}

	for i, edit := range edits {
		session := NewSession("job-1", 10, nil)
		session.SetPage(4)

		session.Set(edit)

		if session.Page() != 1 {
			t.Fatalf("edit %d: page %d, want 1", i, session.Page())
		}
	}
}

func TestNoOpEditKeepsPage(t *testing.T) {
	session := NewSession("job-1", 10, nil)
	session.Set(func(f *Filters) { f.Keywords = "welder" })
	session.Apply()
	session.SetPage(3)

	session.Set(func(f *Filters) { f.Keywords = " WELDER " })

	if session.Page() != 3 {
		t.Fatalf("equivalent edit should keep the page, got %d", session.Page())
	}
}

func TestFilterSearchSendsPage(t *testing.T) {
	session := NewSession("job-1", 25, nil)
	searcher := &fakeSearcher{}

	session.Set(func(f *Filters) { f.Skills = []string{"Welding"} })
	session.Apply()
	session.SetPage(2)

	if _, fetched, err := session.Run(context.Background(), searcher); !fetched || err != nil {
		t.Fatalf("expected fetch, err=%v", err)
	}

	q := searcher.sourced[0]
	if q.JobID != "job-1" || q.Page != 2 || q.Limit != 25 || q.Filters.Get("skills") != "welding" {
		t.Fatalf("query %+v", q)
	}
}

func TestSuggestionMatchClearsFilters(t *testing.T) {
	session := NewSession("job-1", 10, nil)
	searcher := &fakeSearcher{}

	session.Set(func(f *Filters) {
		f.Keywords = "welder"
		f.Location = "Doha"
	})
	session.Apply()
	session.SetPage(3)

	session.UseMatch(ModeSuggestion)

	if !session.Draft().IsDefault() || !session.Applied().IsDefault() {
		t.Fatalf("match mode should clear every filter")
	}

	if session.Mode() != ModeSuggestion || session.Page() != 1 {
		t.Fatalf("mode=%s page=%d", session.Mode(), session.Page())
	}

	page, fetched, err := session.Run(context.Background(), searcher)
	if err != nil || !fetched || page.Items[0].ID != "m" {
		t.Fatalf("suggestion run %v %v %v", page, fetched, err)
	}

	if len(searcher.sourced) != 0 || len(searcher.suggestions) != 1 {
		t.Fatalf("modes combined: %+v", searcher)
	}
}

func TestFilterEditLeavesMatchMode(t *testing.T) {
	session := NewSession("job-1", 10, nil)
	searcher := &fakeSearcher{}

	session.UseMatch(ModeExact)
	session.Set(func(f *Filters) { f.Company = "Acme" })

	if session.Mode() != ModeFilters {
		t.Fatalf("filter edit should turn match mode off")
	}

	session.Apply()

	if _, _, err := session.Run(context.Background(), searcher); err != nil {
		t.Fatalf("run: %v", err)
	}

	if len(searcher.exact) != 0 || len(searcher.sourced) != 1 {
		t.Fatalf("modes combined: %+v", searcher)
	}
}

func TestParseMode(t *testing.T) {
	for in, want := range map[string]Mode{"": ModeFilters, "Exact": ModeExact, "suggestion": ModeSuggestion} {
		got, err := ParseMode(in)
		if err != nil || got != want {
			t.Fatalf("ParseMode(%q) = %s, %v", in, got, err)
		}
	}

	if _, err := ParseMode("fuzzy"); err == nil {
		t.Fatalf("expected error")
	}
}

func TestScheduleDeliversLatestOnly(t *testing.T) {
	session := NewSession("job-1", 10, nil)
	searcher := &fakeSearcher{}
	d := NewDebouncer[Result](10 * time.Millisecond)

	results := make(chan Result, 4)
	deliver := func(r Result, err error) {
		if err != nil {
			t.Errorf("deliver: %v", err)
		}

		results <- r
	}

	for _, keyword := range []string{"we", "wel", "weld"} {
		session.Set(func(f *Filters) { f.Keywords = keyword })
		session.Apply()
		session.Schedule(context.Background(), d, searcher, deliver)
	}

	select {
	case r := <-results:
		if !r.Fetched || r.Page == nil {
			t.Fatalf("result %+v", r)
		}
	case <-time.After(time.Second):
		t.Fatalf("no result")
	}

	time.Sleep(30 * time.Millisecond)

	if len(searcher.sourced) != 1 || searcher.sourced[0].Filters.Get("keywords") != "weld" {
		t.Fatalf("sourced %+v", searcher.sourced)
	}
}

func TestScheduleSkipsDefaults(t *testing.T) {
	session := NewSession("job-1", 10, nil)
	searcher := &fakeSearcher{}
	d := NewDebouncer[Result](time.Hour)

	var got *Result
	session.Schedule(context.Background(), d, searcher, func(r Result, err error) { got = &r })

	if got == nil || got.Fetched || searcher.calls() != 0 {
		t.Fatalf("default search should be skipped immediately")
	}
}
