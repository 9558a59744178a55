package pagination

import (
	"encoding/json"
	"net/url"
	"testing"
)

func TestMakePaginateClamps(t *testing.T) {
	cases := []struct {
		page, limit         int
		wantPage, wantLimit int
	}{
		{0, 0, 1, 10},
		{-3, 5, 1, 5},
		{4, 500, 4, 100},
		{2, 100, 2, 100},
	}

	for _, c := range cases {
		got := MakePaginate(c.page, c.limit)
		if got.Page != c.wantPage || got.Limit != c.wantLimit {
			t.Fatalf("MakePaginate(%d,%d) = %+v", c.page, c.limit, got)
		}
	}
}

func TestMakeFrom(t *testing.T) {
	got := MakeFrom(url.Values{"page": {"3"}, "limit": {"abc"}})
	if got.Page != 3 || got.Limit != DefaultLimit {
		t.Fatalf("unexpected %+v", got)
	}
}

func TestPaginateApply(t *testing.T) {
	values := Paginate{Page: 0, Limit: 1000}.Apply(url.Values{"search": {"ana"}})

	if values.Get("page") != "1" || values.Get("limit") != "100" || values.Get("search") != "ana" {
		t.Fatalf("unexpected %v", values)
	}
}

func TestMakePageDerivesTotalPages(t *testing.T) {
	p := MakePage([]int{1, 2}, 5, 0, 2, 2)

	if p.TotalPages != 3 {
		t.Fatalf("expected 3 pages got %d", p.TotalPages)
	}

	if !p.HasNext() || !p.HasPrevious() {
		t.Fatalf("navigation mismatch")
	}
}

func TestMakePageKeepsAllKeys(t *testing.T) {
	raw, err := json.Marshal(MakePage[string](nil, 0, 0, 0, 0))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	for _, key := range []string{"items", "total", "totalPages", "currentPage", "pageSize"} {
		if _, ok := decoded[key]; !ok {
			t.Fatalf("missing key %s in %s", key, raw)
		}
	}

	if string(raw) != `{"items":[],"total":0,"totalPages":0,"currentPage":0,"pageSize":0}` {
		t.Fatalf("unexpected json %s", raw)
	}
}

func TestHydratePage(t *testing.T) {
	src := MakePage([]string{"a", "bb"}, 2, 1, 1, 10)
	dst := HydratePage(src, func(s string) int { return len(s) })

	if len(dst.Items) != 2 || dst.Items[1] != 2 {
		t.Fatalf("unexpected hydration")
	}

	if dst.Total != src.Total || dst.CurrentPage != src.CurrentPage {
		t.Fatalf("metadata mismatch")
	}

	if HydratePage[int, int](nil, func(i int) int { return i }).Items == nil {
		t.Fatalf("nil source should hydrate to empty page")
	}
}

func TestPageClone(t *testing.T) {
	page := MakePage([]string{"a", "b"}, 2, 1, 1, 10)
	copied := page.Clone()

	copied.Items[0] = "z"
	copied.Total = 5

	if page.Items[0] != "a" || page.Total != 2 {
		t.Fatalf("original changed: %+v", page)
	}

	var missing *Page[string]
	if missing.Clone() != nil {
		t.Fatalf("nil page should clone to nil")
	}

	if empty := (&Page[string]{}).Clone(); empty.Items == nil {
		t.Fatalf("items should never be nil")
	}
}
