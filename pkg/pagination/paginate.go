package pagination

import (
	"net/url"
	"strconv"
)

const MinPage = 1
const MaxLimit = 100
const DefaultLimit = 10

// Paginate is the page/limit pair sent with every list request.
type Paginate struct {
	Page  int
	Limit int
}

func MakePaginate(page, limit int) Paginate {
	if page < MinPage {
		page = MinPage
	}

	if limit < 1 {
		limit = DefaultLimit
	}

	if limit > MaxLimit {
		limit = MaxLimit
	}

	return Paginate{
		Page:  page,
		Limit: limit,
	}
}

// MakeFrom reads page and limit from a query string, clamping bad input.
func MakeFrom(values url.Values) Paginate {
	page := MinPage
	limit := DefaultLimit

	if values.Get("page") != "" {
		if tPage, err := strconv.Atoi(values.Get("page")); err == nil {
			page = tPage
		}
	}

	if values.Get("limit") != "" {
		if tLimit, err := strconv.Atoi(values.Get("limit")); err == nil {
			limit = tLimit
		}
	}

	return MakePaginate(page, limit)
}

func (p Paginate) Apply(values url.Values) url.Values {
	if values == nil {
		values = url.Values{}
	}

	clamped := MakePaginate(p.Page, p.Limit)
	values.Set("page", strconv.Itoa(clamped.Page))
	values.Set("limit", strconv.Itoa(clamped.Limit))

	return values
}
