package query

import (
	"errors"
	"net/url"
	"strings"

	"github.com/tunepath-askeva/eram/pkg/pagination"
)

// ListParams are the arguments shared by every paginated list endpoint.
type ListParams struct {
	Page     int
	PageSize int
	Search   string
	Filters  map[string]string
}

func (p ListParams) Values() url.Values {
	values := url.Values{}

	for key, value := range p.Filters {
		if value = strings.TrimSpace(value); value != "" {
			values.Set(key, value)
		}
	}

	if search := strings.TrimSpace(p.Search); search != "" {
		values.Set("search", search)
	}

	return pagination.Paginate{Page: p.Page, Limit: p.PageSize}.Apply(values)
}

var ErrMissingID = errors.New("missing id")

// ID addresses a single resource.
type ID string

// Require fails for an id that is blank once trimmed, which would otherwise
// address the collection instead of the resource.
func (id ID) Require() error {
	if strings.TrimSpace(string(id)) == "" {
		return ErrMissingID
	}

	return nil
}

func (id ID) Path(prefix string) string {
	return prefix + "/" + url.PathEscape(strings.TrimSpace(string(id)))
}

// Update carries the id of the resource and the payload to send.
type Update[B any] struct {
	ID   string
	Body B
}
