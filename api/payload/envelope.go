package payload

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/tunepath-askeva/eram/pkg/pagination"
)

var ErrEnvelopeShape = errors.New("unexpected envelope shape")

// ListAdapter names the envelope field that carries a list's items. Legacy
// is the field an older backend used for the same list.
type ListAdapter struct {
	Key    string
	Legacy string
}

func Items(key string) ListAdapter {
	return ListAdapter{Key: key}
}

func (a ListAdapter) WithLegacy(key string) ListAdapter {
	a.Legacy = key
	return a
}

// DecodeList normalises a list envelope into a Page. Missing metadata falls
// back to zero; a missing items field is an error.
func DecodeList[T any](adapter ListAdapter) func([]byte) (*pagination.Page[T], error) {
	return func(body []byte) (*pagination.Page[T], error) {
		var envelope map[string]json.RawMessage
		if err := json.Unmarshal(body, &envelope); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrEnvelopeShape, err)
		}

		raw, ok := adapter.lookup(envelope)
		if !ok {
			return nil, fmt.Errorf("%w: no %q field", ErrEnvelopeShape, adapter.describe())
		}

		var items []T
		if !isNull(raw) {
			if err := json.Unmarshal(raw, &items); err != nil {
				return nil, fmt.Errorf("%w: %s: %v", ErrEnvelopeShape, adapter.Key, err)
			}
		}

		meta := metadata(envelope)

		return pagination.MakePage(
			items,
			meta.number("total", "totalCount", "count"),
			meta.number("totalPages"),
			meta.number("currentPage", "page"),
			meta.number("pageSize", "limit"),
		), nil
	}
}

// DecodeObject reads a single resource from the first present key. Without
// keys the whole body is the resource and an empty body is the zero value.
func DecodeObject[T any](keys ...string) func([]byte) (T, error) {
	return func(body []byte) (T, error) {
		var out T

		if strings.TrimSpace(string(body)) == "" {
			if len(keys) == 0 {
				return out, nil
			}

			return out, fmt.Errorf("%w: empty body, expected %s", ErrEnvelopeShape, strings.Join(keys, "|"))
		}

		if len(keys) == 0 {
			if err := json.Unmarshal(body, &out); err != nil {
				return out, fmt.Errorf("%w: %v", ErrEnvelopeShape, err)
			}

			return out, nil
		}

		var envelope map[string]json.RawMessage
		if err := json.Unmarshal(body, &envelope); err != nil {
			return out, fmt.Errorf("%w: %v", ErrEnvelopeShape, err)
		}

		for _, key := range keys {
			if raw, ok := envelope[key]; ok && !isNull(raw) {
				if err := json.Unmarshal(raw, &out); err != nil {
					return out, fmt.Errorf("%w: %s: %v", ErrEnvelopeShape, key, err)
				}

				return out, nil
			}
		}

		return out, fmt.Errorf("%w: none of %s present", ErrEnvelopeShape, strings.Join(keys, "|"))
	}
}

func (a ListAdapter) lookup(envelope map[string]json.RawMessage) (json.RawMessage, bool) {
	for _, source := range []map[string]json.RawMessage{envelope, nested(envelope, "data")} {
		if raw, ok := source[a.Key]; ok {
			return raw, true
		}

		if a.Legacy != "" {
			if raw, ok := source[a.Legacy]; ok {
				return raw, true
			}
		}
	}

	return nil, false
}

func (a ListAdapter) describe() string {
	if a.Legacy == "" {
		return a.Key
	}

	return a.Key + "|" + a.Legacy
}

type meta []map[string]json.RawMessage

func metadata(envelope map[string]json.RawMessage) meta {
	return meta{
		envelope,
		nested(envelope, "pagination"),
		nested(envelope, "data"),
	}
}

func (m meta) number(keys ...string) int {
	for _, source := range m {
		for _, key := range keys {
			if raw, ok := source[key]; ok {
				if n, ok := toInt(raw); ok {
					return n
				}
			}
		}
	}

	return 0
}

func nested(envelope map[string]json.RawMessage, key string) map[string]json.RawMessage {
	raw, ok := envelope[key]
	if !ok {
		return nil
	}

	var out map[string]json.RawMessage
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil
	}

	return out
}

func toInt(raw json.RawMessage) (int, bool) {
	var value any
	if err := json.Unmarshal(raw, &value); err != nil {
		return 0, false
	}

	switch v := value.(type) {
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, false
		}

		return int(v), true
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))

		return n, err == nil
	default:
		return 0, false
	}
}

func isNull(raw json.RawMessage) bool {
	return strings.TrimSpace(string(raw)) == "null"
}
