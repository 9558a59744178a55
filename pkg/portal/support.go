package portal

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"sort"
	"strings"
)

// FilterNonEmpty trims each value and drops the blank ones.
func FilterNonEmpty(values []string) []string {
	var out []string

	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			out = append(out, strings.TrimSpace(v))
		}
	}

	return out
}

// CloseWithLog closes c, logging instead of returning the error.
func CloseWithLog(c io.Closer) {
	if c == nil {
		return
	}

	if err := c.Close(); err != nil {
		slog.Warn("close", "error", err)
	}
}

// SortedValues encodes the values with keys and per-key values in lexical
// order, so equal argument sets always serialise to the same string.
func SortedValues(q url.Values) string {
	if len(q) == 0 {
		return ""
	}

	keys := make([]string, 0, len(q))
	for k := range q {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		vals := append([]string(nil), q[k]...)
		sort.Strings(vals)
		for _, v := range vals {
			pairs = append(pairs, url.QueryEscape(k)+"="+url.QueryEscape(v))
		}
	}

	return strings.Join(pairs, "&")
}

// JoinURL appends path to base, normalising the slash between them.
func JoinURL(base, path string) string {
	base = strings.TrimRight(strings.TrimSpace(base), "/")
	path = strings.TrimSpace(path)

	if path == "" {
		return base
	}

	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	return base + path
}

// DefaultMaxBodySize caps a response body when the client sets no limit.
const DefaultMaxBodySize int64 = 5 << 20

var ErrBodyTooLarge = errors.New("response body exceeds the size limit")

// ReadWithSizeLimit reads the whole body, failing once it passes limit bytes.
// A limit of zero or less means DefaultMaxBodySize.
func ReadWithSizeLimit(reader io.Reader, limit int64) ([]byte, error) {
	if reader == nil {
		return nil, io.ErrUnexpectedEOF
	}

	if limit <= 0 {
		limit = DefaultMaxBodySize
	}

	data, err := io.ReadAll(io.LimitReader(reader, limit+1))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	if int64(len(data)) > limit {
		return nil, fmt.Errorf("%w (%d bytes)", ErrBodyTooLarge, limit)
	}

	return data, nil
}
