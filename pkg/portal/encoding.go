package portal

import (
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/zstd"
)

type composedReadCloser struct {
	io.Reader
	io.Closer
}

type multiCloser []io.Closer

func (m multiCloser) Close() error {
	var first error

	for _, c := range m {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}

	return first
}

type noErrorCloseFunc func()

func (f noErrorCloseFunc) Close() error {
	f()
	return nil
}

var ErrUnsupportedEncoding = errors.New("unsupported content encoding")

// wrapHTTPBody decodes the response body according to its Content-Encoding.
// Stacked codings are undone in reverse order of application, so the last
// listed is decoded first.
func wrapHTTPBody(resp *http.Response) (io.ReadCloser, string, error) {
	encodings := contentEncodings(resp.Header.Get("Content-Encoding"))

	var body io.ReadCloser = resp.Body

	for i := len(encodings) - 1; i >= 0; i-- {
		decoded, err := decodeLayer(body, encodings[i])
		if err != nil {
			_ = body.Close()

			return nil, strings.Join(encodings, ", "), err
		}

		body = decoded
	}

	return body, strings.Join(encodings, ", "), nil
}

func contentEncodings(header string) []string {
	var encodings []string

	for _, part := range strings.Split(header, ",") {
		encoding := strings.TrimSpace(strings.ToLower(part))

		if encoding != "" && encoding != "identity" {
			encodings = append(encodings, encoding)
		}
	}

	return encodings
}

// decodeLayer wraps body with one decoder. Closing the result closes body.
func decodeLayer(body io.ReadCloser, encoding string) (io.ReadCloser, error) {
	switch encoding {
	case "br":
		return composedReadCloser{Reader: brotli.NewReader(body), Closer: body}, nil
	case "gzip", "x-gzip":
		reader, err := gzip.NewReader(body)
		if err != nil {
			return nil, fmt.Errorf("prepare gzip decoder: %w", err)
		}

		return composedReadCloser{Reader: reader, Closer: multiCloser{reader, body}}, nil
	case "zstd", "zstandard":
		decoder, err := zstd.NewReader(body)
		if err != nil {
			return nil, fmt.Errorf("prepare zstd decoder: %w", err)
		}

		return composedReadCloser{Reader: decoder, Closer: multiCloser{noErrorCloseFunc(decoder.Close), body}}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedEncoding, encoding)
	}
}
