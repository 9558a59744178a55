package portal

import (
	"bytes"
	"errors"
	"io"
	"net/url"
	"strings"
	"testing"
)

type errCloser struct{ closed bool }

func (e *errCloser) Close() error {
	e.closed = true
	return errors.New("close failed")
}

func TestSortedValuesIsOrderIndependent(t *testing.T) {
	a := url.Values{"page": {"1"}, "search": {"ana"}}
	b := url.Values{}
	b.Set("search", "ana")
	b.Set("page", "1")

	if SortedValues(a) != SortedValues(b) {
		t.Fatalf("expected equal serialisation: %q vs %q", SortedValues(a), SortedValues(b))
	}
}

func TestJoinURL(t *testing.T) {
	cases := map[string][2]string{
		"http://localhost:5000/api/admin/candidate": {"http://localhost:5000/", "/api/admin/candidate"},
		"https://x.test/api/admin":                  {"https://x.test", "api/admin"},
		"https://x.test":                            {"https://x.test/", ""},
	}

	for want, in := range cases {
		if got := JoinURL(in[0], in[1]); got != want {
			t.Errorf("JoinURL(%q, %q) = %q, want %q", in[0], in[1], got, want)
		}
	}
}

func TestFilterNonEmpty(t *testing.T) {
	got := FilterNonEmpty([]string{" go ", "", "  ", "sql"})

	if len(got) != 2 || got[0] != "go" || got[1] != "sql" {
		t.Fatalf("unexpected result %#v", got)
	}
}

func TestCloseWithLog(t *testing.T) {
	c := &errCloser{}
	CloseWithLog(c)

	if !c.closed {
		t.Fatalf("close not called")
	}

	CloseWithLog(nil)
}

func TestReadWithSizeLimit(t *testing.T) {
	if data, err := ReadWithSizeLimit(nil, 0); data != nil || !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Fatalf("expected unexpected EOF, got %v %v", data, err)
	}

	if _, err := ReadWithSizeLimit(strings.NewReader("hello world"), 5); !errors.Is(err, ErrBodyTooLarge) {
		t.Fatalf("expected size limit error, got %v", err)
	}

	data, err := ReadWithSizeLimit(bytes.NewReader([]byte("hello")), 5)
	if err != nil || string(data) != "hello" {
		t.Fatalf("unexpected read: %q %v", data, err)
	}

	big := strings.Repeat("x", int(DefaultMaxBodySize)+1)
	if _, err := ReadWithSizeLimit(strings.NewReader(big), 0); !errors.Is(err, ErrBodyTooLarge) {
		t.Fatalf("default limit not applied: %v", err)
	}
}
