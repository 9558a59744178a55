package query

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"sync"

	"github.com/tunepath-askeva/eram/pkg/cache"
	"github.com/tunepath-askeva/eram/pkg/endpoint"
)

var ErrDuplicateEndpoint = errors.New("duplicate endpoint")

// Name identifies one backend operation. Slices declare their names as
// constants and key their endpoint tables by them.
type Name string

// Endpoint declares one backend operation: where it lives, how its
// arguments are encoded and how the response is normalised.
type Endpoint[P any, R any] struct {
	Name        Name
	Method      string
	Check       func(P) error
	Path        func(P) string
	Params      func(P) url.Values
	Body        func(P) any
	Transform   func([]byte) (R, error)
	Provides    func(P) []cache.Tag
	Invalidates func(P) []cache.Tag
}

func (e Endpoint[P, R]) EndpointName() Name {
	return e.Name
}

func (e Endpoint[P, R]) HTTPMethod() string {
	if e.Method == "" {
		return http.MethodGet
	}

	return e.Method
}

// check runs before any cache lookup or request.
func (e Endpoint[P, R]) check(params P) error {
	if e.Check == nil {
		return nil
	}

	if err := e.Check(params); err != nil {
		return &endpoint.ValidationError{Endpoint: string(e.Name), Err: err}
	}

	return nil
}

func (e Endpoint[P, R]) path(params P) string {
	if e.Path == nil {
		return ""
	}

	return e.Path(params)
}

func (e Endpoint[P, R]) query(params P) url.Values {
	if e.Params == nil {
		return nil
	}

	return e.Params(params)
}

func (e Endpoint[P, R]) body(params P) any {
	if e.Body == nil {
		return nil
	}

	return e.Body(params)
}

func (e Endpoint[P, R]) provides(params P) []cache.Tag {
	if e.Provides == nil {
		return nil
	}

	return e.Provides(params)
}

func (e Endpoint[P, R]) invalidates(params P) []cache.Tag {
	if e.Invalidates == nil {
		return nil
	}

	return e.Invalidates(params)
}

func (e Endpoint[P, R]) transform(body []byte) (R, error) {
	if e.Transform != nil {
		return e.Transform(body)
	}

	return DecodeJSON[R](body)
}

// DecodeJSON is the default transform. An empty body decodes to the zero value.
func DecodeJSON[R any](body []byte) (R, error) {
	var out R

	if len(body) == 0 {
		return out, nil
	}

	if err := json.Unmarshal(body, &out); err != nil {
		return out, err
	}

	return out, nil
}

// Tags is a helper for fixed tag lists.
func Tags[P any](tags ...cache.Tag) func(P) []cache.Tag {
	return func(P) []cache.Tag {
		return tags
	}
}

type Definition interface {
	EndpointName() Name
	HTTPMethod() string
}

// Registry holds one definition per endpoint name.
type Registry struct {
	mu      sync.RWMutex
	entries map[Name]Definition
}

func NewRegistry() *Registry {
	return &Registry{entries: make(map[Name]Definition)}
}

func (r *Registry) Register(definitions ...Definition) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, definition := range definitions {
		name := definition.EndpointName()

		if name == "" {
			return fmt.Errorf("endpoint without a name: %s", definition.HTTPMethod())
		}

		if _, exists := r.entries[name]; exists {
			return fmt.Errorf("%w: %s", ErrDuplicateEndpoint, name)
		}

		r.entries[name] = definition
	}

	return nil
}

func (r *Registry) Lookup(name Name) (Definition, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	definition, ok := r.entries[name]

	return definition, ok
}

func (r *Registry) Names() []Name {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]Name, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}

	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })

	return names
}
