package admin

import (
	"net/http"
	"net/url"

	"github.com/tunepath-askeva/eram/api/payload"
	"github.com/tunepath-askeva/eram/pkg/cache"
	"github.com/tunepath-askeva/eram/pkg/pagination"
	"github.com/tunepath-askeva/eram/pkg/query"
)

func list[T any](name query.Name, path string, adapter payload.ListAdapter, tags ...cache.Tag) query.Endpoint[query.ListParams, *pagination.Page[T]] {
	return query.Endpoint[query.ListParams, *pagination.Page[T]]{
		Name:      name,
		Method:    http.MethodGet,
		Path:      func(query.ListParams) string { return path },
		Params:    func(p query.ListParams) url.Values { return p.Values() },
		Transform: payload.DecodeList[T](adapter),
		Provides:  query.Tags[query.ListParams](tags...),
	}
}

func fetchOne[T any](name query.Name, path string, keys []string, tags ...cache.Tag) query.Endpoint[query.ID, T] {
	return query.Endpoint[query.ID, T]{
		Name:      name,
		Method:    http.MethodGet,
		Check:     query.ID.Require,
		Path:      func(id query.ID) string { return id.Path(path) },
		Transform: payload.DecodeObject[T](keys...),
		Provides:  query.Tags[query.ID](tags...),
	}
}

func create[B any, T any](name query.Name, path string, keys []string, tags ...cache.Tag) query.Endpoint[B, T] {
	return query.Endpoint[B, T]{
		Name:        name,
		Method:      http.MethodPost,
		Path:        func(B) string { return path },
		Body:        func(body B) any { return body },
		Transform:   payload.DecodeObject[T](keys...),
		Invalidates: query.Tags[B](tags...),
	}
}

func update[B any, T any](name query.Name, method, path string, keys []string, tags ...cache.Tag) query.Endpoint[query.Update[B], T] {
	return query.Endpoint[query.Update[B], T]{
		Name:        name,
		Method:      method,
		Check:       func(u query.Update[B]) error { return query.ID(u.ID).Require() },
		Path:        func(u query.Update[B]) string { return query.ID(u.ID).Path(path) },
		Body:        func(u query.Update[B]) any { return u.Body },
		Transform:   payload.DecodeObject[T](keys...),
		Invalidates: query.Tags[query.Update[B]](tags...),
	}
}

func remove(name query.Name, path string, tags ...cache.Tag) query.Endpoint[query.ID, payload.Acknowledgement] {
	return query.Endpoint[query.ID, payload.Acknowledgement]{
		Name:        name,
		Method:      http.MethodDelete,
		Check:       query.ID.Require,
		Path:        func(id query.ID) string { return id.Path(path) },
		Transform:   payload.DecodeObject[payload.Acknowledgement](),
		Invalidates: query.Tags[query.ID](tags...),
	}
}

func keys(k ...string) []string {
	return append(k, "data")
}
