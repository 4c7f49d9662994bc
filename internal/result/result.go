// Package result holds the success-or-failure values returned by every
// repository operation. A result carries either a value or an error message,
// never both, so callers branch on IsOK instead of on error types.
package result

import (
	"encoding/json"

	"github.com/ukydev/wastefleet/internal/pagination"
)

// Result is the outcome of a single-value operation.
type Result[T any] struct {
	value   T
	err     string
	message string
	ok      bool
}

// OK returns a successful result holding value.
func OK[T any](value T) Result[T] {
	return Result[T]{value: value, ok: true}
}

// OKWithMessage returns a successful result with a user-facing message.
func OKWithMessage[T any](value T, message string) Result[T] {
	return Result[T]{value: value, message: message, ok: true}
}

// Fail returns a failed result. An empty err is replaced with a generic message.
func Fail[T any](err string) Result[T] {
	if err == "" {
		err = "Unknown error occurred"
	}
	return Result[T]{err: err}
}

// FailWithMessage returns a failed result with a user-facing message.
func FailWithMessage[T any](err, message string) Result[T] {
	r := Fail[T](err)
	r.message = message
	return r
}

// IsOK reports whether the result holds a value.
func (r Result[T]) IsOK() bool { return r.ok }

// Value returns the held value and whether the result succeeded.
func (r Result[T]) Value() (T, bool) { return r.value, r.ok }

// Error returns the failure message, or "" on success.
func (r Result[T]) Error() string { return r.err }

// Message returns the optional user-facing message.
func (r Result[T]) Message() string { return r.message }

type resultBody[T any] struct {
	Data    *T     `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
}

// MarshalJSON renders {"data": value} on success and {"error": msg} on failure.
func (r Result[T]) MarshalJSON() ([]byte, error) {
	body := resultBody[T]{Message: r.message}
	if r.ok {
		body.Data = &r.value
	} else {
		body.Error = r.err
	}
	return json.Marshal(body)
}

// Page is the outcome of a paginated list operation.
type Page[T any] struct {
	items []T
	links pagination.Links
	meta  pagination.Meta
	err   string
	ok    bool
}

// OKPage returns a successful page. A nil items slice is stored as empty.
func OKPage[T any](items []T, links pagination.Links, meta pagination.Meta) Page[T] {
	if items == nil {
		items = []T{}
	}
	return Page[T]{items: items, links: links, meta: meta, ok: true}
}

// FailPage returns a failed page.
func FailPage[T any](err string) Page[T] {
	if err == "" {
		err = "Unknown error occurred"
	}
	return Page[T]{err: err}
}

// IsOK reports whether the page holds items.
func (p Page[T]) IsOK() bool { return p.ok }

// Items returns the page contents. It is empty on failure.
func (p Page[T]) Items() []T { return p.items }

// Links returns the navigation links of a successful page.
func (p Page[T]) Links() pagination.Links { return p.links }

// Meta returns the pagination metadata of a successful page.
func (p Page[T]) Meta() pagination.Meta { return p.meta }

// Error returns the failure message, or "" on success.
func (p Page[T]) Error() string { return p.err }

type pageBody[T any] struct {
	Data  []T              `json:"data"`
	Links pagination.Links `json:"links"`
	Meta  pagination.Meta  `json:"meta"`
}

type errorBody struct {
	Error string `json:"error"`
}

// MarshalJSON renders {"data", "links", "meta"} on success and {"error"} on failure.
func (p Page[T]) MarshalJSON() ([]byte, error) {
	if !p.ok {
		return json.Marshal(errorBody{Error: p.err})
	}
	return json.Marshal(pageBody[T]{Data: p.items, Links: p.links, Meta: p.meta})
}
