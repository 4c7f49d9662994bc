// Package pagination builds the links and metadata envelope attached to
// every paginated list response.
//
// The envelope is a wire contract: field names and the null-versus-zero
// semantics of each field must not change. Requested pages are never
// clamped, so page 999 of a 3 page result yields next == nil and prev
// pointing at page 998.
package pagination

import (
	"fmt"
)

// Links holds navigation URLs. A nil field is rendered as JSON null.
type Links struct {
	First *string `json:"first"`
	Last  *string `json:"last"`
	Prev  *string `json:"prev"`
	Next  *string `json:"next"`
}

// Meta describes the position of a page within the full result set.
type Meta struct {
	CurrentPage int64  `json:"current_page"`
	From        *int64 `json:"from"`
	LastPage    int64  `json:"last_page"`
	Path        string `json:"path"`
	PerPage     int64  `json:"per_page"`
	To          *int64 `json:"to"`
	Total       int64  `json:"total"`
}

// TotalPages returns ceil(total/limit). A non-positive limit yields 0.
func TotalPages(total, limit int64) int64 {
	if limit <= 0 || total <= 0 {
		return 0
	}
	return (total + limit - 1) / limit
}

// BuildLinks returns the first/last/prev/next links for page.
func BuildLinks(page, totalPages int64, basePath string) Links {
	var links Links
	if totalPages > 0 {
		links.First = pageURL(basePath, 1)
		links.Last = pageURL(basePath, totalPages)
	}
	if page > 1 {
		links.Prev = pageURL(basePath, page-1)
	}
	if page < totalPages {
		links.Next = pageURL(basePath, page+1)
	}
	return links
}

// BuildMeta returns the metadata record for page of a result set holding
// total items split into pages of limit items.
func BuildMeta(page, limit, total int64, basePath string) Meta {
	meta := Meta{
		CurrentPage: page,
		LastPage:    TotalPages(total, limit),
		Path:        basePath,
		PerPage:     limit,
		Total:       total,
	}
	if total > 0 {
		from := (page-1)*limit + 1
		to := min(page*limit, total)
		meta.From = &from
		meta.To = &to
	}
	return meta
}

func pageURL(basePath string, page int64) *string {
	u := fmt.Sprintf("%s?page=%d", basePath, page)
	return &u
}
