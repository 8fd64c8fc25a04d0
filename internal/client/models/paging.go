package models

import "fmt"

// PageSizeValues is the fixed set of selectable page lengths. It is not
// user-editable; the first entry is the default for every list view.
var PageSizeValues = []int{10, 25, 50, 100}

// PageRequest drives the next list fetch. Any change to either field makes
// the owning view reload from the server.
type PageRequest struct {
	Page     int `json:"page"`
	PageSize int `json:"pageSize"`
}

// DefaultPageRequest returns the first page with the default page size.
func DefaultPageRequest() PageRequest {
	return PageRequest{Page: 0, PageSize: PageSizeValues[0]}
}

// ValidPageSize reports whether size is one of the allowed page lengths.
func ValidPageSize(size int) bool {
	for _, v := range PageSizeValues {
		if v == size {
			return true
		}
	}
	return false
}

// Page is a server-paginated result set plus pagination metadata.
//
// The server guarantees pages == ceil(count/size) (0 when empty),
// hasPrevious == index > 0 and hasNext == index < pages-1. Items are spliced
// in place by add/update/delete callbacks without recomputing count/pages;
// the totals intentionally go stale until the next fetch.
type Page[T any] struct {
	Items       []T  `json:"items"`
	Index       int  `json:"index"`
	Size        int  `json:"size"`
	Count       int  `json:"count"`
	Pages       int  `json:"pages"`
	HasPrevious bool `json:"hasPrevious"`
	HasNext     bool `json:"hasNext"`
}

// DisplayRange renders the "X-Y" part of the "Showing X-Y of N total items."
// readout for the current page.
func (p Page[T]) DisplayRange() string {
	switch {
	case p.Count <= p.Size:
		return fmt.Sprintf("1-%d", p.Count)
	case p.Index+1 == p.Pages:
		return fmt.Sprintf("%d-%d", p.Size*p.Index+1, p.Count)
	default:
		return fmt.Sprintf("%d-%d", (p.Index+1)*p.Size-p.Size+1, (p.Index+1)*p.Size)
	}
}
