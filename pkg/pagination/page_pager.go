package pagination

import (
	"context"
	"fmt"

	"github.com/saturnines/litmus-go/pkg/errors"
)

// DefaultPageSize is used when a pager is built with a non-positive size.
const DefaultPageSize = 100

// maxPages stops a pager whose server keeps reporting more items forever.
const maxPages = 10000

// Page is one fetched page and the server's count of all items.
type Page[T any] struct {
	Items []T
	Total int
}

// FetchFunc fetches one page. page is 0-based.
type FetchFunc[T any] func(ctx context.Context, page, limit int) (Page[T], error)

// PagePager walks "page + limit + total" pagination. It stops when the
// reported total has been seen, or on a short or empty page.
type PagePager[T any] struct {
	fetch FetchFunc[T]

	page    int
	size    int
	first   bool
	hasMore bool
	seen    int
	fetched int
}

// NewPagePager builds a PagePager. A negative startPage becomes 0 and a
// non-positive pageSize becomes DefaultPageSize.
func NewPagePager[T any](fetch FetchFunc[T], startPage, pageSize int) *PagePager[T] {
	if startPage < 0 {
		startPage = 0
	}
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &PagePager[T]{
		fetch:   fetch,
		page:    startPage,
		size:    pageSize,
		first:   true,
		hasMore: true,
	}
}

// HasMore reports whether Next may return more items.
func (p *PagePager[T]) HasMore() bool {
	return p.hasMore
}

// Next fetches the next page. It returns (nil, nil) once done.
func (p *PagePager[T]) Next(ctx context.Context) ([]T, error) {
	if !p.hasMore {
		return nil, nil
	}
	if !p.first {
		p.page++
	}
	p.first = false

	if p.fetched >= maxPages {
		p.hasMore = false
		return nil, errors.WrapError(
			fmt.Errorf("gave up after %d pages", maxPages),
			errors.ErrPagination,
			"fetch page",
		)
	}

	page, err := p.fetch(ctx, p.page, p.size)
	if err != nil {
		p.hasMore = false
		return nil, err
	}
	p.fetched++
	p.seen += len(page.Items)

	switch {
	case len(page.Items) == 0:
		p.hasMore = false
	case page.Total > 0:
		p.hasMore = p.seen < page.Total
	default:
		p.hasMore = len(page.Items) >= p.size
	}
	return page.Items, nil
}

// Collect drains p and returns every item.
func Collect[T any](ctx context.Context, p *PagePager[T]) ([]T, error) {
	var all []T
	for p.HasMore() {
		items, err := p.Next(ctx)
		if err != nil {
			return nil, err
		}
		all = append(all, items...)
	}
	return all, nil
}
