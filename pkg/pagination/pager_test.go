package pagination

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	literrors "github.com/saturnines/litmus-go/pkg/errors"
)

// sliceFetcher serves items in pages and records every call.
type sliceFetcher struct {
	items     []int
	total     int
	calls     []int
	failAfter int
}

func (f *sliceFetcher) fetch(_ context.Context, page, limit int) (Page[int], error) {
	f.calls = append(f.calls, page)
	if f.failAfter > 0 && len(f.calls) > f.failAfter {
		return Page[int]{}, errors.New("boom")
	}
	start := page * limit
	if start >= len(f.items) {
		return Page[int]{Total: f.total}, nil
	}
	end := start + limit
	if end > len(f.items) {
		end = len(f.items)
	}
	return Page[int]{Items: f.items[start:end], Total: f.total}, nil
}

func seq(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func TestPagePager_StopsAtTotal(t *testing.T) {
	f := &sliceFetcher{items: seq(25), total: 25}
	all, err := Collect(context.Background(), NewPagePager(f.fetch, 0, 10))

	require.NoError(t, err)
	assert.Equal(t, seq(25), all)
	assert.Equal(t, []int{0, 1, 2}, f.calls)
}

func TestPagePager_ExactMultipleStopsWithoutExtraCall(t *testing.T) {
	f := &sliceFetcher{items: seq(20), total: 20}
	all, err := Collect(context.Background(), NewPagePager(f.fetch, 0, 10))

	require.NoError(t, err)
	assert.Len(t, all, 20)
	assert.Equal(t, []int{0, 1}, f.calls)
}

func TestPagePager_NoTotalStopsOnShortPage(t *testing.T) {
	f := &sliceFetcher{items: seq(15)}
	all, err := Collect(context.Background(), NewPagePager(f.fetch, 0, 10))

	require.NoError(t, err)
	assert.Len(t, all, 15)
	assert.Equal(t, []int{0, 1}, f.calls)
}

func TestPagePager_EmptyFirstPage(t *testing.T) {
	f := &sliceFetcher{total: 0}
	p := NewPagePager(f.fetch, 0, 10)

	items, err := p.Next(context.Background())
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.False(t, p.HasMore())

	items, err = p.Next(context.Background())
	assert.NoError(t, err)
	assert.Nil(t, items)
}

func TestPagePager_Defaults(t *testing.T) {
	var gotPage, gotLimit int
	p := NewPagePager(func(_ context.Context, page, limit int) (Page[int], error) {
		gotPage, gotLimit = page, limit
		return Page[int]{}, nil
	}, -3, 0)

	_, err := p.Next(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, gotPage)
	assert.Equal(t, DefaultPageSize, gotLimit)
}

func TestPagePager_FetchErrorStops(t *testing.T) {
	f := &sliceFetcher{items: seq(30), total: 30, failAfter: 1}
	p := NewPagePager(f.fetch, 0, 10)

	_, err := Collect(context.Background(), p)
	require.Error(t, err)
	assert.False(t, p.HasMore())
}

func TestPagePager_GivesUpOnEndlessServer(t *testing.T) {
	p := NewPagePager(func(_ context.Context, page, limit int) (Page[int], error) {
		return Page[int]{Items: []int{page}}, nil
	}, 0, 1)

	_, err := Collect(context.Background(), p)
	require.Error(t, err)
	assert.True(t, literrors.Is(err, literrors.ErrPagination))
}
