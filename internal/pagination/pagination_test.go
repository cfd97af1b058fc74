package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func numbers(n int) []int {
	items := make([]int, n)
	for i := range items {
		items[i] = i + 1
	}
	return items
}

func TestPaginate_FirstPage(t *testing.T) {
	page := Paginate(numbers(12), 1, 5)

	assert.Equal(t, []int{1, 2, 3, 4, 5}, page.Items)
	assert.Equal(t, 3, page.Total)
	assert.False(t, page.HasPrev())
	assert.True(t, page.HasNext())
	assert.Equal(t, 0, page.Offset())
}

func TestPaginate_LastPartialPage(t *testing.T) {
	page := Paginate(numbers(12), 3, 5)

	assert.Equal(t, []int{11, 12}, page.Items)
	assert.True(t, page.HasPrev())
	assert.False(t, page.HasNext())
	assert.Equal(t, 10, page.Offset())
}

func TestPaginate_PageAfterEndYieldsLastPage(t *testing.T) {
	page := Paginate(numbers(12), 99, 5)

	assert.Equal(t, 3, page.Number)
	assert.Equal(t, []int{11, 12}, page.Items)
}

func TestPaginate_PageBeforeStartYieldsFirstPage(t *testing.T) {
	page := Paginate(numbers(7), -3, 5)

	assert.Equal(t, 1, page.Number)
	assert.Len(t, page.Items, 5)
}

func TestPaginate_EmptyListing(t *testing.T) {
	page := Paginate([]string{}, 4, 5)

	assert.Equal(t, 1, page.Number)
	assert.Equal(t, 1, page.Total)
	assert.True(t, page.IsEmpty())
	assert.False(t, page.HasPrev())
	assert.False(t, page.HasNext())
}

func TestPaginate_ExactMultiple(t *testing.T) {
	page := Paginate(numbers(10), 2, 5)

	assert.Equal(t, []int{6, 7, 8, 9, 10}, page.Items)
	assert.Equal(t, 2, page.Total)
	assert.False(t, page.HasNext())
}
