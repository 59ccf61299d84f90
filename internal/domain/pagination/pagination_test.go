package pagination

import (
	"math"
	"testing"

	domainerrors "timesheet/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sequence(n int) []int {
	items := make([]int, n)
	for i := range items {
		items[i] = i + 1
	}

	return items
}

func TestPaginate_MiddlePage(t *testing.T) {
	page, err := Paginate(sequence(25), 2, 10)
	require.NoError(t, err)

	assert.Equal(t, sequence(25)[10:20], page.Items)
	assert.Equal(t, 2, page.PageNumber)
	assert.Equal(t, 10, page.PageSize)
	assert.Equal(t, 25, page.TotalCount)
	assert.Equal(t, 3, page.TotalPages)
	assert.True(t, page.HasNext())
	assert.True(t, page.HasPrevious())
}

func TestPaginate_LastPartialPage(t *testing.T) {
	page, err := Paginate(sequence(25), 3, 10)
	require.NoError(t, err)

	assert.Len(t, page.Items, 5)
	assert.Equal(t, []int{21, 22, 23, 24, 25}, page.Items)
	assert.False(t, page.HasNext())
	assert.True(t, page.HasPrevious())
}

func TestPaginate_EmptyInput(t *testing.T) {
	page, err := Paginate([]string{}, 1, 10)
	require.NoError(t, err)

	assert.Empty(t, page.Items)
	assert.Equal(t, 0, page.TotalCount)
	assert.Equal(t, 0, page.TotalPages)
	assert.False(t, page.HasNext())
	assert.False(t, page.HasPrevious())
}

func TestPaginate_PageBeyondEnd(t *testing.T) {
	page, err := Paginate(sequence(25), 4, 10)
	require.NoError(t, err)

	assert.Empty(t, page.Items)
	assert.Equal(t, 25, page.TotalCount)
	assert.Equal(t, 3, page.TotalPages)
	assert.False(t, page.HasNext())
}

func TestPaginate_HugePageNumber(t *testing.T) {
	// A page number large enough to overflow the start-offset multiplication
	// must still behave like any other page beyond the end.
	var page *Page[int]
	var err error
	require.NotPanics(t, func() {
		page, err = Paginate(sequence(25), math.MaxInt, 10)
	})
	require.NoError(t, err)

	assert.Empty(t, page.Items)
	assert.Equal(t, 25, page.TotalCount)
	assert.Equal(t, 3, page.TotalPages)
	assert.False(t, page.HasNext())
}

func TestPaginate_HugePageSize(t *testing.T) {
	page, err := Paginate(sequence(25), 1, math.MaxInt)
	require.NoError(t, err)

	assert.Equal(t, sequence(25), page.Items)
	assert.Equal(t, 1, page.TotalPages)
	assert.False(t, page.HasNext())
}

func TestPaginate_RejectsNonPositiveInputs(t *testing.T) {
	cases := []struct {
		name       string
		pageNumber int
		pageSize   int
	}{
		{"zero page number", 0, 10},
		{"negative page number", -1, 10},
		{"zero page size", 1, 0},
		{"negative page size", 1, -5},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			page, err := Paginate(sequence(5), tc.pageNumber, tc.pageSize)

			assert.Nil(t, page)
			assert.ErrorIs(t, err, domainerrors.ErrInvalidPagination)
		})
	}
}

func TestPaginate_TotalPagesRoundsUp(t *testing.T) {
	page, err := Paginate(sequence(21), 1, 10)
	require.NoError(t, err)

	assert.Equal(t, 3, page.TotalPages)
}

func TestPaginate_CopiesItems(t *testing.T) {
	items := sequence(10)
	page, err := Paginate(items, 1, 5)
	require.NoError(t, err)

	page.Items[0] = 99

	assert.Equal(t, 1, items[0])
}
