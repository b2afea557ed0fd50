//go:build unit

package queries

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPagination_Normalize(t *testing.T) {
	tests := []struct {
		name string
		in   Pagination
		want Pagination
	}{
		{name: "zero value", in: Pagination{}, want: Pagination{Page: 1, Limit: DefaultLimit}},
		{name: "negative", in: Pagination{Page: -3, Limit: -1}, want: Pagination{Page: 1, Limit: DefaultLimit}},
		{name: "over max", in: Pagination{Page: 2, Limit: 1000}, want: Pagination{Page: 2, Limit: MaxListLimit}},
		{name: "untouched", in: Pagination{Page: 4, Limit: 15}, want: Pagination{Page: 4, Limit: 15}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.Normalize())
		})
	}
}

func TestSliceAndPage(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	assert.Equal(t, []int{3, 4}, Slice(items, Pagination{Page: 2, Limit: 2}))
	assert.Equal(t, []int{5}, Slice(items, Pagination{Page: 3, Limit: 2}))
	assert.Empty(t, Slice(items, Pagination{Page: 4, Limit: 2}))

	page := NewPage[int](nil, 0, Pagination{Page: 1, Limit: 20})
	assert.NotNil(t, page.Results)
	assert.Zero(t, page.TotalPages)

	page = NewPage([]int{1, 2}, 5, Pagination{Page: 1, Limit: 2})
	assert.Equal(t, 3, page.TotalPages)
}
