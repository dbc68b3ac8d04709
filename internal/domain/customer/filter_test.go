package customer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListFilterPaging(t *testing.T) {
	t.Parallel()

	cases := []struct {
		page, current, offset int
	}{
		{page: -3, current: 1, offset: 0},
		{page: 0, current: 1, offset: 0},
		{page: 1, current: 1, offset: 0},
		{page: 2, current: 2, offset: PageSize},
		{page: 4, current: 4, offset: 3 * PageSize},
	}

	for _, tc := range cases {
		f := ListFilter{Page: tc.page}
		assert.Equal(t, tc.current, f.CurrentPage(), "page %d", tc.page)
		assert.Equal(t, tc.offset, f.Offset(), "page %d", tc.page)
	}
}
