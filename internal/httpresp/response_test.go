package httpresp

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPaginator(t *testing.T) {
	t.Parallel()

	t.Run("middle page", func(t *testing.T) {
		t.Parallel()

		p := NewPaginator([]int{6, 7, 8, 9, 10}, 12, 2, 5)

		assert.Equal(t, 3, p.LastPage)
		require.NotNil(t, p.From)
		require.NotNil(t, p.To)
		assert.Equal(t, 6, *p.From)
		assert.Equal(t, 10, *p.To)
	})

	t.Run("partial last page", func(t *testing.T) {
		t.Parallel()

		p := NewPaginator([]int{11, 12}, 12, 3, 5)

		assert.Equal(t, 3, p.LastPage)
		assert.Equal(t, 11, *p.From)
		assert.Equal(t, 12, *p.To)
	})

	t.Run("empty", func(t *testing.T) {
		t.Parallel()

		p := NewPaginator[int](nil, 0, 1, 5)

		b, err := json.Marshal(p)
		require.NoError(t, err)
		assert.JSONEq(t, `{
			"current_page": 1,
			"data": [],
			"per_page": 5,
			"total": 0,
			"last_page": 1,
			"from": null,
			"to": null
		}`, string(b))
	})

	t.Run("page past the end", func(t *testing.T) {
		t.Parallel()

		p := NewPaginator([]int{}, 7, 9, 5)

		assert.Equal(t, 2, p.LastPage)
		assert.Nil(t, p.From)
		assert.Nil(t, p.To)
	})
}
