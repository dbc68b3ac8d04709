package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateJSON(t *testing.T) {
	t.Parallel()

	t.Run("marshals as calendar date", func(t *testing.T) {
		t.Parallel()

		b, err := json.Marshal(NewDate(2024, time.January, 15))
		require.NoError(t, err)
		assert.JSONEq(t, `"2024-01-15"`, string(b))
	})

	t.Run("first calendar day is a date, not null", func(t *testing.T) {
		t.Parallel()

		b, err := json.Marshal(NewDate(1, time.January, 1))
		require.NoError(t, err)
		assert.JSONEq(t, `"0001-01-01"`, string(b))
	})

	t.Run("unmarshal", func(t *testing.T) {
		t.Parallel()

		var d Date
		require.NoError(t, json.Unmarshal([]byte(`"2023-12-31"`), &d))
		assert.True(t, d.Equal(NewDate(2023, time.December, 31)))

		require.NoError(t, json.Unmarshal([]byte(`null`), &d))
		assert.True(t, d.IsZero())

		assert.Error(t, json.Unmarshal([]byte(`"31/12/2023"`), &d))
	})
}

func TestDateScan(t *testing.T) {
	t.Parallel()

	want := NewDate(2024, time.March, 9)

	cases := map[string]any{
		"time":        time.Date(2024, time.March, 9, 0, 0, 0, 0, time.UTC),
		"string":      "2024-03-09",
		"timestamp":   "2024-03-09 00:00:00+00:00",
		"bytes":       []byte("2024-03-09T00:00:00Z"),
		"offset time": time.Date(2024, time.March, 9, 0, 0, 0, 0, time.FixedZone("BRT", -3*3600)),
	}

	for name, in := range cases {
		in := in
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			var d Date
			require.NoError(t, d.Scan(in))
			assert.Equal(t, want.String(), d.String())
		})
	}

	t.Run("nil", func(t *testing.T) {
		t.Parallel()

		d := want
		require.NoError(t, d.Scan(nil))
		assert.True(t, d.IsZero())
	})

	t.Run("unsupported", func(t *testing.T) {
		t.Parallel()

		var d Date
		assert.Error(t, d.Scan(42))
	})
}

func TestDateValue(t *testing.T) {
	t.Parallel()

	v, err := NewDate(2024, time.February, 29).Value()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC), v)

	v, err = NewDate(1, time.January, 1).Value()
	require.NoError(t, err)
	assert.Equal(t, time.Date(1, time.January, 1, 0, 0, 0, 0, time.UTC), v)
}
