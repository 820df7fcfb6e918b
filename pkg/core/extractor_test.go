package core

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, raw string) interface{} {
	t.Helper()
	var v interface{}
	require.NoError(t, json.Unmarshal([]byte(raw), &v))
	return v
}

func TestParsePath(t *testing.T) {
	tests := []struct {
		name string
		path string
		want []PathSegment
	}{
		{
			name: "dotted fields",
			path: "data.getChaosHub",
			want: []PathSegment{{Field: "data"}, {Field: "getChaosHub"}},
		},
		{
			name: "field with index",
			path: "data.listChaosHub[1].name",
			want: []PathSegment{
				{Field: "data"},
				{Field: "listChaosHub"},
				{Type: ArrayIndex, Index: 1},
				{Field: "name"},
			},
		},
		{
			name: "leading and chained indices",
			path: "[0][-1]",
			want: []PathSegment{{Type: ArrayIndex, Index: 0}, {Type: ArrayIndex, Index: -1}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePath(tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParsePathErrors(t *testing.T) {
	for _, path := range []string{"", "data..x", "items[0", "items[a]", "items[0]x"} {
		t.Run(path, func(t *testing.T) {
			_, err := ParsePath(path)
			assert.Error(t, err)
		})
	}
}

func TestLookup(t *testing.T) {
	doc := decode(t, `{
		"data": {
			"deleteInfra": "infra-123",
			"getChaosHub": {"id": "h1", "name": "hub-a"},
			"listChaosHub": [{"id": "h1"}, {"id": "h2"}],
			"nothing": null
		}
	}`)

	t.Run("scalar", func(t *testing.T) {
		v, found, err := Lookup(doc, "data.deleteInfra")
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, "infra-123", v)
	})

	t.Run("object", func(t *testing.T) {
		v, found, err := Lookup(doc, "data.getChaosHub")
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, map[string]interface{}{"id": "h1", "name": "hub-a"}, v)
	})

	t.Run("array index", func(t *testing.T) {
		v, found, _ := Lookup(doc, "data.listChaosHub[1].id")
		assert.True(t, found)
		assert.Equal(t, "h2", v)

		v, found, _ = Lookup(doc, "data.listChaosHub[-1].id")
		assert.True(t, found)
		assert.Equal(t, "h2", v)
	})

	t.Run("present null", func(t *testing.T) {
		v, found, err := Lookup(doc, "data.nothing")
		require.NoError(t, err)
		assert.True(t, found)
		assert.Nil(t, v)
	})

	t.Run("absent", func(t *testing.T) {
		for _, path := range []string{"data.missing", "data.listChaosHub[5]", "data.deleteInfra.id", "data.getChaosHub[0]"} {
			_, found, err := Lookup(doc, path)
			require.NoError(t, err)
			assert.False(t, found, path)
		}
	})

	t.Run("malformed", func(t *testing.T) {
		_, found, err := Lookup(doc, "data..x")
		assert.Error(t, err)
		assert.False(t, found)
	})
}

func TestExtractField(t *testing.T) {
	doc := decode(t, `{"a":{"b":[1,2,3]}}`)

	v, ok := ExtractField(doc, "a.b[2]")
	assert.True(t, ok)
	assert.Equal(t, float64(3), v)

	_, ok = ExtractField(doc, "a.c")
	assert.False(t, ok)
}
