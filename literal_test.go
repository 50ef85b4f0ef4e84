package parameterx

import (
	"maps"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOf(t *testing.T) {
	p := Of(
		P("name", "Charlie"),
		P("age", "25"),
	)

	name, ok := p.GetString("name")
	require.True(t, ok)
	assert.Equal(t, "Charlie", name)

	age, ok := p.GetString("age")
	require.True(t, ok)
	assert.Equal(t, "25", age)
}

func TestOfDuplicateKeys(t *testing.T) {
	p := Of(P("a", "1"), P("b", "2"), P("a", "3"))

	a, ok := p.GetString("a")
	require.True(t, ok)
	assert.Equal(t, "3", a)

	b, ok := p.GetString("b")
	require.True(t, ok)
	assert.Equal(t, "2", b)

	assert.Equal(t, 2, p.Len())
}

func TestOfStoresText(t *testing.T) {
	p := Of(P("age", "25"))

	// Values are text, never reinterpreted.
	_, ok := Get[int](p, "age")
	assert.False(t, ok)

	v, ok := Get[string](p, "age")
	require.True(t, ok)
	assert.Equal(t, "25", v)

	name, _ := p.TypeName("age")
	assert.Equal(t, "string", name)
}

func TestOfEmpty(t *testing.T) {
	p := Of()
	require.NotNil(t, p)
	assert.Equal(t, 0, p.Len())
}

func TestFromText(t *testing.T) {
	p := FromText("hello world")

	v, ok := Get[string](p, TextKey)
	require.True(t, ok)
	assert.Equal(t, "hello world", v)
	assert.Equal(t, 1, p.Len())
}

func TestCollect(t *testing.T) {
	pairs := []Pair{P("x", "1"), P("y", "2"), P("x", "9")}
	seq := func(yield func(string, string) bool) {
		for _, pair := range pairs {
			if !yield(pair.Key, pair.Value) {
				return
			}
		}
	}

	p := Collect(seq)
	x, _ := p.GetString("x")
	assert.Equal(t, "9", x)
	assert.Equal(t, 2, p.Len())

	fromMap := Collect(maps.All(map[string]string{"k": "v"}))
	k, ok := Get[string](fromMap, "k")
	require.True(t, ok)
	assert.Equal(t, "v", k)
}

func TestFromMap(t *testing.T) {
	m := map[string]string{"b": "2", "a": "1"}
	p := FromMap(m)

	assert.Equal(t, []string{"a", "b"}, slices.Collect(p.Keys()))
	a, ok := Get[string](p, "a")
	require.True(t, ok)
	assert.Equal(t, "1", a)

	// The store does not alias the input map.
	m["c"] = "3"
	assert.False(t, p.Has("c"))
}
