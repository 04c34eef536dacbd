package jsonx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type tip struct {
	Title string `json:"title"`
}

func TestArrayParsesFencedResponse(t *testing.T) {
	raw := "```json\n[{\"title\":\"a\"},{\"title\":\"b\"}]\n```"
	res := Array[tip](raw, Greedy)
	require.True(t, res.OK)
	assert.Equal(t, []tip{{Title: "a"}, {Title: "b"}}, res.Data)
}

func TestArrayUnwrapsObjectWrapper(t *testing.T) {
	raw := `{"itinerary":[{"title":"x"}]}`
	res := Array[tip](raw, Greedy)
	require.True(t, res.OK)
	assert.Equal(t, []tip{{Title: "x"}}, res.Data)
}

func TestFirstArrayFieldDocumentOrder(t *testing.T) {
	b := []byte(`{"count":2,"days":[{"title":"first"}],"extras":[{"title":"second"}]}`)
	inner, ok := firstArrayField(b)
	require.True(t, ok)
	assert.JSONEq(t, `[{"title":"first"}]`, string(inner))

	_, ok = firstArrayField([]byte(`{"count":2}`))
	assert.False(t, ok)

	_, ok = firstArrayField([]byte(`[1,2]`))
	assert.False(t, ok)
}

func TestArrayNoJSONFails(t *testing.T) {
	res := Array[tip]("I'm sorry, I can't help with that.", Greedy)
	assert.False(t, res.OK)
	assert.NotNil(t, res.Data)
	assert.Empty(t, res.Data)
	assert.NotEmpty(t, res.RawSnippet)
}

func TestArrayEmptyInput(t *testing.T) {
	res := Array[tip]("", Greedy)
	assert.False(t, res.OK)
	assert.Empty(t, res.Data)
}

func TestArrayDropsUndecodableElements(t *testing.T) {
	// The second element is a scalar and does not decode as tip; it is
	// dropped instead of failing the array.
	raw := `[{"title":"keep"}, 42, {"title":"also"}]`
	res := Array[tip](raw, Greedy)
	require.True(t, res.OK)
	assert.Equal(t, []tip{{Title: "keep"}, {Title: "also"}}, res.Data)
}

func TestArraySnippetTruncated(t *testing.T) {
	long := "x"
	for len(long) < 500 {
		long += long
	}
	res := Array[tip](long, Greedy)
	require.False(t, res.OK)
	assert.Len(t, res.RawSnippet, snippetLen)
}

func TestObjectParses(t *testing.T) {
	type checklist struct {
		Categories []string `json:"categories"`
	}
	raw := "Sure thing! ```json\n{\"categories\":[\"Documents\"]}\n```"
	res := Object[checklist](raw, Greedy)
	require.True(t, res.OK)
	assert.Equal(t, []string{"Documents"}, res.Data.Categories)
}

func TestObjectRejectsArray(t *testing.T) {
	res := Object[tip](`[{"title":"a"}]`, Greedy)
	assert.False(t, res.OK)
}

func TestObjectRejectsScalar(t *testing.T) {
	res := Object[tip](`"just a string"`, Greedy)
	assert.False(t, res.OK)
}

func TestNonEmptyDemotesEmptyArray(t *testing.T) {
	raw := `[]`
	res := NonEmpty(Array[tip](raw, Greedy), raw)
	assert.False(t, res.OK)
	assert.NotNil(t, res.Data)
	assert.Empty(t, res.Data)
}

func TestNonEmptyKeepsPopulatedArray(t *testing.T) {
	raw := `[{"title":"a"}]`
	res := NonEmpty(Array[tip](raw, Greedy), raw)
	assert.True(t, res.OK)
	assert.Len(t, res.Data, 1)
}

func TestNonEmptyKeepsFailure(t *testing.T) {
	raw := "no json here"
	res := NonEmpty(Array[tip](raw, Greedy), raw)
	assert.False(t, res.OK)
}
